package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ogxmini/core"
)

func TestResolveI2CBus(t *testing.T) {
	secondary := map[core.GPIOPin]bool{2: true, 6: true, 10: true, 14: true, 15: true, 18: true, 26: true}

	for pin := core.GPIOPin(0); pin <= MaxGPIO; pin++ {
		want := core.I2C0
		if secondary[pin] {
			want = core.I2C1
		}
		assert.Equal(t, want, ResolveI2CBus(pin), "pin %d", pin)
	}
}

func TestResolveI2CBusScenarios(t *testing.T) {
	assert.Equal(t, core.I2C1, ResolveI2CBus(6))
	assert.Equal(t, core.I2C0, ResolveI2CBus(4))
	assert.Equal(t, core.I2C0, ResolveI2CBus(NoPin))
}

func TestSecondaryBusPins(t *testing.T) {
	pins := SecondaryBusPins()
	require.Equal(t, []core.GPIOPin{2, 6, 10, 14, 15, 18, 26}, pins)
	for _, p := range pins {
		assert.Equal(t, core.I2C1, ResolveI2CBus(p), "pin %d", p)
	}
}

func TestSecondaryBusPinsIsCopy(t *testing.T) {
	pins := SecondaryBusPins()
	pins[0] = 4
	assert.Equal(t, core.I2C1, ResolveI2CBus(2))
	assert.Equal(t, core.GPIOPin(2), SecondaryBusPins()[0])
}
