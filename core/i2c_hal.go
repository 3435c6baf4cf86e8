package core

// I2CBusID identifies a specific I2C controller (e.g., I2C0, I2C1).
type I2CBusID uint8

// RP2040/RP2350 controller instances
const (
	I2C0 I2CBusID = 0 // primary controller
	I2C1 I2CBusID = 1 // secondary controller
)

// String returns the controller name ("i2c0", "i2c1", ...).
func (b I2CBusID) String() string {
	return "i2c" + Utoa(uint32(b))
}

// I2CAddress is a 7-bit I2C device address.
type I2CAddress uint8

// I2CBusConfig describes how a bus controller is brought up.
type I2CBusConfig struct {
	Frequency uint32  // SCL rate in Hz
	SDA       GPIOPin // data pin, switched to the I2C pin function
	SCL       GPIOPin // clock pin, switched to the I2C pin function
	PullUp    bool    // enable the internal pull-ups on both lines
}

// I2CDriver is the abstract I2C interface that core code uses.
type I2CDriver interface {
	// ConfigureBus initializes a specific I2C bus.
	// Calling it again on a configured bus re-applies the configuration.
	// Returns error if bus ID is invalid or configuration fails.
	ConfigureBus(bus I2CBusID, cfg I2CBusConfig) error

	// Write transmits data to a device at the given address on the specified bus.
	// It blocks until the transaction completes and ends with a stop condition.
	Write(bus I2CBusID, addr I2CAddress, data []byte) error
}

// Global singleton used by core code.
var i2cDriver I2CDriver

// SetI2CDriver is called by target-specific code to register its driver.
func SetI2CDriver(d I2CDriver) {
	i2cDriver = d
}

// MustI2C returns the configured driver or panics if missing.
func MustI2C() I2CDriver {
	if i2cDriver == nil {
		panic("I2C driver not configured")
	}
	return i2cDriver
}
