package display

// TransferBufferSize is the largest burst one transaction may carry.
const TransferBufferSize = 32

// TransferBuffer collects the bytes of one bus transaction.
type TransferBuffer struct {
	data       [TransferBufferSize]byte
	n          int
	overflowed bool
}

// Reset empties the buffer and clears the overflow flag.
func (b *TransferBuffer) Reset() {
	b.n = 0
	b.overflowed = false
}

// Append copies p after the current contents. If p does not fit, nothing
// is written, the buffer is marked overflowed and ErrBufferOverflow is
// returned. An overflowed buffer refuses further appends until Reset.
func (b *TransferBuffer) Append(p []byte) error {
	if b.overflowed || len(p) > len(b.data)-b.n {
		b.overflowed = true
		return ErrBufferOverflow
	}
	b.n += copy(b.data[b.n:], p)
	return nil
}

// Bytes returns the buffered bytes. The slice aliases the buffer and is
// only valid until the next Reset or Append.
func (b *TransferBuffer) Bytes() []byte { return b.data[:b.n] }

func (b *TransferBuffer) Len() int { return b.n }

func (b *TransferBuffer) Cap() int { return len(b.data) }

func (b *TransferBuffer) Overflowed() bool { return b.overflowed }
