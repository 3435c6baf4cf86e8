package display

import "errors"

var (
	ErrBufferOverflow      = errors.New("display: transfer exceeds buffer capacity")
	ErrNoTransaction       = errors.New("display: end without start")
	ErrTransferFailed      = errors.New("display: bus write failed")
	ErrTransferTimeout     = errors.New("display: bus write timed out")
	ErrBusBusy             = errors.New("display: bus busy with stalled write")
	ErrReadUnsupported     = errors.New("display: bus is write-only")
	ErrInvalidAddress      = errors.New("display: address exceeds 7 bits")
	ErrNotInitialized      = errors.New("display: not initialized")
	ErrUnsupportedRotation = errors.New("display: rotation not supported by controller")

	// errWriteTimeout marks a write abandoned by HardwareTransport.write.
	errWriteTimeout = errors.New("display: write still running")
)

// TransferError reports which transaction step failed. Err is one of the
// sentinels above; Cause is the underlying driver error, if any.
type TransferError struct {
	Op    string
	Err   error
	Cause error
}

func (e *TransferError) Error() string {
	if e.Cause == nil {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error() + ": " + e.Cause.Error()
}

func (e *TransferError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}
