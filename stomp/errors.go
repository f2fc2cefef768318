package stomp

// Sentinel errors returned by this package.
const (
	// ErrInvalidCommand is returned when a frame is constructed with,
	// or mutated to, a command outside the recognized STOMP command set.
	ErrInvalidCommand = errorMessage("invalid command")

	// ErrInvalidArgument is returned when a deferred header value is
	// created without a calculator function.
	ErrInvalidArgument = errorMessage("invalid argument: nil calculator")

	// ErrInvalidFrameFormat is returned when the reader encounters
	// input that does not conform to the STOMP frame grammar.
	ErrInvalidFrameFormat = errorMessage("invalid frame format")
)

type errorMessage string

func (e errorMessage) Error() string {
	return string(e)
}

// Error implements the error interface, and provides
// additional information about a STOMP error.
type Error struct {
	Message string
	Frame   *Frame
}

func (e Error) Error() string {
	return e.Message
}

func missingHeader(name string) *Error {
	return &Error{Message: "missing header: " + name}
}
