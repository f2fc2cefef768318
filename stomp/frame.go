package stomp

import (
	"github.com/xon91/coilmq/stomp/frame"
)

// A Frame represents a STOMP frame. A frame consists of a command
// followed by a collection of header entries, and then an optional
// body.
//
// A frame is a plain value with no synchronization: it is owned by
// the goroutine that builds and serializes it, and must not be shared
// across concurrent mutators.
type Frame struct {
	Command string
	*Header
	Body []byte
}

// NewFrame creates a new STOMP frame with the specified command and
// literal headers. The headers should contain an even number of
// entries. Each even index is the header name, and the odd indexes
// are the associated header values.
//
// The command must be a member of the recognized STOMP command set,
// otherwise ErrInvalidCommand is returned. An empty command is
// permitted so that a frame can be populated field by field, but the
// frame is not valid for serialization until a command is assigned.
func NewFrame(command string, headers ...string) (*Frame, error) {
	if command != "" && !frame.Valid(command) {
		return nil, ErrInvalidCommand
	}
	f := &Frame{Command: command, Header: NewHeader(headers...)}
	return f, nil
}

// SetCommand assigns a new command to the frame. Returns
// ErrInvalidCommand if the command is not a recognized STOMP command.
func (f *Frame) SetCommand(command string) error {
	if !frame.Valid(command) {
		return ErrInvalidCommand
	}
	f.Command = command
	return nil
}

// Clone creates a deep copy of the frame and its header. The cloned
// frame shares the body with the original frame, and cloned deferred
// header values keep observing the original frame's state.
func (f *Frame) Clone() *Frame {
	return &Frame{Command: f.Command, Header: f.Header.Clone(), Body: f.Body}
}

// Validate checks that the headers the protocol mandates for the
// frame's command are present. Returns a *Error naming the first
// missing header. Only server commands mandate headers in this
// implementation; for other commands Validate returns nil.
func (f *Frame) Validate() error {
	switch f.Command {
	case frame.CONNECTED:
		return f.verifyMandatory(frame.Session)
	case frame.MESSAGE:
		return f.verifyMandatory(frame.ContentLength)
	case frame.ERROR:
		return f.verifyMandatory(frame.Message, frame.ContentLength)
	case frame.RECEIPT:
		return f.verifyMandatory(frame.Receipt)
	}
	return nil
}

func (f *Frame) verifyMandatory(keys ...string) error {
	for _, key := range keys {
		if _, ok := f.Header.index(key); !ok {
			err := missingHeader(key)
			err.Frame = f
			return err
		}
	}
	return nil
}

// String returns a short diagnostic description of the frame for use
// in log messages. It is not the wire format and performs no escaping.
// ERROR frames include their message header, as that is usually the
// detail a log reader wants.
func (f *Frame) String() string {
	if f.Command == frame.ERROR {
		return "<frame cmd=" + f.Command + " message=" + f.Get(frame.Message) + ">"
	}
	return "<frame cmd=" + f.Command + ">"
}
