package stomp

import (
	"bufio"
	"io"

	"github.com/xon91/coilmq/stomp/frame"
)

// A Writer writes STOMP frames to an underlying io.Writer. It is the
// serialization point of the package: each call to Write resolves
// every header value in the frame exactly once, at the moment its
// header line is produced. Deferred values are therefore observed at
// transmission time, never earlier.
type Writer struct {
	writer *bufio.Writer
}

// NewWriter creates a Writer that writes STOMP frames to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{writer: bufio.NewWriter(w)}
}

// Write writes the frame to the underlying writer in wire format: the
// command line, one name:value line per header entry, a blank line,
// the body, and a terminating NUL octet.
//
// The frame's command must be a recognized STOMP command; otherwise
// a *Error wrapping the offending frame is returned and nothing is
// written.
func (w *Writer) Write(f *Frame) error {
	if !frame.Valid(f.Command) {
		return &Error{Message: ErrInvalidCommand.Error(), Frame: f}
	}

	if _, err := w.writer.WriteString(f.Command); err != nil {
		return err
	}
	if err := w.writer.WriteByte('\n'); err != nil {
		return err
	}

	for i := 0; i < f.Header.Len(); i++ {
		// GetAt resolves the header value; this is the single
		// resolution per serialization pass.
		name, value := f.Header.GetAt(i)
		line := encodeValue(name) + ":" + encodeValue(value) + "\n"
		if _, err := w.writer.WriteString(line); err != nil {
			return err
		}
	}

	if err := w.writer.WriteByte('\n'); err != nil {
		return err
	}
	if _, err := w.writer.Write(f.Body); err != nil {
		return err
	}
	if err := w.writer.WriteByte(0); err != nil {
		return err
	}

	return w.writer.Flush()
}
