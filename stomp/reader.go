package stomp

import (
	"bufio"
	"io"
	"strings"

	"github.com/xon91/coilmq/stomp/frame"
)

// A Reader reads STOMP frames from an underlying io.Reader. It is the
// inbound half of the codec: wire bytes are parsed into the command,
// header and body triple that the Frame type represents. Parsed
// header values are always literal; deferred values exist only on the
// outbound path.
type Reader struct {
	reader *bufio.Reader
}

// NewReader creates a Reader that reads STOMP frames from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{reader: bufio.NewReader(r)}
}

// Read reads the next frame from the input. A heart-beat, which on
// the wire is a bare newline between frames, returns a nil frame and
// a nil error. At the end of input Read returns io.EOF.
func (r *Reader) Read() (*Frame, error) {
	command, err := r.readLine()
	if err != nil {
		return nil, err
	}

	if command == "" {
		// received a heart-beat newline char (or CR-LF)
		return nil, nil
	}

	if !frame.Valid(command) {
		return nil, ErrInvalidCommand
	}

	f := &Frame{Command: command, Header: NewHeader()}

	for {
		line, err := r.readLine()
		if err != nil {
			return nil, err
		}
		if line == "" {
			// end of headers
			break
		}
		index := strings.Index(line, ":")
		if index <= 0 {
			return nil, ErrInvalidFrameFormat
		}
		name := unencodeValue(line[:index])
		value := unencodeValue(line[index+1:])
		f.Header.Add(name, value)
	}

	// The content-length header, when present, tells us how many
	// bytes to read and permits NUL octets in the body. Without it
	// the body runs up to the first NUL.
	length, present, err := f.Header.ContentLength()
	if err != nil {
		return nil, err
	}
	if present {
		f.Body = make([]byte, length)
		if _, err := io.ReadFull(r.reader, f.Body); err != nil {
			return nil, err
		}
		terminator, err := r.reader.ReadByte()
		if err != nil {
			return nil, err
		}
		if terminator != 0 {
			return nil, ErrInvalidFrameFormat
		}
	} else {
		body, err := r.reader.ReadBytes(0)
		if err != nil {
			return nil, err
		}
		f.Body = body[:len(body)-1]
	}

	return f, nil
}

// readLine reads one newline-terminated line, stripping the
// terminator and an optional preceding carriage return.
func (r *Reader) readLine() (string, error) {
	line, err := r.reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
