package stomp

import (
	"github.com/xon91/coilmq/stomp/frame"
)

// Builders for the frames a STOMP server sends to its clients. Each
// returns a frame with every header the protocol mandates for that
// command already present. There is one Frame type rather than a type
// per command: the commands form a small closed set and differ only
// in which headers they carry.

// NewConnectedFrame creates a CONNECTED frame, the server response to
// a successful CONNECT. The session header carries the (throw-away)
// session identifier assigned to the connection.
func NewConnectedFrame(session string) *Frame {
	return &Frame{
		Command: frame.CONNECTED,
		Header:  NewHeader(frame.Session, session),
	}
}

// NewMessageFrame creates a MESSAGE frame carrying body to a
// subscribed client. The content-length header is deferred: it
// resolves to the byte length of the frame's body at serialization
// time, so the body can be replaced or extended after this call and
// the header stays correct.
func NewMessageFrame(body []byte) *Frame {
	f := &Frame{
		Command: frame.MESSAGE,
		Header:  NewHeader(),
		Body:    body,
	}
	f.Header.SetValue(frame.ContentLength, bodyLength(f))
	return f
}

// NewErrorFrame creates an ERROR frame. The message header carries a
// short description of the problem; body optionally carries more
// detail, such as the offending frame. As with MESSAGE frames, the
// content-length header is deferred to serialization time.
func NewErrorFrame(message string, body []byte) *Frame {
	f := &Frame{
		Command: frame.ERROR,
		Header:  NewHeader(frame.Message, message),
		Body:    body,
	}
	f.Header.SetValue(frame.ContentLength, bodyLength(f))
	return f
}

// NewReceiptFrame creates a RECEIPT frame acknowledging a client
// frame that requested a receipt.
func NewReceiptFrame(receipt string) *Frame {
	return &Frame{
		Command: frame.RECEIPT,
		Header:  NewHeader(frame.Receipt, receipt),
	}
}

// bodyLength returns a deferred value reading the current byte length
// of the frame's body. The calculator reads f.Body, not a snapshot.
func bodyLength(f *Frame) HeaderValue {
	v, _ := Deferred(func() interface{} { return len(f.Body) })
	return v
}
