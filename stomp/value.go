package stomp

import (
	"fmt"
)

// A HeaderValue is the value part of a STOMP header entry. It is either
// a literal string, or a deferred calculation that is resolved to a
// string at the point the frame is serialized.
//
// Deferred values exist because some header values depend on frame
// state that may change after the header is assigned. The canonical
// example is content-length: a caller can assign the header and then
// keep appending to the frame body, and the value written to the wire
// must reflect the body length at transmission time, not at assignment
// time.
type HeaderValue struct {
	literal string
	calc    func() interface{}
}

// Literal returns a HeaderValue wrapping a fixed string.
func Literal(value string) HeaderValue {
	return HeaderValue{literal: value}
}

// Deferred returns a HeaderValue that invokes calc each time it is
// resolved. The calculator takes no arguments and its result is
// formatted to a string on resolution. Returns ErrInvalidArgument
// if calc is nil.
func Deferred(calc func() interface{}) (HeaderValue, error) {
	if calc == nil {
		return HeaderValue{}, ErrInvalidArgument
	}
	return HeaderValue{calc: calc}, nil
}

// Resolve returns the current string form of the value. Literal values
// resolve to the wrapped string. Deferred values re-invoke their
// calculator on every call: the result is never cached, so it always
// reflects the state the calculator observes at the moment of the call.
func (v HeaderValue) Resolve() string {
	if v.calc != nil {
		return fmt.Sprint(v.calc())
	}
	return v.literal
}
