package stomp

import (
	"strconv"

	"github.com/xon91/coilmq/stomp/frame"
)

// A Header represents the header part of a STOMP frame. The header
// contains zero or more entries, where each entry consists of a name
// and an associated HeaderValue. Entries preserve insertion order.
//
// Most callers deal in plain strings via Add, Set and Get. The
// HeaderValue forms (AddValue, SetValue) exist for values that must be
// calculated at serialization time, such as content-length.
type Header struct {
	entries []headerEntry
}

type headerEntry struct {
	name  string
	value HeaderValue
}

// NewHeader creates a header and populates it with literal entries.
// The entries should contain an even number of strings: each even
// index is a header name, and the following odd index is its value.
func NewHeader(entries ...string) *Header {
	h := &Header{}
	for i := 0; i < len(entries); i += 2 {
		h.Add(entries[i], entries[i+1])
	}
	return h
}

// Add appends a literal header entry. The entry is appended even if
// an entry with the same name already exists, as permitted by STOMP
// for repeated headers.
func (h *Header) Add(name, value string) {
	h.AddValue(name, Literal(value))
}

// AddValue appends a header entry with an explicit HeaderValue.
func (h *Header) AddValue(name string, value HeaderValue) {
	h.entries = append(h.entries, headerEntry{name: name, value: value})
}

// Set assigns a literal value to the named header. If the header is
// already present, its first entry is replaced in place and any
// duplicates are removed; otherwise a new entry is appended.
func (h *Header) Set(name, value string) {
	h.SetValue(name, Literal(value))
}

// SetValue assigns a HeaderValue to the named header, with the same
// replacement semantics as Set.
func (h *Header) SetValue(name string, value HeaderValue) {
	if i, ok := h.index(name); ok {
		h.entries[i].value = value
		h.removeAfter(name, i)
		return
	}
	h.AddValue(name, value)
}

// Get returns the resolved value of the first entry with the given
// name, or the empty string if the header is not present. Use Contains
// to distinguish an absent header from one with an empty value.
func (h *Header) Get(name string) string {
	value, _ := h.Contains(name)
	return value
}

// Contains returns the resolved value of the first entry with the
// given name, and whether the header is present at all. A missing
// header is not an error at the protocol level, so lookup never fails:
// absence is reported through the second return value.
func (h *Header) Contains(name string) (string, bool) {
	if i, ok := h.index(name); ok {
		return h.entries[i].value.Resolve(), true
	}
	return "", false
}

// GetAll returns the resolved values of all entries with the given
// name, in insertion order.
func (h *Header) GetAll(name string) []string {
	var values []string
	for _, entry := range h.entries {
		if entry.name == name {
			values = append(values, entry.value.Resolve())
		}
	}
	return values
}

// GetAt returns the name and resolved value of the entry at index i.
// A serializer iterating entries by index resolves each deferred value
// exactly once per pass, at the moment its header line is produced.
func (h *Header) GetAt(i int) (name, value string) {
	entry := h.entries[i]
	return entry.name, entry.value.Resolve()
}

// Del removes all entries with the given name. Removing a header that
// is not present is not an error.
func (h *Header) Del(name string) {
	h.removeAfter(name, -1)
}

// Len returns the number of header entries.
func (h *Header) Len() int {
	return len(h.entries)
}

// Clone creates a copy of the header. Literal values are independent
// of the original; deferred values share their calculator with the
// original, so they keep observing whatever state the calculator
// closes over.
func (h *Header) Clone() *Header {
	clone := &Header{entries: make([]headerEntry, len(h.entries))}
	copy(clone.entries, h.entries)
	return clone
}

// ContentLength returns the value of the content-length header, if
// present. If the header is present but malformed, err is non-nil.
func (h *Header) ContentLength() (length int, present bool, err error) {
	value, ok := h.Contains(frame.ContentLength)
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, false, err
	}
	return int(n), true, nil
}

// index returns the position of the first entry with the given name.
func (h *Header) index(name string) (int, bool) {
	for i, entry := range h.entries {
		if entry.name == name {
			return i, true
		}
	}
	return -1, false
}

// removeAfter removes every entry with the given name at an index
// greater than after.
func (h *Header) removeAfter(name string, after int) {
	kept := h.entries[:0]
	for i, entry := range h.entries {
		if i > after && entry.name == name {
			continue
		}
		kept = append(kept, entry)
	}
	h.entries = kept
}
