package stomp

import (
	"io"
	"strings"
	"testing/iotest"

	. "gopkg.in/check.v1"
)

type ReaderSuite struct{}

var _ = Suite(&ReaderSuite{})

func (s *ReaderSuite) TestConnect(c *C) {
	reader := NewReader(strings.NewReader("CONNECT\nlogin:xxx\npasscode:yyy\n\n\x00"))

	f, err := reader.Read()
	c.Assert(err, IsNil)
	c.Assert(f, NotNil)
	c.Assert(len(f.Body), Equals, 0)
	c.Assert(f.Get("login"), Equals, "xxx")
	c.Assert(f.Get("passcode"), Equals, "yyy")

	// ensure we are at the end of input
	f, err = reader.Read()
	c.Assert(f, IsNil)
	c.Assert(err, Equals, io.EOF)
}

func (s *ReaderSuite) TestMultipleReads(c *C) {
	text := "SEND\ndestination:xxx\n\nPayload\x00\n" +
		"SEND\ndestination:yyy\ncontent-length:12\n\n" +
		"123456789AB\x00\x00"

	ioreaders := []io.Reader{
		strings.NewReader(text),
		iotest.DataErrReader(strings.NewReader(text)),
		iotest.OneByteReader(strings.NewReader(text)),
	}

	for _, ioreader := range ioreaders {
		reader := NewReader(ioreader)
		f, err := reader.Read()
		c.Assert(err, IsNil)
		c.Assert(f, NotNil)
		c.Assert(f.Command, Equals, "SEND")
		c.Assert(f.Header.Len(), Equals, 1)
		c.Assert(f.Get("destination"), Equals, "xxx")
		c.Assert(string(f.Body), Equals, "Payload")

		// now read a heart-beat from the input
		f, err = reader.Read()
		c.Assert(err, IsNil)
		c.Assert(f, IsNil)

		// this frame has content-length
		f, err = reader.Read()
		c.Assert(err, IsNil)
		c.Assert(f, NotNil)
		c.Assert(f.Command, Equals, "SEND")
		c.Assert(f.Header.Len(), Equals, 2)
		c.Assert(f.Get("destination"), Equals, "yyy")
		n, ok, err := f.ContentLength()
		c.Assert(n, Equals, 12)
		c.Assert(ok, Equals, true)
		c.Assert(err, IsNil)
		c.Assert(string(f.Body), Equals, "123456789AB\x00")

		// ensure we are at the end of input
		f, err = reader.Read()
		c.Assert(f, IsNil)
		c.Assert(err, Equals, io.EOF)
	}
}

func (s *ReaderSuite) TestSendWithContentLength(c *C) {
	reader := NewReader(strings.NewReader("SEND\ndestination:xxx\ncontent-length:5\n\n\x00\x01\x02\x03\x04\x00"))

	f, err := reader.Read()
	c.Assert(err, IsNil)
	c.Assert(f, NotNil)
	c.Assert(f.Command, Equals, "SEND")
	c.Assert(f.Header.Len(), Equals, 2)
	c.Assert(f.Get("destination"), Equals, "xxx")
	c.Assert(f.Body, DeepEquals, []byte{0x00, 0x01, 0x02, 0x03, 0x04})

	// ensure we are at the end of input
	f, err = reader.Read()
	c.Assert(f, IsNil)
	c.Assert(err, Equals, io.EOF)
}

func (s *ReaderSuite) TestInvalidCommand(c *C) {
	reader := NewReader(strings.NewReader("sEND\ndestination:xxx\ncontent-length:5\n\n\x00\x01\x02\x03\x04\x00"))

	f, err := reader.Read()
	c.Check(f, IsNil)
	c.Assert(err, Equals, ErrInvalidCommand)
}

func (s *ReaderSuite) TestMissingNull(c *C) {
	reader := NewReader(strings.NewReader("SEND\ndestination:xxx\ncontent-length:5\n\n\x00\x01\x02\x03\x04\n"))

	f, err := reader.Read()
	c.Check(f, IsNil)
	c.Assert(err, Equals, ErrInvalidFrameFormat)
}

func (s *ReaderSuite) TestMalformedHeaderLine(c *C) {
	reader := NewReader(strings.NewReader("SEND\nno-colon-here\n\n\x00"))

	f, err := reader.Read()
	c.Check(f, IsNil)
	c.Assert(err, Equals, ErrInvalidFrameFormat)
}

func (s *ReaderSuite) TestEncodedHeaderValue(c *C) {
	reader := NewReader(strings.NewReader("SEND\ndestination:\\cqueue\\cab\n\n\x00"))

	f, err := reader.Read()
	c.Assert(err, IsNil)
	c.Assert(f.Get("destination"), Equals, ":queue:ab")
}
