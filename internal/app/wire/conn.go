/*
Package wire implements the record framing used by the chat service.

This file defines Conn, which owns one TCP connection and moves whole records across it,
and Dialer, which opens such connections.
*/
package wire

import (
	"bufio"
	"context"
	"errors"
	"io"
	"net"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"roombot/internal/pkg/errs"
	"roombot/internal/pkg/logx"
)

// Conn reads and writes records over a single connection.
// It is not safe for concurrent use; the session engine performs one operation at a time.
type Conn struct {
	// underlying network connection.
	conn net.Conn

	// buffered reader used to locate record terminators.
	reader *bufio.Reader

	// structured logger with remote address context.
	logger zerolog.Logger
}

// NewConn wraps an established network connection.
func NewConn(conn net.Conn) *Conn {
	return &Conn{
		conn:   conn,
		reader: bufio.NewReader(conn),
		logger: logx.Component("wire").With().
			Str("remote_addr", conn.RemoteAddr().String()).
			Logger(),
	}
}

// Receive blocks until a complete record arrives and returns its text without the terminator.
// Bytes are accumulated before decoding, so multi-byte UTF-8 sequences split across reads are
// reassembled intact. There is no read deadline.
func (c *Conn) Receive() (string, error) {
	data, err := c.reader.ReadBytes(Terminator)
	if err != nil {
		if errors.Is(err, io.EOF) && len(data) > 0 {
			err = io.ErrUnexpectedEOF
		}
		return "", errs.Wrap(errs.ErrTransport, err, "receive")
	}

	data = data[:len(data)-1]
	if !utf8.Valid(data) {
		return "", errs.NewError(errs.ErrMalformedRecord, "record is not valid UTF-8")
	}

	raw := string(data)
	c.logger.Debug().Str("record", raw).Msg("Record received")
	return raw, nil
}

// ReceiveRecord receives one record and decodes it.
func (c *Conn) ReceiveRecord() (Record, error) {
	raw, err := c.Receive()
	if err != nil {
		return Record{}, err
	}
	return Decode(raw)
}

// Send writes an unordered record.
func (c *Conn) Send(tag string, attrs map[string]string) error {
	return c.write(tag, Encode(tag, attrs))
}

// SendOrdered writes a record whose attributes must appear in the given order.
func (c *Conn) SendOrdered(tag string, attrs ...Attr) error {
	return c.write(tag, EncodeOrdered(tag, attrs...))
}

func (c *Conn) write(tag string, data []byte) error {
	if _, err := c.conn.Write(data); err != nil {
		return errs.Wrap(errs.ErrTransport, err, "send "+tag)
	}

	c.logger.Debug().Str("record", string(data[:len(data)-1])).Msg("Record sent")
	return nil
}

// Close closes the underlying connection.
func (c *Conn) Close() error {
	return c.conn.Close()
}

// Dialer opens connections to the chat service.
type Dialer struct {
	// Addr is the host:port of the chat service.
	Addr string

	dialer net.Dialer
}

// NewDialer returns a Dialer for addr.
func NewDialer(addr string) *Dialer {
	return &Dialer{Addr: addr}
}

// Dial opens a fresh TCP connection. The context bounds only the dial itself.
func (d *Dialer) Dial(ctx context.Context) (*Conn, error) {
	conn, err := d.dialer.DialContext(ctx, "tcp", d.Addr)
	if err != nil {
		return nil, errs.Wrap(errs.ErrTransport, err, "dial "+d.Addr)
	}
	return NewConn(conn), nil
}
