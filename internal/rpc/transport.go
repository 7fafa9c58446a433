package rpc

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// ErrMissingContentLength is returned when a message's headers lack the
// mandatory Content-Length field.
var ErrMissingContentLength = errors.New("rpc: missing Content-Length header")

// ErrIncompleteMessage is returned when stdin reaches EOF before a
// message's declared body length has been read in full.
var ErrIncompleteMessage = errors.New("rpc: incomplete message body")

// Transport frames LSP messages over an arbitrary byte stream using the
// Content-Length header convention (spec §4.1). It never writes to
// anything but w, and reads only from r: stdout is reserved for LSP
// traffic, so logging always goes to a distinct writer.
type Transport struct {
	r *bufio.Reader
	w io.Writer

	mu sync.Mutex // serializes writes; reads are already single-threaded by the caller
}

// NewTransport wraps r/w as the message source/sink.
func NewTransport(r io.Reader, w io.Writer) *Transport {
	return &Transport{r: bufio.NewReader(r), w: w}
}

// ReadMessage reads one framed message body from the transport. It blocks
// until headers and the declared body are available, or returns io.EOF
// when the stream is closed between messages (a clean shutdown signal),
// or ErrIncompleteMessage when EOF arrives mid-body.
func (t *Transport) ReadMessage() ([]byte, error) {
	var contentLength int
	haveLength := false

	for {
		line, err := t.r.ReadString('\n')
		if err != nil {
			if err == io.EOF && line == "" {
				return nil, io.EOF
			}
			return nil, fmt.Errorf("rpc: reading header: %w", err)
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break // blank line ends the header block
		}

		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)

		switch strings.ToLower(name) {
		case "content-length":
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("rpc: invalid Content-Length %q: %w", value, err)
			}
			contentLength = n
			haveLength = true
		case "content-type":
			// Accepted and ignored, per spec §4.1.
		}
	}

	if !haveLength {
		return nil, ErrMissingContentLength
	}

	body := make([]byte, contentLength)
	if _, err := io.ReadFull(t.r, body); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrIncompleteMessage
		}
		return nil, fmt.Errorf("rpc: reading body: %w", err)
	}
	return body, nil
}

// WriteMessage frames body with a Content-Length header and writes it in
// full. Safe for concurrent use (the server loop is single-threaded, but
// tests may write from a second goroutine).
func (t *Transport) WriteMessage(body []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	header := fmt.Sprintf("Content-Length: %d\r\n\r\n", len(body))
	if _, err := io.WriteString(t.w, header); err != nil {
		return fmt.Errorf("rpc: writing header: %w", err)
	}
	if _, err := t.w.Write(body); err != nil {
		return fmt.Errorf("rpc: writing body: %w", err)
	}
	return nil
}

// ReadRequest reads and JSON-decodes one Message.
func (t *Transport) ReadRequest() (*Message, error) {
	body, err := t.ReadMessage()
	if err != nil {
		return nil, err
	}
	var msg Message
	if err := json.Unmarshal(body, &msg); err != nil {
		return nil, fmt.Errorf("%w: %v", &Error{Code: ParseError, Message: "invalid JSON"}, err)
	}
	return &msg, nil
}

// WriteResponse JSON-encodes and writes msg.
func (t *Transport) WriteResponse(msg *Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("rpc: encoding message: %w", err)
	}
	return t.WriteMessage(body)
}
