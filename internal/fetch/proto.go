package fetch

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/protobuf/proto"
)

const frameHeaderLen = 5

var (
	ErrInvalidProto = errors.New("invalid proto")
	ErrShortFrame   = errors.New("short proto frame")
)

// ProtoInit names the request message to send and the message the response
// is decoded into.
type ProtoInit struct {
	Request  proto.Message
	Response proto.Message
}

// EncodeFrame prefixes payload with the 5-byte frame header: one reserved
// flag byte, always 0, then the big-endian payload length.
func EncodeFrame(payload []byte) []byte {
	out := make([]byte, frameHeaderLen+len(payload))
	binary.BigEndian.PutUint32(out[1:frameHeaderLen], uint32(len(payload)))
	copy(out[frameHeaderLen:], payload)
	return out
}

// DecodeFrame returns the payload of a single frame, ignoring trailing bytes.
func DecodeFrame(body []byte) ([]byte, error) {
	if len(body) < frameHeaderLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrShortFrame, len(body))
	}

	n := binary.BigEndian.Uint32(body[1:frameHeaderLen])
	if uint64(len(body)-frameHeaderLen) < uint64(n) {
		return nil, fmt.Errorf("%w: declared %d, have %d", ErrShortFrame, n, len(body)-frameHeaderLen)
	}

	return body[frameHeaderLen : frameHeaderLen+int(n)], nil
}

// FetchProto POSTs pi.Request as a framed protobuf message and decodes the
// framed reply into pi.Response. The request is validated before anything
// goes on the wire.
func (c *Client) FetchProto(ctx context.Context, pi ProtoInit, url string, init *Init) error {
	if pi.Request == nil || !pi.Request.ProtoReflect().IsValid() {
		return fmt.Errorf("%w: nil request", ErrInvalidProto)
	}
	if pi.Response == nil {
		return fmt.Errorf("%w: nil response", ErrInvalidProto)
	}
	if err := proto.CheckInitialized(pi.Request); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProto, err)
	}

	payload, err := proto.Marshal(pi.Request)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProto, err)
	}

	req := Init{Method: http.MethodPost}
	if init != nil {
		req.Headers = init.Headers.Clone()
	}
	if req.Headers == nil {
		req.Headers = http.Header{}
	}
	if req.Headers.Get("Content-Type") == "" {
		req.Headers.Set("Content-Type", "application/grpc-web+proto")
	}
	req.Body = EncodeFrame(payload)

	resp, err := c.do(ctx, url, &req, http.MethodPost)
	if err != nil {
		return fmt.Errorf("proto request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := readBody(resp)
	if err != nil {
		return fmt.Errorf("proto response: %w", err)
	}

	msg, err := DecodeFrame(body)
	if err != nil {
		return fmt.Errorf("proto response (HTTP %d): %w", resp.StatusCode, err)
	}

	if err := proto.Unmarshal(msg, pi.Response); err != nil {
		return fmt.Errorf("proto decode: %w", err)
	}

	return nil
}
