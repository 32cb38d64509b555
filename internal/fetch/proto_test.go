package fetch

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// searchRequestDescriptor builds a proto2 message with one required field.
func searchRequestDescriptor(t *testing.T) protoreflect.MessageDescriptor {
	t.Helper()

	fdp := &descriptorpb.FileDescriptorProto{
		Name:    proto.String("search.proto"),
		Package: proto.String("novelfetch.test"),
		Syntax:  proto.String("proto2"),
		MessageType: []*descriptorpb.DescriptorProto{{
			Name: proto.String("SearchRequest"),
			Field: []*descriptorpb.FieldDescriptorProto{{
				Name:     proto.String("keyword"),
				JsonName: proto.String("keyword"),
				Number:   proto.Int32(1),
				Label:    descriptorpb.FieldDescriptorProto_LABEL_REQUIRED.Enum(),
				Type:     descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum(),
			}},
		}},
	}

	fd, err := protodesc.NewFile(fdp, nil)
	require.NoError(t, err)

	return fd.Messages().ByName("SearchRequest")
}

func TestFrameRoundTrip(t *testing.T) {
	payload := []byte("hello proto")
	frame := EncodeFrame(payload)

	require.Len(t, frame, 5+len(payload))
	assert.Equal(t, byte(0), frame[0])
	assert.Equal(t, []byte{0, 0, 0, byte(len(payload))}, frame[1:5])

	got, err := DecodeFrame(append(frame, 0x80, 0, 0, 0, 0x0f))
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestDecodeFrameShort(t *testing.T) {
	_, err := DecodeFrame([]byte{0, 0, 0})
	assert.ErrorIs(t, err, ErrShortFrame)

	_, err = DecodeFrame([]byte{0, 0, 0, 0, 9, 'a', 'b'})
	assert.ErrorIs(t, err, ErrShortFrame)
}

func TestFetchProtoInvalidRequestSkipsNetwork(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	c := newTestClient(srv)
	req := dynamicpb.NewMessage(searchRequestDescriptor(t))

	err := c.FetchProto(context.Background(), ProtoInit{Request: req, Response: &wrapperspb.StringValue{}}, srv.URL, nil)
	assert.ErrorIs(t, err, ErrInvalidProto)

	err = c.FetchProto(context.Background(), ProtoInit{Response: &wrapperspb.StringValue{}}, srv.URL, nil)
	assert.ErrorIs(t, err, ErrInvalidProto)

	var typedNil *wrapperspb.StringValue
	err = c.FetchProto(context.Background(), ProtoInit{Request: typedNil, Response: &wrapperspb.StringValue{}}, srv.URL, nil)
	assert.ErrorIs(t, err, ErrInvalidProto)

	assert.Equal(t, int32(0), atomic.LoadInt32(&hits))
}

func TestFetchProtoRoundTrip(t *testing.T) {
	var (
		method      string
		contentType string
		keyword     string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		contentType = r.Header.Get("Content-Type")

		body, _ := io.ReadAll(r.Body)
		msg, err := DecodeFrame(body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		var in wrapperspb.StringValue
		if err := proto.Unmarshal(msg, &in); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		keyword = in.GetValue()

		out, _ := proto.Marshal(wrapperspb.String("result for " + in.GetValue()))
		_, _ = w.Write(EncodeFrame(out))
	}))
	defer srv.Close()

	var resp wrapperspb.StringValue
	pi := ProtoInit{Request: wrapperspb.String("martial"), Response: &resp}

	err := newTestClient(srv).FetchProto(context.Background(), pi, srv.URL, nil)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "application/grpc-web+proto", contentType)
	assert.Equal(t, "martial", keyword)
	assert.Equal(t, "result for martial", resp.GetValue())
}

func TestFetchProtoDynamicRequest(t *testing.T) {
	md := searchRequestDescriptor(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		msg, _ := DecodeFrame(body)

		in := dynamicpb.NewMessage(md)
		_ = proto.Unmarshal(msg, in)
		kw := in.Get(md.Fields().ByName("keyword")).String()

		out, _ := proto.Marshal(wrapperspb.String(kw))
		_, _ = w.Write(EncodeFrame(out))
	}))
	defer srv.Close()

	req := dynamicpb.NewMessage(md)
	req.Set(md.Fields().ByName("keyword"), protoreflect.ValueOfString("wuxia"))

	var resp wrapperspb.StringValue
	init := &Init{Headers: http.Header{"Content-Type": {"application/x-protobuf"}}}
	err := newTestClient(srv).FetchProto(context.Background(), ProtoInit{Request: req, Response: &resp}, srv.URL, init)

	require.NoError(t, err)
	assert.Equal(t, "wuxia", resp.GetValue())
	assert.Equal(t, "application/x-protobuf", init.Headers.Get("Content-Type"))
}

func TestFetchProtoShortResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	var resp wrapperspb.StringValue
	err := newTestClient(srv).FetchProto(context.Background(), ProtoInit{Request: wrapperspb.String("x"), Response: &resp}, srv.URL, nil)
	assert.ErrorIs(t, err, ErrShortFrame)
}
