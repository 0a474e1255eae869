// Package rpc provides the gRPC plumbing shared by the backend adapters:
// the wire codec matching the backend services' published contract and the
// dial options used for every backend connection.
package rpc

import (
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/encoding"
)

// CodecName is the content-subtype negotiated with the backend services.
// The backends encode request and response messages as JSON with the exact
// field names of the .proto contract files in this directory (keep-case,
// snake_case). This is a frozen contract: field casing must not change.
const CodecName = "json"

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return CodecName
}

// DialOptions returns the dial options shared by all backend connections.
// Backends are reached over plaintext inside the deployment network; every
// call on the connection uses the contract codec.
func DialOptions(extra ...grpc.DialOption) []grpc.DialOption {
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(CodecName)),
	}
	return append(opts, extra...)
}
