// Package rpc defines the storefront wire surface: the message shapes, the
// grpc service descriptors for every capability, typed client stubs, and
// the codec both sides of the gateway share. Messages travel as JSON frames
// under the grpc content-subtype registered here, so the descriptors are
// maintained by hand instead of being generated.
package rpc

import (
	"github.com/bytedance/sonic"
	"google.golang.org/grpc/encoding"
)

// Codec is the grpc content-subtype for the storefront wire format.
// Clients must dial with grpc.CallContentSubtype(Codec); servers resolve it
// through the codec registry.
const Codec = "json"

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return sonic.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return sonic.Unmarshal(data, v)
}

func (jsonCodec) Name() string { return Codec }

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
