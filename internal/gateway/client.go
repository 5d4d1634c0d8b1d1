package gateway

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/hipstershop/storefront/api/rpc"
	"github.com/hipstershop/storefront/internal/tracing"
)

// Dial opens a client connection that speaks the gateway's codec and
// carries the tracing interceptor, so outbound calls continue the caller's
// trace through the call metadata.
func Dial(target string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	base := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(rpc.Codec)),
		grpc.WithUnaryInterceptor(tracing.UnaryClientInterceptor()),
	}
	return grpc.NewClient(target, append(base, opts...)...)
}
