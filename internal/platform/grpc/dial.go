// Package grpc holds gRPC options shared by the SDK clients questseed opens.
package grpc

import (
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	gogrpc "google.golang.org/grpc"
)

// ClientDialOptions returns the dial options every outbound client gets.
// The OTel stats handler propagates trace context when a TracerProvider is
// registered and is inert otherwise.
func ClientDialOptions() []gogrpc.DialOption {
	return []gogrpc.DialOption{
		gogrpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	}
}
