package seed

import (
	"context"
	"errors"
	"testing"
)

func TestResolveEmulatorHost(t *testing.T) {
	original := lookupHost
	t.Cleanup(func() { lookupHost = original })

	tests := []struct {
		name      string
		addr      string
		resolveOK bool
		want      string
	}{
		{name: "empty", addr: "  ", want: ""},
		{name: "no port", addr: "firestore", want: "firestore"},
		{name: "resolvable", addr: "firestore:8080", resolveOK: true, want: "firestore:8080"},
		{name: "unresolvable", addr: "firestore:8080", want: "127.0.0.1:8080"},
		{name: "missing host", addr: ":8080", want: ":8080"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookupHost = func(context.Context, string) ([]string, error) {
				if tt.resolveOK {
					return []string{"10.0.0.2"}, nil
				}
				return nil, errors.New("no such host")
			}
			if got := resolveEmulatorHost(context.Background(), tt.addr); got != tt.want {
				t.Fatalf("resolveEmulatorHost(%q) = %q, want %q", tt.addr, got, tt.want)
			}
		})
	}
}
