package grpc

import "testing"

func TestClientDialOptions(t *testing.T) {
	opts := ClientDialOptions()
	if len(opts) != 1 {
		t.Fatalf("dial options = %d, want 1", len(opts))
	}
	if opts[0] == nil {
		t.Fatal("expected stats handler option")
	}
}
