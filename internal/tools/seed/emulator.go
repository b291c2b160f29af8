package seed

import (
	"context"
	"net"
	"strings"
)

// EmulatorHostEnv is read by the Firestore client to route traffic to a
// local emulator.
const EmulatorHostEnv = "FIRESTORE_EMULATOR_HOST"

// lookupHost resolves emulator hostnames. Tests replace it.
var lookupHost = net.DefaultResolver.LookupHost

// resolveEmulatorHost keeps addr when its host resolves and otherwise falls
// back to the loopback address on the same port. Compose-style hostnames
// such as "firestore:8080" then still work when the tool runs on the host.
func resolveEmulatorHost(ctx context.Context, addr string) string {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return addr
	}
	host, port, err := net.SplitHostPort(addr)
	if err != nil || host == "" || port == "" {
		return addr
	}
	if _, err := lookupHost(ctx, host); err == nil {
		return addr
	}
	return net.JoinHostPort("127.0.0.1", port)
}
