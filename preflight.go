package intenttest

import (
	"fmt"
	"net"
	"strconv"
)

// CheckEndpoint verifies that something is already listening on host:port
// using a bind-and-release probe: if this process can bind the port, no
// backend holds it. It returns an error wrapping [ErrEndpointUnavailable]
// when the port is free, and nil when a listener is present.
//
// Run this before any scenario so that a missing backend fails fast with a
// diagnostic instead of hanging the first RPC.
func CheckEndpoint(host string, port int) error {
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	l, err := net.Listen("tcp", addr)
	if err != nil {
		// The port is held by another process: a backend is listening.
		return nil
	}
	l.Close()
	return fmt.Errorf("%w: nothing is listening on %s; start the mock backend first (see README.md)", ErrEndpointUnavailable, addr)
}
