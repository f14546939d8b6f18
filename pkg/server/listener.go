package server

import (
	"context"
	"net"
)

// Listen opens a TCP listener with address reuse enabled, so a restarted
// server can bind the same port while the previous socket is still in
// its teardown state.
func Listen(addr string) (net.Listener, error) {
	lc := net.ListenConfig{Control: reuseAddr}
	return lc.Listen(context.Background(), "tcp", addr)
}
