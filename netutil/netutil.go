// Package netutil provides the one OS-facing helper of the library: ephemeral
// port discovery for test harnesses.
package netutil

import (
	"context"
	"fmt"
	"net"
	"syscall"
)

// FindFreePort asks the kernel for an ephemeral TCP port and returns its
// number. The probe listener binds to all interfaces with SO_REUSEADDR set
// and is closed before returning, so the port is only guaranteed free at the
// instant of the call — callers must tolerate losing it to another process
// before they bind it themselves.
func FindFreePort() (int, error) {
	lc := net.ListenConfig{Control: withReuseAddr}
	ln, err := lc.Listen(context.Background(), "tcp", ":0")
	if err != nil {
		return 0, fmt.Errorf("failed to bind ephemeral port: %w", err)
	}
	defer ln.Close()

	return ln.Addr().(*net.TCPAddr).Port, nil
}

func withReuseAddr(network, address string, conn syscall.RawConn) error {
	var sockErr error
	if err := conn.Control(func(fd uintptr) {
		sockErr = syscall.SetsockoptInt(int(fd), syscall.SOL_SOCKET, syscall.SO_REUSEADDR, 1)
	}); err != nil {
		return err
	}
	return sockErr
}
