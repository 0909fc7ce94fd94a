package netutil_test

import (
	"fmt"
	"net"
	"testing"

	"github.com/quiverdata/quiver/netutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestFindFreePortInEphemeralRange(t *testing.T) {
	port, err := netutil.FindFreePort()
	require.NoError(t, err)
	assert.Greater(t, port, 0)
	assert.LessOrEqual(t, port, 65535)
}

func TestFindFreePortReleasesSocket(t *testing.T) {
	port, err := netutil.FindFreePort()
	require.NoError(t, err)

	// The probe socket must be gone: binding the same port again succeeds.
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	require.NoError(t, err)
	require.NoError(t, ln.Close())
}

func TestFindFreePortBindsFreshEachCall(t *testing.T) {
	p1, err := netutil.FindFreePort()
	require.NoError(t, err)
	p2, err := netutil.FindFreePort()
	require.NoError(t, err)

	// Both calls perform a real bind; no cached stale value means both ports
	// are valid even when they happen to coincide.
	assert.Greater(t, p1, 0)
	assert.Greater(t, p2, 0)
}
