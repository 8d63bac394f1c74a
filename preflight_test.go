package intenttest_test

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomasbasham/intenttest"
)

func TestCheckEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("listener present", func(t *testing.T) {
		t.Parallel()

		l, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer l.Close()

		port := l.Addr().(*net.TCPAddr).Port
		assert.NoError(t, intenttest.CheckEndpoint("127.0.0.1", port))
	})

	t.Run("nothing listening", func(t *testing.T) {
		t.Parallel()

		// Bind and release so the probed port is known to be free.
		l, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		port := l.Addr().(*net.TCPAddr).Port
		require.NoError(t, l.Close())

		err = intenttest.CheckEndpoint("127.0.0.1", port)
		require.Error(t, err)
		assert.ErrorIs(t, err, intenttest.ErrEndpointUnavailable)
	})
}
