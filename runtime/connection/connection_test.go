package connection_test

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minipar-lang/minipar/runtime/connection"
)

func pipeConns(t *testing.T) (net.Conn, net.Conn) {
	t.Helper()
	a, b := net.Pipe()
	t.Cleanup(func() {
		a.Close()
		b.Close()
	})
	return a, b
}

func TestOpenAndGet(t *testing.T) {
	tbl := connection.New()
	a, _ := pipeConns(t)

	entry := tbl.Open("c", connection.RoleClient, a)
	assert.NotEqual(t, entry.ID.String(), "")
	assert.Equal(t, connection.RoleClient, entry.Role)

	got, ok := tbl.Get("c")
	require.True(t, ok)
	assert.Same(t, entry, got)
}

func TestGetUnknownChannelFails(t *testing.T) {
	tbl := connection.New()
	_, ok := tbl.Get("nope")
	assert.False(t, ok)
}

func TestCloseRemovesEntryAndClosesConn(t *testing.T) {
	tbl := connection.New()
	a, b := pipeConns(t)
	tbl.Open("c", connection.RoleServer, a)

	err := tbl.Close("c")
	require.NoError(t, err)

	_, ok := tbl.Get("c")
	assert.False(t, ok)

	// a is now closed; writing from b should eventually fail, confirming
	// Close actually closed the underlying conn rather than just forgetting it.
	_, err = b.Write([]byte("x"))
	assert.Error(t, err)
}

func TestCloseUnknownChannelReturnsError(t *testing.T) {
	tbl := connection.New()
	err := tbl.Close("nope")
	assert.Error(t, err)
}

func TestSnapshotReturnsAllOpenEntries(t *testing.T) {
	tbl := connection.New()
	a, _ := pipeConns(t)
	b, _ := pipeConns(t)
	tbl.Open("c1", connection.RoleClient, a)
	tbl.Open("c2", connection.RoleServer, b)

	snap := tbl.Snapshot()
	assert.Len(t, snap, 2)
}
