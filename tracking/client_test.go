package tracking

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSocket replays queued datagrams, then times out
type mockSocket struct {
	packets   [][]byte
	readIndex int
	readErr   error
	closed    bool
	rcvBuf    int
	deadline  time.Time
}

func (m *mockSocket) ReadFromUDP(b []byte) (int, *net.UDPAddr, error) {
	if m.closed {
		return 0, nil, net.ErrClosed
	}
	if m.readErr != nil {
		err := m.readErr
		m.readErr = nil
		return 0, nil, err
	}
	if m.readIndex >= len(m.packets) {
		return 0, nil, &net.OpError{Op: "read", Net: "udp", Err: timeoutError{}}
	}
	n := copy(b, m.packets[m.readIndex])
	m.readIndex++
	return n, &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 50000}, nil
}

func (m *mockSocket) SetReadBuffer(bytes int) error     { m.rcvBuf = bytes; return nil }
func (m *mockSocket) SetReadDeadline(t time.Time) error { m.deadline = t; return nil }
func (m *mockSocket) Close() error                      { m.closed = true; return nil }
func (m *mockSocket) LocalAddr() net.Addr {
	return &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 3333}
}

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

// mockFactory fails the first failures binds
type mockFactory struct {
	socket   *mockSocket
	failures int
	calls    int
}

func (f *mockFactory) ListenUDP(network string, laddr *net.UDPAddr) (UDPSocket, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, errors.New("address already in use")
	}
	return f.socket, nil
}

func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.Host = "127.0.0.1"
	cfg.BindBackoff = time.Millisecond
	return cfg
}

func TestClientUpdateReadsOneDatagram(t *testing.T) {
	sock := &mockSocket{packets: [][]byte{
		tuioBundle(t, addrObject, 1, []int32{5}, objSet(5, 1, 0.25, 0.25)),
		tuioBundle(t, addrObject, 2, []int32{5}, objSet(5, 1, 0.5, 0.5)),
	}}
	c, err := Open(context.Background(), testConfig(), &mockFactory{socket: sock})
	require.NoError(t, err)
	assert.Equal(t, 64*1024, sock.rcvBuf)

	ctx := context.Background()
	require.NoError(t, c.Update(ctx))
	require.Len(t, c.Objects(), 1)
	assert.Equal(t, 0.25, c.Objects()[0].X)
	assert.False(t, sock.deadline.IsZero(), "read deadline must be set")

	require.NoError(t, c.Update(ctx))
	assert.Equal(t, 0.5, c.Objects()[0].X)

	// Nothing queued: timeout is not an error and state is kept
	require.NoError(t, c.Update(ctx))
	assert.Equal(t, 0.5, c.Objects()[0].X)

	require.NoError(t, c.Close())
	assert.True(t, sock.closed)
}

func TestClientSkipsMalformedDatagram(t *testing.T) {
	sock := &mockSocket{packets: [][]byte{
		[]byte("garbage"),
		tuioBundle(t, addrObject, 1, []int32{5}, objSet(5, 2, 0.75, 0.25)),
	}}
	c, err := Open(context.Background(), testConfig(), &mockFactory{socket: sock})
	require.NoError(t, err)

	require.NoError(t, c.Update(context.Background()))
	assert.Empty(t, c.Objects())
	require.NoError(t, c.Update(context.Background()))
	assert.Len(t, c.Objects(), 1)
	assert.Equal(t, 1, c.decodeErrors)
}

func TestClientReadErrorIsUnavailable(t *testing.T) {
	sock := &mockSocket{readErr: errors.New("connection refused")}
	c, err := Open(context.Background(), testConfig(), &mockFactory{socket: sock})
	require.NoError(t, err)

	err = c.Update(context.Background())
	assert.ErrorIs(t, err, ErrTrackingUnavailable)
}

func TestClientUpdateHonorsContext(t *testing.T) {
	c, err := Open(context.Background(), testConfig(), &mockFactory{socket: &mockSocket{}})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, c.Update(ctx), context.Canceled)
}

func TestOpenRetriesBind(t *testing.T) {
	factory := &mockFactory{socket: &mockSocket{}, failures: 2}
	c, err := Open(context.Background(), testConfig(), factory)
	require.NoError(t, err)
	assert.NotNil(t, c)
	assert.Equal(t, 3, factory.calls)
}

func TestOpenGivesUpAfterAttempts(t *testing.T) {
	factory := &mockFactory{socket: &mockSocket{}, failures: 10}
	_, err := Open(context.Background(), testConfig(), factory)
	assert.ErrorIs(t, err, ErrTrackingUnavailable)
	assert.Equal(t, 3, factory.calls)
}

func TestOpenRealSocket(t *testing.T) {
	cfg := testConfig()
	cfg.Port = 0
	c, err := Open(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer c.Close()

	// No sender: a poll just times out
	require.NoError(t, c.Update(context.Background()))
	assert.Empty(t, c.Objects())
}
