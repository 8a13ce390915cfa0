package statsd

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		prefix, name, want string
	}{
		{prefix: "localjobs", name: "notifications.list", want: "localjobs.notifications.list"},
		{prefix: "", name: " carousel/cursor ", want: "carousel_cursor"},
		{prefix: "app", name: "foo..bar.", want: "app.foo.bar"},
		{prefix: "app", name: "multi  space", want: "app.multi__space"},
		{prefix: "app", name: "", want: ""},
		{prefix: "app", name: "..", want: "app"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, metricName(tt.prefix, tt.name), "prefix=%q name=%q", tt.prefix, tt.name)
	}
}

func TestRenderTags(t *testing.T) {
	t.Parallel()

	global := map[string]string{"env": "prod", " service ": " web "}
	local := map[string]string{"result": " success ", "": "ignored", "env": "stage"}

	assert.Equal(t, "|#env:stage,result:success,service:web", renderTags(global, local))
	assert.Empty(t, renderTags(nil, nil))
}

func TestClient_Line(t *testing.T) {
	t.Parallel()
	c := &Client{prefix: "localjobs", globalTags: map[string]string{"env": "test"}}

	assert.Equal(t,
		"localjobs.notifications.create:1|c|#env:test,result:success",
		c.line("notifications.create", "1", "c", map[string]string{"result": "success"}),
	)
	assert.Empty(t, c.line("", "1", "c", nil))
}

func TestClient_WritesOverUDP(t *testing.T) {
	t.Parallel()

	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	defer pc.Close()

	client, err := NewClient(Config{Enabled: true, Address: pc.LocalAddr().String(), Prefix: ".localjobs."})
	require.NoError(t, err)
	defer client.Close()
	require.True(t, client.Enabled())

	client.Timing("notifications.list", 1500*time.Microsecond, map[string]string{"result": "success"})

	require.NoError(t, pc.SetReadDeadline(time.Now().Add(2*time.Second)))
	buf := make([]byte, 512)
	n, _, err := pc.ReadFrom(buf)
	require.NoError(t, err)
	assert.Equal(t, "localjobs.notifications.list:1.5|ms|#result:success", string(buf[:n]))
}

func TestClient_CloseIsIdempotent(t *testing.T) {
	t.Parallel()

	clientConn, peerConn := net.Pipe()
	defer peerConn.Close()
	client := &Client{conn: clientConn}

	assert.True(t, client.Enabled())
	require.NoError(t, client.Close())
	assert.False(t, client.Enabled())
	require.NoError(t, client.Close())

	// writes after close are dropped
	client.Count("x", 1, nil)

	var nilClient *Client
	assert.False(t, nilClient.Enabled())
	require.NoError(t, nilClient.Close())
	nilClient.Gauge("x", 1, nil)
}

func TestNewClient_DisabledWithoutAddress(t *testing.T) {
	t.Parallel()
	client, err := NewClient(Config{Enabled: true, Address: "   "})
	require.NoError(t, err)
	assert.False(t, client.Enabled())
}

func TestNewClient_DialError(t *testing.T) {
	t.Parallel()
	_, err := NewClient(Config{Enabled: true, Address: "bad address"})
	require.ErrorContains(t, err, "statsd dial")
}

func TestRecorder(t *testing.T) {
	t.Parallel()
	var r Recorder
	tags := map[string]string{"result": "success"}

	r.Count("a", 2, tags)
	r.Gauge("b", 3.5, nil)
	r.Timing("a", 2*time.Millisecond, nil)
	tags["result"] = "mutated"

	counts := r.Find("count", "a")
	require.Len(t, counts, 1)
	assert.InDelta(t, 2.0, counts[0].Value, 0)
	assert.Equal(t, "success", counts[0].Tags["result"])

	timings := r.Find("timing", "a")
	require.Len(t, timings, 1)
	assert.InDelta(t, 2.0, timings[0].Value, 0)
	assert.Len(t, r.Samples(), 3)
}
