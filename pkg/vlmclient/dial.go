package vlmclient

import (
	"context"
	"net"
	"time"
)

// netDialer adapts a connect timeout into the DialContext hook
// http.Transport expects, keeping connection-establishment timing
// independent of the overall per-request timeout on *http.Client.
type netDialer struct {
	timeout time.Duration
}

func (d *netDialer) dialContext(ctx context.Context, network, addr string) (net.Conn, error) {
	dialer := net.Dialer{Timeout: d.timeout}
	return dialer.DialContext(ctx, network, addr)
}
