package detector

import (
	"fmt"
	"net"
	"time"
)

// DefaultPortTimeout bounds a single connect attempt.
const DefaultPortTimeout = time.Second

// PortDetector detects a service by attempting a TCP connect against
// loopback. A successful connect is closed immediately; no data is
// exchanged. Every failure mode (refused, timeout, unreachable) reads
// as not-listening.
type PortDetector struct {
	Port    int
	Timeout time.Duration
}

func (d PortDetector) Alive() (bool, error) {
	timeout := d.Timeout
	if timeout <= 0 {
		timeout = DefaultPortTimeout
	}
	addr := net.JoinHostPort("127.0.0.1", fmt.Sprintf("%d", d.Port))
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return false, nil
	}
	_ = conn.Close()
	return true, nil
}

func (d PortDetector) Describe() string { return fmt.Sprintf("port:%d", d.Port) }
