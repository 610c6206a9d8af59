package detector

import (
	"net"
	"testing"
)

func listenEphemeral(t *testing.T) (net.Listener, int) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	return ln, ln.Addr().(*net.TCPAddr).Port
}

func TestPortDetector_OpenAndClosed(t *testing.T) {
	ln, port := listenEphemeral(t)

	alive, err := (PortDetector{Port: port}).Alive()
	if err != nil {
		t.Fatalf("Alive error: %v", err)
	}
	if !alive {
		t.Fatalf("expected open port %d to be detected", port)
	}

	_ = ln.Close()
	alive, err = (PortDetector{Port: port}).Alive()
	if err != nil {
		t.Fatalf("Alive error: %v", err)
	}
	if alive {
		t.Fatalf("expected closed port %d to be not detected", port)
	}
}

func TestPortDetector_InvalidPort(t *testing.T) {
	alive, err := (PortDetector{Port: 0}).Alive()
	if err != nil {
		t.Fatalf("Alive error: %v", err)
	}
	if alive {
		t.Fatalf("expected port 0 probe to fail")
	}
}
