package detector

// ProcessAlive resolves a PID marker file to a plain liveness verdict.
// Unreadable or malformed markers count as not running; the port probe
// is the fallback signal for those cases.
func ProcessAlive(pidFile string) bool {
	alive, err := (PIDFileDetector{PIDFile: pidFile}).Alive()
	if err != nil {
		return false
	}
	return alive
}

// PortOpen resolves a loopback TCP probe to a plain liveness verdict.
func PortOpen(port int) bool {
	alive, _ := (PortDetector{Port: port}).Alive()
	return alive
}

// ServiceUp combines both evidence sources with OR. A service reachable
// on its port counts as up even when its recorded PID is stale, and a
// process that exists but is not yet accepting connections still counts
// as up. The OR trades an occasional hung-but-listening false positive
// for fewer false negatives.
func ServiceUp(pidFile string, port int) bool {
	return ProcessAlive(pidFile) || PortOpen(port)
}
