// Package testutil holds helpers shared by the app1 tests.
package testutil

import (
	"fmt"
	"net"
	"sync"
	"testing"
)

var (
	portMutex = &sync.Mutex{}
	usedPorts = make(map[int]struct{})
)

// GetRandomPort returns a free TCP port that has not been handed out before
// in this test binary.
func GetRandomPort(t *testing.T) int {
	t.Helper()
	for {
		p := freePort(t)

		portMutex.Lock()
		_, taken := usedPorts[p]
		if !taken {
			usedPorts[p] = struct{}{}
		}
		portMutex.Unlock()

		if !taken {
			return p
		}
	}
}

// LocalURL builds a loopback URL for the given port and path.
func LocalURL(port int, path string) string {
	return fmt.Sprintf("http://127.0.0.1:%d%s", port, path)
}

func freePort(t *testing.T) int {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to get random port: %v", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port
	if err := listener.Close(); err != nil {
		t.Fatalf("Failed to close listener: %v", err)
	}
	return port
}
