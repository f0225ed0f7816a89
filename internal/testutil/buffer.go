package testutil

import (
	"bytes"
	"strings"
	"sync"
)

// ThreadSafeBuffer is an io.Writer for capturing log output from concurrent handlers.
type ThreadSafeBuffer struct {
	buffer bytes.Buffer
	mutex  sync.Mutex
}

// Write implements io.Writer
func (b *ThreadSafeBuffer) Write(p []byte) (n int, err error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.buffer.Write(p)
}

// String returns the accumulated buffer as a string
func (b *ThreadSafeBuffer) String() string {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.buffer.String()
}

// Count returns how many times substr appears in the captured output.
func (b *ThreadSafeBuffer) Count(substr string) int {
	return strings.Count(b.String(), substr)
}
