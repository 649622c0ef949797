package logger

import (
	"bufio"
	"bytes"
	"io"
	"sync"
	"time"
)

// SmartWriter buffers log lines and flushes them when the buffer fills,
// when the flush interval elapses, on an error/fatal line, or on Sync/Close.
type SmartWriter struct {
	writer        io.Writer
	bufWriter     *bufio.Writer
	mu            sync.Mutex
	flushInterval time.Duration
	stopChan      chan struct{}
	wg            sync.WaitGroup
}

// NewSmartWriter creates a new SmartWriter
func NewSmartWriter(w io.Writer, flushInterval time.Duration) *SmartWriter {
	sw := &SmartWriter{
		writer:        w,
		bufWriter:     bufio.NewWriterSize(w, 64*1024),
		flushInterval: flushInterval,
		stopChan:      make(chan struct{}),
	}

	// Start background flusher
	sw.wg.Add(1)
	go sw.runFlusher()

	return sw
}

// Write implements io.Writer
func (sw *SmartWriter) Write(p []byte) (n int, err error) {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	n, err = sw.bufWriter.Write(p)

	// bufio flushes on its own when full; error and fatal lines go out at once.
	if isUrgent(p) {
		_ = sw.bufWriter.Flush()
	}

	return n, err
}

// Sync flushes the buffer
func (sw *SmartWriter) Sync() error {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return sw.bufWriter.Flush()
}

// Close flushes and stops the background flusher
func (sw *SmartWriter) Close() error {
	close(sw.stopChan)
	sw.wg.Wait()
	return sw.Sync()
}

// isUrgent matches error/fatal lines in both the JSON and the console layout.
func isUrgent(p []byte) bool {
	for _, marker := range urgentMarkers {
		if bytes.Contains(p, marker) {
			return true
		}
	}
	return false
}

var urgentMarkers = [][]byte{
	[]byte(`"level":"error"`),
	[]byte(`"level":"fatal"`),
	[]byte(" ERROR "),
	[]byte(" FATAL "),
}

func (sw *SmartWriter) runFlusher() {
	defer sw.wg.Done()
	ticker := time.NewTicker(sw.flushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			_ = sw.Sync()
		case <-sw.stopChan:
			return
		}
	}
}
