package durability

import (
	"context"
	"os"
	"sync"
)

const (
	filePerm = 0600
)

// FileEngine is the default IOEngine: a single log file opened
// create|write-only|append, synced on every write (§6). Truncate and
// Write are synchronous here; the manager's housekeeping loop is what
// gives them async-submission semantics from the caller's point of view.
type FileEngine struct {
	path string

	mu   sync.Mutex
	file *os.File
}

func NewFileEngine(path string) (*FileEngine, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND|os.O_SYNC, filePerm)
	if hasError(err) {
		return nil, err
	}

	return &FileEngine{path: path, file: f}, nil
}

// Truncate zeroes the log file to length 0 and rewinds the append
// position, ready for a fresh snapshot header (§6).
func (e *FileEngine) Truncate(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.file.Truncate(0); hasError(err) {
		return err
	}
	_, err := e.file.Seek(0, 0)
	return err
}

// Write appends record at the file's current position.
func (e *FileEngine) Write(ctx context.Context, record []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, err := e.file.Write(record)
	return err
}

func (e *FileEngine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.file.Close()
}

func hasError(err error) bool {
	return err != nil
}
