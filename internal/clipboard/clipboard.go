// Package clipboard copies code examples to the system clipboard.
package clipboard

import (
	"errors"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available
var ErrUnsupported = errors.New("clipboard not available")

// Clipboard defines the interface for clipboard operations
type Clipboard interface {
	Copy(text string) error
}

// systemClipboard implements Clipboard using the platform clipboard
type systemClipboard struct{}

// System returns the platform clipboard
func System() Clipboard {
	return systemClipboard{}
}

// Copy copies text to the system clipboard
func (systemClipboard) Copy(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

// Recorder keeps copied text in memory. Set Err to make every Copy fail.
type Recorder struct {
	mu     sync.Mutex
	copies []string
	Err    error
}

// Copy records text, or returns r.Err
func (r *Recorder) Copy(text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.copies = append(r.copies, text)
	return nil
}

// Copies returns everything copied so far
func (r *Recorder) Copies() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.copies...)
}

// Last returns the most recent copy, or ""
func (r *Recorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.copies) == 0 {
		return ""
	}
	return r.copies[len(r.copies)-1]
}
