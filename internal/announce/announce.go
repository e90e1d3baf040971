// Package announce delivers accessibility announcements. Announcements
// are fire-and-forget text; nothing reads a result back.
package announce

import (
	"fmt"
	"io"
	"sync"
)

// Announcer receives announcement text.
type Announcer interface {
	Announce(message string)
}

// Discard drops every announcement.
type Discard struct{}

// Announce implements Announcer.
func (Discard) Announce(string) {}

// Writer writes each announcement as one line.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriter creates an Announcer writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Announce implements Announcer.
func (a *Writer) Announce(message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fmt.Fprintln(a.w, message)
}

// BlocksSelected formats the multi-selection announcement.
func BlocksSelected(count int) string {
	if count == 1 {
		return "1 block selected."
	}
	return fmt.Sprintf("%d blocks selected.", count)
}
