package diag

import "sync"

// Sink receives diagnostics. Implementations must be safe for concurrent use
// because several compilation units may report into the same sink.
type Sink interface {
	Report(d *Diagnostic)
}

// SinkFunc adapts an ordinary function to the Sink interface.
type SinkFunc func(d *Diagnostic)

// Report calls f(d).
func (f SinkFunc) Report(d *Diagnostic) { f(d) }

// Discard is a Sink that drops every diagnostic.
var Discard Sink = SinkFunc(func(*Diagnostic) {})

// Collector keeps every reported diagnostic in memory, in report order.
type Collector struct {
	mu    sync.Mutex
	diags []*Diagnostic
}

// Report implements Sink.
func (c *Collector) Report(d *Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.diags = append(c.diags, d)
}

// Diagnostics returns a copy of the collected diagnostics.
func (c *Collector) Diagnostics() []*Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Diagnostic, len(c.diags))
	copy(out, c.diags)
	return out
}

// Len returns the number of collected diagnostics.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.diags)
}

// Reset drops every collected diagnostic.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.diags = nil
}

// Multi returns a Sink that forwards to every given sink in order.
func Multi(sinks ...Sink) Sink {
	return SinkFunc(func(d *Diagnostic) {
		for _, s := range sinks {
			s.Report(d)
		}
	})
}
