package mon

import "time"

// Thunk times some repeated operation. The zero value is ready to use.
type Thunk struct {
	his Histogram
}

// Timer is an in progress timing started from a Thunk.
type Timer struct {
	his   *Histogram
	start time.Time
}

// Start begins timing an execution.
func (t *Thunk) Start() Timer {
	t.his.start()
	return Timer{his: &t.his, start: time.Now()}
}

// Histogram returns the histogram the thunk records into.
func (t *Thunk) Histogram() *Histogram { return &t.his }

// Stop records the elapsed time since Start. Stopping a zero Timer or
// stopping twice does nothing.
func (t *Timer) Stop() {
	if t.his == nil {
		return
	}
	t.his.done(int64(time.Since(t.start)))
	t.his = nil
}
