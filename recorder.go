package wirelens

import (
	"sync"

	"github.com/google/uuid"
)

// Recorder holds the most recently assembled result for on-demand pulls
// from the presentation layer. It is a single slot: each processing run
// overwrites the previous one, and there is no teardown beyond that.
//
// The original host model is single-threaded, but embedding in a
// multi-request server makes the write/read pair race-prone, so the slot
// is lock-guarded and each recording gets its own ID for cross-run
// disambiguation.
//
// Recorders are safe for concurrent use by multiple goroutines.
type Recorder struct {
	id      string
	last    *Result
	lastRun string
	mu      sync.RWMutex
}

// NewRecorder creates an empty recorder with a unique ID.
func NewRecorder() *Recorder {
	return &Recorder{
		id: uuid.New().String(),
	}
}

// ID returns the unique identifier for this recorder.
func (r *Recorder) ID() string {
	return r.id
}

// Record stores the outcome of one assembly run, overwriting any previous
// result. The run ID ties the stored slot back to the assembly events that
// produced it.
func (r *Recorder) Record(res Result) {
	r.RecordRun(res, uuid.New().String())
}

// RecordRun stores a result under an explicit run ID.
func (r *Recorder) RecordRun(res Result, runID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = &res
	r.lastRun = runID
}

// Last returns the most recent result and whether one has been recorded.
func (r *Recorder) Last() (Result, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.last == nil {
		return Result{}, false
	}
	return *r.last, true
}

// LastRunID returns the run ID of the stored result, or "" when empty.
func (r *Recorder) LastRunID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastRun
}

// Clear empties the slot, so the next Render yields the sentinel again.
func (r *Recorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = nil
	r.lastRun = ""
}

// Render returns the canonical text of the stored result: the payload, the
// diagnostic in payload shape, or the "No Payload Found" sentinel when
// nothing has been recorded.
func (r *Recorder) Render() (string, error) {
	r.mu.RLock()
	last := r.last
	r.mu.RUnlock()

	if last == nil {
		return Format(nil)
	}
	return Format(last.Display())
}
