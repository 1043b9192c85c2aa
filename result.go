package wirelens

// Diagnostic captures an assembly failure as displayable data. The shape
// matches what the presentation layer renders in place of a payload: the
// failure message plus the most precise trace available (a goroutine stack
// for recovered panics, the pipeline stage path for plain errors).
type Diagnostic struct {
	Exception string
	Traceback string
}

// Payload renders the diagnostic in the payload shape the presentation
// layer expects.
func (d *Diagnostic) Payload() Payload {
	return Payload{
		"Exception": d.Exception,
		"Traceback": d.Traceback,
	}
}

// Result is the outcome of one assembly run: either a reconstructed
// payload or a diagnostic, never both. The degrade-not-crash policy is
// explicit in this type — callers store whichever variant they received
// and the presentation surface always has something to display.
type Result struct {
	payload Payload
	diag    *Diagnostic
}

// OkResult wraps a successfully assembled payload.
func OkResult(p Payload) Result {
	return Result{payload: p}
}

// FailedResult wraps an assembly failure.
func FailedResult(d *Diagnostic) Result {
	return Result{diag: d}
}

// Ok reports whether the run produced a payload.
func (r Result) Ok() bool { return r.diag == nil && r.payload != nil }

// Payload returns the reconstructed payload, or nil for failed runs.
func (r Result) Payload() Payload { return r.payload }

// Diagnostic returns the failure record, or nil for successful runs.
func (r Result) Diagnostic() *Diagnostic { return r.diag }

// Display returns whichever payload the presentation layer should render:
// the reconstructed request body, or the diagnostic in payload shape.
func (r Result) Display() Payload {
	if r.diag != nil {
		return r.diag.Payload()
	}
	return r.payload
}
