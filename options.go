package wirelens

import (
	"time"

	"github.com/zoobzio/pipz"
)

// Option modifies the assembly pipeline.
type Option func(pipz.Chainable[*buildRequest]) pipz.Chainable[*buildRequest]

// WithTimeout adds timeout protection to the pipeline. Assembly is
// allocation-only and normally fast relative to the surrounding image
// work, but a pathological job graph can make normalization crawl;
// exceeding the duration cancels the run, which surfaces as a diagnostic.
func WithTimeout(duration time.Duration) Option {
	return func(pipeline pipz.Chainable[*buildRequest]) pipz.Chainable[*buildRequest] {
		return pipz.NewTimeout("timeout", pipeline, duration)
	}
}

// WithErrorHandler adds error handling to the pipeline. The handler
// receives error context before the assembly boundary converts the
// failure into a diagnostic result.
func WithErrorHandler(handler pipz.Chainable[*pipz.Error[*buildRequest]]) Option {
	return func(pipeline pipz.Chainable[*buildRequest]) pipz.Chainable[*buildRequest] {
		return pipz.NewHandle("error-handler", pipeline, handler)
	}
}

// WithFallback runs an alternative pipeline when the primary fails, e.g. a
// reduced assembly that skips script extraction for hosts with exotic
// argument layouts.
func WithFallback(fallback pipz.Chainable[*buildRequest]) Option {
	return func(pipeline pipz.Chainable[*buildRequest]) pipz.Chainable[*buildRequest] {
		return pipz.NewFallback("fallback", pipeline, fallback)
	}
}
