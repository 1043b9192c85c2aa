package wirelens

import (
	"context"
	"fmt"
	"reflect"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/zoobzio/capitan"
	"github.com/zoobzio/pipz"
)

// buildRequest flows through the pipz assembly pipeline. It carries the
// job being reconstructed and accumulates the payload stage by stage.
type buildRequest struct {
	// Input fields
	Source Source  // The processing job to reconstruct
	Schema *Schema // Wire schema for the run's modality

	// Metadata fields
	RunID string // Unique identifier for this assembly run

	// Output fields (populated by pipeline)
	Staged  map[string]any // Pre-normalization accumulator
	Payload Payload        // Normalized final payload
}

// Assembler reconstructs wire payloads for one modality. It is immutable
// after construction and safe for concurrent use.
type Assembler struct {
	pipeline pipz.Chainable[*buildRequest]
	schema   *Schema
}

// NewAssembler creates an assembler for the given schema. The pipeline
// runs five stages in order: selectable-script extraction, always-on
// extraction, seed-extras synthesis, schema-driven field copy, and
// normalization. Options wrap the whole pipeline.
func NewAssembler(schema *Schema, opts ...Option) *Assembler {
	var pipeline pipz.Chainable[*buildRequest] = pipz.NewSequence("assemble",
		stageSelectableScript(),
		stageAlwaysonScripts(),
		stageSeedExtras(),
		stageSchemaFields(),
		stageNormalize(),
	)
	for _, opt := range opts {
		pipeline = opt(pipeline)
	}

	return &Assembler{
		pipeline: pipeline,
		schema:   schema,
	}
}

// GetPipeline returns the internal pipeline for composition.
func (a *Assembler) GetPipeline() pipz.Chainable[*buildRequest] {
	return a.pipeline
}

// Schema returns the wire schema this assembler reconstructs against.
func (a *Assembler) Schema() *Schema {
	return a.schema
}

// Assemble reconstructs the wire payload for one job. Failures never
// propagate to the caller: any error or panic during assembly is contained
// into a Diagnostic result, so the surrounding pipeline cannot be
// disrupted by a debug-display failure.
func (a *Assembler) Assemble(ctx context.Context, src Source) (result Result) {
	runID := uuid.New().String()

	capitan.Info(ctx, AssembleStarted,
		RunIDKey.Field(runID),
		ModalityKey.Field(a.schema.Modality()),
	)

	// Containment boundary: a panicking Source (or a bug in a stage) must
	// degrade to a diagnostic, not crash the host run.
	defer func() {
		if rec := recover(); rec != nil {
			diag := &Diagnostic{
				Exception: fmt.Sprint(rec),
				Traceback: string(debug.Stack()),
			}
			capitan.Error(ctx, AssembleFailed,
				RunIDKey.Field(runID),
				ModalityKey.Field(a.schema.Modality()),
				ErrorKey.Field(diag.Exception),
			)
			result = FailedResult(diag)
		}
	}()

	request := &buildRequest{
		Source: src,
		Schema: a.schema,
		RunID:  runID,
		Staged: make(map[string]any),
	}

	processed, err := a.pipeline.Process(ctx, request)
	if err != nil {
		diag := &Diagnostic{
			Exception: err.Error(),
			Traceback: fmt.Sprintf("%+v", err),
		}
		capitan.Error(ctx, AssembleFailed,
			RunIDKey.Field(runID),
			ModalityKey.Field(a.schema.Modality()),
			ErrorKey.Field(diag.Exception),
		)
		return FailedResult(diag)
	}

	capitan.Info(ctx, AssembleCompleted,
		RunIDKey.Field(runID),
		ModalityKey.Field(a.schema.Modality()),
		FieldCountKey.Field(len(processed.Payload)),
	)

	return OkResult(processed.Payload)
}

// stageSelectableScript seeds the payload with the active selectable
// script's name and argument slice.
func stageSelectableScript() pipz.Chainable[*buildRequest] {
	return pipz.Apply("selectable-script", func(_ context.Context, req *buildRequest) (*buildRequest, error) {
		entry, err := selectableScriptPayload(req.Source.ScriptArgs(), req.Source.SelectableScripts())
		if err != nil {
			return req, err
		}
		merge(req.Staged, entry)
		return req, nil
	})
}

// stageAlwaysonScripts seeds the payload with every always-on script's
// argument slice, keyed by script name.
func stageAlwaysonScripts() pipz.Chainable[*buildRequest] {
	return pipz.Apply("alwayson-scripts", func(_ context.Context, req *buildRequest) (*buildRequest, error) {
		merge(req.Staged, alwaysonScriptPayload(req.Source.ScriptArgs(), req.Source.AlwaysOnScripts()))
		return req, nil
	})
}

// stageSeedExtras seeds the payload with the derived seed_enable_extras
// flag.
func stageSeedExtras() pipz.Chainable[*buildRequest] {
	return pipz.Apply("seed-extras", func(_ context.Context, req *buildRequest) (*buildRequest, error) {
		entry, err := seedEnableExtrasPayload(req.Source)
		if err != nil {
			return req, err
		}
		merge(req.Staged, entry)
		return req, nil
	})
}

// stageSchemaFields copies every remaining schema-declared field from the
// job, in schema order. Seeded keys win over same-named schema fields,
// excluded fields are dropped, absent fields are tolerated with a
// diagnostic, and nil values are omitted the way the wire format omits
// absent optionals.
func stageSchemaFields() pipz.Chainable[*buildRequest] {
	return pipz.Apply("schema-fields", func(ctx context.Context, req *buildRequest) (*buildRequest, error) {
		for _, name := range req.Schema.fields {
			if _, seeded := req.Staged[name]; seeded {
				continue
			}
			if _, excluded := ExcludedFields[name]; excluded {
				continue
			}

			value, ok := req.Source.Field(name)
			if !ok {
				// Schema/job version mismatch: tolerated, not fatal.
				capitan.Error(ctx, SchemaFieldMissing,
					RunIDKey.Field(req.RunID),
					ModalityKey.Field(req.Schema.Modality()),
					FieldKey.Field(name),
				)
				continue
			}
			if isNil(value) {
				continue
			}
			req.Staged[name] = value
		}
		return req, nil
	})
}

// stageNormalize rewrites the accumulated mapping into the
// JSON-representable union.
func stageNormalize() pipz.Chainable[*buildRequest] {
	return pipz.Apply("normalize", func(ctx context.Context, req *buildRequest) (*buildRequest, error) {
		normalized, ok := Normalize(ctx, req.Staged).(map[string]any)
		if !ok {
			return req, fmt.Errorf("normalized payload is not a mapping")
		}
		req.Payload = Payload(normalized)
		return req, nil
	})
}

func merge(dst map[string]any, src map[string]any) {
	for k, v := range src {
		dst[k] = v
	}
}

// isNil reports the absence sentinel, including typed nil pointers and
// slices hiding inside an interface value.
func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
