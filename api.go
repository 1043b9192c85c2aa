// Package wirelens reconstructs the HTTP API request payload that would
// reproduce an in-memory image-generation job, and renders it for
// inspection.
//
// The engine walks a processing object through four stages: script-argument
// extraction, derived-field synthesis, schema-driven field copy, and
// JSON-compatibility normalization. The result is a payload guaranteed to
// serialize cleanly, or an explicit diagnostic when assembly fails — the
// host pipeline is never disrupted by a debug-display failure.
//
// Basic usage:
//
//	assembler := wirelens.NewAssembler(wirelens.Txt2ImgSchema())
//	recorder := wirelens.NewRecorder()
//	recorder.Record(assembler.Assemble(ctx, job))
//	out, _ := recorder.Render()
//	fmt.Println(out)
//
// All non-fatal diagnostics are emitted as capitan events; subscribe with
// capitan.Hook on the signals declared in this package.
package wirelens

// Source is the host-facing view of one processing job. It exposes the flat
// script-argument vector, the registered script descriptors, and named
// attribute access for schema-driven field copy.
//
// Implementations must tolerate repeated Field calls for the same name.
// Field returns false when the job has no such attribute; the assembler
// treats that as a tolerated schema/job version mismatch, not an error.
type Source interface {
	// ScriptArgs returns the flat ordered argument vector. Its first
	// element is the selectable-script index (0 = none active).
	ScriptArgs() []any

	// SelectableScripts returns the mutually exclusive script descriptors
	// in registration order. The selectable index k>0 selects entry k-1.
	SelectableScripts() []ScriptDescriptor

	// AlwaysOnScripts returns the unconditionally included script
	// descriptors in registration order.
	AlwaysOnScripts() []ScriptDescriptor

	// Field returns the named attribute and whether it exists.
	Field(name string) (any, bool)
}

// ScriptDescriptor locates one script's arguments inside the flat argument
// vector. The range is half-open: args[ArgsFrom:ArgsTo]. Ranges across
// descriptors are contiguous and non-overlapping by host construction; the
// engine does not enforce that.
type ScriptDescriptor struct {
	Name     string
	ArgsFrom int
	ArgsTo   int
}

// Payload is a reconstructed request body. Every value in it is part of the
// JSON-representable union produced by Normalize: nil, bool, finite number,
// string, []any, or map[string]any.
type Payload map[string]any

// Modality identifiers for the two request kinds a schema can describe.
const (
	ModalityTxt2Img = "txt2img"
	ModalityImg2Img = "img2img"
)
