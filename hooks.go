package wirelens

import "github.com/zoobzio/capitan"

// Signals for hook events.
const (
	AssembleStarted      = capitan.Signal("payload.assemble.started")
	AssembleCompleted    = capitan.Signal("payload.assemble.completed")
	AssembleFailed       = capitan.Signal("payload.assemble.failed")
	SchemaFieldMissing   = capitan.Signal("payload.field.missing")
	NormalizeUnsupported = capitan.Signal("payload.normalize.unsupported")
)

// Keys for hook event fields.
var (
	// Run identification.
	RunIDKey    = capitan.NewStringKey("payload.run.id")
	ModalityKey = capitan.NewStringKey("payload.modality")

	// Field-level diagnostics.
	FieldKey     = capitan.NewStringKey("payload.field")
	ValueTypeKey = capitan.NewStringKey("payload.value.type")

	// Assembly results.
	FieldCountKey = capitan.NewIntKey("payload.field.count")

	// Error information.
	ErrorKey = capitan.NewStringKey("payload.error")
)
