package wirelens

// MockSource simulates a processing job for testing. Fields are backed by
// a plain map, and panics can be injected on named fields to exercise the
// assembly containment boundary.
type MockSource struct {
	args       []any
	selectable []ScriptDescriptor
	alwayson   []ScriptDescriptor
	fields     map[string]any
	faulty     map[string]string
}

// NewMockSource creates a mock job with the given named fields. The
// argument vector defaults to [0] (no selectable script active).
func NewMockSource(fields map[string]any) *MockSource {
	if fields == nil {
		fields = make(map[string]any)
	}
	return &MockSource{
		args:   []any{0},
		fields: fields,
	}
}

// NewMockSourceWithDefaults creates a mock job whose four seed fields sit
// at their sentinel defaults, merged with the given fields.
func NewMockSourceWithDefaults(fields map[string]any) *MockSource {
	merged := map[string]any{
		fieldSubseed:         -1,
		fieldSubseedStrength: 0.0,
		fieldSeedResizeFromH: 0,
		fieldSeedResizeFromW: 0,
	}
	for k, v := range fields {
		merged[k] = v
	}
	return NewMockSource(merged)
}

// SetScriptArgs replaces the flat argument vector.
func (m *MockSource) SetScriptArgs(args ...any) *MockSource {
	m.args = args
	return m
}

// SetSelectable replaces the selectable-script descriptors.
func (m *MockSource) SetSelectable(scripts ...ScriptDescriptor) *MockSource {
	m.selectable = scripts
	return m
}

// SetAlwaysOn replaces the always-on script descriptors.
func (m *MockSource) SetAlwaysOn(scripts ...ScriptDescriptor) *MockSource {
	m.alwayson = scripts
	return m
}

// SetField sets one named field.
func (m *MockSource) SetField(name string, value any) *MockSource {
	m.fields[name] = value
	return m
}

// FailOn makes Field panic with the given message when the named field is
// accessed, simulating a host attribute whose getter raises.
func (m *MockSource) FailOn(name, message string) *MockSource {
	if m.faulty == nil {
		m.faulty = make(map[string]string)
	}
	m.faulty[name] = message
	return m
}

// ScriptArgs implements Source.
func (m *MockSource) ScriptArgs() []any { return m.args }

// SelectableScripts implements Source.
func (m *MockSource) SelectableScripts() []ScriptDescriptor { return m.selectable }

// AlwaysOnScripts implements Source.
func (m *MockSource) AlwaysOnScripts() []ScriptDescriptor { return m.alwayson }

// Field implements Source.
func (m *MockSource) Field(name string) (any, bool) {
	if message, ok := m.faulty[name]; ok {
		panic(message)
	}
	value, ok := m.fields[name]
	return value, ok
}
