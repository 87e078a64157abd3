package formant

// Switch is the headless controller for a boolean toggle. The backing
// field holds a bool.
type Switch struct {
	field    *Field
	id       string
	label    string
	disabled bool
	readonly bool
}

// NewSwitch creates a switch backed by the given field.
func NewSwitch(field *Field) *Switch {
	return &Switch{field: field, id: NewID("switch")}
}

// Label sets the visible label text.
func (s *Switch) Label(text string) *Switch {
	s.label = text
	return s
}

// Disabled sets the disabled flag.
func (s *Switch) Disabled(b bool) *Switch {
	s.disabled = b
	return s
}

// ReadOnly sets the readonly flag.
func (s *Switch) ReadOnly(b bool) *Switch {
	s.readonly = b
	return s
}

// ID returns the switch's element id.
func (s *Switch) ID() string {
	return s.id
}

// Mutable reports whether the switch accepts changes.
func (s *Switch) Mutable() bool {
	return !s.disabled && !s.readonly
}

// Checked returns the current state.
func (s *Switch) Checked() bool {
	b, _ := s.field.Value().(bool)
	return b
}

// SetChecked commits a state, marks the field touched, and re-validates.
// No-op while not mutable.
func (s *Switch) SetChecked(b bool) {
	if !s.Mutable() {
		return
	}
	s.field.SetValue(b)
	s.field.SetTouched(true)
	s.field.Validate()
}

// Toggle flips the current state.
func (s *Switch) Toggle() {
	s.SetChecked(!s.Checked())
}

// LabelProps returns the attribute bundle for the visible label element.
func (s *Switch) LabelProps() Props {
	label, _ := LabelPair(s.id, s.label)
	return label
}

// Props returns the attribute bundle for the switch control itself,
// including the activation handler.
func (s *Switch) Props() Props {
	_, target := LabelPair(s.id, s.label)
	return MergeProps(Props{
		"id":            s.id,
		"role":          "switch",
		"aria-checked":  s.Checked(),
		"aria-disabled": s.disabled,
		"onclick":       ActivateHandler(s.Toggle),
	}, target, describedBy(s.id, s.field.Err()))
}

// ErrorMessageProps returns the attribute bundle for the switch's
// error-message element.
func (s *Switch) ErrorMessageProps() Props {
	return ErrorProps(s.id, s.field.Err())
}
