package formant

import "strconv"

// NumberInput is the headless controller for a numeric input with stepper
// semantics. The backing field holds a float64. Bounds and step behave like
// the slider's: stepping quantizes, then clamps to bounds.
type NumberInput struct {
	field    *Field
	min, max float64
	step     float64
	id       string
	label    string
	disabled bool
	readonly bool
}

// NewNumberInput creates a number input backed by the given field, with
// bounds 0-100 and step 1.
func NewNumberInput(field *Field) *NumberInput {
	return &NumberInput{field: field, min: 0, max: 100, step: 1, id: NewID("number-input")}
}

// Bounds sets the legal range.
func (n *NumberInput) Bounds(min, max float64) *NumberInput {
	n.min = min
	n.max = max
	return n
}

// Step sets the stepper increment. Zero or negative is treated as 1.
func (n *NumberInput) Step(step float64) *NumberInput {
	n.step = step
	return n
}

// Label sets the visible label text.
func (n *NumberInput) Label(text string) *NumberInput {
	n.label = text
	return n
}

// Disabled sets the disabled flag.
func (n *NumberInput) Disabled(b bool) *NumberInput {
	n.disabled = b
	return n
}

// ReadOnly sets the readonly flag.
func (n *NumberInput) ReadOnly(b bool) *NumberInput {
	n.readonly = b
	return n
}

// ID returns the input's element id.
func (n *NumberInput) ID() string {
	return n.id
}

// Mutable reports whether the input accepts changes.
func (n *NumberInput) Mutable() bool {
	return !n.disabled && !n.readonly
}

// Value returns the current numeric value.
func (n *NumberInput) Value() float64 {
	v, _ := n.field.Value().(float64)
	return v
}

func (n *NumberInput) clamp(v float64) float64 {
	if v < n.min {
		return n.min
	}
	if v > n.max {
		return n.max
	}
	return v
}

// Commit writes a value, marks the field touched, and re-validates. The
// value is clamped to bounds but not quantized, matching direct entry.
// No-op while not mutable.
func (n *NumberInput) Commit(v float64) {
	if !n.Mutable() {
		return
	}
	n.field.SetValue(n.clamp(v))
	n.field.SetTouched(true)
	n.field.Validate()
}

// CommitText parses raw text and commits it. Returns false without
// touching the field when the text is not a plain number; locale-aware
// formats are the caller's concern.
func (n *NumberInput) CommitText(s string) bool {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false
	}
	n.Commit(v)
	return true
}

// Increment steps the value up by one quantized step.
func (n *NumberInput) Increment() {
	n.stepBy(1)
}

// Decrement steps the value down by one quantized step.
func (n *NumberInput) Decrement() {
	n.stepBy(-1)
}

func (n *NumberInput) stepBy(dir float64) {
	if !n.Mutable() {
		return
	}
	step := effectiveStep(n.step)
	next := n.clamp(Quantize(n.Value()+dir*step, step))
	n.field.SetValue(next)
	n.field.SetTouched(true)
	n.field.Validate()
}

// LabelProps returns the attribute bundle for the visible label element.
func (n *NumberInput) LabelProps() Props {
	label, _ := LabelPair(n.id, n.label)
	return label
}

// Props returns the spinbutton attribute bundle for the input element.
func (n *NumberInput) Props() Props {
	_, target := LabelPair(n.id, n.label)
	return MergeProps(Props{
		"id":            n.id,
		"role":          "spinbutton",
		"inputmode":     "decimal",
		"aria-valuemin": n.min,
		"aria-valuemax": n.max,
		"aria-valuenow": n.Value(),
		"aria-disabled": n.disabled,
		"aria-readonly": n.readonly,
	}, target, describedBy(n.id, n.field.Err()))
}

// ErrorMessageProps returns the attribute bundle for the input's
// error-message element.
func (n *NumberInput) ErrorMessageProps() Props {
	return ErrorProps(n.id, n.field.Err())
}
