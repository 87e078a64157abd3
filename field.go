package formant

import (
	"fmt"
	"math"
)

// Validator checks a field value and returns an error describing why it is
// invalid, or nil.
type Validator func(any) error

// Field is the persistent store behind a widget: the current value, the
// touched/dirty flags, and a validator chain. Widgets never hold a value
// themselves; they read and write their Field.
//
// The value is deliberately untyped: a slider stores float64 or []float64,
// a switch stores bool, a radio group stores string.
type Field struct {
	value      any
	touched    bool
	dirty      bool
	validators []Validator
	err        string
	listeners  []func(any)
}

// NewField creates a field holding an initial value.
func NewField(initial any) *Field {
	return &Field{value: initial}
}

// Validators appends validators to the field's chain.
func (f *Field) Validators(v ...Validator) *Field {
	f.validators = append(f.validators, v...)
	return f
}

// Value returns the current value.
func (f *Field) Value() any {
	return f.value
}

// SetValue replaces the value, marks the field dirty, and notifies
// subscribers. It does not run validation; call Validate after a commit.
func (f *Field) SetValue(v any) {
	f.value = v
	f.dirty = true
	f.notify()
}

// Touched reports whether the user has interacted with the field.
func (f *Field) Touched() bool {
	return f.touched
}

// SetTouched sets the touched flag.
func (f *Field) SetTouched(b bool) {
	f.touched = b
}

// Dirty reports whether the value has changed since creation.
func (f *Field) Dirty() bool {
	return f.dirty
}

// Validate runs the validator chain against the current value, stores the
// first failure as the field's error text, and returns it. An empty string
// means valid.
func (f *Field) Validate() string {
	f.err = ""
	for _, v := range f.validators {
		if err := v(f.value); err != nil {
			f.err = err.Error()
			break
		}
	}
	return f.err
}

// Err returns the error text from the last validation, or "".
func (f *Field) Err() string {
	return f.err
}

// Subscribe adds a value-change listener and returns an unsubscribe function.
func (f *Field) Subscribe(fn func(any)) func() {
	f.listeners = append(f.listeners, fn)
	idx := len(f.listeners) - 1
	return func() {
		// Zero out to allow GC, don't reorder
		f.listeners[idx] = nil
	}
}

func (f *Field) notify() {
	for _, fn := range f.listeners {
		if fn != nil {
			fn(f.value)
		}
	}
}

// numbersOf extracts the numeric values a field holds, skipping unset
// (NaN) positions. Non-numeric values yield nil.
func numbersOf(v any) []float64 {
	switch v := v.(type) {
	case float64:
		if math.IsNaN(v) {
			return nil
		}
		return []float64{v}
	case []float64:
		out := make([]float64, 0, len(v))
		for _, n := range v {
			if !math.IsNaN(n) {
				out = append(out, n)
			}
		}
		return out
	}
	return nil
}

// ============================================================================
// Validators
// ============================================================================

// VRequired rejects nil values and empty strings.
func VRequired(v any) error {
	if v == nil {
		return fmt.Errorf("required")
	}
	if s, ok := v.(string); ok && s == "" {
		return fmt.Errorf("required")
	}
	return nil
}

// VMin rejects numeric values below min.
func VMin(min float64) Validator {
	return func(v any) error {
		for _, n := range numbersOf(v) {
			if n < min {
				return fmt.Errorf("min %v", min)
			}
		}
		return nil
	}
}

// VMax rejects numeric values above max.
func VMax(max float64) Validator {
	return func(v any) error {
		for _, n := range numbersOf(v) {
			if n > max {
				return fmt.Errorf("max %v", max)
			}
		}
		return nil
	}
}

// VChecked rejects unchecked boolean values.
func VChecked(v any) error {
	if b, _ := v.(bool); !b {
		return fmt.Errorf("required")
	}
	return nil
}

// VOrdered rejects numeric sequences that are not non-decreasing. Multi-thumb
// sliders never reorder values themselves; attach this when out-of-order
// commits should surface as a validation error.
func VOrdered(v any) error {
	nums := numbersOf(v)
	for i := 1; i < len(nums); i++ {
		if nums[i] < nums[i-1] {
			return fmt.Errorf("values out of order")
		}
	}
	return nil
}
