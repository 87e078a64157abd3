package formant

import (
	"math"
	"testing"
)

func TestField(t *testing.T) {
	t.Run("ValueAndDirty", func(t *testing.T) {
		f := NewField(1.0)
		if f.Dirty() {
			t.Errorf("expected clean field")
		}
		f.SetValue(2.0)
		if f.Value() != 2.0 {
			t.Errorf("expected 2, got %v", f.Value())
		}
		if !f.Dirty() {
			t.Errorf("expected dirty after SetValue")
		}
	})

	t.Run("Touched", func(t *testing.T) {
		f := NewField(nil)
		if f.Touched() {
			t.Errorf("expected untouched")
		}
		f.SetTouched(true)
		if !f.Touched() {
			t.Errorf("expected touched")
		}
	})

	t.Run("ValidateStoresFirstFailure", func(t *testing.T) {
		f := NewField(150.0).Validators(VMin(0), VMax(100))
		if got := f.Validate(); got != "max 100" {
			t.Errorf("expected 'max 100', got %q", got)
		}
		if f.Err() != "max 100" {
			t.Errorf("Err mismatch: %q", f.Err())
		}
		f.SetValue(50.0)
		if got := f.Validate(); got != "" {
			t.Errorf("expected valid, got %q", got)
		}
	})

	t.Run("SetValueDoesNotValidate", func(t *testing.T) {
		f := NewField(0.0).Validators(VMax(10))
		f.SetValue(99.0)
		if f.Err() != "" {
			t.Errorf("expected no error before Validate, got %q", f.Err())
		}
	})

	t.Run("Subscribe", func(t *testing.T) {
		f := NewField(nil)
		var seen []any
		unsub := f.Subscribe(func(v any) { seen = append(seen, v) })
		f.SetValue(1.0)
		f.SetValue(2.0)
		unsub()
		f.SetValue(3.0)
		if len(seen) != 2 {
			t.Fatalf("expected 2 notifications, got %d", len(seen))
		}
		if seen[1] != 2.0 {
			t.Errorf("expected 2.0, got %v", seen[1])
		}
	})
}

func TestValidators(t *testing.T) {
	t.Run("VRequired", func(t *testing.T) {
		if VRequired(nil) == nil {
			t.Errorf("expected error for nil")
		}
		if VRequired("") == nil {
			t.Errorf("expected error for empty string")
		}
		if VRequired("x") != nil {
			t.Errorf("expected nil for non-empty string")
		}
		if VRequired(0.0) != nil {
			t.Errorf("expected nil for zero number")
		}
	})

	t.Run("VMinVMaxOverArrays", func(t *testing.T) {
		v := VMin(10)
		if v([]float64{10, 50, 90}) != nil {
			t.Errorf("expected valid")
		}
		if v([]float64{10, 5, 90}) == nil {
			t.Errorf("expected min violation")
		}
		if VMax(100)([]float64{10, 101}) == nil {
			t.Errorf("expected max violation")
		}
	})

	t.Run("ValidatorsSkipUnsetPositions", func(t *testing.T) {
		if VMin(10)([]float64{math.NaN(), 20}) != nil {
			t.Errorf("expected NaN gap to be skipped")
		}
	})

	t.Run("VOrdered", func(t *testing.T) {
		if VOrdered([]float64{1, 2, 2, 3}) != nil {
			t.Errorf("expected non-decreasing to pass")
		}
		if VOrdered([]float64{1, 3, 2}) == nil {
			t.Errorf("expected out-of-order to fail")
		}
		if VOrdered(5.0) != nil {
			t.Errorf("expected scalar to pass")
		}
	})
}
