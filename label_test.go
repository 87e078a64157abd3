package formant

import "testing"

func TestLabelPair(t *testing.T) {
	t.Run("LinksLabelToControl", func(t *testing.T) {
		label, target := LabelPair("slider-1", "Volume")
		if label.String("id") != "slider-1-label" {
			t.Errorf("expected slider-1-label, got %q", label.String("id"))
		}
		if label.String("for") != "slider-1" {
			t.Errorf("expected for=slider-1, got %q", label.String("for"))
		}
		if target.String("aria-labelledby") != "slider-1-label" {
			t.Errorf("expected linkage, got %q", target.String("aria-labelledby"))
		}
	})

	t.Run("EmptyWithoutText", func(t *testing.T) {
		label, target := LabelPair("slider-1", "")
		if len(label) != 0 || len(target) != 0 {
			t.Errorf("expected empty bundles, got %v / %v", label, target)
		}
	})
}

func TestErrorProps(t *testing.T) {
	t.Run("HiddenWhileValid", func(t *testing.T) {
		p := ErrorProps("x", "")
		if !p.Bool("hidden") {
			t.Errorf("expected hidden with no error")
		}
		if p.String("aria-live") != "polite" {
			t.Errorf("expected polite live region, got %q", p.String("aria-live"))
		}
	})

	t.Run("VisibleWithError", func(t *testing.T) {
		p := ErrorProps("x", "required")
		if p.Bool("hidden") {
			t.Errorf("expected visible with error")
		}
		if p.String("id") != "x-error" {
			t.Errorf("expected x-error, got %q", p.String("id"))
		}
	})
}

func TestMergeProps(t *testing.T) {
	t.Run("LaterBundlesWin", func(t *testing.T) {
		merged := MergeProps(
			Props{"role": "group", "dir": "ltr"},
			nil,
			Props{"dir": "rtl"},
		)
		if merged.String("dir") != "rtl" {
			t.Errorf("expected rtl, got %q", merged.String("dir"))
		}
		if merged.String("role") != "group" {
			t.Errorf("expected role preserved, got %q", merged.String("role"))
		}
	})
}

func TestNewID(t *testing.T) {
	a := NewID("slider")
	b := NewID("slider")
	if a == b {
		t.Errorf("expected unique ids, got %q twice", a)
	}
}
