package formant

// LabelPair returns the attribute bundles linking a visible label element to
// the control it labels: the first is spread onto the label element, the
// second is merged into the control. With no label text both bundles are
// empty, so callers can merge them unconditionally.
func LabelPair(id, text string) (label Props, target Props) {
	if text == "" {
		return Props{}, Props{}
	}
	labelID := id + "-label"
	return Props{"id": labelID, "for": id},
		Props{"aria-labelledby": labelID}
}

// ErrorProps returns the attribute bundle for a widget's error-message
// element. The element stays mounted and hidden while there is no error so
// the live region announces changes.
func ErrorProps(id, err string) Props {
	return Props{
		"id":        id + "-error",
		"aria-live": "polite",
		"hidden":    err == "",
	}
}

// describedBy returns the control-side linkage for an error message, empty
// when there is no error.
func describedBy(id, err string) Props {
	if err == "" {
		return Props{}
	}
	return Props{
		"aria-describedby": id + "-error",
		"aria-invalid":     true,
	}
}
