package formant

// Props is an attribute bundle for one element: attribute names mapped to
// values or event handlers. Consumers spread these onto whatever they
// render; the engine never touches an element itself.
type Props map[string]any

// PointerHandler is an event handler invoked with the pointer's page
// coordinates. Stored in Props under keys like "onpointerdown".
type PointerHandler func(Point)

// ActivateHandler is an event handler for click/keyboard activation.
type ActivateHandler func()

// MergeProps combines attribute bundles left to right. Later bundles win on
// key conflicts. nil bundles are skipped.
func MergeProps(bundles ...Props) Props {
	merged := Props{}
	for _, b := range bundles {
		for k, v := range b {
			merged[k] = v
		}
	}
	return merged
}

// Get returns the value for key, or nil if absent.
func (p Props) Get(key string) any {
	if p == nil {
		return nil
	}
	return p[key]
}

// String returns the value for key as a string, or "" if absent or not a string.
func (p Props) String(key string) string {
	s, _ := p.Get(key).(string)
	return s
}

// Bool returns the value for key as a bool, false if absent or not a bool.
func (p Props) Bool(key string) bool {
	b, _ := p.Get(key).(bool)
	return b
}
