package formant

import "math"

// Thumb is one draggable handle of a slider. A thumb owns nothing beyond
// its identity and the ability to take focus; its value lives in the
// slider's field at the thumb's registry index.
type Thumb interface {
	Focus()
}

// ThumbRange is the instantaneous legal window for one thumb. Min and Max
// come from the thumb's immediate neighbors in registry order, falling back
// to the slider's absolute bounds where a neighbor is missing or unset.
// Never cached: recompute on every read so it tracks neighbor movement.
type ThumbRange struct {
	Min         float64
	Max         float64
	AbsoluteMin float64
	AbsoluteMax float64
}

// Slider is the headless controller for a single- or multi-thumb slider.
// It owns the thumb registry and the track geometry, and treats its Field
// as the sole store for the committed value: float64 for one thumb,
// []float64 indexed by registry position for several.
//
// usage:
//
//	field := NewField(0.0)
//	slider := NewSlider(field).Bounds(0, 100).Step(5).Label("Volume")
//	handle := slider.Register(myThumb)
type Slider struct {
	field *Field

	min, max    float64
	step        float64
	orientation Orientation
	direction   Direction
	disabled    bool
	readonly    bool

	id    string
	label string

	thumbs   []Thumb // registration order, the source of neighbor truth
	track    Rect
	measured bool
}

// NewSlider creates a slider backed by the given field, with bounds 0-100,
// step 1, horizontal orientation, and the ambient inline direction.
func NewSlider(field *Field) *Slider {
	return &Slider{
		field:     field,
		min:       0,
		max:       100,
		step:      1,
		direction: AmbientDirection(),
		id:        NewID("slider"),
	}
}

// Bounds sets the absolute legal range.
func (s *Slider) Bounds(min, max float64) *Slider {
	s.min = min
	s.max = max
	return s
}

// Step sets the quantization step. Zero or negative is treated as 1 at the
// point of use.
func (s *Slider) Step(step float64) *Slider {
	s.step = step
	return s
}

// Vertical switches the slider to vertical orientation.
func (s *Slider) Vertical() *Slider {
	s.orientation = Vertical
	return s
}

// Direction sets an explicit inline direction, overriding the ambient one.
func (s *Slider) Direction(d Direction) *Slider {
	s.direction = d
	return s
}

// Label sets the visible label text.
func (s *Slider) Label(text string) *Slider {
	s.label = text
	return s
}

// Disabled sets the disabled flag.
func (s *Slider) Disabled(b bool) *Slider {
	s.disabled = b
	return s
}

// ReadOnly sets the readonly flag.
func (s *Slider) ReadOnly(b bool) *Slider {
	s.readonly = b
	return s
}

// ID returns the slider's element id.
func (s *Slider) ID() string {
	return s.id
}

// Field returns the backing field.
func (s *Slider) Field() *Field {
	return s.field
}

// Mutable reports whether the slider accepts value changes.
func (s *Slider) Mutable() bool {
	return !s.disabled && !s.readonly
}

// SliderRange returns the absolute bounds.
func (s *Slider) SliderRange() Bounds {
	return Bounds{Min: s.min, Max: s.max}
}

// EffectiveStep returns the step normalized for use: 1 when unset or invalid.
func (s *Slider) EffectiveStep() float64 {
	return effectiveStep(s.step)
}

// Orientation returns the slider's orientation.
func (s *Slider) Orientation() Orientation {
	return s.orientation
}

// InlineDirection returns the slider's inline direction.
func (s *Slider) InlineDirection() Direction {
	return s.direction
}

// SetTrackRect records the track's measured bounding box. Until this is
// called, track interactions are ignored and position mapping yields 0.
func (s *Slider) SetTrackRect(r Rect) {
	s.track = r
	s.measured = true
}

// ============================================================================
// Thumb registry
// ============================================================================

// Register appends a thumb to the registry and returns its handle. Registry
// order is registration order, not value order; the handle's index is the
// thumb's live position and shifts when earlier thumbs deregister.
func (s *Slider) Register(t Thumb) *ThumbHandle {
	s.thumbs = append(s.thumbs, t)
	return &ThumbHandle{slider: s, thumb: t}
}

// Deregister removes the first registry entry with this identity. Unknown
// thumbs are a no-op, so teardown paths can deregister unconditionally.
func (s *Slider) Deregister(t Thumb) {
	for i, th := range s.thumbs {
		if th == t {
			s.thumbs = append(s.thumbs[:i], s.thumbs[i+1:]...)
			return
		}
	}
}

// ThumbCount returns the number of registered thumbs.
func (s *Slider) ThumbCount() int {
	return len(s.thumbs)
}

// indexOf rescans the registry for a thumb's live position. Never cached;
// positions shift whenever an earlier entry is removed.
func (s *Slider) indexOf(t Thumb) int {
	for i, th := range s.thumbs {
		if th == t {
			return i
		}
	}
	return -1
}

// ============================================================================
// Value access and range resolution
// ============================================================================

// ThumbValue returns the committed value at a registry index. A scalar
// field answers only index 0; an array field answers indexes it covers with
// a set (non-NaN) element. Everything else reports ok=false.
func (s *Slider) ThumbValue(index int) (float64, bool) {
	switch v := s.field.Value().(type) {
	case float64:
		if index == 0 && !math.IsNaN(v) {
			return v, true
		}
	case []float64:
		if index >= 0 && index < len(v) && !math.IsNaN(v[index]) {
			return v[index], true
		}
	}
	return 0, false
}

// ThumbRangeAt resolves the legal window for the thumb at a registry index:
// the previous neighbor's value to the next neighbor's value, with absolute
// bounds standing in for missing or unset neighbors.
func (s *Slider) ThumbRangeAt(index int) ThumbRange {
	r := ThumbRange{
		Min:         s.min,
		Max:         s.max,
		AbsoluteMin: s.min,
		AbsoluteMax: s.max,
	}
	if index < 0 {
		return r
	}
	if v, ok := s.ThumbValue(index - 1); ok {
		r.Min = v
	}
	if v, ok := s.ThumbValue(index + 1); ok {
		r.Max = v
	}
	return r
}

// ============================================================================
// Commit and track interaction
// ============================================================================

// CommitThumbValue writes a value for the thumb at a registry index and
// re-runs validation. With at most one thumb the field holds the scalar
// itself; otherwise the field holds an array, grown as needed with unset
// (NaN) gap positions. The value is written as given: quantizing and
// clamping happen before the commit, in track resolution or in the
// caller's own drag logic.
func (s *Slider) CommitThumbValue(index int, value float64) {
	if !s.Mutable() || index < 0 {
		return
	}
	if len(s.thumbs) <= 1 {
		s.field.SetValue(value)
	} else {
		current, _ := s.field.Value().([]float64)
		n := len(current)
		if index+1 > n {
			n = index + 1
		}
		next := make([]float64, n)
		for i := range next {
			next[i] = math.NaN()
		}
		copy(next, current)
		next[index] = value
		s.field.SetValue(next)
	}
	s.field.Validate()
}

// HandleTrackPointerDown resolves a pointer-down on the track to a thumb
// and commits the mapped value to it. The target value is computed from
// the track geometry; each registered thumb is admissible if the target
// falls inside its current window; among admissible thumbs the one whose
// value is closest to the target wins, earliest registered on ties. The
// winning thumb is focused and the field marked touched. No-op while the
// slider is not mutable or the track is unmeasured.
func (s *Slider) HandleTrackPointerDown(pt Point) {
	if !s.Mutable() || !s.measured {
		return
	}
	target := PositionToValue(pt, s.track, s.orientation, s.direction, s.SliderRange(), s.EffectiveStep())

	closest := -1
	closestDist := math.Inf(1)
	for i := range s.thumbs {
		r := s.ThumbRangeAt(i)
		if target < r.Min || target > r.Max {
			continue
		}
		v, ok := s.ThumbValue(i)
		if !ok {
			continue
		}
		if d := math.Abs(v - target); d < closestDist {
			closest = i
			closestDist = d
		}
	}
	if closest < 0 {
		return
	}
	s.CommitThumbValue(closest, target)
	s.field.SetTouched(true)
	s.thumbs[closest].Focus()
}

// ============================================================================
// Derived attribute bundles
// ============================================================================

// LabelProps returns the attribute bundle for the slider's visible label
// element. Empty when the slider has no label text.
func (s *Slider) LabelProps() Props {
	label, _ := LabelPair(s.id, s.label)
	return label
}

// GroupProps returns the attribute bundle for the container element
// grouping the track and thumbs. Derived fresh on every call.
func (s *Slider) GroupProps() Props {
	_, target := LabelPair(s.id, s.label)
	return MergeProps(Props{
		"id":            s.id,
		"role":          "group",
		"dir":           s.direction.String(),
		"aria-disabled": s.disabled,
	}, target, describedBy(s.id, s.field.Err()))
}

// TrackProps returns the attribute bundle for the track element, including
// the pointer-down handler and a container-query sizing hint keyed to the
// orientation.
func (s *Slider) TrackProps() Props {
	containerType := "inline-size"
	if s.orientation == Vertical {
		containerType = "size"
	}
	return Props{
		"data-orientation": s.orientation.String(),
		"style":            "container-type: " + containerType,
		"onpointerdown":    PointerHandler(s.HandleTrackPointerDown),
	}
}

// ErrorMessageProps returns the attribute bundle for the slider's
// error-message element.
func (s *Slider) ErrorMessageProps() Props {
	return ErrorProps(s.id, s.field.Err())
}

// ============================================================================
// Registration handle
// ============================================================================

// ThumbHandle is the read/write surface a registered thumb renders from.
// Everything is resolved against the slider's live state at call time, so a
// thumb widget can compute its own drag clamping without re-deriving
// slider-wide state. All methods stay safe after deregistration.
type ThumbHandle struct {
	slider *Slider
	thumb  Thumb
}

// Index returns the thumb's live registry position, or -1 once deregistered.
func (h *ThumbHandle) Index() int {
	return h.slider.indexOf(h.thumb)
}

// Range returns the thumb's current legal window.
func (h *ThumbHandle) Range() ThumbRange {
	return h.slider.ThumbRangeAt(h.Index())
}

// SliderRange returns the slider's absolute bounds.
func (h *ThumbHandle) SliderRange() Bounds {
	return h.slider.SliderRange()
}

// Step returns the slider's normalized step.
func (h *ThumbHandle) Step() float64 {
	return h.slider.EffectiveStep()
}

// Orientation returns the slider's orientation.
func (h *ThumbHandle) Orientation() Orientation {
	return h.slider.Orientation()
}

// InlineDirection returns the slider's inline direction.
func (h *ThumbHandle) InlineDirection() Direction {
	return h.slider.InlineDirection()
}

// LabelProps returns the slider's label attribute bundle.
func (h *ThumbHandle) LabelProps() Props {
	return h.slider.LabelProps()
}

// ErrorMessageProps returns the slider's error-message attribute bundle.
func (h *ThumbHandle) ErrorMessageProps() Props {
	return h.slider.ErrorMessageProps()
}

// Value returns the thumb's committed value, ok=false while unset.
func (h *ThumbHandle) Value() (float64, bool) {
	return h.slider.ThumbValue(h.Index())
}

// SetValue commits a value for this thumb. The caller resolves quantizing
// and clamping first, against Range and Step.
func (h *ThumbHandle) SetValue(v float64) {
	h.slider.CommitThumbValue(h.Index(), v)
}

// ValueForPoint maps a page position to a slider value using the slider's
// current geometry. 0 while the track is unmeasured.
func (h *ThumbHandle) ValueForPoint(pt Point) float64 {
	s := h.slider
	return PositionToValue(pt, s.track, s.orientation, s.direction, s.SliderRange(), s.EffectiveStep())
}

// SetTouched sets the backing field's touched flag.
func (h *ThumbHandle) SetTouched(b bool) {
	h.slider.field.SetTouched(b)
}

// Disabled reports whether the slider is disabled.
func (h *ThumbHandle) Disabled() bool {
	return h.slider.disabled
}

// Deregister removes this thumb from the registry. Idempotent.
func (h *ThumbHandle) Deregister() {
	h.slider.Deregister(h.thumb)
}
