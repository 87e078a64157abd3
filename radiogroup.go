package formant

// RadioGroup is the headless controller for a one-of-N choice. The backing
// field holds the selected item's string value. Items register in
// declaration order, the same identity-scan registry the slider uses for
// thumbs, and keyboard navigation roves over that order.
type RadioGroup struct {
	field    *Field
	id       string
	label    string
	disabled bool
	readonly bool

	items    []*RadioItem // registration order
	focusIdx int
}

// RadioItem is one registered choice.
type RadioItem struct {
	group *RadioGroup
	value string
	id    string
}

// NewRadioGroup creates a radio group backed by the given field.
func NewRadioGroup(field *Field) *RadioGroup {
	return &RadioGroup{field: field, id: NewID("radio-group")}
}

// Label sets the visible label text.
func (g *RadioGroup) Label(text string) *RadioGroup {
	g.label = text
	return g
}

// Disabled sets the disabled flag.
func (g *RadioGroup) Disabled(b bool) *RadioGroup {
	g.disabled = b
	return g
}

// ReadOnly sets the readonly flag.
func (g *RadioGroup) ReadOnly(b bool) *RadioGroup {
	g.readonly = b
	return g
}

// ID returns the group's element id.
func (g *RadioGroup) ID() string {
	return g.id
}

// Mutable reports whether the group accepts selection changes.
func (g *RadioGroup) Mutable() bool {
	return !g.disabled && !g.readonly
}

// Value returns the selected item value, or "".
func (g *RadioGroup) Value() string {
	s, _ := g.field.Value().(string)
	return s
}

// RegisterItem appends a choice and returns its handle.
func (g *RadioGroup) RegisterItem(value string) *RadioItem {
	item := &RadioItem{group: g, value: value, id: NewID("radio")}
	g.items = append(g.items, item)
	return item
}

// DeregisterItem removes the first registry entry with this identity.
// Unknown items are a no-op.
func (g *RadioGroup) DeregisterItem(item *RadioItem) {
	for i, it := range g.items {
		if it == item {
			g.items = append(g.items[:i], g.items[i+1:]...)
			if g.focusIdx >= len(g.items) && g.focusIdx > 0 {
				g.focusIdx--
			}
			return
		}
	}
}

// ItemCount returns the number of registered items.
func (g *RadioGroup) ItemCount() int {
	return len(g.items)
}

// FocusNext moves the roving focus to the next item, wrapping.
func (g *RadioGroup) FocusNext() {
	if len(g.items) > 0 {
		g.focusIdx = (g.focusIdx + 1) % len(g.items)
	}
}

// FocusPrev moves the roving focus to the previous item, wrapping.
func (g *RadioGroup) FocusPrev() {
	if len(g.items) > 0 {
		g.focusIdx = (g.focusIdx + len(g.items) - 1) % len(g.items)
	}
}

// Focused returns the index of the item holding roving focus.
func (g *RadioGroup) Focused() int {
	return g.focusIdx
}

func (g *RadioGroup) selectValue(v string) {
	if !g.Mutable() {
		return
	}
	g.field.SetValue(v)
	g.field.SetTouched(true)
	g.field.Validate()
}

// LabelProps returns the attribute bundle for the group's label element.
func (g *RadioGroup) LabelProps() Props {
	label, _ := LabelPair(g.id, g.label)
	return label
}

// GroupProps returns the attribute bundle for the group container.
func (g *RadioGroup) GroupProps() Props {
	_, target := LabelPair(g.id, g.label)
	return MergeProps(Props{
		"id":            g.id,
		"role":          "radiogroup",
		"aria-disabled": g.disabled,
	}, target, describedBy(g.id, g.field.Err()))
}

// ErrorMessageProps returns the attribute bundle for the group's
// error-message element.
func (g *RadioGroup) ErrorMessageProps() Props {
	return ErrorProps(g.id, g.field.Err())
}

// Value returns the item's value.
func (it *RadioItem) Value() string {
	return it.value
}

// Selected reports whether this item is the group's current value.
func (it *RadioItem) Selected() bool {
	return it.group.Value() == it.value
}

// Index returns the item's live registry position, or -1 once deregistered.
func (it *RadioItem) Index() int {
	for i, other := range it.group.items {
		if other == it {
			return i
		}
	}
	return -1
}

// Select commits this item as the group's value.
func (it *RadioItem) Select() {
	it.group.selectValue(it.value)
}

// Props returns the attribute bundle for the item element.
func (it *RadioItem) Props() Props {
	return Props{
		"id":           it.id,
		"role":         "radio",
		"aria-checked": it.Selected(),
		"tabindex":     tabIndexFor(it.Index() == it.group.focusIdx),
		"onclick":      ActivateHandler(it.Select),
	}
}

// tabIndexFor implements roving tabindex: only the focused item is in the
// tab order.
func tabIndexFor(focused bool) int {
	if focused {
		return 0
	}
	return -1
}
