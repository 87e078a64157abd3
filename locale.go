package formant

import "golang.org/x/text/language"

// Direction is the inline text direction of a widget.
type Direction uint8

const (
	LTR Direction = iota
	RTL
)

func (d Direction) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// Scripts laid out right to left. Matches the set CSS engines treat as rtl.
var rtlScripts = map[string]bool{
	"Adlm": true, // Adlam
	"Arab": true, // Arabic
	"Aran": true, // Nastaliq
	"Hebr": true, // Hebrew
	"Mand": true, // Mandaic
	"Nkoo": true, // N'Ko
	"Rohg": true, // Hanifi Rohingya
	"Syrc": true, // Syriac
	"Thaa": true, // Thaana
	"Yezi": true, // Yezidi
}

// DirectionOf returns the inline direction implied by a locale tag, using
// the tag's most likely script.
func DirectionOf(tag language.Tag) Direction {
	script, _ := tag.Script()
	if rtlScripts[script.String()] {
		return RTL
	}
	return LTR
}

// ParseDirection returns the inline direction for a BCP 47 locale string.
// Unparseable locales fall back to LTR.
func ParseDirection(locale string) Direction {
	tag, err := language.Parse(locale)
	if err != nil {
		return LTR
	}
	return DirectionOf(tag)
}

// ambientDirection is the process-wide default used by widgets constructed
// without an explicit direction.
var ambientDirection = LTR

// SetAmbientDirection sets the default inline direction for new widgets.
func SetAmbientDirection(d Direction) {
	ambientDirection = d
}

// AmbientDirection returns the current default inline direction.
func AmbientDirection() Direction {
	return ambientDirection
}
