// Package formant provides headless behavior engines for form-like widgets.
// Each engine computes attribute bundles and event handlers for a widget
// without rendering anything; how the attributes become pixels (DOM, TUI,
// canvas) is entirely up to the caller.
//
// The centerpiece is the multi-thumb Slider: an unbounded number of thumbs
// register and deregister at runtime, each thumb's legal range is derived
// live from its neighbors, and track clicks resolve to the nearest
// admissible thumb under orientation and direction transforms.
package formant
