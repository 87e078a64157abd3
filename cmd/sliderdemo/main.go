// sliderdemo: a multi-thumb slider driven entirely by the headless engine.
// Click the track to move the nearest thumb, tab to switch thumbs, and use
// the arrow keys to nudge the focused thumb within its neighbor window.
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"formant"
)

const (
	trackX     = 2
	trackY     = 3
	trackWidth = 50
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	trackStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	thumbStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("219")).Bold(true)
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// thumb satisfies formant.Thumb; focus is reported back to the model.
type thumb struct {
	model *model
	pos   int
}

func (t *thumb) Focus() {
	t.model.focused = t.pos
}

type model struct {
	slider  *formant.Slider
	handles []*formant.ThumbHandle
	focused int
	logger  *zap.SugaredLogger
}

func newModel(logger *zap.SugaredLogger) *model {
	field := formant.NewField(nil)

	min := viper.GetFloat64("slider.min")
	max := viper.GetFloat64("slider.max")
	s := formant.NewSlider(field).
		Bounds(min, max).
		Step(viper.GetFloat64("slider.step")).
		Label(viper.GetString("slider.label"))
	s.SetTrackRect(formant.Rect{X: trackX, Y: trackY, Width: trackWidth, Height: 1})

	field.Validators(formant.VMin(min), formant.VMax(max), formant.VOrdered)
	field.Subscribe(func(v any) {
		logger.Debugw("value committed", "value", v)
	})

	m := &model{slider: s, logger: logger}

	// Register every thumb before committing starting values, so the field
	// takes its array shape up front.
	values := floatSlice(viper.Get("slider.values"))
	for i := range values {
		h := s.Register(&thumb{model: m, pos: i})
		m.handles = append(m.handles, h)
	}
	for i, v := range values {
		m.handles[i].SetValue(v)
		logger.Infow("thumb registered", "index", i, "value", v)
	}
	return m
}

// floatSlice coerces a viper value list into floats: defaults come back as
// []float64, parsed config files as []any of int or float64.
func floatSlice(v any) []float64 {
	switch items := v.(type) {
	case []float64:
		return items
	case []any:
		out := make([]float64, 0, len(items))
		for _, it := range items {
			switch n := it.(type) {
			case float64:
				out = append(out, n)
			case int:
				out = append(out, float64(n))
			}
		}
		return out
	}
	return []float64{20, 80}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			if len(m.handles) > 0 {
				m.focused = (m.focused + 1) % len(m.handles)
			}
		case "left", "h":
			m.nudge(-1)
		case "right", "l":
			m.nudge(1)
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y == trackY {
			pt := formant.Point{X: float64(msg.X), Y: float64(msg.Y)}
			m.logger.Debugw("track click", "x", msg.X)
			m.slider.HandleTrackPointerDown(pt)
		}
	}
	return m, nil
}

// nudge steps the focused thumb one quantized step, clamped to the window
// its neighbors allow right now. This is the drag-analog path: the widget
// resolves the legal value itself, then commits through its handle.
func (m *model) nudge(dir float64) {
	if m.focused >= len(m.handles) {
		return
	}
	h := m.handles[m.focused]
	v, ok := h.Value()
	if !ok {
		return
	}
	step := h.Step()
	next := formant.Quantize(v+dir*step, step)
	r := h.Range()
	if next < r.Min {
		next = r.Min
	}
	if next > r.Max {
		next = r.Max
	}
	h.SetValue(next)
	h.SetTouched(true)
}

func (m *model) View() string {
	var b strings.Builder

	group := m.slider.GroupProps()
	b.WriteString("  " + titleStyle.Render("sliderdemo") + "\n")
	label := viper.GetString("slider.label")
	b.WriteString("  " + labelStyle.Render(fmt.Sprintf("%s (dir: %s)", label, group.String("dir"))) + "\n\n")

	b.WriteString(strings.Repeat(" ", trackX) + m.renderTrack() + "\n\n")

	bounds := m.slider.SliderRange()
	for i, h := range m.handles {
		v, _ := h.Value()
		r := h.Range()
		marker := "  "
		style := thumbStyle
		if i == m.focused {
			marker = "> "
			style = focusedStyle
		}
		line := fmt.Sprintf("%sthumb %d: %s  window [%g, %g] of [%g, %g]",
			marker, i, valueStyle.Render(fmt.Sprintf("%g", v)), r.Min, r.Max, bounds.Min, bounds.Max)
		b.WriteString("  " + style.Render(line) + "\n")
	}

	if !m.slider.ErrorMessageProps().Bool("hidden") {
		b.WriteString("\n  " + errorStyle.Render("error: "+m.slider.Field().Err()) + "\n")
	}

	b.WriteString("\n  " + helpStyle.Render("click track · tab: next thumb · ←/→: nudge · q: quit") + "\n")
	return b.String()
}

// renderTrack paints the track row the engine's geometry is measured
// against: thumbs sit at the cell their value maps to.
func (m *model) renderTrack() string {
	bounds := m.slider.SliderRange()
	span := bounds.Max - bounds.Min

	cells := make([]string, trackWidth)
	for i := range cells {
		cells[i] = trackStyle.Render("─")
	}
	for i, h := range m.handles {
		v, ok := h.Value()
		if !ok || span == 0 {
			continue
		}
		frac := (v - bounds.Min) / span
		if m.slider.InlineDirection() == formant.RTL {
			frac = 1 - frac
		}
		cell := int(frac * float64(trackWidth-1))
		if cell < 0 {
			cell = 0
		}
		if cell >= trackWidth {
			cell = trackWidth - 1
		}
		if i == m.focused {
			cells[cell] = focusedStyle.Render("█")
		} else {
			cells[cell] = thumbStyle.Render("█")
		}
	}
	return strings.Join(cells, "")
}

func loadConfig() error {
	viper.SetConfigName("sliderdemo")
	viper.AddConfigPath(".")

	viper.SetDefault("slider.min", 0.0)
	viper.SetDefault("slider.max", 100.0)
	viper.SetDefault("slider.step", 5.0)
	viper.SetDefault("slider.label", "Range")
	viper.SetDefault("slider.values", []float64{20, 80})
	viper.SetDefault("locale", "en-US")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
		// defaults only
	}
	return nil
}

func newLogger() (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"sliderdemo.log"}
	cfg.ErrorOutputPaths = []string{"sliderdemo.log"}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar().Named("sliderdemo"), nil
}

func main() {
	if err := loadConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	formant.SetAmbientDirection(formant.ParseDirection(viper.GetString("locale")))

	p := tea.NewProgram(newModel(logger), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "sliderdemo: %v\n", err)
		os.Exit(1)
	}
}
