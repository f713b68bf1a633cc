package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sergeyya18/leakcalc/internal/leakage"
	"github.com/sergeyya18/leakcalc/internal/logging"
)

// Form rows, in display order.
const (
	FieldDiameter = iota
	FieldTemperature
	FieldDuration
	FieldPressure
	FieldDensity
	FieldN2
	fieldCount
)

const (
	leakInputCharLimit = 24
	leakInputWidth     = 16
	leakDefaultWidth   = 80
)

// leakField describes one editable row of the form.
type leakField struct {
	label string
	unit  string
}

//nolint:gochecknoglobals // Static form layout.
var leakFields = [fieldCount]leakField{
	FieldDiameter:    {label: "Диаметр свища d", unit: "м"},
	FieldTemperature: {label: "Температура газа t", unit: "°C"},
	FieldDuration:    {label: "Время истечения τ", unit: "с"},
	FieldPressure:    {label: "Давление в трубе Pт", unit: "кгс/см²"},
	FieldDensity:     {label: "Плотность газа ρ", unit: "кг/м³"},
	FieldN2:          {label: "Содержание азота N₂", unit: "%"},
}

// LeakModel is the Bubble Tea model of the interactive leak form.
//
// Every edit re-parses all six fields and recomputes. When a field does not
// hold a finite number the previous result stays on screen unchanged.
type LeakModel struct {
	ctx      context.Context
	calc     *leakage.Calculator
	defaults leakage.Inputs

	inputs  [fieldCount]textinput.Model
	focused int

	result    leakage.Result
	hasResult bool
	invalid   bool

	quitting bool
	width    int
}

// NewLeakModel creates the form seeded with defaults and computes the
// initial result. A nil ctx uses context.Background() and a nil calc uses
// leakage.NewCalculator().
func NewLeakModel(ctx context.Context, calc *leakage.Calculator, defaults leakage.Inputs) *LeakModel {
	if ctx == nil {
		ctx = context.Background()
	}
	if calc == nil {
		calc = leakage.NewCalculator()
	}
	m := &LeakModel{
		ctx:      ctx,
		calc:     calc,
		defaults: defaults,
		width:    leakDefaultWidth,
	}
	for i := range m.inputs {
		m.inputs[i] = newLeakTextInput()
	}
	m.reset()
	return m
}

func newLeakTextInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = leakInputCharLimit
	ti.Width = leakInputWidth
	return ti
}

// Init starts the cursor blinking.
func (m *LeakModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m *LeakModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

// handleKeyMsg processes keyboard input. Keys that are not bound to
// navigation go to the focused field.
func (m *LeakModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc", "q":
		m.quitting = true
		return m, tea.Quit

	case "tab", "down", "enter":
		return m, m.setFocus((m.focused + 1) % fieldCount)

	case "shift+tab", "up":
		return m, m.setFocus((m.focused + fieldCount - 1) % fieldCount)

	case "ctrl+r":
		m.reset()
		return m, nil
	}

	before := m.inputs[m.focused].Value()
	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	if m.inputs[m.focused].Value() != before {
		m.recompute()
	}
	return m, cmd
}

// setFocus moves the cursor to field i.
func (m *LeakModel) setFocus(i int) tea.Cmd {
	m.inputs[m.focused].Blur()
	m.focused = i
	return m.inputs[m.focused].Focus()
}

// reset restores every field to the defaults and recomputes.
func (m *LeakModel) reset() {
	raw := m.defaults.Raw()
	values := [fieldCount]string{
		FieldDiameter:    raw.Diameter,
		FieldTemperature: raw.Temperature,
		FieldDuration:    raw.Duration,
		FieldPressure:    raw.Pressure,
		FieldDensity:     raw.Density,
		FieldN2:          raw.N2Percent,
	}
	for i := range m.inputs {
		m.inputs[i].SetValue(values[i])
		m.inputs[i].CursorEnd()
		m.inputs[i].Blur()
	}
	m.focused = FieldDiameter
	m.inputs[m.focused].Focus()
	m.recompute()
}

// recompute parses the fields and, when they are all numbers, replaces the
// displayed result.
func (m *LeakModel) recompute() {
	in, err := leakage.ParseInputs(m.Values())
	if err != nil {
		logging.FromContext(m.ctx).Debug().Ctx(m.ctx).
			Str("component", "tui").
			Err(err).
			Msg("keeping previous result")
		m.invalid = true
		return
	}

	res, err := m.calc.Compute(m.ctx, in)
	if err != nil {
		m.invalid = true
		return
	}

	m.result = res
	m.hasResult = true
	m.invalid = false
}

// Values returns the current text of the six fields.
func (m *LeakModel) Values() leakage.RawInputs {
	return leakage.RawInputs{
		Diameter:    m.inputs[FieldDiameter].Value(),
		Temperature: m.inputs[FieldTemperature].Value(),
		Duration:    m.inputs[FieldDuration].Value(),
		Pressure:    m.inputs[FieldPressure].Value(),
		Density:     m.inputs[FieldDensity].Value(),
		N2Percent:   m.inputs[FieldN2].Value(),
	}
}

// Result returns the displayed result and whether one has been computed yet.
func (m *LeakModel) Result() (leakage.Result, bool) {
	return m.result, m.hasResult
}

// Stale reports whether the fields currently fail to parse, so the displayed
// result belongs to an earlier edit.
func (m *LeakModel) Stale() bool { return m.invalid }

// Focused returns the index of the focused field.
func (m *LeakModel) Focused() int { return m.focused }

// Quitting reports whether the user asked to leave.
func (m *LeakModel) Quitting() bool { return m.quitting }

// View renders the form and the result.
func (m *LeakModel) View() string {
	if m.quitting {
		return ""
	}

	rows := make([]FormRow, fieldCount)
	for i, f := range leakFields {
		rows[i] = FormRow{
			Label:   f.label,
			Unit:    f.unit,
			Input:   m.inputs[i].View(),
			Focused: i == m.focused,
		}
	}

	var result *leakage.Result
	if m.hasResult {
		result = &m.result
	}
	return RenderLeakForm(rows, result, m.width)
}
