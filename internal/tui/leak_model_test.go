package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeyya18/leakcalc/internal/leakage"
)

func defaultLeakInputs() leakage.Inputs {
	return leakage.Inputs{
		Diameter:    0.005,
		Temperature: 20,
		Duration:    3600,
		Pressure:    5,
		Density:     0.68,
		N2Percent:   1,
	}
}

func newTestLeakModel(t *testing.T) *LeakModel {
	t.Helper()
	return NewLeakModel(context.Background(), nil, defaultLeakInputs())
}

func typeRunes(m *LeakModel, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func backspace(m *LeakModel, n int) {
	for range n {
		m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	}
}

func TestNewLeakModel(t *testing.T) {
	m := newTestLeakModel(t)

	assert.Equal(t, FieldDiameter, m.Focused())
	assert.False(t, m.Quitting())
	assert.False(t, m.Stale())
	assert.Equal(t, leakage.RawInputs{
		Diameter:    "0.005",
		Temperature: "20",
		Duration:    "3600",
		Pressure:    "5",
		Density:     "0.68",
		N2Percent:   "1",
	}, m.Values())

	res, ok := m.Result()
	require.True(t, ok)
	assert.Equal(t, "0.106", res.Display.Volume)
	assert.Equal(t, "critical", res.Display.RegimeClass)
	assert.NotNil(t, m.Init())
}

func TestLeakModel_Navigation(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want int
	}{
		{"tab moves forward", []tea.KeyMsg{{Type: tea.KeyTab}}, FieldTemperature},
		{"down moves forward", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}}, FieldDuration},
		{"enter moves forward", []tea.KeyMsg{{Type: tea.KeyEnter}}, FieldTemperature},
		{"shift+tab wraps to the last field", []tea.KeyMsg{{Type: tea.KeyShiftTab}}, FieldN2},
		{"up wraps to the last field", []tea.KeyMsg{{Type: tea.KeyUp}}, FieldN2},
		{"tab wraps to the first field", []tea.KeyMsg{
			{Type: tea.KeyTab}, {Type: tea.KeyTab}, {Type: tea.KeyTab},
			{Type: tea.KeyTab}, {Type: tea.KeyTab}, {Type: tea.KeyTab},
		}, FieldDiameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestLeakModel(t)
			for _, k := range tt.keys {
				m.Update(k)
			}
			assert.Equal(t, tt.want, m.Focused())
		})
	}
}

func TestLeakModel_RecomputesOnEveryKeystroke(t *testing.T) {
	m := newTestLeakModel(t)

	// Focus pressure and change 5 to 50.
	for range FieldPressure {
		m.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	typeRunes(m, "0")

	assert.Equal(t, "50", m.Values().Pressure)
	res, ok := m.Result()
	require.True(t, ok)
	assert.InDelta(t, 50.0, res.Inputs.Pressure, 1e-12)
	assert.Equal(t, "5.00 МПа", res.Display.AbsolutePressure)
	assert.False(t, m.Stale())
}

func TestLeakModel_InvalidInputKeepsPreviousResult(t *testing.T) {
	m := newTestLeakModel(t)

	// "0.005" -> "0" still parses, so each step recomputes.
	backspace(m, len("0.005")-1)
	require.Equal(t, "0", m.Values().Diameter)
	require.False(t, m.Stale())
	before, ok := m.Result()
	require.True(t, ok)
	assert.Equal(t, "0.00000000 м²", before.Display.OrificeArea)

	// Clearing the field leaves nothing to parse.
	backspace(m, 1)
	assert.Empty(t, m.Values().Diameter)
	assert.True(t, m.Stale())
	after, ok := m.Result()
	require.True(t, ok)
	assert.Equal(t, before, after)

	// A non-numeric entry is skipped the same way.
	typeRunes(m, "x")
	assert.True(t, m.Stale())
	after, _ = m.Result()
	assert.Equal(t, before, after)

	// Correcting the field resumes calculation.
	backspace(m, 1)
	typeRunes(m, "0.01")
	assert.False(t, m.Stale())
	after, _ = m.Result()
	assert.Equal(t, "0.00007854 м²", after.Display.OrificeArea)
}

func TestLeakModel_NilContext(t *testing.T) {
	m := NewLeakModel(nil, nil, defaultLeakInputs()) //nolint:staticcheck // nil ctx falls back to Background

	require.NotPanics(t, func() {
		backspace(m, len("0.005"))
		typeRunes(m, "x")
	})
	assert.True(t, m.Stale())
}

func TestLeakModel_TemperatureBelowAbsoluteZeroIsSkipped(t *testing.T) {
	m := newTestLeakModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, FieldTemperature, m.Focused())
	backspace(m, len(m.Values().Temperature))
	typeRunes(m, "-30")
	require.False(t, m.Stale())
	before, ok := m.Result()
	require.True(t, ok)

	typeRunes(m, "0")

	assert.Equal(t, "-300", m.Values().Temperature)
	assert.True(t, m.Stale())
	after, _ := m.Result()
	assert.Equal(t, before, after)
}

func TestLeakModel_CommaDecimalSeparator(t *testing.T) {
	m := newTestLeakModel(t)
	backspace(m, len("0.005"))
	typeRunes(m, "0,01")

	assert.False(t, m.Stale())
	res, _ := m.Result()
	assert.InDelta(t, 0.01, res.Inputs.Diameter, 1e-15)
}

func TestLeakModel_Reset(t *testing.T) {
	m := newTestLeakModel(t)
	initial, _ := m.Result()

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	backspace(m, 2)
	typeRunes(m, "-10")
	require.Equal(t, "-10", m.Values().Temperature)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})

	assert.Equal(t, "20", m.Values().Temperature)
	assert.Equal(t, FieldDiameter, m.Focused())
	got, _ := m.Result()
	assert.Equal(t, initial, got)
}

func TestLeakModel_Quit(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
	}{
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestLeakModel(t)
			_, cmd := m.Update(tt.key)

			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.True(t, m.Quitting())
			assert.Empty(t, m.View())
		})
	}
}

func TestLeakModel_WindowSize(t *testing.T) {
	m := newTestLeakModel(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
}

func TestLeakModel_View(t *testing.T) {
	m := newTestLeakModel(t)
	view := m.View()

	assert.Contains(t, view, "Расчёт утечки газа через свищ")
	assert.Contains(t, view, "Диаметр свища d")
	assert.Contains(t, view, "0.005")
	assert.Contains(t, view, "0.59 МПа")
	assert.Contains(t, view, "0.3226 МПа")
	assert.Contains(t, view, "0.106 тыс. м³")
	assert.Contains(t, view, "ctrl+r: Reset")
}

func TestLeakModel_UsesCalculatorPrecision(t *testing.T) {
	calc := leakage.NewCalculator(leakage.WithPrecision(leakage.PrecisionRounded))
	m := NewLeakModel(context.Background(), calc, defaultLeakInputs())

	res, ok := m.Result()
	require.True(t, ok)
	assert.Equal(t, "0.105", res.Display.Volume)
}
