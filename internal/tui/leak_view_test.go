package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeyya18/leakcalc/internal/leakage"
)

func TestFormatCubicMeters(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{105.73252912943588, "105.7"},
		{0, "0.0"},
		{999.96, "1,000.0"},
		{1234567.89, "1,234,567.9"},
		{-1234.56, "-1,234.6"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCubicMeters(tt.in))
		})
	}
}

func TestSummaryRows(t *testing.T) {
	res, err := leakage.Compute(defaultLeakInputs())
	require.NoError(t, err)

	rows := SummaryRows(res)
	require.Len(t, rows, 6)
	assert.Equal(t, "0.59 МПа", rows[0].Value)
	assert.Equal(t, "293.2 K", rows[1].Value)
	assert.Equal(t, "0.00001963 м²", rows[2].Value)
	assert.Equal(t, "1.3027", rows[3].Value)
	assert.Equal(t, "0.9560", rows[4].Value)
	assert.Equal(t, "0.3226 МПа", rows[5].Value)
}

func TestRenderLeakResult(t *testing.T) {
	t.Run("critical", func(t *testing.T) {
		res, err := leakage.Compute(defaultLeakInputs())
		require.NoError(t, err)

		out := RenderLeakResult(res, 0)
		assert.Contains(t, out, IconWarning+" Режим истечения: Критический (звуковой)")
		assert.Contains(t, out, "Газ истекает со скоростью звука.")
		assert.Contains(t, out, "0.106 тыс. м³")
		assert.Contains(t, out, "(105.7 м³)")
	})

	t.Run("subcritical", func(t *testing.T) {
		res, err := leakage.Compute(leakage.Inputs{Diameter: 0.01, Temperature: 15, Duration: 600, Pressure: 0.5})
		require.NoError(t, err)

		out := RenderLeakResult(res, 0)
		assert.Contains(t, out, IconOK+" Режим истечения: Докритический (дозвуковой)")
		assert.Contains(t, out, "0.0820 МПа")
	})

	t.Run("width constrains the box", func(t *testing.T) {
		res, err := leakage.Compute(defaultLeakInputs())
		require.NoError(t, err)

		for _, line := range strings.Split(RenderLeakResult(res, 60), "\n") {
			assert.LessOrEqual(t, len([]rune(line)), 60)
		}
	})
}

func TestRenderLeakForm_NoResult(t *testing.T) {
	out := RenderLeakForm([]FormRow{{Label: "Диаметр свища d", Unit: "м", Input: "abc", Focused: true}}, nil, 80)
	assert.Contains(t, out, "Нет результата")
	assert.Contains(t, out, IconArrowRight+" ")
	assert.Contains(t, out, "abc")
}

func TestRegimeStyle(t *testing.T) {
	assert.Equal(t, IconWarning, RegimeIcon("critical"))
	assert.Equal(t, IconOK, RegimeIcon("subcritical"))
	assert.Equal(t, WarningStyle.GetForeground(), RegimeStyle("critical").GetForeground())
	assert.Equal(t, OKStyle.GetForeground(), RegimeStyle("subcritical").GetForeground())
}
