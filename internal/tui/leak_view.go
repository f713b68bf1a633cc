package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sergeyya18/leakcalc/internal/leakage"
)

const (
	summaryLabelWidth = 30
	formLabelWidth    = 22
	formUnitWidth     = 8
	leakBoxPadding    = 4
)

// printer groups thousands in the raw volume.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// SummaryRow is one labelled display slot.
type SummaryRow struct {
	Label string
	Value string
}

// SummaryRows lists the intermediate display slots in presentation order.
func SummaryRows(res leakage.Result) []SummaryRow {
	d := res.Display
	return []SummaryRow{
		{"Абсолютное давление Pa", d.AbsolutePressure},
		{"Абсолютная температура Ta", d.AbsoluteTemperature},
		{"Площадь свища S", d.OrificeArea},
		{"Показатель адиабаты k", d.AdiabaticIndex},
		{"Коэффициент сжимаемости Z", d.Compressibility},
		{"Критическое давление Pкр", d.CriticalPressure},
	}
}

// FormatCubicMeters formats a volume in m³ to one decimal place with
// thousands separators, e.g. 1234567.89 becomes "1,234,567.9".
func FormatCubicMeters(v float64) string {
	s := leakage.FormatFixed(v, 1)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return sign + s
	}
	return sign + printer.Sprintf("%d", n) + "." + frac
}

// RenderLeakResult renders the styled summary of one result.
//
// A width of zero or less leaves the box unconstrained.
func RenderLeakResult(res leakage.Result, width int) string {
	var content strings.Builder

	content.WriteString(HeaderStyle.Render("ПАРАМЕТРЫ"))
	content.WriteString("\n")
	for _, row := range SummaryRows(res) {
		content.WriteString(LabelStyle.Render(fmt.Sprintf("%-*s", summaryLabelWidth, row.Label+":")))
		content.WriteString(ValueStyle.Render(row.Value))
		content.WriteString("\n")
	}
	content.WriteString("\n")

	d := res.Display
	regime := RegimeStyle(d.RegimeClass)
	content.WriteString(regime.Render(RegimeIcon(d.RegimeClass) + " " + d.RegimeTitle))
	content.WriteString("\n")
	content.WriteString(SubtleStyle.Render(d.RegimeDescription))
	content.WriteString("\n\n")

	content.WriteString(LabelStyle.Render("Объём утечки Q: "))
	content.WriteString(ValueStyle.Render(d.Volume + " " + d.VolumeUnit))
	content.WriteString(SubtleStyle.Render(fmt.Sprintf(" (%s м³)", FormatCubicMeters(res.VolumeM3))))

	box := BoxStyle
	if width > leakBoxPadding {
		box = box.Width(width - leakBoxPadding)
	}
	return box.Render(content.String())
}

// FormRow is one row of the input form as rendered by RenderLeakForm.
type FormRow struct {
	Label   string
	Unit    string
	Input   string
	Focused bool
}

// RenderLeakForm renders the form, the current result and the key help.
// A nil result renders a placeholder.
func RenderLeakForm(rows []FormRow, result *leakage.Result, width int) string {
	var sb strings.Builder

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorHeader).
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)
	sb.WriteString(title.Render("Расчёт утечки газа через свищ"))
	sb.WriteString("\n\n")

	for _, row := range rows {
		sb.WriteString(renderFormRow(row))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	if result != nil {
		sb.WriteString(RenderLeakResult(*result, width))
	} else {
		sb.WriteString(SubtleStyle.Italic(true).Render("Нет результата"))
	}
	sb.WriteString("\n\n")

	sb.WriteString(RenderLeakHelp())
	return sb.String()
}

func renderFormRow(row FormRow) string {
	indicator := "  "
	labelStyle := LabelStyle
	if row.Focused {
		indicator = IconArrowRight + " "
		labelStyle = FocusedStyle
	}
	return indicator +
		labelStyle.Render(fmt.Sprintf("%-*s", formLabelWidth, row.Label)) +
		SubtleStyle.Render(fmt.Sprintf("%-*s", formUnitWidth, row.Unit)) +
		row.Input
}

// RenderLeakHelp renders the keyboard shortcut help text.
func RenderLeakHelp() string {
	shortcuts := []string{
		"tab/↓: Next field",
		"shift+tab/↑: Previous field",
		"ctrl+r: Reset",
		"q/esc: Quit",
	}
	return SubtleStyle.Render(strings.Join(shortcuts, " | "))
}
