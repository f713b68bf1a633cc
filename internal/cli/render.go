package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"google.golang.org/protobuf/proto"

	"github.com/sergeyya18/leakcalc/internal/config"
	"github.com/sergeyya18/leakcalc/internal/leakage"
	"github.com/sergeyya18/leakcalc/internal/tui"
)

// tabwriterPadding is the minimum padding between table columns.
const tabwriterPadding = 2

// metricPrefix namespaces the exported gauges.
const metricPrefix = "leakcalc_"

// RenderResult writes res to w in the given format. The table format is
// styled with Lip Gloss when w is a terminal and plain otherwise.
func RenderResult(ctx context.Context, w io.Writer, format string, res leakage.Result) error {
	switch format {
	case config.FormatJSON:
		return renderJSON(w, res)
	case config.FormatNDJSON:
		return renderNDJSON(w, res)
	case config.FormatPrometheus:
		return renderPrometheus(w, res)
	case config.FormatTable:
		if tui.DetectOutputModeFor(w, false, false, false) == tui.OutputModePlain {
			return renderTable(w, res)
		}
		return renderStyled(ctx, w, res)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// renderTable renders the plain two-column table.
func renderTable(w io.Writer, res leakage.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	for _, row := range tui.SummaryRows(res) {
		fmt.Fprintf(tw, "%s\t%s\n", row.Label, row.Value)
	}
	fmt.Fprintf(tw, "Порог критического режима Pт*\t%s кгс/см²\n",
		leakage.FormatFixed(leakage.CriticalGaugeThreshold(), leakage.CriticalPlaces))
	fmt.Fprintf(tw, "Объём утечки Q\t%s %s\n", res.Display.Volume, res.Display.VolumeUnit)
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, res.Display.RegimeTitle)
	fmt.Fprintln(w, res.Display.RegimeDescription)
	return nil
}

// renderStyled renders the Lip Gloss summary.
func renderStyled(ctx context.Context, w io.Writer, res leakage.Result) error {
	logger.Debug().Ctx(ctx).Int("width", tui.TerminalWidth()).Msg("rendering styled output")
	_, err := fmt.Fprintln(w, tui.RenderLeakResult(res, tui.TerminalWidth()))
	return err
}

func renderJSON(w io.Writer, res leakage.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(res)
}

// renderNDJSON writes one compact JSON object per line.
func renderNDJSON(w io.Writer, res leakage.Result) error {
	return json.NewEncoder(w).Encode(res)
}

// renderPrometheus writes the result as gauges in the Prometheus text
// exposition format, suitable for the node_exporter textfile collector.
func renderPrometheus(w io.Writer, res leakage.Result) error {
	for _, mf := range resultMetricFamilies(res) {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("writing metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// resultMetricFamilies builds one gauge family per derived value.
func resultMetricFamilies(res leakage.Result) []*dto.MetricFamily {
	critical := 0.0
	if res.Critical() {
		critical = 1
	}

	return []*dto.MetricFamily{
		gaugeFamily("absolute_pressure_mpa", "Absolute gas pressure in the pipe, MPa.", res.AbsolutePressureMPa),
		gaugeFamily("absolute_temperature_kelvin", "Absolute gas temperature, K.", res.AbsoluteTemperatureK),
		gaugeFamily("orifice_area_square_meters", "Cross-section area of the orifice, m².", res.OrificeAreaM2),
		gaugeFamily("critical_pressure_mpa", "Critical outflow pressure, MPa.", res.CriticalPressureMPa),
		gaugeFamily("critical_flow", "1 if the outflow is critical (sonic), 0 if subcritical.", critical,
			labelPair("regime", res.Regime.String())),
		gaugeFamily("leak_volume_cubic_meters", "Leaked gas volume, m³.", res.VolumeM3),
		gaugeFamily("leak_duration_seconds", "Leak duration, s.", res.Inputs.Duration),
	}
}

func gaugeFamily(name, help string, value float64, labels ...*dto.LabelPair) *dto.MetricFamily {
	return &dto.MetricFamily{
		Name: proto.String(metricPrefix + name),
		Help: proto.String(help),
		Type: dto.MetricType_GAUGE.Enum(),
		Metric: []*dto.Metric{{
			Label: labels,
			Gauge: &dto.Gauge{Value: proto.Float64(value)},
		}},
	}
}

func labelPair(name, value string) *dto.LabelPair {
	return &dto.LabelPair{Name: proto.String(name), Value: proto.String(value)}
}
