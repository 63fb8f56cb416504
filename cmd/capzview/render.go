package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/zoobzio/capz"
)

var (
	timeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	kindStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Width(12)
	nameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	frameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("135"))
	alertStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// renderEvent formats a single event as one terminal line.
func renderEvent(ev capz.Event) string {
	ts := timeStyle.Render(ev.Time.Format("15:04:05.000"))
	kind := kindStyle.Render(ev.Kind.String())

	var body string
	switch ev.Kind {
	case capz.EventZoneBegin:
		body = fmt.Sprintf("%s %s",
			nameStyle.Render(ev.Name),
			dimStyle.Render(fmt.Sprintf("#%d %s:%d", ev.Zone, ev.File, ev.Line)))
		if !ev.Active {
			body += " " + dimStyle.Render("(filtered)")
		}
	case capz.EventZoneEnd:
		body = dimStyle.Render(fmt.Sprintf("#%d", ev.Zone))
	case capz.EventZoneValue:
		body = fmt.Sprintf("%s %s",
			dimStyle.Render(fmt.Sprintf("#%d", ev.Zone)),
			valueStyle.Render(fmt.Sprintf("%d", ev.Number)))
	case capz.EventZoneText, capz.EventMessage:
		body = valueStyle.Render(ev.Text)
	case capz.EventPlotF64:
		body = fmt.Sprintf("%s = %s", nameStyle.Render(ev.Name),
			valueStyle.Render(fmt.Sprintf("%g", ev.Float)))
	case capz.EventPlotF32:
		body = fmt.Sprintf("%s = %s", nameStyle.Render(ev.Name),
			valueStyle.Render(fmt.Sprintf("%g", float32(ev.Float))))
	case capz.EventPlotI64:
		body = fmt.Sprintf("%s = %s", nameStyle.Render(ev.Name),
			valueStyle.Render(fmt.Sprintf("%d", ev.Int)))
	case capz.EventFrameMark, capz.EventFrameStart, capz.EventFrameEnd:
		name := ev.Name
		if name == "" {
			name = "main"
		}
		body = frameStyle.Render(name)
	case capz.EventAlloc:
		body = fmt.Sprintf("%s %s", nameStyle.Render(ev.Name),
			valueStyle.Render(fmt.Sprintf("0x%x +%d", ev.Addr, ev.Size)))
	case capz.EventFree:
		body = fmt.Sprintf("%s %s", nameStyle.Render(ev.Name),
			alertStyle.Render(fmt.Sprintf("0x%x", ev.Addr)))
	default:
		body = nameStyle.Render(ev.Name)
	}

	return fmt.Sprintf("%s %s %s", ts, kind, body)
}

// summary accumulates per-kind and per-plot statistics for dump mode.
type summary struct {
	total   int
	byKind  map[capz.EventKind]int
	plots   map[string]float64
	zones   map[string]int
	dropped int
}

func newSummary() *summary {
	return &summary{
		byKind: make(map[capz.EventKind]int),
		plots:  make(map[string]float64),
		zones:  make(map[string]int),
	}
}

func (s *summary) add(ev capz.Event) {
	s.total++
	s.byKind[ev.Kind]++
	switch ev.Kind {
	case capz.EventZoneBegin:
		s.zones[ev.Name]++
	case capz.EventPlotF64:
		s.plots[ev.Name] = ev.Float
	case capz.EventPlotF32:
		s.plots[ev.Name] = float64(float32(ev.Float))
	case capz.EventPlotI64:
		s.plots[ev.Name] = float64(ev.Int)
	}
}

func (s *summary) print(w io.Writer) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%d events", s.total)))

	kinds := make([]capz.EventKind, 0, len(s.byKind))
	for k := range s.byKind {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, k := range kinds {
		fmt.Fprintf(w, "  %s %s\n",
			kindStyle.Render(k.String()),
			valueStyle.Render(fmt.Sprintf("%d", s.byKind[k])))
	}

	if len(s.zones) > 0 {
		fmt.Fprintln(w, headerStyle.Render("zones"))
		for _, name := range sortedKeys(s.zones) {
			fmt.Fprintf(w, "  %s %s\n",
				nameStyle.Render(name),
				dimStyle.Render(fmt.Sprintf("x%d", s.zones[name])))
		}
	}

	if len(s.plots) > 0 {
		fmt.Fprintln(w, headerStyle.Render("plots (last value)"))
		for _, name := range sortedKeys(s.plots) {
			fmt.Fprintf(w, "  %s %s\n",
				nameStyle.Render(name),
				valueStyle.Render(fmt.Sprintf("%g", s.plots[name])))
		}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
