package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/gacevedo/virus-sucks-plotter/pluslife"
)

// CSS color names used by verdict styles, as terminal colors.
var terminalColors = map[string]lipgloss.Color{
	"green":  lipgloss.Color("#008000"),
	"red":    lipgloss.Color("#FF0000"),
	"orange": lipgloss.Color("#FFA500"),
}

func styleVerdict(v pluslife.Verdict) string {
	if v.Style == (pluslife.Style{}) {
		return v.Label
	}

	st := lipgloss.NewStyle().Bold(v.Style.Bold)
	if c, ok := terminalColors[v.Style.Color]; ok {
		st = st.Foreground(c)
	}

	return st.Render(v.Label)
}

func summaryLine(s pluslife.Summary) string {
	return fmt.Sprintf("Test type: %s | Test result: %s", s.TestType, styleVerdict(s.Verdict))
}

func writeStats(w io.Writer, chStats []pluslife.ChannelStat) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("channel", "points", "first", "last", "min", "max", "mean")

	for _, s := range chStats {
		t.Row(
			s.Channel.Name(),
			fmt.Sprintf("%d", s.Points),
			fmt.Sprintf("%.1f", s.First),
			fmt.Sprintf("%.1f", s.Last),
			fmt.Sprintf("%.1f", s.Min),
			fmt.Sprintf("%.1f", s.Max),
			fmt.Sprintf("%.1f", s.Mean),
		)
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
