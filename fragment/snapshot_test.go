package fragment

import (
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"blogkit/common"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

func matchSnapshot(t *testing.T, html Markup) {
	t.Helper()
	snaps.WithConfig(snaps.Ext(".html")).MatchSnapshot(t, string(html))
}

// Snapshots of composite fragments, covering constructor interplay that the
// substring assertions elsewhere do not pin down.
func TestCompositeSnapshots(t *testing.T) {
	t.Run("tabs with nested fragments", func(t *testing.T) {
		chart, err := ProgressBar(67, ProgressOptions{Color: common.ThemeColorInfo, Striped: true})
		if err != nil {
			t.Fatalf("ProgressBar: %v", err)
		}
		stats, err := SummaryStats(Table{
			Columns: []string{"epoch", "loss"},
			Rows: [][]string{
				{"1", "0.93"},
				{"2", "0.41"},
				{"3", "0.27"},
			},
		}, SummaryOptions{Columns: []string{"loss"}, Title: "Training"})
		if err != nil {
			t.Fatalf("SummaryStats: %v", err)
		}
		got, err := Tabs([]Section{
			{Label: "Progress", Body: chart},
			{Label: "Stats", Body: stats},
		}, TabsOptions{GroupID: "report"})
		if err != nil {
			t.Fatalf("Tabs: %v", err)
		}
		matchSnapshot(t, got)
	})

	t.Run("two column dashboard", func(t *testing.T) {
		card, err := MetricCard("Accuracy", "98.2%", MetricOptions{Change: "+0.4%", ChangeType: common.ChangeTypePositive})
		if err != nil {
			t.Fatalf("MetricCard: %v", err)
		}
		timeline, err := Timeline([]Event{
			{Date: "2026-01", Title: "v1", Description: "initial release"},
			{Date: "2026-05", Title: "v2", Description: "streaming support"},
		}, TimelineOptions{Title: "Releases"})
		if err != nil {
			t.Fatalf("Timeline: %v", err)
		}
		got, err := TwoColumn(card, timeline, ColumnOptions{LeftWidth: 4, RightWidth: 8})
		if err != nil {
			t.Fatalf("TwoColumn: %v", err)
		}
		matchSnapshot(t, got)
	})

	t.Run("accordion of callouts", func(t *testing.T) {
		note, err := Note("remember to pin versions")
		if err != nil {
			t.Fatalf("Note: %v", err)
		}
		warning, err := Warning("breaking change ahead")
		if err != nil {
			t.Fatalf("Warning: %v", err)
		}
		got, err := Accordion([]Section{
			{Label: "Setup", Body: note},
			{Label: "Upgrade", Body: warning},
		}, AccordionOptions{GroupID: "guide"})
		if err != nil {
			t.Fatalf("Accordion: %v", err)
		}
		matchSnapshot(t, got)
	})
}
