package fragment

import (
	"strings"
	"testing"
)

func TestTimeline(t *testing.T) {
	events := []Event{
		{Date: "2024-01", Title: "Kickoff", Description: "project started"},
		{Date: "2024-06", Title: "Beta", Description: "first public build"},
	}

	got, err := Timeline(events, TimelineOptions{})
	if err != nil {
		t.Fatalf("Timeline: %v", err)
	}
	s := string(got)

	for _, w := range []string{"<h4>Timeline</h4>", ">Kickoff<", ">Beta<", ">2024-01<", ">first public build<"} {
		if !strings.Contains(s, w) {
			t.Errorf("fragment misses %q: %s", w, s)
		}
	}
	if strings.Index(s, "Kickoff") > strings.Index(s, "Beta") {
		t.Errorf("event order not preserved: %s", s)
	}
}

func TestTimelineEmpty(t *testing.T) {
	// an empty event list is a valid, empty container
	got, err := Timeline(nil, TimelineOptions{Title: "History"})
	if err != nil {
		t.Fatalf("Timeline: %v", err)
	}
	s := string(got)
	if !strings.Contains(s, "<h4>History</h4>") {
		t.Errorf("title missing: %s", s)
	}
	if !strings.Contains(s, `<div style="margin-top: 20px;"></div>`) {
		t.Errorf("want empty entry container: %s", s)
	}
}

func TestTimelineMissingTitle(t *testing.T) {
	events := []Event{{Date: "2024-01", Description: "no title"}}
	_, err := Timeline(events, TimelineOptions{})
	if !errorIs[*MissingFieldError](err) {
		t.Errorf("got %v, want MissingFieldError", err)
	}
}

func TestTimelineEscaping(t *testing.T) {
	events := []Event{{Title: "<em>sneaky</em>"}}
	got, err := Timeline(events, TimelineOptions{})
	if err != nil {
		t.Fatalf("Timeline: %v", err)
	}
	if strings.Contains(string(got), "<em>") {
		t.Errorf("event title must be escaped: %s", got)
	}
}

func TestTimelinePurity(t *testing.T) {
	events := []Event{{Date: "2024-01", Title: "Kickoff"}}
	a, _ := Timeline(events, TimelineOptions{})
	b, _ := Timeline(events, TimelineOptions{})
	if a != b {
		t.Errorf("identical inputs produced different fragments:\n%s\n%s", a, b)
	}
}
