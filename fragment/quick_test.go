package fragment

import (
	"testing"

	"blogkit/common"
)

// Quick helpers must be byte-identical to calling the general constructor.
func TestQuickHelpers(t *testing.T) {
	tests := []struct {
		name    string
		quick   func() (Markup, error)
		general func() (Markup, error)
	}{
		{
			name:    "Note",
			quick:   func() (Markup, error) { return Note("n") },
			general: func() (Markup, error) { return Callout("n", CalloutOptions{Type: common.CalloutTypeNote}) },
		},
		{
			name:    "Tip",
			quick:   func() (Markup, error) { return Tip("t") },
			general: func() (Markup, error) { return Callout("t", CalloutOptions{Type: common.CalloutTypeTip}) },
		},
		{
			name:    "Warning",
			quick:   func() (Markup, error) { return Warning("w") },
			general: func() (Markup, error) { return Callout("w", CalloutOptions{Type: common.CalloutTypeWarning}) },
		},
		{
			name:    "Success",
			quick:   func() (Markup, error) { return Success("s") },
			general: func() (Markup, error) { return AlertBox("s", AlertOptions{Type: common.AlertTypeSuccess}) },
		},
		{
			name:    "Info",
			quick:   func() (Markup, error) { return Info("i") },
			general: func() (Markup, error) { return AlertBox("i", AlertOptions{Type: common.AlertTypeInfo}) },
		},
		{
			name:    "QuickYouTube",
			quick:   func() (Markup, error) { return QuickYouTube("vid123") },
			general: func() (Markup, error) { return YouTube("vid123", YouTubeOptions{}) },
		},
		{
			name:    "QuickIFrame",
			quick:   func() (Markup, error) { return QuickIFrame("https://example.com", 0.75) },
			general: func() (Markup, error) { return ResponsiveIFrame("https://example.com", IFrameOptions{AspectRatio: 0.75}) },
		},
		{
			name:    "QuickQuote",
			quick:   func() (Markup, error) { return QuickQuote("q", "a") },
			general: func() (Markup, error) { return QuoteBlock("q", QuoteOptions{Author: "a"}) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, qerr := tt.quick()
			g, gerr := tt.general()
			if (qerr == nil) != (gerr == nil) {
				t.Fatalf("error mismatch: quick=%v general=%v", qerr, gerr)
			}
			if q != g {
				t.Errorf("quick helper diverged from general constructor:\n%s\n%s", q, g)
			}
		})
	}
}

// Errors pass through unchanged as well.
func TestQuickHelperErrors(t *testing.T) {
	if _, err := Note(""); !errorIs[*MissingFieldError](err) {
		t.Errorf("Note(\"\"): got %v, want MissingFieldError", err)
	}
	if _, err := QuickYouTube(""); !errorIs[*MissingFieldError](err) {
		t.Errorf("QuickYouTube(\"\"): got %v, want MissingFieldError", err)
	}
}
