package fragment

import "blogkit/common"

// Quick helpers bind a fixed flavor to a general constructor. Each is
// behaviorally identical to calling the general form directly.

// Note builds a note callout.
func Note(content string) (Markup, error) {
	return Callout(content, CalloutOptions{Type: common.CalloutTypeNote})
}

// Tip builds a tip callout.
func Tip(content string) (Markup, error) {
	return Callout(content, CalloutOptions{Type: common.CalloutTypeTip})
}

// Warning builds a warning callout.
func Warning(content string) (Markup, error) {
	return Callout(content, CalloutOptions{Type: common.CalloutTypeWarning})
}

// Success builds a success alert.
func Success(content string) (Markup, error) {
	return AlertBox(content, AlertOptions{Type: common.AlertTypeSuccess})
}

// Info builds an info alert.
func Info(content string) (Markup, error) {
	return AlertBox(content, AlertOptions{Type: common.AlertTypeInfo})
}

// QuickYouTube embeds a video with standard settings.
func QuickYouTube(videoID string) (Markup, error) {
	return YouTube(videoID, YouTubeOptions{})
}

// QuickIFrame builds a responsive iframe with the given aspect ratio, 0
// meaning 16:9.
func QuickIFrame(src string, aspectRatio float64) (Markup, error) {
	return ResponsiveIFrame(src, IFrameOptions{AspectRatio: aspectRatio})
}

// QuickQuote builds a quote block with optional attribution.
func QuickQuote(quote, author string) (Markup, error) {
	return QuoteBlock(quote, QuoteOptions{Author: author})
}
