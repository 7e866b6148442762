package fragment

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"blogkit/common"
)

const defaultAspectRatio = 0.5625 // 16:9

// IFrameOptions controls ResponsiveIFrame. The zero value renders a 16:9
// full-width lazy frame with fullscreen allowed.
type IFrameOptions struct {
	AspectRatio  float64 // height/width ratio, defaults to 0.5625 (16:9)
	MaxWidth     string  // container width, defaults to "100%"
	Border       string  // iframe border style, defaults to "0"
	NoFullscreen bool    // drop the allowfullscreen attribute
	Loading      common.LoadingMode
}

// ResponsiveIFrame wraps an iframe in a padded container so it scales with
// the page width while keeping its aspect ratio.
func ResponsiveIFrame(src string, opts IFrameOptions) (Markup, error) {
	if src == "" {
		return "", &MissingFieldError{Field: "src"}
	}
	if opts.AspectRatio < 0 {
		return "", &InvalidOptionError{Option: "aspect_ratio", Value: strconv.FormatFloat(opts.AspectRatio, 'g', -1, 64), Allowed: "positive ratio"}
	}
	if opts.AspectRatio == 0 {
		opts.AspectRatio = defaultAspectRatio
	}
	if opts.MaxWidth == "" {
		opts.MaxWidth = "100%"
	}
	if opts.Border == "" {
		opts.Border = "0"
	}
	if !opts.Loading.IsValid() {
		return "", &InvalidOptionError{Option: "loading", Value: opts.Loading.String(), Allowed: strings.Join(common.LoadingModeNames(), ", ")}
	}

	div := etree.NewElement("div")
	div.CreateAttr("style", cssDecls(
		"position: relative;",
		"width: "+opts.MaxWidth+";",
		"height: 0;",
		"padding-bottom: "+percent(opts.AspectRatio*100)+";",
		"overflow: hidden;",
		"border-radius: 8px;",
	))

	frame := div.CreateElement("iframe")
	frame.CreateAttr("src", src)
	frame.CreateAttr("style", cssDecls(
		"position: absolute;",
		"top: 0;",
		"left: 0;",
		"width: 100%;",
		"height: 100%;",
		"border: "+opts.Border+";",
	))
	frame.CreateAttr("loading", opts.Loading.String())
	if !opts.NoFullscreen {
		frame.CreateAttr("allowfullscreen", "")
	}

	return render(div)
}

// YouTubeOptions controls YouTube. The zero value renders a full-width 16:9
// player with controls and without autoplay.
type YouTubeOptions struct {
	Width        string  // container width, defaults to "100%"
	AspectRatio  float64 // defaults to 0.5625 (16:9)
	StartTime    int     // start offset in seconds, 0 means from the beginning
	Autoplay     bool
	HideControls bool
}

// YouTube embeds a video by its id through a responsive iframe.
func YouTube(videoID string, opts YouTubeOptions) (Markup, error) {
	if videoID == "" {
		return "", &MissingFieldError{Field: "video_id"}
	}
	if opts.StartTime < 0 {
		return "", &InvalidOptionError{Option: "start_time", Value: strconv.Itoa(opts.StartTime), Allowed: "non-negative seconds"}
	}

	params := url.Values{}
	if opts.StartTime > 0 {
		params.Set("start", strconv.Itoa(opts.StartTime))
	}
	if opts.Autoplay {
		params.Set("autoplay", "1")
	}
	if opts.HideControls {
		params.Set("controls", "0")
	}

	src := "https://www.youtube.com/embed/" + url.PathEscape(videoID)
	if len(params) > 0 {
		src += "?" + params.Encode()
	}
	return ResponsiveIFrame(src, IFrameOptions{AspectRatio: opts.AspectRatio, MaxWidth: opts.Width})
}

// VimeoOptions controls Vimeo sizing.
type VimeoOptions struct {
	Width       string  // defaults to "100%"
	AspectRatio float64 // defaults to 0.5625 (16:9)
}

// Vimeo embeds a video by its id through a responsive iframe.
func Vimeo(videoID string, opts VimeoOptions) (Markup, error) {
	if videoID == "" {
		return "", &MissingFieldError{Field: "video_id"}
	}
	src := "https://player.vimeo.com/video/" + url.PathEscape(videoID)
	return ResponsiveIFrame(src, IFrameOptions{AspectRatio: opts.AspectRatio, MaxWidth: opts.Width})
}

// Tweet embeds a post by URL using the provider's blockquote convention. The
// widgets script tag is emitted alongside the blockquote, so the result has
// two top level elements and cannot be grafted into another fragment.
func Tweet(tweetURL string, theme common.TweetTheme) (Markup, error) {
	if tweetURL == "" {
		return "", &MissingFieldError{Field: "tweet_url"}
	}
	if !theme.IsValid() {
		return "", &InvalidOptionError{Option: "theme", Value: theme.String(), Allowed: strings.Join(common.TweetThemeNames(), ", ")}
	}

	quote := etree.NewElement("blockquote")
	quote.CreateAttr("class", "twitter-tweet")
	quote.CreateAttr("data-theme", theme.String())
	link := quote.CreateElement("a")
	link.CreateAttr("href", tweetURL)

	script := etree.NewElement("script")
	script.CreateAttr("async", "")
	script.CreateAttr("src", "https://platform.twitter.com/widgets.js")
	script.CreateAttr("charset", "utf-8")

	q, err := render(quote)
	if err != nil {
		return "", err
	}
	s, err := render(script)
	if err != nil {
		return "", err
	}
	return q + s, nil
}

// CodePenOptions controls CodePen sizing and theme.
type CodePenOptions struct {
	Height int    // pixels, defaults to 400
	Theme  string // pen theme id, defaults to "default"
}

// CodePen embeds a pen by user and id through a responsive iframe. The
// aspect ratio approximates the requested height against a 800px wide page.
func CodePen(penID, user string, opts CodePenOptions) (Markup, error) {
	if penID == "" {
		return "", &MissingFieldError{Field: "pen_id"}
	}
	if user == "" {
		return "", &MissingFieldError{Field: "user"}
	}
	if opts.Height < 0 {
		return "", &InvalidOptionError{Option: "height", Value: strconv.Itoa(opts.Height), Allowed: "positive pixels"}
	}
	if opts.Height == 0 {
		opts.Height = 400
	}
	if opts.Theme == "" {
		opts.Theme = "default"
	}

	params := url.Values{}
	params.Set("height", strconv.Itoa(opts.Height))
	params.Set("theme-id", opts.Theme)
	params.Set("default-tab", "result")

	src := "https://codepen.io/" + url.PathEscape(user) + "/embed/" + url.PathEscape(penID) + "?" + params.Encode()
	return ResponsiveIFrame(src, IFrameOptions{AspectRatio: float64(opts.Height) / 800})
}

// PlotlyOptions controls PlotlyChart sizing.
type PlotlyOptions struct {
	Height int    // pixels, defaults to 500
	Width  string // defaults to "100%"
}

// PlotlyChart embeds a chart from a sharing URL in a fixed-height iframe.
func PlotlyChart(chartURL string, opts PlotlyOptions) (Markup, error) {
	if chartURL == "" {
		return "", &MissingFieldError{Field: "chart_url"}
	}
	if opts.Height < 0 {
		return "", &InvalidOptionError{Option: "height", Value: strconv.Itoa(opts.Height), Allowed: "positive pixels"}
	}
	if opts.Height == 0 {
		opts.Height = 500
	}
	if opts.Width == "" {
		opts.Width = "100%"
	}

	frame := etree.NewElement("iframe")
	frame.CreateAttr("src", chartURL)
	frame.CreateAttr("width", opts.Width)
	frame.CreateAttr("height", strconv.Itoa(opts.Height))
	frame.CreateAttr("frameborder", "0")
	frame.CreateAttr("style", "border: 0; border-radius: 8px;")

	return render(frame)
}
