package fragment

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"blogkit/common"
)

// ProgressOptions controls ProgressBar. The zero value renders a plain
// primary colored bar out of 100.
type ProgressOptions struct {
	MaxValue float64 // defaults to 100
	Label    string  // bar text, defaults to the percentage
	Color    common.ThemeColor
	Striped  bool
	Animated bool // animated stripes
}

// ProgressBar builds a Bootstrap progress bar filled to value/max.
func ProgressBar(value float64, opts ProgressOptions) (Markup, error) {
	if opts.MaxValue < 0 {
		return "", &InvalidOptionError{Option: "max_value", Value: formatNumber(opts.MaxValue), Allowed: "positive maximum"}
	}
	if opts.MaxValue == 0 {
		opts.MaxValue = 100
	}
	if value < 0 || value > opts.MaxValue {
		return "", &InvalidOptionError{Option: "value", Value: formatNumber(value), Allowed: "0 to " + formatNumber(opts.MaxValue)}
	}
	if !opts.Color.IsValid() {
		return "", &InvalidOptionError{Option: "color", Value: opts.Color.String(), Allowed: strings.Join(common.ThemeColorNames(), ", ")}
	}

	percentage := value / opts.MaxValue * 100

	classes := []string{"progress-bar", "bg-" + opts.Color.String()}
	if opts.Striped {
		classes = append(classes, "progress-bar-striped")
	}
	if opts.Animated {
		classes = append(classes, "progress-bar-animated")
	}

	label := opts.Label
	if label == "" {
		label = fmt.Sprintf("%.1f%%", percentage)
	}

	outer := etree.NewElement("div")
	outer.CreateAttr("class", "progress")
	outer.CreateAttr("style", "height: 25px; margin: 10px 0;")

	bar := outer.CreateElement("div")
	bar.CreateAttr("class", strings.Join(classes, " "))
	bar.CreateAttr("role", "progressbar")
	bar.CreateAttr("style", "width: "+percent(percentage))
	bar.CreateAttr("aria-valuenow", formatNumber(value))
	bar.CreateAttr("aria-valuemin", "0")
	bar.CreateAttr("aria-valuemax", formatNumber(opts.MaxValue))
	bar.SetText(label)

	return render(outer)
}

// MetricOptions controls MetricCard. All fields are optional.
type MetricOptions struct {
	Subtitle   string
	Change     string // change indicator text, e.g. "+5.2%"
	ChangeType common.ChangeType
	Icon       string // icon or emoji shown above the title
}

// changeColors maps change direction to its display color.
var changeColors = map[common.ChangeType]string{
	common.ChangeTypeNeutral:  "#6c757d",
	common.ChangeTypePositive: "#28a745",
	common.ChangeTypeNegative: "#dc3545",
}

// MetricCard builds a centered card showing a single metric with optional
// subtitle and change indicator.
func MetricCard(title, value string, opts MetricOptions) (Markup, error) {
	if title == "" {
		return "", &MissingFieldError{Field: "title"}
	}
	if value == "" {
		return "", &MissingFieldError{Field: "value"}
	}
	if !opts.ChangeType.IsValid() {
		return "", &InvalidOptionError{Option: "change_type", Value: opts.ChangeType.String(), Allowed: strings.Join(common.ChangeTypeNames(), ", ")}
	}

	card := etree.NewElement("div")
	card.CreateAttr("style", cssDecls(
		"border: 1px solid #dee2e6;",
		"border-radius: 8px;",
		"padding: 20px;",
		"margin: 10px 0;",
		"text-align: center;",
		"background: white;",
		"box-shadow: 0 2px 4px rgba(0,0,0,0.1);",
	))

	if opts.Icon != "" {
		icon := card.CreateElement("div")
		icon.CreateAttr("style", "font-size: 2em; margin-bottom: 10px;")
		icon.SetText(opts.Icon)
	}

	titleDiv := card.CreateElement("div")
	titleDiv.CreateAttr("style", "font-size: 0.9em; color: #6c757d; margin-bottom: 5px;")
	titleDiv.SetText(title)

	valueDiv := card.CreateElement("div")
	valueDiv.CreateAttr("style", "font-size: 2em; font-weight: bold; color: #212529;")
	valueDiv.SetText(value)

	if opts.Subtitle != "" {
		sub := card.CreateElement("div")
		sub.CreateAttr("style", "color: #6c757d; font-size: 0.9em;")
		sub.SetText(opts.Subtitle)
	}

	if opts.Change != "" {
		change := card.CreateElement("div")
		change.CreateAttr("style", "color: "+changeColors[opts.ChangeType]+"; font-weight: bold; margin-top: 5px;")
		change.SetText(opts.Change)
	}

	return render(card)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
