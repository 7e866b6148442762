package fragment

import (
	"strings"

	"github.com/beevik/etree"

	"blogkit/common"
)

// CalloutOptions controls Callout appearance. The zero value renders a
// non-collapsible note with the capitalized flavor name as title.
type CalloutOptions struct {
	Type        common.CalloutType // callout flavor, defaults to note
	Title       string             // custom title, defaults to capitalized flavor name
	Collapsible bool
	Collapsed   bool // starts collapsed, only honored when Collapsible is set
}

// Callout builds a Quarto style callout box.
func Callout(content string, opts CalloutOptions) (Markup, error) {
	if content == "" {
		return "", &MissingFieldError{Field: "content"}
	}
	if !opts.Type.IsValid() {
		return "", &InvalidOptionError{Option: "type", Value: opts.Type.String(), Allowed: strings.Join(common.CalloutTypeNames(), ", ")}
	}

	title := opts.Title
	if title == "" {
		title = capitalize(opts.Type.String())
	}

	collapseClass := ""
	if opts.Collapsible {
		collapseClass = "callout-collapse"
	}
	stateClass := ""
	if opts.Collapsible && opts.Collapsed {
		stateClass = "collapsed"
	}

	div := etree.NewElement("div")
	div.CreateAttr("class", joinClasses("callout", "callout-style-default", "callout-"+opts.Type.String(), collapseClass, stateClass))

	header := div.CreateElement("div")
	header.CreateAttr("class", "callout-header d-flex align-content-center")
	iconContainer := header.CreateElement("div")
	iconContainer.CreateAttr("class", "callout-icon-container")
	icon := iconContainer.CreateElement("i")
	icon.CreateAttr("class", "callout-icon")
	titleContainer := header.CreateElement("div")
	titleContainer.CreateAttr("class", "callout-title-container flex-fill")
	titleContainer.SetText(title)

	body := div.CreateElement("div")
	body.CreateAttr("class", "callout-body-container callout-body")
	body.SetText(content)

	return render(div)
}

// AlertOptions controls AlertBox appearance. The zero value renders a plain
// info alert.
type AlertOptions struct {
	Type        common.AlertType // alert flavor, defaults to info
	Title       string
	Dismissible bool // adds a close button
}

// AlertBox builds a Bootstrap style alert box.
func AlertBox(content string, opts AlertOptions) (Markup, error) {
	if content == "" {
		return "", &MissingFieldError{Field: "content"}
	}
	if !opts.Type.IsValid() {
		return "", &InvalidOptionError{Option: "type", Value: opts.Type.String(), Allowed: strings.Join(common.AlertTypeNames(), ", ")}
	}

	dismissClass := ""
	if opts.Dismissible {
		dismissClass = "alert-dismissible"
	}

	div := etree.NewElement("div")
	div.CreateAttr("class", joinClasses("alert", "alert-"+opts.Type.String(), dismissClass))
	div.CreateAttr("role", "alert")

	if opts.Title != "" {
		heading := div.CreateElement("h5")
		heading.CreateAttr("class", "alert-heading")
		heading.SetText(opts.Title)
		heading.SetTail(content)
	} else {
		div.SetText(content)
	}

	if opts.Dismissible {
		btn := div.CreateElement("button")
		btn.CreateAttr("type", "button")
		btn.CreateAttr("class", "btn-close")
		btn.CreateAttr("data-bs-dismiss", "alert")
		btn.CreateAttr("aria-label", "Close")
	}

	return render(div)
}

// InfoBoxOptions controls InfoBox appearance. Zero values render a blue box
// with an information emoji.
type InfoBoxOptions struct {
	Icon            string // icon or emoji, defaults to an information emoji
	BackgroundColor string // defaults to light blue
	BorderColor     string // defaults to blue
}

// InfoBox builds a custom styled box with an icon column. Unlike Callout it
// does not rely on site CSS and carries its styling inline.
func InfoBox(content string, opts InfoBoxOptions) (Markup, error) {
	if content == "" {
		return "", &MissingFieldError{Field: "content"}
	}
	if opts.Icon == "" {
		opts.Icon = "ℹ️"
	}
	if opts.BackgroundColor == "" {
		opts.BackgroundColor = "#e3f2fd"
	}
	if opts.BorderColor == "" {
		opts.BorderColor = "#2196f3"
	}
	if err := validColor("background_color", opts.BackgroundColor); err != nil {
		return "", err
	}
	if err := validColor("border_color", opts.BorderColor); err != nil {
		return "", err
	}

	div := etree.NewElement("div")
	div.CreateAttr("style", cssDecls(
		"background-color: "+opts.BackgroundColor+";",
		"border-left: 4px solid "+opts.BorderColor+";",
		"padding: 15px;",
		"margin: 15px 0;",
		"border-radius: 4px;",
		"box-shadow: 0 2px 4px rgba(0,0,0,0.1);",
	))

	row := div.CreateElement("div")
	row.CreateAttr("style", "display: flex; align-items: flex-start;")

	iconDiv := row.CreateElement("div")
	iconDiv.CreateAttr("style", "font-size: 1.2em; margin-right: 10px;")
	iconDiv.SetText(opts.Icon)

	contentDiv := row.CreateElement("div")
	contentDiv.CreateAttr("style", "flex: 1;")
	contentDiv.SetText(content)

	return render(div)
}

// capitalize upper-cases the first rune only, matching how default callout
// titles are derived from the flavor name.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
