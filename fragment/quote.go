package fragment

import (
	"strings"

	"github.com/beevik/etree"

	"blogkit/common"
)

// QuoteOptions controls QuoteBlock attribution. Both fields are optional.
type QuoteOptions struct {
	Author string
	Source string
}

// QuoteBlock builds a styled blockquote with optional attribution footer.
func QuoteBlock(quote string, opts QuoteOptions) (Markup, error) {
	if quote == "" {
		return "", &MissingFieldError{Field: "quote"}
	}

	block := etree.NewElement("blockquote")
	block.CreateAttr("style", cssDecls(
		"border-left: 4px solid #007bff;",
		"padding: 20px;",
		"margin: 20px 0;",
		"background: #f8f9fa;",
		"font-style: italic;",
		"font-size: 1.1em;",
	))

	p := block.CreateElement("p")
	p.CreateAttr("style", "margin-bottom: 10px;")
	p.SetText(`"` + quote + `"`)

	footer := block.CreateElement("footer")
	footer.CreateAttr("style", "text-align: right; font-size: 0.9em;")
	if opts.Author != "" {
		cite := footer.CreateElement("cite")
		cite.SetText("— " + opts.Author)
	}
	if opts.Source != "" {
		small := footer.CreateElement("small")
		small.SetText(", " + opts.Source)
	}

	return render(block)
}

// ButtonOptions controls ButtonLink. The zero value renders a medium primary
// button opening in a new tab.
type ButtonOptions struct {
	Style   common.ThemeColor
	Size    common.ButtonSize
	SameTab bool // open in the same tab, dropping target and rel attributes
}

// ButtonLink builds an anchor styled as a Bootstrap button.
func ButtonLink(text, href string, opts ButtonOptions) (Markup, error) {
	if text == "" {
		return "", &MissingFieldError{Field: "text"}
	}
	if href == "" {
		return "", &MissingFieldError{Field: "url"}
	}
	if !opts.Style.IsValid() {
		return "", &InvalidOptionError{Option: "style", Value: opts.Style.String(), Allowed: strings.Join(common.ThemeColorNames(), ", ")}
	}
	if !opts.Size.IsValid() {
		return "", &InvalidOptionError{Option: "size", Value: opts.Size.String(), Allowed: strings.Join(common.ButtonSizeNames(), ", ")}
	}

	sizeClass := ""
	if opts.Size != common.ButtonSizeMd {
		sizeClass = "btn-" + opts.Size.String()
	}

	a := etree.NewElement("a")
	a.CreateAttr("href", href)
	a.CreateAttr("class", joinClasses("btn", "btn-"+opts.Style.String(), sizeClass))
	if !opts.SameTab {
		a.CreateAttr("target", "_blank")
		a.CreateAttr("rel", "noopener noreferrer")
	}
	a.CreateAttr("style", "margin: 10px 5px; text-decoration: none;")
	a.SetText(text)

	return render(a)
}

// CodeOptions controls CodeBlock.
type CodeOptions struct {
	Language    string // highlight language class, defaults to "text"
	Title       string // optional header bar above the code
	LineNumbers bool   // request line numbers from the highlighter
}

// CodeBlock builds a pre/code pair carrying a language class for the host
// page's highlighter. The code text itself is escaped, never interpreted.
func CodeBlock(code string, opts CodeOptions) (Markup, error) {
	if code == "" {
		return "", &MissingFieldError{Field: "code"}
	}
	if opts.Language == "" {
		opts.Language = "text"
	}

	wrapper := etree.NewElement("div")
	wrapper.CreateAttr("style", "border: 1px solid #ddd; border-radius: 4px; margin: 15px 0; overflow: hidden;")

	if opts.Title != "" {
		title := wrapper.CreateElement("div")
		title.CreateAttr("style", "background: #f1f3f4; padding: 8px 12px; font-weight: bold; border-bottom: 1px solid #ddd;")
		title.SetText(opts.Title)
	}

	pre := wrapper.CreateElement("pre")
	pre.CreateAttr("style", "margin: 0; padding: 15px; background: #f8f9fa; overflow-x: auto;")

	codeEl := pre.CreateElement("code")
	class := "language-" + opts.Language
	if opts.LineNumbers {
		class += " line-numbers"
	}
	codeEl.CreateAttr("class", class)
	codeEl.SetText(code)

	return render(wrapper)
}
