package fragment

import (
	"strconv"

	"github.com/beevik/etree"
	"github.com/gosimple/slug"
)

// Section is one labeled body inside a grouping fragment. Labels must be
// unique within a group, bodies are grafted as already rendered markup.
type Section struct {
	Label string
	Body  Markup
}

func checkSections(sections []Section) error {
	if len(sections) == 0 {
		return &MissingFieldError{Field: "sections"}
	}
	seen := make(map[string]struct{}, len(sections))
	for _, s := range sections {
		if s.Label == "" {
			return &MissingFieldError{Field: "label"}
		}
		key := slug.Make(s.Label)
		if _, ok := seen[key]; ok {
			return &MalformedInputError{Field: "sections", Detail: "duplicate label " + strconv.Quote(s.Label)}
		}
		seen[key] = struct{}{}
	}
	return nil
}

// TabsOptions controls Tabs.
type TabsOptions struct {
	GroupID string // id prefix for the tab group, defaults to "custom-tabs"
}

// Tabs builds a Bootstrap tab group. Sections render in input order, the
// first tab starts active. Visibility toggling is left to the host page.
func Tabs(sections []Section, opts TabsOptions) (Markup, error) {
	if err := checkSections(sections); err != nil {
		return "", err
	}
	if opts.GroupID == "" {
		opts.GroupID = "custom-tabs"
	}

	div := etree.NewElement("div")

	nav := div.CreateElement("ul")
	nav.CreateAttr("class", "nav nav-tabs")
	nav.CreateAttr("id", opts.GroupID)
	nav.CreateAttr("role", "tablist")

	content := div.CreateElement("div")
	content.CreateAttr("class", "tab-content")
	content.CreateAttr("id", opts.GroupID+"-content")

	for i, s := range sections {
		paneID := opts.GroupID + "-" + slug.Make(s.Label)

		li := nav.CreateElement("li")
		li.CreateAttr("class", "nav-item")
		li.CreateAttr("role", "presentation")

		btn := li.CreateElement("button")
		btnClass := "nav-link"
		if i == 0 {
			btnClass += " active"
		}
		btn.CreateAttr("class", btnClass)
		btn.CreateAttr("id", paneID+"-tab")
		btn.CreateAttr("data-bs-toggle", "tab")
		btn.CreateAttr("data-bs-target", "#"+paneID)
		btn.CreateAttr("type", "button")
		btn.CreateAttr("role", "tab")
		btn.SetText(s.Label)

		pane := content.CreateElement("div")
		paneClass := "tab-pane fade"
		if i == 0 {
			paneClass += " show active"
		}
		pane.CreateAttr("class", paneClass)
		pane.CreateAttr("id", paneID)
		pane.CreateAttr("role", "tabpanel")
		if err := graft(pane, "body", s.Body); err != nil {
			return "", err
		}
	}

	return render(div)
}

// AccordionOptions controls Accordion.
type AccordionOptions struct {
	GroupID       string // id prefix, defaults to "custom-accordion"
	AllowMultiple bool   // keep other sections open when one expands
}

// Accordion builds a Bootstrap accordion. Sections render in input order,
// the first section starts expanded.
func Accordion(sections []Section, opts AccordionOptions) (Markup, error) {
	if err := checkSections(sections); err != nil {
		return "", err
	}
	if opts.GroupID == "" {
		opts.GroupID = "custom-accordion"
	}

	root := etree.NewElement("div")
	root.CreateAttr("class", "accordion")
	root.CreateAttr("id", opts.GroupID)

	for i, s := range sections {
		sectionID := opts.GroupID + "-section-" + strconv.Itoa(i)

		item := root.CreateElement("div")
		item.CreateAttr("class", "accordion-item")

		header := item.CreateElement("h2")
		header.CreateAttr("class", "accordion-header")
		header.CreateAttr("id", sectionID+"-heading")

		btn := header.CreateElement("button")
		btnClass := "accordion-button"
		expanded := "true"
		if i != 0 {
			btnClass += " collapsed"
			expanded = "false"
		}
		btn.CreateAttr("class", btnClass)
		btn.CreateAttr("type", "button")
		btn.CreateAttr("data-bs-toggle", "collapse")
		btn.CreateAttr("data-bs-target", "#"+sectionID)
		btn.CreateAttr("aria-expanded", expanded)
		btn.SetText(s.Label)

		collapse := item.CreateElement("div")
		collapseClass := "accordion-collapse collapse"
		if i == 0 {
			collapseClass += " show"
		}
		collapse.CreateAttr("id", sectionID)
		collapse.CreateAttr("class", collapseClass)
		if !opts.AllowMultiple {
			collapse.CreateAttr("data-bs-parent", "#"+opts.GroupID)
		}

		body := collapse.CreateElement("div")
		body.CreateAttr("class", "accordion-body")
		if err := graft(body, "body", s.Body); err != nil {
			return "", err
		}
	}

	return render(root)
}
