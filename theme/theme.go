// Package theme emits the site theme override consumed by the host site
// generator's style pipeline: an SCSS file with a variables section built
// from the configured palette and typography and a rules section with the
// button and navigation styling.
package theme

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"go.uber.org/zap"

	"blogkit/config"
	"blogkit/css"
)

//go:embed theme.scss.tmpl
var themeTmpl string

// rulesMarker separates SCSS variables from plain CSS rules in the emitted
// file (Quarto layout convention).
const rulesMarker = "/*-- scss:rules --*/"

// Generate expands the theme template with the configured values.
func Generate(cfg *config.ThemeConfig) (string, error) {
	tmpl, err := template.New("theme").Funcs(sprig.FuncMap()).Parse(themeTmpl)
	if err != nil {
		return "", fmt.Errorf("unable to parse theme template: %w", err)
	}
	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, cfg); err != nil {
		return "", fmt.Errorf("unable to expand theme template: %w", err)
	}
	return buf.String(), nil
}

// expected declarations in the rules section, in report order
var requiredRules = []struct {
	selector string
	props    []string
}{
	{".btn", []string{"border-radius", "box-shadow"}},
	{".navbar", []string{"background-color"}},
	{".navbar .nav-link", []string{"color"}},
	{".navbar .nav-link:hover", []string{"color"}},
}

// Check parses the rules section of generated SCSS and returns a list of
// problems: parser warnings plus any expected declaration that is missing.
// An empty result means the theme is well formed.
func Check(scss string, log *zap.Logger) []string {
	if log == nil {
		log = zap.NewNop()
	}

	_, rules, found := strings.Cut(scss, rulesMarker)
	if !found {
		return []string{"rules section marker not found"}
	}

	var problems []string

	sheet := css.NewParser(log).Parse([]byte(rules), "theme rules")
	problems = append(problems, sheet.Warnings...)

	for _, rule := range requiredRules {
		for _, prop := range rule.props {
			value, ok := sheet.Lookup(rule.selector, prop)
			if !ok {
				problems = append(problems, fmt.Sprintf("%s: missing %s", rule.selector, prop))
				continue
			}
			if strings.TrimSpace(value) == "" {
				problems = append(problems, fmt.Sprintf("%s: empty %s", rule.selector, prop))
			}
		}
	}
	return problems
}
