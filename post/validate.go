package post

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"blogkit/common"
)

// Validate checks the structure of a post specification, accumulating every
// problem instead of stopping at the first. Content-level requirements
// (missing fields, malformed tables) surface later from the fragment
// constructors during rendering.
func Validate(p *Post) error {
	var errs error
	if p.Title == "" {
		errs = multierr.Append(errs, errors.New("title is required"))
	}
	return multierr.Append(errs, validateComponents(p.Components, "components", true))
}

func validateComponents(comps []Component, path string, topLevel bool) error {
	var errs error
	for i := range comps {
		errs = multierr.Append(errs, validateComponent(&comps[i], fmt.Sprintf("%s[%d]", path, i), topLevel))
	}
	return errs
}

func validateComponent(c *Component, path string, topLevel bool) error {
	kinds := c.kinds()
	switch len(kinds) {
	case 0:
		return fmt.Errorf("%s: no component key set", path)
	case 1:
	default:
		return fmt.Errorf("%s: multiple component keys set: %s", path, strings.Join(kinds, ", "))
	}

	var errs error
	check := func(field, value string, parse func(string) error) {
		if value == "" {
			return
		}
		if err := parse(value); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s.%s: %w", path, field, err))
		}
	}

	switch {
	case c.Callout != nil:
		check("type", c.Callout.Type, func(s string) error { _, err := common.ParseCalloutType(s); return err })
	case c.Alert != nil:
		check("type", c.Alert.Type, func(s string) error { _, err := common.ParseAlertType(s); return err })
	case c.IFrame != nil:
		check("loading", c.IFrame.Loading, func(s string) error { _, err := common.ParseLoadingMode(s); return err })
	case c.Tweet != nil:
		if !topLevel {
			errs = multierr.Append(errs, fmt.Errorf("%s: tweet cannot be nested inside another component", path))
		}
		check("theme", c.Tweet.Theme, func(s string) error { _, err := common.ParseTweetTheme(s); return err })
	case c.Progress != nil:
		check("color", c.Progress.Color, func(s string) error { _, err := common.ParseThemeColor(s); return err })
	case c.Metric != nil:
		check("change_type", c.Metric.ChangeType, func(s string) error { _, err := common.ParseChangeType(s); return err })
	case c.Button != nil:
		check("style", c.Button.Style, func(s string) error { _, err := common.ParseThemeColor(s); return err })
		check("size", c.Button.Size, func(s string) error { _, err := common.ParseButtonSize(s); return err })
	case c.Tabs != nil:
		errs = multierr.Append(errs, validateSections(c.Tabs.Sections, path+".sections"))
	case c.Accordion != nil:
		errs = multierr.Append(errs, validateSections(c.Accordion.Sections, path+".sections"))
	case c.TwoColumn != nil:
		errs = multierr.Append(errs, validateComponents(c.TwoColumn.Left, path+".left", false))
		errs = multierr.Append(errs, validateComponents(c.TwoColumn.Right, path+".right", false))
	}
	return errs
}

func validateSections(sections []SectionSpec, path string) error {
	var errs error
	for i := range sections {
		errs = multierr.Append(errs, validateComponents(sections[i].Body, fmt.Sprintf("%s[%d].body", path, i), false))
	}
	return errs
}
