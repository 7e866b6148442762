package post

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"blogkit/common"
	"blogkit/config"
	"blogkit/fragment"
)

// Renderer turns post components into fragments, applying configured
// defaults where a component leaves an option out.
type Renderer struct {
	cfg config.FragmentsConfig
	log *zap.Logger
}

func NewRenderer(cfg config.FragmentsConfig, log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{cfg: cfg, log: log.Named("render")}
}

// Render produces the HTML include file body for a post. Every failing
// component is reported, not just the first one.
func (r *Renderer) Render(p *Post) (string, error) {
	frags, err := r.renderComponents(p.Components, "components")
	if err != nil {
		return "", err
	}
	parts := make([]string, len(frags))
	for i, f := range frags {
		parts[i] = string(f)
	}
	return strings.Join(parts, "\n") + "\n", nil
}

func (r *Renderer) renderComponents(comps []Component, path string) ([]fragment.Markup, error) {
	var errs error
	frags := make([]fragment.Markup, 0, len(comps))
	for i := range comps {
		m, err := r.renderComponent(&comps[i], fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		frags = append(frags, m)
	}
	if errs != nil {
		return nil, errs
	}
	return frags, nil
}

func (r *Renderer) renderComponent(c *Component, path string) (fragment.Markup, error) {
	m, err := r.dispatch(c, path)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func (r *Renderer) dispatch(c *Component, path string) (fragment.Markup, error) {
	switch {
	case c.Text != nil:
		return fragment.Text(c.Text.Content), nil

	case c.Callout != nil:
		s := c.Callout
		name := s.Type
		if name == "" {
			name = r.cfg.DefaultCallout
		}
		typ, err := common.ParseCalloutType(name)
		if err != nil {
			return "", err
		}
		return fragment.Callout(s.Content, fragment.CalloutOptions{
			Type:        typ,
			Title:       s.Title,
			Collapsible: s.Collapsible,
			Collapsed:   s.Collapsed,
		})

	case c.Alert != nil:
		s := c.Alert
		typ, err := parseOr(s.Type, common.ParseAlertType)
		if err != nil {
			return "", err
		}
		return fragment.AlertBox(s.Content, fragment.AlertOptions{
			Type:        typ,
			Title:       s.Title,
			Dismissible: s.Dismissible,
		})

	case c.InfoBox != nil:
		s := c.InfoBox
		return fragment.InfoBox(s.Content, fragment.InfoBoxOptions{
			Icon:            s.Icon,
			BackgroundColor: s.BackgroundColor,
			BorderColor:     s.BorderColor,
		})

	case c.IFrame != nil:
		s := c.IFrame
		loading, err := parseOr(s.Loading, common.ParseLoadingMode)
		if err != nil {
			return "", err
		}
		return fragment.ResponsiveIFrame(s.Src, fragment.IFrameOptions{
			AspectRatio:  r.aspect(s.AspectRatio),
			MaxWidth:     s.MaxWidth,
			Border:       s.Border,
			NoFullscreen: s.NoFullscreen,
			Loading:      loading,
		})

	case c.YouTube != nil:
		s := c.YouTube
		return fragment.YouTube(s.VideoID, fragment.YouTubeOptions{
			Width:        s.Width,
			AspectRatio:  r.aspect(s.AspectRatio),
			StartTime:    s.StartTime,
			Autoplay:     s.Autoplay,
			HideControls: s.HideControls,
		})

	case c.Vimeo != nil:
		s := c.Vimeo
		return fragment.Vimeo(s.VideoID, fragment.VimeoOptions{
			Width:       s.Width,
			AspectRatio: r.aspect(s.AspectRatio),
		})

	case c.Tweet != nil:
		s := c.Tweet
		theme, err := parseOr(s.Theme, common.ParseTweetTheme)
		if err != nil {
			return "", err
		}
		return fragment.Tweet(s.URL, theme)

	case c.CodePen != nil:
		s := c.CodePen
		return fragment.CodePen(s.PenID, s.User, fragment.CodePenOptions{
			Height: s.Height,
			Theme:  s.Theme,
		})

	case c.Plotly != nil:
		s := c.Plotly
		return fragment.PlotlyChart(s.ChartURL, fragment.PlotlyOptions{
			Height: s.Height,
			Width:  s.Width,
		})

	case c.Table != nil:
		s := c.Table
		return fragment.StyledTable(fragment.Table{Columns: s.Columns, Rows: s.Rows}, fragment.TableOptions{
			Title:        s.Title,
			Caption:      s.Caption,
			ID:           s.ID,
			MaxRows:      r.maxRows(s.MaxRows),
			NoStripes:    s.NoStripes,
			NoHover:      s.NoHover,
			NoResponsive: s.NoResponsive,
		})

	case c.Summary != nil:
		s := c.Summary
		return fragment.SummaryStats(fragment.Table{Columns: s.Columns, Rows: s.Rows}, fragment.SummaryOptions{
			Columns: s.StatColumns,
			Title:   s.Title,
		})

	case c.Comparison != nil:
		s := c.Comparison
		return fragment.ComparisonTable(fragment.Table{Columns: s.Columns, Rows: s.Rows}, fragment.ComparisonOptions{
			Title:       s.Title,
			NoHighlight: s.NoHighlight,
		})

	case c.Tabs != nil:
		s := c.Tabs
		sections, err := r.renderSections(s.Sections, path+".sections")
		if err != nil {
			return "", err
		}
		return fragment.Tabs(sections, fragment.TabsOptions{GroupID: s.GroupID})

	case c.Accordion != nil:
		s := c.Accordion
		sections, err := r.renderSections(s.Sections, path+".sections")
		if err != nil {
			return "", err
		}
		return fragment.Accordion(sections, fragment.AccordionOptions{
			GroupID:       s.GroupID,
			AllowMultiple: s.AllowMultiple,
		})

	case c.Progress != nil:
		s := c.Progress
		color, err := parseOr(s.Color, common.ParseThemeColor)
		if err != nil {
			return "", err
		}
		return fragment.ProgressBar(s.Value, fragment.ProgressOptions{
			MaxValue: s.MaxValue,
			Label:    s.Label,
			Color:    color,
			Striped:  s.Striped,
			Animated: s.Animated,
		})

	case c.Metric != nil:
		s := c.Metric
		change, err := parseOr(s.ChangeType, common.ParseChangeType)
		if err != nil {
			return "", err
		}
		return fragment.MetricCard(s.Title, s.Value, fragment.MetricOptions{
			Subtitle:   s.Subtitle,
			Change:     s.Change,
			ChangeType: change,
			Icon:       s.Icon,
		})

	case c.Timeline != nil:
		s := c.Timeline
		events := make([]fragment.Event, len(s.Events))
		for i, e := range s.Events {
			events[i] = fragment.Event{Date: e.Date, Title: e.Title, Description: e.Description}
		}
		return fragment.Timeline(events, fragment.TimelineOptions{Title: s.Title})

	case c.Quote != nil:
		s := c.Quote
		return fragment.QuoteBlock(s.Quote, fragment.QuoteOptions{Author: s.Author, Source: s.Source})

	case c.Button != nil:
		s := c.Button
		style, err := parseOr(s.Style, common.ParseThemeColor)
		if err != nil {
			return "", err
		}
		size, err := parseOr(s.Size, common.ParseButtonSize)
		if err != nil {
			return "", err
		}
		return fragment.ButtonLink(s.Text, s.Href, fragment.ButtonOptions{
			Style:   style,
			Size:    size,
			SameTab: s.SameTab,
		})

	case c.Code != nil:
		s := c.Code
		return fragment.CodeBlock(s.Code, fragment.CodeOptions{
			Language:    s.Language,
			Title:       s.Title,
			LineNumbers: s.LineNumbers,
		})

	case c.TwoColumn != nil:
		s := c.TwoColumn
		left, err := r.renderBody(s.Left, path+".left")
		if err != nil {
			return "", err
		}
		right, err := r.renderBody(s.Right, path+".right")
		if err != nil {
			return "", err
		}
		return fragment.TwoColumn(left, right, fragment.ColumnOptions{
			LeftWidth:  s.LeftWidth,
			RightWidth: s.RightWidth,
		})

	case c.Gallery != nil:
		s := c.Gallery
		images := make([]fragment.Image, len(s.Images))
		for i, img := range s.Images {
			images[i] = fragment.Image{Src: img.Src, Alt: img.Alt, Caption: img.Caption}
		}
		cols := s.Columns
		if cols == 0 {
			cols = r.cfg.GalleryColumns
		}
		return fragment.ImageGallery(images, fragment.GalleryOptions{Columns: cols, Title: s.Title})
	}
	return "", fmt.Errorf("no component key set")
}

// renderSections renders nested component lists into section bodies.
func (r *Renderer) renderSections(specs []SectionSpec, path string) ([]fragment.Section, error) {
	sections := make([]fragment.Section, len(specs))
	for i, s := range specs {
		body, err := r.renderBody(s.Body, fmt.Sprintf("%s[%d].body", path, i))
		if err != nil {
			return nil, err
		}
		sections[i] = fragment.Section{Label: s.Label, Body: body}
	}
	return sections, nil
}

// renderBody renders a nested component list into a single graftable
// fragment. Multiple components are wrapped in a plain div so the result
// keeps one root element.
func (r *Renderer) renderBody(comps []Component, path string) (fragment.Markup, error) {
	frags, err := r.renderComponents(comps, path)
	if err != nil {
		return "", err
	}
	if len(frags) == 1 {
		return frags[0], nil
	}
	if len(frags) == 0 {
		return "", nil
	}
	var sb strings.Builder
	sb.WriteString("<div>")
	for _, f := range frags {
		sb.WriteString(string(f))
	}
	sb.WriteString("</div>")
	return fragment.Markup(sb.String()), nil
}

func (r *Renderer) aspect(v float64) float64 {
	if v == 0 {
		return r.cfg.DefaultAspectRatio
	}
	return v
}

func (r *Renderer) maxRows(v int) int {
	if v == 0 {
		return r.cfg.TableRowCap
	}
	return v
}

// parseOr parses an enum name, keeping the zero value for an empty string.
func parseOr[E any](name string, parse func(string) (E, error)) (E, error) {
	var zero E
	if name == "" {
		return zero, nil
	}
	return parse(name)
}
