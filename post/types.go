// Package post turns YAML post specifications into HTML include files built
// from fragment constructors.
package post

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

// Post is a single post specification: metadata plus an ordered list of
// components to render.
type Post struct {
	ID         string      `yaml:"id,omitempty"`
	Title      string      `yaml:"title"`
	Author     string      `yaml:"author,omitempty"`
	Date       string      `yaml:"date,omitempty"`
	Tags       []string    `yaml:"tags,omitempty"`
	Slug       string      `yaml:"slug,omitempty"`
	Components []Component `yaml:"components"`
}

// EnsureID assigns a fresh id when the specification has none.
func (p *Post) EnsureID(log *zap.Logger) error {
	if p.ID != "" {
		return nil
	}
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("unable to generate post id: %w", err)
	}
	p.ID = id.String()
	if log != nil {
		log.Info("Assigned post id", zap.String("title", p.Title), zap.String("id", p.ID))
	}
	return nil
}

// SlugOrDefault returns the configured slug or one derived from the title.
func (p *Post) SlugOrDefault() string {
	if p.Slug != "" {
		return p.Slug
	}
	return slug.Make(p.Title)
}

// Component is one renderable unit. Exactly one field must be set, the field
// name in YAML selects the fragment constructor.
type Component struct {
	Text       *TextSpec       `yaml:"text,omitempty"`
	Callout    *CalloutSpec    `yaml:"callout,omitempty"`
	Alert      *AlertSpec      `yaml:"alert,omitempty"`
	InfoBox    *InfoBoxSpec    `yaml:"info_box,omitempty"`
	IFrame     *IFrameSpec     `yaml:"iframe,omitempty"`
	YouTube    *YouTubeSpec    `yaml:"youtube,omitempty"`
	Vimeo      *VimeoSpec      `yaml:"vimeo,omitempty"`
	Tweet      *TweetSpec      `yaml:"tweet,omitempty"`
	CodePen    *CodePenSpec    `yaml:"codepen,omitempty"`
	Plotly     *PlotlySpec     `yaml:"plotly,omitempty"`
	Table      *TableSpec      `yaml:"table,omitempty"`
	Summary    *SummarySpec    `yaml:"summary,omitempty"`
	Comparison *ComparisonSpec `yaml:"comparison,omitempty"`
	Tabs       *TabsSpec       `yaml:"tabs,omitempty"`
	Accordion  *AccordionSpec  `yaml:"accordion,omitempty"`
	Progress   *ProgressSpec   `yaml:"progress,omitempty"`
	Metric     *MetricSpec     `yaml:"metric,omitempty"`
	Timeline   *TimelineSpec   `yaml:"timeline,omitempty"`
	Quote      *QuoteSpec      `yaml:"quote,omitempty"`
	Button     *ButtonSpec     `yaml:"button,omitempty"`
	Code       *CodeSpec       `yaml:"code,omitempty"`
	TwoColumn  *TwoColumnSpec  `yaml:"two_column,omitempty"`
	Gallery    *GallerySpec    `yaml:"gallery,omitempty"`
}

// kinds returns the names of every component key that is set.
func (c *Component) kinds() []string {
	var set []string
	if c.Text != nil {
		set = append(set, "text")
	}
	if c.Callout != nil {
		set = append(set, "callout")
	}
	if c.Alert != nil {
		set = append(set, "alert")
	}
	if c.InfoBox != nil {
		set = append(set, "info_box")
	}
	if c.IFrame != nil {
		set = append(set, "iframe")
	}
	if c.YouTube != nil {
		set = append(set, "youtube")
	}
	if c.Vimeo != nil {
		set = append(set, "vimeo")
	}
	if c.Tweet != nil {
		set = append(set, "tweet")
	}
	if c.CodePen != nil {
		set = append(set, "codepen")
	}
	if c.Plotly != nil {
		set = append(set, "plotly")
	}
	if c.Table != nil {
		set = append(set, "table")
	}
	if c.Summary != nil {
		set = append(set, "summary")
	}
	if c.Comparison != nil {
		set = append(set, "comparison")
	}
	if c.Tabs != nil {
		set = append(set, "tabs")
	}
	if c.Accordion != nil {
		set = append(set, "accordion")
	}
	if c.Progress != nil {
		set = append(set, "progress")
	}
	if c.Metric != nil {
		set = append(set, "metric")
	}
	if c.Timeline != nil {
		set = append(set, "timeline")
	}
	if c.Quote != nil {
		set = append(set, "quote")
	}
	if c.Button != nil {
		set = append(set, "button")
	}
	if c.Code != nil {
		set = append(set, "code")
	}
	if c.TwoColumn != nil {
		set = append(set, "two_column")
	}
	if c.Gallery != nil {
		set = append(set, "gallery")
	}
	return set
}

type TextSpec struct {
	Content string `yaml:"content"`
}

type CalloutSpec struct {
	Content     string `yaml:"content"`
	Type        string `yaml:"type,omitempty"`
	Title       string `yaml:"title,omitempty"`
	Collapsible bool   `yaml:"collapsible,omitempty"`
	Collapsed   bool   `yaml:"collapsed,omitempty"`
}

type AlertSpec struct {
	Content     string `yaml:"content"`
	Type        string `yaml:"type,omitempty"`
	Title       string `yaml:"title,omitempty"`
	Dismissible bool   `yaml:"dismissible,omitempty"`
}

type InfoBoxSpec struct {
	Content         string `yaml:"content"`
	Icon            string `yaml:"icon,omitempty"`
	BackgroundColor string `yaml:"background_color,omitempty"`
	BorderColor     string `yaml:"border_color,omitempty"`
}

type IFrameSpec struct {
	Src          string  `yaml:"src"`
	AspectRatio  float64 `yaml:"aspect_ratio,omitempty"`
	MaxWidth     string  `yaml:"max_width,omitempty"`
	Border       string  `yaml:"border,omitempty"`
	NoFullscreen bool    `yaml:"no_fullscreen,omitempty"`
	Loading      string  `yaml:"loading,omitempty"`
}

type YouTubeSpec struct {
	VideoID      string  `yaml:"video_id"`
	Width        string  `yaml:"width,omitempty"`
	AspectRatio  float64 `yaml:"aspect_ratio,omitempty"`
	StartTime    int     `yaml:"start_time,omitempty"`
	Autoplay     bool    `yaml:"autoplay,omitempty"`
	HideControls bool    `yaml:"hide_controls,omitempty"`
}

type VimeoSpec struct {
	VideoID     string  `yaml:"video_id"`
	Width       string  `yaml:"width,omitempty"`
	AspectRatio float64 `yaml:"aspect_ratio,omitempty"`
}

type TweetSpec struct {
	URL   string `yaml:"url"`
	Theme string `yaml:"theme,omitempty"`
}

type CodePenSpec struct {
	PenID  string `yaml:"pen_id"`
	User   string `yaml:"user"`
	Height int    `yaml:"height,omitempty"`
	Theme  string `yaml:"theme,omitempty"`
}

type PlotlySpec struct {
	ChartURL string `yaml:"chart_url"`
	Height   int    `yaml:"height,omitempty"`
	Width    string `yaml:"width,omitempty"`
}

type TableSpec struct {
	Columns      []string   `yaml:"columns"`
	Rows         [][]string `yaml:"rows"`
	Title        string     `yaml:"title,omitempty"`
	Caption      string     `yaml:"caption,omitempty"`
	ID           string     `yaml:"id,omitempty"`
	MaxRows      int        `yaml:"max_rows,omitempty"`
	NoStripes    bool       `yaml:"no_stripes,omitempty"`
	NoHover      bool       `yaml:"no_hover,omitempty"`
	NoResponsive bool       `yaml:"no_responsive,omitempty"`
}

type SummarySpec struct {
	Columns     []string   `yaml:"columns"`
	Rows        [][]string `yaml:"rows"`
	StatColumns []string   `yaml:"stat_columns,omitempty"`
	Title       string     `yaml:"title,omitempty"`
}

type ComparisonSpec struct {
	Columns     []string   `yaml:"columns"`
	Rows        [][]string `yaml:"rows"`
	Title       string     `yaml:"title,omitempty"`
	NoHighlight bool       `yaml:"no_highlight,omitempty"`
}

// SectionSpec is one labeled pane of a tabs or accordion group. The body is
// a nested component list.
type SectionSpec struct {
	Label string      `yaml:"label"`
	Body  []Component `yaml:"body"`
}

type TabsSpec struct {
	Sections []SectionSpec `yaml:"sections"`
	GroupID  string        `yaml:"group_id,omitempty"`
}

type AccordionSpec struct {
	Sections      []SectionSpec `yaml:"sections"`
	GroupID       string        `yaml:"group_id,omitempty"`
	AllowMultiple bool          `yaml:"allow_multiple,omitempty"`
}

type ProgressSpec struct {
	Value    float64 `yaml:"value"`
	MaxValue float64 `yaml:"max_value,omitempty"`
	Label    string  `yaml:"label,omitempty"`
	Color    string  `yaml:"color,omitempty"`
	Striped  bool    `yaml:"striped,omitempty"`
	Animated bool    `yaml:"animated,omitempty"`
}

type MetricSpec struct {
	Title      string `yaml:"title"`
	Value      string `yaml:"value"`
	Subtitle   string `yaml:"subtitle,omitempty"`
	Change     string `yaml:"change,omitempty"`
	ChangeType string `yaml:"change_type,omitempty"`
	Icon       string `yaml:"icon,omitempty"`
}

type EventSpec struct {
	Date        string `yaml:"date,omitempty"`
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
}

type TimelineSpec struct {
	Events []EventSpec `yaml:"events"`
	Title  string      `yaml:"title,omitempty"`
}

type QuoteSpec struct {
	Quote  string `yaml:"quote"`
	Author string `yaml:"author,omitempty"`
	Source string `yaml:"source,omitempty"`
}

type ButtonSpec struct {
	Text    string `yaml:"text"`
	Href    string `yaml:"href"`
	Style   string `yaml:"style,omitempty"`
	Size    string `yaml:"size,omitempty"`
	SameTab bool   `yaml:"same_tab,omitempty"`
}

type CodeSpec struct {
	Code        string `yaml:"code"`
	Language    string `yaml:"language,omitempty"`
	Title       string `yaml:"title,omitempty"`
	LineNumbers bool   `yaml:"line_numbers,omitempty"`
}

type TwoColumnSpec struct {
	Left       []Component `yaml:"left"`
	Right      []Component `yaml:"right"`
	LeftWidth  int         `yaml:"left_width,omitempty"`
	RightWidth int         `yaml:"right_width,omitempty"`
}

type ImageSpec struct {
	Src     string `yaml:"src"`
	Alt     string `yaml:"alt,omitempty"`
	Caption string `yaml:"caption,omitempty"`
}

type GallerySpec struct {
	Images  []ImageSpec `yaml:"images"`
	Columns int         `yaml:"columns,omitempty"`
	Title   string      `yaml:"title,omitempty"`
}
