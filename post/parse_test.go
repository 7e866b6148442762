package post

import (
	"strings"
	"testing"

	"go.uber.org/multierr"
	"go.uber.org/zap/zaptest"
)

const samplePost = `
title: Benchmark results
author: Jane
date: 2026-03-01
tags: [go, benchmarks]
components:
  - callout:
      content: Numbers are from a cold cache.
      type: warning
  - table:
      columns: [Name, Score]
      rows:
        - [baseline, "95"]
        - [tuned, "88"]
  - youtube:
      video_id: abc123
`

func TestParse(t *testing.T) {
	p, err := Parse([]byte(samplePost))
	if err != nil {
		t.Fatal(err)
	}
	if p.Title != "Benchmark results" {
		t.Errorf("title = %q", p.Title)
	}
	if len(p.Components) != 3 {
		t.Fatalf("components = %d", len(p.Components))
	}
	if p.Components[0].Callout == nil || p.Components[0].Callout.Type != "warning" {
		t.Error("callout component not decoded")
	}
	if p.Components[1].Table == nil || len(p.Components[1].Table.Rows) != 2 {
		t.Error("table component not decoded")
	}
	if p.Components[2].YouTube == nil || p.Components[2].YouTube.VideoID != "abc123" {
		t.Error("youtube component not decoded")
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	spec := `
title: x
components:
  - callout:
      content: hi
      flavor: tip
`
	if _, err := Parse([]byte(spec)); err == nil {
		t.Fatal("unknown field accepted")
	}
}

func TestParseAccumulatesValidationErrors(t *testing.T) {
	spec := `
components:
  - callout:
      content: hi
      type: shiny
  - {}
  - button:
      text: go
      href: /x
      style: chartreuse
      size: xxl
`
	_, err := Parse([]byte(spec))
	if err == nil {
		t.Fatal("invalid specification accepted")
	}
	for _, want := range []string{
		"title is required",
		"components[0].type",
		"components[1]: no component key set",
		"components[2].style",
		"components[2].size",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error does not mention %q: %v", want, err)
		}
	}
	if len(multierr.Errors(err)) < 4 {
		t.Errorf("expected at least 4 accumulated errors, got %d", len(multierr.Errors(err)))
	}
}

func TestValidateRejectsMultipleKinds(t *testing.T) {
	p := &Post{
		Title: "x",
		Components: []Component{
			{Text: &TextSpec{Content: "a"}, Quote: &QuoteSpec{Quote: "b"}},
		},
	}
	err := Validate(p)
	if err == nil || !strings.Contains(err.Error(), "multiple component keys set: text, quote") {
		t.Fatalf("got %v", err)
	}
}

func TestValidateRejectsNestedTweet(t *testing.T) {
	p := &Post{
		Title: "x",
		Components: []Component{
			{Tabs: &TabsSpec{Sections: []SectionSpec{
				{Label: "a", Body: []Component{{Tweet: &TweetSpec{URL: "https://example.com/s/1"}}}},
			}}},
		},
	}
	err := Validate(p)
	if err == nil || !strings.Contains(err.Error(), "tweet cannot be nested") {
		t.Fatalf("got %v", err)
	}

	// at top level the same component is fine
	p.Components = []Component{{Tweet: &TweetSpec{URL: "https://example.com/s/1"}}}
	if err := Validate(p); err != nil {
		t.Fatalf("top level tweet rejected: %v", err)
	}
}

func TestEnsureID(t *testing.T) {
	p := &Post{Title: "x"}
	if err := p.EnsureID(zaptest.NewLogger(t)); err != nil {
		t.Fatal(err)
	}
	if p.ID == "" {
		t.Fatal("id not assigned")
	}

	keep := p.ID
	if err := p.EnsureID(nil); err != nil {
		t.Fatal(err)
	}
	if p.ID != keep {
		t.Error("existing id replaced")
	}
}

func TestSlugOrDefault(t *testing.T) {
	p := &Post{Title: "Hello, World!"}
	if got := p.SlugOrDefault(); got != "hello-world" {
		t.Errorf("derived slug = %q", got)
	}
	p.Slug = "custom"
	if got := p.SlugOrDefault(); got != "custom" {
		t.Errorf("explicit slug = %q", got)
	}
}
