package fragment

import (
	"strings"
	"testing"
)

func TestStyledTable(t *testing.T) {
	data := Table{
		Columns: []string{"Name", "Score"},
		Rows: [][]string{
			{"alpha", "95"},
			{"beta", "88"},
		},
	}

	tests := []struct {
		name    string
		table   Table
		opts    TableOptions
		want    []string
		notWant []string
		wantErr error
	}{
		{
			name:  "defaults",
			table: data,
			want: []string{
				`class="table-responsive"`,
				`class="table table-striped table-hover"`,
				"<th>Name</th><th>Score</th>",
				"<td>alpha</td><td>95</td>",
			},
		},
		{
			name:  "title and caption",
			table: data,
			opts:  TableOptions{Title: "Results", Caption: "run 1"},
			want:  []string{"<h4>Results</h4>", "<caption>run 1</caption>"},
		},
		{
			name:    "style toggles",
			table:   data,
			opts:    TableOptions{NoStripes: true, NoHover: true, NoResponsive: true},
			want:    []string{`class="table"`},
			notWant: []string{"table-striped", "table-hover", "table-responsive"},
		},
		{
			name:    "row cap",
			table:   data,
			opts:    TableOptions{MaxRows: 1},
			want:    []string{"alpha"},
			notWant: []string{"beta"},
		},
		{
			name:    "cells are escaped",
			table:   Table{Columns: []string{"c"}, Rows: [][]string{{"<b>bold</b>"}}},
			want:    []string{"&lt;b&gt;bold&lt;/b&gt;"},
			notWant: []string{"<b>"},
		},
		{
			name:    "no columns",
			table:   Table{},
			wantErr: &MissingFieldError{},
		},
		{
			name: "ragged rows",
			table: Table{
				Columns: []string{"a", "b"},
				Rows:    [][]string{{"1", "2"}, {"3"}},
			},
			wantErr: &MalformedInputError{},
		},
		{
			name:    "negative row cap",
			table:   data,
			opts:    TableOptions{MaxRows: -1},
			wantErr: &InvalidOptionError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StyledTable(tt.table, tt.opts)
			if tt.wantErr != nil {
				requireErrorType(t, err, tt.wantErr)
				return
			}
			if err != nil {
				t.Fatalf("StyledTable: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(string(got), w) {
					t.Errorf("fragment misses %q: %s", w, got)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(string(got), w) {
					t.Errorf("fragment should not contain %q: %s", w, got)
				}
			}
		})
	}
}

func TestStyledTableOrdering(t *testing.T) {
	table := Table{
		Columns: []string{"z", "a", "m"},
		Rows: [][]string{
			{"3", "1", "2"},
			{"6", "4", "5"},
		},
	}
	got, err := StyledTable(table, TableOptions{})
	if err != nil {
		t.Fatalf("StyledTable: %v", err)
	}
	s := string(got)
	if !strings.Contains(s, "<th>z</th><th>a</th><th>m</th>") {
		t.Errorf("column order not preserved: %s", s)
	}
	if strings.Index(s, "<td>3</td>") > strings.Index(s, "<td>6</td>") {
		t.Errorf("row order not preserved: %s", s)
	}
}

func TestStyledTableIDs(t *testing.T) {
	table := Table{
		Columns: []string{"name", "score"},
		Rows:    [][]string{{"a", "1"}},
	}

	first, err := StyledTable(table, TableOptions{ID: "metrics"})
	if err != nil {
		t.Fatalf("StyledTable: %v", err)
	}
	second, err := StyledTable(table, TableOptions{ID: "results"})
	if err != nil {
		t.Fatalf("StyledTable: %v", err)
	}
	if !strings.Contains(string(first), `id="metrics"`) {
		t.Errorf("fragment misses custom id: %s", first)
	}
	if !strings.Contains(string(second), `id="results"`) {
		t.Errorf("fragment misses custom id: %s", second)
	}

	fallback, err := StyledTable(table, TableOptions{})
	if err != nil {
		t.Fatalf("StyledTable: %v", err)
	}
	if !strings.Contains(string(fallback), `id="styled-table"`) {
		t.Errorf("fragment misses default id: %s", fallback)
	}
}

func TestSummaryStats(t *testing.T) {
	table := Table{
		Columns: []string{"name", "score"},
		Rows: [][]string{
			{"a", "1"},
			{"b", "2"},
			{"c", "3"},
			{"d", "4"},
		},
	}

	got, err := SummaryStats(table, SummaryOptions{})
	if err != nil {
		t.Fatalf("SummaryStats: %v", err)
	}
	s := string(got)
	for _, w := range []string{
		"<h4>Summary Statistics</h4>",
		"<th></th><th>score</th>",
		"<td>count</td><td>4</td>",
		"<td>mean</td><td>2.5</td>",
		"<td>std</td><td>1.291</td>",
		"<td>min</td><td>1</td>",
		"<td>max</td><td>4</td>",
	} {
		if !strings.Contains(s, w) {
			t.Errorf("fragment misses %q: %s", w, s)
		}
	}
	if strings.Contains(s, "<th>name</th>") {
		t.Errorf("non-numeric column should be skipped: %s", s)
	}
}

func TestSummaryStatsErrors(t *testing.T) {
	table := Table{
		Columns: []string{"name", "score"},
		Rows:    [][]string{{"a", "1"}},
	}

	if _, err := SummaryStats(table, SummaryOptions{Columns: []string{"missing"}}); !errorIs[*InvalidOptionError](err) {
		t.Errorf("unknown column: got %v, want InvalidOptionError", err)
	}
	if _, err := SummaryStats(table, SummaryOptions{Columns: []string{"name"}}); !errorIs[*MalformedInputError](err) {
		t.Errorf("non-numeric column: got %v, want MalformedInputError", err)
	}

	text := Table{Columns: []string{"name"}, Rows: [][]string{{"a"}}}
	if _, err := SummaryStats(text, SummaryOptions{}); !errorIs[*MalformedInputError](err) {
		t.Errorf("no numeric columns: got %v, want MalformedInputError", err)
	}
}

func TestComparisonTableHighlight(t *testing.T) {
	table := Table{
		Columns: []string{"A", "B"},
		Rows: [][]string{
			{"95", "88"},
			{"87", "91"},
		},
	}

	got, err := ComparisonTable(table, ComparisonOptions{})
	if err != nil {
		t.Fatalf("ComparisonTable: %v", err)
	}
	s := string(got)
	for _, w := range []string{
		"<h4>Comparison</h4>",
		`<td style="background-color: lightgreen;">95</td><td>88</td>`,
		`<td>87</td><td style="background-color: lightgreen;">91</td>`,
	} {
		if !strings.Contains(s, w) {
			t.Errorf("fragment misses %q: %s", w, s)
		}
	}
}

func TestComparisonTableTieBreak(t *testing.T) {
	// equal values highlight the first listed column
	table := Table{
		Columns: []string{"A", "B"},
		Rows:    [][]string{{"90", "90"}},
	}
	got, err := ComparisonTable(table, ComparisonOptions{})
	if err != nil {
		t.Fatalf("ComparisonTable: %v", err)
	}
	if !strings.Contains(string(got), `<td style="background-color: lightgreen;">90</td><td>90</td>`) {
		t.Errorf("tie should highlight first column: %s", got)
	}
}

func TestComparisonTableNoHighlight(t *testing.T) {
	table := Table{
		Columns: []string{"A", "B"},
		Rows:    [][]string{{"95", "88"}},
	}
	got, err := ComparisonTable(table, ComparisonOptions{Title: "Models", NoHighlight: true})
	if err != nil {
		t.Fatalf("ComparisonTable: %v", err)
	}
	s := string(got)
	if strings.Contains(s, "lightgreen") {
		t.Errorf("highlighting should be off: %s", s)
	}
	if !strings.Contains(s, "<h4>Models</h4>") {
		t.Errorf("custom title missing: %s", s)
	}
}

func TestComparisonTableNonNumericRow(t *testing.T) {
	table := Table{
		Columns: []string{"A", "B"},
		Rows:    [][]string{{"fast", "slow"}},
	}
	got, err := ComparisonTable(table, ComparisonOptions{})
	if err != nil {
		t.Fatalf("ComparisonTable: %v", err)
	}
	if strings.Contains(string(got), "lightgreen") {
		t.Errorf("rows without numbers must not highlight: %s", got)
	}
}
