package fragment

import (
	"math"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Table is an ordered two dimensional dataset. Column order and row order
// are preserved exactly in every rendering.
type Table struct {
	Columns []string
	Rows    [][]string
}

func (t Table) validate() error {
	if len(t.Columns) == 0 {
		return &MissingFieldError{Field: "columns"}
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return &MalformedInputError{
				Field:  "rows",
				Detail: "row " + strconv.Itoa(i) + " has " + strconv.Itoa(len(row)) + " cells, want " + strconv.Itoa(len(t.Columns)),
			}
		}
	}
	return nil
}

// TableOptions controls StyledTable. Striping, hover and the responsive
// wrapper are on by default, the No* toggles switch them off.
type TableOptions struct {
	Title        string
	Caption      string
	ID           string // element id, defaults to "styled-table"
	MaxRows      int    // cap on rendered rows, 0 renders all
	NoStripes    bool
	NoHover      bool
	NoResponsive bool
}

// StyledTable renders a dataset as a Bootstrap table wrapped in an optional
// responsive container.
func StyledTable(t Table, opts TableOptions) (Markup, error) {
	if err := t.validate(); err != nil {
		return "", err
	}
	if opts.MaxRows < 0 {
		return "", &InvalidOptionError{Option: "max_rows", Value: strconv.Itoa(opts.MaxRows), Allowed: "non-negative row cap"}
	}
	if opts.ID == "" {
		opts.ID = "styled-table"
	}

	rows := t.Rows
	if opts.MaxRows > 0 && opts.MaxRows < len(rows) {
		rows = rows[:opts.MaxRows]
	}

	wrapper := etree.NewElement("div")
	wrapper.CreateAttr("style", "margin: 20px 0;")
	if opts.Title != "" {
		h := wrapper.CreateElement("h4")
		h.SetText(opts.Title)
	}

	parent := wrapper
	if !opts.NoResponsive {
		parent = wrapper.CreateElement("div")
		parent.CreateAttr("class", "table-responsive")
	}

	classes := []string{"table"}
	if !opts.NoStripes {
		classes = append(classes, "table-striped")
	}
	if !opts.NoHover {
		classes = append(classes, "table-hover")
	}

	table := parent.CreateElement("table")
	table.CreateAttr("class", strings.Join(classes, " "))
	table.CreateAttr("id", opts.ID)
	if opts.Caption != "" {
		caption := table.CreateElement("caption")
		caption.SetText(opts.Caption)
	}

	thead := table.CreateElement("thead")
	headRow := thead.CreateElement("tr")
	for _, col := range t.Columns {
		th := headRow.CreateElement("th")
		th.SetText(col)
	}

	tbody := table.CreateElement("tbody")
	for _, row := range rows {
		tr := tbody.CreateElement("tr")
		for _, cell := range row {
			td := tr.CreateElement("td")
			td.SetText(cell)
		}
	}

	return render(wrapper)
}

// SummaryOptions controls SummaryStats.
type SummaryOptions struct {
	Columns []string // columns to summarize, defaults to every numeric column
	Title   string   // defaults to "Summary Statistics"
}

var statNames = []string{"count", "mean", "std", "min", "max"}

// SummaryStats computes count, mean, sample standard deviation, min and max
// for the numeric columns of a dataset and renders them as a styled table.
// Values are rounded to 3 decimals.
func SummaryStats(t Table, opts SummaryOptions) (Markup, error) {
	if err := t.validate(); err != nil {
		return "", err
	}
	if opts.Title == "" {
		opts.Title = "Summary Statistics"
	}

	cols := opts.Columns
	if len(cols) == 0 {
		for i, name := range t.Columns {
			if columnNumeric(t, i) {
				cols = append(cols, name)
			}
		}
		if len(cols) == 0 {
			return "", &MalformedInputError{Field: "rows", Detail: "no numeric columns to summarize"}
		}
	}

	idx := make([]int, 0, len(cols))
	for _, name := range cols {
		i := columnIndex(t, name)
		if i < 0 {
			return "", &InvalidOptionError{Option: "columns", Value: name, Allowed: strings.Join(t.Columns, ", ")}
		}
		if !columnNumeric(t, i) {
			return "", &MalformedInputError{Field: "rows", Detail: "column " + name + " is not numeric"}
		}
		idx = append(idx, i)
	}

	stats := Table{Columns: append([]string{""}, cols...)}
	for _, name := range statNames {
		row := []string{name}
		for _, i := range idx {
			row = append(row, formatStat(columnStat(t, i, name)))
		}
		stats.Rows = append(stats.Rows, row)
	}

	return StyledTable(stats, TableOptions{Title: opts.Title})
}

// ComparisonOptions controls ComparisonTable. Highlighting is on by default.
type ComparisonOptions struct {
	Title       string // defaults to "Comparison"
	NoHighlight bool   // switch off best-value highlighting
}

// ComparisonTable renders a dataset for side by side comparison. Unless
// switched off, the largest numeric cell of every row is highlighted; on a
// tie the first listed column wins.
func ComparisonTable(t Table, opts ComparisonOptions) (Markup, error) {
	if err := t.validate(); err != nil {
		return "", err
	}
	if opts.Title == "" {
		opts.Title = "Comparison"
	}

	wrapper := etree.NewElement("div")
	wrapper.CreateAttr("style", "margin: 20px 0;")
	h := wrapper.CreateElement("h4")
	h.SetText(opts.Title)

	responsive := wrapper.CreateElement("div")
	responsive.CreateAttr("class", "table-responsive")

	table := responsive.CreateElement("table")
	table.CreateAttr("class", "table table-striped table-hover")

	thead := table.CreateElement("thead")
	headRow := thead.CreateElement("tr")
	for _, col := range t.Columns {
		th := headRow.CreateElement("th")
		th.SetText(col)
	}

	tbody := table.CreateElement("tbody")
	for _, row := range t.Rows {
		best := -1
		if !opts.NoHighlight {
			best = bestCell(row)
		}
		tr := tbody.CreateElement("tr")
		for i, cell := range row {
			td := tr.CreateElement("td")
			if i == best {
				td.CreateAttr("style", "background-color: lightgreen;")
			}
			td.SetText(cell)
		}
	}

	return render(wrapper)
}

// bestCell returns the index of the largest numeric cell, or -1 when the row
// has none. Earlier cells win ties.
func bestCell(row []string) int {
	best := -1
	var bestVal float64
	for i, cell := range row {
		v, ok := parseNumber(cell)
		if !ok {
			continue
		}
		if best < 0 || v > bestVal {
			best, bestVal = i, v
		}
	}
	return best
}

func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v, err == nil
}

func columnIndex(t Table, name string) int {
	for i, col := range t.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// columnNumeric reports whether every non-empty cell of a column parses as a
// number and at least one cell does.
func columnNumeric(t Table, i int) bool {
	seen := false
	for _, row := range t.Rows {
		cell := strings.TrimSpace(row[i])
		if cell == "" {
			continue
		}
		if _, ok := parseNumber(cell); !ok {
			return false
		}
		seen = true
	}
	return seen
}

// columnStat computes a single named statistic over the non-empty cells of a
// column. The standard deviation is the sample deviation and is NaN for
// fewer than two values.
func columnStat(t Table, i int, stat string) float64 {
	var values []float64
	for _, row := range t.Rows {
		cell := strings.TrimSpace(row[i])
		if cell == "" {
			continue
		}
		if v, ok := parseNumber(cell); ok {
			values = append(values, v)
		}
	}

	n := float64(len(values))
	switch stat {
	case "count":
		return n
	case "mean":
		return mean(values)
	case "std":
		if len(values) < 2 {
			return math.NaN()
		}
		m := mean(values)
		var ss float64
		for _, v := range values {
			ss += (v - m) * (v - m)
		}
		return math.Sqrt(ss / (n - 1))
	case "min":
		r := values[0]
		for _, v := range values[1:] {
			r = math.Min(r, v)
		}
		return r
	case "max":
		r := values[0]
		for _, v := range values[1:] {
			r = math.Max(r, v)
		}
		return r
	}
	return math.NaN()
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// formatStat rounds to 3 decimals and drops trailing zeros.
func formatStat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}
