package css

import (
	"bytes"
	"errors"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses CSS text into a Stylesheet.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse parses CSS text into a Stylesheet. The optional source parameter
// identifies what's being parsed (for debug logging). Constructs the model
// does not represent end up as warnings, never as errors.
func (p *Parser) Parse(data []byte, source ...string) *Stylesheet {
	sheet := &Stylesheet{}

	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	input := parse.NewInput(bytes.NewReader(data))
	parser := css.NewParser(input, false)

	var (
		current *Rule
		grouped []string // selectors accumulated from qualified rules
	)

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				sheet.Warnings = append(sheet.Warnings, "parse error: "+err.Error())
				p.log.Debug("CSS parse error", zap.Error(err))
			}
			if parser.Err() != nil {
				return sheet
			}

		case css.AtRuleGrammar:
			// block-less at-rule, e.g. @import
			sheet.AtRules = append(sheet.AtRules, AtRule{
				Name:    string(data),
				Prelude: joinTokens(parser.Values()),
			})

		case css.BeginAtRuleGrammar:
			// rules nested in at-rule blocks (@media) are collected as if
			// they were top level, the query itself is recorded
			sheet.AtRules = append(sheet.AtRules, AtRule{
				Name:    string(data),
				Prelude: joinTokens(parser.Values()),
			})

		case css.EndAtRuleGrammar:
			// nothing to do

		case css.QualifiedRuleGrammar:
			// one comma-separated selector of a group, the last one arrives
			// with BeginRulesetGrammar
			grouped = append(grouped, splitSelectors(selectorText(data, parser.Values()))...)

		case css.BeginRulesetGrammar:
			grouped = append(grouped, splitSelectors(selectorText(data, parser.Values()))...)
			current = &Rule{Selectors: grouped}
			grouped = nil

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			if current == nil {
				sheet.Warnings = append(sheet.Warnings, "declaration outside ruleset: "+string(data))
				continue
			}
			current.Declarations = append(current.Declarations, Declaration{
				Property: string(data),
				Value:    joinTokens(parser.Values()),
			})

		case css.EndRulesetGrammar:
			if current != nil {
				sheet.Rules = append(sheet.Rules, *current)
				current = nil
			}

		case css.CommentGrammar, css.TokenGrammar:
			// ignore
		}
	}
}

// selectorText rebuilds the selector string from grammar data and tokens.
func selectorText(data []byte, values []css.Token) string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}
	return sb.String()
}

// joinTokens rebuilds a value string collapsing whitespace runs.
func joinTokens(tokens []css.Token) string {
	var parts []string
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			parts = append(parts, string(t.Data))
		} else if len(parts) > 0 && parts[len(parts)-1] != " " {
			parts = append(parts, " ")
		}
	}
	return strings.TrimSpace(strings.Join(parts, ""))
}
