package scssfmt

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/graphite-design/themegen/pkg/scsserrors"
)

var (
	// ErrUnbalancedDelimiter indicates mismatched parentheses or braces.
	ErrUnbalancedDelimiter = errors.New("unbalanced delimiter")

	// ErrUnterminatedString indicates a string literal with no closing quote.
	ErrUnterminatedString = errors.New("unterminated string")

	// ErrUnterminatedComment indicates a block comment with no closing marker.
	ErrUnterminatedComment = errors.New("unterminated comment")
)

// Printer is a concurrency-safe SCSS formatter.
var Printer = &printer{}

type printer struct {
	mu sync.Mutex
}

// Format returns the normalized form of src. The result is stable: formatting
// already formatted text is a no-op.
func (p *printer) Format(src string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	normalized, err := normalizeQuotes(src)
	if err != nil {
		return "", fmt.Errorf("%w: %w", scsserrors.ErrFormat, err)
	}

	lines := strings.Split(normalized, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	out := strings.Join(lines, "\n")

	// At most one blank line in a row.
	for strings.Contains(out, "\n\n\n") {
		out = strings.ReplaceAll(out, "\n\n\n", "\n\n")
	}

	out = strings.TrimLeft(out, "\n")
	out = strings.TrimRight(out, "\n") + "\n"

	return out, nil
}

// normalizeQuotes rewrites double-quoted string literals to single quotes
// where the contents allow it, while validating delimiter balance outside of
// strings and comments.
func normalizeQuotes(src string) (string, error) {
	var b strings.Builder

	rs := []rune(src)
	parens, braces := 0, 0

	for i := 0; i < len(rs); i++ {
		c := rs[i]

		switch c {
		case '/':
			if i+1 < len(rs) && rs[i+1] == '/' {
				for i < len(rs) && rs[i] != '\n' {
					b.WriteRune(rs[i])
					i++
				}
				if i < len(rs) {
					b.WriteRune('\n')
				}

				continue
			}

			if i+1 < len(rs) && rs[i+1] == '*' {
				end := -1
				for j := i + 1; j+1 < len(rs); j++ {
					if rs[j] == '*' && rs[j+1] == '/' {
						end = j

						break
					}
				}
				if end < 0 {
					return "", ErrUnterminatedComment
				}

				b.WriteString(string(rs[i : end+2]))
				i = end + 1

				continue
			}

			b.WriteRune(c)

		case '\'', '"':
			content, width, err := scanString(rs[i:], c)
			if err != nil {
				return "", err
			}

			quote := c
			if c == '"' && !strings.ContainsAny(content, `'\`) {
				quote = '\''
			}

			b.WriteRune(quote)
			b.WriteString(content)
			b.WriteRune(quote)

			i += width - 1

		case '(':
			parens++

			b.WriteRune(c)

		case ')':
			parens--
			if parens < 0 {
				return "", fmt.Errorf("%w: unexpected ')'", ErrUnbalancedDelimiter)
			}

			b.WriteRune(c)

		case '{':
			braces++

			b.WriteRune(c)

		case '}':
			braces--
			if braces < 0 {
				return "", fmt.Errorf("%w: unexpected '}'", ErrUnbalancedDelimiter)
			}

			b.WriteRune(c)

		default:
			b.WriteRune(c)
		}
	}

	if parens != 0 {
		return "", fmt.Errorf("%w: %d unclosed '('", ErrUnbalancedDelimiter, parens)
	}

	if braces != 0 {
		return "", fmt.Errorf("%w: %d unclosed '{'", ErrUnbalancedDelimiter, braces)
	}

	return b.String(), nil
}

// scanString reads a string literal starting at the opening quote and returns
// the contents plus the total width including both quotes.
func scanString(rs []rune, quote rune) (string, int, error) {
	var content strings.Builder

	for i := 1; i < len(rs); i++ {
		switch rs[i] {
		case quote:
			return content.String(), i + 1, nil

		case '\n':
			return "", 0, ErrUnterminatedString

		case '\\':
			if i+1 >= len(rs) {
				return "", 0, ErrUnterminatedString
			}

			content.WriteRune(rs[i])
			content.WriteRune(rs[i+1])

			i++

		default:
			content.WriteRune(rs[i])
		}
	}

	return "", 0, ErrUnterminatedString
}
