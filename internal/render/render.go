// Package render turns search responses and content items into output for
// people (markdown, optionally styled for a terminal) and for programs
// (JSON, YAML).
package render

import (
	"coursesearch/internal/search"
	"coursesearch/pkg/domain"
	"coursesearch/pkg/serrors"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Format selects the output encoding.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// glamourStyle is the style used for terminal output.
const glamourStyle = "dark"

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatMarkdown, FormatJSON, FormatYAML:
		return f, nil
	case "md", "":
		return FormatMarkdown, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", serrors.With(serrors.ErrBadRequest, "unknown output format %q", s)
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Results renders res as a markdown document with one table row per match.
// Links are made absolute with baseURL when it is set.
func Results(res *search.Response, baseURL string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Search results for %q\n\n", strings.Join(res.Query, " "))
	fmt.Fprintf(&b, "%d of %d items in course %s matched.\n\n", len(res.Matches), res.Searched, res.Course.ID)

	b.WriteString("| Type | Name | Matches |\n")
	b.WriteString("|------|------|---------|\n")
	for _, m := range res.Matches {
		fmt.Fprintf(&b, "| %s | [%s](%s) | ... %s ... |\n",
			cell(m.Label()),
			cell(m.Name),
			strings.TrimRight(baseURL, "/")+m.Link,
			cell(strings.Join(m.Snippets, " ... ")))
	}

	if len(res.Failures) > 0 {
		b.WriteString("\n## Incomplete results\n\n")
		for _, f := range res.Failures {
			name := f.Resource
			if f.Key != "" {
				name += "/" + f.Key
			}
			fmt.Fprintf(&b, "- `%s`: %s\n", name, f.Message)
		}
	}

	return b.String()
}

// Content renders a single content item as markdown. HTML bodies are
// converted; module items render their URL.
func Content(c domain.Content) (string, error) {
	body := c.SearchableText()
	if c.IsHTML() && body != "" {
		md, err := htmltomarkdown.ConvertString(body)
		if err != nil {
			return "", serrors.Wrap(serrors.ErrMalformed, err, "could not convert %s %s to markdown", c.Kind(), c.Key())
		}
		body = md
	}

	return fmt.Sprintf("# %s\n\n%s\n", c.DisplayName(), strings.TrimSpace(body)), nil
}

// Terminal styles a markdown document for display in a terminal.
func Terminal(markdown string) (string, error) {
	out, err := glamour.Render(markdown, glamourStyle)
	if err != nil {
		return "", fmt.Errorf("could not render markdown: %w", err)
	}

	return out, nil
}

// Write encodes v in the given format. Markdown is produced by toMarkdown and
// styled when tty is set; a styling failure falls back to plain markdown.
func Write(w io.Writer, format Format, tty bool, v any, toMarkdown func() (string, error)) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("could not encode json: %w", err)
		}

		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("could not encode yaml: %w", err)
		}

		return enc.Close()
	default:
		md, err := toMarkdown()
		if err != nil {
			return err
		}
		if tty {
			if styled, err := Terminal(md); err == nil {
				md = styled
			}
		}
		_, err = io.WriteString(w, md)

		return err
	}
}

func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
