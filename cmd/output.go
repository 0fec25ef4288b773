package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/s0up4200/mediashelf/content"
	"github.com/s0up4200/mediashelf/mediaapi"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// Lipgloss styles used when writing to a terminal.
var (
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // gray
	styleHeader  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
)

// printer renders command results in the configured format
type printer struct {
	w      io.Writer
	format string
	styled bool
}

func newPrinter(w io.Writer, format string) *printer {
	return &printer{
		w:      w,
		format: format,
		styled: isTerminal(w),
	}
}

func (p *printer) style(s lipgloss.Style, text string) string {
	if !p.styled {
		return text
	}
	return s.Render(text)
}

// value writes v as JSON or YAML; table format falls back to JSON
func (p *printer) value(v any) error {
	if p.format == formatYAML {
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// document writes a raw API response. In table format, responses that look
// like media are shown as a table.
func (p *printer) document(doc any) error {
	if p.format != formatTable {
		return p.value(doc)
	}
	if media, ok := mediaFromDocument(doc); ok {
		return p.media(media)
	}
	return p.value(doc)
}

// media writes typed media items
func (p *printer) media(items []mediaapi.Media) error {
	if p.format != formatTable {
		return p.value(items)
	}

	if len(items) == 0 {
		fmt.Fprintln(p.w, p.style(styleDim, "No media found."))
		return nil
	}

	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tTYPE\tSTATUS\tRATING\tGENRES")
	for _, m := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.1f\t%s\n",
			orDash(m.IDString()),
			truncate(m.Title, 48),
			orDash(string(m.Type)),
			orDash(string(m.Status)),
			m.Rating,
			orDash(strings.Join(m.Genres, ", ")),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	// style the header after alignment so escape codes do not skew columns
	header, rows, _ := strings.Cut(buf.String(), "\n")
	fmt.Fprintln(p.w, p.style(styleHeader, header))
	fmt.Fprint(p.w, rows)

	noun := "item"
	if len(items) != 1 {
		noun = "items"
	}
	fmt.Fprintln(p.w, p.style(styleDim, fmt.Sprintf("%d %s", len(items), noun)))
	return nil
}

// sections writes the static about content
func (p *printer) sections(sections []content.Section) error {
	if p.format != formatTable {
		return p.value(sections)
	}

	for i, s := range sections {
		if i > 0 {
			fmt.Fprintln(p.w)
		}
		fmt.Fprintln(p.w, p.style(styleHeader, s.Heading))
		fmt.Fprintln(p.w, strings.Repeat("─", len(s.Heading)))
		for _, e := range s.Entries {
			fmt.Fprintf(p.w, "• %s\n  %s\n", e.Title, e.Description)
		}
	}
	return nil
}

// success writes a confirmation line
func (p *printer) success(format string, args ...any) {
	fmt.Fprintln(p.w, p.style(styleSuccess, "✓ "+fmt.Sprintf(format, args...)))
}

// mediaFromDocument recognizes list envelopes, detail envelopes, bare lists
// and single media objects
func mediaFromDocument(doc any) ([]mediaapi.Media, bool) {
	switch v := doc.(type) {
	case []any:
		for _, entry := range v {
			if _, ok := entry.(map[string]any); !ok {
				return nil, false
			}
		}
		var media []mediaapi.Media
		if err := mediaapi.Decode(v, &media); err != nil {
			return nil, false
		}
		return media, true
	case map[string]any:
		if list, ok := v["media"].([]any); ok {
			return mediaFromDocument(list)
		}
		if data, ok := v["data"].(map[string]any); ok {
			if item, ok := data["media"].(map[string]any); ok {
				return mediaFromDocument([]any{item})
			}
		}
		if _, ok := v["title"]; ok {
			return mediaFromDocument([]any{v})
		}
	}
	return nil, false
}

func renderError(w io.Writer, err error) string {
	msg := "Error: " + err.Error()
	if ffe, ok := mediaapi.AsFetchFailed(err); ok && ffe.IsNotFound() {
		msg += " (check the ID or the api.url setting)"
	}
	if isTerminal(w) {
		return styleError.Render(msg)
	}
	return msg
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
