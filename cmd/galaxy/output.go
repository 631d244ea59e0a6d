package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatCSV   = "csv"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// planetRecord is one output row.
type planetRecord struct {
	Index int     `json:"index" yaml:"index"`
	Name  string  `json:"name,omitempty" yaml:"name,omitempty"`
	X     float64 `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`
	Home  int     `json:"home,omitempty" yaml:"home,omitempty"` // 1-based player number, 0 if none
}

// document is the full output of one generation.
type document struct {
	Shape      string         `json:"shape" yaml:"shape"`
	Seed       int64          `json:"seed" yaml:"seed"`
	Players    int            `json:"players" yaml:"players"`
	Density    float64        `json:"density" yaml:"density"`
	Radius     float64        `json:"radius" yaml:"radius"`
	Normalized bool           `json:"normalized" yaml:"normalized"`
	Planets    []planetRecord `json:"planets" yaml:"planets"`
}

func newDocument(gen *generation) document {
	layout := gen.layout
	homes := make(map[int]int, len(layout.Homes))
	for player, idx := range layout.Homes {
		homes[idx] = player + 1
	}

	planets := make([]planetRecord, layout.Len())
	for i, p := range layout.Points {
		planets[i] = planetRecord{Index: i, X: p.X, Y: p.Y, Home: homes[i]}
		if layout.Names != nil {
			planets[i].Name = layout.Names[i]
		}
	}
	return document{
		Shape:      layout.Shape.String(),
		Seed:       layout.Seed,
		Players:    gen.req.Players,
		Density:    gen.req.Density,
		Radius:     layout.Radius(),
		Normalized: gen.normalized,
		Planets:    planets,
	}
}

func (d document) named() bool {
	return len(d.Planets) > 0 && d.Planets[0].Name != ""
}

// writeDocument renders doc in format. styled enables colors for tables.
func writeDocument(w io.Writer, format string, doc document, styled bool) error {
	switch format {
	case formatTable:
		return writeTable(w, doc, styled)
	case formatCSV:
		return writeCSV(w, doc)
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q (valid: table, csv, json, yaml)", format)
}

func writeCSV(w io.Writer, doc document) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"index", "name", "x", "y", "home"}); err != nil {
		return err
	}
	for _, p := range doc.Planets {
		home := ""
		if p.Home > 0 {
			home = strconv.Itoa(p.Home)
		}
		row := []string{
			strconv.Itoa(p.Index),
			p.Name,
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
			home,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("241"))
	homeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212"))
)

func writeTable(w io.Writer, doc document, styled bool) error {
	render := func(s lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return s.Render(text)
	}

	p := message.NewPrinter(language.English)
	title := p.Sprintf("%s galaxy: %d planets, %d players, density %.2f, radius %.2f",
		doc.Shape, len(doc.Planets), doc.Players, doc.Density, doc.Radius)
	// Seeds are printed ungrouped so they can be pasted back into --seed.
	title += fmt.Sprintf(", seed %d", doc.Seed)
	if _, err := fmt.Fprintln(w, render(titleStyle, title)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	nameWidth := 0
	if doc.named() {
		nameWidth = len("Name")
		for _, pl := range doc.Planets {
			nameWidth = max(nameWidth, len(pl.Name))
		}
	}

	header := fmt.Sprintf("%6s  ", "#")
	if nameWidth > 0 {
		header += fmt.Sprintf("%-*s  ", nameWidth, "Name")
	}
	header += fmt.Sprintf("%12s  %12s  %s", "X", "Y", "Home")
	if _, err := fmt.Fprintln(w, render(headerStyle, header)); err != nil {
		return err
	}

	for _, pl := range doc.Planets {
		line := fmt.Sprintf("%6d  ", pl.Index)
		if nameWidth > 0 {
			line += fmt.Sprintf("%-*s  ", nameWidth, pl.Name)
		}
		line += fmt.Sprintf("%12.4f  %12.4f", pl.X, pl.Y)
		if pl.Home > 0 {
			line = render(homeStyle, line+fmt.Sprintf("  P%d", pl.Home))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
