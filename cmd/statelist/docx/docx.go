// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package docx implements a command to render an updated state list
// as a Word document for publication.
package docx

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"baliance.com/gooxml/document"
	"github.com/js-arias/command"
	"github.com/js-arias/statelist/checklist"
	"github.com/js-arias/statelist/csvdict"
	"github.com/js-arias/statelist/logging"
	"github.com/js-arias/statelist/region"
)

var Command = &command.Command{
	Usage: `docx [--config <file>] [-v|--verbose]
	[-o|--output <file>] -i|--input <file>`,
	Short: "render an updated state list as a Word document",
	Long: `
Command docx reads an updated state list, as written by the update command,
and renders it as a Word document ready for publication. The document is a
six column table with the species grouped under order and family header
rows, numbered skipping subspecies, with links to the eBird species
account, distribution map, and seasonality chart. Species believed to have
occurred only historically, status "(4)", go under their own banner and
are left unnumbered.

The input file must be defined with the flag --input, or -i. By default
the output file takes the input file name with the ".docx" extension; use
the flag --output, or -o, to define a different file.

The covered region is Virginia by default; use the flag --config with a
TOML file to define another region.

Use the flag --verbose, or -v, to report informative messages.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var input string
var output string
var configFile string
var verbose bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&input, "input", "", "")
	c.Flags().StringVar(&input, "i", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().StringVar(&configFile, "config", "", "")
	c.Flags().BoolVar(&verbose, "verbose", false, "")
	c.Flags().BoolVar(&verbose, "v", false, "")
}

func run(c *command.Command, args []string) error {
	logging.Setup(c.Stderr(), verbose)
	if input == "" {
		return c.UsageError("expecting input file")
	}

	rs, err := region.Read(configFile)
	if err != nil {
		return err
	}

	rows, err := readList(input)
	if err != nil {
		return err
	}

	doc := build(rows, rs)

	if output == "" {
		output = strings.TrimSuffix(input, ".csv") + ".docx"
	}
	if err := doc.SaveToFile(output); err != nil {
		return fmt.Errorf("when writing on %q: %v", output, err)
	}
	slog.Info("document saved", "file", output)
	return nil
}

func readList(name string) ([]checklist.Row, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	recs, err := csvdict.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}

	rows := make([]checklist.Row, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, checklist.Row(rec))
	}
	return rows, nil
}

var headers = []string{
	"#",
	"Species",
	"Scientific Name",
	"State Status",
	"Spatial Distribution",
	"Counts & Seasonality",
}

// build creates the Word document of a state list.
func build(rows []checklist.Row, rs region.Settings) *document.Document {
	doc := document.New()

	title := doc.AddParagraph()
	title.SetStyle("Title")
	title.AddRun().AddText(rs.Title)

	table := doc.AddTable()
	table.Properties().SetWidthPercent(100)

	hdr := table.AddRow()
	for _, h := range headers {
		run := hdr.AddCell().AddParagraph().AddRun()
		run.Properties().SetBold(true)
		run.AddText(h)
	}

	var curOrder, curFamily string
	index := 1
	historical := false
	for _, r := range rows {
		if r.Historical() && !historical {
			addBanner(table, "Species Believed to Have Occurred Historically")
			historical = true
		}
		if o := r[checklist.FieldOrder]; o != curOrder {
			curOrder = o
			curFamily = ""
			addBanner(table, "Order: "+curOrder)
		}
		if f := r[checklist.FieldFamilyComName]; f != curFamily {
			curFamily = f
			addBanner(table, "Family: "+curFamily)
		}

		indexText := ""
		if !r.Subspecies() && !historical {
			indexText = fmt.Sprintf("%d", index)
			index++
		}
		addTaxon(table, rs, r, indexText)
	}
	return doc
}

// addBanner adds a header row spanning the whole table:
// the text goes on the first cell,
// and the rest are left empty.
func addBanner(table document.Table, text string) {
	row := table.AddRow()
	run := row.AddCell().AddParagraph().AddRun()
	run.Properties().SetBold(true)
	run.AddText(text)
	for i := 1; i < len(headers); i++ {
		row.AddCell()
	}
}

func addTaxon(table document.Table, rs region.Settings, r checklist.Row, indexText string) {
	code := r[checklist.FieldSpeciesCode]
	row := table.AddRow()

	row.AddCell().AddParagraph().AddRun().AddText(indexText)
	addLink(row.AddCell().AddParagraph(), rs.SpeciesURL(code), r[checklist.FieldComName])
	row.AddCell().AddParagraph().AddRun().AddText(r[checklist.FieldSciName])
	row.AddCell().AddParagraph().AddRun().AddText(r[checklist.FieldStateStatus])
	addLink(row.AddCell().AddParagraph(), rs.MapURL(code), "Map")
	addLink(row.AddCell().AddParagraph(), rs.ChartURL(code), "Chart")
}

func addLink(para document.Paragraph, url, text string) {
	hl := para.AddHyperLink()
	hl.SetTarget(url)
	run := hl.AddRun()
	run.Properties().SetStyle("Hyperlink")
	run.AddText(text)
}
