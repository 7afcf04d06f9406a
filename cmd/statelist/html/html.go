// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package html implements a command to render an updated state list
// as an HTML table for publication.
package html

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/js-arias/command"
	"github.com/js-arias/statelist/checklist"
	"github.com/js-arias/statelist/csvdict"
	"github.com/js-arias/statelist/logging"
	"github.com/js-arias/statelist/region"
)

var Command = &command.Command{
	Usage: `html [--config <file>] [-v|--verbose]
	[-o|--output <file>] -i|--input <file>`,
	Short: "render an updated state list as an HTML table",
	Long: `
Command html reads an updated state list, as written by the update command,
and renders it as an HTML table ready for publication. Species are grouped
under order and family header rows, numbered skipping subspecies, with
links to the eBird species account, distribution map, and seasonality
chart. Species believed to have occurred only historically, status "(4)",
go under their own banner and are left unnumbered.

The input file must be defined with the flag --input, or -i. By default
the output file takes the input file name with the ".html" extension; use
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

func run(c *command.Command, args []string) (err error) {
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

	if output == "" {
		output = strings.TrimSuffix(input, ".csv") + ".html"
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := render(f, rows, rs, time.Now()); err != nil {
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

const trStart = "<tr>\n"
const trEnd = "</tr>\n"

// render writes the state list as an HTML table fragment.
func render(w io.Writer, rows []checklist.Row, rs region.Settings, date time.Time) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "<!-- This table was generated on %s programmatically by https://github.com/js-arias/statelist -->\n", date.Format("January 2, 2006"))
	bw.WriteString("<table style=\"width:100%\">\n")
	bw.WriteString("<table border=\"3\">\n")
	bw.WriteString(trStart)
	bw.WriteString("  <td style=\"width:2%\" align=\"center\"><font size=\"5\">#</font></td>\n")
	bw.WriteString("  <td style=\"width:25%\" align=\"center\"><font size=\"5\">Species</font></td>\n")
	bw.WriteString("  <td style=\"width:22%\" align=\"center\"><font size=\"5\">Scientific Name</font></td>\n")
	bw.WriteString("  <td style=\"width:12%\" align=\"center\"><font size=\"5\">State Status</font></td>\n")
	bw.WriteString("  <td style=\"width:19%\" align=\"center\"><font size=\"5\">Spatial Distribution</font></td>\n")
	bw.WriteString("  <td style=\"width:20%\" align=\"center\"><font size=\"5\">Counts & Seasonality</font></td>\n")
	bw.WriteString(trEnd)

	var curOrder, curFamily string
	index := 1
	historical := false
	for _, r := range rows {
		if r.Historical() && !historical {
			bw.WriteString("<tr><td align=\"center\" colspan=6><font size=\"5\">Species Believed to Have Occurred Historically</font></td></tr>\n")
			historical = true
		}
		if o := r[checklist.FieldOrder]; o != curOrder {
			curOrder = o
			curFamily = ""
			writeOrderHeader(bw, curOrder)
		}
		if f := r[checklist.FieldFamilyComName]; f != curFamily {
			curFamily = f
			writeFamilyHeader(bw, curFamily)
		}

		indexText := ""
		if !r.Subspecies() && !historical {
			indexText = fmt.Sprintf("%d", index)
			index++
		}
		writeTaxon(bw, rs, r, indexText)
	}
	return bw.Flush()
}

func writeTaxonomyHeader(w io.Writer, color, fontSize, level, text string) {
	fmt.Fprintf(w, "%s  <td colspan=6 bgcolor=%q><font size=%q>&nbsp&nbsp%s %s</font></td>%s", trStart, color, fontSize, level, text, trEnd)
}

func writeOrderHeader(w io.Writer, text string) {
	writeTaxonomyHeader(w, "#D9D9D9", "4", "Order", text)
}

func writeFamilyHeader(w io.Writer, text string) {
	writeTaxonomyHeader(w, "#B8CCE4", "4", "Family", text)
}

func writeTaxon(w io.Writer, rs region.Settings, r checklist.Row, indexText string) {
	code := r[checklist.FieldSpeciesCode]
	fmt.Fprint(w, trStart)
	fmt.Fprintf(w, "  <td align=\"center\">%s</font></td>\n", indexText)
	fmt.Fprintf(w, "  <td align=\"center\"><a href=%q target=\"_blank\">%s</a></td>\n", rs.SpeciesURL(code), r[checklist.FieldComName])
	fmt.Fprintf(w, "  <td align=\"left\">&nbsp&nbsp<i>%s</font></td>\n", r[checklist.FieldSciName])
	fmt.Fprintf(w, "  <td align=\"center\">%s</font></td>\n", r[checklist.FieldStateStatus])
	fmt.Fprintf(w, "  <td align=\"center\"><a href=%q target=\"_blank\">Map</a></td>\n", rs.MapURL(code))
	fmt.Fprintf(w, "  <td align=\"center\"><a href=%q target=\"_blank\">Chart</a></td>\n", rs.ChartURL(code))
	fmt.Fprint(w, trEnd)
}
