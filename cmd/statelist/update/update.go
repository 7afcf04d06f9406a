// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package update implements a command to reconcile a state list
// with the eBird taxonomy.
package update

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/statelist/checklist"
	"github.com/js-arias/statelist/csvdict"
	"github.com/js-arias/statelist/ebird"
	"github.com/js-arias/statelist/logging"
	"github.com/js-arias/statelist/region"
)

var Command = &command.Command{
	Usage: `update [--cache <file>] [--config <file>] [-v|--verbose]
	[-o|--output <file>] -i|--input <file>`,
	Short: "update a state list from the eBird taxonomy",
	Long: `
Command update reads a state checklist of common names and status in CSV
format, reconciles each row against the eBird taxonomy, and writes an
enriched list in taxonomic order.

For each row, the common name, or the name given on a "Sort as" column, is
searched on the taxonomy; names with a parenthetical subspecies qualifier
are resolved to their parent species and stacked right after it. Matched
rows get the scientific name, species code, order, family, and taxonomic
sort key of the taxon, as well as links to the eBird distribution map and
seasonality chart of the species. Rows without any match are reported and
removed. Hybrids and domestic forms are never matched. On the output,
species believed to have occurred only historically, status "(4)", go at
the end of the list.

The input file must be defined with the flag --input, or -i. By default
the output file takes the input file name with an "_updated" suffix; use
the flag --output, or -o, to define a different file.

The taxonomy is downloaded once and kept on a cache file, by default
".cache/taxonomy.json"; use the flag --cache to define a different file.
The download requires an eBird API key on the EBIRD_API_KEY environment
variable, or on a .env file, and an internet connection.

The covered region is Virginia by default; use the flag --config with a
TOML file to define another region.

Use the flag --verbose, or -v, to report informative messages.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var input string
var output string
var cacheFile string
var configFile string
var verbose bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&input, "input", "", "")
	c.Flags().StringVar(&input, "i", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().StringVar(&cacheFile, "cache", ".cache/taxonomy.json", "")
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

	key, err := ebird.APIKey()
	if err != nil {
		return err
	}
	prov := &ebird.TaxonomyCache{
		Path:   cacheFile,
		Source: ebird.NewClient(key),
	}
	taxa, err := prov.Taxonomy()
	if err != nil {
		return err
	}

	rows, err := readList(input)
	if err != nil {
		return err
	}

	updated := checklist.Update(rows, taxa)
	for _, r := range updated {
		code := r[checklist.FieldSpeciesCode]
		if code == "" {
			continue
		}
		r[checklist.FieldMap] = rs.MapURL(code)
		r[checklist.FieldChart] = rs.ChartURL(code)
	}

	if output == "" {
		output = strings.TrimSuffix(input, ".csv") + "_updated.csv"
	}
	if err := writeList(output, updated); err != nil {
		return err
	}
	slog.Info("updated list written", "file", output)
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

// outFields are the columns of the updated list.
var outFields = []string{
	checklist.FieldComName,
	checklist.FieldSciName,
	checklist.FieldStateStatus,
	checklist.FieldSortAs,
	checklist.FieldMap,
	checklist.FieldChart,
	checklist.FieldSpeciesCode,
	checklist.FieldOrder,
	checklist.FieldFamilyComName,
	checklist.FieldTaxonOrder,
	checklist.FieldSubspecies,
}

func writeList(name string, rows []checklist.Row) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	out := csvdict.NewWriter(f, outFields)
	for _, r := range rows {
		if err := out.Write(r); err != nil {
			return fmt.Errorf("when writing on %q: %v", name, err)
		}
	}
	out.Flush()
	if err := out.Error(); err != nil {
		return fmt.Errorf("when writing on %q: %v", name, err)
	}
	return nil
}
