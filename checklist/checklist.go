// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package checklist implements the reconciliation
// of a state bird checklist
// against the eBird taxonomy.
package checklist

import (
	"cmp"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/js-arias/statelist/ebird"
	"golang.org/x/text/unicode/norm"
)

// Columns recognized on a checklist row.
// Any other column is passed through untouched.
const (
	FieldComName       = "comName"
	FieldSciName       = "sciName"
	FieldStateStatus   = "State Status"
	FieldSortAs        = "Sort as"
	FieldSpeciesCode   = "speciesCode"
	FieldOrder         = "order"
	FieldFamilyComName = "familyComName"
	FieldTaxonOrder    = "taxonOrder"
	FieldSubspecies    = "subspecies"

	FieldMap   = "Spatial Distribution"
	FieldChart = "Counts & Seasonality"
)

// HistoricalStatus is the state status
// of species believed to have occurred only historically.
// On the published list these species go at the end,
// regardless of their taxonomic order.
const HistoricalStatus = "(4)"

// A Row is a single checklist entry,
// keyed by column name.
type Row map[string]string

// LookupName returns the name used to search the taxonomy:
// the "Sort as" override if the row has one,
// or the common name of the row.
func (r Row) LookupName() string {
	if v := strings.TrimSpace(r[FieldSortAs]); v != "" {
		return v
	}
	return strings.TrimSpace(r[FieldComName])
}

// TaxonOrder returns the taxonomic sort key assigned to the row.
func (r Row) TaxonOrder() float64 {
	v, _ := strconv.ParseFloat(r[FieldTaxonOrder], 64)
	return v
}

// Subspecies reports whether the row was flagged as a subspecies.
func (r Row) Subspecies() bool {
	v, _ := strconv.ParseBool(r[FieldSubspecies])
	return v
}

// Historical reports whether the row belongs
// to the historically occurring section of the list.
func (r Row) Historical() bool {
	return r[FieldStateStatus] == HistoricalStatus
}

// FilterOfInterest removes taxonomy entries
// that can not appear on a state list:
// hybrids and domestic birds.
func FilterOfInterest(taxa []ebird.Taxon) []ebird.Taxon {
	of := make([]ebird.Taxon, 0, len(taxa))
	for _, t := range taxa {
		if t.Category == ebird.Hybrid || t.Category == ebird.Domestic {
			continue
		}
		of = append(of, t)
	}
	return of
}

// BaseName returns the leading part of a common name
// made only of letters,
// whitespace,
// and hyphens,
// that is,
// the name without any parenthetical subspecies qualifier.
func BaseName(name string) string {
	end := len(name)
	for i, r := range name {
		if unicode.IsLetter(r) || unicode.IsSpace(r) || r == '-' {
			continue
		}
		end = i
		break
	}
	return strings.TrimRightFunc(name[:end], unicode.IsSpace)
}

// canon returns the canonical form of a common name
// used for comparisons.
func canon(name string) string {
	return norm.NFKC.String(strings.Join(strings.Fields(name), " "))
}

// Match searches the taxonomy for the taxon of a common name.
// It first looks for a taxon with exactly the given name;
// if none is found,
// it looks for a taxon whose name starts with the base name,
// so subspecies in parenthetical notation
// resolve to their parent species.
// It returns the matched taxon,
// or nil,
// and whether the match was approximate
// (made on the base name instead of the full name).
func Match(lookup string, taxa []ebird.Taxon) (*ebird.Taxon, bool) {
	name := canon(lookup)
	for i, t := range taxa {
		if canon(t.ComName) == name {
			return &taxa[i], false
		}
	}

	base := BaseName(name)
	for i, t := range taxa {
		if strings.HasPrefix(canon(t.ComName), base) {
			return &taxa[i], true
		}
	}
	return nil, true
}

// copiedFields are the taxonomy fields
// merged into a matched row.
var copiedFields = []struct {
	field string
	value func(t *ebird.Taxon) string
}{
	{FieldSciName, func(t *ebird.Taxon) string { return t.SciName }},
	{FieldSpeciesCode, func(t *ebird.Taxon) string { return t.SpeciesCode }},
	{FieldOrder, func(t *ebird.Taxon) string { return t.Order }},
	{FieldFamilyComName, func(t *ebird.Taxon) string { return t.FamilyComName }},
}

// Update reconciles checklist rows against the eBird taxonomy.
//
// Each row is resolved by its lookup name
// to a taxon of interest,
// and the taxonomic fields of the match are copied into the row.
// Rows without any match are reported and dropped.
//
// Subspecies that are only distinguished on the state list
// are stacked under their parent species:
// each consecutive one takes the taxonOrder of the parent
// plus a growing 0.01 offset.
// The offset restarts after any plain species match.
// Subspecies with their own taxonomy entry
// keep the taxonOrder of that entry.
//
// The returned rows are sorted for publication:
// historically occurring species at the end,
// and by taxonOrder everywhere else.
func Update(rows []Row, taxa []ebird.Taxon) []Row {
	taxa = FilterOfInterest(taxa)

	updated := make([]Row, 0, len(rows))
	var offset float64
	for _, r := range rows {
		lookup := r.LookupName()
		tax, approx := Match(lookup, taxa)
		if tax == nil {
			slog.Error("no match found", "comName", lookup, "baseName", BaseName(lookup))
			continue
		}
		if approx {
			slog.Warn("partial match found", "comName", lookup, "baseName", BaseName(lookup), "matched", tax.ComName)
		}

		for _, cp := range copiedFields {
			r[cp.field] = cp.value(tax)
		}

		order := tax.TaxonOrder
		sub := false
		if approx || strings.ContainsRune(lookup, '(') {
			// A subspecies distinguished only on the state list:
			// stack it under the matched taxon.
			offset += 0.01
			order += offset
			sub = true
		} else {
			offset = 0
			sub = tax.Category == ebird.ISSF
		}
		r[FieldTaxonOrder] = strconv.FormatFloat(order, 'g', -1, 64)
		r[FieldSubspecies] = strconv.FormatBool(sub)
		updated = append(updated, r)
	}

	slices.SortStableFunc(updated, func(a, b Row) int {
		if a.Historical() != b.Historical() {
			if a.Historical() {
				return 1
			}
			return -1
		}
		return cmp.Compare(a.TaxonOrder(), b.TaxonOrder())
	})
	return updated
}
