// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package checklist_test

import (
	"bytes"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/statelist/checklist"
	"github.com/js-arias/statelist/ebird"
)

var testTaxa = []ebird.Taxon{
	{
		ComName:       "Canada Goose",
		SciName:       "Branta canadensis",
		SpeciesCode:   "cangoo",
		Category:      "species",
		TaxonOrder:    50,
		Order:         "Anseriformes",
		FamilyComName: "Ducks, Geese, and Waterfowl",
	},
	{
		ComName:       "Mallard",
		SciName:       "Anas platyrhynchos",
		SpeciesCode:   "mallar3",
		Category:      "species",
		TaxonOrder:    60,
		Order:         "Anseriformes",
		FamilyComName: "Ducks, Geese, and Waterfowl",
	},
	{
		ComName:     "Mallard x American Black Duck (hybrid)",
		SciName:     "Anas platyrhynchos x rubripes",
		SpeciesCode: "x00004",
		Category:    "hybrid",
		TaxonOrder:  61,
	},
	{
		ComName:     "Mallard (Domestic type)",
		SciName:     "Anas platyrhynchos (Domestic type)",
		SpeciesCode: "mallar2",
		Category:    "domestic",
		TaxonOrder:  62,
	},
	{
		ComName:       "American Robin",
		SciName:       "Turdus migratorius",
		SpeciesCode:   "amerob",
		Category:      "species",
		TaxonOrder:    100,
		Order:         "Passeriformes",
		FamilyComName: "Thrushes and Allies",
	},
	{
		ComName:       "Yellow-rumped Warbler",
		SciName:       "Setophaga coronata",
		SpeciesCode:   "yerwar",
		Category:      "species",
		TaxonOrder:    200,
		Order:         "Passeriformes",
		FamilyComName: "New World Warblers",
	},
	{
		ComName:       "Palm Warbler (Yellow)",
		SciName:       "Setophaga palmarum hypochrysea",
		SpeciesCode:   "palwar3",
		Category:      "issf",
		TaxonOrder:    210,
		Order:         "Passeriformes",
		FamilyComName: "New World Warblers",
	},
	{
		ComName:       "Fox Sparrow (Red)",
		SciName:       "Passerella iliaca iliaca/zaboria",
		SpeciesCode:   "foxsp1",
		Category:      "issf",
		TaxonOrder:    300,
		Order:         "Passeriformes",
		FamilyComName: "New World Sparrows",
	},
}

func TestFilterOfInterest(t *testing.T) {
	of := checklist.FilterOfInterest(testTaxa)
	for _, tax := range of {
		if tax.Category == ebird.Hybrid || tax.Category == ebird.Domestic {
			t.Errorf("filter: category %q in filtered taxonomy", tax.Category)
		}
	}
	if len(of) != len(testTaxa)-2 {
		t.Errorf("filter: got %d taxa, want %d", len(of), len(testTaxa)-2)
	}

	// the filter is idempotent
	again := checklist.FilterOfInterest(of)
	if !reflect.DeepEqual(again, of) {
		t.Errorf("filter: not idempotent")
	}

	if e := checklist.FilterOfInterest(nil); len(e) != 0 {
		t.Errorf("filter: empty input: got %d taxa", len(e))
	}
}

func TestBaseName(t *testing.T) {
	tests := map[string]struct {
		name string
		want string
	}{
		"plain":        {name: "American Robin", want: "American Robin"},
		"parenthesis":  {name: "Yellow-rumped Warbler (Myrtle)", want: "Yellow-rumped Warbler"},
		"hyphen kept":  {name: "Black-capped Chickadee", want: "Black-capped Chickadee"},
		"apostrophe":   {name: "Bewick's Wren", want: "Bewick"},
		"empty":        {name: "", want: ""},
		"only qualify": {name: "(hybrid)", want: ""},
	}

	for name, test := range tests {
		if got := checklist.BaseName(test.name); got != test.want {
			t.Errorf("%s: base name of %q: got %q, want %q", name, test.name, got, test.want)
		}
	}
}

func TestMatchExact(t *testing.T) {
	of := checklist.FilterOfInterest(testTaxa)
	for _, want := range of {
		got, approx := checklist.Match(want.ComName, of)
		if got == nil {
			t.Errorf("match: %q: no match found", want.ComName)
			continue
		}
		if approx {
			t.Errorf("match: %q: unexpected approximate match", want.ComName)
		}
		if got.SpeciesCode != want.SpeciesCode {
			t.Errorf("match: %q: got %q, want %q", want.ComName, got.SpeciesCode, want.SpeciesCode)
		}
	}
}

func TestMatchApproximate(t *testing.T) {
	got, approx := checklist.Match("Yellow-rumped Warbler (Myrtle)", testTaxa)
	if got == nil {
		t.Fatalf("match: no match found")
	}
	if !approx {
		t.Errorf("match: expecting approximate match")
	}
	if got.ComName != "Yellow-rumped Warbler" {
		t.Errorf("match: got %q, want %q", got.ComName, "Yellow-rumped Warbler")
	}
}

func TestMatchNone(t *testing.T) {
	got, approx := checklist.Match("Nonexistent Bird", testTaxa)
	if got != nil {
		t.Errorf("match: got %q, want no match", got.ComName)
	}
	if !approx {
		t.Errorf("match: a failed match must be reported as approximate")
	}
}

func row(comName, status string) checklist.Row {
	return checklist.Row{
		checklist.FieldComName:     comName,
		checklist.FieldStateStatus: status,
	}
}

func TestUpdateEnrichment(t *testing.T) {
	rows := []checklist.Row{row("American Robin", "Common")}
	got := checklist.Update(rows, testTaxa)
	if len(got) != 1 {
		t.Fatalf("update: got %d rows, want 1", len(got))
	}

	want := checklist.Row{
		checklist.FieldComName:       "American Robin",
		checklist.FieldStateStatus:   "Common",
		checklist.FieldSciName:       "Turdus migratorius",
		checklist.FieldSpeciesCode:   "amerob",
		checklist.FieldOrder:         "Passeriformes",
		checklist.FieldFamilyComName: "Thrushes and Allies",
		checklist.FieldTaxonOrder:    "100",
		checklist.FieldSubspecies:    "false",
	}
	if !reflect.DeepEqual(got[0], want) {
		t.Errorf("update: got %v, want %v", got[0], want)
	}
}

func TestUpdateSubspeciesOffset(t *testing.T) {
	rows := []checklist.Row{
		row("Yellow-rumped Warbler (Myrtle)", ""),
		row("Yellow-rumped Warbler (Audubon's)", ""),
	}
	got := checklist.Update(rows, testTaxa)
	if len(got) != 2 {
		t.Fatalf("update: got %d rows, want 2", len(got))
	}
	if o := got[0].TaxonOrder(); o != 200.01 {
		t.Errorf("update: first subspecies taxonOrder %v, want 200.01", o)
	}
	if o := got[1].TaxonOrder(); o != 200.02 {
		t.Errorf("update: second subspecies taxonOrder %v, want 200.02", o)
	}
	for i, r := range got {
		if !r.Subspecies() {
			t.Errorf("update: row %d: expecting subspecies flag", i)
		}
	}
}

func TestUpdateOffsetReset(t *testing.T) {
	rows := []checklist.Row{
		row("Yellow-rumped Warbler (Myrtle)", ""),
		row("American Robin", ""),
		row("Yellow-rumped Warbler (Audubon's)", ""),
	}
	got := checklist.Update(rows, testTaxa)
	if len(got) != 3 {
		t.Fatalf("update: got %d rows, want 3", len(got))
	}

	// output is sorted by taxonOrder:
	// the robin goes first
	want := []float64{100, 200.01, 200.01}
	for i, r := range got {
		if o := r.TaxonOrder(); o != want[i] {
			t.Errorf("update: row %d: taxonOrder %v, want %v", i, o, want[i])
		}
	}
}

func TestUpdateISSF(t *testing.T) {
	// An exact match on a taxonomy subspecies entry
	// with no parenthetical on the lookup name
	// keeps the order of the entry.
	taxa := []ebird.Taxon{
		{
			ComName:       "Yellow-rumped Warbler",
			SciName:       "Setophaga coronata",
			SpeciesCode:   "yerwar",
			Category:      "issf",
			TaxonOrder:    200,
			Order:         "Passeriformes",
			FamilyComName: "New World Warblers",
		},
	}
	rows := []checklist.Row{row("Yellow-rumped Warbler", "Common")}
	got := checklist.Update(rows, taxa)
	if len(got) != 1 {
		t.Fatalf("update: got %d rows, want 1", len(got))
	}
	if !got[0].Subspecies() {
		t.Errorf("update: expecting subspecies flag on taxonomy subspecies")
	}
	if o := got[0].TaxonOrder(); o != 200 {
		t.Errorf("update: taxonOrder %v, want 200", o)
	}
}

func TestUpdateParenthesisExactMatch(t *testing.T) {
	// Regression:
	// a lookup name with a parenthetical takes the stacking offset
	// even when it matches a taxonomy entry exactly.
	rows := []checklist.Row{row("Palm Warbler (Yellow)", "")}
	got := checklist.Update(rows, testTaxa)
	if len(got) != 1 {
		t.Fatalf("update: got %d rows, want 1", len(got))
	}
	if o := got[0].TaxonOrder(); o != 210.01 {
		t.Errorf("update: taxonOrder %v, want 210.01", o)
	}
	if !got[0].Subspecies() {
		t.Errorf("update: expecting subspecies flag")
	}
}

func TestUpdateSortAs(t *testing.T) {
	rows := []checklist.Row{
		{
			checklist.FieldComName:     "Cackling Goose",
			checklist.FieldSortAs:      "Canada Goose",
			checklist.FieldStateStatus: "Rare",
		},
	}
	got := checklist.Update(rows, testTaxa)
	if len(got) != 1 {
		t.Fatalf("update: got %d rows, want 1", len(got))
	}
	r := got[0]
	if r[checklist.FieldComName] != "Cackling Goose" {
		t.Errorf("update: comName %q, want %q", r[checklist.FieldComName], "Cackling Goose")
	}
	if r[checklist.FieldSpeciesCode] != "cangoo" {
		t.Errorf("update: speciesCode %q, want %q", r[checklist.FieldSpeciesCode], "cangoo")
	}
	if r.TaxonOrder() != 50 {
		t.Errorf("update: taxonOrder %v, want 50", r.TaxonOrder())
	}
	if r.Subspecies() {
		t.Errorf("update: an exact override match is not a subspecies")
	}
}

func TestUpdateUnmatched(t *testing.T) {
	var buf bytes.Buffer
	def := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(def)

	rows := []checklist.Row{
		row("Yellow-rumped Warbler (Myrtle)", ""),
		row("Zzyzx Bird 9", ""),
		row("Yellow-rumped Warbler (Audubon's)", ""),
	}
	got := checklist.Update(rows, testTaxa)
	if len(got) != 2 {
		t.Fatalf("update: got %d rows, want 2", len(got))
	}

	// a dropped row must not touch the offset counter
	if o := got[1].TaxonOrder(); o != 200.02 {
		t.Errorf("update: taxonOrder after dropped row %v, want 200.02", o)
	}

	msg := buf.String()
	if !strings.Contains(msg, "Zzyzx Bird 9") {
		t.Errorf("update: expecting diagnostic with the unmatched name, got %q", msg)
	}
	if !strings.Contains(msg, "level=ERROR") {
		t.Errorf("update: expecting error level diagnostic, got %q", msg)
	}
}

func TestUpdateHistoricalSort(t *testing.T) {
	rows := []checklist.Row{
		row("American Robin", checklist.HistoricalStatus),
		row("Yellow-rumped Warbler", "Common"),
		row("Canada Goose", "Common"),
	}
	got := checklist.Update(rows, testTaxa)
	if len(got) != 3 {
		t.Fatalf("update: got %d rows, want 3", len(got))
	}

	want := []string{"Canada Goose", "Yellow-rumped Warbler", "American Robin"}
	for i, r := range got {
		if r[checklist.FieldComName] != want[i] {
			t.Errorf("update: row %d: %q, want %q", i, r[checklist.FieldComName], want[i])
		}
	}
	if !got[2].Historical() {
		t.Errorf("update: expecting historical row at the end")
	}
}
