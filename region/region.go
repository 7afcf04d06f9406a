// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package region defines the state or region
// covered by a checklist,
// and the eBird site links used on the published documents.
package region

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Settings describe the region covered by a state list.
type Settings struct {
	// Code is an eBird region code,
	// for example "US-VA".
	Code string `toml:"code"`

	// Title is the title of the published documents.
	Title string `toml:"title"`

	// Bounding box of the distribution maps,
	// in decimal degrees.
	MinX float64 `toml:"min-x"`
	MinY float64 `toml:"min-y"`
	MaxX float64 `toml:"max-x"`
	MaxY float64 `toml:"max-y"`
}

// Default returns the settings of the Virginia state list.
func Default() Settings {
	return Settings{
		Code:  "US-VA",
		Title: "The Birds of Virginia and its Offshore Waters: The Official List",
		MinX:  -84.70,
		MinY:  36.20,
		MaxX:  -70.95,
		MaxY:  37.22,
	}
}

// Read reads region settings from a TOML file.
// An empty file name returns the default settings.
func Read(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return Settings{}, fmt.Errorf("region: on file %q: %v", path, err)
	}
	return s, nil
}

// SpeciesURL returns the URL of the eBird species account
// of a species in the region.
func (s Settings) SpeciesURL(speciesCode string) string {
	return fmt.Sprintf("https://ebird.org/species/%s/%s", speciesCode, s.Code)
}

// MapURL returns the URL of the eBird spatial distribution map
// of a species in the region.
func (s Settings) MapURL(speciesCode string) string {
	return fmt.Sprintf("http://ebird.org/ebird/map/%s?neg=true&env.minX=%.2f&env.minY=%.2f&env.maxX=%.2f&env.maxY=%.2f&zh=true&gp=true&ev=Z&mr=1-12&bmo=1&emo=12&yr=all&getLocations=states&states=%s", speciesCode, s.MinX, s.MinY, s.MaxX, s.MaxY, s.Code)
}

// ChartURL returns the URL of the eBird counts and seasonality chart
// of a species in the region.
func (s Settings) ChartURL(speciesCode string) string {
	return fmt.Sprintf("http://ebird.org/ebird/GuideMe?cmd=decisionPage&speciesCodes=%s&getLocations=states&states=%s&bYear=1900&eYear=Cur&bMonth=1&eMonth=12&reportType=species&parentState=%s", speciesCode, s.Code, s.Code)
}
