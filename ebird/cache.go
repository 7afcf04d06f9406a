// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package ebird

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// A TaxonomyProvider supplies the full eBird taxonomy.
type TaxonomyProvider interface {
	Taxonomy() ([]Taxon, error)
}

// A TaxonomyCache is a file-backed taxonomy provider.
// If the file at Path exists,
// the taxonomy is read from it;
// otherwise the taxonomy is retrieved from Source
// and stored at Path for later runs.
type TaxonomyCache struct {
	Path   string
	Source TaxonomyProvider
}

// Taxonomy returns the cached taxonomy,
// populating the cache file on the first miss.
func (tc *TaxonomyCache) Taxonomy() ([]Taxon, error) {
	data, err := os.ReadFile(tc.Path)
	if err == nil {
		var taxa []Taxon
		if err := json.Unmarshal(data, &taxa); err != nil {
			return nil, fmt.Errorf("ebird: cache %q: %v", tc.Path, err)
		}
		return taxa, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("ebird: cache %q: %v", tc.Path, err)
	}

	taxa, err := tc.Source.Taxonomy()
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(tc.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ebird: cache %q: %v", tc.Path, err)
		}
	}
	data, err = json.MarshalIndent(taxa, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("ebird: cache %q: %v", tc.Path, err)
	}
	if err := os.WriteFile(tc.Path, data, 0o644); err != nil {
		return nil, fmt.Errorf("ebird: cache %q: %v", tc.Path, err)
	}
	return taxa, nil
}
