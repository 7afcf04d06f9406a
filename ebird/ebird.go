// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package ebird implements an interface
// for the eBird API <https://api.ebird.org>.
package ebird

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Timeout is the timeout of the http request.
var Timeout = 20 * time.Second

// APIHead is the base URL of the eBird API.
var APIHead = "https://api.ebird.org/v2/"

// Taxonomy categories used by the eBird taxonomy.
const (
	Species  = "species"
	ISSF     = "issf" // identifiable subspecific form
	Hybrid   = "hybrid"
	Domestic = "domestic"
	Slash    = "slash"
	Spuh     = "spuh"
	Form     = "form"
)

// A Taxon stores an entry of the eBird taxonomy.
type Taxon struct {
	SciName       string   `json:"sciName"`
	ComName       string   `json:"comName"`
	SpeciesCode   string   `json:"speciesCode"`
	Category      string   `json:"category"`
	TaxonOrder    float64  `json:"taxonOrder"`
	BandingCodes  []string `json:"bandingCodes,omitempty"`
	ComNameCodes  []string `json:"comNameCodes,omitempty"`
	SciNameCodes  []string `json:"sciNameCodes,omitempty"`
	Order         string   `json:"order"`
	FamilyCode    string   `json:"familyCode,omitempty"`
	FamilyComName string   `json:"familyComName"`
	FamilySciName string   `json:"familySciName,omitempty"`
}

// A Client makes authenticated requests to the eBird API.
type Client struct {
	key  string
	http *http.Client
}

// NewClient returns a client that authenticates with the given API key.
func NewClient(key string) *Client {
	return &Client{
		key:  key,
		http: &http.Client{Timeout: Timeout},
	}
}

// Taxonomy retrieves the full eBird taxonomy.
//
// It requires an internet connection.
func (c *Client) Taxonomy() ([]Taxon, error) {
	req, err := http.NewRequest(http.MethodGet, APIHead+"ref/taxonomy/ebird?fmt=json", nil)
	if err != nil {
		return nil, fmt.Errorf("ebird: taxonomy: %v", err)
	}
	req.Header.Set("X-eBirdApiToken", c.key)

	ans, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ebird: taxonomy: %v", err)
	}
	defer ans.Body.Close()

	if ans.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ebird: taxonomy: unexpected answer: %s", ans.Status)
	}

	var taxa []Taxon
	d := json.NewDecoder(ans.Body)
	if err := d.Decode(&taxa); err != nil {
		return nil, fmt.Errorf("ebird: taxonomy: %v", err)
	}
	return taxa, nil
}
