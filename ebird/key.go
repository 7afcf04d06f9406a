// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package ebird

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// APIKeyEnv is the environment variable that holds the eBird API key.
// The value can also be set in a .env file
// at the working directory.
const APIKeyEnv = "EBIRD_API_KEY"

// APIKey retrieves the eBird API key from the environment.
// An unset key,
// or the "0" placeholder used on continuous integration runs,
// is an error.
func APIKey() (string, error) {
	_ = godotenv.Load()

	key := os.Getenv(APIKeyEnv)
	if key == "" || key == "0" {
		return "", fmt.Errorf("ebird: an API key must be specified with the %s environment variable", APIKeyEnv)
	}
	return key, nil
}
