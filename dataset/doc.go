// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package dataset loads the static list of names voted on.

# Sources

	names, err := dataset.Default()               // embedded all_names.json
	names, err := dataset.LoadFile("names.yaml")  // .json, .yaml, .yml

# Schema

Every dataset is validated against the embedded schema.json:

	[{"name": "Ann", "gender": "Girl", "year": 2020}, ...]

  - name: non-empty string
  - gender: "Girl" or "Boy"
  - year: integer

Violations are reported together in a *ValidationError.
*/
package dataset
