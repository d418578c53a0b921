package fixtures

import _ "embed"

// Demo is a small data set with one brand per interesting budget state.
//
//go:embed demo.yaml
var Demo []byte
