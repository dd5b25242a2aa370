//go:build gojson

package clangast_test

// Run the benchmarks against go-json with: go test -tags gojson ./benchmarks
import _ "github.com/reoring/clangast/source"
