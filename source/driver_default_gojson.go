// Package source makes go-json the default JSON driver when imported for its
// side effect:
//
//	import _ "github.com/reoring/clangast/source"
package source

import "github.com/reoring/clangast"

// init lives in its own package to keep the root free of driver choices.
func init() { clangast.SetJSONDriver(clangast.GoJSONDriver()) }
