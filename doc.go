// Package clangast decodes the JSON AST that clang prints with
// -Xclang -ast-dump=json into a typed tree of Node values.
//
// - Only the fields the caller's schema declares are decoded; everything else is skipped by the reader without building a value
// - Schemas are either a union dispatching on "kind" (UnionOf) or one struct shape for every node (RecordOf)
// - Source locations fill in omitted fields from the previous location in the document, as clang expects
// - File names are interned per decode call
// - Errors are Issues (JSON Pointer, code, message) with sentinels for errors.Is
//
// Design policy:
// - Keep only public APIs in the root package; put reader implementations under source/ and internal/.
// - The CLI lives under cmd/clangast.
//
// Typical usage:
//
//	type Clang interface{}
//	type NamespaceDecl struct{ Name string }
//	type Other struct{ Kind clangast.Kind }
//
//	s := clangast.UnionOf[Clang]().Variant(NamespaceDecl{}).Variant(Other{}).MustBuild()
//	root, err := clangast.DecodeReader(s, f)
package clangast
