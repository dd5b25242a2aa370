package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

const dump = `{"id":"0x1","kind":"TranslationUnitDecl","loc":{},"range":{"begin":{},"end":{}},"inner":[
  {"id":"0x2","kind":"TypedefDecl","loc":{},"range":{"begin":{},"end":{}},"isImplicit":true,"name":"__int128_t"},
  {"id":"0x3","kind":"FunctionDecl","loc":{"offset":4,"file":"a.c","line":1,"col":5,"tokLen":4},
   "range":{"begin":{"offset":0,"col":1,"tokLen":3},"end":{"offset":20,"line":3,"col":1,"tokLen":1}},"name":"main",
   "inner":[{"id":"0x4","kind":"CompoundStmt","range":{"begin":{"offset":11,"line":1,"col":12,"tokLen":1},"end":{"offset":20,"line":3,"col":1,"tokLen":1}}}]},
  {"id":"0x5","kind":"VarDecl","loc":{"offset":30,"file":"b.h","line":2,"col":5,"tokLen":1,"includedFrom":{"file":"a.c"}},"name":"g"}
]}`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestKindsCommand(t *testing.T) {
	in := writeTemp(t, "ast.json", dump)
	var out bytes.Buffer
	if err := runCmd("kinds", []string{"-format", "json", in}, kindsCmd, &out); err != nil {
		t.Fatalf("kinds: %v", err)
	}
	var got []countEntry
	if err := gojson.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	want := []countEntry{
		{Name: "CompoundStmt", Count: 1},
		{Name: "FunctionDecl", Count: 1},
		{Name: "TranslationUnitDecl", Count: 1},
		{Name: "TypedefDecl", Count: 1},
		{Name: "VarDecl", Count: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestFilesCommand(t *testing.T) {
	in := writeTemp(t, "ast.json", dump)
	for _, driver := range []string{"jsoniter", "json", "gojson"} {
		var out bytes.Buffer
		if err := runCmd("files", []string{"-driver", driver, in}, filesCmd, &out); err != nil {
			t.Fatalf("%s: files: %v", driver, err)
		}
		var got []countEntry
		if err := yaml.Unmarshal(out.Bytes(), &got); err != nil {
			t.Fatalf("output is not YAML: %v\n%s", err, out.String())
		}
		// The compound statement inherits a.c from the function before it.
		want := []countEntry{{Name: "a.c", Count: 2}, {Name: "b.h", Count: 1}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("%s: files mismatch (-want +got):\n%s", driver, diff)
		}
	}
}

func TestDeclsCommandWithConfig(t *testing.T) {
	in := writeTemp(t, "ast.json", dump)
	cfg := writeTemp(t, "clangast.yaml", "driver: json\nformat: json\n")
	var out bytes.Buffer
	if err := runCmd("decls", []string{"-config", cfg, in}, declsCmd, &out); err != nil {
		t.Fatalf("decls: %v", err)
	}
	var got []declEntry
	if err := gojson.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	want := []declEntry{
		{ID: "0x3", Kind: "FunctionDecl", Name: "main", File: "a.c", Line: 1, Col: 5},
		{ID: "0x5", Kind: "VarDecl", Name: "g", File: "b.h", Line: 2, Col: 5},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("decls mismatch (-want +got):\n%s", diff)
	}
}

func TestRunCmd_Errors(t *testing.T) {
	in := writeTemp(t, "ast.json", `{"inner":[]}`)
	var out bytes.Buffer
	err := runCmd("kinds", []string{in}, kindsCmd, &out)
	if err == nil || !strings.Contains(err.Error(), "missing_category") {
		t.Fatalf("want missing_category, got %v", err)
	}
	if err := runCmd("kinds", []string{"-driver", "nope", in}, kindsCmd, &out); err == nil {
		t.Fatalf("expected unknown driver error")
	}
	good := writeTemp(t, "ok.json", dump)
	if err := runCmd("kinds", []string{"-format", "xml", good}, kindsCmd, &out); err == nil {
		t.Fatalf("expected unknown format error")
	}
	if err := runCmd("kinds", []string{"-max-depth", "1", good}, kindsCmd, &out); err == nil || !strings.Contains(err.Error(), "too_deep") {
		t.Fatalf("want too_deep, got %v", err)
	}
}
