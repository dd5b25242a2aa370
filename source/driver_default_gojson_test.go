package source_test

import (
	"strings"
	"testing"

	"github.com/reoring/clangast"
	_ "github.com/reoring/clangast/source"
)

func TestImportSelectsGoJSON(t *testing.T) {
	if got := clangast.CurrentJSONDriver().Name(); got != "gojson" {
		t.Fatalf("want gojson driver, got %s", got)
	}
	s := clangast.MustRecordOf[struct{ Name string }]()
	root, err := clangast.DecodeBytes(s, []byte(`{"kind":"VarDecl","name":"x"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root.Kind.Name != "x" {
		t.Fatalf("want name x, got %q", root.Kind.Name)
	}
}

func TestUseDefaultJSONDriverRestoresJSONIter(t *testing.T) {
	t.Cleanup(func() { clangast.SetJSONDriver(clangast.GoJSONDriver()) })
	clangast.UseDefaultJSONDriver()
	if got := clangast.CurrentJSONDriver().Name(); got != "jsoniter" {
		t.Fatalf("want jsoniter driver, got %s", got)
	}
	s := clangast.MustRecordOf[struct{ Name string }]()
	root, err := s.Decode(clangast.JSONReader(strings.NewReader(`{"kind":"VarDecl","name":"y"}`)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root.Kind.Name != "y" {
		t.Fatalf("want name y, got %q", root.Kind.Name)
	}
	if loc := clangast.JSONReader(strings.NewReader(`{}`)).Location(); loc != -1 {
		t.Fatalf("jsoniter reports no offsets, got %d", loc)
	}
}
