package clangast_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/clangast"
)

type EnumDecl struct {
	Name string
}

type enumAlias struct {
	Name string
}

func TestUnionOf_Variants(t *testing.T) {
	s, err := clangast.UnionOf[Clang]().
		Variant(&EnumDecl{}).
		VariantAs("EnumConstantDecl", enumAlias{}).
		VariantAs("MyPluginDecl", enumAlias{}).
		Variant(Other{}).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"EnumDecl", "EnumConstantDecl", "MyPluginDecl", "Other"}, s.Variants()); diff != "" {
		t.Fatalf("variants mismatch (-want +got):\n%s", diff)
	}
	doc := `{"kind":"EnumDecl","name":"E","inner":[{"kind":"EnumConstantDecl","name":"A"},{"kind":"MyPluginDecl","name":"P"}]}`
	forEachDriver(t, func(t *testing.T, d clangast.JSONDriver) {
		root, err := decode(s, d, doc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e, ok := root.Kind.(*EnumDecl); !ok || e.Name != "E" {
			t.Fatalf("unexpected root %#v", root.Kind)
		}
		if a, ok := root.Inner[0].Kind.(enumAlias); !ok || a.Name != "A" {
			t.Fatalf("unexpected child %#v", root.Inner[0].Kind)
		}
		if p, ok := root.Inner[1].Kind.(enumAlias); !ok || p.Name != "P" {
			t.Fatalf("unexpected child %#v", root.Inner[1].Kind)
		}
	})
}

func TestUnionOf_BuildErrors(t *testing.T) {
	_, err := clangast.UnionOf[Clang]().Variant(EnumDecl{}).Build()
	if !errors.Is(err, clangast.ErrMissingCategory) {
		t.Fatalf("want ErrMissingCategory, got %v", err)
	}
	issueOf(t, err, clangast.CodeMissingCategory)

	cases := map[string]*clangast.UnionBuilder[Clang]{
		"two fallbacks": clangast.UnionOf[Clang]().Variant(Other{}).Variant(Unknown{}),
		"duplicate":     clangast.UnionOf[Clang]().Variant(EnumDecl{}).Variant(&EnumDecl{}).Variant(Other{}),
		"not a struct":  clangast.UnionOf[Clang]().VariantAs("IntegerLiteral", 5).Variant(Other{}),
		"nil variant":   clangast.UnionOf[Clang]().Variant(nil).Variant(Other{}),
		"bad rest":      clangast.UnionOf[Clang]().Variant(badRest{}).Variant(Other{}),
		"bad field":     clangast.UnionOf[Clang]().Variant(badField{}).Variant(Other{}),
	}
	for name, b := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := b.Build()
			issueOf(t, err, clangast.CodeInvalidSchema)
		})
	}
}

type badRest struct {
	Rest map[string]string `clang:",rest"`
}

type badField struct {
	Ch chan int
}

func TestUnionOf_MustBuildPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	clangast.UnionOf[Clang]().Variant(EnumDecl{}).MustBuild()
}

type treeNode struct {
	Name string
	Next *treeNode
	List []treeNode
}

func TestRecordOf(t *testing.T) {
	if _, err := clangast.RecordOf[int](); err == nil {
		t.Fatalf("expected error for non-struct record")
	}
	s, err := clangast.RecordOf[*treeNode]()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"treeNode"}, s.Variants()); diff != "" {
		t.Fatalf("variants mismatch (-want +got):\n%s", diff)
	}
	forEachDriver(t, func(t *testing.T, d clangast.JSONDriver) {
		root, err := decode(s, d, `{"kind":"X","name":"a","next":{"name":"b","next":{"name":"c"}},"list":[{"name":"d"}]}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := root.Kind
		if got.Name != "a" || got.Next.Name != "b" || got.Next.Next.Name != "c" || got.Next.Next.Next != nil || got.List[0].Name != "d" {
			t.Fatalf("unexpected %#v", got)
		}
	})
}
