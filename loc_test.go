package clangast_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/clangast"
)

type locRecord struct {
	Name  string
	Loc   clangast.SourceLocation
	Range clangast.SourceRange
}

var locSchema = clangast.MustRecordOf[locRecord]()

const siblingDoc = `{"kind":"TranslationUnitDecl","inner":[
  {"kind":"VarDecl","name":"x","loc":{"offset":10,"file":"a.h","line":3,"col":5,"tokLen":1,"includedFrom":{"file":"main.c"}}},
  {"kind":"FunctionDecl","name":"f","inner":[
    {"kind":"ParmVarDecl","name":"p","loc":{"offset":15,"col":9,"tokLen":1}}
  ]},
  {"kind":"VarDecl","name":"y","loc":{"offset":20,"col":7,"tokLen":1}},
  {"kind":"VarDecl","name":"z","loc":{"offset":30,"line":9,"col":1,"tokLen":3,"file":"main.c"},
   "range":{"begin":{"offset":28,"col":1,"tokLen":3},"end":{"offset":35,"tokLen":1}}}
]}`

func TestLocation_InheritsAcrossSiblings(t *testing.T) {
	forEachDriver(t, func(t *testing.T, d clangast.JSONDriver) {
		root, err := decode(locSchema, d, siblingDoc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		x := root.Inner[0].Kind.Loc.SpellingLoc
		p := root.Inner[1].Inner[0].Kind.Loc.SpellingLoc
		y := root.Inner[2].Kind.Loc.SpellingLoc
		z := root.Inner[3].Kind

		if x.File.String() != "a.h" || x.IncludedFrom == nil || x.IncludedFrom.File.String() != "main.c" {
			t.Fatalf("unexpected x %+v", x)
		}
		want := clangast.BareSourceLocation{Offset: 15, File: x.File, Line: 3, Col: 9, TokLen: 1, IncludedFrom: x.IncludedFrom}
		if diff := cmp.Diff(want, *p, cmpOpts...); diff != "" {
			t.Fatalf("p mismatch (-want +got):\n%s", diff)
		}
		want = clangast.BareSourceLocation{Offset: 20, File: x.File, Line: 3, Col: 7, TokLen: 1, IncludedFrom: x.IncludedFrom}
		if diff := cmp.Diff(want, *y, cmpOpts...); diff != "" {
			t.Fatalf("y mismatch (-want +got):\n%s", diff)
		}
		if !y.File.Same(x.File) {
			t.Fatalf("inherited file should keep the interned handle")
		}

		zl := z.Loc.SpellingLoc
		if zl.File.String() != "main.c" || zl.Line != 9 || zl.IncludedFrom != nil {
			t.Fatalf("a new file starts a new include chain, got %+v", zl)
		}
		if !zl.File.Same(x.IncludedFrom.File) {
			t.Fatalf("main.c from includedFrom and from file should share a handle")
		}
		if x.File.Same(zl.File) {
			t.Fatalf("different text must not share a handle")
		}
		begin := clangast.BareSourceLocation{Offset: 28, File: zl.File, Line: 9, Col: 1, TokLen: 3}
		end := clangast.BareSourceLocation{Offset: 35, File: zl.File, Line: 9, Col: 1, TokLen: 1}
		if diff := cmp.Diff(begin, *z.Range.Begin.SpellingLoc, cmpOpts...); diff != "" {
			t.Fatalf("begin mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(end, *z.Range.End.ExpansionLoc, cmpOpts...); diff != "" {
			t.Fatalf("end mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestLocation_HandlesNotSharedAcrossDecodes(t *testing.T) {
	forEachDriver(t, func(t *testing.T, d clangast.JSONDriver) {
		a, err := decode(locSchema, d, siblingDoc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b, err := decode(locSchema, d, siblingDoc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		fa, fb := a.Inner[0].Kind.Loc.SpellingLoc.File, b.Inner[0].Kind.Loc.SpellingLoc.File
		if fa.String() != fb.String() || fa.Same(fb) {
			t.Fatalf("want equal text in distinct handles, got %q %q same=%v", fa, fb, fa.Same(fb))
		}
	})
}

func TestLocation_PlainFormSharesPosition(t *testing.T) {
	forEachDriver(t, func(t *testing.T, d clangast.JSONDriver) {
		root, err := decode(locSchema, d, `{"kind":"VarDecl","loc":{"offset":1,"file":"a.c","line":1,"col":1,"tokLen":1}}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		loc := root.Kind.Loc
		if loc.SpellingLoc == nil || loc.SpellingLoc != loc.ExpansionLoc {
			t.Fatalf("want one shared position, got %+v", loc)
		}
	})
}

func TestLocation_MacroForm(t *testing.T) {
	doc := `{"kind":"TranslationUnitDecl","inner":[
  {"kind":"VarDecl","name":"m","loc":{
    "spellingLoc":{"offset":5,"file":"m.h","line":1,"col":9,"tokLen":3,"presumedFile":"m2.h"},
    "expansionLoc":{"offset":50,"file":"main.c","line":4,"col":2,"tokLen":5,"isMacroArgExpansion":true}}},
  {"kind":"VarDecl","name":"n","loc":{"offset":60,"col":3,"tokLen":1}}
]}`
	forEachDriver(t, func(t *testing.T, d clangast.JSONDriver) {
		root, err := decode(locSchema, d, doc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		m := root.Inner[0].Kind.Loc
		if m.SpellingLoc.File.String() != "m.h" || m.SpellingLoc.IsMacroArgExpansion {
			t.Fatalf("unexpected spelling %+v", m.SpellingLoc)
		}
		if m.ExpansionLoc.File.String() != "main.c" || !m.ExpansionLoc.IsMacroArgExpansion {
			t.Fatalf("unexpected expansion %+v", m.ExpansionLoc)
		}
		n := root.Inner[1].Kind.Loc.SpellingLoc
		want := clangast.BareSourceLocation{Offset: 60, File: m.ExpansionLoc.File, Line: 4, Col: 3, TokLen: 1}
		if diff := cmp.Diff(want, *n, cmpOpts...); diff != "" {
			t.Fatalf("n mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestLocation_EmptyLeavesCursor(t *testing.T) {
	doc := `{"kind":"TranslationUnitDecl","inner":[
  {"kind":"VarDecl","loc":{"offset":1,"file":"a.c","line":2,"col":3,"tokLen":4}},
  {"kind":"ImplicitCastExpr","loc":{},"range":{"begin":{},"end":{}}},
  {"kind":"VarDecl","loc":{"offset":9}}
]}`
	forEachDriver(t, func(t *testing.T, d clangast.JSONDriver) {
		root, err := decode(locSchema, d, doc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		empty := root.Inner[1].Kind
		if empty.Loc.SpellingLoc != nil || empty.Loc.ExpansionLoc != nil || empty.Range.Begin.SpellingLoc != nil {
			t.Fatalf("want nil positions, got %+v", empty)
		}
		last := root.Inner[2].Kind.Loc.SpellingLoc
		if last.Offset != 9 || last.Line != 2 || last.Col != 3 || last.TokLen != 4 || last.File.String() != "a.c" {
			t.Fatalf("unexpected %+v", last)
		}
	})
}

func TestLocation_IncludedFromChain(t *testing.T) {
	doc := `{"kind":"TranslationUnitDecl","inner":[
  {"kind":"VarDecl","loc":{"offset":1,"file":"c.h","line":1,"col":1,"tokLen":1,
    "includedFrom":{"file":"b.h","includedFrom":{"includedFrom":{"file":"main.c"}}}}},
  {"kind":"VarDecl","loc":{"offset":2,"includedFrom":{"file":"d.h"}}}
]}`
	forEachDriver(t, func(t *testing.T, d clangast.JSONDriver) {
		root, err := decode(locSchema, d, doc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		inc := root.Inner[0].Kind.Loc.SpellingLoc.IncludedFrom
		var chain []string
		for ; inc != nil; inc = inc.IncludedFrom {
			chain = append(chain, inc.File.String())
		}
		if diff := cmp.Diff([]string{"b.h", "b.h", "main.c"}, chain); diff != "" {
			t.Fatalf("chain mismatch (-want +got):\n%s", diff)
		}
		second := root.Inner[1].Kind.Loc.SpellingLoc
		if second.File.String() != "c.h" || second.IncludedFrom.File.String() != "d.h" {
			t.Fatalf("unexpected %+v", second)
		}
	})
}

func TestLocation_Malformed(t *testing.T) {
	cases := []struct {
		name, doc, path string
	}{
		{"string line", `{"kind":"VarDecl","loc":{"line":"x"}}`, "/loc/line"},
		{"negative offset", `{"kind":"VarDecl","loc":{"offset":-1}}`, "/loc/offset"},
		{"too large", `{"kind":"VarDecl","loc":{"col":4294967296}}`, "/loc/col"},
		{"numeric file", `{"kind":"VarDecl","loc":{"file":1}}`, "/loc/file"},
		{"not an object", `{"kind":"VarDecl","loc":5}`, "/loc"},
		{"range end", `{"kind":"VarDecl","range":{"begin":{},"end":{"spellingLoc":{"tokLen":true}}}}`, "/range/end/spellingLoc/tokLen"},
		{"included from", `{"kind":"VarDecl","loc":{"includedFrom":{"file":[]}}}`, "/loc/includedFrom/file"},
		{"macro flag", `{"kind":"VarDecl","loc":{"isMacroArgExpansion":"yes"}}`, "/loc/isMacroArgExpansion"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			forEachDriver(t, func(t *testing.T, d clangast.JSONDriver) {
				_, err := decode(locSchema, d, tc.doc)
				it := issueOf(t, err, clangast.CodeMalformedLocation)
				if it.Path != tc.path {
					t.Fatalf("want path %s, got %s", tc.path, it.Path)
				}
				if !errors.Is(err, clangast.ErrMalformedLocation) {
					t.Fatalf("errors.Is(ErrMalformedLocation) = false")
				}
			})
		})
	}
}

type bareRecord struct {
	Loc   *clangast.BareSourceLocation
	Begin clangast.BareSourceLocation `clang:"begin"`
}

func TestLocation_BareFields(t *testing.T) {
	s := clangast.MustRecordOf[bareRecord]()
	forEachDriver(t, func(t *testing.T, d clangast.JSONDriver) {
		root, err := decode(s, d, `{"kind":"X","loc":{"offset":4,"file":"q.c","line":2,"col":2,"tokLen":1},"begin":{"col":8}}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if root.Kind.Loc == nil || root.Kind.Loc.File.String() != "q.c" {
			t.Fatalf("unexpected loc %+v", root.Kind.Loc)
		}
		b := root.Kind.Begin
		if b.Col != 8 || b.Line != 2 || b.Offset != 4 || !b.File.Same(root.Kind.Loc.File) {
			t.Fatalf("unexpected begin %+v", b)
		}
	})
}
