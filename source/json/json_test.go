package json_test

import (
	"testing"

	eng "github.com/reoring/clangast/internal/engine"
	jsonsrc "github.com/reoring/clangast/source/json"
)

func TestSource_KeysAndOffsets(t *testing.T) {
	src := jsonsrc.NewBytes([]byte(`{"key":"value","n":3}`))
	var toks []eng.Token
	for {
		tok, err := src.NextToken()
		if err != nil {
			break
		}
		toks = append(toks, tok)
	}
	if len(toks) != 6 {
		t.Fatalf("want 6 tokens, got %d", len(toks))
	}
	if toks[1].Kind != eng.KindKey || toks[1].String != "key" || toks[2].Kind != eng.KindString || toks[2].String != "value" {
		t.Fatalf("unexpected tokens %+v", toks[:3])
	}
	if toks[4].Number != "3" || toks[4].Offset != 20 {
		t.Fatalf("unexpected number token %+v", toks[4])
	}
}
