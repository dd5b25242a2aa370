package jsoniter_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	eng "github.com/reoring/clangast/internal/engine"
	itersrc "github.com/reoring/clangast/source/jsoniter"
)

func TestReader_SkipAndRead(t *testing.T) {
	for name, r := range map[string]eng.Reader{
		"bytes":  itersrc.NewBytes([]byte(`{"skip":{"deep":[1,{"x":"y"}]},"keep":"v","n":-12.5e1,"b":true,"z":null}`)),
		"reader": itersrc.NewReader(strings.NewReader(`{"skip":{"deep":[1,{"x":"y"}]},"keep":"v","n":-12.5e1,"b":true,"z":null}`)),
	} {
		t.Run(name, func(t *testing.T) {
			got := map[string]any{}
			for {
				key, more, err := r.NextKey()
				if err != nil {
					t.Fatalf("NextKey: %v", err)
				}
				if !more {
					break
				}
				switch key {
				case "skip":
					err = r.Skip()
				case "keep":
					got[key], err = r.ReadString()
				case "n":
					got[key], err = r.ReadNumber()
				case "b":
					got[key], err = r.ReadBool()
				case "z":
					err = r.ReadNull()
					got[key] = nil
				}
				if err != nil {
					t.Fatalf("%s: %v", key, err)
				}
			}
			if got["keep"] != "v" || got["n"] != "-12.5e1" || got["b"] != true || len(got) != 4 {
				t.Fatalf("unexpected %v", got)
			}
			if r.Location() != -1 {
				t.Fatalf("jsoniter cannot report offsets")
			}
		})
	}
}

func TestReader_Mismatch(t *testing.T) {
	r := itersrc.NewBytes([]byte(`[1]`))
	if more, err := r.NextElem(); !more || err != nil {
		t.Fatalf("NextElem: %v %v", more, err)
	}
	_, err := r.ReadString()
	var me *eng.MismatchError
	if !errors.As(err, &me) || me.Got != eng.KindNumber {
		t.Fatalf("want mismatch, got %v", err)
	}
}

func TestReader_EOF(t *testing.T) {
	r := itersrc.NewBytes(nil)
	if _, err := r.Peek(); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("want ErrUnexpectedEOF, got %v", err)
	}
}

func TestReader_EmptyKey(t *testing.T) {
	r := itersrc.NewBytes([]byte(`{"":1,"a":{"":[]},"b":{}}`))
	var keys []string
	for {
		key, more, err := r.NextKey()
		if err != nil {
			t.Fatalf("NextKey: %v", err)
		}
		if !more {
			break
		}
		keys = append(keys, key)
		if err := r.Skip(); err != nil {
			t.Fatalf("Skip %q: %v", key, err)
		}
	}
	if strings.Join(keys, ",") != ",a,b" {
		t.Fatalf("unexpected keys %q", keys)
	}
	if err := r.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
}

func TestReader_End(t *testing.T) {
	for doc, want := range map[string]error{
		`{} `:    nil,
		`{}{}`:   eng.ErrTrailingData,
		`{} x`:   eng.ErrTrailingData,
		`{}]`:    eng.ErrTrailingData,
		"{}\n\t": nil,
	} {
		for name, r := range map[string]eng.Reader{
			"bytes":  itersrc.NewBytes([]byte(doc)),
			"reader": itersrc.NewReader(strings.NewReader(doc)),
		} {
			if err := r.Skip(); err != nil {
				t.Fatalf("%s %q: Skip: %v", name, doc, err)
			}
			if err := r.End(); !errors.Is(err, want) {
				t.Fatalf("%s %q: want %v, got %v", name, doc, want, err)
			}
		}
	}
}
