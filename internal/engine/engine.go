package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrTrailingData reports input left after the top-level value.
var ErrTrailingData = errors.New("unexpected data after the top-level value")

// Kind represents token kinds from a generic source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
	KindInvalid
)

var kindNames = [...]string{
	KindBeginObject: "object",
	KindEndObject:   "end of object",
	KindBeginArray:  "array",
	KindEndArray:    "end of array",
	KindKey:         "key",
	KindString:      "string",
	KindNumber:      "number",
	KindBool:        "bool",
	KindNull:        "null",
	KindInvalid:     "invalid",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token represents a streaming token with approximate input offset.
type Token struct {
	Kind   Kind
	String string
	Number string
	Bool   bool
	Offset int64
}

// TokenSource is a minimal interface required by the engine.
type TokenSource interface {
	NextToken() (Token, error)
	Location() int64
}

// MismatchError reports a value of an unexpected kind.
type MismatchError struct {
	Want   Kind
	Got    Kind
	Offset int64
}

func (e *MismatchError) Error() string {
	if e.Want == KindInvalid {
		return "unexpected " + e.Got.String()
	}
	return "expected " + e.Want.String() + ", found " + e.Got.String()
}

// ReadAny builds an "any" value for the next value in r. Numbers are kept as
// json.Number. Only the explicit catch-all bag and `any` fields use this.
func ReadAny(r Reader) (any, error) {
	k, err := r.Peek()
	if err != nil {
		return nil, err
	}
	switch k {
	case KindBeginObject:
		m := make(map[string]any)
		for {
			key, ok, err := r.NextKey()
			if err != nil {
				return nil, err
			}
			if !ok {
				return m, nil
			}
			v, err := ReadAny(r)
			if err != nil {
				return nil, err
			}
			m[key] = v
		}
	case KindBeginArray:
		arr := []any{}
		for {
			ok, err := r.NextElem()
			if err != nil {
				return nil, err
			}
			if !ok {
				return arr, nil
			}
			v, err := ReadAny(r)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
	case KindString:
		return r.ReadString()
	case KindNumber:
		n, err := r.ReadNumber()
		if err != nil {
			return nil, err
		}
		return json.Number(n), nil
	case KindBool:
		return r.ReadBool()
	case KindNull:
		return nil, r.ReadNull()
	default:
		return nil, io.ErrUnexpectedEOF
	}
}
