// Package jsoniter provides the default reader, backed by json-iterator's
// pull Iterator. Skipped values are scanned in place without being decoded.
package jsoniter

import (
	"errors"
	"io"

	jsoniter "github.com/json-iterator/go"

	eng "github.com/reoring/clangast/internal/engine"
)

const bufSize = 64 << 10

type reader struct {
	iter *jsoniter.Iterator
}

// NewReader wraps an io.Reader into an engine.Reader.
func NewReader(r io.Reader) eng.Reader {
	return &reader{iter: jsoniter.Parse(jsoniter.ConfigDefault, r, bufSize)}
}

// NewBytes wraps a byte slice into an engine.Reader.
func NewBytes(b []byte) eng.Reader {
	return &reader{iter: jsoniter.ParseBytes(jsoniter.ConfigDefault, b)}
}

func (r *reader) err() error {
	err := r.iter.Error
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

func (r *reader) Peek() (eng.Kind, error) {
	k := kindOf(r.iter.WhatIsNext())
	if err := r.err(); err != nil {
		return eng.KindInvalid, err
	}
	if k == eng.KindInvalid {
		return k, io.ErrUnexpectedEOF
	}
	return k, nil
}

func (r *reader) expect(want eng.Kind) error {
	got, err := r.Peek()
	if err != nil {
		return err
	}
	if got != want {
		return &eng.MismatchError{Want: want, Got: got, Offset: -1}
	}
	return nil
}

// NextKey relies on Iterator.ReadObject, which returns "" both for an empty
// key and for the end of the object. After a key a value follows; after the
// closing brace only a comma, another closing bracket or the end of input
// can, so peeking tells the two apart.
func (r *reader) NextKey() (string, bool, error) {
	key := r.iter.ReadObject()
	if err := r.err(); err != nil {
		return "", false, err
	}
	if key != "" {
		return key, true, nil
	}
	return "", r.iter.WhatIsNext() != jsoniter.InvalidValue, nil
}

func (r *reader) NextElem() (bool, error) {
	more := r.iter.ReadArray()
	if err := r.err(); err != nil {
		return false, err
	}
	return more, nil
}

func (r *reader) ReadString() (string, error) {
	if err := r.expect(eng.KindString); err != nil {
		return "", err
	}
	s := r.iter.ReadString()
	return s, r.err()
}

func (r *reader) ReadNumber() (string, error) {
	if err := r.expect(eng.KindNumber); err != nil {
		return "", err
	}
	n := r.iter.ReadNumber()
	return string(n), r.err()
}

func (r *reader) ReadBool() (bool, error) {
	if err := r.expect(eng.KindBool); err != nil {
		return false, err
	}
	b := r.iter.ReadBool()
	return b, r.err()
}

func (r *reader) ReadNull() error {
	if err := r.expect(eng.KindNull); err != nil {
		return err
	}
	r.iter.ReadNil()
	return r.err()
}

func (r *reader) Skip() error {
	r.iter.Skip()
	return r.err()
}

// End peeks past the root value. The iterator records io.EOF once its input
// is exhausted; any other byte is trailing data.
func (r *reader) End() error {
	r.iter.WhatIsNext()
	switch err := r.iter.Error; {
	case err == nil:
		return eng.ErrTrailingData
	case errors.Is(err, io.EOF):
		return nil
	default:
		return err
	}
}

// The iterator does not expose its position.
func (r *reader) Location() int64 { return -1 }

func kindOf(vt jsoniter.ValueType) eng.Kind {
	switch vt {
	case jsoniter.ObjectValue:
		return eng.KindBeginObject
	case jsoniter.ArrayValue:
		return eng.KindBeginArray
	case jsoniter.StringValue:
		return eng.KindString
	case jsoniter.NumberValue:
		return eng.KindNumber
	case jsoniter.BoolValue:
		return eng.KindBool
	case jsoniter.NilValue:
		return eng.KindNull
	default:
		return eng.KindInvalid
	}
}
