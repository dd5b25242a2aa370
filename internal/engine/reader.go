package engine

import (
	"io"
)

// Reader is the pull-style view of a JSON document used by the decoder.
//
// Value-level methods (Peek, the Read* family, Skip, and the first NextKey
// or NextElem call on a container) must be called at a value position: the
// start of the document, right after NextKey returned a key, or right after
// NextElem returned true.
type Reader interface {
	// Peek reports the kind of the next value without consuming it.
	Peek() (Kind, error)
	// NextKey advances through an object. The first call consumes the
	// opening brace; it reports false once the closing brace is consumed.
	// A null value behaves as an empty object.
	NextKey() (string, bool, error)
	// NextElem advances through an array like NextKey does for objects.
	NextElem() (bool, error)
	ReadString() (string, error)
	// ReadNumber returns the number literal as written.
	ReadNumber() (string, error)
	ReadBool() (bool, error)
	ReadNull() error
	// Skip discards the next value without building it.
	Skip() error
	// Location is the current byte offset, or -1 when unknown.
	Location() int64
	// End checks that nothing but whitespace follows the top-level value.
	// It returns ErrTrailingData, or the syntax error of the leftover input.
	End() error
}

// NewTokenReader adapts a TokenSource to a Reader.
func NewTokenReader(src TokenSource) Reader {
	return &tokenReader{src: src, atValue: true}
}

type tokenReader struct {
	src     TokenSource
	tok     Token
	hasTok  bool
	atValue bool
}

func (r *tokenReader) next() (Token, error) {
	if r.hasTok {
		r.hasTok = false
		return r.tok, nil
	}
	tok, err := r.src.NextToken()
	if err == io.EOF {
		return Token{}, io.ErrUnexpectedEOF
	}
	return tok, err
}

func (r *tokenReader) peek() (Token, error) {
	if r.hasTok {
		return r.tok, nil
	}
	tok, err := r.next()
	if err != nil {
		return Token{}, err
	}
	r.tok, r.hasTok = tok, true
	return tok, nil
}

func (r *tokenReader) mismatch(want Kind, tok Token) error {
	return &MismatchError{Want: want, Got: tok.Kind, Offset: tok.Offset}
}

func (r *tokenReader) Peek() (Kind, error) {
	tok, err := r.peek()
	if err != nil {
		return KindInvalid, err
	}
	return tok.Kind, nil
}

func (r *tokenReader) NextKey() (string, bool, error) {
	if r.atValue {
		tok, err := r.next()
		if err != nil {
			return "", false, err
		}
		switch tok.Kind {
		case KindNull:
			r.atValue = false
			return "", false, nil
		case KindBeginObject:
			r.atValue = false
		default:
			return "", false, r.mismatch(KindBeginObject, tok)
		}
	}
	tok, err := r.next()
	if err != nil {
		return "", false, err
	}
	switch tok.Kind {
	case KindKey:
		r.atValue = true
		return tok.String, true, nil
	case KindEndObject:
		return "", false, nil
	default:
		return "", false, r.mismatch(KindKey, tok)
	}
}

func (r *tokenReader) NextElem() (bool, error) {
	if r.atValue {
		tok, err := r.next()
		if err != nil {
			return false, err
		}
		switch tok.Kind {
		case KindNull:
			r.atValue = false
			return false, nil
		case KindBeginArray:
			r.atValue = false
		default:
			return false, r.mismatch(KindBeginArray, tok)
		}
	}
	tok, err := r.peek()
	if err != nil {
		return false, err
	}
	if tok.Kind == KindEndArray {
		r.hasTok = false
		return false, nil
	}
	r.atValue = true
	return true, nil
}

func (r *tokenReader) scalar(want Kind) (Token, error) {
	tok, err := r.next()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind != want {
		return Token{}, r.mismatch(want, tok)
	}
	r.atValue = false
	return tok, nil
}

func (r *tokenReader) ReadString() (string, error) {
	tok, err := r.scalar(KindString)
	return tok.String, err
}

func (r *tokenReader) ReadNumber() (string, error) {
	tok, err := r.scalar(KindNumber)
	return tok.Number, err
}

func (r *tokenReader) ReadBool() (bool, error) {
	tok, err := r.scalar(KindBool)
	return tok.Bool, err
}

func (r *tokenReader) ReadNull() error {
	_, err := r.scalar(KindNull)
	return err
}

func (r *tokenReader) Skip() error {
	tok, err := r.next()
	if err != nil {
		return err
	}
	r.atValue = false
	depth := 0
	for {
		switch tok.Kind {
		case KindBeginObject, KindBeginArray:
			depth++
		case KindEndObject, KindEndArray:
			depth--
			if depth < 0 {
				return r.mismatch(KindInvalid, tok)
			}
		case KindKey:
			if depth == 0 {
				return r.mismatch(KindInvalid, tok)
			}
		}
		if depth <= 0 {
			return nil
		}
		if tok, err = r.next(); err != nil {
			return err
		}
	}
}

func (r *tokenReader) Location() int64 { return r.src.Location() }

func (r *tokenReader) End() error {
	if r.hasTok {
		return ErrTrailingData
	}
	_, err := r.src.NextToken()
	switch {
	case err == io.EOF:
		return nil
	case err != nil:
		return err
	}
	return ErrTrailingData
}
