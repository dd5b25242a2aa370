package clangast

import (
	"fmt"
	"reflect"

	eng "github.com/reoring/clangast/internal/engine"
)

// Unmarshaler is implemented by field types that decode themselves straight
// from the reader. Returned errors abort the decode and stay reachable with
// errors.Is and errors.As.
type Unmarshaler interface {
	UnmarshalClangAST(r *FieldReader) error
}

// FieldReader is the reader view handed to an Unmarshaler. It is positioned
// at the field's value, which the Unmarshaler must consume exactly once.
type FieldReader struct {
	st *decodeState
}

// Peek reports the kind of the next value without consuming it.
func (r *FieldReader) Peek() (ValueKind, error) { return r.st.r.Peek() }

func (r *FieldReader) NextKey() (string, bool, error) { return r.st.r.NextKey() }
func (r *FieldReader) NextElem() (bool, error)        { return r.st.r.NextElem() }
func (r *FieldReader) ReadString() (string, error)    { return r.st.r.ReadString() }
func (r *FieldReader) ReadNumber() (string, error)    { return r.st.r.ReadNumber() }
func (r *FieldReader) ReadBool() (bool, error)        { return r.st.r.ReadBool() }
func (r *FieldReader) ReadNull() error                { return r.st.r.ReadNull() }

// Skip discards the next value without building it.
func (r *FieldReader) Skip() error { return r.st.r.Skip() }

// ReadAny materializes the next value; numbers come back as json.Number.
func (r *FieldReader) ReadAny() (any, error) { return eng.ReadAny(r.st.r) }

// Intern returns the shared handle for s within the current decode.
func (r *FieldReader) Intern(s string) Filename { return r.st.intern.intern(s) }

// Decode decodes the next value into v, a non-nil pointer, with the same
// rules the schema uses for struct fields.
func (r *FieldReader) Decode(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("clangast: Decode needs a non-nil pointer, got %T", v)
	}
	c := &compiler{pending: make(map[reflect.Type]*structPlan)}
	dec, err := c.decoder(rv.Type().Elem())
	if err != nil {
		return err
	}
	for pt, pp := range c.pending {
		plans.LoadOrStore(pt, pp)
	}
	return dec(r.st, rv.Elem())
}

// SourceLocation decodes a "loc" value through the document's location
// cursor.
func (r *FieldReader) SourceLocation() (SourceLocation, error) {
	return r.st.decodeSourceLocation()
}

// SourceRange decodes a "range" value through the document's location
// cursor.
func (r *FieldReader) SourceRange() (SourceRange, error) { return r.st.decodeSourceRange() }

// Location is the reader's byte offset, or -1 when the driver cannot tell.
func (r *FieldReader) Location() int64 { return r.st.r.Location() }
