package clangast

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/reoring/clangast/i18n"
	eng "github.com/reoring/clangast/internal/engine"
)

// Node is one node of a decoded Clang AST. A node owns its children.
type Node[T any] struct {
	// ID is the node's "id", or 0 when the object has none.
	ID    ID
	Kind  T
	Inner []Node[T]
}

// DecodeFrom decodes one node, and everything below it, from src. Anything
// but whitespace after the root object fails with parse_error.
func DecodeFrom[T any](s Schema[T], src Source, opts ...DecodeOpt) (Node[T], error) {
	if s == nil {
		return Node[T]{}, singleIssue(CodeInvalidSchema, "nil schema")
	}
	st := &decodeState{r: src, opts: normalizeOpt(opts)}
	n, err := decodeNode(st, s)
	if err != nil {
		return n, err
	}
	if err := src.End(); err != nil {
		return Node[T]{}, st.wrap(CodeParseError, err)
	}
	return n, nil
}

// DecodeBytes decodes a whole document held in memory.
func DecodeBytes[T any](s Schema[T], b []byte, opts ...DecodeOpt) (Node[T], error) {
	o := normalizeOpt(opts)
	return DecodeFrom(s, o.driver().NewBytes(b), o)
}

// DecodeReader decodes a document streamed from r. With MaxBytes set, input
// past the cap fails the decode with truncated.
func DecodeReader[T any](s Schema[T], r io.Reader, opts ...DecodeOpt) (Node[T], error) {
	o := normalizeOpt(opts)
	if o.MaxBytes > 0 {
		r = &capReader{r: r, left: o.MaxBytes}
	}
	return DecodeFrom(s, o.driver().NewReader(r), o)
}

var errTooLarge = errors.New("input exceeds MaxBytes")

// capReader fails once more than left bytes have been read.
type capReader struct {
	r    io.Reader
	left int64
}

func (c *capReader) Read(p []byte) (int, error) {
	if c.left < 0 {
		return 0, errTooLarge
	}
	// One byte past the cap is enough to notice the overflow.
	if int64(len(p))-1 > c.left {
		p = p[:c.left+1]
	}
	n, err := c.r.Read(p)
	c.left -= int64(n)
	if c.left < 0 {
		return n, errTooLarge
	}
	return n, err
}

// decodeState is everything one decode call owns: the reader, the interning
// table, the location cursor and the path used in errors. It is never shared
// between calls.
type decodeState struct {
	r      Source
	intern internScope
	cursor locCursor
	path   []pathSeg
	depth  int
	opts   DecodeOpt
}

// pathSeg is an object key, or an array index when index >= 0.
type pathSeg struct {
	key   string
	index int
}

func (st *decodeState) push(key string) { st.path = append(st.path, pathSeg{key: key, index: -1}) }
func (st *decodeState) pushIndex(i int) { st.path = append(st.path, pathSeg{index: i}) }
func (st *decodeState) pop()            { st.path = st.path[:len(st.path)-1] }

// pointer renders the current path as a JSON Pointer.
func (st *decodeState) pointer() string {
	if len(st.path) == 0 {
		return ""
	}
	var b strings.Builder
	for _, seg := range st.path {
		b.WriteByte('/')
		if seg.index >= 0 {
			b.WriteString(strconv.Itoa(seg.index))
			continue
		}
		b.WriteString(strings.ReplaceAll(strings.ReplaceAll(seg.key, "~", "~0"), "/", "~1"))
	}
	return b.String()
}

func (st *decodeState) issue(code, key string, cause error) Issues {
	var data map[string]string
	if key != "" {
		data = map[string]string{"key": key}
	}
	return AppendIssues(nil, Issue{
		Path:    st.pointer(),
		Code:    code,
		Message: i18n.T(code, data),
		Hint:    key,
		Cause:   cause,
		Offset:  st.r.Location(),
	})
}

// fail reports code at the current path.
func (st *decodeState) fail(code string, cause error) error {
	return st.issue(code, "", cause)
}

// failKey reports code for the key at the current path.
func (st *decodeState) failKey(code, key string) error {
	return st.issue(code, key, nil)
}

// wrap turns a reader error into Issues. Issues pass through; type
// mismatches become invalid_type unless a more specific code was asked for,
// and reads past MaxBytes become truncated.
func (st *decodeState) wrap(code string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(Issues); ok {
		return err
	}
	var mismatch *eng.MismatchError
	switch {
	case errors.Is(err, errTooLarge):
		code = CodeTruncated
	case errors.Is(err, io.ErrUnexpectedEOF):
		code = CodeParseError
	case errors.As(err, &mismatch) && code == CodeParseError:
		code = CodeInvalidType
	}
	return st.fail(code, err)
}

func (st *decodeState) skip() error {
	return st.wrap(CodeParseError, st.r.Skip())
}

// null consumes a null and reports whether there was one.
func (st *decodeState) null() (bool, error) {
	k, err := st.r.Peek()
	if err != nil {
		return false, st.wrap(CodeParseError, err)
	}
	if k != eng.KindNull {
		return false, nil
	}
	return true, st.wrap(CodeParseError, st.r.ReadNull())
}

// expect checks the kind of the next value without consuming it.
func (st *decodeState) expect(want eng.Kind) error {
	k, err := st.r.Peek()
	if err != nil {
		return st.wrap(CodeParseError, err)
	}
	if k != want {
		return st.fail(CodeInvalidType, &eng.MismatchError{Want: want, Got: k, Offset: st.r.Location()})
	}
	return nil
}

func (st *decodeState) readString() (string, error) {
	if err := st.expect(eng.KindString); err != nil {
		return "", err
	}
	s, err := st.r.ReadString()
	return s, st.wrap(CodeParseError, err)
}

// readNumber returns the number text; null reports true and leaves the
// target alone.
func (st *decodeState) readNumber() (string, bool, error) {
	null, err := st.null()
	if err != nil || null {
		return "", null, err
	}
	if err := st.expect(eng.KindNumber); err != nil {
		return "", false, err
	}
	n, err := st.r.ReadNumber()
	return n, false, st.wrap(CodeParseError, err)
}

func (st *decodeState) readID() (ID, error) {
	k, err := st.r.Peek()
	if err != nil {
		return 0, st.wrap(CodeParseError, err)
	}
	if k != eng.KindString {
		return 0, st.fail(CodeMalformedIdentifier, &eng.MismatchError{Want: eng.KindString, Got: k, Offset: st.r.Location()})
	}
	s, err := st.r.ReadString()
	if err != nil {
		return 0, st.wrap(CodeParseError, err)
	}
	id, err := ParseID(s)
	if err != nil {
		return 0, st.fail(CodeMalformedIdentifier, err)
	}
	return id, nil
}

func (st *decodeState) readKind() (Kind, error) {
	s, err := st.readString()
	if err != nil {
		return Kind{}, err
	}
	return ParseKind(s), nil
}
