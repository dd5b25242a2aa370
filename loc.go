package clangast

import (
	"strconv"

	eng "github.com/reoring/clangast/internal/engine"
)

// BareSourceLocation is one resolved position. Clang omits any field that is
// unchanged from the previously printed position; the decoder fills those in
// from the last position it decoded anywhere in the document.
type BareSourceLocation struct {
	Offset              uint32        `json:"offset"`
	File                Filename      `json:"file"`
	Line                uint32        `json:"line"`
	Col                 uint32        `json:"col"`
	TokLen              uint32        `json:"tokLen"`
	IncludedFrom        *IncludedFrom `json:"includedFrom,omitempty"`
	IsMacroArgExpansion bool          `json:"isMacroArgExpansion,omitempty"`
}

// IncludedFrom is the #include chain that brought a file into the
// translation unit.
type IncludedFrom struct {
	File         Filename      `json:"file"`
	IncludedFrom *IncludedFrom `json:"includedFrom,omitempty"`
}

// SourceLocation is a "loc" value. For tokens produced by macro expansion
// Clang prints distinct spelling and expansion positions; otherwise both
// point at the same position. Both are nil for an empty location.
type SourceLocation struct {
	SpellingLoc  *BareSourceLocation `json:"spellingLoc,omitempty"`
	ExpansionLoc *BareSourceLocation `json:"expansionLoc,omitempty"`
}

// SourceRange is a "range" value.
type SourceRange struct {
	Begin SourceLocation `json:"begin"`
	End   SourceLocation `json:"end"`
}

// locCursor holds the last position decoded in the current document.
type locCursor struct {
	offset, line, col, tokLen uint32
	file                      Filename
	includedFrom              *IncludedFrom
}

const (
	hasOffset = 1 << iota
	hasFile
	hasLine
	hasCol
	hasTokLen
	hasIncludedFrom
	hasMacroArg
)

// rawPosition is a position as written, before inheritance.
type rawPosition struct {
	present                   uint8
	offset, line, col, tokLen uint32
	file                      Filename
	includedFrom              *IncludedFrom
	macroArg                  bool
}

// resolve fills absent fields from the cursor and records present ones.
// A new file starts a new include chain, so includedFrom follows file.
func (c *locCursor) resolve(raw *rawPosition) *BareSourceLocation {
	pick := func(bit uint8, v uint32, cur *uint32) uint32 {
		if raw.present&bit != 0 {
			*cur = v
		}
		return *cur
	}
	out := &BareSourceLocation{
		Offset:              pick(hasOffset, raw.offset, &c.offset),
		Line:                pick(hasLine, raw.line, &c.line),
		Col:                 pick(hasCol, raw.col, &c.col),
		TokLen:              pick(hasTokLen, raw.tokLen, &c.tokLen),
		IsMacroArgExpansion: raw.macroArg,
	}
	switch {
	case raw.present&hasFile != 0:
		c.file = raw.file
		c.includedFrom = raw.includedFrom
	case raw.present&hasIncludedFrom != 0:
		c.includedFrom = raw.includedFrom
	}
	out.File = c.file
	out.IncludedFrom = c.includedFrom
	return out
}

func (st *decodeState) locationError(err error) error {
	return st.wrap(CodeMalformedLocation, err)
}

// expectObject checks that the next value can be read as an object. It
// reports false for null, which is consumed.
func (st *decodeState) expectObject(code string) (bool, error) {
	k, err := st.r.Peek()
	if err != nil {
		return false, st.wrap(CodeParseError, err)
	}
	switch k {
	case eng.KindBeginObject:
		return true, nil
	case eng.KindNull:
		return false, st.wrap(CodeParseError, st.r.ReadNull())
	default:
		return false, st.fail(code, &eng.MismatchError{Want: eng.KindBeginObject, Got: k, Offset: st.r.Location()})
	}
}

func (st *decodeState) readUint32() (uint32, error) {
	k, err := st.r.Peek()
	if err != nil {
		return 0, st.wrap(CodeParseError, err)
	}
	if k != eng.KindNumber {
		return 0, st.fail(CodeMalformedLocation, &eng.MismatchError{Want: eng.KindNumber, Got: k, Offset: st.r.Location()})
	}
	n, err := st.r.ReadNumber()
	if err != nil {
		return 0, st.locationError(err)
	}
	v, err := strconv.ParseUint(n, 10, 32)
	if err != nil {
		return 0, st.fail(CodeMalformedLocation, err)
	}
	return uint32(v), nil
}

func (st *decodeState) readFilename(code string) (Filename, error) {
	k, err := st.r.Peek()
	if err != nil {
		return Filename{}, st.wrap(CodeParseError, err)
	}
	if k != eng.KindString {
		return Filename{}, st.fail(code, &eng.MismatchError{Want: eng.KindString, Got: k, Offset: st.r.Location()})
	}
	s, err := st.r.ReadString()
	if err != nil {
		return Filename{}, st.wrap(code, err)
	}
	return st.intern.intern(s), nil
}

// positionField decodes key into raw when it is a position field.
func (st *decodeState) positionField(raw *rawPosition, key string) (bool, error) {
	var err error
	switch key {
	case "offset":
		raw.offset, err = st.readUint32()
		raw.present |= hasOffset
	case "line":
		raw.line, err = st.readUint32()
		raw.present |= hasLine
	case "col":
		raw.col, err = st.readUint32()
		raw.present |= hasCol
	case "tokLen":
		raw.tokLen, err = st.readUint32()
		raw.present |= hasTokLen
	case "file":
		raw.file, err = st.readFilename(CodeMalformedLocation)
		raw.present |= hasFile
	case "includedFrom":
		raw.includedFrom, err = st.decodeIncludedFrom(Filename{})
		raw.present |= hasIncludedFrom
	case "isMacroArgExpansion":
		k, perr := st.r.Peek()
		if perr != nil {
			return true, st.wrap(CodeParseError, perr)
		}
		if k != eng.KindBool {
			return true, st.fail(CodeMalformedLocation, &eng.MismatchError{Want: eng.KindBool, Got: k, Offset: st.r.Location()})
		}
		raw.macroArg, err = st.r.ReadBool()
		if err != nil {
			err = st.locationError(err)
		}
		raw.present |= hasMacroArg
	default:
		return false, nil
	}
	return true, err
}

// decodeIncludedFrom decodes one link of an include chain. A link without a
// file repeats the file of the link that contains it; the document-wide
// cursor is not involved.
func (st *decodeState) decodeIncludedFrom(parent Filename) (*IncludedFrom, error) {
	ok, err := st.expectObject(CodeMalformedLocation)
	if err != nil || !ok {
		return nil, err
	}
	inc := &IncludedFrom{File: parent}
	for {
		key, more, err := st.r.NextKey()
		if err != nil {
			return nil, st.locationError(err)
		}
		if !more {
			break
		}
		st.push(key)
		switch key {
		case "file":
			inc.File, err = st.readFilename(CodeMalformedLocation)
		case "includedFrom":
			inc.IncludedFrom, err = st.decodeIncludedFrom(inc.File)
		default:
			err = st.skip()
		}
		st.pop()
		if err != nil {
			return nil, err
		}
	}
	return inc, nil
}

// decodeBareLocation decodes an object holding position fields only. It
// returns nil, leaving the cursor alone, when no position field is present.
func (st *decodeState) decodeBareLocation() (*BareSourceLocation, error) {
	ok, err := st.expectObject(CodeMalformedLocation)
	if err != nil || !ok {
		return nil, err
	}
	var raw rawPosition
	for {
		key, more, err := st.r.NextKey()
		if err != nil {
			return nil, st.locationError(err)
		}
		if !more {
			break
		}
		st.push(key)
		handled, err := st.positionField(&raw, key)
		if err == nil && !handled {
			err = st.skip()
		}
		st.pop()
		if err != nil {
			return nil, err
		}
	}
	if raw.present == 0 {
		return nil, nil
	}
	return st.cursor.resolve(&raw), nil
}

// decodeSourceLocation decodes a "loc" object in either its plain or its
// spellingLoc/expansionLoc form.
func (st *decodeState) decodeSourceLocation() (SourceLocation, error) {
	var out SourceLocation
	ok, err := st.expectObject(CodeMalformedLocation)
	if err != nil || !ok {
		return out, err
	}
	var raw rawPosition
	for {
		key, more, err := st.r.NextKey()
		if err != nil {
			return out, st.locationError(err)
		}
		if !more {
			break
		}
		st.push(key)
		switch key {
		case "spellingLoc":
			out.SpellingLoc, err = st.decodeBareLocation()
		case "expansionLoc":
			out.ExpansionLoc, err = st.decodeBareLocation()
		default:
			var handled bool
			handled, err = st.positionField(&raw, key)
			if err == nil && !handled {
				err = st.skip()
			}
		}
		st.pop()
		if err != nil {
			return out, err
		}
	}
	if raw.present != 0 {
		bare := st.cursor.resolve(&raw)
		if out.SpellingLoc == nil {
			out.SpellingLoc = bare
		}
		if out.ExpansionLoc == nil {
			out.ExpansionLoc = bare
		}
	}
	return out, nil
}

// decodeSourceRange decodes a "range" object; begin and end each go through
// the cursor in document order.
func (st *decodeState) decodeSourceRange() (SourceRange, error) {
	var out SourceRange
	ok, err := st.expectObject(CodeMalformedLocation)
	if err != nil || !ok {
		return out, err
	}
	for {
		key, more, err := st.r.NextKey()
		if err != nil {
			return out, st.locationError(err)
		}
		if !more {
			break
		}
		st.push(key)
		switch key {
		case "begin":
			out.Begin, err = st.decodeSourceLocation()
		case "end":
			out.End, err = st.decodeSourceLocation()
		default:
			err = st.skip()
		}
		st.pop()
		if err != nil {
			return out, err
		}
	}
	return out, nil
}
