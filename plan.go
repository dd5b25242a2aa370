package clangast

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"sync"

	gojson "github.com/goccy/go-json"

	eng "github.com/reoring/clangast/internal/engine"
)

// valueDecoder decodes the next value of the document into v, which is
// always addressable.
type valueDecoder func(st *decodeState, v reflect.Value) error

type fieldPlan struct {
	key   string
	index []int
	dec   valueDecoder
}

// structPlan is the strategy table for one struct type: document key to
// field decoder. Keys not in the table are skipped, or collected into the
// rest field when the struct has one.
type structPlan struct {
	typ    reflect.Type
	fields []fieldPlan
	byKey  map[string]int
	rest   []int // index of the clang:",rest" field; nil when absent
	// kind is the field that receives the node kind when the struct is used
	// as a node shape; nil when the struct does not ask for it.
	kind         []int
	kindIsString bool
}

var (
	idType              = reflect.TypeOf((*ID)(nil)).Elem()
	kindType            = reflect.TypeOf((*Kind)(nil)).Elem()
	filenameType        = reflect.TypeOf((*Filename)(nil)).Elem()
	locType             = reflect.TypeOf((*SourceLocation)(nil)).Elem()
	rangeType           = reflect.TypeOf((*SourceRange)(nil)).Elem()
	bareType            = reflect.TypeOf((*BareSourceLocation)(nil)).Elem()
	bareCursorType      = reflect.TypeOf((**BareSourceLocation)(nil)).Elem()
	restType            = reflect.TypeOf((*map[string]any)(nil)).Elem()
	unmarshalerType     = reflect.TypeOf((*Unmarshaler)(nil)).Elem()
	jsonUnmarshalerType = reflect.TypeOf((*gojson.Unmarshaler)(nil)).Elem()
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

var plans sync.Map // reflect.Type -> *structPlan

// planFor returns the cached plan for struct type t, compiling it and every
// struct type it reaches on first use.
func planFor(t reflect.Type) (*structPlan, error) {
	if p, ok := plans.Load(t); ok {
		return p.(*structPlan), nil
	}
	c := &compiler{pending: make(map[reflect.Type]*structPlan)}
	if _, err := c.structPlan(t); err != nil {
		return nil, err
	}
	for pt, pp := range c.pending {
		plans.LoadOrStore(pt, pp)
	}
	p, _ := plans.Load(t)
	return p.(*structPlan), nil
}

type compiler struct {
	pending map[reflect.Type]*structPlan
}

func (c *compiler) structPlan(t reflect.Type) (*structPlan, error) {
	if p, ok := plans.Load(t); ok {
		return p.(*structPlan), nil
	}
	if p, ok := c.pending[t]; ok {
		return p, nil
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("clangast: %v is not a struct", t)
	}
	p := &structPlan{typ: t, byKey: make(map[string]int)}
	c.pending[t] = p
	if err := c.addFields(p, t, nil); err != nil {
		return nil, err
	}
	if i, ok := p.byKey["kind"]; ok {
		ft := t.FieldByIndex(p.fields[i].index).Type
		switch {
		case ft == kindType:
			p.kind = p.fields[i].index
		case ft.Kind() == reflect.String:
			p.kind = p.fields[i].index
			p.kindIsString = true
		}
	}
	return p, nil
}

// addFields registers the fields of t; fields of embedded structs are
// promoted unless an outer field already claims the key.
func (c *compiler) addFields(p *structPlan, t reflect.Type, prefix []int) error {
	var embedded []reflect.StructField
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		index := append(append([]int(nil), prefix...), i)
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct && sf.Tag.Get("clang") == "" && sf.Tag.Get("json") == "" {
			embedded = append(embedded, sf)
			continue
		}
		if !sf.IsExported() {
			continue
		}
		if isRestField(sf) {
			if sf.Type != restType {
				return fmt.Errorf("clangast: rest field %s.%s must be map[string]any", t, sf.Name)
			}
			if p.rest == nil {
				p.rest = index
			}
			continue
		}
		key := ResolveStructKey(sf)
		if key == "-" {
			continue
		}
		if _, dup := p.byKey[key]; dup {
			continue
		}
		dec, err := c.decoder(sf.Type)
		if err != nil {
			return fmt.Errorf("clangast: field %s.%s: %w", t, sf.Name, err)
		}
		p.byKey[key] = len(p.fields)
		p.fields = append(p.fields, fieldPlan{key: key, index: index, dec: dec})
	}
	for _, sf := range embedded {
		index := append(append([]int(nil), prefix...), sf.Index...)
		if err := c.addFields(p, sf.Type, index); err != nil {
			return err
		}
	}
	return nil
}

func (c *compiler) decoder(t reflect.Type) (valueDecoder, error) {
	if reflect.PointerTo(t).Implements(unmarshalerType) {
		return decodeUnmarshaler, nil
	}
	switch t {
	case idType:
		return decodeID, nil
	case kindType:
		return decodeKind, nil
	case filenameType:
		return decodeFilename, nil
	case locType:
		return decodeLocation, nil
	case rangeType:
		return decodeRange, nil
	case bareType:
		return decodeBare, nil
	case bareCursorType:
		return decodeBarePtr, nil
	}
	if reflect.PointerTo(t).Implements(jsonUnmarshalerType) {
		return decodeJSONUnmarshaler, nil
	}
	if reflect.PointerTo(t).Implements(textUnmarshalerType) {
		return decodeTextUnmarshaler, nil
	}
	switch t.Kind() {
	case reflect.String:
		return decodeString, nil
	case reflect.Bool:
		return decodeBool, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return decodeInt, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return decodeUint, nil
	case reflect.Float32, reflect.Float64:
		return decodeFloat, nil
	case reflect.Pointer:
		return c.pointerDecoder(t)
	case reflect.Slice:
		return c.sliceDecoder(t)
	case reflect.Map:
		return c.mapDecoder(t)
	case reflect.Interface:
		if t.NumMethod() != 0 {
			return nil, fmt.Errorf("unsupported interface type %v", t)
		}
		return decodeAny, nil
	case reflect.Struct:
		p, err := c.structPlan(t)
		if err != nil {
			return nil, err
		}
		return func(st *decodeState, v reflect.Value) error { return st.decodeStruct(p, v) }, nil
	}
	return nil, fmt.Errorf("unsupported type %v", t)
}

func (c *compiler) pointerDecoder(t reflect.Type) (valueDecoder, error) {
	elem, err := c.decoder(t.Elem())
	if err != nil {
		return nil, err
	}
	return func(st *decodeState, v reflect.Value) error {
		null, err := st.null()
		if err != nil || null {
			if null {
				v.SetZero()
			}
			return err
		}
		if v.IsNil() {
			v.Set(reflect.New(t.Elem()))
		}
		return elem(st, v.Elem())
	}, nil
}

func (c *compiler) sliceDecoder(t reflect.Type) (valueDecoder, error) {
	elem, err := c.decoder(t.Elem())
	if err != nil {
		return nil, err
	}
	zero := reflect.Zero(t.Elem())
	return func(st *decodeState, v reflect.Value) error {
		null, err := st.null()
		if err != nil || null {
			return err
		}
		if err := st.expect(eng.KindBeginArray); err != nil {
			return err
		}
		v.Set(reflect.MakeSlice(t, 0, 0))
		for i := 0; ; i++ {
			more, err := st.r.NextElem()
			if err != nil {
				return st.wrap(CodeParseError, err)
			}
			if !more {
				return nil
			}
			v.Set(reflect.Append(v, zero))
			st.pushIndex(i)
			err = elem(st, v.Index(i))
			st.pop()
			if err != nil {
				return err
			}
		}
	}, nil
}

func (c *compiler) mapDecoder(t reflect.Type) (valueDecoder, error) {
	if t.Key().Kind() != reflect.String {
		return nil, fmt.Errorf("unsupported map key type %v", t.Key())
	}
	elem, err := c.decoder(t.Elem())
	if err != nil {
		return nil, err
	}
	return func(st *decodeState, v reflect.Value) error {
		null, err := st.null()
		if err != nil || null {
			return err
		}
		if err := st.expect(eng.KindBeginObject); err != nil {
			return err
		}
		if v.IsNil() {
			v.Set(reflect.MakeMap(t))
		}
		for {
			key, more, err := st.r.NextKey()
			if err != nil {
				return st.wrap(CodeParseError, err)
			}
			if !more {
				return nil
			}
			ev := reflect.New(t.Elem()).Elem()
			st.push(key)
			err = elem(st, ev)
			st.pop()
			if err != nil {
				return err
			}
			v.SetMapIndex(reflect.ValueOf(key).Convert(t.Key()), ev)
		}
	}, nil
}

// decodeStruct decodes an object into v through plan p. A null leaves v
// untouched.
func (st *decodeState) decodeStruct(p *structPlan, v reflect.Value) error {
	null, err := st.null()
	if err != nil || null {
		return err
	}
	if err := st.expect(eng.KindBeginObject); err != nil {
		return err
	}
	var seen fieldSet
	for {
		key, more, err := st.r.NextKey()
		if err != nil {
			return st.wrap(CodeParseError, err)
		}
		if !more {
			return nil
		}
		st.push(key)
		err = st.structField(p, v, &seen, key)
		st.pop()
		if err != nil {
			return err
		}
	}
}

// structField routes one key of an object to its decoder. The caller has
// pushed key onto the path.
func (st *decodeState) structField(p *structPlan, v reflect.Value, seen *fieldSet, key string) error {
	i, ok := p.byKey[key]
	if !ok {
		if p.rest != nil {
			return st.restField(v.FieldByIndex(p.rest), key)
		}
		return st.skip()
	}
	if seen.testAndSet(i) {
		return st.failKey(CodeDuplicateField, key)
	}
	f := &p.fields[i]
	return f.dec(st, v.FieldByIndex(f.index))
}

func (st *decodeState) restField(m reflect.Value, key string) error {
	val, err := eng.ReadAny(st.r)
	if err != nil {
		return st.wrap(CodeParseError, err)
	}
	if m.IsNil() {
		m.Set(reflect.MakeMap(restType))
	}
	ev := reflect.Zero(restType.Elem())
	if val != nil {
		ev = reflect.ValueOf(val)
	}
	m.SetMapIndex(reflect.ValueOf(key), ev)
	return nil
}

// fieldSet records which plan fields an object has already provided.
type fieldSet struct {
	lo uint64
	hi map[int]struct{}
}

func (s *fieldSet) testAndSet(i int) bool {
	if i < 64 {
		bit := uint64(1) << uint(i)
		was := s.lo&bit != 0
		s.lo |= bit
		return was
	}
	if _, ok := s.hi[i]; ok {
		return true
	}
	if s.hi == nil {
		s.hi = make(map[int]struct{})
	}
	s.hi[i] = struct{}{}
	return false
}

func decodeID(st *decodeState, v reflect.Value) error {
	id, err := st.readID()
	if err != nil {
		return err
	}
	v.SetUint(uint64(id))
	return nil
}

func decodeKind(st *decodeState, v reflect.Value) error {
	null, err := st.null()
	if err != nil || null {
		return err
	}
	s, err := st.readString()
	if err != nil {
		return err
	}
	v.Set(reflect.ValueOf(ParseKind(s)))
	return nil
}

func decodeFilename(st *decodeState, v reflect.Value) error {
	null, err := st.null()
	if err != nil || null {
		return err
	}
	f, err := st.readFilename(CodeInvalidType)
	if err != nil {
		return err
	}
	v.Set(reflect.ValueOf(f))
	return nil
}

func decodeLocation(st *decodeState, v reflect.Value) error {
	loc, err := st.decodeSourceLocation()
	if err != nil {
		return err
	}
	v.Set(reflect.ValueOf(loc))
	return nil
}

func decodeRange(st *decodeState, v reflect.Value) error {
	r, err := st.decodeSourceRange()
	if err != nil {
		return err
	}
	v.Set(reflect.ValueOf(r))
	return nil
}

func decodeBare(st *decodeState, v reflect.Value) error {
	b, err := st.decodeBareLocation()
	if err != nil {
		return err
	}
	if b == nil {
		v.SetZero()
		return nil
	}
	v.Set(reflect.ValueOf(*b))
	return nil
}

func decodeBarePtr(st *decodeState, v reflect.Value) error {
	b, err := st.decodeBareLocation()
	if err != nil {
		return err
	}
	v.Set(reflect.ValueOf(b))
	return nil
}

func decodeString(st *decodeState, v reflect.Value) error {
	null, err := st.null()
	if err != nil || null {
		return err
	}
	s, err := st.readString()
	if err != nil {
		return err
	}
	v.SetString(s)
	return nil
}

func decodeBool(st *decodeState, v reflect.Value) error {
	null, err := st.null()
	if err != nil || null {
		return err
	}
	if err := st.expect(eng.KindBool); err != nil {
		return err
	}
	b, err := st.r.ReadBool()
	if err != nil {
		return st.wrap(CodeParseError, err)
	}
	v.SetBool(b)
	return nil
}

func decodeInt(st *decodeState, v reflect.Value) error {
	n, null, err := st.readNumber()
	if err != nil || null {
		return err
	}
	i, err := strconv.ParseInt(n, 10, v.Type().Bits())
	if err != nil {
		return st.fail(CodeInvalidValue, err)
	}
	v.SetInt(i)
	return nil
}

func decodeUint(st *decodeState, v reflect.Value) error {
	n, null, err := st.readNumber()
	if err != nil || null {
		return err
	}
	u, err := strconv.ParseUint(n, 10, v.Type().Bits())
	if err != nil {
		return st.fail(CodeInvalidValue, err)
	}
	v.SetUint(u)
	return nil
}

func decodeFloat(st *decodeState, v reflect.Value) error {
	n, null, err := st.readNumber()
	if err != nil || null {
		return err
	}
	f, err := strconv.ParseFloat(n, v.Type().Bits())
	if err != nil {
		return st.fail(CodeInvalidValue, err)
	}
	v.SetFloat(f)
	return nil
}

func decodeAny(st *decodeState, v reflect.Value) error {
	val, err := eng.ReadAny(st.r)
	if err != nil {
		return st.wrap(CodeParseError, err)
	}
	if val == nil {
		v.SetZero()
		return nil
	}
	v.Set(reflect.ValueOf(val))
	return nil
}

func decodeUnmarshaler(st *decodeState, v reflect.Value) error {
	u := v.Addr().Interface().(Unmarshaler)
	if err := u.UnmarshalClangAST(&FieldReader{st: st}); err != nil {
		if _, ok := err.(Issues); ok {
			return err
		}
		return st.fail(CodeInvalidValue, err)
	}
	return nil
}

// decodeJSONUnmarshaler hands the value, re-encoded, to UnmarshalJSON. The
// value is materialized, so keep such fields rare.
func decodeJSONUnmarshaler(st *decodeState, v reflect.Value) error {
	val, err := eng.ReadAny(st.r)
	if err != nil {
		return st.wrap(CodeParseError, err)
	}
	b, err := gojson.Marshal(val)
	if err != nil {
		return st.fail(CodeInvalidValue, err)
	}
	if err := v.Addr().Interface().(gojson.Unmarshaler).UnmarshalJSON(b); err != nil {
		return st.fail(CodeInvalidValue, err)
	}
	return nil
}

func decodeTextUnmarshaler(st *decodeState, v reflect.Value) error {
	null, err := st.null()
	if err != nil || null {
		return err
	}
	s, err := st.readString()
	if err != nil {
		return err
	}
	if err := v.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s)); err != nil {
		return st.fail(CodeInvalidValue, err)
	}
	return nil
}
