package clangast

import (
	"reflect"

	eng "github.com/reoring/clangast/internal/engine"
)

// decodeNode decodes the object at the reader into a node. An object lists
// "id" (optional), then "kind", then everything else; "inner" and any other
// key before "kind" fail with missing_category. An object that ends without
// a "kind" gets the null kind.
func decodeNode[T any](st *decodeState, s Schema[T]) (Node[T], error) {
	st.intern.activate()
	defer st.intern.release()

	var n Node[T]
	st.depth++
	defer func() { st.depth-- }()
	if st.opts.MaxDepth > 0 && st.depth > st.opts.MaxDepth {
		return n, st.fail(CodeTooDeep, nil)
	}
	if err := st.expect(eng.KindBeginObject); err != nil {
		return n, err
	}

	haveID := false
	for {
		key, more, err := st.r.NextKey()
		if err != nil {
			return n, st.wrap(CodeParseError, err)
		}
		if !more {
			kind, err := routeFields(st, s, &n, KindOf(KindNull), haveID, false)
			n.Kind = kind
			return n, err
		}
		st.push(key)
		switch key {
		case "id":
			if haveID {
				err = st.failKey(CodeDuplicateField, key)
				break
			}
			haveID = true
			n.ID, err = st.readID()
		case "kind":
			var k Kind
			if k, err = st.readKind(); err == nil {
				st.pop()
				n.Kind, err = routeFields(st, s, &n, k, haveID, true)
				return n, err
			}
		default:
			err = st.failKey(CodeMissingCategory, key)
		}
		st.pop()
		if err != nil {
			return n, err
		}
	}
}

// routeFields decodes the rest of the object into the variant the schema
// picks for kind. "inner" is diverted into n.Inner. With open false the
// object has already been closed.
func routeFields[T any](st *decodeState, s Schema[T], n *Node[T], kind Kind, haveID, open bool) (T, error) {
	var zero T
	vr := s.variantFor(kind)
	if vr == nil {
		return zero, st.failKey(CodeMissingCategory, kind.String())
	}
	rv := reflect.New(vr.typ).Elem()
	p := vr.plan
	if p.kind != nil {
		f := rv.FieldByIndex(p.kind)
		if p.kindIsString {
			f.SetString(kind.String())
		} else {
			f.Set(reflect.ValueOf(kind))
		}
	}

	haveInner := false
	var seen fieldSet
	for open {
		key, more, err := st.r.NextKey()
		if err != nil {
			return zero, st.wrap(CodeParseError, err)
		}
		if !more {
			break
		}
		st.push(key)
		switch key {
		case "kind":
			err = st.failKey(CodeDuplicateField, key)
		case "inner":
			if haveInner {
				err = st.failKey(CodeDuplicateField, key)
				break
			}
			haveInner = true
			n.Inner, err = decodeChildren(st, s)
		case "id":
			// Only offered to the schema when the node has no id yet.
			if haveID {
				err = st.failKey(CodeDuplicateField, key)
				break
			}
			haveID = true
			err = st.structField(p, rv, &seen, key)
		default:
			err = st.structField(p, rv, &seen, key)
		}
		st.pop()
		if err != nil {
			return zero, err
		}
	}
	return value[T](vr, rv), nil
}

func decodeChildren[T any](st *decodeState, s Schema[T]) ([]Node[T], error) {
	null, err := st.null()
	if err != nil || null {
		return nil, err
	}
	if err := st.expect(eng.KindBeginArray); err != nil {
		return nil, err
	}
	var out []Node[T]
	for i := 0; ; i++ {
		more, err := st.r.NextElem()
		if err != nil {
			return nil, st.wrap(CodeParseError, err)
		}
		if !more {
			return out, nil
		}
		st.pushIndex(i)
		child, err := decodeNode(st, s)
		st.pop()
		if err != nil {
			return nil, err
		}
		out = append(out, child)
	}
}
