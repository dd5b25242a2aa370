package clangast

import (
	"fmt"
	"reflect"
)

// Schema tells the decoder how to turn a node object into a T. Build one
// with UnionOf or RecordOf.
type Schema[T any] interface {
	variantFor(k Kind) *variant
	// Variants lists the variant names, fallback last.
	Variants() []string
	// Decode is DecodeFrom with this schema.
	Decode(src Source, opts ...DecodeOpt) (Node[T], error)
}

// variant is one struct shape a node can decode into.
type variant struct {
	name string
	typ  reflect.Type // struct type
	ptr  bool         // the schema value holds *typ
	plan *structPlan
}

func newVariant(name string, t reflect.Type) (*variant, error) {
	v := &variant{name: name}
	if t != nil && t.Kind() == reflect.Pointer {
		v.ptr = true
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("variant %q: %v is not a struct or pointer to struct", name, t)
	}
	v.typ = t
	p, err := planFor(t)
	if err != nil {
		return nil, fmt.Errorf("variant %q: %w", name, err)
	}
	v.plan = p
	return v, nil
}

// value converts a decoded struct into the schema's value.
func value[T any](v *variant, rv reflect.Value) T {
	if v.ptr {
		rv = rv.Addr()
	}
	return rv.Interface().(T)
}

// UnionSchema dispatches on the node kind: each variant is named after a
// kind, and kinds without a variant go to the fallback variant, which must
// be named Other or Unknown.
type UnionSchema[T any] struct {
	byCode   []*variant // indexed by KindCode for catalogue names
	byName   map[string]*variant
	fallback *variant
	names    []string
}

func (s *UnionSchema[T]) variantFor(k Kind) *variant {
	if c := k.Code(); c > KindOther && int(c) < len(s.byCode) {
		if v := s.byCode[c]; v != nil {
			return v
		}
		return s.fallback
	}
	if v, ok := s.byName[k.String()]; ok && !k.IsNull() {
		return v
	}
	return s.fallback
}

func (s *UnionSchema[T]) Variants() []string { return append([]string(nil), s.names...) }

func (s *UnionSchema[T]) Decode(src Source, opts ...DecodeOpt) (Node[T], error) {
	return DecodeFrom[T](s, src, opts...)
}

// UnionBuilder collects the variants of a union schema.
type UnionBuilder[T any] struct {
	entries []unionEntry
}

type unionEntry struct {
	name string
	typ  reflect.Type
}

// UnionOf starts a union schema for T, usually an interface implemented by
// every variant type.
//
//	s := clangast.UnionOf[Clang]().
//		Variant(NamespaceDecl{}).
//		Variant(&EnumDecl{}).
//		Variant(Other{}).
//		MustBuild()
func UnionOf[T any]() *UnionBuilder[T] { return &UnionBuilder[T]{} }

// Variant adds v under the name of its struct type.
func (b *UnionBuilder[T]) Variant(v T) *UnionBuilder[T] {
	t := reflect.TypeOf(v)
	name := ""
	if t != nil {
		name = t.Name()
		if t.Kind() == reflect.Pointer {
			name = t.Elem().Name()
		}
	}
	b.entries = append(b.entries, unionEntry{name: name, typ: t})
	return b
}

// VariantAs adds v under an explicit kind name.
func (b *UnionBuilder[T]) VariantAs(name string, v T) *UnionBuilder[T] {
	b.entries = append(b.entries, unionEntry{name: name, typ: reflect.TypeOf(v)})
	return b
}

// Build compiles the variants. A union without an Other or Unknown variant
// fails with ErrMissingCategory.
func (b *UnionBuilder[T]) Build() (*UnionSchema[T], error) {
	s := &UnionSchema[T]{byCode: make([]*variant, len(kindNames)), byName: make(map[string]*variant)}
	for _, e := range b.entries {
		if e.name == "" {
			return nil, schemaError(nil, "variant of type %v has no name", e.typ)
		}
		if _, dup := s.byName[e.name]; dup {
			return nil, schemaError(nil, "duplicate variant %q", e.name)
		}
		v, err := newVariant(e.name, e.typ)
		if err != nil {
			return nil, schemaError(err, "")
		}
		if e.name == "Other" || e.name == "Unknown" {
			if s.fallback != nil {
				return nil, schemaError(nil, "both %q and %q declared as fallback", s.fallback.name, e.name)
			}
			s.fallback = v
			continue
		}
		s.byName[e.name] = v
		s.names = append(s.names, e.name)
		if c, ok := kindByName[e.name]; ok {
			s.byCode[c] = v
		}
	}
	if s.fallback == nil {
		return nil, AppendIssues(nil, Issue{
			Code:    CodeMissingCategory,
			Message: "union has no Other or Unknown variant",
			Cause:   ErrMissingCategory,
			Offset:  -1,
		})
	}
	s.names = append(s.names, s.fallback.name)
	return s, nil
}

// MustBuild is Build that panics on error.
func (b *UnionBuilder[T]) MustBuild() *UnionSchema[T] {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// RecordSchema decodes every node into the same struct shape, whatever its
// kind.
type RecordSchema[T any] struct {
	v *variant
}

func (s *RecordSchema[T]) variantFor(Kind) *variant { return s.v }
func (s *RecordSchema[T]) Variants() []string       { return []string{s.v.name} }

func (s *RecordSchema[T]) Decode(src Source, opts ...DecodeOpt) (Node[T], error) {
	return DecodeFrom[T](s, src, opts...)
}

// RecordOf compiles a record schema for T, a struct or pointer to struct.
func RecordOf[T any]() (*RecordSchema[T], error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	name := t.Name()
	if t.Kind() == reflect.Pointer {
		name = t.Elem().Name()
	}
	v, err := newVariant(name, t)
	if err != nil {
		return nil, schemaError(err, "")
	}
	return &RecordSchema[T]{v: v}, nil
}

// MustRecordOf is RecordOf that panics on error.
func MustRecordOf[T any]() *RecordSchema[T] {
	s, err := RecordOf[T]()
	if err != nil {
		panic(err)
	}
	return s
}

func schemaError(cause error, format string, args ...any) error {
	it := Issue{Code: CodeInvalidSchema, Cause: cause, Offset: -1}
	if format != "" {
		it.Message = fmt.Sprintf(format, args...)
	} else {
		it.Message = cause.Error()
	}
	return AppendIssues(nil, it)
}
