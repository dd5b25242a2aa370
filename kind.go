package clangast

import "strconv"

// KindCode enumerates the node kinds in the built-in catalogue.
type KindCode uint16

// String returns the catalogue name, "null" for KindNull and "other" for
// KindOther.
func (c KindCode) String() string {
	switch c {
	case KindNull:
		return "null"
	case KindOther:
		return "other"
	}
	if int(c) < len(kindNames) {
		return kindNames[c]
	}
	return "KindCode(" + strconv.Itoa(int(c)) + ")"
}

var kindByName = func() map[string]KindCode {
	m := make(map[string]KindCode, len(kindNames))
	for c, name := range kindNames {
		if name != "" {
			m[name] = KindCode(c)
		}
	}
	return m
}()

// Kind is the category of a node: a catalogue member, an unrecognized name,
// or the null sentinel used when an object has no "kind" field at all.
// Kinds compare with == by name.
type Kind struct {
	code KindCode
	name string // set only for KindOther
}

// ParseKind classifies name against the catalogue.
func ParseKind(name string) Kind {
	if c, ok := kindByName[name]; ok {
		return Kind{code: c}
	}
	return Kind{code: KindOther, name: name}
}

// KindOf returns the Kind for a catalogue code.
func KindOf(c KindCode) Kind { return Kind{code: c} }

// Code returns the catalogue code; KindOther for unrecognized names.
func (k Kind) Code() KindCode { return k.code }

// IsNull reports whether the node carried no "kind" field.
func (k Kind) IsNull() bool { return k.code == KindNull }

// IsKnown reports whether the name is in the catalogue.
func (k Kind) IsKnown() bool { return k.code > KindOther }

// String returns the kind name as it appeared in the document ("" for null).
func (k Kind) String() string {
	if k.code == KindOther {
		return k.name
	}
	return kindNames[k.code]
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*k = Kind{}
		return nil
	}
	*k = ParseKind(string(b))
	return nil
}
