package engine

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	expectingKey bool
}

// Framer tracks container nesting for token decoders that report keys and
// string values alike (encoding/json and go-json both do).
type Framer struct {
	stack []frame
}

// Open records '{' (object) or '['.
func (f *Framer) Open(object bool) {
	if object {
		f.stack = append(f.stack, frame{kind: kindObject, expectingKey: true})
		return
	}
	f.stack = append(f.stack, frame{kind: kindArray})
}

// Close records '}' or ']', which completes a value in the parent.
func (f *Framer) Close() {
	if n := len(f.stack); n > 0 {
		f.stack = f.stack[:n-1]
	}
	f.Value()
}

// Value records a completed scalar value.
func (f *Framer) Value() {
	if n := len(f.stack); n > 0 {
		top := &f.stack[n-1]
		if top.kind == kindObject && !top.expectingKey {
			top.expectingKey = true
		}
	}
}

// String classifies a string token and reports whether it is an object key.
func (f *Framer) String() bool {
	if n := len(f.stack); n > 0 {
		top := &f.stack[n-1]
		if top.kind == kindObject && top.expectingKey {
			top.expectingKey = false
			return true
		}
	}
	f.Value()
	return false
}
