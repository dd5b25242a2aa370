package clangast

// Filename is an interned file path. Every location in one decode that names
// the same file shares a single handle; handles from different decodes are
// never shared.
type Filename struct {
	p *string
}

// String returns the path, or "" for the zero Filename.
func (f Filename) String() string {
	if f.p == nil {
		return ""
	}
	return *f.p
}

// IsZero reports whether no file has been seen.
func (f Filename) IsZero() bool { return f.p == nil }

// Same reports whether f and g are the same interned handle.
func (f Filename) Same(g Filename) bool { return f.p == g.p }

func (f Filename) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// internScope is a reentrant string table. The first activate allocates the
// table and the matching last release drops it; nested pairs only count.
type internScope struct {
	depth int
	table map[string]*string
}

func (s *internScope) activate() {
	if s.depth == 0 {
		s.table = make(map[string]*string)
	}
	s.depth++
}

func (s *internScope) release() {
	if s.depth == 0 {
		return
	}
	s.depth--
	if s.depth == 0 {
		s.table = nil
	}
}

// intern returns the shared handle for str. Without an active scope every
// call allocates a fresh handle.
func (s *internScope) intern(str string) Filename {
	if s == nil || s.table == nil {
		p := str
		return Filename{p: &p}
	}
	if p, ok := s.table[str]; ok {
		return Filename{p: p}
	}
	p := str
	s.table[str] = &p
	return Filename{p: &p}
}
