package clangast

import (
	"io"
	"sync"

	eng "github.com/reoring/clangast/internal/engine"
	gojsonsrc "github.com/reoring/clangast/source/gojson"
	jsonsrc "github.com/reoring/clangast/source/json"
	itersrc "github.com/reoring/clangast/source/jsoniter"
)

// ValueKind is the kind of the next value a Source reports.
type ValueKind = eng.Kind

const (
	ValueObject  ValueKind = eng.KindBeginObject
	ValueArray   ValueKind = eng.KindBeginArray
	ValueString  ValueKind = eng.KindString
	ValueNumber  ValueKind = eng.KindNumber
	ValueBool    ValueKind = eng.KindBool
	ValueNull    ValueKind = eng.KindNull
	ValueInvalid ValueKind = eng.KindInvalid
)

// Source is a pull reader over one JSON document. The decoder never asks a
// Source to build values it does not need: unwanted fields go through Skip.
type Source interface {
	// Peek reports the kind of the next value without consuming it.
	Peek() (ValueKind, error)
	// NextKey advances through an object. The first call consumes the
	// opening brace; it reports false once the closing brace is consumed.
	NextKey() (string, bool, error)
	// NextElem advances through an array like NextKey does for objects.
	NextElem() (bool, error)
	ReadString() (string, error)
	ReadNumber() (string, error)
	ReadBool() (bool, error)
	ReadNull() error
	Skip() error
	// Location is the current byte offset, or -1 when unknown.
	Location() int64
	// End checks that the document ends after the top-level value.
	End() error
}

// JSONDriver turns JSON input into a Source. The default is backed by
// json-iterator and may be swapped with SetJSONDriver.
type JSONDriver interface {
	NewReader(r io.Reader) Source
	NewBytes(b []byte) Source
	Name() string
}

var (
	jsonDriverMu      sync.RWMutex
	currentJSONDriver JSONDriver = iterDriver{}
)

// SetJSONDriver replaces the global JSON driver; nil values are ignored.
func SetJSONDriver(d JSONDriver) {
	if d == nil {
		return
	}
	jsonDriverMu.Lock()
	currentJSONDriver = d
	jsonDriverMu.Unlock()
}

// UseDefaultJSONDriver restores the json-iterator driver.
func UseDefaultJSONDriver() { SetJSONDriver(iterDriver{}) }

func getJSONDriver() JSONDriver {
	jsonDriverMu.RLock()
	d := currentJSONDriver
	jsonDriverMu.RUnlock()
	return d
}

// CurrentJSONDriver returns the global driver.
func CurrentJSONDriver() JSONDriver { return getJSONDriver() }

// JSONReader wraps an io.Reader as a Source using the global driver.
func JSONReader(r io.Reader) Source { return getJSONDriver().NewReader(r) }

// JSONBytes wraps a byte slice as a Source using the global driver.
func JSONBytes(b []byte) Source { return getJSONDriver().NewBytes(b) }

// JSONIterDriver skips unwanted values in place; it cannot report offsets.
func JSONIterDriver() JSONDriver { return iterDriver{} }

// StdJSONDriver is backed by encoding/json tokens and reports byte offsets,
// which makes it the driver of choice when error positions matter.
func StdJSONDriver() JSONDriver { return stdDriver{} }

// GoJSONDriver is backed by goccy/go-json tokens.
func GoJSONDriver() JSONDriver { return goJSONDriver{} }

// Drivers lists the built-in drivers.
func Drivers() []JSONDriver { return []JSONDriver{iterDriver{}, stdDriver{}, goJSONDriver{}} }

// DriverByName looks a built-in driver up by its Name.
func DriverByName(name string) (JSONDriver, bool) {
	for _, d := range Drivers() {
		if d.Name() == name {
			return d, true
		}
	}
	return nil, false
}

type iterDriver struct{}

func (iterDriver) NewReader(r io.Reader) Source { return itersrc.NewReader(r) }
func (iterDriver) NewBytes(b []byte) Source     { return itersrc.NewBytes(b) }
func (iterDriver) Name() string                 { return "jsoniter" }

type stdDriver struct{}

func (stdDriver) NewReader(r io.Reader) Source { return eng.NewTokenReader(jsonsrc.NewReader(r)) }
func (stdDriver) NewBytes(b []byte) Source     { return eng.NewTokenReader(jsonsrc.NewBytes(b)) }
func (stdDriver) Name() string                 { return "json" }

type goJSONDriver struct{}

func (goJSONDriver) NewReader(r io.Reader) Source { return eng.NewTokenReader(gojsonsrc.NewReader(r)) }
func (goJSONDriver) NewBytes(b []byte) Source     { return eng.NewTokenReader(gojsonsrc.NewBytes(b)) }
func (goJSONDriver) Name() string                 { return "gojson" }
