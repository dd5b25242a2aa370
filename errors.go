package clangast

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/clangast/i18n"
)

// Issue codes.
const (
	CodeMalformedIdentifier = "malformed_identifier"
	CodeDuplicateField      = "duplicate_field"
	CodeMissingCategory     = "missing_category"
	CodeMalformedLocation   = "malformed_location"
	CodeInvalidType         = "invalid_type"
	CodeInvalidValue        = "invalid_value"
	CodeParseError          = "parse_error"
	CodeTooDeep             = "too_deep"
	CodeTruncated           = "truncated"
	CodeInvalidSchema       = "invalid_schema"
)

// Sentinel causes; match them with errors.Is on a returned error.
var (
	ErrMalformedIdentifier = errors.New("clangast: malformed identifier")
	ErrDuplicateField      = errors.New("clangast: duplicate field")
	ErrMissingCategory     = errors.New("clangast: missing kind")
	ErrMalformedLocation   = errors.New("clangast: malformed location")
)

var codeSentinels = map[string]error{
	CodeMalformedIdentifier: ErrMalformedIdentifier,
	CodeDuplicateField:      ErrDuplicateField,
	CodeMissingCategory:     ErrMissingCategory,
	CodeMalformedLocation:   ErrMalformedLocation,
}

// Issue describes why a decode failed.
type Issue struct {
	Path    string // JSON Pointer of the offending key (for example: /inner/3/loc/line).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: the offending key or value.
	Cause   error  // Optional: underlying error.
	Offset  int64  // Byte offset in the input (-1 when the driver cannot tell).
}

// Issues is a collection of issues that implements error. Decoding stops at
// the first failure, so decode errors carry exactly one.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		path := it.Path
		if path == "" {
			path = "/"
		}
		fmt.Fprintf(b, "%s at %s", it.Code, path)
		if it.Cause != nil {
			fmt.Fprintf(b, ": %v", it.Cause)
		} else if it.Hint != "" {
			fmt.Fprintf(b, ": %s", it.Hint)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes causes and code sentinels to errors.Is and errors.As.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
		if s, ok := codeSentinels[it.Code]; ok {
			out = append(out, s)
		}
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

func singleIssue(code, hint string) Issues {
	return AppendIssues(nil, Issue{Code: code, Message: i18n.T(code, nil), Hint: hint, Offset: -1})
}
