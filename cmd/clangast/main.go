package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/clangast"
	"github.com/reoring/clangast/i18n"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	var run func(clangast.DecodeOpt, io.Reader) (any, error)
	switch os.Args[1] {
	case "kinds":
		run = kindsCmd
	case "files":
		run = filesCmd
	case "decls":
		run = declsCmd
	default:
		usage()
		os.Exit(2)
	}
	if err := runCmd(os.Args[1], os.Args[2:], run, os.Stdout); err != nil {
		theLog.Error("failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `clangast: summarize a clang JSON AST dump

Usage:
  clang -Xclang -ast-dump=json -fsyntax-only file.c | clangast <command> [flags] [file|-]

Commands:
  kinds   node count per kind
  files   files named by source locations, with node counts
  decls   named declarations and where they are

Flags:
  -driver jsoniter|json|gojson   JSON reader (json reports byte offsets in errors)
  -format yaml|json              output format
  -max-depth N                   fail on documents nested deeper than N nodes
  -max-bytes N                   fail on inputs larger than N bytes
  -config path.yaml              read defaults from a YAML file
  -v                             debug logging`)
}

func runCmd(name string, args []string, run func(clangast.DecodeOpt, io.Reader) (any, error), out io.Writer) error {
	cfg := defaultConfig()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	var (
		cfgPath  string
		verbose  bool
		driver   = fs.String("driver", cfg.Driver, "JSON reader: jsoniter, json or gojson")
		format   = fs.String("format", cfg.Format, "output format: yaml or json")
		maxDepth = fs.Int("max-depth", 0, "maximum node nesting (0 = unlimited)")
		maxBytes = fs.Int64("max-bytes", 0, "maximum input size in bytes (0 = unlimited)")
	)
	fs.StringVar(&cfgPath, "config", "", "YAML config file")
	fs.BoolVar(&verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if cfgPath != "" {
		if err := loadConfig(cfgPath, &cfg); err != nil {
			return err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "driver":
			cfg.Driver = *driver
		case "format":
			cfg.Format = *format
		case "max-depth":
			cfg.MaxDepth = *maxDepth
		case "max-bytes":
			cfg.MaxBytes = *maxBytes
		}
	})
	if verbose {
		logLevel.Set(slog.LevelDebug)
	}
	if cfg.Language != "" {
		i18n.SetLanguage(cfg.Language)
	}
	opt, err := cfg.decodeOpt()
	if err != nil {
		return err
	}

	in := io.Reader(os.Stdin)
	path := fs.Arg(0)
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	theLog.Debug("decoding", "input", path, "driver", opt.Driver.Name(), "maxDepth", opt.MaxDepth, "maxBytes", opt.MaxBytes)

	res, err := run(opt, in)
	if err != nil {
		if iss, ok := clangast.AsIssues(err); ok && len(iss) > 0 && iss[0].Offset >= 0 {
			theLog.Debug("decode failed", "path", iss[0].Path, "offset", iss[0].Offset)
		}
		return err
	}
	return write(out, cfg.Format, res)
}

func write(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		b, err := gojson.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

type countEntry struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

func sortedCounts(m map[string]int) []countEntry {
	out := make([]countEntry, 0, len(m))
	for k, n := range m {
		out = append(out, countEntry{Name: k, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func walk[T any](n *clangast.Node[T], fn func(*clangast.Node[T])) {
	fn(n)
	for i := range n.Inner {
		walk(&n.Inner[i], fn)
	}
}

type kindRecord struct {
	Kind clangast.Kind
}

var kindSchema = clangast.MustRecordOf[kindRecord]()

func kindsCmd(opt clangast.DecodeOpt, r io.Reader) (any, error) {
	root, err := clangast.DecodeReader(kindSchema, r, opt)
	if err != nil {
		return nil, err
	}
	counts := map[string]int{}
	walk(&root, func(n *clangast.Node[kindRecord]) {
		name := n.Kind.Kind.String()
		if n.Kind.Kind.IsNull() {
			name = "(none)"
		}
		counts[name]++
	})
	return sortedCounts(counts), nil
}

type locRecord struct {
	Loc   clangast.SourceLocation
	Range clangast.SourceRange
}

var locSchema = clangast.MustRecordOf[locRecord]()

func filesCmd(opt clangast.DecodeOpt, r io.Reader) (any, error) {
	root, err := clangast.DecodeReader(locSchema, r, opt)
	if err != nil {
		return nil, err
	}
	counts := map[string]int{}
	walk(&root, func(n *clangast.Node[locRecord]) {
		var seen []clangast.Filename
		note := func(b *clangast.BareSourceLocation) {
			if b == nil || b.File.IsZero() {
				return
			}
			for _, f := range seen {
				if f.Same(b.File) {
					return
				}
			}
			seen = append(seen, b.File)
			counts[b.File.String()]++
		}
		for _, loc := range []clangast.SourceLocation{n.Kind.Loc, n.Kind.Range.Begin, n.Kind.Range.End} {
			note(loc.SpellingLoc)
			note(loc.ExpansionLoc)
		}
	})
	return sortedCounts(counts), nil
}

type declRecord struct {
	Kind       clangast.Kind
	Name       string
	Loc        clangast.SourceLocation
	IsImplicit bool
}

var declSchema = clangast.MustRecordOf[declRecord]()

type declEntry struct {
	ID   string `json:"id" yaml:"id"`
	Kind string `json:"kind" yaml:"kind"`
	Name string `json:"name" yaml:"name"`
	File string `json:"file,omitempty" yaml:"file,omitempty"`
	Line uint32 `json:"line,omitempty" yaml:"line,omitempty"`
	Col  uint32 `json:"col,omitempty" yaml:"col,omitempty"`
}

func declsCmd(opt clangast.DecodeOpt, r io.Reader) (any, error) {
	root, err := clangast.DecodeReader(declSchema, r, opt)
	if err != nil {
		return nil, err
	}
	var out []declEntry
	walk(&root, func(n *clangast.Node[declRecord]) {
		d := n.Kind
		if d.Name == "" || d.IsImplicit || !strings.HasSuffix(d.Kind.String(), "Decl") {
			return
		}
		e := declEntry{ID: n.ID.String(), Kind: d.Kind.String(), Name: d.Name}
		if loc := d.Loc.ExpansionLoc; loc != nil {
			e.File, e.Line, e.Col = loc.File.String(), loc.Line, loc.Col
		}
		out = append(out, e)
	})
	theLog.Debug("collected declarations", "count", len(out))
	return out, nil
}
