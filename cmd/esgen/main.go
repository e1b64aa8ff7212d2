// Copyright 2026 The esgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command esgen prints a parsed JavaScript/TypeScript/JSX program (as
// ESTree-shaped JSON, decoded by internal/astjson) back out as source
// text, optionally alongside a source map. Given more than one input
// file it runs in batch mode: every file is processed even if an
// earlier one fails, and every failure is reported before exiting.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/esgen/esgen"
	"github.com/esgen/esgen/ast"
	"github.com/esgen/esgen/internal/astjson"
	"github.com/esgen/esgen/internal/comments"
	"github.com/esgen/esgen/internal/diagnostics"
)

// yamlConfig is the shape of a -config file: the same knobs as the CLI
// flags, for callers that would rather check in one options file than
// repeat flags on every invocation, loaded with gopkg.in/yaml.v3 the same
// way the teacher's compiler tests load their YAML fixtures.
type yamlConfig struct {
	Minify      bool   `yaml:"minify"`
	SingleQuote bool   `yaml:"singleQuote"`
	Legal       string `yaml:"legal"`
}

func usage() {
	fmt.Fprint(os.Stderr, `Usage: esgen [options] <file>...

 -o <file>          output file name (default stdout); with more than one
                     input file, the output directory instead
 -config <file>     YAML options file (minify, singleQuote, legal); flags given
                     explicitly on the command line take priority over it
 -minify            print in minified mode
 -single-quote      prefer single-quoted string literals
 -map <file>        also write a source map to <file> (single input file only)
 -source <file>     original source text to map against (required with -map)
 -legal <mode>      legal-comment disposition: none, inline, eof, linked, external (default none)
 -legal-path <file> sidecar file for -legal linked/external (default: <output>.LEGAL-<digest>.txt);
                     with more than one input file, a per-file default is used instead
 -max-errors <n>    stop a multi-file run once more than n files have failed, 0 for unlimited (default 0)

`)
}

func main() {
	fs := flag.NewFlagSet("esgen", flag.ContinueOnError)
	fs.Usage = usage
	fs.SetOutput(io.Discard)

	outputFile := fs.String("o", "", "")
	configFile := fs.String("config", "", "")
	minify := fs.Bool("minify", false, "")
	singleQuote := fs.Bool("single-quote", false, "")
	mapFile := fs.String("map", "", "")
	sourceFile := fs.String("source", "", "")
	legal := fs.String("legal", "none", "")
	legalPath := fs.String("legal-path", "", "")
	maxErrors := fs.Int("max-errors", 0, "")

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			usage()
			os.Exit(0)
		}
		usage()
		exit(2, err)
	}

	files := fs.Args()
	if len(files) == 0 {
		usage()
		exit(2, fmt.Errorf("need at least one file name as argument"))
	}
	if len(files) > 1 && *mapFile != "" {
		exit(2, fmt.Errorf("-map only applies to a single input file"))
	}

	// A -config file supplies defaults; any flag given explicitly on the
	// command line (tracked via fs.Visit, captured before the config file
	// is applied) still wins over it.
	if *configFile != "" {
		explicit := make(map[string]bool)
		fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

		cfgData, err := os.ReadFile(*configFile)
		if err != nil {
			exit(1, err)
		}
		var cfg yamlConfig
		if err := yaml.Unmarshal(cfgData, &cfg); err != nil {
			exit(1, fmt.Errorf("parse config %s: %w", *configFile, err))
		}
		if !explicit["minify"] {
			*minify = cfg.Minify
		}
		if !explicit["single-quote"] {
			*singleQuote = cfg.SingleQuote
		}
		if !explicit["legal"] && cfg.Legal != "" {
			*legal = cfg.Legal
		}
	}

	disposition, err := parseLegalMode(*legal)
	if err != nil {
		exit(2, err)
	}

	cfg := &runConfig{
		minify:      *minify,
		singleQuote: *singleQuote,
		mapFile:     *mapFile,
		sourceFile:  *sourceFile,
		legal:       disposition,
		legalPath:   *legalPath,
		batch:       len(files) > 1,
	}

	diag := diagnostics.NewList(*maxErrors)
	runAll(diag, cfg, files, *outputFile)
	if diag.HasErrors() {
		for _, err := range diag.Errors() {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// runAll processes every file, recording each failure in diag instead of
// exiting, and stops early once diag.Add panics past -max-errors. The
// recover lives here, one level above the loop, so control always
// returns to main to report whatever diag collected before the abort -
// the same shape as asm.Compiler.compile recovering errCancelCompilation
// around its own instruction-expansion loop.
func runAll(diag *diagnostics.List, cfg *runConfig, files []string, outputFile string) {
	defer diag.CatchAbort()
	for _, file := range files {
		out := outputFile
		if cfg.batch {
			out = filepath.Join(outputDirOrDefault(outputFile), batchOutputName(file))
		}
		diag.Add(file, runFile(cfg, file, out))
	}
}

// runConfig holds the options shared by every file in a run, parsed once
// from flags and an optional -config file.
type runConfig struct {
	minify      bool
	singleQuote bool
	mapFile     string
	sourceFile  string
	legal       comments.LegalDisposition
	legalPath   string
	batch       bool
}

// runFile decodes, prints, and writes one input file, returning any
// failure instead of exiting, so a batch run can keep going past it.
func runFile(cfg *runConfig, file, outputFile string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	prog, err := astjson.Decode(data)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	opts := esgen.DefaultOptions()
	opts.Minify = cfg.minify
	if cfg.singleQuote {
		opts.SingleQuote = true
	}
	if cfg.mapFile != "" {
		opts.SourceMapPath = cfg.mapFile
	}
	opts.Comments.Legal = cfg.legal

	var sidecarPath string
	var legalSet []*ast.Comment
	if cfg.legal == comments.LegalLinked || cfg.legal == comments.LegalExternal {
		legalSet = collectLegalComments(prog)
		sidecarPath = cfg.legalPath
		if sidecarPath == "" || cfg.batch {
			base := outputFile
			if base == "" {
				base = file
			}
			sidecarPath = comments.SidecarFileName(base, legalSet)
		}
		opts.Comments.LinkedPath = sidecarPath
	}

	cg := esgen.New().WithOptions(opts)
	if cfg.mapFile != "" {
		if cfg.sourceFile == "" {
			return fmt.Errorf("-map requires -source <original file>")
		}
		source, err := os.ReadFile(cfg.sourceFile)
		if err != nil {
			return err
		}
		cg = cg.WithSourceText(string(source))
	}

	res, err := cg.Build(prog)
	if err != nil {
		return fmt.Errorf("codegen: %w", err)
	}

	output := os.Stdout
	if outputFile != "" {
		output, err = os.OpenFile(outputFile, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0644)
		if err != nil {
			return err
		}
		defer output.Close()
	}
	if _, err := io.WriteString(output, res.Code); err != nil {
		return err
	}

	if cfg.mapFile != "" && res.Map != nil {
		mapData, err := json.Marshal(res.Map)
		if err != nil {
			return err
		}
		if err := os.WriteFile(cfg.mapFile, mapData, 0644); err != nil {
			return err
		}
	}

	if sidecarPath != "" {
		body := comments.RenderSidecar(comments.DedupLegalComments(legalSet))
		if err := os.WriteFile(sidecarPath, []byte(body), 0644); err != nil {
			return err
		}
	}
	return nil
}

// outputDirOrDefault returns dir, or "." when the -o flag was left empty
// in batch mode (no single output file name makes sense for many inputs).
func outputDirOrDefault(dir string) string {
	if dir == "" {
		return "."
	}
	return dir
}

// batchOutputName derives a batch-mode output file name from an input
// file name: its base name with the original extension, if any, swapped
// for ".js".
func batchOutputName(input string) string {
	base := filepath.Base(input)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base + ".js"
}

// collectLegalComments returns prog's legal-marked comments in source
// order, the same filter State.preformat applies internally, so the CLI
// can compute the LegalLinked banner path before Build runs.
func collectLegalComments(prog *ast.Program) []*ast.Comment {
	var out []*ast.Comment
	for _, c := range prog.Comments {
		if c.Legal {
			out = append(out, c)
		}
	}
	return out
}

func parseLegalMode(s string) (comments.LegalDisposition, error) {
	switch s {
	case "none":
		return comments.LegalNone, nil
	case "inline":
		return comments.LegalInline, nil
	case "eof":
		return comments.LegalEOF, nil
	case "linked":
		return comments.LegalLinked, nil
	case "external":
		return comments.LegalExternal, nil
	default:
		return 0, fmt.Errorf("unknown -legal mode %q", s)
	}
}

func exit(code int, err error) {
	if err == nil {
		os.Exit(0)
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(code)
}
