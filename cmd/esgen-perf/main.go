// Copyright 2026 The esgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command esgen-perf is a collaborator benchmarking tool, not part of the
// core printer: it reads an already-parsed program (as ESTree-shaped
// JSON, the boundary documented by internal/astjson), runs a warm-up
// codegen, then times N repeated codegens, and prints a small throughput
// report.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/esgen/esgen"
	"github.com/esgen/esgen/internal/astjson"
)

func usage() {
	fmt.Fprint(os.Stderr, `Usage: esgen-perf -f <file> [-n <iterations>] [--minify]

 -f, --file <path>        input file (ESTree-shaped JSON AST)
 -n, --iterations <N>     number of timed codegens (default 100)
 --minify                 print in minified mode

`)
}

func main() {
	fs := flag.NewFlagSet("esgen-perf", flag.ContinueOnError)
	fs.Usage = usage
	fs.SetOutput(io.Discard)

	var file string
	fs.StringVar(&file, "f", "", "")
	fs.StringVar(&file, "file", "", "")
	var iterations int
	fs.IntVar(&iterations, "n", 100, "")
	fs.IntVar(&iterations, "iterations", 100, "")
	minify := fs.Bool("minify", false, "")

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			usage()
			os.Exit(0)
		}
		usage()
		exit(2, err)
	}
	if file == "" {
		exit(2, fmt.Errorf("missing required -f/--file"))
	}
	if iterations == 0 {
		exit(2, fmt.Errorf("-n/--iterations must be nonzero"))
	}

	data, err := os.ReadFile(file)
	if err != nil {
		exit(1, err)
	}
	prog, err := astjson.Decode(data)
	if err != nil {
		exit(1, fmt.Errorf("parse %s: %w", file, err))
	}

	opts := esgen.DefaultOptions()
	opts.Minify = *minify

	// Warm-up: absorbs one-time allocator/branch-predictor costs before
	// the timed loop, the same shape as a Go benchmark's b.ResetTimer
	// pattern.
	res, err := esgen.New().WithOptions(opts).Build(prog)
	if err != nil {
		exit(1, fmt.Errorf("codegen %s: %w", file, err))
	}
	warmupBytes := len(res.Code)

	start := time.Now()
	for i := 0; i < iterations; i++ {
		if _, err := esgen.New().WithOptions(opts).Build(prog); err != nil {
			exit(1, fmt.Errorf("codegen %s: %w", file, err))
		}
	}
	elapsed := time.Since(start)
	avgNS := float64(elapsed.Nanoseconds()) / float64(iterations)
	throughputMiBs := (float64(warmupBytes) / (1024 * 1024)) / (avgNS / 1e9)

	fmt.Printf("file: %s\n", file)
	fmt.Printf("iterations: %d\n", iterations)
	fmt.Printf("minify: %v\n", *minify)
	fmt.Printf("warmup_bytes: %d\n", warmupBytes)
	fmt.Printf("avg_ns: %.0f\n", avgNS)
	fmt.Printf("throughput_mib_s: %.2f\n", throughputMiBs)
}

func exit(code int, err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(code)
}
