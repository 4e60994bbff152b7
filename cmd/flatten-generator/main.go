// Package main provides the CLI entrypoint for flatten-generator.
//
// flatten-generator is a compile-time struct-schema expander:
//   - Loads ordered struct definitions from a YAML schema file
//   - Optionally seeds the registry from compiled Go packages
//   - Replaces flatten-marked fields with the flat field list of their
//     target type
//   - Generates the resulting flat structs as Go source
package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/jessevdk/go-flags"

	"flatten-generator/internal/analyze"
	"flatten-generator/internal/flatten"
	"flatten-generator/internal/gen"
	"flatten-generator/internal/registry"
	"flatten-generator/internal/schema"
)

type options struct {
	Schema        string   `short:"s" long:"schema" description:"YAML schema file" required:"true"`
	Pkgs          []string `short:"p" long:"pkg" description:"Go package pattern to seed the registry from (repeatable)"`
	Out           string   `short:"o" long:"out" description:"output directory for generated Go source"`
	PkgName       string   `long:"package" description:"package clause of generated source" default:"flattened"`
	Lenient       bool     `long:"lenient" description:"skip failed definitions and report them instead of aborting"`
	AutoOrder     bool     `long:"auto-order" description:"dependency-order definitions before the pass"`
	OverwriteDups bool     `long:"overwrite-dups" description:"last-write-wins on duplicate type names"`
	Verbose       bool     `short:"v" long:"verbose" description:"dump resolved registry entries"`
}

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	var opts options

	if _, err := flags.Parse(&opts); err != nil {
		return exitUsage
	}

	defs, err := schema.LoadDefinitions(opts.Schema)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return exitUsage
	}

	policy := registry.PolicyReject
	if opts.OverwriteDups {
		policy = registry.PolicyOverwrite
	}

	reg := registry.NewWithPolicy(policy)

	if len(opts.Pkgs) > 0 {
		analyzer := analyze.NewAnalyzer()
		if err := analyzer.LoadPackages(opts.Pkgs...); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			return exitUsage
		}

		seeded, err := analyzer.Seed(reg)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			return exitError
		}

		if opts.Verbose {
			fmt.Fprintf(os.Stderr, "seeded %d types from %v\n", seeded, opts.Pkgs)
		}
	}

	if opts.AutoOrder {
		defs, err = flatten.DependencyOrder(defs)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			return exitError
		}
	}

	mode := flatten.ModeStrict
	if opts.Lenient {
		mode = flatten.ModeLenient
	}

	engine := flatten.New(reg)

	result, err := engine.Run(defs, mode)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return exitError
	}

	for _, d := range result.Diags.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", d)
	}

	for _, d := range result.Diags.Errors {
		fmt.Fprintln(os.Stderr, "error:", d)
	}

	if opts.Verbose {
		spew.Fdump(os.Stderr, reg.Entries())
	}

	if opts.Out != "" {
		file, err := gen.NewGenerator(opts.PkgName).Render(result.Resolved)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			return exitError
		}

		if err := gen.WriteFiles([]gen.GeneratedFile{*file}, opts.Out); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			return exitError
		}
	}

	if result.Diags.HasErrors() {
		return exitError
	}

	return exitOK
}
