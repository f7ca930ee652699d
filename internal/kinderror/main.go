package kinderrorinternal

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/sublee/kinderror/internal/codefmt"
)

var Version string

// Config configures [Main].
type Config struct {
	// Dir is the path of the working directory. Output paths and excluded
	// files are relative to it.
	Dir string

	// Env is the environment variables to use when loading packages.
	Env []string

	// Tags is the comma-separated build tags to use in addition to
	// "kinderror".
	Tags string

	// Tests indicates whether to include test files.
	Tests bool

	// Output is the name of the file to generate in each package.
	Output string

	// Exclude is the glob patterns of files whose directives are skipped.
	Exclude []string

	// Logf reports progress if set.
	Logf func(format string, args ...any)
}

func (c Config) logf(format string, args ...any) {
	if c.Logf != nil {
		c.Logf(format, args...)
	}
}

// Main is the main entry point for kinderror. It is used by the command-line
// tool directly.
//
// ctx is the context for loading packages. If the loading is too slow, ctx can
// cancel the operation. patterns are the package patterns to process.
//
// It returns a map of output file paths to their contents. If any error occurs,
// it returns a non-nil error which joins every diagnostic sorted by message.
func Main(ctx context.Context, cfg Config, patterns []string) (map[string][]byte, error) {
	pkgs, err := load(ctx, cfg, patterns)
	if err != nil {
		return nil, err
	}

	outs := make(map[string][]byte)
	var errs error

	for _, pkg := range pkgs {
		cfg.logf("package %s (%d files)", pkg.PkgPath, len(pkg.Syntax))

		ke, err := New(pkg)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		ke.SetLogf(cfg.Logf)

		if err := ke.Exclude(cfg.Dir, cfg.Exclude); err != nil {
			return nil, err
		}

		if err := ke.Build(); err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		code := ke.Generate()
		if len(code) == 0 {
			continue
		}

		outDir := filepath.Dir(pkg.GoFiles[0])
		if rel, err := filepath.Rel(cfg.Dir, outDir); err == nil {
			outDir = rel
		}
		out := filepath.Join(outDir, cfg.Output)
		outs[out] = code
	}
	if errs != nil {
		// errs already contains comprehensive error messages. So we don't need
		// to attach another error message.
		return nil, reorderErrors(errs)
	}

	return outs, nil
}

// load loads packages. The "kinderror" build tag hides previously generated
// files. Type errors do not fail the loading because user code may refer to
// declarations which will be generated.
func load(ctx context.Context, c Config, patterns []string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode:       packages.NeedDeps | packages.NeedFiles | packages.NeedImports | packages.NeedName | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Context:    ctx,
		Dir:        c.Dir,
		Env:        c.Env,
		BuildFlags: []string{"-tags=kinderror"},
		Tests:      c.Tests,
	}
	if c.Tags != "" {
		cfg.BuildFlags[0] += "," + c.Tags
	}

	// Load the packages based on the provided patterns.
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found: %v", patterns)
	}

	// Check for errors in the loaded packages.
	var errs error
	for _, pkg := range pkgs {
		for _, err := range pkg.Errors {
			if err.Kind == packages.TypeError {
				c.logf("tolerate type error: %s", err.Msg)
				continue
			}

			if err.Pos == "" {
				errs = errors.Join(errs, errors.New(err.Msg))
				continue
			}

			path, rowcol, _ := strings.Cut(err.Pos, ":")
			if rel, relErr := filepath.Rel(c.Dir, path); relErr == nil {
				err.Pos = rel + ":" + rowcol
			}
			errs = errors.Join(errs, err)
		}
	}
	if errs != nil {
		return nil, errs
	}

	return pkgs, nil
}

func reorderErrors(errs error) error {
	if errs == nil {
		return nil
	}
	list := codefmt.Flatten(errs)

	// Sort errors by message
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Error() < list[j].Error()
	})
	return errors.Join(list...)
}
