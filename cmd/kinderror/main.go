// Command kinderror generates error types for kind types annotated with
// //kinderror:generate. Run it through go generate:
//
//	//go:generate go run github.com/sublee/kinderror/cmd/kinderror
package main

import (
	"context"
	"flag"
	"fmt"
	"maps"
	"os"
	"os/signal"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/sys/unix"

	kinderrorinternal "github.com/sublee/kinderror/internal/kinderror"
)

var Version = "dev"

var (
	bFlag       = flag.String("b", "", "comma-separated build tags")
	tFlag       = flag.Bool("t", false, "include tests")
	oFlag       = flag.String("o", "kinderror_gen.go", "output file name")
	cFlag       = flag.String("c", "auto", "colorize (auto|always|never)")
	vFlag       = flag.Bool("v", false, "verbose")
	versionFlag = flag.Bool("version", false, "print version and exit")

	xFlag []string
)

func init() {
	kinderrorinternal.Version = Version

	flag.Func("x", "exclude files matching the glob pattern (repeatable, ** supported)", func(s string) error {
		xFlag = append(xFlag, s)
		return nil
	})
}

func main() {
	flag.Parse()

	if *versionFlag {
		fmt.Println("kinderror", Version)
		return
	}

	logger := NewLogger(os.Stderr, *vFlag)

	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	color := false
	switch *cFlag {
	case "auto":
		color = isatty()
	case "always":
		color = true
	case "never":
		color = false
	default:
		fmt.Fprintln(os.Stderr, "invalid -c value:", *cFlag)
		os.Exit(1)
	}

	patterns := flag.Args()
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := kinderrorinternal.Config{
		Dir:     wd,
		Env:     os.Environ(),
		Tags:    *bFlag,
		Tests:   *tFlag,
		Output:  *oFlag,
		Exclude: xFlag,
		Logf:    logger.Debug,
	}
	outs, err := kinderrorinternal.Main(ctx, cfg, patterns)
	if err != nil {
		message := err.Error()
		if color {
			message = colorize(message)
		}
		fmt.Fprintln(os.Stderr, message)
		os.Exit(1)
	}

	for _, out := range slices.Sorted(maps.Keys(outs)) {
		if err := os.WriteFile(out, outs[out], 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if relOut, err := filepath.Rel(wd, out); err == nil {
			out = relOut
		}
		logger.Info("generated %s", out)
	}
}

// isatty reports whether the program is running in a terminal. If it is true,
// we can use ANSI color codes.
func isatty() bool {
	_, err := unix.IoctlGetWinsize(int(os.Stderr.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

var (
	rePos = regexp.MustCompile(`(?m)^[^\s:]+:\d+:\d+:`)
	reTab = regexp.MustCompile(`(?m)^\t.+`)
)

// colorize adds ANSI color codes to the message. Positions are red and
// indented notes are dim.
func colorize(message string) string {
	const (
		red   = "\033[31m"
		dim   = "\033[2m"
		reset = "\033[0m"
	)
	message = rePos.ReplaceAllStringFunc(message, func(s string) string {
		return red + s + reset
	})
	message = reTab.ReplaceAllStringFunc(message, func(s string) string {
		return dim + strings.TrimRight(s, " ") + reset
	})
	return message
}
