// Package cmd implements the clc command line interface.
package cmd

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c1ph3rc4t/clc/internal/category"
	"github.com/c1ph3rc4t/clc/internal/config"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// depthFlagRe matches -dN depth flags with N >= 1
var depthFlagRe = regexp.MustCompile(`^-d([1-9][0-9]*)$`)

// action is what a parsed argument list asks clc to do
type action int

const (
	actionCount action = iota
	actionHelp
	actionVersion
)

// options holds the traversal and output settings resolved from the
// argument list.
type options struct {
	hidden      bool
	git         bool
	cache       bool
	verbose     bool
	maxDepth    int
	output      string
	categories  []string
	extLiterals []string
}

// NewRootCommand creates and returns the root cobra command for clc.
//
// Flag parsing is disabled because the clc grammar is not flag-shaped:
// `-dN` carries its value in the flag name, `-h` means hidden rather than
// help, and category/extension selectors interleave with options in any
// order. The arguments are classified by their first byte instead.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clc [OPTION | CATEGORY | .EXT]...",
		Short: "Count non-empty lines of code",
		Long: `clc counts the total non-empty lines of code in files matching
given categories or file extensions, recursively from the working
directory.`,
		DisableFlagParsing: true,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}

	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	opts, act, err := parseArgs(args)
	if err != nil {
		return err
	}

	switch act {
	case actionHelp:
		fmt.Fprintln(cmd.OutOrStdout(), genHelp(helpTable()))
		return nil
	case actionVersion:
		fmt.Fprintf(cmd.OutOrStdout(), "clc %s\n", Version)
		return nil
	}

	return runCount(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// parseArgs classifies tokens (flag / extension literal / category) and
// resolves the flags. --help and --version short-circuit the run.
func parseArgs(args []string) (*options, action, error) {
	opts := &options{}
	var flags []string

	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "-"):
			flags = append(flags, arg)
		case strings.HasPrefix(arg, "."):
			opts.extLiterals = append(opts.extLiterals, arg)
		default:
			opts.categories = append(opts.categories, arg)
		}
	}

	for _, flag := range flags {
		switch flag {
		case "--help":
			return opts, actionHelp, nil
		case "-v", "--version":
			return opts, actionVersion, nil
		case "-h", "--hidden":
			opts.hidden = true
		case "-g", "--git":
			opts.git = true
		case "--cache":
			opts.cache = true
		case "--verbose":
			opts.verbose = true
		default:
			if m := depthFlagRe.FindStringSubmatch(flag); m != nil {
				n, err := strconv.Atoi(m[1])
				if err != nil {
					return nil, 0, usageErrorf("invalid depth in flag %q", flag)
				}
				opts.maxDepth = n
				continue
			}
			if strings.HasPrefix(flag, "-d") {
				return nil, 0, usageErrorf("invalid depth in flag %q", flag)
			}
			if val, ok := strings.CutPrefix(flag, "--output="); ok {
				if val == "" {
					return nil, 0, usageErrorf("missing file name in %q", flag)
				}
				opts.output = val
				continue
			}
			return nil, 0, usageErrorf("flag %q not found", flag)
		}
	}

	return opts, actionCount, nil
}

// usageErrorf builds an argument error carrying the --help hint.
func usageErrorf(format string, args ...any) error {
	return fmt.Errorf(format+"\nTry 'clc --help' for more information on how to use clc", args...)
}

// helpTable returns the merged category table for help output, falling back
// to the builtin table when the user config cannot be loaded.
func helpTable() []category.Category {
	path, err := config.DefaultConfigPath()
	if err != nil {
		return category.Builtin()
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return category.Builtin()
	}
	return cfg.CategoryTable()
}
