package cli

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/zbalkan/fc/internal/config"
	"github.com/zbalkan/fc/pkg/fc"
)

// Exit codes, per the classic fc contract: 0 identical, 1 different, 2
// comparison error (io/memory), [ExitUsage] everything else (malformed
// switches, a bad config file).
const (
	ExitOK        = 0
	ExitDifferent = 1
	ExitError     = 2
	ExitUsage     = 255
)

// Run is the process entry point. sigCh may be nil if signal handling is
// not needed (tests).
func Run(out, errOut io.Writer, args []string, env map[string]string, sigCh <-chan os.Signal) int {
	o := NewOutput(out, errOut)

	parsed, err := ParseArgs(args)
	if err != nil {
		o.ErrPrintln("error:", err)
		printUsage(o)

		return ExitUsage
	}

	opts, err := config.Load(parsed.ConfigPath, env)
	if err != nil {
		o.ErrPrintln("error:", err)

		return ExitUsage
	}

	cfg := buildConfig(parsed, opts)

	var code fc.Code

	if len(parsed.Paths) == 2 {
		cfg.Callback = func(ctx *fc.DiffContext, block fc.DiffBlock) {
			FormatBlock(o, ctx, block, cfg.Flags.Has(fc.ShowLineNumbers))
		}

		code, err = runComparison(parsed.Paths[0], parsed.Paths[1], cfg, sigCh, o)
	}

	if err != nil {
		return reportError(o, err)
	}

	if parsed.Interactive {
		repl := &REPL{Out: o, Base: cfg, FSComp: fc.Compare}
		if err := repl.Run(); err != nil {
			o.ErrPrintln("error:", err)

			return ExitError
		}
	}

	if len(parsed.Paths) != 2 {
		return ExitOK
	}

	if code == fc.Different {
		return ExitDifferent
	}

	return ExitOK
}

func runComparison(path1, path2 string, cfg fc.Config, sigCh <-chan os.Signal, o *Output) (fc.Code, error) {
	type result struct {
		code fc.Code
		err  error
	}

	done := make(chan result, 1)

	go func() {
		code, err := fc.Compare(path1, path2, cfg)
		done <- result{code, err}
	}()

	select {
	case r := <-done:
		return r.code, r.err
	case <-sigCh:
		o.ErrPrintln("interrupted; fc has no cancellation, waiting for the in-flight comparison")
	}

	select {
	case r := <-done:
		return r.code, r.err
	case <-time.After(5 * time.Second):
		o.ErrPrintln("comparison did not finish within the grace period")

		return fc.IOError, errors.New("interrupted")
	}
}

func reportError(o *Output, err error) int {
	var fcErr *fc.Error
	if errors.As(err, &fcErr) {
		o.ErrPrintln("error:", fcErr)

		if fcErr.Code == fc.InvalidParameter {
			return ExitUsage
		}

		return ExitError
	}

	o.ErrPrintln("error:", err)

	return ExitError
}

// buildConfig merges built-in defaults, config-file options, and parsed
// command-line switches into an fc.Config, in that precedence order
// (switches always win).
func buildConfig(parsed ParsedArgs, opts config.Options) fc.Config {
	cfg := fc.Config{
		Mode:        fc.Auto,
		ResyncLines: fc.DefaultResyncLines,
		BufferLines: fc.DefaultBufferLines,
		Interactive: parsed.Interactive,
		ConfigPath:  parsed.ConfigPath,
	}

	if opts.Mode != nil {
		if m, ok := parseMode(*opts.Mode); ok {
			cfg.Mode = m
		}
	}

	if opts.ResyncLines != nil {
		cfg.ResyncLines = *opts.ResyncLines
	}

	if opts.BufferLines != nil {
		cfg.BufferLines = *opts.BufferLines
	}

	var flags fc.Flags
	if boolOpt(opts.IgnoreCase) {
		flags |= fc.IgnoreCase
	}

	if boolOpt(opts.IgnoreWhitespace) {
		flags |= fc.IgnoreWhitespace
	}

	if boolOpt(opts.ShowLineNumbers) {
		flags |= fc.ShowLineNumbers
	}

	if boolOpt(opts.PreserveRawTabs) {
		flags |= fc.PreserveRawTabs
	}

	cfg.Flags = flags

	if parsed.ModeSet {
		cfg.Mode = parsed.Mode
	}

	if parsed.ResyncLines != nil {
		cfg.ResyncLines = *parsed.ResyncLines
	}

	if parsed.BufferLines != nil {
		cfg.BufferLines = *parsed.BufferLines
	}

	cfg.Flags = mergeFlags(cfg.Flags, parsed)

	return cfg
}

func boolOpt(b *bool) bool {
	return b != nil && *b
}

func parseMode(s string) (fc.Mode, bool) {
	switch s {
	case "text-ascii":
		return fc.TextASCII, true
	case "text-unicode":
		return fc.TextUnicode, true
	case "binary":
		return fc.Binary, true
	case "auto":
		return fc.Auto, true
	default:
		return fc.Auto, false
	}
}

func printUsage(o *Output) {
	o.ErrPrintln("usage: fc [/B] [/C] [/W] [/L] [/U] [/N] [/T] [/I] [/<n>] [/LB<n>] [/CONFIG:<path>] <file1> <file2>")
}
