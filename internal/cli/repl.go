package cli

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/zbalkan/fc/pkg/fc"
)

// REPL re-runs comparisons interactively: each line of input is two file
// paths plus the same switches the command line accepts, re-parsed with
// [ParseArgs] so a user never has to restate flags that never change
// between runs unless they want to.
type REPL struct {
	Out    *Output
	Base   fc.Config
	FSComp func(path1, path2 string, cfg fc.Config) (fc.Code, error)
	liner  *liner.State
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".fc_history")
}

// Run starts the prompt loop. It returns when the user quits or the
// input stream hits EOF (Ctrl-D).
func (r *REPL) Run() error {
	r.liner = liner.NewLiner()
	defer r.liner.Close()

	r.liner.SetCtrlCAborts(true)

	if f, err := os.Open(historyFile()); err == nil {
		_, _ = r.liner.ReadHistory(f)
		_ = f.Close()
	}

	defer func() {
		if f, err := os.Create(historyFile()); err == nil {
			_, _ = r.liner.WriteHistory(f)
			_ = f.Close()
		}
	}()

	r.Out.Println("fc interactive mode. Enter two paths and optional switches, or 'exit'.")

	for {
		line, err := r.liner.Prompt("fc> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				r.Out.Println("")

				return nil
			}

			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r.liner.AppendHistory(line)

		if line == "exit" || line == "quit" {
			return nil
		}

		r.runOnce(strings.Fields(line))
	}
}

func (r *REPL) runOnce(fields []string) {
	parsed, err := ParseArgs(fields)
	if err != nil {
		r.Out.ErrPrintln("error:", err)

		return
	}

	if len(parsed.Paths) != 2 {
		r.Out.ErrPrintln("error: expected two paths")

		return
	}

	cfg := r.Base

	if parsed.ModeSet {
		cfg.Mode = parsed.Mode
	}

	cfg.Flags = mergeFlags(r.Base.Flags, parsed)

	if parsed.ResyncLines != nil {
		cfg.ResyncLines = *parsed.ResyncLines
	}

	if parsed.BufferLines != nil {
		cfg.BufferLines = *parsed.BufferLines
	}

	cfg.Callback = func(ctx *fc.DiffContext, block fc.DiffBlock) {
		FormatBlock(r.Out, ctx, block, cfg.Flags.Has(fc.ShowLineNumbers))
	}

	code, err := r.FSComp(parsed.Paths[0], parsed.Paths[1], cfg)
	if err != nil {
		r.Out.ErrPrintln("error:", err)

		return
	}

	r.Out.Println(code)
}

func mergeFlags(base fc.Flags, parsed ParsedArgs) fc.Flags {
	flags := base

	if parsed.IgnoreCase {
		flags |= fc.IgnoreCase
	}

	if parsed.IgnoreWhitespace {
		flags |= fc.IgnoreWhitespace
	}

	if parsed.ShowLineNumbers {
		flags |= fc.ShowLineNumbers
	}

	if parsed.PreserveRawTabs {
		flags |= fc.PreserveRawTabs
	}

	return flags
}
