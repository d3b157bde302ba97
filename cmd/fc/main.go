// Command fc compares two files and reports how they differ, replicating
// the classic Windows fc utility's switch grammar and exit codes.
package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/zbalkan/fc/internal/cli"
)

func main() {
	environ := os.Environ()
	env := make(map[string]string, len(environ))

	for _, e := range environ {
		if k, v, ok := strings.Cut(e, "="); ok {
			env[k] = v
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	exitCode := cli.Run(os.Stdout, os.Stderr, os.Args[1:], env, sigCh)

	os.Exit(exitCode)
}
