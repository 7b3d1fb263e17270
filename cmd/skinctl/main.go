// Command skinctl inspects resolved skins and maintains skin customization
// files from the command line.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

const usage = `usage: skinctl <command> [flags]

commands:
  list     print the resolved look of every style
  check    validate a skin customization file
  compact  rewrite a skin file without redundant entries
  view     interactive preview in the terminal
`

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "skinctl"})
	os.Exit(run(os.Args[1:], os.Stdout, logger))
}

func run(args []string, stdout io.Writer, logger *log.Logger) int {
	if len(args) == 0 {
		fmt.Fprint(stdout, usage)
		return 2
	}

	var err error
	switch args[0] {
	case "list":
		err = runList(args[1:], stdout)
	case "check":
		err = runCheck(args[1:], stdout)
	case "compact":
		err = runCompact(args[1:], stdout)
	case "view":
		err = runView(args[1:])
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprint(stdout, usage)
		logger.Error("unknown command", "command", args[0])
		return 2
	}
	if err != nil {
		logger.Error(args[0]+" failed", "err", err)
		return 1
	}
	return 0
}
