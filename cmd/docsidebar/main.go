package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docsidebar/cmd/docsidebar/commands"
	derrors "git.home.luguber.info/inful/docsidebar/internal/errors"
	"git.home.luguber.info/inful/docsidebar/internal/version"
)

func main() {
	cli := &commands.CLI{}
	global := &commands.Global{Stdout: os.Stdout}
	parser := kong.Parse(cli,
		kong.Name("docsidebar"),
		kong.Description("Generate sidebar navigation from a documentation directory tree."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	if err := parser.Run(global, cli); err != nil {
		adapter := derrors.NewCLIErrorAdapter(cli.Verbose, slog.Default())
		os.Exit(adapter.Report(err, os.Stderr))
	}
}
