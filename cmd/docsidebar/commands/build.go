package commands

import (
	"context"
	"os"

	"git.home.luguber.info/inful/docsidebar/internal/build"
	derrors "git.home.luguber.info/inful/docsidebar/internal/errors"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	SidebarFlags `embed:""`
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	cfg, logger, err := loadConfig(g, root, &b.SidebarFlags)
	if err != nil {
		return err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return derrors.InternalError("resolve working directory", err)
	}

	svc := build.NewService(cfg, cwd).WithLogger(logger).WithStdout(stdout(g))
	_, err = svc.Run(context.Background())
	return err
}
