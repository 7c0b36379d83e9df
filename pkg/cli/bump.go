package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/farrier/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func cmdBump() *cli.Command {
	var (
		traceCfg config.Trace
		dir      string
		library  string
		version  string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "dir",
			Aliases:     []string{"d"},
			Usage:       "Directory holding the pom.xml to rewrite",
			Value:       ".",
			Destination: &dir,
		},
		&cli.StringFlag{
			Name:        "library",
			Aliases:     []string{"l"},
			Usage:       "Library artifact name, e.g. spring-core",
			Required:    true,
			Destination: &library,
		},
		&cli.StringFlag{
			Name:        "version",
			Usage:       "Version to set",
			Required:    true,
			Destination: &version,
		},
	}
	flags = append(flags, traceCfg.Flags()...)

	return &cli.Command{
		Name:    "bump",
		Aliases: []string{"b"},
		Usage:   "Rewrite a dependency version in pom.xml",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			manifestUC := buildManifestUseCase(traceCfg.Sink())

			bump, err := manifestUC.UpdateVersion(ctx, dir, library, version)
			if err != nil {
				return err
			}

			color.Green("Updated %s from %s to %s", bump.Artifact, bump.OldVersion, bump.NewVersion)
			fmt.Printf("manifest: %s\n", bump.Path)
			return nil
		},
	}
}
