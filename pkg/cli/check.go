package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/farrier/pkg/cli/config"
	"github.com/m-mizutani/farrier/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

func cmdCheck() *cli.Command {
	var (
		llmCfg    config.LLM
		scanCfg   config.Scan
		traceCfg  config.Trace
		notifyCfg config.Notify
		dir       string
		library   string
		from      string
		to        string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "dir",
			Aliases:     []string{"d"},
			Usage:       "Root of the source tree to scan",
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
			Name:        "from",
			Usage:       "Version currently in use",
			Required:    true,
			Destination: &from,
		},
		&cli.StringFlag{
			Name:        "to",
			Usage:       "Version to upgrade to",
			Required:    true,
			Destination: &to,
		},
	}
	flags = append(flags, llmCfg.Flags()...)
	flags = append(flags, scanCfg.Flags()...)
	flags = append(flags, traceCfg.Flags()...)
	flags = append(flags, notifyCfg.Flags()...)

	return &cli.Command{
		Name:    "check",
		Aliases: []string{"c"},
		Usage:   "Run a compatibility check without an MCP client",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			compatUC, err := buildCompatUseCase(ctx, &llmCfg, &scanCfg, traceCfg.Sink(), notifyCfg.Notifier())
			if err != nil {
				return err
			}

			report, err := compatUC.CheckCompatibility(ctx, &model.CompatibilityRequest{
				Dir:         dir,
				Library:     library,
				FromVersion: from,
				ToVersion:   to,
			})
			if err != nil {
				return err
			}

			printReport(report)
			return nil
		},
	}
}

// printReport renders a report for terminal use. Logs go to stderr, so
// stdout carries only the result and stays pipeable.
func printReport(report *model.CompatibilityReport) {
	title := color.New(color.FgCyan, color.Bold)
	title.Printf("%s %s -> %s\n", report.Library, report.FromVersion, report.ToVersion)
	fmt.Printf("check id: %s\n\n", report.CheckID)

	color.Yellow("Files inspected:")
	for _, candidate := range report.Candidates {
		fmt.Printf("  - %s (%s)\n", candidate.Path, candidate.Reason)
	}

	fmt.Printf("\n%s\n", report.Analysis)
}
