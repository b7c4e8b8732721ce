// Package plan provides the plan command.
package plan

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/tagit/internal/cli/commands/internal"
	awsbulk "github.com/mpyw/tagit/internal/provider/aws/bulk"
	planusecase "github.com/mpyw/tagit/internal/usecase/plan"
)

// Runner executes the plan command.
type Runner struct {
	UseCase *planusecase.UseCase
	Stdout  io.Writer
}

// Options holds the options for the plan command.
type Options struct {
	ARNs        []string
	Tags        map[string]string
	ShowCurrent bool
}

// Command returns the plan command.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "plan",
		Usage: "Preview how resources would be tagged, without tagging",
		Description: `Show which API each resource would be routed to and how many bulk
batches the run would need. Nothing is tagged.

With --show-current, current tags are fetched for bulk-eligible resources
and a unified diff against the planned tag set is printed per resource.

EXAMPLES:
   tagit plan --resource-arns arn1,arn2,arn3 --tags env=prod
   tagit plan --resource-arns arn1,arn2 --tags env=prod --show-current`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "resource-arns",
				Usage:    "comma-separated resource ARNs",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "tags",
				Usage: "tags in key1=value1,key2=value2 format",
			},
			&cli.StringFlag{
				Name:  "tags-file",
				Usage: "INI file with key=value tag pairs (flag tags win on collision)",
			},
			&cli.BoolFlag{
				Name:  "show-current",
				Usage: "diff current tags against the planned tag set",
			},
		},
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	arns, err := cliinternal.ParseARNList(cmd.String("resource-arns"))
	if err != nil {
		return err
	}

	tags, err := cliinternal.BuildTags(cmd.String("tags"), cmd.String("tags-file"))
	if err != nil {
		return err
	}

	uc := &planusecase.UseCase{
		Stdout: cmd.Root().Writer,
	}

	if cmd.Bool("show-current") {
		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			return fmt.Errorf("failed to load AWS config: %w", err)
		}

		uc.Reader = awsbulk.NewFromConfig(cfg)
	}

	r := &Runner{
		UseCase: uc,
		Stdout:  cmd.Root().Writer,
	}

	return r.Run(ctx, Options{
		ARNs:        arns,
		Tags:        tags,
		ShowCurrent: cmd.Bool("show-current"),
	})
}

// Run executes the plan command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	return r.UseCase.Execute(ctx, planusecase.Input{
		ARNs:        opts.ARNs,
		Tags:        opts.Tags,
		ShowCurrent: opts.ShowCurrent,
	})
}
