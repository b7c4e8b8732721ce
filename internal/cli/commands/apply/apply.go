// Package apply provides the apply command.
package apply

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/mpyw/tagit/internal/api/stsapi"
	cliinternal "github.com/mpyw/tagit/internal/cli/commands/internal"
	"github.com/mpyw/tagit/internal/cli/output"
	"github.com/mpyw/tagit/internal/provider"
	awsappconfig "github.com/mpyw/tagit/internal/provider/aws/appconfig"
	awsbulk "github.com/mpyw/tagit/internal/provider/aws/bulk"
	awsresolver "github.com/mpyw/tagit/internal/provider/aws/resolver"
	awss3 "github.com/mpyw/tagit/internal/provider/aws/s3"
	applyusecase "github.com/mpyw/tagit/internal/usecase/apply"
)

// Runner executes the apply command.
type Runner struct {
	UseCase  *applyusecase.UseCase
	Identity stsapi.GetCallerIdentityAPI
	Stdout   io.Writer
}

// Options holds the options for the apply command.
type Options struct {
	ARNs    []string
	Tags    map[string]string
	Verbose bool
}

// Command returns the apply command.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "apply",
		Usage: "Apply tags to AWS resources",
		Description: `Apply a uniform set of tags to a list of resources identified by ARNs.

Resources supported by the Resource Groups Tagging API are tagged in batches
of up to 20 ARNs per call. Resources of services the bulk API cannot tag
(s3, appconfig, route53resolver) are tagged one by one through their
service-specific APIs. For S3 buckets, existing bucket tags are preserved;
new values win on key collision.

The command exits non-zero if any resource fails to tag; the remaining
resources are still processed.

EXAMPLES:
   tagit apply --resource-arns arn:aws:s3:::my-bucket --tags env=prod
   tagit apply --resource-arns arn1,arn2,arn3 --tags env=prod,team=backend
   tagit apply --resource-arns arn1,arn2 --tags-file tags.ini --tags env=prod`,
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
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "print the caller identity before tagging",
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
		output.Hint(cmd.Root().ErrWriter, "expected format: key1=value1,key2=value2")

		return err
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to load AWS config: %w", err)
	}

	stderr := cmd.Root().ErrWriter

	r := &Runner{
		UseCase: &applyusecase.UseCase{
			Bulk: awsbulk.NewFromConfig(cfg),
			Dedicated: map[string]provider.ResourceTagger{
				"s3":              awss3.NewFromConfig(cfg, stderr),
				"appconfig":       awsappconfig.NewFromConfig(cfg),
				"route53resolver": awsresolver.NewFromConfig(cfg),
			},
			Stdout: cmd.Root().Writer,
		},
		Identity: stsapi.NewFromConfig(cfg),
		Stdout:   cmd.Root().Writer,
	}

	return r.Run(ctx, Options{
		ARNs:    arns,
		Tags:    tags,
		Verbose: cmd.Bool("verbose"),
	})
}

// Run executes the apply command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	if opts.Verbose {
		r.printIdentity(ctx)
	}

	report := r.UseCase.Execute(ctx, applyusecase.Input{
		ARNs: opts.ARNs,
		Tags: opts.Tags,
	})

	if !report.OK() {
		return fmt.Errorf("%d of %d resource(s) failed to tag", len(report.Failed), report.Total)
	}

	return nil
}

// printIdentity shows who the tags will be applied as. Failures here are
// not fatal; tagging proceeds regardless.
func (r *Runner) printIdentity(ctx context.Context) {
	identity, err := r.Identity.GetCallerIdentity(ctx, &stsapi.GetCallerIdentityInput{})
	if err != nil {
		output.Warning(r.Stdout, "could not resolve caller identity: %v", err)

		return
	}

	w := output.New(r.Stdout)
	w.Field("Account", lo.FromPtr(identity.Account))
	w.Field("Caller", lo.FromPtr(identity.Arn))
	w.Separator()
}
