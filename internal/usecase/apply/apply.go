// Package apply orchestrates tagging across the bulk and dedicated API paths.
package apply

import (
	"context"
	"fmt"
	"io"

	"github.com/samber/lo"

	"github.com/mpyw/tagit/internal/apierr"
	"github.com/mpyw/tagit/internal/arn"
	"github.com/mpyw/tagit/internal/cli/output"
	"github.com/mpyw/tagit/internal/maputil"
	"github.com/mpyw/tagit/internal/model"
	"github.com/mpyw/tagit/internal/provider"
)

// MaxBatchSize is the Resource Groups Tagging API limit per TagResources call.
const MaxBatchSize = 20

// Error codes recorded for failures that do not carry an AWS API error code.
const (
	// CodeUnsupportedService marks resources routed to the dedicated path
	// for which no adapter is registered. No call is attempted for them.
	CodeUnsupportedService = "UnsupportedService"
	// CodeServiceSpecificAPIError marks dedicated-path failures without an
	// AWS API error code of their own.
	CodeServiceSpecificAPIError = "ServiceSpecificAPIError"
)

// BulkClient is the interface for the batch tagging path.
type BulkClient interface {
	provider.BulkTagger
}

// UseCase routes each resource to the appropriate tagging API and
// aggregates per-resource outcomes into a single report.
type UseCase struct {
	// Bulk handles batches of resources supported by the bulk tagging API.
	Bulk BulkClient
	// Dedicated maps service names to their service-specific adapters.
	Dedicated map[string]provider.ResourceTagger
	// Excluded overrides the set of services routed to the dedicated path.
	// Defaults to provider.UnsupportedByBulkAPI.
	Excluded maputil.Set[string]
	// Stdout receives progress and summary output.
	Stdout io.Writer
}

// Input holds input for the apply use case.
type Input struct {
	ARNs []string
	Tags map[string]string
}

// Execute tags every resource and returns the aggregated report.
// Failures are recorded per resource; the run continues past them.
func (u *UseCase) Execute(ctx context.Context, input Input) *model.Report {
	report := model.NewReport(len(input.ARNs))

	dedicated, bulk := provider.Split(input.ARNs, u.excluded())

	output.Printf(u.Stdout, "Tagging %d resource(s) with %d tag(s)\n", len(input.ARNs), len(input.Tags))

	for _, arnStr := range dedicated {
		u.tagDedicated(ctx, arnStr, input.Tags, report)
	}

	u.tagBulk(ctx, bulk, input.Tags, report)
	u.summarize(report)

	return report
}

func (u *UseCase) excluded() maputil.Set[string] {
	if u.Excluded != nil {
		return u.Excluded
	}

	return provider.UnsupportedByBulkAPI
}

func (u *UseCase) tagDedicated(
	ctx context.Context, arnStr string, tags map[string]string, report *model.Report,
) {
	service := arn.Service(arnStr)

	tagger, ok := u.Dedicated[service]
	if !ok {
		// Excluded from the bulk API but no adapter registered either.
		report.Fail(arnStr, model.FailureRecord{
			ErrorCode:    CodeUnsupportedService,
			ErrorMessage: fmt.Sprintf("no dedicated tagging API registered for service %q", service),
		})
		output.Failed(u.Stdout, arnStr, fmt.Errorf("unsupported service %q", service))

		return
	}

	if err := tagger.TagResource(ctx, arnStr, tags); err != nil {
		code, msg := apierr.Classify(err)
		if code == apierr.CodeUnknown {
			code = CodeServiceSpecificAPIError
		}

		report.Fail(arnStr, model.FailureRecord{ErrorCode: code, ErrorMessage: msg})
		output.Failed(u.Stdout, arnStr, err)

		return
	}

	report.AddSuccess(1)
	output.Success(u.Stdout, "Tagged %s via %s API", arnStr, service)
}

func (u *UseCase) tagBulk(
	ctx context.Context, arns []string, tags map[string]string, report *model.Report,
) {
	if len(arns) == 0 {
		return
	}

	chunks := lo.Chunk(arns, MaxBatchSize)
	output.Printf(u.Stdout, "Processing %d resource(s) in %d batch(es) of up to %d\n",
		len(arns), len(chunks), MaxBatchSize)

	for i, chunk := range chunks {
		failed, err := u.Bulk.TagBatch(ctx, chunk, tags)
		if err != nil {
			// The whole call failed; no partial success can be inferred.
			code, msg := apierr.Classify(err)
			for _, arnStr := range chunk {
				report.Fail(arnStr, model.FailureRecord{ErrorCode: code, ErrorMessage: msg})
			}

			output.Error(u.Stdout, "batch %d/%d failed: %s - %s", i+1, len(chunks), code, msg)

			continue
		}

		report.AddSuccess(len(chunk) - len(failed))

		for arnStr, rec := range failed {
			report.Fail(arnStr, rec)
		}

		output.Success(u.Stdout, "batch %d/%d: %d/%d resource(s) tagged",
			i+1, len(chunks), len(chunk)-len(failed), len(chunk))
	}
}

func (u *UseCase) summarize(report *model.Report) {
	w := output.New(u.Stdout)
	w.Separator()
	w.Field("Total", fmt.Sprintf("%d", report.Total))
	w.Field("Succeeded", fmt.Sprintf("%d", report.Succeeded))
	w.Field("Failed", fmt.Sprintf("%d", len(report.Failed)))

	for _, arnStr := range maputil.SortedKeys(report.Failed) {
		rec := report.Failed[arnStr]
		output.Failed(u.Stdout, arnStr, fmt.Errorf("%s - %s", rec.ErrorCode, rec.ErrorMessage))
	}
}
