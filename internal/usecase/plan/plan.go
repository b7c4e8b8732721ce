// Package plan previews how resources would be routed without tagging them.
package plan

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/mpyw/tagit/internal/arn"
	"github.com/mpyw/tagit/internal/cli/output"
	"github.com/mpyw/tagit/internal/maputil"
	"github.com/mpyw/tagit/internal/provider"
	"github.com/mpyw/tagit/internal/usecase/apply"
)

// UseCase prints the routing decision for each resource, and optionally a
// diff between current and planned tags for bulk-eligible resources.
type UseCase struct {
	// Reader fetches current tags. Required only when Input.ShowCurrent is set.
	Reader provider.TagReader
	// Excluded overrides the set of services routed to the dedicated path.
	// Defaults to provider.UnsupportedByBulkAPI.
	Excluded maputil.Set[string]
	// Stdout receives the plan output.
	Stdout io.Writer
}

// Input holds input for the plan use case.
type Input struct {
	ARNs []string
	Tags map[string]string
	// ShowCurrent fetches current tags for bulk-eligible resources and
	// prints a unified diff against the planned tag set.
	ShowCurrent bool
}

// Execute prints the plan. Nothing is tagged.
func (u *UseCase) Execute(ctx context.Context, input Input) error {
	dedicated, bulk := provider.Split(input.ARNs, u.excluded())

	w := output.New(u.Stdout)
	w.Field("Resources", fmt.Sprintf("%d", len(input.ARNs)))
	w.Field("Tags", formatTagLine(input.Tags))
	w.Separator()

	for _, arnStr := range dedicated {
		output.Printf(u.Stdout, "%s -> %s API (dedicated)\n", arnStr, arn.Service(arnStr))
	}

	if len(bulk) > 0 {
		batches := len(lo.Chunk(bulk, apply.MaxBatchSize))
		output.Printf(u.Stdout, "%d resource(s) -> Resource Groups Tagging API in %d batch(es)\n",
			len(bulk), batches)

		for _, arnStr := range bulk {
			output.Printf(u.Stdout, "  %s\n", arnStr)
		}
	}

	if input.ShowCurrent && len(bulk) > 0 {
		return u.showCurrent(ctx, bulk, input.Tags)
	}

	return nil
}

func (u *UseCase) excluded() maputil.Set[string] {
	if u.Excluded != nil {
		return u.Excluded
	}

	return provider.UnsupportedByBulkAPI
}

func (u *UseCase) showCurrent(ctx context.Context, arns []string, tags map[string]string) error {
	current, err := u.Reader.CurrentTags(ctx, arns)
	if err != nil {
		return fmt.Errorf("failed to fetch current tags: %w", err)
	}

	w := output.New(u.Stdout)
	w.Separator()

	for _, arnStr := range arns {
		existing := current[arnStr]
		planned := lo.Assign(existing, tags)

		diff := output.Diff("current", "planned", formatTagBlock(existing), formatTagBlock(planned))
		if diff == "" {
			output.Printf(u.Stdout, "%s: no changes\n", arnStr)

			continue
		}

		output.Println(u.Stdout, arnStr)
		output.Println(u.Stdout, output.Indent(diff, "  "))
	}

	return nil
}

// formatTagLine renders tags as a single "k=v, k=v" line in key order.
func formatTagLine(tags map[string]string) string {
	pairs := make([]string, 0, len(tags))
	for _, k := range maputil.SortedKeys(tags) {
		pairs = append(pairs, fmt.Sprintf("%s=%s", k, tags[k]))
	}

	return strings.Join(pairs, ", ")
}

// formatTagBlock renders tags one "k=v" per line in key order, for diffing.
func formatTagBlock(tags map[string]string) string {
	var b strings.Builder
	for _, k := range maputil.SortedKeys(tags) {
		fmt.Fprintf(&b, "%s=%s\n", k, tags[k])
	}

	return b.String()
}
