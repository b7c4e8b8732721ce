// Package provider defines provider-agnostic interfaces for tagging resources.
package provider

import (
	"context"

	"github.com/mpyw/tagit/internal/arn"
	"github.com/mpyw/tagit/internal/maputil"
	"github.com/mpyw/tagit/internal/model"
)

// ResourceTagger tags a single resource through a service-specific API.
type ResourceTagger interface {
	// TagResource applies tags to the resource identified by arn.
	TagResource(ctx context.Context, arn string, tags map[string]string) error
}

// BulkTagger tags a batch of resources in a single call.
type BulkTagger interface {
	// TagBatch applies tags to every ARN, returning per-resource failures.
	// An error means the whole call failed and nothing can be assumed tagged.
	TagBatch(ctx context.Context, arns []string, tags map[string]string) (map[string]model.FailureRecord, error)
}

// TagReader lists the current tags of resources.
type TagReader interface {
	// CurrentTags returns the existing tags for the given ARNs, keyed by ARN.
	// ARNs the API does not report (e.g. untagged resources) are absent.
	CurrentTags(ctx context.Context, arns []string) (map[string]map[string]string, error)
}

// UnsupportedByBulkAPI lists the services the Resource Groups Tagging API
// cannot tag; resources of these services are routed to dedicated adapters.
//
//nolint:gochecknoglobals // Static routing table, never mutated
var UnsupportedByBulkAPI = maputil.NewSet("s3", "appconfig", "route53resolver")

// Split partitions ARNs by tagging mechanism, preserving input order within
// each group. ARNs whose service is in excluded go to the dedicated group,
// everything else to the bulk group.
func Split(arns []string, excluded maputil.Set[string]) (dedicated, bulk []string) {
	for _, a := range arns {
		if excluded.Contains(arn.Service(a)) {
			dedicated = append(dedicated, a)
		} else {
			bulk = append(bulk, a)
		}
	}

	return dedicated, bulk
}
