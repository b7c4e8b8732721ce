// Package bulk provides the Resource Groups Tagging API adapter.
package bulk

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/samber/lo"

	"github.com/mpyw/tagit/internal/api/bulkapi"
	"github.com/mpyw/tagit/internal/model"
	"github.com/mpyw/tagit/internal/provider"
)

// Client combines the Resource Groups Tagging API interfaces required by the adapter.
type Client interface {
	bulkapi.TagResourcesAPI
	bulkapi.GetResourcesAPI
}

// Adapter implements provider.BulkTagger and provider.TagReader on the
// Resource Groups Tagging API.
type Adapter struct {
	client Client
}

// NewFromConfig creates an adapter backed by a real AWS client.
func NewFromConfig(cfg aws.Config) *Adapter {
	return &Adapter{client: bulkapi.NewFromConfig(cfg)}
}

// New creates an adapter from an existing client.
func New(client Client) *Adapter {
	return &Adapter{client: client}
}

// TagBatch applies tags to every ARN in a single TagResources call.
// Per-resource failures reported by the service are converted to failure
// records; a call-level error is returned as-is.
func (a *Adapter) TagBatch(
	ctx context.Context, arns []string, tags map[string]string,
) (map[string]model.FailureRecord, error) {
	output, err := a.client.TagResources(ctx, &bulkapi.TagResourcesInput{
		ResourceARNList: arns,
		Tags:            tags,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to tag resources: %w", err)
	}

	failed := make(map[string]model.FailureRecord, len(output.FailedResourcesMap))
	for arn, info := range output.FailedResourcesMap {
		failed[arn] = model.FailureRecord{
			ErrorCode:    string(info.ErrorCode),
			ErrorMessage: lo.FromPtr(info.ErrorMessage),
		}
	}

	return failed, nil
}

// CurrentTags returns the existing tags for the given ARNs, keyed by ARN.
func (a *Adapter) CurrentTags(
	ctx context.Context, arns []string,
) (map[string]map[string]string, error) {
	input := &bulkapi.GetResourcesInput{
		ResourceARNList: arns,
	}

	result := make(map[string]map[string]string, len(arns))

	// Paginate through all matched resources
	paginator := bulkapi.NewGetResourcesPaginator(a.client, input)
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get resources: %w", err)
		}

		for _, mapping := range output.ResourceTagMappingList {
			result[lo.FromPtr(mapping.ResourceARN)] = convertFromAWSTags(mapping.Tags)
		}
	}

	return result, nil
}

var (
	_ provider.BulkTagger = (*Adapter)(nil)
	_ provider.TagReader  = (*Adapter)(nil)
)

func convertFromAWSTags(tags []bulkapi.Tag) map[string]string {
	result := make(map[string]string, len(tags))
	for _, tag := range tags {
		if tag.Key != nil && tag.Value != nil {
			result[*tag.Key] = *tag.Value
		}
	}

	return result
}
