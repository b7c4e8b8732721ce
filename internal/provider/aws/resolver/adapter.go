// Package resolver provides the Route 53 Resolver tagging adapter.
package resolver

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/samber/lo"

	"github.com/mpyw/tagit/internal/api/resolverapi"
	"github.com/mpyw/tagit/internal/provider"
)

// Client is the Route 53 Resolver API interface required by the adapter.
type Client interface {
	resolverapi.TagResourceAPI
}

// Adapter implements provider.ResourceTagger for Route 53 Resolver resources.
type Adapter struct {
	client Client
}

// NewFromConfig creates an adapter backed by a real AWS client.
func NewFromConfig(cfg aws.Config) *Adapter {
	return &Adapter{client: resolverapi.NewFromConfig(cfg)}
}

// New creates an adapter from an existing client.
func New(client Client) *Adapter {
	return &Adapter{client: client}
}

// TagResource applies the tags as a key/value list in a single call.
func (a *Adapter) TagResource(ctx context.Context, arn string, tags map[string]string) error {
	_, err := a.client.TagResource(ctx, &resolverapi.TagResourceInput{
		ResourceArn: lo.ToPtr(arn),
		Tags:        convertToAWSTags(tags),
	})
	if err != nil {
		return fmt.Errorf("failed to tag resource: %w", err)
	}

	return nil
}

var _ provider.ResourceTagger = (*Adapter)(nil)

func convertToAWSTags(tags map[string]string) []resolverapi.Tag {
	return lo.MapToSlice(tags, func(k, v string) resolverapi.Tag {
		return resolverapi.Tag{Key: lo.ToPtr(k), Value: lo.ToPtr(v)}
	})
}
