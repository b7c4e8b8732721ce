// Package appconfig provides the AWS AppConfig tagging adapter.
package appconfig

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/samber/lo"

	"github.com/mpyw/tagit/internal/api/appconfigapi"
	"github.com/mpyw/tagit/internal/provider"
)

// Client is the AppConfig API interface required by the adapter.
type Client interface {
	appconfigapi.TagResourceAPI
}

// Adapter implements provider.ResourceTagger for AppConfig resources.
type Adapter struct {
	client Client
}

// NewFromConfig creates an adapter backed by a real AWS client.
func NewFromConfig(cfg aws.Config) *Adapter {
	return &Adapter{client: appconfigapi.NewFromConfig(cfg)}
}

// New creates an adapter from an existing client.
func New(client Client) *Adapter {
	return &Adapter{client: client}
}

// TagResource applies the tag map to the resource in a single call.
func (a *Adapter) TagResource(ctx context.Context, arn string, tags map[string]string) error {
	_, err := a.client.TagResource(ctx, &appconfigapi.TagResourceInput{
		ResourceArn: lo.ToPtr(arn),
		Tags:        tags,
	})
	if err != nil {
		return fmt.Errorf("failed to tag resource: %w", err)
	}

	return nil
}

var _ provider.ResourceTagger = (*Adapter)(nil)
