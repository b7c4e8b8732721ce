// Package bulkapi provides interfaces for the AWS Resource Groups Tagging API.
package bulkapi

import (
	"context"
)

// TagResourcesAPI is the interface for applying tags to a batch of resources.
type TagResourcesAPI interface {
	TagResources(ctx context.Context, params *TagResourcesInput, optFns ...func(*Options)) (*TagResourcesOutput, error)
}

// GetResourcesAPI is the interface for listing resources together with their tags.
type GetResourcesAPI interface {
	GetResources(ctx context.Context, params *GetResourcesInput, optFns ...func(*Options)) (*GetResourcesOutput, error)
}
