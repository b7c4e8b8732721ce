// Package resolverapi provides interfaces for Route 53 Resolver tagging operations.
package resolverapi

import (
	"context"
)

// TagResourceAPI is the interface for tagging a Route 53 Resolver resource.
type TagResourceAPI interface {
	TagResource(ctx context.Context, params *TagResourceInput, optFns ...func(*Options)) (*TagResourceOutput, error)
}
