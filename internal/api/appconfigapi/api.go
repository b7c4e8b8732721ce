// Package appconfigapi provides interfaces for AWS AppConfig tagging operations.
package appconfigapi

import (
	"context"
)

// TagResourceAPI is the interface for tagging an AppConfig resource.
type TagResourceAPI interface {
	TagResource(ctx context.Context, params *TagResourceInput, optFns ...func(*Options)) (*TagResourceOutput, error)
}
