// Package stsapi provides interfaces for AWS STS identity operations.
package stsapi

import (
	"context"
)

// GetCallerIdentityAPI is the interface for resolving the calling identity.
type GetCallerIdentityAPI interface {
	GetCallerIdentity(ctx context.Context, params *GetCallerIdentityInput, optFns ...func(*Options)) (*GetCallerIdentityOutput, error)
}
