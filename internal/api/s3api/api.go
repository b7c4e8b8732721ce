// Package s3api provides interfaces for S3 bucket tagging operations.
package s3api

import (
	"context"
)

// GetBucketTaggingAPI is the interface for reading a bucket's tag set.
type GetBucketTaggingAPI interface {
	GetBucketTagging(ctx context.Context, params *GetBucketTaggingInput, optFns ...func(*Options)) (*GetBucketTaggingOutput, error)
}

// PutBucketTaggingAPI is the interface for replacing a bucket's tag set.
type PutBucketTaggingAPI interface {
	PutBucketTagging(ctx context.Context, params *PutBucketTaggingInput, optFns ...func(*Options)) (*PutBucketTaggingOutput, error)
}
