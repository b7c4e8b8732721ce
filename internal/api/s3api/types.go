package s3api

import (
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Re-exported S3 client and options types.
type (
	Client  = s3.Client
	Options = s3.Options
)

// Re-exported S3 input/output types.
type (
	GetBucketTaggingInput  = s3.GetBucketTaggingInput
	GetBucketTaggingOutput = s3.GetBucketTaggingOutput
	PutBucketTaggingInput  = s3.PutBucketTaggingInput
	PutBucketTaggingOutput = s3.PutBucketTaggingOutput
)

// Re-exported S3 model types.
type (
	Tag     = types.Tag
	Tagging = types.Tagging
)

// Re-exported S3 functions.
var (
	NewFromConfig = s3.NewFromConfig
)
