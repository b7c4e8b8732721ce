// Package s3 provides the S3 bucket tagging adapter.
//
// PutBucketTagging replaces the whole tag set, so the adapter reads the
// existing set and merges the new tags into it before writing. A bucket
// without a tag set reads as empty; any other read failure is reported as a
// warning and the merge proceeds with an empty existing set.
package s3

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/samber/lo"

	"github.com/mpyw/tagit/internal/api/s3api"
	"github.com/mpyw/tagit/internal/apierr"
	"github.com/mpyw/tagit/internal/arn"
	"github.com/mpyw/tagit/internal/cli/output"
	"github.com/mpyw/tagit/internal/provider"
)

// noSuchTagSet is the documented error code for a bucket without a tag set.
const noSuchTagSet = "NoSuchTagSet"

// Client combines the S3 API interfaces required by the adapter.
type Client interface {
	s3api.GetBucketTaggingAPI
	s3api.PutBucketTaggingAPI
}

// Adapter implements provider.ResourceTagger for S3 buckets.
type Adapter struct {
	client Client
	stderr io.Writer
}

// NewFromConfig creates an adapter backed by a real AWS client.
// Warnings about unreadable existing tags are written to stderr.
func NewFromConfig(cfg aws.Config, stderr io.Writer) *Adapter {
	return New(s3api.NewFromConfig(cfg), stderr)
}

// New creates an adapter from an existing client. A nil stderr discards warnings.
func New(client Client, stderr io.Writer) *Adapter {
	if stderr == nil {
		stderr = io.Discard
	}

	return &Adapter{client: client, stderr: stderr}
}

// readState classifies the outcome of reading a bucket's tag set.
type readState int

const (
	// readFound means the bucket has a tag set.
	readFound readState = iota
	// readMissing means the bucket has no tag set (the NoSuchTagSet error).
	readMissing
	// readFailed means the read failed for any other reason.
	readFailed
)

// TagResource merges tags into the bucket's existing tag set and writes the
// combined set back in a single call. New values win on key collision.
func (a *Adapter) TagResource(ctx context.Context, arnStr string, tags map[string]string) error {
	bucket := arn.BucketName(arnStr)

	existing, state, err := a.existingTags(ctx, bucket)
	if state == readFailed {
		// The write can still succeed; only the pre-existing tags are lost
		// to the merge in that case.
		output.Warning(a.stderr, "could not read existing tags for bucket %s: %v", bucket, err)
	}

	combined := lo.Assign(existing, tags)

	_, err = a.client.PutBucketTagging(ctx, &s3api.PutBucketTaggingInput{
		Bucket: lo.ToPtr(bucket),
		Tagging: &s3api.Tagging{
			TagSet: convertToAWSTags(combined),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to put bucket tagging: %w", err)
	}

	return nil
}

var _ provider.ResourceTagger = (*Adapter)(nil)

func (a *Adapter) existingTags(
	ctx context.Context, bucket string,
) (map[string]string, readState, error) {
	output, err := a.client.GetBucketTagging(ctx, &s3api.GetBucketTaggingInput{
		Bucket: lo.ToPtr(bucket),
	})
	if err != nil {
		if apierr.Is(err, noSuchTagSet) {
			return nil, readMissing, nil
		}

		return nil, readFailed, err
	}

	tags := make(map[string]string, len(output.TagSet))
	for _, tag := range output.TagSet {
		if tag.Key != nil && tag.Value != nil {
			tags[*tag.Key] = *tag.Value
		}
	}

	return tags, readFound, nil
}

func convertToAWSTags(tags map[string]string) []s3api.Tag {
	return lo.MapToSlice(tags, func(k, v string) s3api.Tag {
		return s3api.Tag{Key: lo.ToPtr(k), Value: lo.ToPtr(v)}
	})
}
