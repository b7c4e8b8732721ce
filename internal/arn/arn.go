// Package arn extracts routing information from Amazon Resource Names.
//
// Parsing is deliberately shallow: IsValid only checks the fixed prefix, and
// the segment accessors never reject an ARN outright. Callers that need to
// know whether a segment was actually present compare against Undefined.
package arn

import "strings"

// Prefix is the fixed prefix every AWS ARN starts with.
const Prefix = "arn:aws:"

// Undefined is returned when the requested segment does not exist.
const Undefined = "undefined"

// IsValid reports whether s looks like an AWS ARN.
// Only the prefix is checked; no further structural validation is performed.
func IsValid(s string) bool {
	return strings.HasPrefix(s, Prefix)
}

// Service returns the service name (third colon-delimited segment) of the ARN,
// e.g. "s3" for "arn:aws:s3:::my-bucket".
func Service(s string) string {
	parts := strings.Split(s, ":")
	if len(parts) < 3 {
		return Undefined
	}

	return parts[2]
}

// ResourceType returns the resource type of the ARN: the first slash-delimited
// segment of the sixth colon-delimited segment, or the whole segment when it
// contains no slash, e.g. "instance" for
// "arn:aws:ec2:us-east-1:123456789012:instance/i-0abc".
func ResourceType(s string) string {
	parts := strings.Split(s, ":")
	if len(parts) < 6 {
		return Undefined
	}

	resource := parts[5]
	if i := strings.Index(resource, "/"); i >= 0 {
		return resource[:i]
	}

	return resource
}

// BucketName returns the bucket name from an S3 bucket ARN
// ("arn:aws:s3:::my-bucket" yields "my-bucket"). Strings without ":::" are
// returned unchanged.
func BucketName(s string) string {
	parts := strings.Split(s, ":::")

	return parts[len(parts)-1]
}
