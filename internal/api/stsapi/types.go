package stsapi

import (
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// Re-exported STS client and options types.
type (
	Client  = sts.Client
	Options = sts.Options
)

// Re-exported STS input/output types.
type (
	GetCallerIdentityInput  = sts.GetCallerIdentityInput
	GetCallerIdentityOutput = sts.GetCallerIdentityOutput
)

// Re-exported STS functions.
var (
	NewFromConfig = sts.NewFromConfig
)
