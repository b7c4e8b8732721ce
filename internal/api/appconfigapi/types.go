package appconfigapi

import (
	"github.com/aws/aws-sdk-go-v2/service/appconfig"
)

// Re-exported AppConfig client and options types.
type (
	Client  = appconfig.Client
	Options = appconfig.Options
)

// Re-exported AppConfig input/output types.
type (
	TagResourceInput  = appconfig.TagResourceInput
	TagResourceOutput = appconfig.TagResourceOutput
)

// Re-exported AppConfig functions.
var (
	NewFromConfig = appconfig.NewFromConfig
)
