package resolverapi

import (
	"github.com/aws/aws-sdk-go-v2/service/route53resolver"
	"github.com/aws/aws-sdk-go-v2/service/route53resolver/types"
)

// Re-exported Route 53 Resolver client and options types.
type (
	Client  = route53resolver.Client
	Options = route53resolver.Options
)

// Re-exported Route 53 Resolver input/output types.
type (
	TagResourceInput  = route53resolver.TagResourceInput
	TagResourceOutput = route53resolver.TagResourceOutput
)

// Re-exported Route 53 Resolver model types.
type (
	Tag = types.Tag
)

// Re-exported Route 53 Resolver functions.
var (
	NewFromConfig = route53resolver.NewFromConfig
)
