package bulkapi

import (
	"github.com/aws/aws-sdk-go-v2/service/resourcegroupstaggingapi"
	"github.com/aws/aws-sdk-go-v2/service/resourcegroupstaggingapi/types"
)

// Re-exported Resource Groups Tagging API client and options types.
type (
	Client  = resourcegroupstaggingapi.Client
	Options = resourcegroupstaggingapi.Options
)

// Re-exported Resource Groups Tagging API input/output types.
type (
	TagResourcesInput  = resourcegroupstaggingapi.TagResourcesInput
	TagResourcesOutput = resourcegroupstaggingapi.TagResourcesOutput
	GetResourcesInput  = resourcegroupstaggingapi.GetResourcesInput
	GetResourcesOutput = resourcegroupstaggingapi.GetResourcesOutput
)

// Re-exported Resource Groups Tagging API model types.
type (
	FailureInfo        = types.FailureInfo
	ResourceTagMapping = types.ResourceTagMapping
	Tag                = types.Tag
)

// Re-exported Resource Groups Tagging API functions.
var (
	NewFromConfig            = resourcegroupstaggingapi.NewFromConfig
	NewGetResourcesPaginator = resourcegroupstaggingapi.NewGetResourcesPaginator
)
