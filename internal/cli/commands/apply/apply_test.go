package apply_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpyw/tagit/internal/api/stsapi"
	"github.com/mpyw/tagit/internal/cli/commands/apply"
	"github.com/mpyw/tagit/internal/model"
	"github.com/mpyw/tagit/internal/testutil"
	applyusecase "github.com/mpyw/tagit/internal/usecase/apply"
)

// mockBulk implements applyusecase.BulkClient for testing.
type mockBulk struct {
	tagBatchFunc func(ctx context.Context, arns []string, tags map[string]string) (map[string]model.FailureRecord, error)
}

func (m *mockBulk) TagBatch(
	ctx context.Context, arns []string, tags map[string]string,
) (map[string]model.FailureRecord, error) {
	return m.tagBatchFunc(ctx, arns, tags)
}

// mockIdentity implements stsapi.GetCallerIdentityAPI for testing.
type mockIdentity struct {
	getCallerIdentityFunc func(ctx context.Context, params *stsapi.GetCallerIdentityInput, optFns ...func(*stsapi.Options)) (*stsapi.GetCallerIdentityOutput, error)
}

func (m *mockIdentity) GetCallerIdentity(
	ctx context.Context, params *stsapi.GetCallerIdentityInput, optFns ...func(*stsapi.Options),
) (*stsapi.GetCallerIdentityOutput, error) {
	return m.getCallerIdentityFunc(ctx, params, optFns...)
}

func TestRunner_Run(t *testing.T) {
	t.Parallel()

	t.Run("succeeds when every resource tags", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		r := &apply.Runner{
			UseCase: &applyusecase.UseCase{
				Bulk: &mockBulk{
					tagBatchFunc: func(_ context.Context, _ []string, _ map[string]string) (map[string]model.FailureRecord, error) {
						return nil, nil
					},
				},
				Stdout: stdout,
			},
			Stdout: stdout,
		}

		err := r.Run(context.Background(), apply.Options{
			ARNs: []string{"arn:aws:ec2:us-east-1:123:instance/i-1"},
			Tags: map[string]string{"env": "prod"},
		})

		require.NoError(t, err)
	})

	t.Run("returns an error when any resource fails", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		r := &apply.Runner{
			UseCase: &applyusecase.UseCase{
				Bulk: &mockBulk{
					tagBatchFunc: func(_ context.Context, arns []string, _ map[string]string) (map[string]model.FailureRecord, error) {
						return map[string]model.FailureRecord{
							arns[0]: {ErrorCode: "AccessDenied", ErrorMessage: "nope"},
						}, nil
					},
				},
				Stdout: stdout,
			},
			Stdout: stdout,
		}

		err := r.Run(context.Background(), apply.Options{
			ARNs: []string{
				"arn:aws:ec2:us-east-1:123:instance/i-1",
				"arn:aws:ec2:us-east-1:123:instance/i-2",
			},
			Tags: map[string]string{"env": "prod"},
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 2 resource(s) failed to tag")
	})

	t.Run("verbose prints the caller identity", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		r := &apply.Runner{
			UseCase: &applyusecase.UseCase{
				Bulk: &mockBulk{
					tagBatchFunc: func(_ context.Context, _ []string, _ map[string]string) (map[string]model.FailureRecord, error) {
						return nil, nil
					},
				},
				Stdout: stdout,
			},
			Identity: &mockIdentity{
				getCallerIdentityFunc: func(_ context.Context, _ *stsapi.GetCallerIdentityInput, _ ...func(*stsapi.Options)) (*stsapi.GetCallerIdentityOutput, error) {
					return &stsapi.GetCallerIdentityOutput{
						Account: testutil.Ptr("123456789012"),
						Arn:     testutil.Ptr("arn:aws:iam::123456789012:user/deployer"),
					}, nil
				},
			},
			Stdout: stdout,
		}

		err := r.Run(context.Background(), apply.Options{
			ARNs:    []string{"arn:aws:ec2:us-east-1:123:instance/i-1"},
			Tags:    map[string]string{"env": "prod"},
			Verbose: true,
		})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Account: 123456789012")
		assert.Contains(t, stdout.String(), "arn:aws:iam::123456789012:user/deployer")
	})

	t.Run("identity lookup failure is not fatal", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		r := &apply.Runner{
			UseCase: &applyusecase.UseCase{
				Bulk: &mockBulk{
					tagBatchFunc: func(_ context.Context, _ []string, _ map[string]string) (map[string]model.FailureRecord, error) {
						return nil, nil
					},
				},
				Stdout: stdout,
			},
			Identity: &mockIdentity{
				getCallerIdentityFunc: func(_ context.Context, _ *stsapi.GetCallerIdentityInput, _ ...func(*stsapi.Options)) (*stsapi.GetCallerIdentityOutput, error) {
					return nil, &smithy.GenericAPIError{Code: "AccessDenied", Message: "nope"}
				},
			},
			Stdout: stdout,
		}

		err := r.Run(context.Background(), apply.Options{
			ARNs:    []string{"arn:aws:ec2:us-east-1:123:instance/i-1"},
			Tags:    map[string]string{"env": "prod"},
			Verbose: true,
		})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "could not resolve caller identity")
	})
}
