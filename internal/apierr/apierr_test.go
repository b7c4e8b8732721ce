package apierr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"

	"github.com/mpyw/tagit/internal/apierr"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	t.Run("aws api error", func(t *testing.T) {
		t.Parallel()

		err := &smithy.GenericAPIError{Code: "AccessDenied", Message: "not allowed"}

		code, message := apierr.Classify(err)

		assert.Equal(t, "AccessDenied", code)
		assert.Equal(t, "not allowed", message)
	})

	t.Run("wrapped aws api error", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("failed to tag resources: %w",
			&smithy.GenericAPIError{Code: "ThrottlingException", Message: "slow down"})

		code, message := apierr.Classify(err)

		assert.Equal(t, "ThrottlingException", code)
		assert.Equal(t, "slow down", message)
	})

	t.Run("plain error", func(t *testing.T) {
		t.Parallel()

		code, message := apierr.Classify(errors.New("connection refused"))

		assert.Equal(t, apierr.CodeUnknown, code)
		assert.Equal(t, "connection refused", message)
	})
}

func TestIs(t *testing.T) {
	t.Parallel()

	err := &smithy.GenericAPIError{Code: "NoSuchTagSet", Message: "no tags"}

	assert.True(t, apierr.Is(err, "NoSuchTagSet"))
	assert.False(t, apierr.Is(err, "AccessDenied"))
	assert.False(t, apierr.Is(errors.New("plain"), "NoSuchTagSet"))
}
