// Package apierr classifies AWS SDK errors into code/message pairs.
package apierr

import (
	"errors"

	"github.com/aws/smithy-go"
)

// CodeUnknown is used when an error carries no AWS API error code.
const CodeUnknown = "UnknownError"

// Classify extracts the AWS API error code and message from err.
// Errors that are not AWS API errors yield CodeUnknown and the plain
// error text.
func Classify(err error) (code, message string) {
	var ae smithy.APIError
	if errors.As(err, &ae) {
		return ae.ErrorCode(), ae.ErrorMessage()
	}

	return CodeUnknown, err.Error()
}

// Is reports whether err is an AWS API error with the given code.
func Is(err error, code string) bool {
	var ae smithy.APIError

	return errors.As(err, &ae) && ae.ErrorCode() == code
}
