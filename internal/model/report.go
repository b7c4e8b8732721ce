// Package model defines provider-neutral result types for tagging runs.
package model

// FailureRecord describes why a single resource could not be tagged.
type FailureRecord struct {
	// ErrorCode is the AWS API error code, or a tool-level code when the
	// failure did not come from an API response.
	ErrorCode string
	// ErrorMessage is the human-readable failure description.
	ErrorMessage string
}

// Report aggregates tagging outcomes across every resource in a run.
// Each input resource is either counted in Succeeded or present in Failed.
type Report struct {
	// Total is the number of resources submitted for tagging.
	Total int
	// Succeeded is the number of resources tagged successfully.
	Succeeded int
	// Failed maps resource ARNs to their failure records.
	Failed map[string]FailureRecord
}

// NewReport creates an empty report for the given number of resources.
func NewReport(total int) *Report {
	return &Report{
		Total:  total,
		Failed: make(map[string]FailureRecord),
	}
}

// AddSuccess counts n resources as tagged successfully.
func (r *Report) AddSuccess(n int) {
	r.Succeeded += n
}

// Fail records a failure for the given ARN.
func (r *Report) Fail(arn string, rec FailureRecord) {
	r.Failed[arn] = rec
}

// OK reports whether every resource was tagged successfully.
func (r *Report) OK() bool {
	return len(r.Failed) == 0
}
