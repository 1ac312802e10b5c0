package models

// IssueSeverity classifies how serious an accessibility issue is.
// Severity is informational only: it never participates in issue identity
// when sessions are compared.
type IssueSeverity string

const (
	// SeverityError marks issues that must be fixed for compliance.
	SeverityError IssueSeverity = "error"

	// SeverityWarning marks issues that should be fixed for better accessibility.
	SeverityWarning IssueSeverity = "warning"

	// SeverityInfo marks suggestions for improvement.
	SeverityInfo IssueSeverity = "info"
)

// Issue is a single accessibility finding produced by the external WCAG
// validator. Two issues are considered the same finding when both their
// Criterion and Message match.
type Issue struct {
	// Criterion is the WCAG criterion identifier, e.g. "1.1.1".
	Criterion string `json:"criterion"`

	// Severity is the reported severity level. Informational only.
	Severity IssueSeverity `json:"severity"`

	// Message is the human-readable description of the finding.
	Message string `json:"message"`
}

// IssueKey is the identity of an issue for cross-session diffing:
// (criterion, message), severity excluded.
type IssueKey struct {
	Criterion string `json:"criterion"`
	Message   string `json:"message"`
}

// Key returns the diffing identity of the issue.
func (i Issue) Key() IssueKey {
	return IssueKey{Criterion: i.Criterion, Message: i.Message}
}

// ValidationResult is the outcome of one validation pass over a document,
// produced by the external WCAG rule engine. This subsystem only consumes
// it; it never evaluates rules itself.
type ValidationResult struct {
	// Score is the compliance score in the range 0-100.
	Score float64 `json:"score"`

	// Issues are all findings of the current pass.
	Issues []Issue `json:"issues"`

	// PassedCriteria are criterion identifiers that passed in this pass.
	PassedCriteria []string `json:"passed_criteria"`
}
