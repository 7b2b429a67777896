package model

// NoticeKind classifies a user-facing message
type NoticeKind string

const (
	// NoticeInfo is an informational message, including "already exists"
	NoticeInfo NoticeKind = "info"

	// NoticeError reports a failed action
	NoticeError NoticeKind = "error"
)

// String returns the string representation of NoticeKind
func (k NoticeKind) String() string {
	return string(k)
}

// IsError returns true if the notice reports a failure
func (k NoticeKind) IsError() bool {
	return k == NoticeError
}
