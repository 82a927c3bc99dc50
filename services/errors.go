package services

import "log"

// Error codes surfaced to API clients. Every precondition violation in the
// workflow maps to exactly one of these; storage failures are collapsed into
// CodeInternal and never leaked raw.
const (
	CodeValidationError          = "VALIDATION_ERROR"
	CodeUnauthorized             = "UNAUTHORIZED"
	CodeNotFound                 = "NOT_FOUND"
	CodeInvalidDecision          = "INVALID_DECISION"
	CodeCommentRequired          = "COMMENT_REQUIRED"
	CodeRoleMismatch             = "ROLE_MISMATCH"
	CodeStaffApprovalRequired    = "STAFF_APPROVAL_REQUIRED"
	CodeAlreadyReviewed          = "ALREADY_REVIEWED"
	CodeNotReviewable            = "NOT_REVIEWABLE"
	CodeResubmissionLimitReached = "RESUBMISSION_LIMIT_REACHED"
	CodeNotOfficerRejected       = "NOT_OFFICER_REJECTED"
	CodeDocumentRequired         = "DOCUMENT_REQUIRED"
	CodeNotDeletable             = "NOT_DELETABLE"
	CodeInternal                 = "INTERNAL_ERROR"
)

// WorkflowError is a policy violation reported by the review workflow. Code
// is machine-distinguishable; Message is safe to show to the caller.
type WorkflowError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *WorkflowError) Error() string {
	return e.Message
}

var (
	ErrPaperNotFound = &WorkflowError{CodeNotFound, "Paper not found"}
	ErrUnauthorized  = &WorkflowError{CodeUnauthorized, "Unauthorized"}

	ErrInvalidDecision       = &WorkflowError{CodeInvalidDecision, "Decision must be either 'approved' or 'rejected'"}
	ErrCommentRequired       = &WorkflowError{CodeCommentRequired, "Comment is required for rejection"}
	ErrRoleMismatch          = &WorkflowError{CodeRoleMismatch, "Staff can only review student papers"}
	ErrStaffApprovalRequired = &WorkflowError{CodeStaffApprovalRequired, "Staff approval required first"}
	ErrAlreadyReviewed       = &WorkflowError{CodeAlreadyReviewed, "This paper has already been reviewed for this role"}
	ErrNotReviewable         = &WorkflowError{CodeNotReviewable, "Paper is not pending review"}

	ErrResubmissionLimitReached = &WorkflowError{CodeResubmissionLimitReached, "Resubmission limit reached"}
	ErrNotOfficerRejected       = &WorkflowError{CodeNotOfficerRejected, "Only officer-rejected papers can be resubmitted"}
	ErrDocumentRequired         = &WorkflowError{CodeDocumentRequired, "A replacement document is required"}

	ErrNotDeletable = &WorkflowError{CodeNotDeletable, "Paper cannot be deleted in its current state"}
)

// validationError builds a VALIDATION_ERROR with a field-specific message.
func validationError(message string) *WorkflowError {
	return &WorkflowError{Code: CodeValidationError, Message: message}
}

// internalError logs the underlying storage failure and returns the generic
// error handed to callers.
func internalError(op string, err error) *WorkflowError {
	log.Printf("workflow: %s failed: %v", op, err)
	return &WorkflowError{Code: CodeInternal, Message: "Internal server error"}
}
