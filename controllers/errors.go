package controllers

import (
	"errors"
	"net/http"

	"research-archive-api/models"
	"research-archive-api/services"

	"github.com/gin-gonic/gin"
)

// statusForCode maps workflow error codes to HTTP statuses. Policy
// violations that depend on current state are conflicts; bad input is a bad
// request; identity problems are forbidden.
func statusForCode(code string) int {
	switch code {
	case services.CodeNotFound:
		return http.StatusNotFound
	case services.CodeUnauthorized, services.CodeRoleMismatch:
		return http.StatusForbidden
	case services.CodeNotReviewable, services.CodeAlreadyReviewed,
		services.CodeStaffApprovalRequired, services.CodeResubmissionLimitReached,
		services.CodeNotOfficerRejected, services.CodeNotDeletable:
		return http.StatusConflict
	case services.CodeValidationError, services.CodeInvalidDecision,
		services.CodeCommentRequired, services.CodeDocumentRequired:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondWorkflowError renders a workflow error with its machine-readable
// code. Anything else is reported as a generic internal failure.
func respondWorkflowError(c *gin.Context, err error) {
	var wfErr *services.WorkflowError
	if errors.As(err, &wfErr) {
		c.JSON(statusForCode(wfErr.Code), gin.H{"error": wfErr.Message, "code": wfErr.Code})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "code": services.CodeInternal})
}

// currentRole pulls the role set by the auth middleware.
func currentRole(c *gin.Context) (models.Role, bool) {
	roleValue, exists := c.Get("role")
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Role context missing"})
		return "", false
	}
	role, ok := roleValue.(models.Role)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid role context"})
		return "", false
	}
	return role, true
}

// currentUser pulls the identity set by the auth middleware.
func currentUser(c *gin.Context) (int, bool) {
	userIDValue, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User context missing"})
		return 0, false
	}
	userID, ok := userIDValue.(int)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user context"})
		return 0, false
	}
	return userID, true
}
