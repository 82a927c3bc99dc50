package controllers

import (
	"net/http"
	"strconv"

	"research-archive-api/config"
	"research-archive-api/models"
	"research-archive-api/services"

	"github.com/gin-gonic/gin"
)

// SubmitReview records a staff or officer decision on a paper. The reviewer
// role comes from the authenticated identity, never from the request body.
// Role and policy checks live in the workflow service so violations are
// reported in their documented order.
func SubmitReview(c *gin.Context) {
	paperID, err := strconv.Atoi(c.Param("id"))
	if err != nil || paperID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid paper ID"})
		return
	}

	var req struct {
		Decision string `json:"decision" binding:"required"`
		Comment  string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	userID, ok := currentUser(c)
	if !ok {
		return
	}
	role, ok := currentRole(c)
	if !ok {
		return
	}

	svc := services.NewWorkflowService(config.DB)
	err = svc.RecordReview(paperID, role, userID, models.ReviewDecision(req.Decision), req.Comment)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Review submitted"})
}
