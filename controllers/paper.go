package controllers

import (
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"research-archive-api/config"
	"research-archive-api/models"
	"research-archive-api/services"
	"research-archive-api/utils"

	"github.com/gin-gonic/gin"
)

// paperStorage resolves the document storage collaborator. Resolved per
// request so UPLOAD_PATH changes (and tests) take effect without a restart.
func paperStorage() services.FileStorage {
	return services.NewLocalFileStorage()
}

// SubmitPaper accepts a multipart submission (title, abstract, authors,
// category_id and a "pdf" file part), stores the document and creates the
// paper in pending state.
func SubmitPaper(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	role, ok := currentRole(c)
	if !ok {
		return
	}
	if role == models.RoleOfficer {
		c.JSON(http.StatusForbidden, gin.H{"error": "Officers cannot submit papers"})
		return
	}

	categoryID, err := strconv.Atoi(strings.TrimSpace(c.PostForm("category_id")))
	if err != nil || categoryID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	file, err := c.FormFile("pdf")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "PDF file required"})
		return
	}
	if !strings.EqualFold(filepath.Ext(file.Filename), ".pdf") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF allowed"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer src.Close()

	documentRef, err := paperStorage().Save(file.Filename, src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store document"})
		return
	}

	svc := services.NewWorkflowService(config.DB)
	paperID, err := svc.SubmitPaper(services.SubmitPaperInput{
		Title:       utils.SanitizeInput(c.PostForm("title")),
		Abstract:    utils.SanitizeInput(c.PostForm("abstract")),
		AuthorsText: utils.SanitizeInput(c.PostForm("authors")),
		CategoryID:  categoryID,
		SubmittedBy: userID,
		AuthorRole:  role,
		DocumentRef: documentRef,
	})
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Paper submitted successfully",
		"paper_id": paperID,
	})
}

// GetPaper returns a single paper with its reviews. Approved papers are
// visible to any authenticated user; otherwise only the submitter and
// reviewers may look.
func GetPaper(c *gin.Context) {
	paperID, err := strconv.Atoi(c.Param("id"))
	if err != nil || paperID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid paper ID"})
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
	paper, err := svc.GetPaper(paperID)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	if paper.Status != models.StatusApproved && paper.SubmittedBy != userID && !role.CanReview() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "paper": paper})
}

// GetMyPapers lists the authenticated user's own submissions.
func GetMyPapers(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	svc := services.NewWorkflowService(config.DB)
	papers, err := svc.GetStudentDashboard(userID)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "papers": papers, "total": len(papers)})
}

// ResubmitPaper replaces the document of an officer-rejected paper and puts
// it back into the review cycle. Allowed once, submitter only.
func ResubmitPaper(c *gin.Context) {
	paperID, err := strconv.Atoi(c.Param("id"))
	if err != nil || paperID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid paper ID"})
		return
	}

	userID, ok := currentUser(c)
	if !ok {
		return
	}

	file, err := c.FormFile("pdf")
	if err != nil {
		respondWorkflowError(c, services.ErrDocumentRequired)
		return
	}
	if !strings.EqualFold(filepath.Ext(file.Filename), ".pdf") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF allowed"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer src.Close()

	documentRef, err := paperStorage().Save(file.Filename, src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store document"})
		return
	}

	svc := services.NewWorkflowService(config.DB)
	if err := svc.ResubmitPaper(paperID, userID, documentRef); err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Paper resubmitted successfully"})
}

// DeletePaper removes a paper and its reviews when the submitter is allowed
// to withdraw it.
func DeletePaper(c *gin.Context) {
	paperID, err := strconv.Atoi(c.Param("id"))
	if err != nil || paperID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid paper ID"})
		return
	}

	userID, ok := currentUser(c)
	if !ok {
		return
	}

	svc := services.NewWorkflowService(config.DB)
	if err := svc.DeletePaper(paperID, userID); err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Paper deleted"})
}
