package services

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"research-archive-api/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int64

// newTestDB opens a fresh in-memory SQLite database with the full schema.
// SQLite enforces the (paper_id, reviewer_role) unique index, so the
// concurrency backstop behaves like the real store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:workflow_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Paper{},
		&models.Review{},
	))
	return db
}

func seedCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()
	category := models.Category{CategoryName: name}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func seedUser(t *testing.T, db *gorm.DB, role models.Role) models.User {
	t.Helper()
	seq := atomic.AddInt64(&testDBSeq, 1)
	user := models.User{
		Username: fmt.Sprintf("%s%d", role, seq),
		FullName: fmt.Sprintf("Test %s %d", role, seq),
		Email:    fmt.Sprintf("%s%d@example.edu", role, seq),
		Role:     role,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// seedPendingPaper submits a paper through the workflow service so it starts
// in the canonical initial state.
func seedPendingPaper(t *testing.T, db *gorm.DB, submitter models.User, categoryID int) int {
	t.Helper()
	svc := NewWorkflowService(db)
	paperID, err := svc.SubmitPaper(SubmitPaperInput{
		Title:       "On the Semantics of Test Fixtures",
		Abstract:    "We study fixtures in depth.",
		AuthorsText: submitter.FullName,
		CategoryID:  categoryID,
		SubmittedBy: submitter.UserID,
		AuthorRole:  submitter.Role,
		DocumentRef: "doc-initial.pdf",
	})
	require.NoError(t, err)
	return paperID
}

func fetchPaper(t *testing.T, db *gorm.DB, paperID int) models.Paper {
	t.Helper()
	var paper models.Paper
	require.NoError(t, db.Where("paper_id = ?", paperID).First(&paper).Error)
	return paper
}

func countReviews(t *testing.T, db *gorm.DB, paperID int) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Review{}).Where("paper_id = ?", paperID).Count(&count).Error)
	return count
}

func directReview(paperID, reviewerID int, role models.Role, decision models.ReviewDecision) models.Review {
	return models.Review{
		PaperID:      paperID,
		ReviewerID:   reviewerID,
		ReviewerRole: role,
		Decision:     decision,
		ReviewedAt:   time.Now(),
	}
}

func workflowCode(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	wfErr, ok := err.(*WorkflowError)
	require.True(t, ok, "expected WorkflowError, got %T: %v", err, err)
	return wfErr.Code
}
