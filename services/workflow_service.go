package services

import (
	"errors"
	"strings"
	"time"

	"research-archive-api/models"

	"gorm.io/gorm"
)

// WorkflowService is the review workflow engine. All paper mutations —
// submission, review decisions, resubmission, deletion — go through it, each
// inside a single transaction so precondition checks and effects observe a
// consistent snapshot and commit or abort together.
type WorkflowService struct {
	db *gorm.DB
}

// NewWorkflowService returns a workflow engine bound to the given database.
func NewWorkflowService(db *gorm.DB) *WorkflowService {
	return &WorkflowService{db: db}
}

// SubmitPaperInput carries the fields of a new submission. DocumentRef is the
// opaque reference returned by the file storage collaborator.
type SubmitPaperInput struct {
	Title       string
	Abstract    string
	AuthorsText string
	CategoryID  int
	SubmittedBy int
	AuthorRole  models.Role
	DocumentRef string
}

// SubmitPaper validates the submission and creates the paper in its initial
// state (pending, no approvals, no resubmissions). No review rows are created.
func (s *WorkflowService) SubmitPaper(in SubmitPaperInput) (int, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Abstract = strings.TrimSpace(in.Abstract)
	in.AuthorsText = strings.TrimSpace(in.AuthorsText)

	switch {
	case in.Title == "":
		return 0, validationError("Title is required")
	case in.Abstract == "":
		return 0, validationError("Abstract is required")
	case in.AuthorsText == "":
		return 0, validationError("Authors are required")
	case in.CategoryID <= 0:
		return 0, validationError("Category is required")
	case in.SubmittedBy <= 0:
		return 0, validationError("Submitter is required")
	case strings.TrimSpace(in.DocumentRef) == "":
		return 0, validationError("Document is required")
	}
	if in.AuthorRole != models.RoleStudent && in.AuthorRole != models.RoleStaff {
		return 0, validationError("Author role must be 'student' or 'staff'")
	}

	paper := models.Paper{
		Title:             in.Title,
		Abstract:          in.Abstract,
		AuthorsText:       in.AuthorsText,
		CategoryID:        in.CategoryID,
		DocumentRef:       in.DocumentRef,
		SubmittedBy:       in.SubmittedBy,
		AuthorRole:        in.AuthorRole,
		Status:            models.StatusPending,
		ApprovalCount:     0,
		ResubmissionCount: 0,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Category{}).
			Where("category_id = ?", in.CategoryID).
			Count(&count).Error; err != nil {
			return internalError("submit: category lookup", err)
		}
		if count == 0 {
			return validationError("Category does not exist")
		}
		if err := tx.Create(&paper).Error; err != nil {
			return internalError("submit: create paper", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return paper.PaperID, nil
}

// RecordReview validates and records a reviewer's decision, then recomputes
// the paper status. Preconditions are checked in a fixed order and the first
// violation wins. The review insert and the status update are one
// transaction; the (paper_id, reviewer_role) unique index backstops the
// duplicate check against concurrent reviewers.
func (s *WorkflowService) RecordReview(paperID int, reviewerRole models.Role, reviewerID int, decision models.ReviewDecision, comment string) error {
	if !decision.Valid() {
		return ErrInvalidDecision
	}
	comment = strings.TrimSpace(comment)
	if decision == models.DecisionRejected && comment == "" {
		return ErrCommentRequired
	}
	if !reviewerRole.CanReview() {
		return ErrUnauthorized
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var paper models.Paper
		if err := tx.Where("paper_id = ?", paperID).First(&paper).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPaperNotFound
			}
			return internalError("review: load paper", err)
		}

		if paper.Status != models.StatusPending {
			return ErrNotReviewable
		}

		var existing int64
		if err := tx.Model(&models.Review{}).
			Where("paper_id = ? AND reviewer_role = ?", paperID, reviewerRole).
			Count(&existing).Error; err != nil {
			return internalError("review: duplicate check", err)
		}
		if existing > 0 {
			return ErrAlreadyReviewed
		}

		if reviewerRole == models.RoleStaff && paper.AuthorRole != models.RoleStudent {
			return ErrRoleMismatch
		}
		if reviewerRole == models.RoleOfficer && paper.AuthorRole == models.RoleStudent {
			var staffApprovals int64
			if err := tx.Model(&models.Review{}).
				Where("paper_id = ? AND reviewer_role = ? AND decision = ?",
					paperID, models.RoleStaff, models.DecisionApproved).
				Count(&staffApprovals).Error; err != nil {
				return internalError("review: staff approval check", err)
			}
			if staffApprovals == 0 {
				return ErrStaffApprovalRequired
			}
		}

		review := models.Review{
			PaperID:      paperID,
			ReviewerID:   reviewerID,
			ReviewerRole: reviewerRole,
			Decision:     decision,
			ReviewedAt:   time.Now(),
		}
		if comment != "" {
			review.Comment = &comment
		}
		if err := tx.Create(&review).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Lost a race against another reviewer of the same role.
				return ErrAlreadyReviewed
			}
			return internalError("review: create", err)
		}

		updates := map[string]interface{}{
			"status":         NextStatus(decision, reviewerRole, paper.ResubmissionCount),
			"approval_count": NextApprovalCount(decision, reviewerRole, paper.ApprovalCount),
			"updated_at":     time.Now(),
		}
		if err := tx.Model(&models.Paper{}).
			Where("paper_id = ?", paperID).
			Updates(updates).Error; err != nil {
			return internalError("review: update paper", err)
		}
		return nil
	})
}

// ResubmitPaper lets the submitter replace the document of an
// officer-rejected paper and re-enter the pending state. Allowed once per
// paper. The prior officer review is cleared so a fresh officer decision can
// be recorded; a staff review, if any, is preserved.
func (s *WorkflowService) ResubmitPaper(paperID, requesterID int, newDocumentRef string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var paper models.Paper
		if err := tx.Where("paper_id = ?", paperID).First(&paper).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPaperNotFound
			}
			return internalError("resubmit: load paper", err)
		}

		if paper.SubmittedBy != requesterID {
			return ErrUnauthorized
		}

		var officerRejections int64
		if err := tx.Model(&models.Review{}).
			Where("paper_id = ? AND reviewer_role = ? AND decision = ?",
				paperID, models.RoleOfficer, models.DecisionRejected).
			Count(&officerRejections).Error; err != nil {
			return internalError("resubmit: officer rejection check", err)
		}
		if officerRejections == 0 {
			return ErrNotOfficerRejected
		}

		if paper.ResubmissionCount >= 1 {
			return ErrResubmissionLimitReached
		}

		if strings.TrimSpace(newDocumentRef) == "" {
			return ErrDocumentRequired
		}

		// approval_count resets to 1: the prior approval stands for the new
		// cycle and only the officer decision is redone.
		updates := map[string]interface{}{
			"document_ref":       newDocumentRef,
			"status":             models.StatusPending,
			"approval_count":     1,
			"resubmission_count": paper.ResubmissionCount + 1,
			"updated_at":         time.Now(),
		}
		if err := tx.Model(&models.Paper{}).
			Where("paper_id = ?", paperID).
			Updates(updates).Error; err != nil {
			return internalError("resubmit: update paper", err)
		}

		if err := tx.Where("paper_id = ? AND reviewer_role = ?", paperID, models.RoleOfficer).
			Delete(&models.Review{}).Error; err != nil {
			return internalError("resubmit: clear officer review", err)
		}
		return nil
	})
}

// DeletePaper removes a paper and all of its reviews if the requester is the
// submitter and the paper is in a deletable state. Irreversible.
func (s *WorkflowService) DeletePaper(paperID, requesterID int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var paper models.Paper
		if err := tx.Where("paper_id = ?", paperID).First(&paper).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPaperNotFound
			}
			return internalError("delete: load paper", err)
		}

		if paper.SubmittedBy != requesterID {
			return ErrUnauthorized
		}

		var reviews []models.Review
		if err := tx.Where("paper_id = ?", paperID).Find(&reviews).Error; err != nil {
			return internalError("delete: load reviews", err)
		}

		if !DeletionEligible(paper, reviews) {
			return ErrNotDeletable
		}

		if err := tx.Where("paper_id = ?", paperID).Delete(&models.Review{}).Error; err != nil {
			return internalError("delete: reviews", err)
		}
		if err := tx.Where("paper_id = ?", paperID).Delete(&models.Paper{}).Error; err != nil {
			return internalError("delete: paper", err)
		}
		return nil
	})
}

// GetPaper loads a single paper with its reviews, category and submitter.
func (s *WorkflowService) GetPaper(paperID int) (*models.Paper, error) {
	var paper models.Paper
	err := s.db.Preload("Reviews").Preload("Category").Preload("Submitter").
		Where("paper_id = ?", paperID).First(&paper).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaperNotFound
		}
		return nil, internalError("get paper", err)
	}
	return &paper, nil
}
