package services

import (
	"research-archive-api/models"
)

// OfficerDashboard groups the papers currently waiting for an officer
// decision: staff-authored pending papers, and student-authored pending
// papers that already carry a staff approval.
type OfficerDashboard struct {
	StaffPapers   []models.Paper `json:"staff_papers"`
	StudentPapers []models.Paper `json:"student_papers"`
}

// StaffDashboard groups the student papers waiting for a staff decision and
// the staff member's own submissions.
type StaffDashboard struct {
	PendingStaffReview []models.Paper `json:"pending_staff_review"`
	MyPapers           []models.Paper `json:"my_papers"`
}

// GetOfficerDashboard returns the officer's review queue. Papers that
// already have an officer review are excluded; review histories are
// attached.
func (s *WorkflowService) GetOfficerDashboard() (*OfficerDashboard, error) {
	var pending []models.Paper
	err := s.db.Preload("Reviews").Preload("Category").
		Where("status = ?", models.StatusPending).
		Order("created_at ASC").
		Find(&pending).Error
	if err != nil {
		return nil, internalError("officer dashboard", err)
	}

	dashboard := &OfficerDashboard{
		StaffPapers:   []models.Paper{},
		StudentPapers: []models.Paper{},
	}
	for _, paper := range pending {
		if hasReview(paper.Reviews, models.RoleOfficer) {
			continue
		}
		switch paper.AuthorRole {
		case models.RoleStaff:
			dashboard.StaffPapers = append(dashboard.StaffPapers, paper)
		case models.RoleStudent:
			if hasReviewDecision(paper.Reviews, models.RoleStaff, models.DecisionApproved) {
				dashboard.StudentPapers = append(dashboard.StudentPapers, paper)
			}
		}
	}
	return dashboard, nil
}

// GetStaffDashboard returns the staff member's review queue (student papers
// with no staff review yet) and their own papers.
func (s *WorkflowService) GetStaffDashboard(userID int) (*StaffDashboard, error) {
	var studentPending []models.Paper
	err := s.db.Preload("Reviews").Preload("Category").
		Where("status = ? AND author_role = ?", models.StatusPending, models.RoleStudent).
		Order("created_at ASC").
		Find(&studentPending).Error
	if err != nil {
		return nil, internalError("staff dashboard: queue", err)
	}

	queue := []models.Paper{}
	for _, paper := range studentPending {
		if !hasReview(paper.Reviews, models.RoleStaff) {
			queue = append(queue, paper)
		}
	}

	myPapers, err := s.papersSubmittedBy(userID)
	if err != nil {
		return nil, err
	}

	return &StaffDashboard{PendingStaffReview: queue, MyPapers: myPapers}, nil
}

// GetStudentDashboard returns the student's own papers with their reviews.
func (s *WorkflowService) GetStudentDashboard(userID int) ([]models.Paper, error) {
	return s.papersSubmittedBy(userID)
}

func (s *WorkflowService) papersSubmittedBy(userID int) ([]models.Paper, error) {
	papers := []models.Paper{}
	err := s.db.Preload("Reviews").Preload("Category").
		Where("submitted_by = ?", userID).
		Order("created_at DESC").
		Find(&papers).Error
	if err != nil {
		return nil, internalError("papers by submitter", err)
	}
	return papers, nil
}
