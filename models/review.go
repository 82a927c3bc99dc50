package models

import "time"

// ReviewDecision is a reviewer's verdict on a paper.
type ReviewDecision string

const (
	DecisionApproved ReviewDecision = "approved"
	DecisionRejected ReviewDecision = "rejected"
)

// Valid reports whether the decision is one of the two known verdicts.
func (d ReviewDecision) Valid() bool {
	return d == DecisionApproved || d == DecisionRejected
}

// Review records a single reviewer decision on a paper, scoped to one role
// tier. The composite unique index caps a paper at one staff review and one
// officer review; the database enforces it so two near-simultaneous review
// submissions cannot both land.
type Review struct {
	ReviewID     int            `gorm:"primaryKey;column:review_id" json:"review_id"`
	PaperID      int            `gorm:"column:paper_id;uniqueIndex:uniq_paper_reviewer_role" json:"paper_id"`
	ReviewerID   int            `gorm:"column:reviewer_id" json:"reviewer_id"`
	ReviewerRole Role           `gorm:"column:reviewer_role;size:16;uniqueIndex:uniq_paper_reviewer_role" json:"reviewer_role"`
	Decision     ReviewDecision `gorm:"column:decision" json:"decision"`
	Comment      *string        `gorm:"column:comment" json:"comment,omitempty"`
	ReviewedAt   time.Time      `gorm:"column:reviewed_at" json:"reviewed_at"`

	Reviewer *User `gorm:"foreignKey:ReviewerID" json:"reviewer,omitempty"`
}

// TableName specifies the table name for Review.
func (Review) TableName() string {
	return "reviews"
}
