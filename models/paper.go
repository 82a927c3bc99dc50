package models

import "time"

// PaperStatus is the workflow state of a submitted paper.
type PaperStatus string

const (
	// StatusPending means the paper is awaiting one or both review tiers.
	StatusPending PaperStatus = "pending"
	// StatusApproved is terminal: an officer approved the paper.
	StatusApproved PaperStatus = "approved"
	// StatusRejected covers both staff rejections (dead end) and the first
	// officer rejection (resubmittable once).
	StatusRejected PaperStatus = "rejected"
	// StatusRejectedFinal is terminal: officer rejected after the single
	// resubmission was used up.
	StatusRejectedFinal PaperStatus = "rejected_final"
)

// Valid reports whether the status is one of the four workflow states.
func (s PaperStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusRejectedFinal:
		return true
	}
	return false
}

// Terminal reports whether no further transition is defined for the status.
func (s PaperStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejectedFinal
}

// Paper represents a research paper moving through the two-tier review
// workflow. Student papers need staff approval before an officer decision;
// staff papers go straight to the officer tier. Officers do not submit.
type Paper struct {
	PaperID           int         `gorm:"primaryKey;column:paper_id" json:"paper_id"`
	Title             string      `gorm:"column:title" json:"title"`
	Abstract          string      `gorm:"column:abstract" json:"abstract"`
	AuthorsText       string      `gorm:"column:authors_text" json:"authors_text"`
	CategoryID        int         `gorm:"column:category_id" json:"category_id"`
	DocumentRef       string      `gorm:"column:document_ref" json:"document_ref"`
	SubmittedBy       int         `gorm:"column:submitted_by" json:"submitted_by"`
	AuthorRole        Role        `gorm:"column:author_role" json:"author_role"`
	Status            PaperStatus `gorm:"column:status;default:pending" json:"status"`
	ApprovalCount     int         `gorm:"column:approval_count" json:"approval_count"`
	ResubmissionCount int         `gorm:"column:resubmission_count" json:"resubmission_count"`
	CreatedAt         time.Time   `gorm:"column:created_at" json:"created_at"`
	UpdatedAt         time.Time   `gorm:"column:updated_at" json:"updated_at"`

	// Relations
	Submitter *User     `gorm:"foreignKey:SubmittedBy" json:"submitter,omitempty"`
	Category  *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Reviews   []Review  `gorm:"foreignKey:PaperID" json:"reviews,omitempty"`
}

// TableName specifies the table name for Paper.
func (Paper) TableName() string {
	return "research_papers"
}
