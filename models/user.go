package models

import "time"

// Role identifies what a user is allowed to do in the review workflow.
// The set is closed: students submit, staff submit and review student
// papers, officers give the final decision.
type Role string

const (
	RoleStudent Role = "student"
	RoleStaff   Role = "staff"
	RoleOfficer Role = "officer"
)

// Valid reports whether the role is one of the three known roles.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleStaff || r == RoleOfficer
}

// CanReview reports whether the role may record review decisions.
func (r Role) CanReview() bool {
	return r == RoleStaff || r == RoleOfficer
}

// User mirrors the account records provisioned by the identity provider.
// This API never writes to the table; it only resolves token subjects.
type User struct {
	UserID             int        `gorm:"primaryKey;column:user_id" json:"user_id"`
	Username           string     `gorm:"column:username;unique" json:"username"`
	FullName           string     `gorm:"column:full_name" json:"full_name"`
	Email              string     `gorm:"column:email;unique" json:"email"`
	Phone              *string    `gorm:"column:phone" json:"phone,omitempty"`
	Role               Role       `gorm:"column:role" json:"role"`
	RegistrationNumber *string    `gorm:"column:registration_number" json:"registration_number,omitempty"`
	Position           *string    `gorm:"column:position" json:"position,omitempty"`
	CreateAt           *time.Time `gorm:"column:create_at" json:"create_at,omitempty"`
	DeleteAt           *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

// TableName specifies the table name for User.
func (User) TableName() string {
	return "users"
}
