package models

import "time"

// Category is a research area a paper is filed under. The catalog is
// maintained outside this API; submissions only reference it.
type Category struct {
	CategoryID   int        `gorm:"primaryKey;column:category_id" json:"category_id"`
	CategoryName string     `gorm:"column:category_name" json:"category_name"`
	CreateAt     *time.Time `gorm:"column:create_at" json:"create_at,omitempty"`
	DeleteAt     *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

// TableName specifies the table name for Category.
func (Category) TableName() string {
	return "categories"
}
