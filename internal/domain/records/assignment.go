package records

import "time"

type Assignment struct {
	ID       int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	CourseID int64   `gorm:"column:course_id;not null;index:idx_assignments_course_name,unique,priority:1" json:"course_id"`
	Course   *Course `gorm:"constraint:OnDelete:RESTRICT;foreignKey:CourseID;references:ID" json:"course,omitempty"`
	Name     string  `gorm:"column:name;size:100;not null;index:idx_assignments_course_name,unique,priority:2" json:"name"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (Assignment) TableName() string { return "assignments" }
