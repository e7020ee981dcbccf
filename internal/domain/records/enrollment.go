package records

import "time"

// Enrollment links a Student to a Course.
type Enrollment struct {
	ID        int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	CourseID  int64    `gorm:"column:course_id;not null;index:idx_enrollments_course_student,unique,priority:1" json:"course_id"`
	Course    *Course  `gorm:"constraint:OnDelete:RESTRICT;foreignKey:CourseID;references:ID" json:"course,omitempty"`
	StudentID int64    `gorm:"column:student_id;not null;index:idx_enrollments_course_student,unique,priority:2" json:"student_id"`
	Student   *Student `gorm:"constraint:OnDelete:RESTRICT;foreignKey:StudentID;references:ID" json:"student,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (Enrollment) TableName() string { return "enrollments" }
