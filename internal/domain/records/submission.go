package records

import "time"

// Submission is a student's graded result for one assignment of a course.
type Submission struct {
	ID           int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	CourseID     int64       `gorm:"column:course_id;not null;index:idx_submissions_course_assignment_student,unique,priority:1" json:"course_id"`
	Course       *Course     `gorm:"constraint:OnDelete:RESTRICT;foreignKey:CourseID;references:ID" json:"course,omitempty"`
	AssignmentID int64       `gorm:"column:assignment_id;not null;index:idx_submissions_course_assignment_student,unique,priority:2" json:"assignment_id"`
	Assignment   *Assignment `gorm:"constraint:OnDelete:RESTRICT;foreignKey:AssignmentID;references:ID" json:"assignment,omitempty"`
	StudentID    int64       `gorm:"column:student_id;not null;index:idx_submissions_course_assignment_student,unique,priority:3" json:"student_id"`
	Student      *Student    `gorm:"constraint:OnDelete:RESTRICT;foreignKey:StudentID;references:ID" json:"student,omitempty"`
	Grade        int         `gorm:"column:grade;not null" json:"grade"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (Submission) TableName() string { return "submissions" }
