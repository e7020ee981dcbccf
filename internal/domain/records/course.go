package records

import "time"

const (
	MaxCourseNameLength     = 100
	MaxAssignmentNameLength = 100
	MaxStudentNameLength    = 50

	MinGrade = 0
	MaxGrade = 100
)

type Course struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;size:100;not null;uniqueIndex:idx_courses_name" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (Course) TableName() string { return "courses" }
