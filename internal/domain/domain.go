package domain

import "github.com/mpac-commercial/course-design-assessment/internal/domain/records"

type Course = records.Course
type Student = records.Student
type Assignment = records.Assignment
type Enrollment = records.Enrollment
type Submission = records.Submission

type CourseView = records.CourseView
type CourseListView = records.CourseListView
type StudentView = records.StudentView
type AssignmentView = records.AssignmentView
type StudentCourseView = records.StudentCourseView
type SubmissionView = records.SubmissionView
type SubmissionAvgCourseStudent = records.SubmissionAvgCourseStudent
type SubmissionAvgCourseAssignment = records.SubmissionAvgCourseAssignment
type SubmissionTopCourseGrades = records.SubmissionTopCourseGrades

const (
	MaxCourseNameLength     = records.MaxCourseNameLength
	MaxAssignmentNameLength = records.MaxAssignmentNameLength
	MaxStudentNameLength    = records.MaxStudentNameLength
	MinGrade                = records.MinGrade
	MaxGrade                = records.MaxGrade
)

// AllModels lists every persisted record in dependency order.
func AllModels() []interface{} {
	return []interface{}{
		&Course{},
		&Student{},
		&Assignment{},
		&Enrollment{},
		&Submission{},
	}
}
