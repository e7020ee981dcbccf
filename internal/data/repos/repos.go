package repos

import (
	"github.com/mpac-commercial/course-design-assessment/internal/data/repos/academic"
	"github.com/mpac-commercial/course-design-assessment/internal/platform/logger"
	"gorm.io/gorm"
)

type CourseRepo = academic.CourseRepo
type StudentRepo = academic.StudentRepo
type AssignmentRepo = academic.AssignmentRepo
type EnrollmentRepo = academic.EnrollmentRepo
type SubmissionRepo = academic.SubmissionRepo

type GradeFilter = academic.GradeFilter
type GradeTotals = academic.GradeTotals
type StudentGradeTotals = academic.StudentGradeTotals

func NewCourseRepo(db *gorm.DB, baseLog *logger.Logger) CourseRepo {
	return academic.NewCourseRepo(db, baseLog)
}

func NewStudentRepo(db *gorm.DB, baseLog *logger.Logger) StudentRepo {
	return academic.NewStudentRepo(db, baseLog)
}

func NewAssignmentRepo(db *gorm.DB, baseLog *logger.Logger) AssignmentRepo {
	return academic.NewAssignmentRepo(db, baseLog)
}

func NewEnrollmentRepo(db *gorm.DB, baseLog *logger.Logger) EnrollmentRepo {
	return academic.NewEnrollmentRepo(db, baseLog)
}

func NewSubmissionRepo(db *gorm.DB, baseLog *logger.Logger) SubmissionRepo {
	return academic.NewSubmissionRepo(db, baseLog)
}
