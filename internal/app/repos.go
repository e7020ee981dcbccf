package app

import (
	"gorm.io/gorm"

	"github.com/mpac-commercial/course-design-assessment/internal/data/repos"
	"github.com/mpac-commercial/course-design-assessment/internal/platform/logger"
)

type Repos struct {
	Course     repos.CourseRepo
	Student    repos.StudentRepo
	Assignment repos.AssignmentRepo
	Enrollment repos.EnrollmentRepo
	Submission repos.SubmissionRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Course:     repos.NewCourseRepo(db, log),
		Student:    repos.NewStudentRepo(db, log),
		Assignment: repos.NewAssignmentRepo(db, log),
		Enrollment: repos.NewEnrollmentRepo(db, log),
		Submission: repos.NewSubmissionRepo(db, log),
	}
}
