package aggregates

import (
	"context"

	"github.com/mpac-commercial/course-design-assessment/internal/data/repos"
	types "github.com/mpac-commercial/course-design-assessment/internal/domain"
	domainagg "github.com/mpac-commercial/course-design-assessment/internal/domain/aggregates"
	"github.com/mpac-commercial/course-design-assessment/internal/platform/dbctx"
)

type EnrollmentAggregateDeps struct {
	Base BaseDeps

	Courses     repos.CourseRepo
	Students    repos.StudentRepo
	Enrollments repos.EnrollmentRepo
}

type enrollmentAggregate struct {
	deps   EnrollmentAggregateDeps
	guards Guards
}

func NewEnrollmentAggregate(deps EnrollmentAggregateDeps) domainagg.EnrollmentAggregate {
	deps.Base = deps.Base.withDefaults()
	return &enrollmentAggregate{
		deps: deps,
		guards: Guards{
			Courses:     deps.Courses,
			Students:    deps.Students,
			Enrollments: deps.Enrollments,
		},
	}
}

func (a *enrollmentAggregate) Contract() domainagg.Contract {
	return domainagg.EnrollmentAggregateContract
}

func (a *enrollmentAggregate) Enroll(ctx context.Context, in domainagg.EnrollmentInput) (domainagg.EnrollmentResult, error) {
	const op = "Records.Enrollment.Enroll"
	var out domainagg.EnrollmentResult
	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		student, err := a.guards.ValidateStudentExists(dbc, in.StudentID)
		if err != nil {
			return err
		}
		course, err := a.guards.ValidateCourseExists(dbc, in.CourseID)
		if err != nil {
			return err
		}
		if err := a.guards.ValidateEnrollmentAbsent(dbc, in.CourseID, in.StudentID); err != nil {
			return err
		}
		created, err := a.deps.Enrollments.Create(dbc, &types.Enrollment{CourseID: in.CourseID, StudentID: in.StudentID})
		if err != nil {
			if IsUniqueViolation(err) {
				return alreadyEnrolled(in.CourseID, in.StudentID)
			}
			return err
		}
		out = domainagg.EnrollmentResult{Enrollment: created, Student: student, Course: course}
		return nil
	})
	if err != nil {
		return domainagg.EnrollmentResult{}, err
	}
	return out, nil
}

func (a *enrollmentAggregate) Dropout(ctx context.Context, in domainagg.EnrollmentInput) (domainagg.EnrollmentResult, error) {
	const op = "Records.Enrollment.Dropout"
	var out domainagg.EnrollmentResult
	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		student, err := a.guards.ValidateStudentExists(dbc, in.StudentID)
		if err != nil {
			return err
		}
		course, err := a.guards.ValidateCourseExists(dbc, in.CourseID)
		if err != nil {
			return err
		}
		enrollment, err := a.guards.ValidateEnrollmentPresent(dbc, in.CourseID, in.StudentID)
		if err != nil {
			return err
		}
		n, err := a.deps.Enrollments.DeleteByID(dbc, enrollment.ID)
		if err != nil {
			return err
		}
		if n == 0 {
			return notEnrolled(in.CourseID, in.StudentID)
		}
		out = domainagg.EnrollmentResult{Enrollment: enrollment, Student: student, Course: course}
		return nil
	})
	if err != nil {
		return domainagg.EnrollmentResult{}, err
	}
	return out, nil
}
