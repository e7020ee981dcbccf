package aggregates

import (
	"context"

	"github.com/mpac-commercial/course-design-assessment/internal/data/repos"
	types "github.com/mpac-commercial/course-design-assessment/internal/domain"
	domainagg "github.com/mpac-commercial/course-design-assessment/internal/domain/aggregates"
	"github.com/mpac-commercial/course-design-assessment/internal/platform/dbctx"
)

type SubmissionAggregateDeps struct {
	Base BaseDeps

	Courses     repos.CourseRepo
	Students    repos.StudentRepo
	Assignments repos.AssignmentRepo
	Submissions repos.SubmissionRepo
}

type submissionAggregate struct {
	deps   SubmissionAggregateDeps
	guards Guards
}

func NewSubmissionAggregate(deps SubmissionAggregateDeps) domainagg.SubmissionAggregate {
	deps.Base = deps.Base.withDefaults()
	return &submissionAggregate{
		deps: deps,
		guards: Guards{
			Courses:     deps.Courses,
			Students:    deps.Students,
			Assignments: deps.Assignments,
			Submissions: deps.Submissions,
		},
	}
}

func (a *submissionAggregate) Contract() domainagg.Contract {
	return domainagg.SubmissionAggregateContract
}

func (a *submissionAggregate) CreateSubmission(ctx context.Context, in domainagg.CreateSubmissionInput) (domainagg.CreateSubmissionResult, error) {
	const op = "Records.Submission.CreateSubmission"
	var out domainagg.CreateSubmissionResult
	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		course, err := a.guards.ValidateCourseExists(dbc, in.CourseID)
		if err != nil {
			return err
		}
		student, err := a.guards.ValidateStudentExists(dbc, in.StudentID)
		if err != nil {
			return err
		}
		if _, err := a.guards.ValidateAssignmentExists(dbc, in.AssignmentID); err != nil {
			return err
		}
		assignment, err := a.guards.ValidateSubmissionConsistency(dbc, in.CourseID, in.AssignmentID)
		if err != nil {
			return err
		}
		if err := a.guards.ValidateGradeRange(in.Grade); err != nil {
			return err
		}
		if err := a.guards.ValidateSubmissionUnique(dbc, in.CourseID, in.AssignmentID, in.StudentID); err != nil {
			return err
		}
		created, err := a.deps.Submissions.Create(dbc, &types.Submission{
			CourseID:     in.CourseID,
			StudentID:    in.StudentID,
			AssignmentID: in.AssignmentID,
			Grade:        in.Grade,
		})
		if err != nil {
			if IsUniqueViolation(err) {
				return submissionTaken(in.CourseID, in.AssignmentID, in.StudentID)
			}
			return err
		}
		out = domainagg.CreateSubmissionResult{
			Submission: created,
			Course:     course,
			Student:    student,
			Assignment: assignment,
		}
		return nil
	})
	if err != nil {
		return domainagg.CreateSubmissionResult{}, err
	}
	return out, nil
}
