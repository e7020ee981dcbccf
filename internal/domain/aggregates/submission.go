package aggregates

import (
	"context"

	types "github.com/mpac-commercial/course-design-assessment/internal/domain"
)

var SubmissionAggregateContract = Contract{
	Name:             "Records.SubmissionAggregate",
	WriteTxOwnership: WriteTxOwnedByAggregate,
	ReadPolicy:       ReadPolicyInvariantScoped,
	Notes:            "Owns graded submissions; at most one per (course, assignment, student).",
}

// SubmissionAggregate owns graded submissions.
//
// Failures return *aggregates.Error with codes:
// CodeNotFound, CodeConflict, CodeOutOfRange, CodeInternal.
type SubmissionAggregate interface {
	Aggregate

	// CreateSubmission checks course, student, assignment, that the assignment
	// belongs to the course, the grade range and uniqueness, in that order.
	CreateSubmission(ctx context.Context, in CreateSubmissionInput) (CreateSubmissionResult, error)
}

type CreateSubmissionInput struct {
	CourseID     int64
	StudentID    int64
	AssignmentID int64
	Grade        int
}

type CreateSubmissionResult struct {
	Submission *types.Submission
	Course     *types.Course
	Student    *types.Student
	Assignment *types.Assignment
}
