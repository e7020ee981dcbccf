package aggregates

import (
	"context"

	types "github.com/mpac-commercial/course-design-assessment/internal/domain"
)

var EnrollmentAggregateContract = Contract{
	Name:             "Records.EnrollmentAggregate",
	WriteTxOwnership: WriteTxOwnedByAggregate,
	ReadPolicy:       ReadPolicyInvariantScoped,
	Notes:            "Owns student/course membership; a pair is enrolled at most once.",
}

// EnrollmentAggregate owns enrollment and dropout.
//
// Failures return *aggregates.Error with codes: CodeNotFound, CodeConflict, CodeInternal.
type EnrollmentAggregate interface {
	Aggregate

	// Enroll checks student, course, then that the pair is not enrolled yet.
	Enroll(ctx context.Context, in EnrollmentInput) (EnrollmentResult, error)

	// Dropout checks student, course, then removes the newest matching enrollment.
	Dropout(ctx context.Context, in EnrollmentInput) (EnrollmentResult, error)
}

type EnrollmentInput struct {
	CourseID  int64
	StudentID int64
}

type EnrollmentResult struct {
	Enrollment *types.Enrollment
	Student    *types.Student
	Course     *types.Course
}
