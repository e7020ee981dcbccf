package aggregates

import (
	"context"

	types "github.com/mpac-commercial/course-design-assessment/internal/domain"
)

var CatalogAggregateContract = Contract{
	Name:             "Records.CatalogAggregate",
	WriteTxOwnership: WriteTxOwnedByAggregate,
	ReadPolicy:       ReadPolicyInvariantScoped,
	Notes:            "Owns course, assignment and student creation plus course deletion.",
}

// CatalogAggregate owns the course/assignment/student catalog.
//
// Failures return *aggregates.Error with codes:
// CodeInvalidLength, CodeNotFound, CodeConflict, CodeInternal.
type CatalogAggregate interface {
	Aggregate

	// CreateCourse checks name length then uniqueness and inserts the course.
	CreateCourse(ctx context.Context, name string) (*types.Course, error)

	// DeleteCourse removes the course and returns the row as it was.
	// Dependents are not pre-checked; the store's RESTRICT constraint surfaces as CodeConflict.
	DeleteCourse(ctx context.Context, courseID int64) (*types.Course, error)

	// CreateAssignment checks course existence, name length and (course, name)
	// uniqueness, in that order.
	CreateAssignment(ctx context.Context, in CreateAssignmentInput) (CreateAssignmentResult, error)

	CreateStudent(ctx context.Context, name string) (*types.Student, error)
}

type CreateAssignmentInput struct {
	CourseID int64
	Name     string
}

type CreateAssignmentResult struct {
	Assignment *types.Assignment
	Course     *types.Course
}
