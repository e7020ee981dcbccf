package aggregates

import (
	"context"
	"fmt"

	"github.com/mpac-commercial/course-design-assessment/internal/data/repos"
	types "github.com/mpac-commercial/course-design-assessment/internal/domain"
	domainagg "github.com/mpac-commercial/course-design-assessment/internal/domain/aggregates"
	"github.com/mpac-commercial/course-design-assessment/internal/platform/dbctx"
)

type CatalogAggregateDeps struct {
	Base BaseDeps

	Courses     repos.CourseRepo
	Students    repos.StudentRepo
	Assignments repos.AssignmentRepo
}

type catalogAggregate struct {
	deps   CatalogAggregateDeps
	guards Guards
}

func NewCatalogAggregate(deps CatalogAggregateDeps) domainagg.CatalogAggregate {
	deps.Base = deps.Base.withDefaults()
	return &catalogAggregate{
		deps: deps,
		guards: Guards{
			Courses:     deps.Courses,
			Students:    deps.Students,
			Assignments: deps.Assignments,
		},
	}
}

func (a *catalogAggregate) Contract() domainagg.Contract {
	return domainagg.CatalogAggregateContract
}

func (a *catalogAggregate) CreateCourse(ctx context.Context, name string) (*types.Course, error) {
	const op = "Records.Catalog.CreateCourse"
	var out *types.Course
	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		if err := a.guards.ValidateCourseName(name); err != nil {
			return err
		}
		if err := a.guards.ValidateCourseUnique(dbc, name); err != nil {
			return err
		}
		created, err := a.deps.Courses.Create(dbc, &types.Course{Name: name})
		if err != nil {
			if IsUniqueViolation(err) {
				return courseNameTaken(name)
			}
			return err
		}
		out = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (a *catalogAggregate) DeleteCourse(ctx context.Context, courseID int64) (*types.Course, error) {
	const op = "Records.Catalog.DeleteCourse"
	var out *types.Course
	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		course, err := a.guards.ValidateCourseExists(dbc, courseID)
		if err != nil {
			return err
		}
		n, err := a.deps.Courses.DeleteByID(dbc, courseID)
		if err != nil {
			if IsForeignKeyViolation(err) {
				return ConflictError(fmt.Sprintf("course %d still has assignments, enrollments or submissions.", courseID))
			}
			return err
		}
		if n == 0 {
			return courseNotFound(courseID)
		}
		out = course
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (a *catalogAggregate) CreateAssignment(ctx context.Context, in domainagg.CreateAssignmentInput) (domainagg.CreateAssignmentResult, error) {
	const op = "Records.Catalog.CreateAssignment"
	var out domainagg.CreateAssignmentResult
	name := in.Name
	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		course, err := a.guards.ValidateCourseExists(dbc, in.CourseID)
		if err != nil {
			return err
		}
		if err := a.guards.ValidateAssignmentName(name); err != nil {
			return err
		}
		if err := a.guards.ValidateAssignmentUnique(dbc, in.CourseID, name); err != nil {
			return err
		}
		created, err := a.deps.Assignments.Create(dbc, &types.Assignment{CourseID: in.CourseID, Name: name})
		if err != nil {
			switch {
			case IsUniqueViolation(err):
				return assignmentNameTaken(in.CourseID, name)
			case IsForeignKeyViolation(err):
				return courseNotFound(in.CourseID)
			}
			return err
		}
		out = domainagg.CreateAssignmentResult{Assignment: created, Course: course}
		return nil
	})
	if err != nil {
		return domainagg.CreateAssignmentResult{}, err
	}
	return out, nil
}

func (a *catalogAggregate) CreateStudent(ctx context.Context, name string) (*types.Student, error) {
	const op = "Records.Catalog.CreateStudent"
	var out *types.Student
	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		if err := a.guards.ValidateStudentName(name); err != nil {
			return err
		}
		created, err := a.deps.Students.Create(dbc, &types.Student{Name: name})
		if err != nil {
			return err
		}
		out = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
