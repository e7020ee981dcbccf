package aggregates

import (
	"context"

	"github.com/mpac-commercial/course-design-assessment/internal/data/repos"
	types "github.com/mpac-commercial/course-design-assessment/internal/domain"
	"github.com/mpac-commercial/course-design-assessment/internal/platform/dbctx"
)

type RecordsQueriesDeps struct {
	Base BaseDeps

	Courses     repos.CourseRepo
	Students    repos.StudentRepo
	Assignments repos.AssignmentRepo
	Enrollments repos.EnrollmentRepo
	Submissions repos.SubmissionRepo
}

// RecordsQueries is the read side: lookups and grade aggregation, each in one
// read transaction, with the same guards and error mapping as the writes.
type RecordsQueries struct {
	deps   RecordsQueriesDeps
	guards Guards
	grades GradeEngine
}

type AssignmentDetail struct {
	Assignment *types.Assignment
	Course     *types.Course
}

type CourseAssignments struct {
	Course      *types.Course
	Assignments []*types.Assignment
}

type CourseStudents struct {
	Course   *types.Course
	Students []*types.Student
}

type StudentAverage struct {
	Course  *types.Course
	Student *types.Student
	Grade   int
}

type AssignmentAverage struct {
	Course     *types.Course
	Assignment *types.Assignment
	Grade      int
}

type CourseRanking struct {
	Course     *types.Course
	StudentIDs []int64
}

func NewRecordsQueries(deps RecordsQueriesDeps) *RecordsQueries {
	deps.Base = deps.Base.withDefaults()
	return &RecordsQueries{
		deps: deps,
		guards: Guards{
			Courses:     deps.Courses,
			Students:    deps.Students,
			Assignments: deps.Assignments,
			Enrollments: deps.Enrollments,
			Submissions: deps.Submissions,
		},
		grades: GradeEngine{Submissions: deps.Submissions},
	}
}

func (q *RecordsQueries) GetCourse(ctx context.Context, courseID int64) (*types.Course, error) {
	var out *types.Course
	err := executeRead(ctx, q.deps.Base, "Records.Query.GetCourse", func(dbc dbctx.Context) error {
		c, err := q.guards.ValidateCourseExists(dbc, courseID)
		out = c
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (q *RecordsQueries) ListCourses(ctx context.Context) ([]*types.Course, error) {
	var out []*types.Course
	err := executeRead(ctx, q.deps.Base, "Records.Query.ListCourses", func(dbc dbctx.Context) error {
		rows, err := q.deps.Courses.List(dbc)
		out = rows
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (q *RecordsQueries) GetStudent(ctx context.Context, studentID int64) (*types.Student, error) {
	var out *types.Student
	err := executeRead(ctx, q.deps.Base, "Records.Query.GetStudent", func(dbc dbctx.Context) error {
		s, err := q.guards.ValidateStudentExists(dbc, studentID)
		out = s
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (q *RecordsQueries) GetAssignment(ctx context.Context, assignmentID int64) (AssignmentDetail, error) {
	var out AssignmentDetail
	err := executeRead(ctx, q.deps.Base, "Records.Query.GetAssignment", func(dbc dbctx.Context) error {
		a, err := q.guards.ValidateAssignmentExists(dbc, assignmentID)
		if err != nil {
			return err
		}
		c, err := q.guards.ValidateCourseExists(dbc, a.CourseID)
		if err != nil {
			return err
		}
		out = AssignmentDetail{Assignment: a, Course: c}
		return nil
	})
	if err != nil {
		return AssignmentDetail{}, err
	}
	return out, nil
}

func (q *RecordsQueries) ListCourseAssignments(ctx context.Context, courseID int64) (CourseAssignments, error) {
	var out CourseAssignments
	err := executeRead(ctx, q.deps.Base, "Records.Query.ListCourseAssignments", func(dbc dbctx.Context) error {
		c, err := q.guards.ValidateCourseExists(dbc, courseID)
		if err != nil {
			return err
		}
		rows, err := q.deps.Assignments.ListByCourseID(dbc, courseID)
		if err != nil {
			return err
		}
		out = CourseAssignments{Course: c, Assignments: rows}
		return nil
	})
	if err != nil {
		return CourseAssignments{}, err
	}
	return out, nil
}

// ListCourseStudents returns enrolled students in enrollment order.
func (q *RecordsQueries) ListCourseStudents(ctx context.Context, courseID int64) (CourseStudents, error) {
	var out CourseStudents
	err := executeRead(ctx, q.deps.Base, "Records.Query.ListCourseStudents", func(dbc dbctx.Context) error {
		c, err := q.guards.ValidateCourseExists(dbc, courseID)
		if err != nil {
			return err
		}
		enrollments, err := q.deps.Enrollments.ListByCourseID(dbc, courseID)
		if err != nil {
			return err
		}
		ids := make([]int64, 0, len(enrollments))
		for _, e := range enrollments {
			ids = append(ids, e.StudentID)
		}
		students, err := q.deps.Students.GetByIDs(dbc, ids)
		if err != nil {
			return err
		}
		out = CourseStudents{Course: c, Students: students}
		return nil
	})
	if err != nil {
		return CourseStudents{}, err
	}
	return out, nil
}

// AverageGradeForStudent fails with not_found when the student has no
// submission in the course.
func (q *RecordsQueries) AverageGradeForStudent(ctx context.Context, courseID, studentID int64) (StudentAverage, error) {
	var out StudentAverage
	err := executeRead(ctx, q.deps.Base, "Records.Query.AverageGradeForStudent", func(dbc dbctx.Context) error {
		c, err := q.guards.ValidateCourseExists(dbc, courseID)
		if err != nil {
			return err
		}
		s, err := q.guards.ValidateStudentExists(dbc, studentID)
		if err != nil {
			return err
		}
		grade, err := q.grades.AverageGrade(dbc, repos.GradeFilter{CourseID: courseID, StudentID: studentID})
		if err != nil {
			return err
		}
		out = StudentAverage{Course: c, Student: s, Grade: grade}
		return nil
	})
	if err != nil {
		return StudentAverage{}, err
	}
	return out, nil
}

// AverageGradeForAssignment fails with conflict when the assignment belongs to
// another course and with not_found when it has no submission.
func (q *RecordsQueries) AverageGradeForAssignment(ctx context.Context, courseID, assignmentID int64) (AssignmentAverage, error) {
	var out AssignmentAverage
	err := executeRead(ctx, q.deps.Base, "Records.Query.AverageGradeForAssignment", func(dbc dbctx.Context) error {
		c, err := q.guards.ValidateCourseExists(dbc, courseID)
		if err != nil {
			return err
		}
		if _, err := q.guards.ValidateAssignmentExists(dbc, assignmentID); err != nil {
			return err
		}
		a, err := q.guards.ValidateSubmissionConsistency(dbc, courseID, assignmentID)
		if err != nil {
			return err
		}
		grade, err := q.grades.AverageGrade(dbc, repos.GradeFilter{CourseID: courseID, AssignmentID: assignmentID})
		if err != nil {
			return err
		}
		out = AssignmentAverage{Course: c, Assignment: a, Grade: grade}
		return nil
	})
	if err != nil {
		return AssignmentAverage{}, err
	}
	return out, nil
}

// TopStudents returns up to limit student ids ranked by average grade.
// limit <= 0 uses DefaultTopStudents.
func (q *RecordsQueries) TopStudents(ctx context.Context, courseID int64, limit int) (CourseRanking, error) {
	if limit <= 0 {
		limit = DefaultTopStudents
	}
	var out CourseRanking
	err := executeRead(ctx, q.deps.Base, "Records.Query.TopStudents", func(dbc dbctx.Context) error {
		c, err := q.guards.ValidateCourseExists(dbc, courseID)
		if err != nil {
			return err
		}
		ids, err := q.grades.TopStudentsByAverage(dbc, courseID, limit)
		if err != nil {
			return err
		}
		out = CourseRanking{Course: c, StudentIDs: ids}
		return nil
	})
	if err != nil {
		return CourseRanking{}, err
	}
	return out, nil
}
