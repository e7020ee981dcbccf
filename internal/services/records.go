package services

import (
	"context"

	"github.com/mpac-commercial/course-design-assessment/internal/data/aggregates"
	"github.com/mpac-commercial/course-design-assessment/internal/data/repos"
	domainagg "github.com/mpac-commercial/course-design-assessment/internal/domain/aggregates"
	"github.com/mpac-commercial/course-design-assessment/internal/domain/records"
	"github.com/mpac-commercial/course-design-assessment/internal/platform/ctxutil"
	"github.com/mpac-commercial/course-design-assessment/internal/platform/logger"
)

// RecordsService is the façade over courses, students, assignments,
// enrollments and graded submissions. Every call runs in one transaction and
// fails with a *domainagg.Error.
type RecordsService interface {
	// Courses
	CreateCourse(ctx context.Context, name string) (records.CourseView, error)
	DeleteCourse(ctx context.Context, courseID int64) (records.CourseView, error)
	GetCourse(ctx context.Context, courseID int64) (records.CourseView, error)
	ListCourses(ctx context.Context) (records.CourseListView, error)
	ListCourseAssignments(ctx context.Context, courseID int64) ([]records.AssignmentView, error)
	ListCourseStudents(ctx context.Context, courseID int64) ([]records.StudentView, error)

	// Assignments
	CreateAssignment(ctx context.Context, courseID int64, name string) (records.AssignmentView, error)
	GetAssignment(ctx context.Context, assignmentID int64) (records.AssignmentView, error)

	// Students
	CreateStudent(ctx context.Context, name string) (records.StudentView, error)
	GetStudent(ctx context.Context, studentID int64) (records.StudentView, error)
	EnrollStudent(ctx context.Context, courseID, studentID int64) (records.StudentCourseView, error)
	DropoutStudent(ctx context.Context, courseID, studentID int64) (records.StudentCourseView, error)

	// Submissions
	CreateSubmission(ctx context.Context, in SubmissionInput) (records.SubmissionView, error)
	AverageGradeForStudent(ctx context.Context, courseID, studentID int64) (records.SubmissionAvgCourseStudent, error)
	AverageGradeForAssignment(ctx context.Context, courseID, assignmentID int64) (records.SubmissionAvgCourseAssignment, error)
	TopFiveStudents(ctx context.Context, courseID int64) (records.SubmissionTopCourseGrades, error)
}

type SubmissionInput struct {
	CourseID     int64
	StudentID    int64
	AssignmentID int64
	Grade        int
}

type recordsService struct {
	log        *logger.Logger
	catalog    domainagg.CatalogAggregate
	enrollment domainagg.EnrollmentAggregate
	submission domainagg.SubmissionAggregate
	queries    *aggregates.RecordsQueries
}

func NewRecordsService(
	baseLog *logger.Logger,
	catalog domainagg.CatalogAggregate,
	enrollment domainagg.EnrollmentAggregate,
	submission domainagg.SubmissionAggregate,
	queries *aggregates.RecordsQueries,
) RecordsService {
	return &recordsService{
		log:        baseLog.With("service", "RecordsService"),
		catalog:    catalog,
		enrollment: enrollment,
		submission: submission,
		queries:    queries,
	}
}

func (s *recordsService) CreateCourse(ctx context.Context, name string) (records.CourseView, error) {
	c, err := s.catalog.CreateCourse(ctx, name)
	if err != nil {
		return records.CourseView{}, err
	}
	s.log.Debug("course created", append(ctxutil.LogFields(ctx), "course_id", c.ID)...)
	return records.NewCourseView(c), nil
}

func (s *recordsService) DeleteCourse(ctx context.Context, courseID int64) (records.CourseView, error) {
	c, err := s.catalog.DeleteCourse(ctx, courseID)
	if err != nil {
		return records.CourseView{}, err
	}
	s.log.Debug("course deleted", append(ctxutil.LogFields(ctx), "course_id", c.ID)...)
	return records.NewCourseView(c), nil
}

func (s *recordsService) GetCourse(ctx context.Context, courseID int64) (records.CourseView, error) {
	c, err := s.queries.GetCourse(ctx, courseID)
	if err != nil {
		return records.CourseView{}, err
	}
	return records.NewCourseView(c), nil
}

func (s *recordsService) ListCourses(ctx context.Context) (records.CourseListView, error) {
	list, err := s.queries.ListCourses(ctx)
	if err != nil {
		return records.CourseListView{}, err
	}
	return records.NewCourseListView(list), nil
}

func (s *recordsService) ListCourseAssignments(ctx context.Context, courseID int64) ([]records.AssignmentView, error) {
	res, err := s.queries.ListCourseAssignments(ctx, courseID)
	if err != nil {
		return nil, err
	}
	return records.NewAssignmentViews(res.Assignments, res.Course), nil
}

func (s *recordsService) ListCourseStudents(ctx context.Context, courseID int64) ([]records.StudentView, error) {
	res, err := s.queries.ListCourseStudents(ctx, courseID)
	if err != nil {
		return nil, err
	}
	return records.NewStudentViews(res.Students), nil
}

func (s *recordsService) CreateAssignment(ctx context.Context, courseID int64, name string) (records.AssignmentView, error) {
	res, err := s.catalog.CreateAssignment(ctx, domainagg.CreateAssignmentInput{CourseID: courseID, Name: name})
	if err != nil {
		return records.AssignmentView{}, err
	}
	s.log.Debug("assignment created", append(ctxutil.LogFields(ctx), "course_id", courseID, "assignment_id", res.Assignment.ID)...)
	return records.NewAssignmentView(res.Assignment, res.Course), nil
}

func (s *recordsService) GetAssignment(ctx context.Context, assignmentID int64) (records.AssignmentView, error) {
	res, err := s.queries.GetAssignment(ctx, assignmentID)
	if err != nil {
		return records.AssignmentView{}, err
	}
	return records.NewAssignmentView(res.Assignment, res.Course), nil
}

func (s *recordsService) CreateStudent(ctx context.Context, name string) (records.StudentView, error) {
	st, err := s.catalog.CreateStudent(ctx, name)
	if err != nil {
		return records.StudentView{}, err
	}
	s.log.Debug("student created", append(ctxutil.LogFields(ctx), "student_id", st.ID)...)
	return records.NewStudentView(st), nil
}

func (s *recordsService) GetStudent(ctx context.Context, studentID int64) (records.StudentView, error) {
	st, err := s.queries.GetStudent(ctx, studentID)
	if err != nil {
		return records.StudentView{}, err
	}
	return records.NewStudentView(st), nil
}

func (s *recordsService) EnrollStudent(ctx context.Context, courseID, studentID int64) (records.StudentCourseView, error) {
	res, err := s.enrollment.Enroll(ctx, domainagg.EnrollmentInput{CourseID: courseID, StudentID: studentID})
	if err != nil {
		return records.StudentCourseView{}, err
	}
	s.log.Debug("student enrolled", append(ctxutil.LogFields(ctx), "course_id", courseID, "student_id", studentID)...)
	return records.NewStudentCourseView(res.Enrollment, res.Student, res.Course), nil
}

func (s *recordsService) DropoutStudent(ctx context.Context, courseID, studentID int64) (records.StudentCourseView, error) {
	res, err := s.enrollment.Dropout(ctx, domainagg.EnrollmentInput{CourseID: courseID, StudentID: studentID})
	if err != nil {
		return records.StudentCourseView{}, err
	}
	s.log.Debug("student dropped out", append(ctxutil.LogFields(ctx), "course_id", courseID, "student_id", studentID)...)
	return records.NewStudentCourseView(res.Enrollment, res.Student, res.Course), nil
}

func (s *recordsService) CreateSubmission(ctx context.Context, in SubmissionInput) (records.SubmissionView, error) {
	res, err := s.submission.CreateSubmission(ctx, domainagg.CreateSubmissionInput{
		CourseID:     in.CourseID,
		StudentID:    in.StudentID,
		AssignmentID: in.AssignmentID,
		Grade:        in.Grade,
	})
	if err != nil {
		return records.SubmissionView{}, err
	}
	s.log.Debug("submission created", append(ctxutil.LogFields(ctx), "submission_id", res.Submission.ID)...)
	return records.NewSubmissionView(res.Submission, res.Course, res.Student, res.Assignment), nil
}

func (s *recordsService) AverageGradeForStudent(ctx context.Context, courseID, studentID int64) (records.SubmissionAvgCourseStudent, error) {
	res, err := s.queries.AverageGradeForStudent(ctx, courseID, studentID)
	if err != nil {
		return records.SubmissionAvgCourseStudent{}, err
	}
	return records.SubmissionAvgCourseStudent{
		CourseInstance:  records.NewCourseView(res.Course),
		StudentInstance: records.NewStudentView(res.Student),
		Grade:           res.Grade,
	}, nil
}

func (s *recordsService) AverageGradeForAssignment(ctx context.Context, courseID, assignmentID int64) (records.SubmissionAvgCourseAssignment, error) {
	res, err := s.queries.AverageGradeForAssignment(ctx, courseID, assignmentID)
	if err != nil {
		return records.SubmissionAvgCourseAssignment{}, err
	}
	return records.SubmissionAvgCourseAssignment{
		CourseInstance:     records.NewCourseView(res.Course),
		AssignmentInstance: records.NewAssignmentView(res.Assignment, res.Course),
		Grade:              res.Grade,
	}, nil
}

func (s *recordsService) TopFiveStudents(ctx context.Context, courseID int64) (records.SubmissionTopCourseGrades, error) {
	res, err := s.queries.TopStudents(ctx, courseID, aggregates.DefaultTopStudents)
	if err != nil {
		return records.SubmissionTopCourseGrades{}, err
	}
	ids := res.StudentIDs
	if ids == nil {
		ids = []int64{}
	}
	return records.SubmissionTopCourseGrades{
		CourseInstance: records.NewCourseView(res.Course),
		Students:       ids,
	}, nil
}

type RecordsServiceDeps struct {
	Log  *logger.Logger
	Base aggregates.BaseDeps

	Courses     repos.CourseRepo
	Students    repos.StudentRepo
	Assignments repos.AssignmentRepo
	Enrollments repos.EnrollmentRepo
	Submissions repos.SubmissionRepo
}

// NewRecordsServiceWithDeps builds the aggregates and the read side over one
// shared set of repos, runner and hooks.
func NewRecordsServiceWithDeps(deps RecordsServiceDeps) RecordsService {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	if deps.Base.Log == nil {
		deps.Base.Log = log
	}
	return NewRecordsService(
		log,
		aggregates.NewCatalogAggregate(aggregates.CatalogAggregateDeps{
			Base:        deps.Base,
			Courses:     deps.Courses,
			Students:    deps.Students,
			Assignments: deps.Assignments,
		}),
		aggregates.NewEnrollmentAggregate(aggregates.EnrollmentAggregateDeps{
			Base:        deps.Base,
			Courses:     deps.Courses,
			Students:    deps.Students,
			Enrollments: deps.Enrollments,
		}),
		aggregates.NewSubmissionAggregate(aggregates.SubmissionAggregateDeps{
			Base:        deps.Base,
			Courses:     deps.Courses,
			Students:    deps.Students,
			Assignments: deps.Assignments,
			Submissions: deps.Submissions,
		}),
		aggregates.NewRecordsQueries(aggregates.RecordsQueriesDeps{
			Base:        deps.Base,
			Courses:     deps.Courses,
			Students:    deps.Students,
			Assignments: deps.Assignments,
			Enrollments: deps.Enrollments,
			Submissions: deps.Submissions,
		}),
	)
}
