package aggregates

import (
	"fmt"
	"unicode/utf8"

	"github.com/mpac-commercial/course-design-assessment/internal/data/repos"
	types "github.com/mpac-commercial/course-design-assessment/internal/domain"
	"github.com/mpac-commercial/course-design-assessment/internal/platform/dbctx"
)

// Guards holds the write-side validators. Every check only reads, and returns a
// tagged error (NotFoundError, ConflictError, ...) on failure.
type Guards struct {
	Courses     repos.CourseRepo
	Students    repos.StudentRepo
	Assignments repos.AssignmentRepo
	Enrollments repos.EnrollmentRepo
	Submissions repos.SubmissionRepo
}

// validateLength measures the name exactly as it will be stored.
func validateLength(kind, name string, max int) error {
	if !utf8.ValidString(name) {
		return InvalidLengthError(fmt.Sprintf("%s name is not valid UTF-8.", kind))
	}
	n := utf8.RuneCountInString(name)
	if n == 0 || n > max {
		return InvalidLengthError(fmt.Sprintf("%s name should have between 1 and %d characters, got %d.", kind, max, n))
	}
	return nil
}

func (g Guards) ValidateCourseName(name string) error {
	return validateLength("course", name, types.MaxCourseNameLength)
}

func (g Guards) ValidateAssignmentName(name string) error {
	return validateLength("assignment", name, types.MaxAssignmentNameLength)
}

func (g Guards) ValidateStudentName(name string) error {
	return validateLength("student", name, types.MaxStudentNameLength)
}

func (g Guards) ValidateGradeRange(grade int) error {
	if grade < types.MinGrade || grade > types.MaxGrade {
		return OutOfRangeError(fmt.Sprintf("grade %d is out of range, expected %d to %d.", grade, types.MinGrade, types.MaxGrade))
	}
	return nil
}

func (g Guards) ValidateCourseUnique(dbc dbctx.Context, name string) error {
	existing, err := g.Courses.GetByName(dbc, name)
	if err != nil {
		return err
	}
	if existing != nil {
		return courseNameTaken(name)
	}
	return nil
}

func courseNameTaken(name string) error {
	return ConflictError(fmt.Sprintf("a course named %q already exists.", name))
}

// ValidateCourseExists returns the loaded course.
func (g Guards) ValidateCourseExists(dbc dbctx.Context, courseID int64) (*types.Course, error) {
	c, err := g.Courses.GetByID(dbc, courseID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, courseNotFound(courseID)
	}
	return c, nil
}

func courseNotFound(courseID int64) error {
	return NotFoundError(fmt.Sprintf("course not found with ID %d.", courseID))
}

func (g Guards) ValidateStudentExists(dbc dbctx.Context, studentID int64) (*types.Student, error) {
	s, err := g.Students.GetByID(dbc, studentID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, NotFoundError(fmt.Sprintf("student not found with ID %d.", studentID))
	}
	return s, nil
}

func (g Guards) ValidateAssignmentExists(dbc dbctx.Context, assignmentID int64) (*types.Assignment, error) {
	a, err := g.Assignments.GetByID(dbc, assignmentID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, NotFoundError(fmt.Sprintf("assignment not found with ID %d.", assignmentID))
	}
	return a, nil
}

func (g Guards) ValidateAssignmentUnique(dbc dbctx.Context, courseID int64, name string) error {
	existing, err := g.Assignments.GetByCourseAndName(dbc, courseID, name)
	if err != nil {
		return err
	}
	if existing != nil {
		return assignmentNameTaken(courseID, name)
	}
	return nil
}

func assignmentNameTaken(courseID int64, name string) error {
	return ConflictError(fmt.Sprintf("an assignment named %q already exists in course %d.", name, courseID))
}

func (g Guards) ValidateEnrollmentAbsent(dbc dbctx.Context, courseID, studentID int64) error {
	existing, err := g.Enrollments.GetLatest(dbc, courseID, studentID)
	if err != nil {
		return err
	}
	if existing != nil {
		return alreadyEnrolled(courseID, studentID)
	}
	return nil
}

func alreadyEnrolled(courseID, studentID int64) error {
	return ConflictError(fmt.Sprintf("student %d is already enrolled in course %d.", studentID, courseID))
}

// ValidateEnrollmentPresent returns the matching enrollment with the highest id.
func (g Guards) ValidateEnrollmentPresent(dbc dbctx.Context, courseID, studentID int64) (*types.Enrollment, error) {
	e, err := g.Enrollments.GetLatest(dbc, courseID, studentID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, notEnrolled(courseID, studentID)
	}
	return e, nil
}

func notEnrolled(courseID, studentID int64) error {
	return NotFoundError(fmt.Sprintf("student %d is not enrolled in course %d.", studentID, courseID))
}

// ValidateSubmissionConsistency loads the assignment and checks it belongs to courseID.
func (g Guards) ValidateSubmissionConsistency(dbc dbctx.Context, courseID, assignmentID int64) (*types.Assignment, error) {
	a, err := g.ValidateAssignmentExists(dbc, assignmentID)
	if err != nil {
		return nil, err
	}
	if a.CourseID != courseID {
		return nil, ConflictError(fmt.Sprintf("assignment %d belongs to course %d, not course %d.", assignmentID, a.CourseID, courseID))
	}
	return a, nil
}

func (g Guards) ValidateSubmissionUnique(dbc dbctx.Context, courseID, assignmentID, studentID int64) error {
	existing, err := g.Submissions.GetByKey(dbc, courseID, assignmentID, studentID)
	if err != nil {
		return err
	}
	if existing != nil {
		return submissionTaken(courseID, assignmentID, studentID)
	}
	return nil
}

func submissionTaken(courseID, assignmentID, studentID int64) error {
	return ConflictError(fmt.Sprintf("student %d already has a submission for assignment %d in course %d.", studentID, assignmentID, courseID))
}
