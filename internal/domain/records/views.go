package records

// Views are the JSON shapes returned over HTTP. They are built from records
// and never written back to the store.

type CourseView struct {
	CourseID   int64  `json:"course_id"`
	CourseName string `json:"course_name"`
}

type CourseListView struct {
	CountCourse int          `json:"count_course"`
	CourseList  []CourseView `json:"course_list"`
}

type StudentView struct {
	StudentID   int64  `json:"student_id"`
	StudentName string `json:"student_name"`
}

type AssignmentView struct {
	AssignmentID   int64      `json:"assignment_id"`
	AssignmentName string     `json:"assignment_name"`
	CourseInstance CourseView `json:"course_instance"`
}

type StudentCourseView struct {
	StudentCourseID int64       `json:"student_course_id"`
	StudentInstance StudentView `json:"student_instance"`
	CourseInstance  CourseView  `json:"course_instance"`
}

type SubmissionView struct {
	SubmissionID       int64          `json:"submission_id"`
	Grade              int            `json:"grade"`
	CourseInstance     CourseView     `json:"course_instance"`
	StudentInstance    StudentView    `json:"student_instance"`
	AssignmentInstance AssignmentView `json:"assignment_instance"`
}

type SubmissionAvgCourseStudent struct {
	CourseInstance  CourseView  `json:"course_instance"`
	StudentInstance StudentView `json:"student_instance"`
	Grade           int         `json:"grade"`
}

type SubmissionAvgCourseAssignment struct {
	CourseInstance     CourseView     `json:"course_instance"`
	AssignmentInstance AssignmentView `json:"assignment_instance"`
	Grade              int            `json:"grade"`
}

type SubmissionTopCourseGrades struct {
	CourseInstance CourseView `json:"course_instance"`
	Students       []int64    `json:"students"`
}

func NewCourseView(c *Course) CourseView {
	if c == nil {
		return CourseView{}
	}
	return CourseView{CourseID: c.ID, CourseName: c.Name}
}

func NewCourseListView(courses []*Course) CourseListView {
	out := CourseListView{CountCourse: len(courses), CourseList: make([]CourseView, 0, len(courses))}
	for _, c := range courses {
		out.CourseList = append(out.CourseList, NewCourseView(c))
	}
	return out
}

func NewStudentView(s *Student) StudentView {
	if s == nil {
		return StudentView{}
	}
	return StudentView{StudentID: s.ID, StudentName: s.Name}
}

func NewStudentViews(students []*Student) []StudentView {
	out := make([]StudentView, 0, len(students))
	for _, s := range students {
		out = append(out, NewStudentView(s))
	}
	return out
}

// NewAssignmentView uses a.Course when c is nil.
func NewAssignmentView(a *Assignment, c *Course) AssignmentView {
	if a == nil {
		return AssignmentView{}
	}
	if c == nil {
		c = a.Course
	}
	return AssignmentView{
		AssignmentID:   a.ID,
		AssignmentName: a.Name,
		CourseInstance: NewCourseView(c),
	}
}

func NewAssignmentViews(assignments []*Assignment, c *Course) []AssignmentView {
	out := make([]AssignmentView, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, NewAssignmentView(a, c))
	}
	return out
}

func NewStudentCourseView(e *Enrollment, s *Student, c *Course) StudentCourseView {
	if e == nil {
		return StudentCourseView{}
	}
	return StudentCourseView{
		StudentCourseID: e.ID,
		StudentInstance: NewStudentView(s),
		CourseInstance:  NewCourseView(c),
	}
}

func NewSubmissionView(sub *Submission, c *Course, s *Student, a *Assignment) SubmissionView {
	if sub == nil {
		return SubmissionView{}
	}
	return SubmissionView{
		SubmissionID:       sub.ID,
		Grade:              sub.Grade,
		CourseInstance:     NewCourseView(c),
		StudentInstance:    NewStudentView(s),
		AssignmentInstance: NewAssignmentView(a, c),
	}
}
