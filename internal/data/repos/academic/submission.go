package academic

import (
	"errors"

	"gorm.io/gorm"

	types "github.com/mpac-commercial/course-design-assessment/internal/domain"
	"github.com/mpac-commercial/course-design-assessment/internal/platform/dbctx"
	"github.com/mpac-commercial/course-design-assessment/internal/platform/logger"
)

// GradeFilter selects submissions of one course, optionally narrowed to a
// student or an assignment. Zero ids are ignored.
type GradeFilter struct {
	CourseID     int64
	StudentID    int64
	AssignmentID int64
}

// GradeTotals is SUM(grade) and COUNT(*) over a set of submissions.
type GradeTotals struct {
	Sum   int64 `gorm:"column:grade_sum"`
	Count int64 `gorm:"column:grade_count"`
}

type StudentGradeTotals struct {
	StudentID int64 `gorm:"column:student_id"`
	GradeTotals
}

type SubmissionRepo interface {
	Create(dbc dbctx.Context, submission *types.Submission) (*types.Submission, error)
	GetByKey(dbc dbctx.Context, courseID, assignmentID, studentID int64) (*types.Submission, error)
	GradeTotals(dbc dbctx.Context, filter GradeFilter) (GradeTotals, error)
	// GradeTotalsByStudent groups a course's submissions by student, ordered by student id.
	GradeTotalsByStudent(dbc dbctx.Context, courseID int64) ([]StudentGradeTotals, error)
}

type submissionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSubmissionRepo(db *gorm.DB, baseLog *logger.Logger) SubmissionRepo {
	repoLog := baseLog.With("repo", "SubmissionRepo")
	return &submissionRepo{db: db, log: repoLog}
}

func (r *submissionRepo) Create(dbc dbctx.Context, submission *types.Submission) (*types.Submission, error) {
	if submission == nil {
		return nil, errors.New("nil submission")
	}
	if err := dbc.DB(r.db).Omit("Course", "Student", "Assignment").Create(submission).Error; err != nil {
		return nil, err
	}
	return submission, nil
}

func (r *submissionRepo) GetByKey(dbc dbctx.Context, courseID, assignmentID, studentID int64) (*types.Submission, error) {
	var out types.Submission
	err := dbc.DB(r.db).
		Where("course_id = ? AND assignment_id = ? AND student_id = ?", courseID, assignmentID, studentID).
		First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *submissionRepo) GradeTotals(dbc dbctx.Context, filter GradeFilter) (GradeTotals, error) {
	var out GradeTotals
	q := dbc.DB(r.db).
		Model(&types.Submission{}).
		Select("COALESCE(SUM(grade), 0) AS grade_sum, COUNT(*) AS grade_count").
		Where("course_id = ?", filter.CourseID)
	if filter.StudentID > 0 {
		q = q.Where("student_id = ?", filter.StudentID)
	}
	if filter.AssignmentID > 0 {
		q = q.Where("assignment_id = ?", filter.AssignmentID)
	}
	if err := q.Scan(&out).Error; err != nil {
		return GradeTotals{}, err
	}
	return out, nil
}

func (r *submissionRepo) GradeTotalsByStudent(dbc dbctx.Context, courseID int64) ([]StudentGradeTotals, error) {
	out := []StudentGradeTotals{}
	if err := dbc.DB(r.db).
		Model(&types.Submission{}).
		Select("student_id, SUM(grade) AS grade_sum, COUNT(*) AS grade_count").
		Where("course_id = ?", courseID).
		Group("student_id").
		Order("student_id ASC").
		Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
