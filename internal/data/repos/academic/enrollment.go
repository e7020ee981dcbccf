package academic

import (
	"errors"

	"gorm.io/gorm"

	types "github.com/mpac-commercial/course-design-assessment/internal/domain"
	"github.com/mpac-commercial/course-design-assessment/internal/platform/dbctx"
	"github.com/mpac-commercial/course-design-assessment/internal/platform/logger"
)

type EnrollmentRepo interface {
	Create(dbc dbctx.Context, enrollment *types.Enrollment) (*types.Enrollment, error)
	// GetLatest returns the matching enrollment with the highest id.
	GetLatest(dbc dbctx.Context, courseID, studentID int64) (*types.Enrollment, error)
	ListByCourseID(dbc dbctx.Context, courseID int64) ([]*types.Enrollment, error)
	DeleteByID(dbc dbctx.Context, id int64) (int64, error)
}

type enrollmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEnrollmentRepo(db *gorm.DB, baseLog *logger.Logger) EnrollmentRepo {
	repoLog := baseLog.With("repo", "EnrollmentRepo")
	return &enrollmentRepo{db: db, log: repoLog}
}

func (r *enrollmentRepo) Create(dbc dbctx.Context, enrollment *types.Enrollment) (*types.Enrollment, error) {
	if enrollment == nil {
		return nil, errors.New("nil enrollment")
	}
	if err := dbc.DB(r.db).Omit("Course", "Student").Create(enrollment).Error; err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (r *enrollmentRepo) GetLatest(dbc dbctx.Context, courseID, studentID int64) (*types.Enrollment, error) {
	var out types.Enrollment
	err := dbc.DB(r.db).
		Where("course_id = ? AND student_id = ?", courseID, studentID).
		Order("id DESC").
		Limit(1).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	if out.ID == 0 {
		return nil, nil
	}
	return &out, nil
}

func (r *enrollmentRepo) ListByCourseID(dbc dbctx.Context, courseID int64) ([]*types.Enrollment, error) {
	out := []*types.Enrollment{}
	if err := dbc.DB(r.db).
		Where("course_id = ?", courseID).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *enrollmentRepo) DeleteByID(dbc dbctx.Context, id int64) (int64, error) {
	res := dbc.DB(r.db).Where("id = ?", id).Delete(&types.Enrollment{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
