package academic

import (
	"errors"

	"gorm.io/gorm"

	types "github.com/mpac-commercial/course-design-assessment/internal/domain"
	"github.com/mpac-commercial/course-design-assessment/internal/platform/dbctx"
	"github.com/mpac-commercial/course-design-assessment/internal/platform/logger"
)

type AssignmentRepo interface {
	Create(dbc dbctx.Context, assignment *types.Assignment) (*types.Assignment, error)
	GetByID(dbc dbctx.Context, id int64) (*types.Assignment, error)
	GetByCourseAndName(dbc dbctx.Context, courseID int64, name string) (*types.Assignment, error)
	ListByCourseID(dbc dbctx.Context, courseID int64) ([]*types.Assignment, error)
}

type assignmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAssignmentRepo(db *gorm.DB, baseLog *logger.Logger) AssignmentRepo {
	repoLog := baseLog.With("repo", "AssignmentRepo")
	return &assignmentRepo{db: db, log: repoLog}
}

func (r *assignmentRepo) Create(dbc dbctx.Context, assignment *types.Assignment) (*types.Assignment, error) {
	if assignment == nil {
		return nil, errors.New("nil assignment")
	}
	if err := dbc.DB(r.db).Omit("Course").Create(assignment).Error; err != nil {
		return nil, err
	}
	return assignment, nil
}

func (r *assignmentRepo) GetByID(dbc dbctx.Context, id int64) (*types.Assignment, error) {
	if id <= 0 {
		return nil, nil
	}
	var out types.Assignment
	err := dbc.DB(r.db).Where("id = ?", id).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *assignmentRepo) GetByCourseAndName(dbc dbctx.Context, courseID int64, name string) (*types.Assignment, error) {
	var out types.Assignment
	err := dbc.DB(r.db).
		Where("course_id = ? AND name = ?", courseID, name).
		First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *assignmentRepo) ListByCourseID(dbc dbctx.Context, courseID int64) ([]*types.Assignment, error) {
	out := []*types.Assignment{}
	if err := dbc.DB(r.db).
		Where("course_id = ?", courseID).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
