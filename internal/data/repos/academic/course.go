package academic

import (
	"errors"

	"gorm.io/gorm"

	types "github.com/mpac-commercial/course-design-assessment/internal/domain"
	"github.com/mpac-commercial/course-design-assessment/internal/platform/dbctx"
	"github.com/mpac-commercial/course-design-assessment/internal/platform/logger"
)

type CourseRepo interface {
	Create(dbc dbctx.Context, course *types.Course) (*types.Course, error)
	GetByID(dbc dbctx.Context, id int64) (*types.Course, error)
	GetByName(dbc dbctx.Context, name string) (*types.Course, error)
	List(dbc dbctx.Context) ([]*types.Course, error)
	DeleteByID(dbc dbctx.Context, id int64) (int64, error)
}

type courseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCourseRepo(db *gorm.DB, baseLog *logger.Logger) CourseRepo {
	repoLog := baseLog.With("repo", "CourseRepo")
	return &courseRepo{db: db, log: repoLog}
}

func (r *courseRepo) Create(dbc dbctx.Context, course *types.Course) (*types.Course, error) {
	if course == nil {
		return nil, errors.New("nil course")
	}
	if err := dbc.DB(r.db).Create(course).Error; err != nil {
		return nil, err
	}
	return course, nil
}

func (r *courseRepo) GetByID(dbc dbctx.Context, id int64) (*types.Course, error) {
	if id <= 0 {
		return nil, nil
	}
	var out types.Course
	err := dbc.DB(r.db).Where("id = ?", id).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *courseRepo) GetByName(dbc dbctx.Context, name string) (*types.Course, error) {
	var out types.Course
	err := dbc.DB(r.db).Where("name = ?", name).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *courseRepo) List(dbc dbctx.Context) ([]*types.Course, error) {
	out := []*types.Course{}
	if err := dbc.DB(r.db).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteByID returns the number of rows removed.
func (r *courseRepo) DeleteByID(dbc dbctx.Context, id int64) (int64, error) {
	res := dbc.DB(r.db).Where("id = ?", id).Delete(&types.Course{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
