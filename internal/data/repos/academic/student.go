package academic

import (
	"errors"

	"gorm.io/gorm"

	types "github.com/mpac-commercial/course-design-assessment/internal/domain"
	"github.com/mpac-commercial/course-design-assessment/internal/platform/dbctx"
	"github.com/mpac-commercial/course-design-assessment/internal/platform/logger"
)

type StudentRepo interface {
	Create(dbc dbctx.Context, student *types.Student) (*types.Student, error)
	GetByID(dbc dbctx.Context, id int64) (*types.Student, error)
	GetByIDs(dbc dbctx.Context, ids []int64) ([]*types.Student, error)
}

type studentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStudentRepo(db *gorm.DB, baseLog *logger.Logger) StudentRepo {
	repoLog := baseLog.With("repo", "StudentRepo")
	return &studentRepo{db: db, log: repoLog}
}

func (r *studentRepo) Create(dbc dbctx.Context, student *types.Student) (*types.Student, error) {
	if student == nil {
		return nil, errors.New("nil student")
	}
	if err := dbc.DB(r.db).Create(student).Error; err != nil {
		return nil, err
	}
	return student, nil
}

func (r *studentRepo) GetByID(dbc dbctx.Context, id int64) (*types.Student, error) {
	if id <= 0 {
		return nil, nil
	}
	var out types.Student
	err := dbc.DB(r.db).Where("id = ?", id).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetByIDs returns the students in the order of ids; unknown ids are skipped.
func (r *studentRepo) GetByIDs(dbc dbctx.Context, ids []int64) ([]*types.Student, error) {
	out := []*types.Student{}
	if len(ids) == 0 {
		return out, nil
	}
	var rows []*types.Student
	if err := dbc.DB(r.db).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	byID := make(map[int64]*types.Student, len(rows))
	for _, s := range rows {
		byID[s.ID] = s
	}
	for _, id := range ids {
		if s, ok := byID[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}
