package academic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpac-commercial/course-design-assessment/internal/data/repos/testutil"
	types "github.com/mpac-commercial/course-design-assessment/internal/domain"
	"github.com/mpac-commercial/course-design-assessment/internal/platform/dbctx"
)

func TestCourseRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewCourseRepo(db, testutil.Logger(t))

	algebra, err := repo.Create(dbc, &types.Course{Name: "Algebra"})
	require.NoError(t, err)
	require.NotZero(t, algebra.ID)
	biology, err := repo.Create(dbc, &types.Course{Name: "Biology"})
	require.NoError(t, err)

	got, err := repo.GetByID(dbc, algebra.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Algebra", got.Name)

	got, err = repo.GetByName(dbc, "Biology")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, biology.ID, got.ID)

	missing, err := repo.GetByID(dbc, biology.ID+100)
	require.NoError(t, err)
	assert.Nil(t, missing)
	missing, err = repo.GetByName(dbc, "biology")
	require.NoError(t, err)
	assert.Nil(t, missing)

	all, err := repo.List(dbc)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, algebra.ID, all[0].ID)
	assert.Equal(t, biology.ID, all[1].ID)

	n, err := repo.DeleteByID(dbc, algebra.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	n, err = repo.DeleteByID(dbc, algebra.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestCourseRepoUniqueName(t *testing.T) {
	db := testutil.DB(t)
	dbc := dbctx.Context{Ctx: context.Background()}
	repo := NewCourseRepo(db, testutil.Logger(t))

	_, err := repo.Create(dbc, &types.Course{Name: "Physics"})
	require.NoError(t, err)
	_, err = repo.Create(dbc, &types.Course{Name: "Physics"})
	assert.Error(t, err)
}
