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

func TestAssignmentRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewAssignmentRepo(db, testutil.Logger(t))

	math := testutil.SeedCourse(t, ctx, tx, "Math")
	art := testutil.SeedCourse(t, ctx, tx, "Art")

	hw1, err := repo.Create(dbc, &types.Assignment{CourseID: math.ID, Name: "HW1"})
	require.NoError(t, err)
	hw2, err := repo.Create(dbc, &types.Assignment{CourseID: math.ID, Name: "HW2"})
	require.NoError(t, err)
	// Same name in another course is allowed.
	_, err = repo.Create(dbc, &types.Assignment{CourseID: art.ID, Name: "HW1"})
	require.NoError(t, err)

	got, err := repo.GetByID(dbc, hw1.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, math.ID, got.CourseID)

	got, err = repo.GetByCourseAndName(dbc, math.ID, "HW2")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, hw2.ID, got.ID)

	got, err = repo.GetByCourseAndName(dbc, art.ID, "HW2")
	require.NoError(t, err)
	assert.Nil(t, got)

	list, err := repo.ListByCourseID(dbc, math.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, []int64{hw1.ID, hw2.ID}, []int64{list[0].ID, list[1].ID})
}

func TestAssignmentRepoConstraints(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx}
	repo := NewAssignmentRepo(db, testutil.Logger(t))

	math := testutil.SeedCourse(t, ctx, db, "Math")
	_, err := repo.Create(dbc, &types.Assignment{CourseID: math.ID, Name: "HW1"})
	require.NoError(t, err)

	_, err = repo.Create(dbc, &types.Assignment{CourseID: math.ID, Name: "HW1"})
	assert.Error(t, err, "duplicate (course_id, name)")

	_, err = repo.Create(dbc, &types.Assignment{CourseID: math.ID + 50, Name: "HW1"})
	assert.Error(t, err, "missing course")
}
