package aggregates

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mpac-commercial/course-design-assessment/internal/data/repos"
	repotest "github.com/mpac-commercial/course-design-assessment/internal/data/repos/testutil"
	types "github.com/mpac-commercial/course-design-assessment/internal/domain"
	"github.com/mpac-commercial/course-design-assessment/internal/platform/dbctx"
)

func newTestGuards(t *testing.T, db *gorm.DB) Guards {
	t.Helper()
	log := repotest.Logger(t)
	return Guards{
		Courses:     repos.NewCourseRepo(db, log),
		Students:    repos.NewStudentRepo(db, log),
		Assignments: repos.NewAssignmentRepo(db, log),
		Enrollments: repos.NewEnrollmentRepo(db, log),
		Submissions: repos.NewSubmissionRepo(db, log),
	}
}

func TestNameLengthGuards(t *testing.T) {
	g := Guards{}
	checks := map[string]func(string) error{
		"course":     g.ValidateCourseName,
		"assignment": g.ValidateAssignmentName,
		"student":    g.ValidateStudentName,
	}
	limits := map[string]int{"course": 100, "assignment": 100, "student": 50}

	for kind, check := range checks {
		max := limits[kind]
		cases := []struct {
			name  string
			input string
			ok    bool
		}{
			{"single", "a", true},
			{"at limit", strings.Repeat("x", max), true},
			{"over limit", strings.Repeat("x", max+1), false},
			{"empty", "", false},
			{"blank counts as characters", "   ", true},
			{"leading space over limit", " " + strings.Repeat("x", max), false},
			{"trailing space over limit", strings.Repeat("x", max) + " ", false},
			{"multibyte at limit", strings.Repeat("é", max), true},
			{"multibyte over limit", strings.Repeat("é", max+1), false},
			{"invalid utf8", "ab\xff", false},
		}
		for _, tc := range cases {
			err := check(tc.input)
			if tc.ok {
				assert.NoError(t, err, "%s/%s", kind, tc.name)
				continue
			}
			assert.ErrorIs(t, err, ErrInvalidLength, "%s/%s", kind, tc.name)
		}
	}
}

func TestGradeRangeGuard(t *testing.T) {
	g := Guards{}
	for _, grade := range []int{0, 1, 50, 99, 100} {
		assert.NoError(t, g.ValidateGradeRange(grade), grade)
	}
	for _, grade := range []int{-10, -1, 101, 110} {
		assert.ErrorIs(t, g.ValidateGradeRange(grade), ErrOutOfRange, grade)
	}
}

func TestReferenceGuards(t *testing.T) {
	db := repotest.DB(t)
	tx := repotest.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	g := newTestGuards(t, db)

	math := repotest.SeedCourse(t, ctx, tx, "Math")
	art := repotest.SeedCourse(t, ctx, tx, "Art")
	ada := repotest.SeedStudent(t, ctx, tx, "Ada")
	hw := repotest.SeedAssignment(t, ctx, tx, math.ID, "HW1")
	repotest.SeedEnrollment(t, ctx, tx, math.ID, ada.ID)
	repotest.SeedSubmission(t, ctx, tx, math.ID, ada.ID, hw.ID, 70)

	c, err := g.ValidateCourseExists(dbc, math.ID)
	require.NoError(t, err)
	assert.Equal(t, "Math", c.Name)
	_, err = g.ValidateCourseExists(dbc, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "9999")

	_, err = g.ValidateStudentExists(dbc, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = g.ValidateAssignmentExists(dbc, 9999)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, g.ValidateCourseUnique(dbc, "Math"), ErrConflict)
	assert.NoError(t, g.ValidateCourseUnique(dbc, "Music"))

	assert.ErrorIs(t, g.ValidateAssignmentUnique(dbc, math.ID, "HW1"), ErrConflict)
	assert.NoError(t, g.ValidateAssignmentUnique(dbc, art.ID, "HW1"))

	assert.ErrorIs(t, g.ValidateEnrollmentAbsent(dbc, math.ID, ada.ID), ErrConflict)
	assert.NoError(t, g.ValidateEnrollmentAbsent(dbc, art.ID, ada.ID))
	_, err = g.ValidateEnrollmentPresent(dbc, art.ID, ada.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	a, err := g.ValidateSubmissionConsistency(dbc, math.ID, hw.ID)
	require.NoError(t, err)
	assert.Equal(t, hw.ID, a.ID)
	_, err = g.ValidateSubmissionConsistency(dbc, art.ID, hw.ID)
	assert.ErrorIs(t, err, ErrConflict)
	_, err = g.ValidateSubmissionConsistency(dbc, art.ID, 9999)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, g.ValidateSubmissionUnique(dbc, math.ID, hw.ID, ada.ID), ErrConflict)
	assert.NoError(t, g.ValidateSubmissionUnique(dbc, art.ID, hw.ID, ada.ID))
}

func TestGuardsPropagateStoreErrors(t *testing.T) {
	boom := errors.New("connection reset")
	g := Guards{Courses: failingCourseRepo{err: boom}}

	_, err := g.ValidateCourseExists(dbctx.Context{Ctx: context.Background()}, 1)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNotFound)
}

type failingCourseRepo struct {
	repos.CourseRepo
	err error
}

func (r failingCourseRepo) GetByID(dbctx.Context, int64) (*types.Course, error) { return nil, r.err }
