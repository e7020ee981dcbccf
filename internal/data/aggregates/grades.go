package aggregates

import (
	"fmt"
	"sort"

	"github.com/mpac-commercial/course-design-assessment/internal/data/repos"
	"github.com/mpac-commercial/course-design-assessment/internal/platform/dbctx"
)

// DefaultTopStudents is the ranking size used by the course leaderboard.
const DefaultTopStudents = 5

// GradeEngine is the Aggregation Engine: averages and rankings over submissions.
type GradeEngine struct {
	Submissions repos.SubmissionRepo
}

// RoundedMean returns sum/count rounded half away from zero, in integer arithmetic.
func RoundedMean(sum, count int64) int {
	if count <= 0 {
		return 0
	}
	if sum < 0 {
		return -int((-2*sum + count) / (2 * count))
	}
	return int((2*sum + count) / (2 * count))
}

// AverageGrade returns the rounded mean grade of the matching submissions, or
// a NotFoundError when nothing matches.
func (e GradeEngine) AverageGrade(dbc dbctx.Context, filter repos.GradeFilter) (int, error) {
	totals, err := e.Submissions.GradeTotals(dbc, filter)
	if err != nil {
		return 0, err
	}
	if totals.Count == 0 {
		return 0, NotFoundError(noSubmissionsMessage(filter))
	}
	return RoundedMean(totals.Sum, totals.Count), nil
}

func noSubmissionsMessage(f repos.GradeFilter) string {
	switch {
	case f.StudentID > 0:
		return fmt.Sprintf("no submissions found for student %d in course %d.", f.StudentID, f.CourseID)
	case f.AssignmentID > 0:
		return fmt.Sprintf("no submissions found for assignment %d in course %d.", f.AssignmentID, f.CourseID)
	default:
		return fmt.Sprintf("no submissions found in course %d.", f.CourseID)
	}
}

// TopStudentsByAverage ranks a course's students by exact mean grade,
// descending, ties by ascending student id, and keeps at most limit ids.
func (e GradeEngine) TopStudentsByAverage(dbc dbctx.Context, courseID int64, limit int) ([]int64, error) {
	groups, err := e.Submissions.GradeTotalsByStudent(dbc, courseID)
	if err != nil {
		return nil, err
	}
	return RankByAverage(groups, limit), nil
}

// RankByAverage orders groups by mean without rounding: a ranks above b when
// a.Sum/a.Count > b.Sum/b.Count, compared as a.Sum*b.Count > b.Sum*a.Count.
func RankByAverage(groups []repos.StudentGradeTotals, limit int) []int64 {
	ranked := make([]repos.StudentGradeTotals, 0, len(groups))
	for _, g := range groups {
		if g.Count > 0 {
			ranked = append(ranked, g)
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		lhs, rhs := a.Sum*b.Count, b.Sum*a.Count
		if lhs != rhs {
			return lhs > rhs
		}
		return a.StudentID < b.StudentID
	})
	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]int64, 0, len(ranked))
	for _, g := range ranked {
		out = append(out, g.StudentID)
	}
	return out
}
