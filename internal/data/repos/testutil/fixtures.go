package testutil

import (
	"context"
	"testing"

	"gorm.io/gorm"

	types "github.com/mpac-commercial/course-design-assessment/internal/domain"
)

func SeedCourse(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Course {
	tb.Helper()
	c := &types.Course{Name: name}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed course: %v", err)
	}
	return c
}

func SeedStudent(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Student {
	tb.Helper()
	s := &types.Student{Name: name}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed student: %v", err)
	}
	return s
}

func SeedAssignment(tb testing.TB, ctx context.Context, tx *gorm.DB, courseID int64, name string) *types.Assignment {
	tb.Helper()
	a := &types.Assignment{CourseID: courseID, Name: name}
	if err := tx.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed assignment: %v", err)
	}
	return a
}

func SeedEnrollment(tb testing.TB, ctx context.Context, tx *gorm.DB, courseID, studentID int64) *types.Enrollment {
	tb.Helper()
	e := &types.Enrollment{CourseID: courseID, StudentID: studentID}
	if err := tx.WithContext(ctx).Create(e).Error; err != nil {
		tb.Fatalf("seed enrollment: %v", err)
	}
	return e
}

func SeedSubmission(tb testing.TB, ctx context.Context, tx *gorm.DB, courseID, studentID, assignmentID int64, grade int) *types.Submission {
	tb.Helper()
	s := &types.Submission{CourseID: courseID, StudentID: studentID, AssignmentID: assignmentID, Grade: grade}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed submission: %v", err)
	}
	return s
}
