// Package academic holds the table repositories for courses, students,
// assignments, enrollments and submissions.
//
// Lookups by key return (nil, nil) when the row is absent.
package academic
