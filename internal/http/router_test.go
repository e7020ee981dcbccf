package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpac-commercial/course-design-assessment/internal/data/aggregates"
	"github.com/mpac-commercial/course-design-assessment/internal/data/repos"
	repotest "github.com/mpac-commercial/course-design-assessment/internal/data/repos/testutil"
	types "github.com/mpac-commercial/course-design-assessment/internal/domain"
	httpH "github.com/mpac-commercial/course-design-assessment/internal/http/handlers"
	"github.com/mpac-commercial/course-design-assessment/internal/http/response"
	"github.com/mpac-commercial/course-design-assessment/internal/observability"
	"github.com/mpac-commercial/course-design-assessment/internal/services"
)

type testAPI struct {
	t      *testing.T
	engine *gin.Engine
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := repotest.DB(t)
	log := repotest.Logger(t)
	metrics := observability.New()

	svc := services.NewRecordsServiceWithDeps(services.RecordsServiceDeps{
		Log:         log,
		Base:        aggregates.BaseDeps{DB: db, Log: log, Hooks: aggregates.NewObservabilityHooks(metrics)},
		Courses:     repos.NewCourseRepo(db, log),
		Students:    repos.NewStudentRepo(db, log),
		Assignments: repos.NewAssignmentRepo(db, log),
		Enrollments: repos.NewEnrollmentRepo(db, log),
		Submissions: repos.NewSubmissionRepo(db, log),
	})
	engine := NewRouter(RouterConfig{
		Log:               log,
		Metrics:           metrics,
		CourseHandler:     httpH.NewCourseHandler(log, svc),
		AssignmentHandler: httpH.NewAssignmentHandler(log, svc),
		StudentHandler:    httpH.NewStudentHandler(log, svc),
		SubmissionHandler: httpH.NewSubmissionHandler(log, svc),
		HealthHandler:     httpH.NewHealthHandler(db),
	})
	return &testAPI{t: t, engine: engine}
}

func (a *testAPI) do(method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(a.t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.engine.ServeHTTP(rec, req)
	return rec
}

// call decodes a 200 response into out.
func (a *testAPI) call(method, path string, body any, out any) {
	a.t.Helper()
	rec := a.do(method, path, body)
	if rec.Code != nethttp.StatusOK {
		a.t.Fatalf("%s %s: status want=200 got=%d body=%s", method, path, rec.Code, rec.Body.String())
	}
	if out != nil {
		require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), out))
	}
}

func (a *testAPI) fail(method, path string, body any, status int, code string) response.APIError {
	a.t.Helper()
	rec := a.do(method, path, body)
	if rec.Code != status {
		a.t.Fatalf("%s %s: status want=%d got=%d body=%s", method, path, status, rec.Code, rec.Body.String())
	}
	var env response.ErrorEnvelope
	require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(a.t, code, env.Detail.Code)
	return env.Detail
}

func TestHealthcheck(t *testing.T) {
	api := newTestAPI(t)
	rec := api.do(nethttp.MethodGet, "/healthcheck", nil)
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestCourseRoutes(t *testing.T) {
	api := newTestAPI(t)

	var course types.CourseView
	api.call(nethttp.MethodPost, "/course/create", gin.H{"course_name": "Algebra"}, &course)
	assert.Equal(t, "Algebra", course.CourseName)

	detail := api.fail(nethttp.MethodPost, "/course/create", gin.H{"course_name": "Algebra"}, nethttp.StatusConflict, "conflict")
	assert.Equal(t, "cannot create course.", detail.Description)

	api.fail(nethttp.MethodPost, "/course/create", gin.H{"course_name": ""}, nethttp.StatusNotAcceptable, "invalid_length")
	api.fail(nethttp.MethodPost, "/course/create", gin.H{}, nethttp.StatusUnprocessableEntity, "invalid_request")
	api.fail(nethttp.MethodPost, "/course/create", "{not json", nethttp.StatusUnprocessableEntity, "invalid_request")

	var got types.CourseView
	api.call(nethttp.MethodGet, fmt.Sprintf("/course/%d", course.CourseID), nil, &got)
	assert.Equal(t, course, got)

	var all types.CourseListView
	api.call(nethttp.MethodGet, "/course/all", nil, &all)
	assert.Equal(t, 1, all.CountCourse)
	assert.Equal(t, []types.CourseView{course}, all.CourseList)

	api.fail(nethttp.MethodGet, "/course/abc", nil, nethttp.StatusUnprocessableEntity, "invalid_request")

	var deleted types.CourseView
	api.call(nethttp.MethodDelete, fmt.Sprintf("/course/delete/%d", course.CourseID), nil, &deleted)
	assert.Equal(t, course, deleted)

	detail = api.fail(nethttp.MethodGet, fmt.Sprintf("/course/%d", course.CourseID), nil, nethttp.StatusNotFound, "not_found")
	assert.Equal(t, fmt.Sprintf("course not found with ID %d.", course.CourseID), detail.Message)
}

func TestEnrollmentAndGradingFlow(t *testing.T) {
	api := newTestAPI(t)

	var course types.CourseView
	api.call(nethttp.MethodPost, "/course/create", gin.H{"course_name": "Physics"}, &course)
	var hw types.AssignmentView
	api.call(nethttp.MethodPost, "/assignment/create", gin.H{"course_id": course.CourseID, "assignment_name": "HW1"}, &hw)
	assert.Equal(t, course, hw.CourseInstance)

	api.fail(nethttp.MethodPost, "/assignment/create", gin.H{"course_id": 999, "assignment_name": "HW1"}, nethttp.StatusNotFound, "not_found")

	var gotHW types.AssignmentView
	api.call(nethttp.MethodGet, fmt.Sprintf("/assignment/%d", hw.AssignmentID), nil, &gotHW)
	assert.Equal(t, hw, gotHW)

	var listed []types.AssignmentView
	api.call(nethttp.MethodGet, fmt.Sprintf("/course/%d/assignments", course.CourseID), nil, &listed)
	assert.Equal(t, []types.AssignmentView{hw}, listed)

	students := make([]types.StudentView, 0, 3)
	for _, name := range []string{"Ada", "Alan", "Grace"} {
		var s types.StudentView
		api.call(nethttp.MethodPost, "/student/create", gin.H{"student_name": name}, &s)
		students = append(students, s)

		var sc types.StudentCourseView
		api.call(nethttp.MethodPost, "/student/enroll", gin.H{"student_id": s.StudentID, "course_id": course.CourseID}, &sc)
		assert.Equal(t, s, sc.StudentInstance)
	}
	api.fail(nethttp.MethodPost, "/student/enroll", gin.H{"student_id": students[0].StudentID, "course_id": course.CourseID}, nethttp.StatusConflict, "conflict")

	var enrolled []types.StudentView
	api.call(nethttp.MethodGet, fmt.Sprintf("/course/%d/students", course.CourseID), nil, &enrolled)
	assert.Equal(t, students, enrolled)

	for i, grade := range []int{70, 90, 0} {
		var sub types.SubmissionView
		api.call(nethttp.MethodPost, "/submission/create", gin.H{
			"course_id": course.CourseID, "student_id": students[i].StudentID,
			"assignment_id": hw.AssignmentID, "grade": grade,
		}, &sub)
		assert.Equal(t, grade, sub.Grade)
	}
	api.fail(nethttp.MethodPost, "/submission/create", gin.H{
		"course_id": course.CourseID, "student_id": students[0].StudentID,
		"assignment_id": hw.AssignmentID, "grade": 101,
	}, nethttp.StatusUnprocessableEntity, "out_of_range")
	api.fail(nethttp.MethodPost, "/submission/create", gin.H{
		"course_id": course.CourseID, "student_id": students[0].StudentID, "assignment_id": hw.AssignmentID,
	}, nethttp.StatusUnprocessableEntity, "invalid_request")

	var byStudent types.SubmissionAvgCourseStudent
	api.call(nethttp.MethodGet, fmt.Sprintf("/submission/average/student?course_id=%d&student_id=%d", course.CourseID, students[1].StudentID), nil, &byStudent)
	assert.Equal(t, 90, byStudent.Grade)
	assert.Equal(t, students[1], byStudent.StudentInstance)

	var byAssignment types.SubmissionAvgCourseAssignment
	api.call(nethttp.MethodGet, fmt.Sprintf("/submission/average/assignment?course_id=%d&assignment_id=%d", course.CourseID, hw.AssignmentID), nil, &byAssignment)
	// (70 + 90 + 0) / 3 = 53.33
	assert.Equal(t, 53, byAssignment.Grade)

	api.fail(nethttp.MethodGet, fmt.Sprintf("/submission/average/student?course_id=%d", course.CourseID), nil, nethttp.StatusUnprocessableEntity, "invalid_request")

	var top types.SubmissionTopCourseGrades
	api.call(nethttp.MethodGet, fmt.Sprintf("/submission/top/%d", course.CourseID), nil, &top)
	assert.Equal(t, []int64{students[1].StudentID, students[0].StudentID, students[2].StudentID}, top.Students)

	var dropped types.StudentCourseView
	api.call(nethttp.MethodPost, "/student/dropout", gin.H{"student_id": students[2].StudentID, "course_id": course.CourseID}, &dropped)
	assert.Equal(t, students[2], dropped.StudentInstance)
	api.fail(nethttp.MethodPost, "/student/dropout", gin.H{"student_id": students[2].StudentID, "course_id": course.CourseID}, nethttp.StatusNotFound, "not_found")

	detail := api.fail(nethttp.MethodDelete, fmt.Sprintf("/course/delete/%d", course.CourseID), nil, nethttp.StatusConflict, "conflict")
	assert.Equal(t, "cannot delete course.", detail.Description)
}

func TestMetricsRoute(t *testing.T) {
	api := newTestAPI(t)
	api.call(nethttp.MethodPost, "/course/create", gin.H{"course_name": "Metrics"}, nil)

	rec := api.do(nethttp.MethodGet, "/metrics", nil)
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `records_aggregate_operations_total{operation="Records.Catalog.CreateCourse",status="success"} 1.000000`)
	assert.Contains(t, rec.Body.String(), `records_api_requests_total{method="POST",route="/course/create",status="200"} 1.000000`)
}
