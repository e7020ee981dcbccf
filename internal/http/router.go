package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/mpac-commercial/course-design-assessment/internal/http/handlers"
	httpMW "github.com/mpac-commercial/course-design-assessment/internal/http/middleware"
	"github.com/mpac-commercial/course-design-assessment/internal/observability"
	"github.com/mpac-commercial/course-design-assessment/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	Metrics     *observability.Metrics
	ServiceName string
	CORSOrigins []string

	CourseHandler     *httpH.CourseHandler
	AssignmentHandler *httpH.AssignmentHandler
	StudentHandler    *httpH.StudentHandler
	SubmissionHandler *httpH.SubmissionHandler
	HealthHandler     *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "course-records"
	}
	r.Use(otelgin.Middleware(serviceName))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapF(cfg.Metrics.WriteHTTP))
	}

	// Course
	if cfg.CourseHandler != nil {
		course := r.Group("/course")
		course.GET("/all", cfg.CourseHandler.ListCourses)
		course.POST("/create", cfg.CourseHandler.CreateCourse)
		course.DELETE("/delete/:course_id", cfg.CourseHandler.DeleteCourse)
		course.GET("/:course_id", cfg.CourseHandler.GetCourse)
		course.GET("/:course_id/assignments", cfg.CourseHandler.ListAssignments)
		course.GET("/:course_id/students", cfg.CourseHandler.ListStudents)
	}

	// Assignment
	if cfg.AssignmentHandler != nil {
		assignment := r.Group("/assignment")
		assignment.POST("/create", cfg.AssignmentHandler.CreateAssignment)
		assignment.GET("/:assignment_id", cfg.AssignmentHandler.GetAssignment)
	}

	// Student
	if cfg.StudentHandler != nil {
		student := r.Group("/student")
		student.POST("/create", cfg.StudentHandler.CreateStudent)
		student.POST("/enroll", cfg.StudentHandler.Enroll)
		student.POST("/dropout", cfg.StudentHandler.Dropout)
		student.GET("/:student_id", cfg.StudentHandler.GetStudent)
	}

	// Submission
	if cfg.SubmissionHandler != nil {
		submission := r.Group("/submission")
		submission.POST("/create", cfg.SubmissionHandler.CreateSubmission)
		submission.GET("/average/student", cfg.SubmissionHandler.AverageForStudent)
		submission.GET("/average/assignment", cfg.SubmissionHandler.AverageForAssignment)
		submission.GET("/top/:course_id", cfg.SubmissionHandler.TopStudents)
	}

	return r
}
