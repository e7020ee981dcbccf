package app

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mpac-commercial/course-design-assessment/internal/http"
	httpH "github.com/mpac-commercial/course-design-assessment/internal/http/handlers"
	"github.com/mpac-commercial/course-design-assessment/internal/observability"
	"github.com/mpac-commercial/course-design-assessment/internal/platform/logger"
)

type Handlers struct {
	Health     *httpH.HealthHandler
	Course     *httpH.CourseHandler
	Assignment *httpH.AssignmentHandler
	Student    *httpH.StudentHandler
	Submission *httpH.SubmissionHandler
}

func wireHandlers(log *logger.Logger, db *gorm.DB, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:     httpH.NewHealthHandler(db),
		Course:     httpH.NewCourseHandler(log, services.Records),
		Assignment: httpH.NewAssignmentHandler(log, services.Records),
		Student:    httpH.NewStudentHandler(log, services.Records),
		Submission: httpH.NewSubmissionHandler(log, services.Records),
	}
}

func wireRouter(log *logger.Logger, cfg Config, metrics *observability.Metrics, handlers Handlers) *gin.Engine {
	return http.NewRouter(http.RouterConfig{
		Log:               log,
		Metrics:           metrics,
		ServiceName:       cfg.Otel.ServiceName,
		CORSOrigins:       cfg.HTTP.CORSAllowOrigins,
		HealthHandler:     handlers.Health,
		CourseHandler:     handlers.Course,
		AssignmentHandler: handlers.Assignment,
		StudentHandler:    handlers.Student,
		SubmissionHandler: handlers.Submission,
	})
}
