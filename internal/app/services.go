package app

import (
	"gorm.io/gorm"

	"github.com/mpac-commercial/course-design-assessment/internal/data/aggregates"
	"github.com/mpac-commercial/course-design-assessment/internal/observability"
	"github.com/mpac-commercial/course-design-assessment/internal/platform/logger"
	"github.com/mpac-commercial/course-design-assessment/internal/services"
)

type Services struct {
	Records services.RecordsService
}

func wireServices(db *gorm.DB, log *logger.Logger, metrics *observability.Metrics, reposet Repos) Services {
	log.Info("Wiring services...")
	base := aggregates.BaseDeps{
		DB:     db,
		Log:    log,
		Runner: aggregates.NewGormTxRunner(db),
		Hooks:  aggregates.NewObservabilityHooks(metrics),
	}
	return Services{
		Records: services.NewRecordsServiceWithDeps(services.RecordsServiceDeps{
			Log:         log,
			Base:        base,
			Courses:     reposet.Course,
			Students:    reposet.Student,
			Assignments: reposet.Assignment,
			Enrollments: reposet.Enrollment,
			Submissions: reposet.Submission,
		}),
	}
}
