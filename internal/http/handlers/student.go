package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mpac-commercial/course-design-assessment/internal/http/response"
	"github.com/mpac-commercial/course-design-assessment/internal/platform/logger"
	"github.com/mpac-commercial/course-design-assessment/internal/services"
)

type StudentHandler struct {
	log     *logger.Logger
	records services.RecordsService
}

func NewStudentHandler(log *logger.Logger, records services.RecordsService) *StudentHandler {
	return &StudentHandler{
		log:     log.With("handler", "StudentHandler"),
		records: records,
	}
}

type createStudentRequest struct {
	StudentName *string `json:"student_name" binding:"required"`
}

type studentCourseRequest struct {
	StudentID *int64 `json:"student_id" binding:"required"`
	CourseID  *int64 `json:"course_id" binding:"required"`
}

// POST /student/create
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	const desc = "cannot create student."
	var req createStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondInvalidRequest(c, desc, err)
		return
	}
	out, err := h.records.CreateStudent(c.Request.Context(), *req.StudentName)
	if err != nil {
		response.RespondAggregateError(c, desc, err)
		return
	}
	response.RespondOK(c, out)
}

// GET /student/:student_id
func (h *StudentHandler) GetStudent(c *gin.Context) {
	const desc = "cannot get student."
	id, err := pathID(c, "student_id")
	if err != nil {
		response.RespondInvalidRequest(c, desc, err)
		return
	}
	out, err := h.records.GetStudent(c.Request.Context(), id)
	if err != nil {
		response.RespondAggregateError(c, desc, err)
		return
	}
	response.RespondOK(c, out)
}

// POST /student/enroll
func (h *StudentHandler) Enroll(c *gin.Context) {
	const desc = "cannot enroll student."
	var req studentCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondInvalidRequest(c, desc, err)
		return
	}
	out, err := h.records.EnrollStudent(c.Request.Context(), *req.CourseID, *req.StudentID)
	if err != nil {
		response.RespondAggregateError(c, desc, err)
		return
	}
	response.RespondOK(c, out)
}

// POST /student/dropout
func (h *StudentHandler) Dropout(c *gin.Context) {
	const desc = "cannot dropout student."
	var req studentCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondInvalidRequest(c, desc, err)
		return
	}
	out, err := h.records.DropoutStudent(c.Request.Context(), *req.CourseID, *req.StudentID)
	if err != nil {
		response.RespondAggregateError(c, desc, err)
		return
	}
	response.RespondOK(c, out)
}
