package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mpac-commercial/course-design-assessment/internal/http/response"
	"github.com/mpac-commercial/course-design-assessment/internal/platform/logger"
	"github.com/mpac-commercial/course-design-assessment/internal/services"
)

type CourseHandler struct {
	log     *logger.Logger
	records services.RecordsService
}

func NewCourseHandler(log *logger.Logger, records services.RecordsService) *CourseHandler {
	return &CourseHandler{
		log:     log.With("handler", "CourseHandler"),
		records: records,
	}
}

type createCourseRequest struct {
	CourseName *string `json:"course_name" binding:"required"`
}

// POST /course/create
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	const desc = "cannot create course."
	var req createCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondInvalidRequest(c, desc, err)
		return
	}
	out, err := h.records.CreateCourse(c.Request.Context(), *req.CourseName)
	if err != nil {
		response.RespondAggregateError(c, desc, err)
		return
	}
	response.RespondOK(c, out)
}

// GET /course/all
func (h *CourseHandler) ListCourses(c *gin.Context) {
	out, err := h.records.ListCourses(c.Request.Context())
	if err != nil {
		response.RespondAggregateError(c, "cannot list courses.", err)
		return
	}
	response.RespondOK(c, out)
}

// GET /course/:course_id
func (h *CourseHandler) GetCourse(c *gin.Context) {
	const desc = "cannot get course."
	id, err := pathID(c, "course_id")
	if err != nil {
		response.RespondInvalidRequest(c, desc, err)
		return
	}
	out, err := h.records.GetCourse(c.Request.Context(), id)
	if err != nil {
		response.RespondAggregateError(c, desc, err)
		return
	}
	response.RespondOK(c, out)
}

// DELETE /course/delete/:course_id
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	const desc = "cannot delete course."
	id, err := pathID(c, "course_id")
	if err != nil {
		response.RespondInvalidRequest(c, desc, err)
		return
	}
	out, err := h.records.DeleteCourse(c.Request.Context(), id)
	if err != nil {
		response.RespondAggregateError(c, desc, err)
		return
	}
	h.log.Info("course deleted", "course_id", id)
	response.RespondOK(c, out)
}

// GET /course/:course_id/assignments
func (h *CourseHandler) ListAssignments(c *gin.Context) {
	const desc = "cannot list course assignments."
	id, err := pathID(c, "course_id")
	if err != nil {
		response.RespondInvalidRequest(c, desc, err)
		return
	}
	out, err := h.records.ListCourseAssignments(c.Request.Context(), id)
	if err != nil {
		response.RespondAggregateError(c, desc, err)
		return
	}
	response.RespondOK(c, out)
}

// GET /course/:course_id/students
func (h *CourseHandler) ListStudents(c *gin.Context) {
	const desc = "cannot list course students."
	id, err := pathID(c, "course_id")
	if err != nil {
		response.RespondInvalidRequest(c, desc, err)
		return
	}
	out, err := h.records.ListCourseStudents(c.Request.Context(), id)
	if err != nil {
		response.RespondAggregateError(c, desc, err)
		return
	}
	response.RespondOK(c, out)
}
