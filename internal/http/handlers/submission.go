package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mpac-commercial/course-design-assessment/internal/http/response"
	"github.com/mpac-commercial/course-design-assessment/internal/platform/logger"
	"github.com/mpac-commercial/course-design-assessment/internal/services"
)

type SubmissionHandler struct {
	log     *logger.Logger
	records services.RecordsService
}

func NewSubmissionHandler(log *logger.Logger, records services.RecordsService) *SubmissionHandler {
	return &SubmissionHandler{
		log:     log.With("handler", "SubmissionHandler"),
		records: records,
	}
}

type createSubmissionRequest struct {
	CourseID     *int64 `json:"course_id" binding:"required"`
	StudentID    *int64 `json:"student_id" binding:"required"`
	AssignmentID *int64 `json:"assignment_id" binding:"required"`
	Grade        *int   `json:"grade" binding:"required"`
}

// POST /submission/create
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	const desc = "cannot create submission."
	var req createSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondInvalidRequest(c, desc, err)
		return
	}
	out, err := h.records.CreateSubmission(c.Request.Context(), services.SubmissionInput{
		CourseID:     *req.CourseID,
		StudentID:    *req.StudentID,
		AssignmentID: *req.AssignmentID,
		Grade:        *req.Grade,
	})
	if err != nil {
		response.RespondAggregateError(c, desc, err)
		return
	}
	response.RespondOK(c, out)
}

// GET /submission/average/student?course_id=&student_id=
func (h *SubmissionHandler) AverageForStudent(c *gin.Context) {
	const desc = "cannot compute student average."
	courseID, err := queryID(c, "course_id")
	if err != nil {
		response.RespondInvalidRequest(c, desc, err)
		return
	}
	studentID, err := queryID(c, "student_id")
	if err != nil {
		response.RespondInvalidRequest(c, desc, err)
		return
	}
	out, err := h.records.AverageGradeForStudent(c.Request.Context(), courseID, studentID)
	if err != nil {
		response.RespondAggregateError(c, desc, err)
		return
	}
	response.RespondOK(c, out)
}

// GET /submission/average/assignment?course_id=&assignment_id=
func (h *SubmissionHandler) AverageForAssignment(c *gin.Context) {
	const desc = "cannot compute assignment average."
	courseID, err := queryID(c, "course_id")
	if err != nil {
		response.RespondInvalidRequest(c, desc, err)
		return
	}
	assignmentID, err := queryID(c, "assignment_id")
	if err != nil {
		response.RespondInvalidRequest(c, desc, err)
		return
	}
	out, err := h.records.AverageGradeForAssignment(c.Request.Context(), courseID, assignmentID)
	if err != nil {
		response.RespondAggregateError(c, desc, err)
		return
	}
	response.RespondOK(c, out)
}

// GET /submission/top/:course_id
func (h *SubmissionHandler) TopStudents(c *gin.Context) {
	const desc = "cannot rank course students."
	courseID, err := pathID(c, "course_id")
	if err != nil {
		response.RespondInvalidRequest(c, desc, err)
		return
	}
	out, err := h.records.TopFiveStudents(c.Request.Context(), courseID)
	if err != nil {
		response.RespondAggregateError(c, desc, err)
		return
	}
	response.RespondOK(c, out)
}
