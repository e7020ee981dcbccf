package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mpac-commercial/course-design-assessment/internal/http/response"
	"github.com/mpac-commercial/course-design-assessment/internal/platform/logger"
	"github.com/mpac-commercial/course-design-assessment/internal/services"
)

type AssignmentHandler struct {
	log     *logger.Logger
	records services.RecordsService
}

func NewAssignmentHandler(log *logger.Logger, records services.RecordsService) *AssignmentHandler {
	return &AssignmentHandler{
		log:     log.With("handler", "AssignmentHandler"),
		records: records,
	}
}

type createAssignmentRequest struct {
	CourseID       *int64  `json:"course_id" binding:"required"`
	AssignmentName *string `json:"assignment_name" binding:"required"`
}

// POST /assignment/create
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	const desc = "cannot create assignment."
	var req createAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondInvalidRequest(c, desc, err)
		return
	}
	out, err := h.records.CreateAssignment(c.Request.Context(), *req.CourseID, *req.AssignmentName)
	if err != nil {
		response.RespondAggregateError(c, desc, err)
		return
	}
	response.RespondOK(c, out)
}

// GET /assignment/:assignment_id
func (h *AssignmentHandler) GetAssignment(c *gin.Context) {
	const desc = "cannot get assignment."
	id, err := pathID(c, "assignment_id")
	if err != nil {
		response.RespondInvalidRequest(c, desc, err)
		return
	}
	out, err := h.records.GetAssignment(c.Request.Context(), id)
	if err != nil {
		response.RespondAggregateError(c, desc, err)
		return
	}
	response.RespondOK(c, out)
}
