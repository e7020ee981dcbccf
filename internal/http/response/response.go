package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainagg "github.com/mpac-commercial/course-design-assessment/internal/domain/aggregates"
)

type APIError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Message     string `json:"message"`
}

type ErrorEnvelope struct {
	Detail APIError `json:"detail"`
}

// RespondError writes {"detail": {...}}. description names the failed
// operation, err supplies the message.
func RespondError(c *gin.Context, status int, code, description string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = domainagg.MessageOf(err)
	}
	c.AbortWithStatusJSON(status, ErrorEnvelope{
		Detail: APIError{
			Code:        code,
			Description: description,
			Message:     msg,
		},
	})
}

// RespondAggregateError maps the error code to its HTTP status. Internal
// errors never leak their cause.
func RespondAggregateError(c *gin.Context, description string, err error) {
	code := domainagg.CodeOf(err)
	if code == "" {
		code = domainagg.CodeInternal
	}
	status := StatusFor(code)
	if code == domainagg.CodeInternal {
		if err != nil {
			_ = c.Error(err)
		}
		c.AbortWithStatusJSON(status, ErrorEnvelope{
			Detail: APIError{
				Code:        string(code),
				Description: description,
				Message:     "internal error",
			},
		})
		return
	}
	RespondError(c, status, string(code), description, err)
}

// RespondInvalidRequest rejects malformed input before the service runs.
func RespondInvalidRequest(c *gin.Context, description string, err error) {
	RespondError(c, http.StatusUnprocessableEntity, string(domainagg.CodeInvalidRequest), description, err)
}

func StatusFor(code domainagg.ErrorCode) int {
	switch code {
	case domainagg.CodeNotFound:
		return http.StatusNotFound
	case domainagg.CodeConflict:
		return http.StatusConflict
	case domainagg.CodeInvalidLength:
		return http.StatusNotAcceptable
	case domainagg.CodeOutOfRange, domainagg.CodeInvalidRequest:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
