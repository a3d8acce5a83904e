package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Response struct {
	Status  int    `json:"-"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Detail  any    `json:"detail,omitempty"`
}

func NewResponse(status int, msg string, detail any) Response {
	return Response{Status: status, Success: false, Message: msg, Detail: detail}
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, msg, detail)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// ValidationDetail lists the failed binding rules, or nil for errors that
// did not come from the validator (malformed JSON, wrong types).
func ValidationDetail(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	detail := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		detail = append(detail, FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	return detail
}
