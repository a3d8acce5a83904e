//go:build unit

package api_test

import (
	"errors"
	"testing"

	"hotel-backend/internal/handler/middleware"
	"hotel-backend/internal/handler/validation"
	"hotel-backend/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var errDBDown = errors.New("connection refused")

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, validation.RegisterValidators())

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	return router
}

// marked mimics what the use cases return: a low-level cause carrying a
// sentinel mark.
func marked(sentinel error) error {
	return errs.Mark(errs.New("repository failure"), sentinel)
}

type testCase struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}
