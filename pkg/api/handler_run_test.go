package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Only parameter validation is tested here (400 before any service call).
// Happy paths run against a real database in the e2e suite.

func TestListRunsHandler_InvalidLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := &Server{}

	for _, limit := range []string{"abc", "0", "-5", "101"} {
		t.Run("limit="+limit, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/runs?limit="+limit, nil)

			s.listRunsHandler(c)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "invalid limit")
		})
	}
}

func TestGetRunHandler_MissingID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := &Server{}

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/runs/", nil)

	s.getRunHandler(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "run id is required")
}

func TestCancelRunHandler_MissingID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := &Server{}

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/runs//cancel", nil)

	s.cancelRunHandler(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "run id is required")
}
