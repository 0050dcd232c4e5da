package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fadhlanhapp/sharetab-checkout/handlers"
	"github.com/fadhlanhapp/sharetab-checkout/models"
	"github.com/fadhlanhapp/sharetab-checkout/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRoutes(router, handlers.NewHandlerServices(services.NewCalculationService(models.DefaultPolicy(), nil), nil))

	cases := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodGet, "/healthz", "", http.StatusOK},
		{http.MethodGet, "/api/v1/pricing/policy", "", http.StatusOK},
		{http.MethodPost, "/api/v1/carts/calculate", `{"items":[{"name":"A","unitPrice":1,"quantity":1}]}`, http.StatusOK},
		{http.MethodPost, "/api/v1/carts/export", `{"items":[{"name":"A","unitPrice":1,"quantity":1}]}`, http.StatusOK},
		{http.MethodGet, "/api/v1/carts/calculate", "", http.StatusNotFound},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, tc.status, w.Code, "%s %s", tc.method, tc.path)
	}
}
