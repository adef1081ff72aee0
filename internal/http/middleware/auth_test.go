package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"lodhi/internal/infra"
)

func newAuthedRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	issuer, err := infra.NewTokenIssuer("test-secret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	token, err := issuer.Issue("cust1", "Customer")
	if err != nil {
		t.Fatal(err)
	}

	r := gin.New()
	r.GET("/whoami", Auth(issuer), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id":   CallerID(c),
			"role": CallerRole(c),
		})
	})
	return r, token
}

func TestAuthAcceptsBearerToken(t *testing.T) {
	r, token := newAuthedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if !strings.Contains(body, `"id":"cust1"`) || !strings.Contains(body, `"role":"Customer"`) {
		t.Errorf("body = %s, want claims echoed back", body)
	}
}

func TestAuthRejections(t *testing.T) {
	r, _ := newAuthedRouter(t)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not a bearer token", "Basic abc123"},
		{"invalid token", "Bearer not-a-token"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})
	}
}

func TestCallerHelpersOutsideAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if CallerID(c) != "" || CallerRole(c) != "" {
		t.Error("helpers must be zero-valued outside the middleware")
	}
}
