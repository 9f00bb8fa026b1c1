package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/models"
	"storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// minimal router wiring only the cookie middleware + an echo endpoint
func newMiddlewareOnlyRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(s, nil, WithSecureCookies(true))
	r.GET("/echo", h.visitorMiddleware, h.sessionMiddleware, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"visitor":     visitorID(c),
			"popup_shown": sessionState(c).PopupShown,
		})
	})
	return r
}

func TestVisitorMiddleware(t *testing.T) {
	const known = "0b6e4f9c-3d2a-4e8b-a1c7-5f9d2e6b8a10"

	cases := []struct {
		name      string
		cookie    string
		wantIssue bool
	}{
		{"no cookie", "", true},
		{"malformed cookie", "not-a-uuid", true},
		{"valid cookie", known, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newMiddlewareOnlyRouter(newTestServices())
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/echo", nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: visitorCookie, Value: tc.cookie})
			}
			r.ServeHTTP(w, req)

			issued := findCookie(w.Result(), visitorCookie)
			if (issued != nil) != tc.wantIssue {
				t.Fatalf("issued = %+v, want issue %v", issued, tc.wantIssue)
			}
			if issued != nil {
				if !validVisitorID(issued.Value) || issued.MaxAge != visitorCookieMaxAge {
					t.Fatalf("bad visitor cookie: %+v", issued)
				}
				if !issued.Secure || !issued.HttpOnly || issued.SameSite != http.SameSiteLaxMode {
					t.Fatalf("cookie flags: %+v", issued)
				}
			}
			if !tc.wantIssue && !strings.Contains(w.Body.String(), known) {
				t.Fatalf("visitor id not propagated: %s", w.Body.String())
			}
		})
	}
}

func TestSessionMiddleware(t *testing.T) {
	s := newTestServices()
	valid, err := s.Session.Issue(models.SessionState{PopupShown: true})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	other, _ := service.NewSessionService("another-key", nil)
	foreign, _ := other.Issue(models.SessionState{PopupShown: true})

	cases := []struct {
		name   string
		cookie string
		want   bool
	}{
		{"fresh session", "", false},
		{"signed marker", valid, true},
		{"foreign signature", foreign, false},
		{"garbage", "x.y.z", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newMiddlewareOnlyRouter(s)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/echo", nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: sessionCookie, Value: tc.cookie})
			}
			r.ServeHTTP(w, req)

			want := `"popup_shown":false`
			if tc.want {
				want = `"popup_shown":true`
			}
			if !strings.Contains(w.Body.String(), want) {
				t.Fatalf("body = %s, want %s", w.Body.String(), want)
			}
		})
	}
}
