package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tresahq/cashbook_cli/internal/apperrors"
	"github.com/tresahq/cashbook_cli/internal/client"
	"github.com/tresahq/cashbook_cli/internal/dto"
)

// fakeSession is an in-memory SessionStore recording credential changes.
type fakeSession struct {
	mu      sync.Mutex
	cookies map[string]string
	cleared int
}

func newFakeSession() *fakeSession {
	return &fakeSession{cookies: make(map[string]string)}
}

func (s *fakeSession) Cookies() []*http.Cookie {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*http.Cookie, 0, len(s.cookies))
	for name, value := range s.cookies {
		out = append(out, &http.Cookie{Name: name, Value: value})
	}
	return out
}

func (s *fakeSession) SetCookies(cookies []*http.Cookie) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range cookies {
		s.cookies[c.Name] = c.Value
	}
	return nil
}

func (s *fakeSession) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cookies = make(map[string]string)
	s.cleared++
	return nil
}

func (s *fakeSession) clearCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cleared
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func fail(c *gin.Context, status int, message string, fields map[string][]string) {
	body := gin.H{"success": false, "message": message}
	if fields != nil {
		body["errors"] = fields
	}
	c.JSON(status, body)
}

func newTestClient(t *testing.T, register func(r *gin.Engine)) (*client.Client, *fakeSession, *int) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	register(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	sess := newFakeSession()
	hookCalls := 0
	c := client.New(srv.URL, sess,
		client.WithUnauthenticatedHook(func() { hookCalls++ }))
	return c, sess, &hookCalls
}

func TestEnvelopeDecoding(t *testing.T) {
	c, _, _ := newTestClient(t, func(r *gin.Engine) {
		r.GET("/cashbooks/:id", func(ctx *gin.Context) {
			ok(ctx, gin.H{"id": ctx.Param("id"), "name": "Shop", "balance": "120.50"})
		})
	})

	book, err := c.GetCashbook(context.Background(), "cb-1")
	require.NoError(t, err)
	assert.Equal(t, "cb-1", book.ID)
	assert.Equal(t, "Shop", book.Name)
	assert.Equal(t, "120.50", book.Balance)
}

func TestErrorMapping(t *testing.T) {
	c, _, _ := newTestClient(t, func(r *gin.Engine) {
		r.GET("/cashbooks/:id", func(ctx *gin.Context) {
			fail(ctx, http.StatusNotFound, "cashbook not found", nil)
		})
	})

	_, err := c.GetCashbook(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	apiErr, isAPI := apperrors.AsAPIError(err)
	require.True(t, isAPI)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "cashbook not found", apiErr.Message)
}

func TestFieldErrorsParsed(t *testing.T) {
	c, _, _ := newTestClient(t, func(r *gin.Engine) {
		r.POST("/cashbooks/workspace/:id", func(ctx *gin.Context) {
			fail(ctx, http.StatusBadRequest, "validation failed", map[string][]string{
				"name": {"name is required"},
			})
		})
	})

	_, err := c.CreateCashbook(context.Background(), "ws-1", dto.CreateCashbookRequest{Name: "x"})
	require.Error(t, err)

	apiErr, isAPI := apperrors.AsAPIError(err)
	require.True(t, isAPI)
	assert.Equal(t, []string{"name is required"}, apiErr.FieldErrors["name"])
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestCookiesPersistedFromResponse(t *testing.T) {
	c, sess, _ := newTestClient(t, func(r *gin.Engine) {
		r.POST("/auth/login", func(ctx *gin.Context) {
			ctx.SetCookie("accessToken", "tok-123", 3600, "/", "", false, true)
			ok(ctx, gin.H{"user": gin.H{"id": "u-1", "email": "a@b.c", "firstName": "Ada"}})
		})
	})

	user, _, err := c.Login(context.Background(), dto.LoginRequest{Email: "a@b.c", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.FirstName)
	assert.Equal(t, "tok-123", sess.cookies["accessToken"])
}

func TestUnauthorized_RefreshThenReplaySucceeds(t *testing.T) {
	var listCalls, refreshCalls int
	c, sess, hookCalls := newTestClient(t, func(r *gin.Engine) {
		r.GET("/cashbooks/workspace/:id", func(ctx *gin.Context) {
			listCalls++
			token, _ := ctx.Cookie("accessToken")
			if token != "fresh" {
				fail(ctx, http.StatusUnauthorized, "token expired", nil)
				return
			}
			ok(ctx, []gin.H{{"id": "cb-1", "name": "Shop"}})
		})
		r.POST("/auth/refresh", func(ctx *gin.Context) {
			refreshCalls++
			ctx.SetCookie("accessToken", "fresh", 3600, "/", "", false, true)
			ok(ctx, nil)
		})
	})
	require.NoError(t, sess.SetCookies([]*http.Cookie{{Name: "accessToken", Value: "stale"}}))

	books, err := c.ListCashbooks(context.Background(), "ws-1")
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "cb-1", books[0].ID)

	assert.Equal(t, 2, listCalls, "original call plus exactly one replay")
	assert.Equal(t, 1, refreshCalls)
	assert.Equal(t, 0, sess.clearCount())
	assert.Equal(t, 0, *hookCalls)
}

func TestUnauthorized_RefreshFailureIsTerminal(t *testing.T) {
	var refreshCalls int
	c, sess, hookCalls := newTestClient(t, func(r *gin.Engine) {
		r.GET("/cashbooks/workspace/:id", func(ctx *gin.Context) {
			fail(ctx, http.StatusUnauthorized, "token expired", nil)
		})
		r.POST("/auth/refresh", func(ctx *gin.Context) {
			refreshCalls++
			fail(ctx, http.StatusUnauthorized, "refresh token expired", nil)
		})
	})

	_, err := c.ListCashbooks(context.Background(), "ws-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))

	assert.Equal(t, 1, refreshCalls, "a failed refresh is never retried")
	assert.Equal(t, 1, sess.clearCount())
	assert.Equal(t, 1, *hookCalls)
}

func TestUnauthorized_ReplayFailureIsTerminal(t *testing.T) {
	var listCalls, refreshCalls int
	c, sess, hookCalls := newTestClient(t, func(r *gin.Engine) {
		r.GET("/cashbooks/workspace/:id", func(ctx *gin.Context) {
			listCalls++
			fail(ctx, http.StatusUnauthorized, "still unauthorized", nil)
		})
		r.POST("/auth/refresh", func(ctx *gin.Context) {
			refreshCalls++
			ok(ctx, nil)
		})
	})

	_, err := c.ListCashbooks(context.Background(), "ws-1")
	require.Error(t, err)

	// One original call, one refresh, one replay; never a second cycle.
	assert.Equal(t, 2, listCalls)
	assert.Equal(t, 1, refreshCalls)
	assert.Equal(t, 1, sess.clearCount())
	assert.Equal(t, 1, *hookCalls)
}

func TestUnauthorized_LoginNeverRefreshes(t *testing.T) {
	var refreshCalls int
	c, sess, hookCalls := newTestClient(t, func(r *gin.Engine) {
		r.POST("/auth/login", func(ctx *gin.Context) {
			fail(ctx, http.StatusUnauthorized, "bad credentials", nil)
		})
		r.POST("/auth/refresh", func(ctx *gin.Context) {
			refreshCalls++
			ok(ctx, nil)
		})
	})

	_, _, err := c.Login(context.Background(), dto.LoginRequest{Email: "a@b.c", Password: "wrongpass"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))

	// Bad credentials are surfaced as-is: no refresh, no session wipe.
	assert.Equal(t, 0, refreshCalls)
	assert.Equal(t, 0, sess.clearCount())
	assert.Equal(t, 0, *hookCalls)
}

func TestClientSideValidationBlocksRequest(t *testing.T) {
	requests := 0
	c, _, _ := newTestClient(t, func(r *gin.Engine) {
		r.POST("/auth/login", func(ctx *gin.Context) {
			requests++
			ok(ctx, gin.H{"user": gin.H{"id": "u-1"}})
		})
	})

	_, _, err := c.Login(context.Background(), dto.LoginRequest{Email: "not-an-email", Password: "x"})
	require.Error(t, err)

	var fieldErr *apperrors.FieldValidationError
	require.True(t, errors.As(err, &fieldErr))
	assert.Contains(t, fieldErr.FieldErrors, "email")
	assert.Equal(t, 0, requests, "invalid payloads never reach the wire")
}

func TestEmptyBodyTreatedAsSuccess(t *testing.T) {
	c, _, _ := newTestClient(t, func(r *gin.Engine) {
		r.DELETE("/cashbooks/:id", func(ctx *gin.Context) {
			ctx.Status(http.StatusNoContent)
		})
	})

	err := c.DeleteCashbook(context.Background(), "cb-1")
	assert.NoError(t, err)
}

var _ client.SessionStore = (*fakeSession)(nil)
