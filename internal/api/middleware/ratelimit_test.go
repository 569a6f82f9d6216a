package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type stubCounterStore struct {
	count int64
	ttl   time.Duration
	err   error
}

func (s *stubCounterStore) Incr(context.Context, string, time.Duration) (int64, time.Duration, error) {
	if s.err != nil {
		return 0, 0, s.err
	}
	s.count++
	return s.count, s.ttl, nil
}

func limitedHandler(store CounterStore, limit int64) echo.HandlerFunc {
	mw := RateLimit(RateLimitConfig{
		Store:  store,
		Limit:  limit,
		Window: 15 * time.Minute,
		Scope:  "auth",
		Log:    zerolog.Nop(),
	})
	return mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
}

func TestRateLimit_UnderLimit(t *testing.T) {
	e := echo.New()
	handler := limitedHandler(&stubCounterStore{ttl: 10 * time.Minute}, 5)

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		rec := httptest.NewRecorder()
		if err := handler(e.NewContext(req, rec)); err != nil {
			t.Fatalf("request %d rejected: %v", i+1, err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, rec.Code)
		}
	}
}

func TestRateLimit_OverLimit(t *testing.T) {
	e := echo.New()
	store := &stubCounterStore{ttl: 10 * time.Minute}
	handler := limitedHandler(store, 5)

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		if err := handler(e.NewContext(req, httptest.NewRecorder())); err != nil {
			t.Fatalf("request %d rejected: %v", i+1, err)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := handler(c)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 on sixth request, got %v", err)
	}

	retryAfter, convErr := strconv.Atoi(c.Response().Header().Get("Retry-After"))
	if convErr != nil {
		t.Fatalf("Retry-After not set or not numeric: %v", convErr)
	}
	if retryAfter != 600 {
		t.Fatalf("expected Retry-After 600, got %d", retryAfter)
	}
}

func TestRateLimit_RetryAfterFloor(t *testing.T) {
	e := echo.New()
	store := &stubCounterStore{count: 10, ttl: 50 * time.Millisecond}
	handler := limitedHandler(store, 5)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := handler(c); err == nil {
		t.Fatalf("expected rejection")
	}
	if got := c.Response().Header().Get("Retry-After"); got != "1" {
		t.Fatalf("expected Retry-After floor of 1, got %q", got)
	}
}

func TestRateLimit_FailsOpen(t *testing.T) {
	e := echo.New()
	store := &stubCounterStore{err: errors.New("store down")}
	handler := limitedHandler(store, 5)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	if err := handler(e.NewContext(req, rec)); err != nil {
		t.Fatalf("expected fail-open on store error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
