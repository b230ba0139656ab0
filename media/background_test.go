package media

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBackground = Background{
	Sources:  []string{"https://a/1.mp4", "https://b/2.mp4", "https://c/3.mp4"},
	Fallback: "/static/img/hero-fallback.svg",
}

func rejecting(bad ...string) CheckerFunc {
	return func(_ context.Context, url string) error {
		for _, b := range bad {
			if b == url {
				return errors.New("unplayable")
			}
		}
		return nil
	}
}

func TestResolvePicksFirstWorkingSource(t *testing.T) {
	c := Resolve(context.Background(), testBackground, rejecting("https://a/1.mp4"))

	assert.True(t, c.Video)
	assert.Equal(t, "https://b/2.mp4", c.URL)
	require.Len(t, c.Attempts, 2, "the chain stops at the first success")
	assert.Error(t, c.Attempts[0].Err)
	assert.NoError(t, c.Attempts[1].Err)

	assert.Equal(t, []string{"https://c/3.mp4"}, c.Backups)
	assert.Equal(t, []string{"https://b/2.mp4", "https://c/3.mp4"}, c.Sources())
	assert.Equal(t, testBackground.Fallback, c.Fallback)
}

func TestResolveTrustingCheckerKeepsEverySource(t *testing.T) {
	trust := CheckerFunc(func(context.Context, string) error { return nil })
	c := Resolve(context.Background(), testBackground, trust)

	assert.True(t, c.Video)
	assert.Equal(t, testBackground.Sources, c.Sources())
	assert.Equal(t, testBackground.Fallback, c.Fallback)
}

func TestResolveFallsBackWhenAllFail(t *testing.T) {
	c := Resolve(context.Background(), testBackground, rejecting(testBackground.Sources...))

	assert.False(t, c.Video)
	assert.Equal(t, testBackground.Fallback, c.URL)
	assert.Len(t, c.Attempts, 3)
	assert.Empty(t, c.Sources())
}

func TestResolveStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	checker := CheckerFunc(func(context.Context, string) error {
		calls++
		cancel()
		return errors.New("timed out")
	})

	c := Resolve(ctx, testBackground, checker)
	assert.Equal(t, 1, calls)
	assert.Equal(t, testBackground.Fallback, c.URL)
}

func TestResolveWithoutCheckerUsesFallback(t *testing.T) {
	c := Resolve(context.Background(), testBackground, nil)
	assert.Equal(t, testBackground.Fallback, c.URL)
	assert.Empty(t, c.Attempts)
}

func TestHTTPChecker(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		if r.URL.Path == "/missing.mp4" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "video/mp4")
	}))
	defer srv.Close()

	p := NewHTTPChecker(time.Second)
	assert.NoError(t, p.Check(context.Background(), srv.URL+"/hero.mp4"))
	assert.Error(t, p.Check(context.Background(), srv.URL+"/missing.mp4"))

	bg := Background{Sources: []string{srv.URL + "/missing.mp4", srv.URL + "/hero.mp4"}, Fallback: "x.svg"}
	c := Resolve(context.Background(), bg, p)
	assert.Equal(t, srv.URL+"/hero.mp4", c.URL)
}
