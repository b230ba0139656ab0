// Package media picks the hero background: the first reachable video source,
// or a static image when none of them answers.
package media

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
)

// Background lists candidate video sources in preference order plus a static fallback image
type Background struct {
	Sources  []string `yaml:"sources" validate:"dive,required"`
	Fallback string   `yaml:"fallback"`
}

// DefaultFallback is the hero image shipped with the static assets
const DefaultFallback = "/static/img/hero-fallback.svg"

// Checker checks that a source can be played
type Checker interface {
	Check(ctx context.Context, url string) error
}

// CheckerFunc adapts a func to Checker
type CheckerFunc func(ctx context.Context, url string) error

func (f CheckerFunc) Check(ctx context.Context, url string) error { return f(ctx, url) }

// Attempt records the outcome of checking one source
type Attempt struct {
	URL string
	Err error
}

// Choice is what the hero renders
type Choice struct {
	URL      string
	Video    bool     // false when the fallback image was chosen
	Backups  []string // unchecked sources after URL, still in preference order
	Fallback string
	Attempts []Attempt
}

// Sources lists the video sources the player should try in order.
// It is empty when the fallback image was chosen.
func (c Choice) Sources() []string {
	if !c.Video {
		return nil
	}
	return append([]string{c.URL}, c.Backups...)
}

// Resolve walks the sources in order and stops at the first one the checker accepts.
// When every source fails, or ctx is done, the fallback image is chosen. Resolve never fails.
func Resolve(ctx context.Context, bg Background, checker Checker) Choice {
	var choice Choice
	if bg.Fallback == "" {
		bg.Fallback = DefaultFallback
	}

	if checker == nil {
		return Choice{URL: bg.Fallback, Fallback: bg.Fallback}
	}
	choice.Fallback = bg.Fallback

	for i, src := range bg.Sources {
		if err := ctx.Err(); err != nil {
			logger.Debug("Background resolution cancelled", "tried", strconv.Itoa(len(choice.Attempts)))
			break
		}

		err := checker.Check(ctx, src)
		choice.Attempts = append(choice.Attempts, Attempt{URL: src, Err: err})
		if err == nil {
			logger.Debug("Background video selected", "url", src)
			choice.URL = src
			choice.Video = true
			choice.Backups = append([]string(nil), bg.Sources[i+1:]...)
			return choice
		}
		logger.LogErr(err, "background video source failed", "url", src)
	}

	choice.URL = bg.Fallback
	return choice
}

// HTTPChecker checks a source with a HEAD request
type HTTPChecker struct {
	Client  *http.Client
	Timeout time.Duration
}

// NewHTTPChecker returns a checker that gives each source at most timeout to answer
func NewHTTPChecker(timeout time.Duration) *HTTPChecker {
	return &HTTPChecker{Client: &http.Client{}, Timeout: timeout}
}

func (p *HTTPChecker) Check(ctx context.Context, url string) error {
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return serr.Wrap(err, "failed to build check request")
	}

	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return serr.Wrap(err, "check request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return serr.New("source answered " + resp.Status)
	}
	return nil
}
