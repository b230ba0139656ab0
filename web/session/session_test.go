package session

import (
	"errors"
	"testing"
	"time"

	"devfort/nav"
	"devfort/theme"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJar map[string]string

func (j fakeJar) GetCookie(name string) (string, error) {
	v, ok := j[name]
	if !ok {
		return "", errors.New("no cookie")
	}
	return v, nil
}

func (j fakeJar) SetCookie(name, value string) error {
	j[name] = value
	return nil
}

func testConfig() nav.Config {
	return nav.Config{
		Brand: "DevFort",
		CTA:   nav.Link{Label: "Contact", Path: "/contact"},
		Entries: []nav.Entry{
			{Label: "Home", Path: "/"},
			{Label: "Blog", Path: "/blog"},
		},
	}
}

func TestGetCreatesMountedSession(t *testing.T) {
	reg := NewRegistry(testConfig(), theme.DefaultCatalog, nil, 0)

	jar := fakeJar{theme.StorageKey: "green"}
	s := reg.Get("v1", jar)
	require.NotNil(t, s)

	assert.True(t, s.Shell.Mounted())
	assert.Equal(t, "green", s.Themes.Current().Value)
	assert.Equal(t, "green", s.Doc.Attribute(theme.Attribute))
	assert.Same(t, s, reg.Get("v1", jar))
	assert.Equal(t, 1, reg.Len())
}

func TestGetWritesDefaultThemeCookie(t *testing.T) {
	reg := NewRegistry(testConfig(), theme.DefaultCatalog, nil, 0)

	jar := fakeJar{}
	s := reg.Get("v1", jar)

	assert.Equal(t, theme.DefaultCatalog.Default().Value, s.Themes.Current().Value)
	assert.Equal(t, theme.DefaultCatalog.Default().Value, jar[theme.StorageKey])
}

func TestDoBindsRequestJar(t *testing.T) {
	reg := NewRegistry(testConfig(), theme.DefaultCatalog, nil, 0)
	s := reg.Get("v1", fakeJar{})

	second := fakeJar{}
	err := s.Do(second, func(s *Session) error {
		return s.Themes.Select("red")
	})
	require.NoError(t, err)
	assert.Equal(t, "red", second[theme.StorageKey])

	// Outside Do the cookie store has no request and writes are dropped
	assert.NoError(t, s.Themes.Select("blue"))
	assert.Equal(t, "red", second[theme.StorageKey])
}

func TestDoRecordsNavigationTarget(t *testing.T) {
	reg := NewRegistry(testConfig(), theme.DefaultCatalog, nil, 0)
	s := reg.Get("v1", fakeJar{})

	var target string
	err := s.Do(nil, func(s *Session) error {
		if err := s.Shell.Navigate("/blog/first-post?ref=nav"); err != nil {
			return err
		}
		target = s.Target()
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "/blog/first-post", target)
}

func TestIdleSessionsAreEvicted(t *testing.T) {
	reg := NewRegistry(testConfig(), theme.DefaultCatalog, nil, time.Minute)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	reg.now = func() time.Time { return now }

	old := reg.Get("old", fakeJar{})
	now = now.Add(30 * time.Second)
	reg.Get("fresh", fakeJar{})

	now = now.Add(45 * time.Second)
	reg.Get("fresh", fakeJar{})

	assert.Equal(t, 1, reg.Len())
	assert.False(t, old.Shell.Mounted())
	assert.Zero(t, old.Doc.ListenerCount())
}

func TestGetDoesNotWaitOnBusySession(t *testing.T) {
	reg := NewRegistry(testConfig(), theme.DefaultCatalog, nil, time.Hour)
	busy := reg.Get("busy", fakeJar{})

	entered := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = busy.Do(nil, func(*Session) error {
			close(entered)
			<-release
			return nil
		})
	}()
	<-entered

	got := make(chan *Session, 2)
	go func() {
		got <- reg.Get("busy", fakeJar{})
		got <- reg.Get("other", fakeJar{})
	}()

	for i := 0; i < 2; i++ {
		select {
		case s := <-got:
			assert.NotNil(t, s)
		case <-time.After(2 * time.Second):
			t.Fatal("Get blocked behind a busy session")
		}
	}
	assert.Equal(t, 2, reg.Len())

	close(release)
	<-done
}

func TestCloseUnmountsAll(t *testing.T) {
	reg := NewRegistry(testConfig(), theme.DefaultCatalog, nil, 0)
	a := reg.Get("a", fakeJar{})
	b := reg.Get("b", fakeJar{})

	reg.Close()

	assert.Zero(t, reg.Len())
	assert.False(t, a.Shell.Mounted())
	assert.False(t, b.Shell.Mounted())
}
