package web

import (
	"net/http"
	"strings"

	"devfort/web/static"

	"github.com/rohanthewiz/rweb"
)

// faviconSVG is served for /favicon.ico so no separate icon file is needed
const faviconSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 64 64"><rect width="64" height="64" rx="12" fill="#1e293b"/><path d="M14 46V22l8-6 8 6v24zM34 46V14l8-6 8 6v38H34z" fill="#38bdf8"/><text x="32" y="60" font-family="Arial,sans-serif" font-weight="900" font-size="10" fill="white" text-anchor="middle">DF</text></svg>`

// SetupStaticFiles serves the embedded assets under /static/ and the favicon
func SetupStaticFiles(s *rweb.Server) {
	s.Get("/favicon.ico", func(c rweb.Context) error {
		c.Response().SetHeader("Content-Type", "image/svg+xml")
		c.Response().SetHeader("Cache-Control", "public, max-age=86400")
		return c.Bytes([]byte(faviconSVG))
	})

	s.Get("/static/*", serveAsset)
}

// serveAsset answers with the embedded file. Links carrying the current
// fingerprint are cached for a year; anything else revalidates by ETag.
func serveAsset(c rweb.Context) error {
	a, ok := static.Lookup(strings.TrimPrefix(c.Request().Path(), "/static/"))
	if !ok {
		c.SetStatus(http.StatusNotFound)
		return nil
	}

	c.Response().SetHeader("ETag", a.ETag)
	c.Response().SetHeader("Cache-Control", cachePolicy(a, c.Request().QueryParam("v")))

	if c.Request().Header("If-None-Match") == a.ETag {
		c.SetStatus(http.StatusNotModified)
		return nil
	}

	c.Response().SetHeader("Content-Type", a.ContentType)
	return c.Bytes(a.Body)
}

func cachePolicy(a static.Asset, version string) string {
	if version != "" && version == a.Version() {
		return "public, max-age=31536000, immutable"
	}
	return "no-cache"
}
