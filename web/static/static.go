// Package static embeds the site's stylesheets, scripts and images. Every file
// is fingerprinted at startup so pages can link it with a version and let
// browsers cache it for good.
package static

import (
	"embed"
	"io/fs"
	"path"
	"strconv"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
	"github.com/zeebo/xxh3"
)

//go:embed css js img
var files embed.FS

// Asset is one embedded file ready to serve
type Asset struct {
	Path        string
	ContentType string
	ETag        string // quoted content hash
	Body        []byte
}

// Version is the short fingerprint used in ?v= links
func (a Asset) Version() string {
	return a.ETag[1:9]
}

var assets = mustLoad(files)

func mustLoad(fsys fs.FS) map[string]Asset {
	m, err := load(fsys)
	if err != nil {
		logger.LogErr(err, "failed to load embedded assets")
		return map[string]Asset{}
	}
	return m
}

func load(fsys fs.FS) (map[string]Asset, error) {
	m := make(map[string]Asset)
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		body, err := fs.ReadFile(fsys, p)
		if err != nil {
			return serr.Wrap(err, "failed to read asset", "path", p)
		}
		sum := strconv.FormatUint(xxh3.Hash(body), 16)
		for len(sum) < 16 {
			sum = "0" + sum
		}
		m[p] = Asset{Path: p, ContentType: contentType(p), ETag: `"` + sum + `"`, Body: body}
		return nil
	})
	if err != nil {
		return nil, serr.Wrap(err, "failed to walk assets")
	}
	return m, nil
}

// Lookup finds an asset by its path under /static/
func Lookup(p string) (Asset, bool) {
	a, ok := assets[p]
	return a, ok
}

// URL is the versioned link for an asset. Unknown paths get a plain link.
func URL(p string) string {
	a, ok := assets[p]
	if !ok {
		return "/static/" + p
	}
	return "/static/" + p + "?v=" + a.Version()
}

// contentType covers what the site ships; anything else is served as bytes
func contentType(p string) string {
	switch path.Ext(p) {
	case ".css":
		return "text/css; charset=utf-8"
	case ".js":
		return "application/javascript; charset=utf-8"
	case ".svg":
		return "image/svg+xml"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	case ".mp4":
		return "video/mp4"
	case ".webm":
		return "video/webm"
	}
	return "application/octet-stream"
}
