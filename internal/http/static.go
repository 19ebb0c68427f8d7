package http

import (
	nethttp "net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"safelink/backend/pkg/logger"
)

// Paths the single-page app must never shadow.
var reservedPrefixes = []string{"/api", "/swagger", "/metrics", "/healthz"}

// Files the browser must revalidate so a new build reaches phones that
// keep the app installed.
var revalidated = map[string]bool{
	"index.html":           true,
	"sw.js":                true,
	"manifest.webmanifest": true,
}

const (
	cacheNoCache   = "no-cache"
	cacheImmutable = "public, max-age=31536000, immutable"
)

func registerStatic(e *echo.Echo, dir string) {
	if dir == "" {
		return
	}
	indexPath := filepath.Join(dir, "index.html")
	info, err := os.Stat(indexPath)
	if err != nil || info.IsDir() {
		logger.Warn("static index not found", "module", "http", "action", "init", "resource", "static", "result", "skipped", "path", indexPath)
		return
	}

	fileServer := nethttp.FileServer(nethttp.Dir(dir))
	serveIndex := func(c echo.Context) error {
		c.Response().Header().Set(echo.HeaderCacheControl, cacheNoCache)
		return c.File(indexPath)
	}

	e.GET("/*", func(c echo.Context) error {
		requestPath := c.Request().URL.Path
		if isReserved(requestPath) {
			return echo.ErrNotFound
		}

		cleanPath := strings.TrimPrefix(path.Clean(requestPath), "/")
		if cleanPath == "." || cleanPath == "" || cleanPath == "index.html" {
			return serveIndex(c)
		}

		candidate := filepath.Join(dir, filepath.FromSlash(cleanPath))
		fileInfo, err := os.Stat(candidate)
		if err != nil || fileInfo.IsDir() {
			// client-side route
			return serveIndex(c)
		}

		switch {
		case revalidated[cleanPath]:
			c.Response().Header().Set(echo.HeaderCacheControl, cacheNoCache)
		case strings.HasPrefix(cleanPath, "assets/"):
			c.Response().Header().Set(echo.HeaderCacheControl, cacheImmutable)
		}
		fileServer.ServeHTTP(c.Response(), c.Request())
		return nil
	})
}

func isReserved(p string) bool {
	for _, prefix := range reservedPrefixes {
		if p == prefix || strings.HasPrefix(p, prefix+"/") {
			return true
		}
	}
	return false
}
