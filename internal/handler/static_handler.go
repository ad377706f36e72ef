package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/wordup-api/pkg/errors"
	"github.com/noah-isme/wordup-api/pkg/response"
)

// RegisterStatic serves the browser frontend from dir: the index page at "/", any
// top-level "*.html" page, and the css and js asset trees. Unknown paths outside the
// API prefix fall through to a JSON 404.
func RegisterStatic(r *gin.Engine, dir, apiPrefix string) {
	r.StaticFile("/", filepath.Join(dir, "index.html"))
	r.Static("/css", filepath.Join(dir, "css"))
	r.Static("/js", filepath.Join(dir, "js"))

	r.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method == http.MethodGet && !strings.HasPrefix(path, apiPrefix) {
			name := strings.TrimPrefix(path, "/")
			if isPageName(name) {
				file := filepath.Join(dir, name)
				if info, err := os.Stat(file); err == nil && !info.IsDir() {
					c.File(file)
					return
				}
			}
		}
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "route not found"))
	})
}

func isPageName(name string) bool {
	return strings.HasSuffix(name, ".html") && !strings.ContainsAny(name, `/\`) && !strings.HasPrefix(name, ".")
}
