package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/ethos-backend/internal/platform/logger"
)

// SPAHandler serves the pre-built frontend bundle. Known files under the
// static dir are served directly; everything else falls back to index.html
// so client-side routing keeps working. Registered as the router's NoRoute
// handler.
type SPAHandler struct {
	log       *logger.Logger
	staticDir string
}

func NewSPAHandler(log *logger.Logger, staticDir string) *SPAHandler {
	return &SPAHandler{log: log, staticDir: staticDir}
}

func (h *SPAHandler) Serve(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.Status(http.StatusNotFound)
		return
	}

	// Clean rooted at "/" so ".." segments cannot escape the static dir.
	reqPath := strings.TrimPrefix(path.Clean("/"+c.Request.URL.Path), "/")
	if reqPath != "" {
		full := filepath.Join(h.staticDir, filepath.FromSlash(reqPath))
		if info, err := os.Stat(full); err == nil && !info.IsDir() {
			c.File(full)
			return
		}
	}

	h.log.Debug("Serving index fallback", "path", c.Request.URL.Path)
	c.File(filepath.Join(h.staticDir, "index.html"))
}
