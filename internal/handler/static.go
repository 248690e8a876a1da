package handler

import (
	"net/http"
	"os"
	"path/filepath"

	"fabricpos/internal/apierror"

	"github.com/gin-gonic/gin"
)

// StaticHandler serves the shop's fixed frontend assets: the billing page,
// the admin page, and the runtime config script. Assets live in a configured
// directory with the working directory as fallback.
type StaticHandler struct{ dir string }

func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{dir: dir}
}

func (h *StaticHandler) Index(c *gin.Context)    { h.serve(c, "index.html") }
func (h *StaticHandler) Admin(c *gin.Context)    { h.serve(c, "admin.html") }
func (h *StaticHandler) ConfigJS(c *gin.Context) { h.serve(c, "config.js") }

func (h *StaticHandler) serve(c *gin.Context, name string) {
	path := filepath.Join(h.dir, name)
	if _, err := os.Stat(path); err != nil {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, name)
			if _, err := os.Stat(fallback); err == nil {
				c.File(fallback)
				return
			}
		}
		c.JSON(http.StatusNotFound, apierror.New(name+" not found"))
		return
	}
	c.File(path)
}
