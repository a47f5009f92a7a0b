package v1

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// PagesHandler serves the prebuilt HTML pages and their image assets
// straight from disk.
type PagesHandler struct {
	webDir string
}

func NewPagesHandler(router *gin.Engine, webDir string) {
	handler := &PagesHandler{webDir: webDir}

	router.GET("/", handler.page("index.html"))
	router.GET("/login", handler.page("login.html"))
	router.GET("/register", handler.page("register.html"))
	router.GET("/home", handler.page("home.html"))
	router.GET("/reflection", handler.page("reflection.html"))
	router.GET("/setup", handler.page("onboard.html"))

	router.Static("/IMG", filepath.Join(webDir, "IMG"))
}

func (h *PagesHandler) page(name string) gin.HandlerFunc {
	path := filepath.Join(h.webDir, name)
	return func(c *gin.Context) {
		c.File(path)
	}
}
