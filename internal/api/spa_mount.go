package api

import (
	"embed"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
)

// Embedded dashboard assets.
//
// The build process copies the web dashboard's production build output into
// internal/api/ui/ before compiling Go. The checked-in placeholder page is
// served when no build has been run.
//
//go:embed ui/*
var embeddedUI embed.FS

func getEmbedFs() static.ServeFileSystem {
	fs, err := static.EmbedFolder(embeddedUI, "ui")
	if err != nil {
		panic("failed to get embedded UI filesystem: " + err.Error())
	}
	return fs
}

// MountUI serves the embedded dashboard at /, leaving /api, /swagger and
// /metrics untouched. Unknown non-API routes fall through to index.html so
// client-side routing works.
func MountUI(r *gin.Engine, logger *slog.Logger) {
	uiFS := getEmbedFs()
	r.Use(static.Serve("/", uiFS))

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.RequestURI, "/api") {
			return
		}
		index, err := uiFS.Open("index.html")
		if err != nil {
			if logger != nil {
				logger.Error("failed to open index.html", "error", err)
			}
			return
		}
		defer index.Close()
		stat, _ := index.Stat()
		http.ServeContent(c.Writer, c.Request, "index.html", stat.ModTime(), index)
	})
}
