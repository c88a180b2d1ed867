package util

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/ariebrainware/genotator/config"
	"github.com/ariebrainware/genotator/view"
	"github.com/gin-gonic/gin"
)

const htmlContentType = "text/html; charset=utf-8"

// IsAPIRequest reports whether c is served by a JSON route. Unmatched
// requests fall back to the raw path.
func IsAPIRequest(c *gin.Context) bool {
	p := c.FullPath()
	if p == "" {
		p = c.Request.URL.Path
	}
	return p == "/api" || strings.HasPrefix(p, "/api/") || p == "/healthz"
}

// PageLayout fills the base template values shared by every HTML page.
func PageLayout(canonicalPath string) view.Layout {
	cfg := config.LoadConfig()
	return view.Layout{
		AppName:       cfg.AppName,
		SiteURLRoot:   strings.TrimRight(cfg.SiteURLRoot, "/"),
		CanonicalPath: canonicalPath,
	}
}

// RenderErrorPage answers with the HTML error page, or plain text if the
// page itself fails to render.
func RenderErrorPage(c *gin.Context, status int, msg string) {
	page := view.ErrorPage{
		Layout:  PageLayout(""),
		Status:  status,
		Message: msg,
	}
	var buf bytes.Buffer
	if err := view.Default().Render(&buf, view.PageError, page); err != nil {
		c.String(status, "%d %s", status, msg)
		return
	}
	c.Data(status, htmlContentType, buf.Bytes())
}

// RespondError answers JSON routes with an APIResponse and HTML routes
// with the error page.
func RespondError(c *gin.Context, status int, params APIErrorParams) {
	if IsAPIRequest(c) {
		switch status {
		case http.StatusBadRequest:
			CallUserError(c, params)
		case http.StatusNotFound:
			CallErrorNotFound(c, params)
		case http.StatusTooManyRequests:
			CallTooManyRequests(c, params)
		case http.StatusInternalServerError:
			CallServerError(c, params)
		default:
			c.JSON(status, errorResponse(params))
		}
		return
	}
	msg := params.Msg
	if msg == "" {
		msg = http.StatusText(status)
	}
	RenderErrorPage(c, status, msg)
}
