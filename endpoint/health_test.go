package endpoint

import (
	"net/http"
	"testing"

	"github.com/ariebrainware/genotator/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHealthz(t *testing.T) {
	r, _, _ := setupEndpointTest(t, nil)

	w := doGet(r, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	resp := parseAPI(t, w)
	assert.True(t, resp.Success)
	assert.JSONEq(t, `{"database":"up"}`, string(resp.Data))
}

func TestRoutes_WithoutDatabase(t *testing.T) {
	r := NewRouter(config.LoadConfig(), nil, nil)

	w := doGet(r, "/healthz")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Database connection not available", parseAPI(t, w).Msg)

	w = doGet(r, "/api/disorder/C0002395")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = doGet(r, "/disorder/C0002395")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "500", parseHTML(t, w).Find("h1.error").Text())

	w = doGet(r, "/")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestNoRoute(t *testing.T) {
	r := NewRouter(config.LoadConfig(), nil, nil)

	w := doGet(r, "/no/such/page")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "404", parseHTML(t, w).Find("h1.error").Text())
}

func TestNewRouter_PanicRendersErrorPage(t *testing.T) {
	captureAccessLog(t)
	r := NewRouter(config.LoadConfig(), nil, nil)
	r.GET("/boom", func(c *gin.Context) { panic("x") })
	r.GET("/api/boom", func(c *gin.Context) { panic("x") })

	w := doGet(r, "/boom")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, htmlContentType, w.Header().Get("Content-Type"))
	assert.Equal(t, "500", parseHTML(t, w).Find("h1.error").Text())

	w = doGet(r, "/api/boom")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.False(t, parseAPI(t, w).Success)
}
