package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRouterDefaults(t *testing.T) {
	r := NewRouter(gin.New())

	assert.Equal(t, "v1", r.apiVersion)
	assert.Empty(t, r.registrars)
}

func TestRouterWithAPIVersion(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithAPIVersion("v2"))

	g := NewDomainGroup("pipeline", "/pipeline")
	g.GET("/board", func(c *gin.Context) { c.String(http.StatusOK, "board") })
	r.Register(g).Setup()

	assert.Equal(t, http.StatusOK, serve(engine, "GET", "/api/v2/pipeline/board").Code)
	assert.Equal(t, http.StatusNotFound, serve(engine, "GET", "/api/v1/pipeline/board").Code)
}

func TestDomainGroupNameAndPrefix(t *testing.T) {
	g := NewDomainGroup("recovery", "/recovery")

	assert.Equal(t, "recovery", g.Name())
	assert.Equal(t, "/recovery", g.Prefix())
}

func TestDomainGroupMethods(t *testing.T) {
	engine := gin.New()
	g := NewDomainGroup("pipeline", "/pipeline")
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }

	g.GET("/leads", ok).
		POST("/leads", ok).
		PUT("/leads/:id/documents/:document_id", ok).
		PATCH("/leads/:id", ok).
		DELETE("/leads/:id", ok)

	api := engine.Group("/api/v1")
	g.RegisterRoutes(api)

	for _, tt := range []struct {
		method string
		path   string
	}{
		{"GET", "/api/v1/pipeline/leads"},
		{"POST", "/api/v1/pipeline/leads"},
		{"PUT", "/api/v1/pipeline/leads/1/documents/2"},
		{"PATCH", "/api/v1/pipeline/leads/1"},
		{"DELETE", "/api/v1/pipeline/leads/1"},
	} {
		assert.Equal(t, http.StatusOK, serve(engine, tt.method, tt.path).Code, "%s %s", tt.method, tt.path)
	}
}

func TestDomainGroupMiddleware(t *testing.T) {
	engine := gin.New()
	g := NewDomainGroup("franchise", "/franchises")
	g.Use(func(c *gin.Context) {
		c.Header("X-Group", "franchise")
		c.Next()
	})
	g.GET("", func(c *gin.Context) { c.Status(http.StatusOK) })

	g.RegisterRoutes(engine.Group("/api/v1"))

	w := serve(engine, "GET", "/api/v1/franchises")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "franchise", w.Header().Get("X-Group"))
}

func TestDomainGroupSubgroups(t *testing.T) {
	engine := gin.New()
	g := NewDomainGroup("recovery", "/recovery")

	cases := g.Group("cases", "/cases")
	cases.GET("", func(c *gin.Context) { c.String(http.StatusOK, "cases") })
	cases.GET("/:id/notes", func(c *gin.Context) { c.String(http.StatusOK, "notes") })

	g.RegisterRoutes(engine.Group("/api/v1"))

	assert.Equal(t, "cases", serve(engine, "GET", "/api/v1/recovery/cases").Body.String())
	assert.Equal(t, "notes", serve(engine, "GET", "/api/v1/recovery/cases/7/notes").Body.String())
}

func TestRouterRegistersMultipleGroups(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	pipeline := NewDomainGroup("pipeline", "/pipeline")
	pipeline.GET("/board", func(c *gin.Context) { c.String(http.StatusOK, "board") })

	marketing := NewDomainGroup("marketing", "/marketing")
	marketing.GET("/campaigns", func(c *gin.Context) { c.String(http.StatusOK, "campaigns") })

	r.Register(pipeline).Register(marketing).Setup()

	assert.Equal(t, "board", serve(engine, "GET", "/api/v1/pipeline/board").Body.String())
	assert.Equal(t, "campaigns", serve(engine, "GET", "/api/v1/marketing/campaigns").Body.String())
}
