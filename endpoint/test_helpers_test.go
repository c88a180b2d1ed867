package endpoint

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/ariebrainware/genotator/config"
	"github.com/ariebrainware/genotator/model"
	"github.com/ariebrainware/genotator/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type apiResp struct {
	Success bool            `json:"success"`
	Error   string          `json:"error"`
	Msg     string          `json:"msg"`
	Data    json.RawMessage `json:"data"`
}

// setupEndpointTestDB connects to the shared in-memory test DB, migrates
// every model and seeds the example disorder. Tables are dropped on cleanup.
func setupEndpointTestDB(t *testing.T) (*gorm.DB, model.Disorder) {
	t.Helper()
	t.Setenv("APPENV", "test")
	config.ResetRedisClientForTest()

	db, err := config.ConnectMySQL()
	if err != nil {
		t.Fatalf("failed to connect test DB: %v", err)
	}
	if err := db.AutoMigrate(model.Models...); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Migrator().DropTable(model.Models...); err != nil {
			t.Errorf("failed to drop tables during cleanup: %v", err)
		}
	})

	disorder, err := model.SeedExample(db)
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return db, disorder
}

// setupEndpointTest returns the application router over a seeded test DB.
func setupEndpointTest(t *testing.T, pc *util.PageCache) (*gin.Engine, *gorm.DB, model.Disorder) {
	t.Helper()
	db, disorder := setupEndpointTestDB(t)
	return NewRouter(config.LoadConfig(), db, pc), db, disorder
}

func doGet(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parseHTML(t *testing.T, w *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func parseAPI(t *testing.T, w *httptest.ResponseRecorder) apiResp {
	t.Helper()
	var resp apiResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("parse json %q: %v", w.Body.String(), err)
	}
	return resp
}

func geneIDBySymbol(t *testing.T, db *gorm.DB, symbol string) uint {
	t.Helper()
	var g model.Gene
	if err := db.Where("symbol = ?", symbol).First(&g).Error; err != nil {
		t.Fatalf("find gene %s: %v", symbol, err)
	}
	return g.ID
}

func newRequest(method, path string) *http.Request {
	return httptest.NewRequest(method, path, nil)
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newQueryContext(target string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func captureAccessLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	original := util.GetAccessLoggerForTest()
	util.SetAccessLoggerForTest(log.New(&buf, "[ACCESS] ", log.LstdFlags|log.Lmsgprefix))
	t.Cleanup(func() { util.SetAccessLoggerForTest(original) })
	return &buf
}
