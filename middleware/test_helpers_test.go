package middleware

import (
	"bytes"
	"log"
	"testing"

	"github.com/ariebrainware/genotator/config"
	"github.com/ariebrainware/genotator/util"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func captureAccessLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	original := util.GetAccessLoggerForTest()
	util.SetAccessLoggerForTest(log.New(&buf, "[ACCESS] ", log.LstdFlags|log.Lmsgprefix))
	t.Cleanup(func() { util.SetAccessLoggerForTest(original) })
	return &buf
}

func newInMemoryDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	return db
}

func newRedisMock(t *testing.T) redismock.ClientMock {
	t.Helper()
	rdb, mock := redismock.NewClientMock()
	config.SetRedisClientForTest(rdb)
	t.Cleanup(config.ResetRedisClientForTest)
	return mock
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
