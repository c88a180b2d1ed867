package util

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/ariebrainware/genotator/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AccessEventType classifies a logged request or failure.
type AccessEventType string

const (
	EventEndpointCall      AccessEventType = "ENDPOINT_CALL"
	EventNotFound          AccessEventType = "NOT_FOUND"
	EventServerError       AccessEventType = "SERVER_ERROR"
	EventPanic             AccessEventType = "PANIC"
	EventRateLimitExceeded AccessEventType = "RATE_LIMIT_EXCEEDED"
	EventCacheFailure      AccessEventType = "CACHE_FAILURE"
)

// AccessEvent represents an event to be logged
type AccessEvent struct {
	EventType AccessEventType
	IP        string
	UserAgent string
	Message   string
	Details   map[string]interface{}
}

var (
	accessLogger = log.New(os.Stdout, "[ACCESS] ", log.LstdFlags|log.Lmsgprefix)
	accessDB     *gorm.DB
	accessMu     sync.RWMutex
)

// SetAccessLoggerDB sets the gorm DB events are persisted to.
// Call this during application startup after DB initialization; nil disables persistence.
func SetAccessLoggerDB(db *gorm.DB) {
	accessMu.Lock()
	accessDB = db
	accessMu.Unlock()
}

func currentAccess() (*log.Logger, *gorm.DB) {
	accessMu.RLock()
	defer accessMu.RUnlock()
	return accessLogger, accessDB
}

// sanitizeLogValue removes newlines and other characters that could break log parsing
func sanitizeLogValue(value string) string {
	value = strings.NewReplacer("\n", " ", "\r", " ", "\t", " ").Replace(value)
	if len(value) > 200 {
		value = value[:200] + "..."
	}
	return value
}

// LogAccessEvent writes one sanitized key=value line and, when a DB is set,
// persists the event as a model.AccessLog. Persistence is best-effort.
func LogAccessEvent(event AccessEvent) {
	msg := fmt.Sprintf("Event=%s IP=%s UserAgent=%s Message=%s",
		sanitizeLogValue(string(event.EventType)),
		sanitizeLogValue(event.IP),
		sanitizeLogValue(event.UserAgent),
		sanitizeLogValue(event.Message),
	)
	country := GetIPCountry(event.IP)
	if country != "" {
		msg = fmt.Sprintf("%s Country=%s", msg, country)
	}
	if len(event.Details) > 0 {
		msg = fmt.Sprintf("%s DetailsCount=%d", msg, len(event.Details))
	}

	logger, db := currentAccess()
	logger.Println(msg)

	if db == nil {
		return
	}

	var details datatypes.JSON
	if event.Details != nil {
		if b, err := json.Marshal(event.Details); err == nil {
			details = datatypes.JSON(b)
		}
	}
	entry := model.AccessLog{
		EventType: string(event.EventType),
		IP:        sanitizeLogValue(event.IP),
		Country:   country,
		UserAgent: sanitizeLogValue(event.UserAgent),
		Message:   sanitizeLogValue(event.Message),
		Details:   details,
	}
	if err := db.Create(&entry).Error; err != nil {
		logger.Printf("Failed to persist access event: %v", err)
	}
}

// LogPanic logs a recovered panic together with the request that caused it.
func LogPanic(ip, userAgent, path string, recovered interface{}) {
	LogAccessEvent(AccessEvent{
		EventType: EventPanic,
		IP:        ip,
		UserAgent: userAgent,
		Message:   fmt.Sprintf("panic serving %s: %v", path, recovered),
	})
}

// LogRateLimitExceeded logs when rate limit is exceeded
func LogRateLimitExceeded(ip, endpoint string) {
	LogAccessEvent(AccessEvent{
		EventType: EventRateLimitExceeded,
		IP:        ip,
		Message:   fmt.Sprintf("Rate limit exceeded for endpoint: %s", endpoint),
	})
}

// GetAccessLoggerForTest returns the current access logger for testing purposes
func GetAccessLoggerForTest() *log.Logger {
	logger, _ := currentAccess()
	return logger
}

// SetAccessLoggerForTest sets a custom logger for testing purposes
func SetAccessLoggerForTest(logger *log.Logger) {
	accessMu.Lock()
	accessLogger = logger
	accessMu.Unlock()
}
