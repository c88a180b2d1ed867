package util

import (
	"net"
	"sync"
	"time"

	"github.com/oschwald/geoip2-golang"
	cache "github.com/patrickmn/go-cache"
)

var (
	geoipMu    sync.RWMutex
	geoipDB    *geoip2.Reader
	geoipCache *cache.Cache
)

// InitGeoIP opens a GeoIP2/GeoLite2 country or city .mmdb file so access
// events can be tagged with the client's country. An empty path is a no-op.
func InitGeoIP(dbPath string) error {
	if dbPath == "" {
		return nil
	}

	r, err := geoip2.Open(dbPath)
	if err != nil {
		return err
	}
	geoipMu.Lock()
	geoipDB = r
	// Cache entries for 24h, purge every hour
	geoipCache = cache.New(24*time.Hour, time.Hour)
	geoipMu.Unlock()
	return nil
}

// CloseGeoIP closes the GeoIP DB if opened.
func CloseGeoIP() {
	geoipMu.Lock()
	defer geoipMu.Unlock()
	if geoipDB != nil {
		_ = geoipDB.Close()
		geoipDB = nil
	}
	geoipCache = nil
}

// GetIPCountry returns the ISO country code for ip, or "" when no database
// is loaded or the address is private, loopback or unparsable.
func GetIPCountry(ip string) string {
	parsed := net.ParseIP(ip)
	if parsed == nil || parsed.IsLoopback() || parsed.IsPrivate() || parsed.IsUnspecified() {
		return ""
	}

	geoipMu.RLock()
	db, c := geoipDB, geoipCache
	geoipMu.RUnlock()
	if db == nil {
		return ""
	}

	if v, ok := c.Get(ip); ok {
		if country, ok := v.(string); ok {
			return country
		}
	}

	rec, err := db.Country(parsed)
	if err != nil {
		return ""
	}
	country := rec.Country.IsoCode
	c.Set(ip, country, cache.DefaultExpiration)
	return country
}
