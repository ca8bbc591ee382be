package cmd

import (
	"strings"
	"time"
)

// Storage modes selectable via STORAGE_MODE.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// defaultCatalog is used when PRODUCT_CATALOG is not configured.
var defaultCatalog = []string{
	"Sphaerex - 2x2.5 gal",
	"Priaxor - 2x2.5 gal",
	"Nexicor - 2x2.5 gal",
	"Veltyma - 2x1 gal",
}

type Config struct {
	HTTPPort       string
	StorageMode    string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	AccessPassword string
	JWTSecret      string
	SessionTTL     time.Duration
	ProductCatalog []string
}

// SessionTTLOrDefault returns the configured session ttl, defaulting to 30
// minutes.
func (c Config) SessionTTLOrDefault() time.Duration {
	if c.SessionTTL <= 0 {
		return 30 * time.Minute
	}
	return c.SessionTTL
}

// ParseCatalog splits the PRODUCT_CATALOG value on pipes, falling back to the
// default catalog when empty. Pipes are the separator because product names
// contain commas and dashes.
func ParseCatalog(value string) []string {
	if strings.TrimSpace(value) == "" {
		return append([]string(nil), defaultCatalog...)
	}

	parts := strings.Split(value, "|")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
