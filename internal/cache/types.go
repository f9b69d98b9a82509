package cache

import (
	"time"

	"github.com/trustmask/trustmask/internal/entity"
)

// CachedResult is the wire-level anonymization result kept in Redis.
// Matched values and offsets are deliberately absent: only the masked
// text and the category list are persisted.
type CachedResult struct {
	IsPersonalDataDetected bool          `json:"is_personal_data_detected"`
	DetectedDataTypes      []entity.Type `json:"detected_data_types"`
	SanitizedText          string        `json:"sanitized_text"`
	CachedAt               time.Time     `json:"cached_at"`
}

// Stats represents cache performance statistics
type Stats struct {
	Hits        int64   `json:"hits"`
	Misses      int64   `json:"misses"`
	HitRate     float64 `json:"hit_rate"`
	TotalKeys   int64   `json:"total_keys"`
	MemoryUsage int64   `json:"memory_usage_bytes"`
}

// Config contains cache configuration
type Config struct {
	RedisURL       string        `yaml:"redis_url" mapstructure:"redis_url"`
	MaxConnections int           `yaml:"max_connections" mapstructure:"max_connections"`
	MinIdleConns   int           `yaml:"min_idle_conns" mapstructure:"min_idle_conns"`
	DefaultTTL     time.Duration `yaml:"default_ttl" mapstructure:"default_ttl"`
	KeyPrefix      string        `yaml:"key_prefix" mapstructure:"key_prefix"`
}
