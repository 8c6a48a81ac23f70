package config

import (
	"fmt"
	"time"
)

// MemcacheConfig ...
type MemcacheConfig struct {
	Host     string `mapstructure:"host"`
	Port     uint16 `mapstructure:"port"`
	NumConns int    `mapstructure:"num_conns"`

	// TTL of cached campaign definitions
	TTL time.Duration `mapstructure:"ttl"`
	// LocalCacheSize in bytes of the in-process cache in front of memcached
	LocalCacheSize int `mapstructure:"local_cache_size"`
}

// Addr ...
func (c MemcacheConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
