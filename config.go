package bucketcache

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config carries the deployment settings for a MinIO-backed cache, read from
// the conventional CACHE_* variables. It is plain data: feed it into
// store/minio.New and Options yourself, or ignore it entirely when wiring
// another store.
//
// An empty access/secret key pair means anonymous access. DefaultTTL uses Go
// duration syntax ("300s", "5m").
type Config struct {
	Endpoint   string        `env:"CACHE_MINIO_ENDPOINT" envDefault:"localhost:9000"`
	AccessKey  string        `env:"CACHE_MINIO_ACCESS_KEY"`
	SecretKey  string        `env:"CACHE_MINIO_SECRET_KEY"`
	Bucket     string        `env:"CACHE_MINIO_BUCKET" envDefault:"bucketcache"`
	Secure     bool          `env:"CACHE_MINIO_SECURE" envDefault:"false"`
	DefaultTTL time.Duration `env:"CACHE_DEFAULT_TIMEOUT" envDefault:"5m"`
	KeyPrefix  string        `env:"CACHE_KEY_PREFIX" envDefault:"cache:"`
}

// ConfigFromEnv parses Config from the process environment.
func ConfigFromEnv() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("bucketcache: parse env config: %w", err)
	}
	return c, nil
}
