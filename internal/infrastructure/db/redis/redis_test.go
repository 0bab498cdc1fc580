package redis

import (
	"testing"

	"github.com/alumnihub/job-referral-api/internal/infrastructure/config"
)

func TestClientOptions_MapsServiceConfig(t *testing.T) {
	opts := clientOptions(config.RedisConfig{
		Addr:     "cache.internal:6380",
		Password: "hunter2",
		DB:       3,
		PoolSize: 20,
	})

	if opts.Addr != "cache.internal:6380" {
		t.Fatalf("unexpected addr: %q", opts.Addr)
	}
	if opts.Password != "hunter2" {
		t.Fatalf("password not carried over")
	}
	if opts.DB != 3 {
		t.Fatalf("unexpected db: %d", opts.DB)
	}
	if opts.PoolSize != 20 {
		t.Fatalf("unexpected pool size: %d", opts.PoolSize)
	}
}
