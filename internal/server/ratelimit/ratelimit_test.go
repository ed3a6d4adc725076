package ratelimit

import (
	"testing"
	"time"
)

func TestBucket_AllowAndDeny(t *testing.T) {
	b := newBucket(5, 1.0)

	for i := 0; i < 5; i++ {
		allowed, _, _ := b.take()
		if !allowed {
			t.Errorf("expected request %d to be allowed", i+1)
		}
	}

	allowed, remaining, _ := b.take()
	if allowed {
		t.Error("expected request over capacity to be denied")
	}
	if remaining != 0 {
		t.Errorf("expected 0 remaining tokens, got %d", remaining)
	}
}

func TestBucket_Refill(t *testing.T) {
	b := newBucket(2, 10.0) // 10 tokens per second

	b.take()
	b.take()
	if allowed, _, _ := b.take(); allowed {
		t.Error("expected empty bucket to deny")
	}

	time.Sleep(150 * time.Millisecond)

	if allowed, _, _ := b.take(); !allowed {
		t.Error("expected request to be allowed after refill")
	}
}

func TestLimiter_EndpointTier(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Endpoints: []EndpointConfig{
			{Path: "/api/search", Method: "POST", Limit: 60, Window: time.Minute, Burst: 2},
		},
	})
	defer limiter.Stop()

	clientID := "127.0.0.1"

	for i := 0; i < 2; i++ {
		allowed, info := limiter.Allow(clientID, "/api/search", "POST")
		if !allowed {
			t.Errorf("expected request %d within burst to be allowed", i+1)
		}
		if info.Limit != 60 {
			t.Errorf("expected limit 60, got %d", info.Limit)
		}
	}

	allowed, info := limiter.Allow(clientID, "/api/search", "POST")
	if allowed {
		t.Error("expected request over burst to be denied")
	}
	if info.RetryAfter <= 0 {
		t.Error("expected a positive RetryAfter on denial")
	}
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Endpoints: []EndpointConfig{
			{Path: "/api/search", Method: "POST", Limit: 60, Window: time.Minute, Burst: 1},
		},
	})
	defer limiter.Stop()

	if allowed, _ := limiter.Allow("10.0.0.1", "/api/search", "POST"); !allowed {
		t.Error("expected first client to be allowed")
	}
	if allowed, _ := limiter.Allow("10.0.0.1", "/api/search", "POST"); allowed {
		t.Error("expected first client to be exhausted")
	}
	if allowed, _ := limiter.Allow("10.0.0.2", "/api/search", "POST"); !allowed {
		t.Error("expected second client to have its own bucket")
	}
}

func TestLimiter_ReadEndpointsUnlimited(t *testing.T) {
	limiter := NewLimiter(defaultConfig())
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/health", "GET")
		if !allowed {
			t.Fatalf("expected GET request %d to be unlimited", i+1)
		}
		if info.Limit != 0 {
			t.Fatalf("expected zero limit for unlimited endpoint, got %d", info.Limit)
		}
	}
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 1000; i++ {
		if allowed, _ := limiter.Allow("127.0.0.1", "/api/search", "POST"); !allowed {
			t.Fatal("expected disabled limiter to allow everything")
		}
	}
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg := LoadConfig()
	if cfg.Enabled {
		t.Error("expected rate limiting to be disabled")
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "42")
	t.Setenv("RATE_LIMIT_DEFAULT_WINDOW", "30s")

	cfg := LoadConfig()
	if cfg.DefaultLimit != 42 {
		t.Errorf("expected default limit 42, got %d", cfg.DefaultLimit)
	}
	if cfg.DefaultWindow != 30*time.Second {
		t.Errorf("expected default window 30s, got %v", cfg.DefaultWindow)
	}
}
