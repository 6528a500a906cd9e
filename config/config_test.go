// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package config

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.EnableMetrics {
		t.Errorf("expected metrics to be disabled by default")
	}
	if cfg.ConnectTimeout != 10*time.Second {
		t.Errorf("ConnectTimeout = %v, want 10s", cfg.ConnectTimeout)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v, want 30s", cfg.RequestTimeout)
	}
	if cfg.MaxDecodingMessageSize != 64<<20 {
		t.Errorf("MaxDecodingMessageSize = %d, want 64MiB", cfg.MaxDecodingMessageSize)
	}
	if cfg.SignatureRegistryBound != 100_000 {
		t.Errorf("SignatureRegistryBound = %d, want 100000", cfg.SignatureRegistryBound)
	}
}

func TestDefaultConfig_ReturnsIndependentValues(t *testing.T) {
	a := DefaultConfig()
	b := DefaultConfig()
	a.EnableMetrics = true
	a.ConnectTimeout = time.Minute

	if b.EnableMetrics || b.ConnectTimeout != 10*time.Second {
		t.Errorf("expected mutating one DefaultConfig() result to not affect another, got %+v", b)
	}
}
