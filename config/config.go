// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

// Package config holds the client-level configuration for the event-parsing
// and streaming packages: a plain struct with defaults applied by a
// constructor, matching client.go's getRpcCfg convention rather than any
// env/flag-parsing framework.
package config

import "time"

// Config holds the per-client options named in spec.md §6.
type Config struct {
	// EnableMetrics toggles the dex.Metrics accumulator. Default false.
	EnableMetrics bool
	// ConnectTimeout bounds the initial websocket handshake.
	ConnectTimeout time.Duration
	// RequestTimeout bounds a single control-channel round trip
	// (subscribe/update/stop).
	RequestTimeout time.Duration
	// MaxDecodingMessageSize caps the size of a single inbound frame.
	MaxDecodingMessageSize int
	// SignatureRegistryBound is the dev-address registry's N_sig bound
	// (§4.8).
	SignatureRegistryBound int64
}

const (
	defaultConnectTimeout         = 10 * time.Second
	defaultRequestTimeout         = 30 * time.Second
	defaultMaxDecodingMessageSize = 64 << 20 // 64 MiB
	defaultSignatureRegistryBound = 100_000
)

// DefaultConfig returns the package's default configuration.
func DefaultConfig() Config {
	return Config{
		EnableMetrics:          false,
		ConnectTimeout:         defaultConnectTimeout,
		RequestTimeout:         defaultRequestTimeout,
		MaxDecodingMessageSize: defaultMaxDecodingMessageSize,
		SignatureRegistryBound: defaultSignatureRegistryBound,
	}
}
