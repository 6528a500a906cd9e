// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

// Package protocols wires every supported DEX protocol decoder (and the
// compute-budget pseudo-protocol) into the dex package's dispatcher. Each
// subpackage registers itself with dex.RegisterProtocol from an init() func,
// so importing this package for its side effects is enough to make
// dex.DispatchInstruction/DispatchInnerInstruction/DispatchAccount recognize
// every protocol the dispatcher knows about.
package protocols

import (
	_ "github.com/cielu/solana-dex-streamer/dex/computebudget"
	_ "github.com/cielu/solana-dex-streamer/dex/protocols/bonk"
	_ "github.com/cielu/solana-dex-streamer/dex/protocols/meteoradlmm"
	_ "github.com/cielu/solana-dex-streamer/dex/protocols/pumpfun"
	_ "github.com/cielu/solana-dex-streamer/dex/protocols/pumpswap"
	_ "github.com/cielu/solana-dex-streamer/dex/protocols/raydiumammv4"
	_ "github.com/cielu/solana-dex-streamer/dex/protocols/raydiumclmm"
	_ "github.com/cielu/solana-dex-streamer/dex/protocols/raydiumcpmm"
	_ "github.com/cielu/solana-dex-streamer/dex/protocols/whirlpool"
)
