// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package dex

import (
	"sync"
	"sync/atomic"

	"github.com/cielu/solana-dex-streamer/common"
	"github.com/cielu/solana-dex-streamer/core"
)

// sigEntry is the small per-signature set of dev addresses (§4.8). PumpFun
// and Bonk creator addresses are tracked separately since the two protocols
// never share a signature's dev-trade semantics.
type sigEntry struct {
	mu               sync.RWMutex
	devAddresses     map[common.Address]struct{}
	bonkDevAddresses map[common.Address]struct{}
}

func (e *sigEntry) add(protocol Protocol, addr common.Address) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if protocol == ProtocolBonk {
		if e.bonkDevAddresses == nil {
			e.bonkDevAddresses = make(map[common.Address]struct{}, 1)
		}
		e.bonkDevAddresses[addr] = struct{}{}
		return
	}
	if e.devAddresses == nil {
		e.devAddresses = make(map[common.Address]struct{}, 1)
	}
	e.devAddresses[addr] = struct{}{}
}

func (e *sigEntry) has(protocol Protocol, addr common.Address) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if protocol == ProtocolBonk {
		_, ok := e.bonkDevAddresses[addr]
		return ok
	}
	_, ok := e.devAddresses[addr]
	return ok
}

// DevAddressRegistry is the global per-signature dev-address registry (C8):
// a concurrent map bounded to Bound entries, evicted in batches by whichever
// goroutine's compare-and-swap wins the eviction race. Reads never block on
// an in-progress eviction.
type DevAddressRegistry struct {
	entries  sync.Map // common.Signature -> *sigEntry
	count    int64
	Bound    int64
	evicting int32
}

// NewDevAddressRegistry builds a registry bounded to at most `bound`
// distinct signatures.
func NewDevAddressRegistry(bound int64) *DevAddressRegistry {
	return &DevAddressRegistry{Bound: bound}
}

// AddDevAddress records addr (a token-creation event's creator) under sig.
func (r *DevAddressRegistry) AddDevAddress(sig common.Signature, protocol Protocol, addr common.Address) {
	r.getOrCreate(sig).add(protocol, addr)
}

// IsDevAddressInSignature reports whether addr was recorded as a creator
// under sig for protocol's dev-address bucket.
func (r *DevAddressRegistry) IsDevAddressInSignature(sig common.Signature, protocol Protocol, addr common.Address) bool {
	v, ok := r.entries.Load(sig)
	if !ok {
		return false
	}
	return v.(*sigEntry).has(protocol, addr)
}

// LookupDevAddress is the error-returning counterpart to
// IsDevAddressInSignature, for callers that want Go's usual
// errors.Is(err, core.NotFound) idiom instead of a bare bool — e.g. a CLI
// or debugging tool reporting why a trade wasn't flagged as a dev trade.
func (r *DevAddressRegistry) LookupDevAddress(sig common.Signature, protocol Protocol, addr common.Address) error {
	if r.IsDevAddressInSignature(sig, protocol, addr) {
		return nil
	}
	return core.NotFound
}

func (r *DevAddressRegistry) getOrCreate(sig common.Signature) *sigEntry {
	if v, ok := r.entries.Load(sig); ok {
		return v.(*sigEntry)
	}
	e := &sigEntry{}
	actual, loaded := r.entries.LoadOrStore(sig, e)
	if !loaded {
		if atomic.AddInt64(&r.count, 1) > r.Bound {
			r.maybeEvictBatch()
		}
	}
	return actual.(*sigEntry)
}

// maybeEvictBatch evicts a batch of entries once the registry exceeds its
// bound. Only one goroutine performs the sweep at a time; others return
// immediately rather than blocking, matching the "never blocks producers"
// requirement (§4.8, §5).
func (r *DevAddressRegistry) maybeEvictBatch() {
	if !atomic.CompareAndSwapInt32(&r.evicting, 0, 1) {
		return
	}
	defer atomic.StoreInt32(&r.evicting, 0)

	const batchSize = 1024
	evicted := 0
	r.entries.Range(func(k, _ interface{}) bool {
		r.entries.Delete(k)
		evicted++
		return evicted < batchSize
	})
	atomic.AddInt64(&r.count, -int64(evicted))
}

var defaultRegistry = NewDevAddressRegistry(100_000)

// DefaultDevAddressRegistry is the process-wide registry WalkTransaction
// consults when the caller does not supply its own.
func DefaultDevAddressRegistry() *DevAddressRegistry { return defaultRegistry }
