// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package dex

import (
	"sync"

	"github.com/cielu/solana-dex-streamer/common"
	mapset "github.com/deckarep/golang-set/v2"
)

// InstructionParser decodes an outer (or inner-as-outer, §4.4 step 7) compiled
// instruction once the dispatcher has already matched its program id.
type InstructionParser func(disc []byte, data []byte, accounts []common.Address, meta EventMetadata) DexEvent

// InnerEventParser decodes a 16-byte-discriminator self-CPI event log emitted
// inside an inner-instruction group, for merging onto the outer event
// (§4.4.1a). The bool return reports whether disc was one this protocol
// recognizes — "Some" in spec.md's "first Some(inner_event) wins" — so the
// walker can tell a real merge from an unrecognized disc being echoed back
// unchanged.
type InnerEventParser func(disc []byte, data []byte, outer DexEvent) (DexEvent, bool)

// AccountParser decodes a gRPC/geyser account-snapshot update.
type AccountParser func(acc AccountInfo, meta EventMetadata) DexEvent

// SwapPredicate reports whether an outer-instruction discriminator names a
// swap variant, used to gate the lazy program-data index build (§4.3).
type SwapPredicate func(disc []byte) bool

// ProgramDataLogParser merges a base64 "Program data:" log payload (§4.3,
// §4.4.1b) onto outer; set only by the protocols that emit swap events this
// way instead of (or in addition to) the 16-byte self-CPI event mechanism —
// the CLMM/CPMM/Whirlpool family.
type ProgramDataLogParser func(outer DexEvent, base64Data string) DexEvent

// ProtocolHandlers is the set of C1 decoder entry points a protocol package
// registers with the dispatcher. DiscLen is the byte length of the outer
// instruction discriminator this protocol uses: 1 for the legacy Raydium AMM
// V4 encoding, 8 for every Anchor-style program.
type ProtocolHandlers struct {
	DiscLen           int
	ParseInstruction  InstructionParser
	ParseInner        InnerEventParser
	ParseAccount      AccountParser
	IsSwap            SwapPredicate
	ParseProgramDataLog ProgramDataLogParser
}

var (
	registryMu sync.RWMutex
	registry   = map[Protocol]ProtocolHandlers{}
)

// RegisterProtocol wires a protocol package's C1 decoders into the
// dispatcher. Protocol packages call this from an init() func rather than
// the dispatcher importing them directly, since every protocol package
// already imports dex for EventMetadata/DexEvent/EventType — the dispatcher
// importing back would be a cycle. Callers that want a protocol dispatchable
// must blank-import its package (dex/protocols does this for all of them).
func RegisterProtocol(p Protocol, h ProtocolHandlers) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[p] = h
}

func lookup(p Protocol) (ProtocolHandlers, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	h, ok := registry[p]
	return h, ok
}

// programIndex is the inverse of ProgramIDs(), built once.
var programIndex = func() map[common.Address]Protocol {
	m := make(map[common.Address]Protocol, len(protocolProgramIDs))
	for p, id := range protocolProgramIDs {
		m[id] = p
	}
	return m
}()

var protocolProgramIDs = ProgramIDs()

// MatchProtocolByProgramID is the O(1) table lookup C2 names.
func MatchProtocolByProgramID(id common.Address) (Protocol, bool) {
	p, ok := programIndex[id]
	return p, ok
}

// IsComputeBudgetProgram reports whether id is the reserved compute-budget
// program.
func IsComputeBudgetProgram(id common.Address) bool {
	return id == common.ComputeBudgetProgramID
}

// DiscLen returns the outer-instruction discriminator length the given
// protocol expects (0 if the protocol is not registered).
func DiscLen(p Protocol) int {
	h, ok := lookup(p)
	if !ok {
		return 0
	}
	return h.DiscLen
}

// DispatchInstruction sets meta.Protocol to p and routes to p's registered
// ParseInstruction. Returns nil if p has no registered handler or the
// decoder does not recognize disc.
func DispatchInstruction(p Protocol, disc []byte, data []byte, accounts []common.Address, meta EventMetadata) DexEvent {
	h, ok := lookup(p)
	if !ok || h.ParseInstruction == nil {
		return nil
	}
	meta.Protocol = p
	return h.ParseInstruction(disc, data, accounts, meta)
}

// DispatchInnerInstruction routes a 16-byte-discriminator inner event log to
// p's registered ParseInner for merging onto outer. ok is false when p is
// unregistered or disc was not recognized, in which case the returned event
// is outer, unchanged.
func DispatchInnerInstruction(p Protocol, disc []byte, data []byte, outer DexEvent) (ev DexEvent, ok bool) {
	h, registered := lookup(p)
	if !registered || h.ParseInner == nil {
		return outer, false
	}
	return h.ParseInner(disc, data, outer)
}

// DispatchAccount sets meta.Protocol to p and routes to p's registered
// ParseAccount.
func DispatchAccount(p Protocol, acc AccountInfo, meta EventMetadata) DexEvent {
	h, ok := lookup(p)
	if !ok || h.ParseAccount == nil {
		return nil
	}
	meta.Protocol = p
	return h.ParseAccount(acc, meta)
}

// IsSwapInstruction reports whether disc names a swap-family instruction for
// protocol p, used to gate the lazy program-data index build (§4.3).
func IsSwapInstruction(p Protocol, disc []byte) bool {
	h, ok := lookup(p)
	if !ok || h.IsSwap == nil {
		return false
	}
	return h.IsSwap(disc)
}

// HasProgramDataLog reports whether p registered a ProgramDataLogParser,
// gating the program-data index's lazy construction (§4.3) to protocols
// that actually consume it — the CLMM/CPMM/Whirlpool family.
func HasProgramDataLog(p Protocol) bool {
	h, ok := lookup(p)
	return ok && h.ParseProgramDataLog != nil
}

// DispatchProgramDataLog merges a base64 "Program data:" log payload onto
// outer if p registered a ProgramDataLogParser; otherwise returns outer
// unchanged.
func DispatchProgramDataLog(p Protocol, outer DexEvent, base64Data string) DexEvent {
	h, ok := lookup(p)
	if !ok || h.ParseProgramDataLog == nil {
		return outer
	}
	return h.ParseProgramDataLog(outer, base64Data)
}

var (
	computeBudgetMu     sync.RWMutex
	computeBudgetParser func(data []byte, meta EventMetadata) DexEvent
)

// RegisterComputeBudgetParser wires the computebudget package's decoder in,
// the same init()-time registration protocol packages use — computebudget
// imports dex for EventMetadata/DexEvent, so dex cannot import it back.
func RegisterComputeBudgetParser(parse func(data []byte, meta EventMetadata) DexEvent) {
	computeBudgetMu.Lock()
	defer computeBudgetMu.Unlock()
	computeBudgetParser = parse
}

// DispatchComputeBudgetInstruction decodes the reserved compute-budget
// program's two recognized ops (§4.2); produced events carry
// protocol = Common.
func DispatchComputeBudgetInstruction(data []byte, meta EventMetadata) DexEvent {
	computeBudgetMu.RLock()
	parse := computeBudgetParser
	computeBudgetMu.RUnlock()
	if parse == nil {
		return nil
	}
	meta.Protocol = ProtocolCommon
	return parse(data, meta)
}

// NewProtocolAllowList builds the mapset the walker uses to restrict which
// program ids it will even attempt to dispatch — a read-heavy membership
// check on the hot path, so backed by mapset.Set rather than a bare map
// wrapper.
func NewProtocolAllowList(protocols ...Protocol) mapset.Set[common.Address] {
	ids := mapset.NewThreadUnsafeSet[common.Address]()
	for _, p := range protocols {
		if id, ok := protocolProgramIDs[p]; ok {
			ids.Add(id)
		}
	}
	return ids
}

// NewEventTypeFilter builds the mapset the walker consults after enrichment
// (§4.4.4) to decide whether to deliver an event.
func NewEventTypeFilter(types ...EventType) mapset.Set[EventType] {
	return mapset.NewThreadUnsafeSet[EventType](types...)
}
