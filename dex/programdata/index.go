// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

// Package programdata reconstructs the CPI call tree from a transaction's
// log messages and correlates each "Program data: <base64>" line with the
// (outer, inner) instruction that emitted it, grounded on
// original_source/streaming/event_parser/core/program_data_index.rs (walker
// lazily builds this index only for the CLMM/CPMM/Whirlpool family, §4.3).
package programdata

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cielu/solana-dex-streamer/common"
)

// ProgramDataItem is one "Program data:" log line attributed to a span.
type ProgramDataItem struct {
	ProgramID common.Address
	Data      string // base64 payload, the text following "Program data: "
}

// Index answers "what was the Program data: line for outer k / inner j".
type Index struct {
	outer []*ProgramDataItem
	inner map[int][]*ProgramDataItem // outer index -> inner items, positional by start order
}

// GetOuter returns the item attributed to outer instruction k, if any.
func (idx *Index) GetOuter(k int) (ProgramDataItem, bool) {
	if idx == nil || k < 0 || k >= len(idx.outer) || idx.outer[k] == nil {
		return ProgramDataItem{}, false
	}
	return *idx.outer[k], true
}

// GetInner returns the item attributed to inner instruction j of outer k, if
// any.
func (idx *Index) GetInner(k, j int) (ProgramDataItem, bool) {
	if idx == nil {
		return ProgramDataItem{}, false
	}
	items, ok := idx.inner[k]
	if !ok || j < 0 || j >= len(items) || items[j] == nil {
		return ProgramDataItem{}, false
	}
	return *items[j], true
}

type span struct {
	programID common.Address
	depth     int
	start     int
	end       int
	parent    *span
	children  []*span
	item      *ProgramDataItem // first unclaimed "Program data:" line in this span's own range
}

const (
	invokePrefix = "Program "
	dataPrefix   = "Program data: "
	successSfx   = " success"
	failedSfx    = " failed"
)

// Build reconstructs the index from a transaction's log_messages, following
// the invoke/success/failed span-stack algorithm (§4.3).
func Build(logMessages []string) *Index {
	var (
		stack []*span
		roots []*span // depth == 1 spans, in encounter order
	)

	for i, line := range logMessages {
		if id, depth, ok := parseInvoke(line); ok {
			s := &span{programID: id, depth: depth, start: i}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				s.parent = parent
				parent.children = append(parent.children, s)
			}
			stack = append(stack, s)
			if depth == 1 {
				roots = append(roots, s)
			}
			continue
		}
		if isInvokeResult(line) {
			if len(stack) == 0 {
				continue
			}
			top := stack[len(stack)-1]
			top.end = i
			stack = stack[:len(stack)-1]
			continue
		}
		if len(stack) == 0 {
			continue
		}
		top := stack[len(stack)-1]
		if top.item == nil && strings.HasPrefix(line, dataPrefix) {
			top.item = &ProgramDataItem{
				ProgramID: top.programID,
				Data:      strings.TrimPrefix(line, dataPrefix),
			}
		}
	}
	// Any spans still open at end-of-log close at the last line index.
	last := len(logMessages) - 1
	for _, s := range stack {
		s.end = last
	}

	idx := &Index{inner: make(map[int][]*ProgramDataItem)}
	idx.outer = make([]*ProgramDataItem, len(roots))
	for k, r := range roots {
		idx.outer[k] = r.item
		children := append([]*span(nil), r.children...)
		sort.Slice(children, func(a, b int) bool { return children[a].start < children[b].start })
		items := make([]*ProgramDataItem, len(children))
		for j, c := range children {
			items[j] = c.item
		}
		idx.inner[k] = items
	}
	return idx
}

// parseInvoke recognizes "Program <Pubkey> invoke [<depth>]".
func parseInvoke(line string) (common.Address, int, bool) {
	if !strings.HasPrefix(line, invokePrefix) {
		return common.Address{}, 0, false
	}
	rest := line[len(invokePrefix):]
	const marker = " invoke ["
	i := strings.Index(rest, marker)
	if i < 0 {
		return common.Address{}, 0, false
	}
	pubkeyStr := rest[:i]
	depthStr := rest[i+len(marker):]
	depthStr = strings.TrimSuffix(depthStr, "]")
	depth, err := strconv.Atoi(depthStr)
	if err != nil {
		return common.Address{}, 0, false
	}
	return common.StrToAddress(pubkeyStr), depth, true
}

// isInvokeResult recognizes "Program <Pubkey> success" or the " failed: …"
// variant; both close the top-of-stack span.
func isInvokeResult(line string) bool {
	if !strings.HasPrefix(line, invokePrefix) {
		return false
	}
	return strings.HasSuffix(line, successSfx) || strings.Contains(line, failedSfx)
}
