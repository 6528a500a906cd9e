// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package dex

import (
	"fmt"
	"sync/atomic"

	"github.com/fatih/color"

	"github.com/cielu/solana-dex-streamer/core"
)

// FrameKind distinguishes the three upstream frame kinds metrics are kept
// per (§4.7).
type FrameKind int

const (
	FrameTransaction FrameKind = iota
	FrameAccount
	FrameBlockMeta

	frameKindCount
)

func (k FrameKind) String() string {
	switch k {
	case FrameTransaction:
		return "TX"
	case FrameAccount:
		return "Account"
	case FrameBlockMeta:
		return "BlockMeta"
	default:
		return "Unknown"
	}
}

// frameMetrics is the lock-free counter set kept per frame kind: a process
// count, an events-processed count, and an integer time×count accumulator
// so the running average never touches floating point.
type frameMetrics struct {
	processCount     uint64
	eventsProcessed  uint64
	lastProcessingUs uint64
	totalProcessUs   uint64
}

// Metrics is the process-wide, lock-free metrics accumulator (C7). Reads and
// writes are all atomic; there is nothing to lock, and nothing to tear down.
type Metrics struct {
	enabled int32
	frames  [frameKindCount]frameMetrics
	dropped uint64
}

var globalMetrics = &Metrics{}

// DefaultMetrics returns the process-wide metrics accumulator.
func DefaultMetrics() *Metrics { return globalMetrics }

// SetEnabled toggles metrics collection; disabled by default. Matches
// Config.EnableMetrics.
func (m *Metrics) SetEnabled(enabled bool) {
	v := int32(0)
	if enabled {
		v = 1
	}
	atomic.StoreInt32(&m.enabled, v)
}

func (m *Metrics) isEnabled() bool { return atomic.LoadInt32(&m.enabled) != 0 }

// RecordProcess increments the process count for a frame kind.
func (m *Metrics) RecordProcess(kind FrameKind) {
	if !m.isEnabled() {
		return
	}
	atomic.AddUint64(&m.frames[kind].processCount, 1)
}

// RecordEvents records count events emitted for kind, taking processingUs
// microseconds in total.
func (m *Metrics) RecordEvents(kind FrameKind, count uint64, processingUs int64) {
	if !m.isEnabled() || count == 0 {
		return
	}
	f := &m.frames[kind]
	atomic.AddUint64(&f.eventsProcessed, count)
	atomic.StoreUint64(&f.lastProcessingUs, uint64(processingUs))
	atomic.AddUint64(&f.totalProcessUs, uint64(processingUs))
}

// RecordDropped adds count to the dropped-event counter (batch increment,
// §4.7).
func (m *Metrics) RecordDropped(count uint64) {
	if !m.isEnabled() || count == 0 {
		return
	}
	atomic.AddUint64(&m.dropped, count)
}

// FrameSnapshot is a point-in-time read of one frame kind's counters.
type FrameSnapshot struct {
	Kind            FrameKind
	ProcessCount    uint64
	EventsProcessed uint64
	LastUs          uint64
	AvgUs           float64
}

// Snapshot is a point-in-time read of the whole metrics set.
type Snapshot struct {
	Frames  [frameKindCount]FrameSnapshot
	Dropped uint64
}

// Snapshot takes a lock-free read of the current counters.
func (m *Metrics) Snapshot() Snapshot {
	var s Snapshot
	s.Dropped = atomic.LoadUint64(&m.dropped)
	for i := range m.frames {
		f := &m.frames[i]
		processed := atomic.LoadUint64(&f.eventsProcessed)
		total := atomic.LoadUint64(&f.totalProcessUs)
		var avg float64
		if processed > 0 {
			avg = float64(total) / float64(processed)
		}
		s.Frames[i] = FrameSnapshot{
			Kind:            FrameKind(i),
			ProcessCount:    atomic.LoadUint64(&f.processCount),
			EventsProcessed: processed,
			LastUs:          atomic.LoadUint64(&f.lastProcessingUs),
			AvgUs:           avg,
		}
	}
	return s
}

// String renders a colorized one-line console summary: counts in green,
// the dropped-event total in yellow when nonzero. Intended for interactive
// debugging, not machine parsing.
func (s Snapshot) String() string {
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	out := ""
	for i, f := range s.Frames {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%s=%s(avg %.1fus)", f.Kind, green(f.EventsProcessed), f.AvgUs)
	}
	if s.Dropped > 0 {
		out += fmt.Sprintf(" dropped=%s", yellow(s.Dropped))
	}
	return out
}

// LogDetailed prints the full snapshot as indented JSON, for the cases where
// the colorized one-liner String() isn't enough to see every frame kind's
// counters at once.
func (s Snapshot) LogDetailed() {
	core.BeautifyConsole("metrics", s)
}
