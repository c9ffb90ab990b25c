package main

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/protocol"
	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/service/syncer"
)

var errEngineNotReady = errors.New("sync engine not ready")

// engineHandler forwards peer messages to the sync engine. The peer node has
// to exist before the engine, so the engine is attached after both are built.
type engineHandler struct {
	engine atomic.Pointer[syncer.Engine]
}

func (h *engineHandler) get() (*syncer.Engine, error) {
	e := h.engine.Load()
	if e == nil {
		return nil, errEngineNotReady
	}
	return e, nil
}

func (h *engineHandler) OnBlockHeader(ctx context.Context, payload []byte, from protocol.Endpoint) error {
	e, err := h.get()
	if err != nil {
		return err
	}
	return e.OnBlockHeader(ctx, payload, from)
}

func (h *engineHandler) OnTransactionChunk(ctx context.Context, payload []byte, from protocol.Endpoint) error {
	e, err := h.get()
	if err != nil {
		return err
	}
	return e.OnTransactionChunk(ctx, payload, from)
}

func (h *engineHandler) OnInventory(ctx context.Context, payload []byte, from protocol.Endpoint) error {
	e, err := h.get()
	if err != nil {
		return err
	}
	return e.OnInventory(ctx, payload, from)
}

func (h *engineHandler) OnBlockHeightAnnouncement(ctx context.Context, payload []byte, from protocol.Endpoint) error {
	e, err := h.get()
	if err != nil {
		return err
	}
	return e.OnBlockHeightAnnouncement(ctx, payload, from)
}
