package sloghook

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/bucketcache"
)

type Options struct {
	// Sampling to avoid floods on the hot read path; 0/1 = log all.
	ExpiredEvery  uint64
	SelfHealEvery uint64
	// Optional object-name redactor. Defaults to SHA-256 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	expiredCtr  atomic.Uint64
	selfHealCtr atomic.Uint64
}

var _ bucketcache.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(name string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(name)
	}
	sum := sha256.Sum256([]byte(name))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) ExpiredEntry(objectName string) {
	if h.l == nil || !sample(h.opts.ExpiredEvery, &h.expiredCtr) {
		return
	}
	h.l.Debug("bucketcache.expired_entry",
		"object", h.redact(objectName))
}

func (h *Hooks) SelfHeal(objectName, reason string) {
	if h.l == nil || !sample(h.opts.SelfHealEvery, &h.selfHealCtr) {
		return
	}
	h.l.Warn("bucketcache.self_heal",
		"object", h.redact(objectName),
		"reason", reason)
}

func (h *Hooks) StoreFault(op, objectName string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("bucketcache.store_fault",
		"op", op,
		"object", h.redact(objectName),
		"err", err)
}

func (h *Hooks) SweepDone(removed, failed int) {
	if h.l == nil {
		return
	}
	if failed > 0 {
		h.l.Warn("bucketcache.sweep_done",
			"removed", removed,
			"failed", failed)
		return
	}
	h.l.Debug("bucketcache.sweep_done",
		"removed", removed,
		"failed", failed)
}
