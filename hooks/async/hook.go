// usage:
//
// import (
//
//	"log/slog"
//
//	"github.com/unkn0wn-root/bucketcache"
//	"github.com/unkn0wn-root/bucketcache/codec"
//	"github.com/unkn0wn-root/bucketcache/hooks/async"
//	"github.com/unkn0wn-root/bucketcache/hooks/slog"
//
// )
//
//	raw := sloghook.New(slog.Default(), sloghook.Options{
//	    ExpiredEvery:  100, // sample logs: ~every 100th lazy expiry
//	    SelfHealEvery: 10,  // ~every 10th self-heal
//	})
//
// hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
// defer hooks.Close()
//
//	cache, _ := bucketcache.New[User](ctx, bucketcache.Options[User]{
//	    Store:  s3,
//	    Bucket: "app-cache",
//	    Codec:  codec.Msgpack[User]{},
//	    Hooks:  hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/bucketcache"
)

type Hooks struct {
	inner bucketcache.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ bucketcache.Hooks = (*Hooks)(nil)

func New(inner bucketcache.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) ExpiredEntry(name string)    { h.try(func() { h.inner.ExpiredEntry(name) }) }
func (h *Hooks) SelfHeal(name, r string)     { h.try(func() { h.inner.SelfHeal(name, r) }) }
func (h *Hooks) SweepDone(removed, bad int)  { h.try(func() { h.inner.SweepDone(removed, bad) }) }
func (h *Hooks) StoreFault(op, name string, err error) {
	h.try(func() { h.inner.StoreFault(op, name, err) })
}
