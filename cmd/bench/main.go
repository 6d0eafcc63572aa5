// Command bench runs a frame-loop subscribe/unsubscribe workload against
// pooled multimaps and exposes optional pprof/Prometheus endpoints.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/IvanBrykalov/pooledlist/list"
	pmet "github.com/IvanBrykalov/pooledlist/metrics/prom"
	"github.com/IvanBrykalov/pooledlist/multimap"
	"github.com/IvanBrykalov/pooledlist/policy"
	"github.com/IvanBrykalov/pooledlist/policy/bounded"
	"github.com/IvanBrykalov/pooledlist/policy/fifo"
	"github.com/IvanBrykalov/pooledlist/policy/lifo"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
)

// config is the flag snapshot handed to workers.
type config struct {
	frames   int
	ops      int
	keys     uint64
	values   int
	zipfS    float64
	zipfV    float64
	seed     int64
	duration time.Duration
}

// counters are shared across workers; each worker flushes once per frame.
type counters struct {
	frames  atomic.Uint64
	adds    atomic.Uint64
	removes atomic.Uint64
	hits    atomic.Uint64
	drops   atomic.Uint64
}

func main() {
	// ---- Flags ----
	var (
		workers  = flag.Int("workers", runtime.GOMAXPROCS(0), "number of worker goroutines (one multimap each)")
		frames   = flag.Int("frames", 10_000, "frames per worker (0 = run for -duration)")
		duration = flag.Duration("duration", 10*time.Second, "upper bound on run time")
		ops      = flag.Int("ops", 256, "subscriptions per frame")
		keys     = flag.Int("keys", 4_096, "keyspace size")
		keyType  = flag.String("keytype", "int", "key type: int | uuid")
		values   = flag.Int("values", 16, "distinct subscriber values per key")
		zipfS    = flag.Float64("zipf_s", 1.1, "Zipf s > 1 (skew)")
		zipfV    = flag.Float64("zipf_v", 1.0, "Zipf v")
		seed     = flag.Int64("seed", time.Now().UnixNano(), "random seed")

		policyName = flag.String("policy", "fifo", "node reuse policy: fifo | lifo")
		maxPool    = flag.Int("maxpool", -1, "cap on pooled nodes per multimap (-1 = unbounded)")
		prealloc   = flag.Int("prealloc", 0, "nodes to preallocate per multimap")

		pprofAddr   = flag.String("pprof", "", "serve pprof at addr (e.g. :6060); empty = disabled")
		metricsAddr = flag.String("http", ":8080", "serve Prometheus metrics at addr; empty = disabled")
	)
	flag.Parse()

	// ---- pprof server (on DefaultServeMux) ----
	if *pprofAddr != "" {
		go func() {
			log.Printf("pprof: serving at %s", *pprofAddr)
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	// ---- Prometheus metrics (on DefaultServeMux) ----
	// One adapter serves every worker: counters add up, gauges show the last writer.
	metrics := pmet.New(nil, "pooledlist", "bench", nil)
	if *metricsAddr != "" {
		http.Handle("/metrics", promhttp.Handler())
		go func() {
			log.Printf("metrics: serving at %s", *metricsAddr)
			log.Println(http.ListenAndServe(*metricsAddr, nil))
		}()
	}

	// ---- List options ----
	var reuse policy.Reuse
	switch *policyName {
	case "fifo":
		reuse = fifo.New()
	case "lifo":
		reuse = lifo.New()
	default:
		log.Fatalf("unknown policy: %q (use fifo or lifo)", *policyName)
	}
	if *maxPool >= 0 {
		reuse = bounded.New(reuse, *maxPool)
	}
	opt := list.Options{Metrics: metrics, Policy: reuse, Prealloc: *prealloc}

	// ---- Snapshot flags for goroutines ----
	workersN := *workers
	if workersN <= 0 {
		workersN = 1
	}
	if *keys <= 0 || *values <= 0 || *ops <= 0 {
		log.Fatalf("keys, values and ops must be positive")
	}
	cfg := config{
		frames:   *frames,
		ops:      *ops,
		keys:     uint64(*keys - 1),
		values:   *values,
		zipfS:    *zipfS,
		zipfV:    *zipfV,
		seed:     *seed,
		duration: *duration,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.duration)
	defer cancel()

	// ---- Load generation ----
	var (
		c     counters
		stats = make([]list.Stats, workersN)
		err   error
		ms0   runtime.MemStats
		ms1   runtime.MemStats
	)
	runtime.ReadMemStats(&ms0)
	start := time.Now()

	switch *keyType {
	case "int":
		err = run(ctx, workersN, cfg, opt, &c, stats, func(i uint64) int { return int(i) })
	case "uuid":
		ids := make([]uuid.UUID, *keys)
		for i := range ids {
			ids[i] = uuid.New()
		}
		runtime.ReadMemStats(&ms0)
		start = time.Now()
		err = run(ctx, workersN, cfg, opt, &c, stats, func(i uint64) uuid.UUID { return ids[i] })
	default:
		log.Fatalf("unknown key type: %q (use int or uuid)", *keyType)
	}
	if err != nil {
		log.Fatalf("bench: %v", err)
	}

	elapsed := time.Since(start)
	runtime.ReadMemStats(&ms1)

	// ---- Report ----
	var total list.Stats
	for _, st := range stats {
		total.Allocated += st.Allocated
		total.Reused += st.Reused
		total.Dropped += st.Dropped
		total.Cached += st.Cached
	}
	framesN := c.frames.Load()
	addsN := c.adds.Load()
	removesN := c.removes.Load()
	opsN := addsN + removesN

	reuseRate := 0.0
	if n := total.Reused + total.Allocated; n > 0 {
		reuseRate = float64(total.Reused) / float64(n) * 100
	}
	mallocsPerOp := 0.0
	if opsN > 0 {
		mallocsPerOp = float64(ms1.Mallocs-ms0.Mallocs) / float64(opsN)
	}

	fmt.Printf("policy=%s maxpool=%d prealloc=%d keytype=%s workers=%d keys=%d dur=%v seed=%d\n",
		*policyName, *maxPool, *prealloc, *keyType, workersN, *keys, elapsed, cfg.seed)
	fmt.Printf("frames=%d (%.0f frames/s)  ops=%d (%.0f ops/s)  adds=%d  removes=%d (hit %d)  removeAll-drops=%d\n",
		framesN, float64(framesN)/elapsed.Seconds(), opsN, float64(opsN)/elapsed.Seconds(),
		addsN, removesN, c.hits.Load(), c.drops.Load())
	fmt.Printf("allocated=%d  reused=%d  dropped=%d  cached=%d  reuse-rate=%.2f%%\n",
		total.Allocated, total.Reused, total.Dropped, total.Cached, reuseRate)
	fmt.Printf("mallocs/op=%.4f\n", mallocsPerOp)
}

// run fans the workload out to n workers and waits for all of them.
// stats[i] receives worker i's final list snapshot.
func run[K comparable](ctx context.Context, n int, cfg config, opt list.Options, c *counters, stats []list.Stats, key func(uint64) K) error {
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < n; w++ {
		g.Go(func() error {
			st, err := worker(ctx, w, cfg, opt, c, key)
			stats[w] = st
			return err
		})
	}
	return g.Wait()
}

// worker owns one multimap. Every frame it subscribes cfg.ops values under
// Zipf-distributed keys, unsubscribes about half of them, drops one hot key
// entirely, and finally clears the table back into its pool.
func worker[K comparable](ctx context.Context, id int, cfg config, opt list.Options, c *counters, key func(uint64) K) (list.Stats, error) {
	// Each worker gets its own RNG + Zipf (rand.Rand is NOT goroutine-safe).
	r := rand.New(rand.NewSource(cfg.seed + int64(id)*9973))
	zipf := rand.NewZipf(r, cfg.zipfS, cfg.zipfV, cfg.keys)
	m := multimap.NewWithOptions[K, int](opt)

	for frame := 0; cfg.frames == 0 || frame < cfg.frames; frame++ {
		select {
		case <-ctx.Done():
			return m.Stats(), nil
		default:
		}

		var adds, removes, hits, drops uint64
		for i := 0; i < cfg.ops; i++ {
			m.Add(key(zipf.Uint64()), r.Intn(cfg.values))
			adds++
		}
		for i := 0; i < cfg.ops/2; i++ {
			removes++
			if m.Remove(key(zipf.Uint64()), r.Intn(cfg.values)) {
				hits++
			}
		}
		// Key 0 is the hottest under Zipf.
		if m.RemoveAll(key(0)) {
			drops++
		}
		if m.Len() > int(cfg.keys)+1 {
			return m.Stats(), fmt.Errorf("worker %d: %d groups for %d keys", id, m.Len(), cfg.keys+1)
		}
		m.Clear()

		c.adds.Add(adds)
		c.removes.Add(removes)
		c.hits.Add(hits)
		c.drops.Add(drops)
		c.frames.Inc()
	}
	return m.Stats(), nil
}
