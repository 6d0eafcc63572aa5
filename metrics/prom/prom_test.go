package prom

import (
	"testing"

	"github.com/IvanBrykalov/pooledlist/list"
	"github.com/IvanBrykalov/pooledlist/multimap"
	"github.com/IvanBrykalov/pooledlist/policy/bounded"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter(t *testing.T) {
	t.Run("List", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		a := New(reg, "pooledlist", "test", nil)

		l := list.NewWithOptions[int](list.Options{Metrics: a})
		for i := range 4 {
			l.AddLast(i)
		}
		assert.Equal(t, 4.0, testutil.ToFloat64(a.acquired.WithLabelValues("heap")))
		assert.Equal(t, 0.0, testutil.ToFloat64(a.acquired.WithLabelValues("pool")))
		assert.Equal(t, 4.0, testutil.ToFloat64(a.active))

		l.Clear()
		assert.Equal(t, 4.0, testutil.ToFloat64(a.released))
		assert.Equal(t, 0.0, testutil.ToFloat64(a.active))
		assert.Equal(t, 4.0, testutil.ToFloat64(a.cached))

		l.AddLast(42)
		assert.Equal(t, 1.0, testutil.ToFloat64(a.acquired.WithLabelValues("pool")))
		assert.Equal(t, 3.0, testutil.ToFloat64(a.cached))

		l.ClearCachedNodes()
		assert.Equal(t, 3.0, testutil.ToFloat64(a.dropped))
		assert.Equal(t, 0.0, testutil.ToFloat64(a.cached))
	})

	t.Run("BoundedPoolDrops", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		a := New(reg, "pooledlist", "bounded", nil)

		l := list.NewWithOptions[int](list.Options{Metrics: a, Policy: bounded.New(nil, 2)})
		for i := range 5 {
			l.AddLast(i)
		}
		l.Clear()

		assert.Equal(t, 2.0, testutil.ToFloat64(a.released))
		assert.Equal(t, 3.0, testutil.ToFloat64(a.dropped))
		assert.Equal(t, 2.0, testutil.ToFloat64(a.cached))
	})

	t.Run("MultiMap", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		a := New(reg, "pooledlist", "multimap", prometheus.Labels{"owner": "test"})

		m := multimap.NewWithOptions[string, int](list.Options{Metrics: a})
		m.Add("a", 1) // first value + terminal
		m.Add("a", 2)
		assert.Equal(t, 3.0, testutil.ToFloat64(a.active))

		require.True(t, m.RemoveAll("a"))
		assert.Equal(t, 3.0, testutil.ToFloat64(a.released))
		assert.Equal(t, 3.0, testutil.ToFloat64(a.cached))
	})

	t.Run("Registered", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		_ = New(reg, "pooledlist", "reg", nil)

		// Registering the same names twice must fail loudly.
		assert.Panics(t, func() { _ = New(reg, "pooledlist", "reg", nil) })
	})
}
