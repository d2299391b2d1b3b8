package prometheus

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/propgraph"
)

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := New(reg)
	require.NoError(t, err)

	g := propgraph.New(propgraph.WithMetricsCollector(c))
	ctx := context.Background()

	require.NoError(t, g.Update(ctx, func(tx *propgraph.Tx) error {
		et, err := propgraph.AddNewEdgeType[int32](tx)
		if err != nil {
			return err
		}
		v, err := tx.NewVertexIndex()
		if err != nil {
			return err
		}
		if err := propgraph.SetEdge(tx, et, v, v, int32(3)); err != nil {
			return err
		}
		return propgraph.ApplyToEdgeType(tx, et, et, propgraph.AdditiveInverse[int32](), propgraph.Options[int32]{})
	}))

	_ = g.Update(ctx, func(tx *propgraph.Tx) error {
		_, _ = tx.NewVertexIndex()
		_ = tx.DeleteEdgeType(42)
		return errors.New("abort")
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(c.commits))
	assert.Equal(t, 4.0, testutil.ToFloat64(c.mutationsCommitted))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.reverts.WithLabelValues("success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.mutationsReverted))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.mutations.WithLabelValues("new_vertex", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.mutations.WithLabelValues("set_edge", "success")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.opLatency, "propgraph_operator_latency_seconds"))
}

func TestCollectorOptions(t *testing.T) {
	reg := prometheus.NewRegistry()
	opts := func(o *Options) {
		o.Namespace = "social"
		o.ConstLabels = prometheus.Labels{"graph": "friends"}
	}
	c, err := New(reg, opts)
	require.NoError(t, err)

	c.RecordCommit(2)
	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "social_commits_total")

	_, err = New(reg, opts)
	var are prometheus.AlreadyRegisteredError
	assert.ErrorAs(t, err, &are)
}
