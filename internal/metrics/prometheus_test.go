package metrics_test

import (
	"errors"
	"testing"
	"time"

	"github.com/devrev/recordstore/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewMetrics_Independent(t *testing.T) {
	// Each instance owns its registry, so two can coexist
	a := metrics.NewMetrics()
	b := metrics.NewMetrics()

	a.RecordInsert(metrics.StoreList, 1)
	assert.Equal(t, float64(1), testutil.ToFloat64(a.InsertsTotal.WithLabelValues(metrics.StoreList)))
	assert.Equal(t, float64(0), testutil.ToFloat64(b.InsertsTotal.WithLabelValues(metrics.StoreList)))
}

func TestMetrics_Recorders(t *testing.T) {
	m := metrics.NewMetrics()

	m.RecordInsert(metrics.StoreArray, 5)
	m.RecordLookup(metrics.StoreHash, true)
	m.RecordLookup(metrics.StoreHash, false)
	m.RecordLookup(metrics.StoreHash, false)
	m.RecordRejection("duplicate_id")
	m.RecordSort("salary_desc", time.Millisecond)
	m.RecordSnapshot("write", 724, time.Millisecond, nil)
	m.RecordSnapshot("read", 0, time.Millisecond, errors.New("boom"))

	assert.Equal(t, float64(5), testutil.ToFloat64(m.RecordsTotal.WithLabelValues(metrics.StoreArray)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.LookupsTotal.WithLabelValues(metrics.StoreHash, metrics.ResultHit)))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.LookupsTotal.WithLabelValues(metrics.StoreHash, metrics.ResultMiss)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RejectionsTotal.WithLabelValues("duplicate_id")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.SortDuration))
	assert.Equal(t, float64(724), testutil.ToFloat64(m.SnapshotBytes))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.SnapshotsTotal.WithLabelValues("read", "error")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.SnapshotsTotal.WithLabelValues("write", "success")))
}
