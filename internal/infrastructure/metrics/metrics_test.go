package metrics

import (
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func histogramSnapshot(t *testing.T) *dto.Histogram {
	t.Helper()
	m := &dto.Metric{}
	require.NoError(t, TokenRequestDuration.Write(m))
	require.NotNil(t, m.Histogram)
	return m.Histogram
}

func bucketCount(h *dto.Histogram, upperBound float64) uint64 {
	for _, b := range h.GetBucket() {
		if b.GetUpperBound() == upperBound {
			return b.GetCumulativeCount()
		}
	}
	return 0
}

func TestRecordTokenIssued_CoversAwaitedDispatch(t *testing.T) {
	before := histogramSnapshot(t)

	// A request that waited on a dispatch close to its 5s ceiling.
	RecordTokenIssued(4.2)

	after := histogramSnapshot(t)
	assert.Equal(t, before.GetSampleCount()+1, after.GetSampleCount())
	assert.Equal(t, bucketCount(before, 5)+1, bucketCount(after, 5), "a 4.2s request must land in the 5s bucket")
	assert.Equal(t, bucketCount(before, 2.5), bucketCount(after, 2.5))
}

func TestRecordDispatch(t *testing.T) {
	m := &dto.Metric{}
	require.NoError(t, DispatchRequests.WithLabelValues("timeout").Write(m))
	before := m.GetCounter().GetValue()

	RecordDispatch("timeout", 5)

	m = &dto.Metric{}
	require.NoError(t, DispatchRequests.WithLabelValues("timeout").Write(m))
	assert.Equal(t, before+1, m.GetCounter().GetValue())
}
