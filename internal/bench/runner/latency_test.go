package runner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func TestComputeLatencyStats(t *testing.T) {
	tests := []struct {
		name    string
		samples []time.Duration
		min     time.Duration
		max     time.Duration
		mean    time.Duration
		median  time.Duration
	}{
		{name: "single", samples: []time.Duration{ms(10)}, min: ms(10), max: ms(10), mean: ms(10), median: ms(10)},
		{name: "odd count", samples: []time.Duration{ms(10), ms(20), ms(30), ms(40), ms(50)}, min: ms(10), max: ms(50), mean: ms(30), median: ms(30)},
		{name: "even count", samples: []time.Duration{ms(10), ms(20), ms(30), ms(40)}, min: ms(10), max: ms(40), mean: ms(25), median: ms(25)},
		{name: "unsorted", samples: []time.Duration{ms(50), ms(10), ms(30), ms(20), ms(40)}, min: ms(10), max: ms(50), mean: ms(30), median: ms(30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := ComputeLatencyStats(tt.samples)
			assert.Equal(t, tt.min, stats.Min)
			assert.Equal(t, tt.max, stats.Max)
			assert.Equal(t, tt.mean, stats.Mean)
			assert.Equal(t, tt.median, stats.Median)
			assert.Equal(t, len(tt.samples), stats.SampleCount)
			assert.False(t, stats.IsZero())
		})
	}
}

func TestComputeLatencyStats_Empty(t *testing.T) {
	stats := ComputeLatencyStats(nil)
	assert.True(t, stats.IsZero())
	assert.Zero(t, stats.Max)
	assert.Zero(t, stats.P99())
}

func TestComputeLatencyStats_DoesNotReorderInput(t *testing.T) {
	samples := []time.Duration{ms(3), ms(1), ms(2)}
	ComputeLatencyStats(samples)
	assert.Equal(t, []time.Duration{ms(3), ms(1), ms(2)}, samples)
}

func TestComputeLatencyStats_Percentiles(t *testing.T) {
	samples := make([]time.Duration, 100)
	for i := range samples {
		samples[i] = ms(i + 1)
	}
	stats := ComputeLatencyStats(samples)

	tolerance := float64(time.Millisecond)
	assert.InDelta(t, float64(ms(50)), float64(stats.P50()), tolerance)
	assert.InDelta(t, float64(ms(90)), float64(stats.P90()), tolerance)
	assert.InDelta(t, float64(ms(95)), float64(stats.P95()), tolerance)
	assert.InDelta(t, float64(ms(99)), float64(stats.P99()), tolerance)
}

func TestComputeLatencyStats_Stddev(t *testing.T) {
	flat := ComputeLatencyStats([]time.Duration{ms(100), ms(100), ms(100)})
	assert.Zero(t, flat.Stddev)

	// sample stddev of 10, 20, 30 is exactly 10
	spread := ComputeLatencyStats([]time.Duration{ms(10), ms(20), ms(30)})
	assert.Equal(t, ms(10), spread.Stddev)
}

func TestMergeLatencyStats(t *testing.T) {
	a := ComputeLatencyStats([]time.Duration{ms(10), ms(20)})
	b := ComputeLatencyStats([]time.Duration{ms(30), ms(40)})

	merged := MergeLatencyStats([]LatencyStats{a, b})
	assert.Equal(t, ms(10), merged.Min)
	assert.Equal(t, ms(40), merged.Max)
	assert.Equal(t, ms(25), merged.Mean)
	assert.Equal(t, 4, merged.SampleCount)

	assert.True(t, MergeLatencyStats(nil).IsZero())
}

func TestPercentile_EdgeCases(t *testing.T) {
	one := []time.Duration{ms(10)}
	assert.Equal(t, ms(10), percentile(one, 0))
	assert.Equal(t, ms(10), percentile(one, 100))
	assert.Zero(t, percentile(nil, 50))

	two := []time.Duration{ms(10), ms(20)}
	assert.Equal(t, ms(10), percentile(two, 0))
	assert.Equal(t, ms(15), percentile(two, 50))
	assert.Equal(t, ms(20), percentile(two, 100))
}
