package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cuemby/gridworks/pkg/types"
)

func TestReserveAndRelease(t *testing.T) {
	tests := []struct {
		name        string
		totals      types.ResourceVector
		reservation types.ResourceVector
		wantOK      bool
	}{
		{"fits exactly", types.ResourceVector{"cpu": 4}, types.ResourceVector{"cpu": 4}, true},
		{"fits with headroom", types.ResourceVector{"cpu": 4}, types.ResourceVector{"cpu": 2}, true},
		{"does not fit", types.ResourceVector{"cpu": 4}, types.ResourceVector{"cpu": 5}, false},
		{"missing component treated as zero", types.ResourceVector{"cpu": 4}, types.ResourceVector{"memory": 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New()
			l.Register("a1", tt.totals, "")

			ok := l.Reserve("a1", tt.reservation, "")
			assert.Equal(t, tt.wantOK, ok)

			a, _ := l.Get("a1")
			if tt.wantOK {
				for name, total := range tt.totals {
					assert.Equal(t, total-tt.reservation[name], a.Available[name])
				}
				l.Release("a1", tt.reservation)
				a, _ = l.Get("a1")
				for name, total := range tt.totals {
					assert.Equal(t, total, a.Available[name])
				}
			} else {
				assert.Equal(t, tt.totals, a.Available)
			}
		})
	}
}

func TestReleaseNeverExceedsTotals(t *testing.T) {
	l := New()
	l.Register("a1", types.ResourceVector{"cpu": 4}, "")

	l.Release("a1", types.ResourceVector{"cpu": 100})

	a, _ := l.Get("a1")
	assert.Equal(t, float64(4), a.Available["cpu"])
}

func TestRegisterResetsOnConflict(t *testing.T) {
	l := New()
	l.Register("a1", types.ResourceVector{"cpu": 4}, "")
	assert.True(t, l.Reserve("a1", types.ResourceVector{"cpu": 4}, ""))

	a, _ := l.Get("a1")
	assert.Equal(t, float64(0), a.Available["cpu"])

	wasReset := l.Register("a1", types.ResourceVector{"cpu": 8}, "")
	assert.True(t, wasReset)

	a, _ = l.Get("a1")
	assert.Equal(t, float64(8), a.Available["cpu"])
}

func TestRegisterIdempotentOnSameTotals(t *testing.T) {
	l := New()
	l.Register("a1", types.ResourceVector{"cpu": 4}, "")
	l.Reserve("a1", types.ResourceVector{"cpu": 1}, "")

	wasReset := l.Register("a1", types.ResourceVector{"cpu": 4}, "")
	assert.False(t, wasReset)

	a, _ := l.Get("a1")
	assert.Equal(t, float64(3), a.Available["cpu"])
}

func TestJobAffinity(t *testing.T) {
	l := New()
	l.Register("a1", types.ResourceVector{"cpu": 4}, "j1")

	assert.False(t, l.Reserve("a1", types.ResourceVector{"cpu": 1}, "other-job"))
	assert.True(t, l.Reserve("a1", types.ResourceVector{"cpu": 1}, "j1"))
}

func TestFitsAny(t *testing.T) {
	l := New()
	l.Register("small", types.ResourceVector{"memory": 50}, "")
	l.Register("big", types.ResourceVector{"memory": 200}, "")

	assert.True(t, l.FitsAny(types.ResourceVector{"memory": 100}))
	assert.False(t, l.FitsAny(types.ResourceVector{"memory": 500}))
}

func TestStaleAgents(t *testing.T) {
	l := New()
	l.Register("a1", types.ResourceVector{"cpu": 1}, "")

	cutoffInFuture := time.Now().Add(time.Hour)
	assert.Contains(t, l.StaleAgents(cutoffInFuture), "a1")

	cutoffInPast := time.Now().Add(-time.Hour)
	assert.Empty(t, l.StaleAgents(cutoffInPast))
}

func TestSnapshotIsIndependentCopy(t *testing.T) {
	l := New()
	l.Register("a1", types.ResourceVector{"cpu": 4}, "")

	snap := l.Snapshot()
	assert.Len(t, snap, 1)
	snap[0].Available["cpu"] = 0

	a, _ := l.Get("a1")
	assert.Equal(t, float64(4), a.Available["cpu"])
}
