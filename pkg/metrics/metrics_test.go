package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

// histogramSampleCount reads how many observations h has recorded.
func histogramSampleCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	m := &dto.Metric{}
	if err := h.Write(m); err != nil {
		t.Fatalf("writing histogram: %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}

func TestNewTimer(t *testing.T) {
	timer := NewTimer()

	if timer == nil {
		t.Fatal("NewTimer() returned nil")
	}
	if timer.start.IsZero() {
		t.Error("NewTimer() start time is zero")
	}
	if time.Since(timer.start) > time.Second {
		t.Error("NewTimer() start time is not recent")
	}
}

func TestTimerDuration(t *testing.T) {
	timer := NewTimer()

	sleepDuration := 50 * time.Millisecond
	time.Sleep(sleepDuration)

	duration := timer.Duration()
	if duration < sleepDuration {
		t.Errorf("Timer.Duration() = %v, want >= %v", duration, sleepDuration)
	}
}

func TestTimerObserveDuration(t *testing.T) {
	before := histogramSampleCount(t, SchedulingLatency)

	timer := NewTimer()
	time.Sleep(10 * time.Millisecond)
	timer.ObserveDuration(SchedulingLatency)

	after := histogramSampleCount(t, SchedulingLatency)
	if after != before+1 {
		t.Errorf("SchedulingLatency sample count = %d, want %d", after, before+1)
	}
}

func TestTimerObserveDurationVec(t *testing.T) {
	before := testutil.CollectAndCount(DeploymentResolveDuration)

	timer := NewTimer()
	time.Sleep(10 * time.Millisecond)
	timer.ObserveDurationVec(DeploymentResolveDuration, "git_repo_commit")

	after := testutil.CollectAndCount(DeploymentResolveDuration)
	if after != before+1 {
		t.Errorf("DeploymentResolveDuration series count = %d, want %d", after, before+1)
	}
}
