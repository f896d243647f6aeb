package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	interviewStartedTotal   atomic.Uint64
	interviewCompletedTotal atomic.Uint64
	interviewFailedTotal    atomic.Uint64
	followUpGeneratedTotal  atomic.Uint64
	scoringFallbackTotal    atomic.Uint64

	scoringDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

// IncInterviewStarted increments the started counter.
func IncInterviewStarted() {
	interviewStartedTotal.Add(1)
}

// IncInterviewCompleted increments the completed counter.
func IncInterviewCompleted() {
	interviewCompletedTotal.Add(1)
}

// IncInterviewFailed increments the failed counter.
func IncInterviewFailed() {
	interviewFailedTotal.Add(1)
}

// IncFollowUpGenerated increments the follow-up counter.
func IncFollowUpGenerated() {
	followUpGeneratedTotal.Add(1)
}

// IncScoringFallback counts completions scored without the external model.
func IncScoringFallback() {
	scoringFallbackTotal.Add(1)
}

// ObserveScoringDurationMs records a scoring duration in milliseconds.
func ObserveScoringDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	scoringDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "interview_started_total", "Total interviews started", interviewStartedTotal.Load())
	writeCounter(&buf, "interview_completed_total", "Total interviews completed", interviewCompletedTotal.Load())
	writeCounter(&buf, "interview_failed_total", "Total interviews failed", interviewFailedTotal.Load())
	writeCounter(&buf, "follow_up_generated_total", "Total adaptive follow-ups generated", followUpGeneratedTotal.Load())
	writeCounter(&buf, "scoring_fallback_total", "Total interviews scored by the local evaluator alone", scoringFallbackTotal.Load())
	writeHistogram(&buf, "scoring_duration_ms", "Interview scoring duration in milliseconds", scoringDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// NowMillis returns current time in milliseconds, useful for callers without time utilities.
func NowMillis() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}
