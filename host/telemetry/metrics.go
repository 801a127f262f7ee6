// Package telemetry exposes device readings as Prometheus metrics for
// the chrono-export tool.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics exported for a chrono device.
type Metrics struct {
	// Device clock readings
	DeviceMicros  *prometheus.GaugeVec
	DeviceSeconds *prometheus.GaugeVec
	UptimeSeconds *prometheus.GaugeVec

	// Stopwatch state
	StopwatchMillis  *prometheus.GaugeVec
	StopwatchRunning *prometheus.GaugeVec

	// Device clock rate vs the host clock
	DriftPPM *prometheus.GaugeVec

	// Poll health
	PollsTotal   *prometheus.CounterVec
	PollDuration *prometheus.HistogramVec
}

var (
	defaultMetrics *Metrics
)

// InitMetrics initializes the Prometheus metrics.
// This should be called once at startup before any metrics are recorded.
func InitMetrics(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	// Serial polls cost hundreds of milliseconds (each query waits out
	// the read-timeout silence), so buckets run 10ms to 2.5s
	pollBuckets := []float64{
		0.01, // 10ms
		0.025,
		0.05,
		0.1,
		0.25,
		0.5,
		1.0,
		2.5,
	}

	m := &Metrics{
		DeviceMicros: promauto.With(registry).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "chrono_device_micros",
				Help: "Monotonic microseconds since device boot (micros64)",
			},
			[]string{"device"},
		),

		DeviceSeconds: promauto.With(registry).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "chrono_device_seconds",
				Help: "Monotonic seconds since device boot (seconds64)",
			},
			[]string{"device"},
		),

		UptimeSeconds: promauto.With(registry).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "chrono_device_uptime_seconds",
				Help: "Device uptime as reported by its elapsed-seconds timer",
			},
			[]string{"device"},
		),

		StopwatchMillis: promauto.With(registry).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "chrono_stopwatch_millis",
				Help: "Accumulated stopwatch time in milliseconds",
			},
			[]string{"device"},
		),

		StopwatchRunning: promauto.With(registry).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "chrono_stopwatch_running",
				Help: "Whether the device stopwatch is running (1=yes, 0=no)",
			},
			[]string{"device"},
		),

		DriftPPM: promauto.With(registry).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "chrono_device_drift_ppm",
				Help: "Device clock rate relative to the host clock in parts per million (positive = device runs fast)",
			},
			[]string{"device"},
		),

		PollsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "chrono_polls_total",
				Help: "Total number of device polls",
			},
			[]string{"device", "status"},
		),

		PollDuration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "chrono_poll_duration_seconds",
				Help:    "Time taken for one full device poll over serial",
				Buckets: pollBuckets,
			},
			[]string{"device"},
		),
	}

	defaultMetrics = m
	return m
}

// Default returns the default metrics instance.
// If InitMetrics hasn't been called, it will initialize with the default registry.
func Default() *Metrics {
	if defaultMetrics == nil {
		return InitMetrics(nil)
	}
	return defaultMetrics
}

// RecordSample publishes one full device reading.
func (m *Metrics) RecordSample(device string, micros, seconds, uptime, stopwatchMs int64, running bool) {
	m.DeviceMicros.WithLabelValues(device).Set(float64(micros))
	m.DeviceSeconds.WithLabelValues(device).Set(float64(seconds))
	m.UptimeSeconds.WithLabelValues(device).Set(float64(uptime))
	m.StopwatchMillis.WithLabelValues(device).Set(float64(stopwatchMs))
	if running {
		m.StopwatchRunning.WithLabelValues(device).Set(1)
	} else {
		m.StopwatchRunning.WithLabelValues(device).Set(0)
	}
}

// RecordDrift publishes the device clock rate error in ppm.
func (m *Metrics) RecordDrift(device string, ppm int64) {
	m.DriftPPM.WithLabelValues(device).Set(float64(ppm))
}

// RecordPoll tracks the outcome and duration of one poll cycle.
func (m *Metrics) RecordPoll(device string, elapsed time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.PollsTotal.WithLabelValues(device, status).Inc()
	if err == nil {
		m.PollDuration.WithLabelValues(device).Observe(elapsed.Seconds())
	}
}
