package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"syschrono/host/config"
	"syschrono/host/device"
	"syschrono/host/telemetry"
)

var (
	devicePath = flag.String("device", "", "Serial device path (overrides config)")
	configPath = flag.String("config", "", "Path to JSON config file")
	listen     = flag.String("listen", "", "Metrics listen address (overrides config)")
	pollMs     = flag.Int("poll", 0, "Poll interval in milliseconds (overrides config)")
)

func main() {
	flag.Parse()

	cfg := loadConfig()

	dev := device.NewDevice()
	log.Printf("Connecting to %s...", cfg.Device)
	if err := dev.ConnectWithConfig(cfg.SerialConfig()); err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer dev.Close()
	log.Printf("✓ Connected to device")

	metrics := telemetry.InitMetrics(nil)

	// Metrics endpoint
	http.Handle("/metrics", promhttp.Handler())
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	server := &http.Server{Addr: cfg.Listen}
	go func() {
		log.Printf("✓ Prometheus metrics endpoint: http://localhost%s/metrics", cfg.Listen)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Metrics server failed: %v", err)
		}
	}()

	// Poll the device until interrupted
	ticker := time.NewTicker(time.Duration(cfg.PollInterval) * time.Millisecond)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	var drift telemetry.DriftTracker

	for {
		select {
		case <-ticker.C:
			pollOnce(dev, cfg.Device, metrics, &drift)

		case <-sigCh:
			log.Println("Shutting down...")
			server.Close()
			return
		}
	}
}

func pollOnce(dev *device.Device, name string, metrics *telemetry.Metrics, drift *telemetry.DriftTracker) {
	start := time.Now()

	ts, err := dev.QueryTime()
	polled := time.Now() // micros64 was read by now; the rest of the poll is excluded from drift

	var sw device.StopwatchSample
	var uptime int64
	if err == nil {
		sw, err = dev.QueryStopwatch()
	}
	if err == nil {
		uptime, err = dev.QueryUptime()
	}

	metrics.RecordPoll(name, time.Since(start), err)
	if err != nil {
		log.Printf("Poll failed: %v", err)
		drift.Reset()
		return
	}
	metrics.RecordSample(name, ts.Micros, ts.Seconds, uptime, sw.Millis, sw.Running)
	if ppm, ok := drift.Observe(ts.Micros, polled); ok {
		metrics.RecordDrift(name, ppm)
	}
}

func loadConfig() *config.HostConfig {
	var cfg *config.HostConfig
	if *configPath != "" {
		loaded, err := config.LoadConfigFile(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	} else {
		cfg = config.DefaultHostConfig()
	}

	if *devicePath != "" {
		cfg.Device = *devicePath
	}
	if *listen != "" {
		cfg.Listen = *listen
	}
	if *pollMs != 0 {
		cfg.PollInterval = *pollMs
	}
	return cfg
}
