package config

import (
	"encoding/json"
	"os"

	"syschrono/host/serial"
)

// HostConfig holds settings shared by the host-side tools
type HostConfig struct {
	// Serial device path (e.g. "/dev/ttyACM0", "COM3")
	Device string `json:"device"`

	// Baud rate (USB CDC ignores this)
	Baud int `json:"baud"`

	// Serial read timeout in milliseconds
	ReadTimeout int `json:"read_timeout_ms"`

	// How often the watch TUI and exporter poll the device, in milliseconds
	PollInterval int `json:"poll_interval_ms"`

	// Listen address for the Prometheus exporter
	Listen string `json:"listen"`
}

// LoadConfig parses a JSON configuration string and returns a HostConfig
func LoadConfig(jsonData []byte) (*HostConfig, error) {
	var config HostConfig

	err := json.Unmarshal(jsonData, &config)
	if err != nil {
		return nil, err
	}

	// Apply defaults
	applyDefaults(&config)

	return &config, nil
}

// LoadConfigFile reads and parses a JSON configuration file
func LoadConfigFile(path string) (*HostConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadConfig(data)
}

// applyDefaults fills in missing configuration values with sensible defaults
func applyDefaults(config *HostConfig) {
	if config.Device == "" {
		config.Device = "/dev/ttyACM0"
	}
	if config.Baud == 0 {
		config.Baud = 115200
	}
	if config.ReadTimeout == 0 {
		config.ReadTimeout = 100
	}
	if config.PollInterval == 0 {
		config.PollInterval = 1000 // 1s
	}
	if config.Listen == "" {
		config.Listen = ":9308"
	}
}

// DefaultHostConfig returns the defaults used when no file is given
func DefaultHostConfig() *HostConfig {
	cfg := &HostConfig{}
	applyDefaults(cfg)
	return cfg
}

// SerialConfig converts the host settings into a serial port config
func (c *HostConfig) SerialConfig() *serial.Config {
	return &serial.Config{
		Device:      c.Device,
		Baud:        c.Baud,
		ReadTimeout: c.ReadTimeout,
	}
}
