package main

import (
	"flag"
	"fmt"
	"os"

	"syschrono/host/config"
	"syschrono/host/device"
)

var (
	devicePath = flag.String("device", "", "Serial device path (overrides config)")
	configPath = flag.String("config", "", "Path to JSON config file")
	pollMs     = flag.Int("poll", 0, "Poll interval in milliseconds (overrides config)")
)

func main() {
	flag.Parse()

	cfg := loadConfig()

	dev := device.NewDevice()
	fmt.Printf("Connecting to %s...\n", cfg.Device)
	if err := dev.ConnectWithConfig(cfg.SerialConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer dev.Close()

	if err := startTUI(dev, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() *config.HostConfig {
	var cfg *config.HostConfig
	if *configPath != "" {
		loaded, err := config.LoadConfigFile(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	} else {
		cfg = config.DefaultHostConfig()
	}

	if *devicePath != "" {
		cfg.Device = *devicePath
	}
	if *pollMs != 0 {
		cfg.PollInterval = *pollMs
	}
	return cfg
}
