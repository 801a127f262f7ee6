package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"syschrono/host/config"
	"syschrono/host/device"
)

var (
	devicePath = flag.String("device", "", "Serial device path (overrides config)")
	baud       = flag.Int("baud", 0, "Baud rate (ignored for USB CDC)")
	configPath = flag.String("config", "", "Path to JSON config file")
)

func main() {
	flag.Parse()

	fmt.Println("Chrono Host - Serial Console Bridge")
	fmt.Println("====================================")
	fmt.Println()

	cfg := loadConfig()

	// Create device instance
	dev := device.NewDevice()

	// Connect to device
	fmt.Printf("Connecting to %s...\n", cfg.Device)
	if err := dev.ConnectWithConfig(cfg.SerialConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer dev.Close()

	fmt.Println("Connected successfully!")

	// Interactive command loop
	fmt.Println("Enter commands ('help' lists device commands, '?' host commands, 'quit' exits):")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line {
		case "quit", "exit", "q":
			fmt.Println("Goodbye!")
			return

		case "time":
			if err := printTime(dev); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}

		case "?":
			printLocalHelp()

		default:
			// Everything else goes straight to the device console
			lines, err := dev.Exec(line)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			for _, l := range lines {
				fmt.Println(l)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
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

	// Flags override file values
	if *devicePath != "" {
		cfg.Device = *devicePath
	}
	if *baud != 0 {
		cfg.Baud = *baud
	}
	return cfg
}

// printTime shows the parsed accessor values instead of raw lines
func printTime(dev *device.Device) error {
	sample, err := dev.QueryTime()
	if err != nil {
		return err
	}
	fmt.Printf("  micros64:  %d\n", sample.Micros)
	fmt.Printf("  millis64:  %d\n", sample.Millis)
	fmt.Printf("  seconds64: %d\n", sample.Seconds)
	return nil
}

func printLocalHelp() {
	fmt.Println("\nHost-side commands:")
	fmt.Println("  time           - Query and parse the 64-bit time values")
	fmt.Println("  quit/exit/q    - Exit the program")
	fmt.Println("\nAnything else is sent to the device console verbatim.")
	fmt.Println("Type 'help' to list the device's own commands.")
	fmt.Println()
}
