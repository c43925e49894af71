// Command sdrhal aggregates the configured radio hardware into one logical
// device and keeps it available to a control surface: it builds the devices
// from configuration, merges them, attaches the telemetry bridge, and logs
// telemetry until shut down.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/radio-control/sdrhal/internal/audio"
	"github.com/radio-control/sdrhal/internal/audit"
	"github.com/radio-control/sdrhal/internal/config"
	"github.com/radio-control/sdrhal/internal/device"
	"github.com/radio-control/sdrhal/internal/telemetry"
)

func main() {
	configPath := flag.String("config", "sdrhal.yaml", "path to the device configuration")
	logDir := flag.String("log-dir", "logs", "directory for the audit log")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if !*debug {
		log = log.Level(zerolog.InfoLevel)
	}

	if err := run(log, *configPath, *logDir); err != nil {
		log.Fatal().Err(err).Msg("sdrhal failed")
	}
}

func run(log zerolog.Logger, configPath, logDir string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log.Info().Int("devices", len(cfg.Devices)).Str("config", configPath).Msg("configuration loaded")

	auditLog, err := audit.NewLogger(logDir)
	if err != nil {
		return err
	}
	defer auditLog.Close()

	// No audio backend is linked into this build; configurations with audio
	// entries fail here rather than producing a silent device.
	var backend audio.Backend

	merged, err := cfg.BuildMerged(backend, log)
	if err != nil {
		return err
	}
	log.Info().
		Str("name", merged.Name()).
		Bool("rx", merged.CanReceive()).
		Bool("tx", merged.CanTransmit()).
		Bool("tunable", merged.CanTune()).
		Float64("freq_hz", merged.Freq()).
		Int("components", len(merged.Components())).
		Msg("composite device ready")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hub := telemetry.NewHub(log)
	defer hub.Close()
	merged.AttachContext(device.NewContext(hub.Sink()))

	messages, cancel := hub.Subscribe(ctx)
	defer cancel()
	go func() {
		for msg := range messages {
			log.Info().Str("object", msg.ObjectID()).Msg("telemetry")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	err = merged.Close()
	auditLog.LogAction(merged.Name(), "close", nil, err)
	return err
}
