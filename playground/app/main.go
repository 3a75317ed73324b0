package main

import (
	"context"
	"os"
	"time"

	"github.com/a-peyrard/instance"
	"github.com/a-peyrard/instance/config"
	"github.com/a-peyrard/instance/hooks"
	appconfig "github.com/a-peyrard/instance/playground/app/config"
	"github.com/a-peyrard/instance/playground/app/greeter"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime}).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()

	cfg, err := config.Load[appconfig.Config](config.WithEnvPrefix("PG"))
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load config")
	}

	registry := instance.NewRegistry(instance.WithLogger(logger))
	if err := (Registry{}).Register(registry); err != nil {
		logger.Fatal().Err(err).Msg("Failed to register hooks")
	}
	instance.MustFor[*greeter.Greeter](registry).
		MustDecorate("ID", hooks.UUID()).
		MustDecorate("Greeting", config.Inject(cfg, "Greeting"), instance.Description("read from PG_GREETING"))

	newGreeter := instance.MustIntercept[*greeter.Greeter](registry, greeter.New)

	logger.Info().Msgf("here is what we have in the registry before constructing:\n%s", registry.Describe())

	// nothing should have been recorded before the first construction
	if recorded := greeter.Events.Length(); recorded != 0 {
		logger.Fatal().Int("events", recorded).Msg("Hooks ran before construction")
	}

	logger.Info().Msg("Constructing Greeter..")
	g := newGreeter.MustNew()
	for _, event := range greeter.Events.Get() {
		logger.Info().Msg(event)
	}
	logger.Info().
		Str("id", g.ID).
		Str("greeting", g.Greeting).
		Str("method", g.Method()).
		Msg("Finished constructing")

	greeters, err := newGreeter.NewN(context.Background(), cfg.Instances)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to construct greeters")
	}
	perInstance := instance.HookCount[*greeter.Greeter](registry) - 2 // UUID and Inject record nothing
	logger.Info().
		Int("instances", len(greeters)+1).
		Int("events", greeter.Events.Length()).
		Int("expected", (len(greeters)+1)*perInstance).
		Msg("Every instance received its hooks")

	logger.Info().Msgf("here is what we have in the registry at the end:\n%s", registry.Describe())
	logger.Info().Msg("bye.")
}
