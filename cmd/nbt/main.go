package main

import (
	"log"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	nbt "github.com/starfederation/nbt-go"
)

type cli struct {
	Verbose bool `short:"v" help:"Log decoder and encoder failures at debug level."`

	Dump  dumpCmd  `cmd:"" help:"Decode an NBT file and print it as typed JSON."`
	Build buildCmd `cmd:"" help:"Encode typed JSON into an NBT file."`
	Bench benchCmd `cmd:"" help:"Decode an NBT file repeatedly and report timings."`
}

func main() {
	log.SetFlags(0)

	var args cli
	ctx := kong.Parse(&args,
		kong.Name("nbt"),
		kong.Description("Inspect, build and benchmark named binary tag files."),
		kong.UsageOnError(),
	)

	logger, err := newLogger(args.Verbose)
	if err != nil {
		log.Fatal(err)
	}
	nbt.SetLogger(logger)

	ctx.FatalIfErrorf(runSynced(logger, func() error { return ctx.Run(logger) }))
}

// runSynced flushes logger after run returns so buffered entries reach the
// sink before a fatal exit.
func runSynced(logger *zap.Logger, run func() error) error {
	err := run()
	_ = logger.Sync()
	return err
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}
