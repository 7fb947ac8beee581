// Command cli generates names from the terminal.
//
// Without flags it starts an interactive prompt. With -seed or -count it
// prints one batch and exits.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/dmitrymomot/namegen/internal/bootstrap"
	"github.com/dmitrymomot/namegen/internal/prompt"
	"github.com/dmitrymomot/namegen/pkg/config"
	"github.com/dmitrymomot/namegen/pkg/logger"
)

func main() {
	var (
		seed    = flag.String("seed", "", "initial characters of the generated names")
		count   = flag.Int("count", 1, "number of names to generate")
		verbose = flag.Bool("verbose", false, "write logs to stderr")
	)
	flag.Parse()

	// -seed="" still asks for a single run
	var once, countSet bool
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "count":
			countSet = true
			once = true
		case "seed":
			once = true
		}
	})

	c := ""
	if countSet {
		c = strconv.Itoa(*count)
	}
	if err := run(*seed, c, once, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, "cli:", err)
		os.Exit(1)
	}
}

func run(seed, count string, once, verbose bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var cfg bootstrap.Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	// stdout belongs to the prompt
	log := logger.Discard()
	if verbose {
		log = logger.New(
			logger.WithEnvironment(cfg.AppEnv, cfg.AppName),
			logger.WithTextFormatter(),
			logger.WithOutput(os.Stderr),
		)
	}

	app, err := bootstrap.New(ctx, cfg, bootstrap.WithLogger(log))
	if err != nil {
		return err
	}
	defer app.Close()

	p := prompt.New(app.Names, os.Stdin, os.Stdout)
	if once {
		return p.Once(ctx, seed, count)
	}

	app.WarmUp(ctx)
	return p.Run(ctx)
}
