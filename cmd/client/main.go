package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/ecw-api/internal/adapter"
	"github.com/MKhiriev/ecw-api/internal/config"
	"github.com/MKhiriev/ecw-api/internal/logger"
	"github.com/MKhiriev/ecw-api/models"
	"github.com/alecthomas/kingpin/v2"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	opts := new(options)
	cli := newCLI(opts, build)
	command := kingpin.MustParse(cli.Parse(os.Args[1:]))

	log := logger.NewLogger("ecw-client")
	level := "info"
	if opts.verbose {
		level = "debug"
	}
	if err := logger.SetGlobalLevel(level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	api, err := adapter.NewHTTPClient(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating API client")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Adapter.RequestTimeout)
	defer cancel()

	if err = execute(ctx, command, *opts, api, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", cli.Name, err)
		cancel()
		os.Exit(1)
	}
}
