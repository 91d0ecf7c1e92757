package main

import (
	"fmt"

	"github.com/MKhiriev/ecw-api/internal/app"
	"github.com/MKhiriev/ecw-api/internal/config"
	"github.com/MKhiriev/ecw-api/internal/logger"
	"github.com/MKhiriev/ecw-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(build)

	log := logger.NewLogger("ecw-api")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetGlobalLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	application, err := app.New(cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating application")
	}

	if err = application.Run(); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}
