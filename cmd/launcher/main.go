package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-launcher/internal/config"
	"github.com/MKhiriev/go-launcher/internal/launcher"
	"github.com/MKhiriev/go-launcher/internal/logger"
	"github.com/MKhiriev/go-launcher/internal/settings"
	"github.com/MKhiriev/go-launcher/internal/tui"
	"github.com/MKhiriev/go-launcher/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetLauncherConfig(os.Args[1:])
	if config.IsHelpRequested(err) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewLauncherLogger("launcher", cfg.Log)

	svc := settings.New(log.GetChildLogger("settings"))

	var ui launcher.Browser
	if cfg.Maintenance.View {
		buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
		ui, err = tui.New(svc, buildInfo, log.GetChildLogger("tui"))
		if err != nil {
			log.Fatal().Err(err).Msg("error creating ui")
		}
	}

	app, err := launcher.NewApp(svc, ui, cfg.Maintenance, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init launcher app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("launcher run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
