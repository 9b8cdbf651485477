package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	pkg "github.com/unilink-app/timeline/pkg/internal"
	"github.com/unilink-app/timeline/pkg/internal/cache"
	"github.com/unilink-app/timeline/pkg/internal/database"
	"github.com/unilink-app/timeline/pkg/internal/http"
	"github.com/unilink-app/timeline/pkg/internal/identity"
	"github.com/unilink-app/timeline/pkg/internal/services"
	"github.com/unilink-app/timeline/pkg/internal/storage"

	"github.com/fatih/color"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

func main() {
	// Booting screen
	fmt.Println(color.CyanString(" _   _       _ _     _       _\n| | | |_ __ (_) |   (_)_ __ | | __\n| | | | '_ \\| | |   | | '_ \\| |/ /\n| |_| | | | | | |___| | | | |   <\n \\___/|_| |_|_|_____|_|_| |_|_|\\_\\"))
	fmt.Printf("%s v%s\n", color.New(color.FgHiCyan).Add(color.Bold).Sprintf("UniLink.Timeline"), pkg.AppVersion)
	fmt.Printf("The campus social timeline service in UniLink\n")
	color.HiBlack("=====================================================\n")

	// Configure settings
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("settings")
	viper.SetConfigType("toml")

	// Load settings
	if err := viper.ReadInConfig(); err != nil {
		log.Panic().Err(err).Msg("An error occurred when loading settings.")
	}

	// Load identity provider public key
	if err := http.LoadIdentityPublicKey(); err != nil {
		log.Error().Err(err).Msg("An error occurred when reading identity provider public key. Authentication related features will be disabled.")
	} else {
		log.Info().Msg("Identity provider public key loaded.")
	}

	// Prepare local cache
	if err := cache.NewStore(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when setting up local cache store.")
	}

	// Connect the identity provider
	identity.NewClient()

	// Connect object storage
	if err := storage.NewUploader(); err != nil {
		log.Warn().Err(err).Msg("An error occurred when connecting object storage. Attachment uploads will be unavailable.")
	}

	// Connect to database
	if err := database.NewGorm(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when connect to database.")
	} else if err := database.RunMigration(database.C); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when running database auto migration.")
	}

	// Configure timed tasks
	quartz := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(&log.Logger)))
	quartz.AddFunc("@every 60m", services.DoAutoDatabaseCleanup)
	quartz.Start()

	// Server
	go http.NewServer().Listen()

	// Messages
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	quartz.Stop()
}
