// Package main provides the musicmatch CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"

	"github.com/musicmatch/musicmatch/internal/infra/config"
	"github.com/musicmatch/musicmatch/internal/infra/logger"
)

var (
	app        = kingpin.New("musicmatch", "Music Match Headphones - recommends headphones from your music taste")
	configPath = app.Flag("config", "Path to config file").Default("config/musicmatch.yaml").String()
	verbose    = app.Flag("verbose", "Enable verbose (DEBUG) logging").Short('v').Bool()
	logfile    = app.Flag("logfile", "Path to log file (default: stderr)").String()

	// recommend command
	recommendCmd     = app.Command("recommend", "Recommend headphones for five picked songs and a use case")
	recommendTracks  = recommendCmd.Flag("track", "Track ID of a picked song (repeat 5 times)").Short('t').Required().Strings()
	recommendUseCase = recommendCmd.Flag("use-case", "Intended use case (Workout, Casual, Studio, Gaming)").Short('u').Required().String()
	recommendGenre   = recommendCmd.Flag("genre", "Genre the songs were picked from (informational)").String()

	// genres command
	genresCmd = app.Command("genres", "List song genres with counts")

	// songs command
	songsCmd    = app.Command("songs", "Browse the song catalog")
	songsGenre  = songsCmd.Flag("genre", "Only songs of this genre").String()
	songsSearch = songsCmd.Flag("search", "Only songs whose name or artist contains this text").String()
	songsLimit  = songsCmd.Flag("limit", "Maximum number of songs to print").Default("20").Int()

	// check command
	checkCmd = app.Command("check", "Check the catalog data files and exit")
)

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	// Parse command
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	// Initialize logger. Log to stderr so command output stays pipeable.
	loggerConfig := logger.Config{
		Output: "stderr",
		Level:  "info",
	}
	if *verbose {
		loggerConfig.Level = "debug"
	}
	if *logfile != "" {
		loggerConfig.Output = *logfile
	}
	if err := logger.Init(loggerConfig); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	// Load config
	zlog.Debug().Msgf("Loading config from %s", *configPath)
	cfg, err := config.Load(*configPath)
	if err != nil {
		zlog.Fatal().Msgf("Failed to load config: %v", err)
	}

	if err := run(command, cfg); err != nil {
		zlog.Error().Msgf("%v", err)
		os.Exit(1)
	}
}

func run(command string, cfg *config.Config) error {
	switch command {
	case recommendCmd.FullCommand():
		return runRecommend(cfg, *recommendTracks, *recommendGenre, *recommendUseCase)
	case genresCmd.FullCommand():
		return runGenres(cfg)
	case songsCmd.FullCommand():
		return runSongs(cfg, *songsGenre, *songsSearch, *songsLimit)
	case checkCmd.FullCommand():
		return runCheck(cfg)
	}
	return nil
}
