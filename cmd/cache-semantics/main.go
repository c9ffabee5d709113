package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	semantics "github.com/always-cache/cache-semantics"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	// CLI flags
	portFlag                int
	dirFlag                 string
	configFilenameFlag      string
	defaultCacheControlFlag string
	verbosityTraceFlag      bool
)

func init() {
	flag.IntVar(&portFlag, "port", 8080, "Port to listen on")
	flag.StringVar(&dirFlag, "dir", ".", "Directory to serve")
	flag.StringVar(&configFilenameFlag, "config", "", "Path to config file")
	flag.StringVar(&defaultCacheControlFlag, "default", "", "Default Cache-Control header (overrides config)")
	flag.BoolVar(&verbosityTraceFlag, "vv", false, "Verbosity: trace logging")
}

func main() {
	flag.Parse()

	// set log level
	logLevel := zerolog.DebugLevel
	if verbosityTraceFlag {
		logLevel = zerolog.TraceLevel
	}
	log.Logger = log.Level(logLevel).Output(zerolog.ConsoleWriter{Out: os.Stdout})

	var config semantics.Config
	if configFilenameFlag != "" {
		var err error
		config, err = semantics.LoadConfig(configFilenameFlag)
		if err != nil {
			log.Fatal().Err(err).Msg("Could not read config")
		}
	}
	if defaultCacheControlFlag != "" {
		config.Defaults.CacheControl = defaultCacheControlFlag
	}

	handler := semantics.New(config)

	router := chi.NewRouter()
	router.Use(handler.Middleware)
	router.Handle("/*", http.FileServer(http.Dir(dirFlag)))

	addr := fmt.Sprintf(":%d", portFlag)
	log.Info().Msgf("Serving %s on %s", dirFlag, addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
