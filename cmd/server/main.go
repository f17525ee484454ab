// Command server exposes the GDC grammar engine as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/fragment
//	POST /api/tokenize   body: {"text":"..."}
//	GET  /api/word?token=<word>
//	POST /api/validate   body: {"sentence":"..."}
//	POST /api/check      body: {"text":"..."}
//	POST /api/attempt    body: {"fragment":"...","text":"...","bank":[...]}
//	POST /api/tree       body: {"sentence":"..."}
//	GET  /api/wordbank[?n=<count>]
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/cours-de-espanol/gdc"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var levelMapping = map[string]zerolog.Level{
	"debug":   zerolog.DebugLevel,
	"info":    zerolog.InfoLevel,
	"warning": zerolog.WarnLevel,
	"warn":    zerolog.WarnLevel,
	"error":   zerolog.ErrorLevel,
}

// setupLog points the global logger at path, or at stderr when path is
// empty. Call it before Conf.validate, which may log warnings.
func setupLog(path, level string) error {
	if level == "" {
		level = dfltLogLevel
	}
	lev, ok := levelMapping[level]
	if !ok {
		return fmt.Errorf("invalid logging level: %s", level)
	}
	zerolog.SetGlobalLevel(lev)
	if path != "" {
		logf, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to initialize log file %s: %w", path, err)
		}
		log.Logger = log.Output(logf)

	} else {
		log.Logger = log.Output(
			zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: time.RFC3339,
			},
		)
	}
	return nil
}

func newCORS(conf *Conf) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: conf.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"X-Request-Id"},
	})
}

func main() {
	var cmdOpts CmdOptions
	confPath := flag.String("config", "", "path to a JSON configuration file")
	flag.StringVar(&cmdOpts.DataDir, "data", "", "path to the lexicon data directory")
	flag.StringVar(&cmdOpts.ListenAddr, "addr", "", "listen address")
	flag.StringVar(&cmdOpts.LogPath, "log-path", "", "log file (stderr if empty)")
	flag.StringVar(&cmdOpts.LogLevel, "log-level", "", "logging level (debug, info, warn, error)")
	flag.Parse()

	conf, err := loadConfig(*confPath)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	conf.overrideWithCmd(cmdOpts)
	if err := setupLog(conf.LogPath, conf.LogLevel); err != nil {
		log.Fatal().Err(err).Send()
	}
	if err := conf.validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	log.Info().Str("dataDir", conf.DataDir).Msg("loading lexicon")
	engine, err := gdc.New(conf.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load lexicon")
	}

	srv := &http.Server{
		Addr:         conf.ListenAddr,
		Handler:      newRouter(engine, conf),
		ReadTimeout:  conf.ReadTimeout(),
		WriteTimeout: conf.WriteTimeout(),
	}
	log.Info().Str("addr", conf.ListenAddr).Msg("listening")
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
