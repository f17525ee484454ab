package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	dfltListenAddr       = ":8080"
	dfltDataDir          = "data"
	dfltReadTimeoutSecs  = 10
	dfltWriteTimeoutSecs = 30
	dfltLogLevel         = "info"
	dfltWordBankSize     = 12
)

// Conf is the server configuration, read from a JSON file.
type Conf struct {
	ListenAddr       string   `json:"listenAddr"`
	DataDir          string   `json:"dataDir"`
	ReadTimeoutSecs  int      `json:"readTimeoutSecs"`
	WriteTimeoutSecs int      `json:"writeTimeoutSecs"`
	CORSOrigins      []string `json:"corsOrigins"`
	LogPath          string   `json:"logPath"`
	LogLevel         string   `json:"logLevel"`
	WordBankSize     int      `json:"wordBankSize"`
}

// CmdOptions holds command line values; non-zero values override the file.
type CmdOptions struct {
	ListenAddr string
	DataDir    string
	LogPath    string
	LogLevel   string
}

func (c *Conf) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSecs) * time.Second
}

func (c *Conf) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSecs) * time.Second
}

// loadConfig reads path. An empty path yields a configuration made of
// defaults only.
func loadConfig(path string) (*Conf, error) {
	var conf Conf
	if path == "" {
		return &conf, nil
	}
	rawData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w", err)
	}
	if err := json.Unmarshal(rawData, &conf); err != nil {
		return nil, fmt.Errorf("cannot parse config %s: %w", path, err)
	}
	return &conf, nil
}

func (c *Conf) overrideWithCmd(opts CmdOptions) {
	if opts.ListenAddr != "" {
		c.ListenAddr = opts.ListenAddr
	}
	if opts.DataDir != "" {
		c.DataDir = opts.DataDir
	}
	if opts.LogPath != "" {
		c.LogPath = opts.LogPath
	}
	if opts.LogLevel != "" {
		c.LogLevel = opts.LogLevel
	}
}

// validate fills in defaults for unset items and rejects invalid ones.
func (c *Conf) validate() error {
	if c.ListenAddr == "" {
		c.ListenAddr = dfltListenAddr
	}
	if c.DataDir == "" {
		c.DataDir = dfltDataDir
	}
	if c.ReadTimeoutSecs == 0 {
		c.ReadTimeoutSecs = dfltReadTimeoutSecs
	}
	if c.WriteTimeoutSecs == 0 {
		c.WriteTimeoutSecs = dfltWriteTimeoutSecs
	}
	if c.LogLevel == "" {
		c.LogLevel = dfltLogLevel
	}
	if c.WordBankSize == 0 {
		c.WordBankSize = dfltWordBankSize
	}
	if len(c.CORSOrigins) == 0 {
		log.Warn().Msg("corsOrigins not specified, allowing any origin")
		c.CORSOrigins = []string{"*"}
	}
	if _, ok := levelMapping[c.LogLevel]; !ok {
		return fmt.Errorf("invalid logging level: %s", c.LogLevel)
	}
	if c.ReadTimeoutSecs < 0 || c.WriteTimeoutSecs < 0 {
		return fmt.Errorf("timeouts must not be negative")
	}
	if c.WordBankSize < 0 {
		return fmt.Errorf("wordBankSize must not be negative")
	}
	return nil
}
