package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a backend base URL (e.g. "https://api.realworld.io")
//	-request-timeout outbound request timeout (e.g., "15s", "1m")
//	-page-size number of articles per feed page
//	-web web front-end origin for shareable article links
//	-state-dir directory holding persisted client state
//	-log log file path
//	-c/-config json file path with configs
func ParseFlags() *Config {
	var baseURL string
	var requestTimeout time.Duration
	var pageSize int
	var webBaseURL string
	var stateDir string
	var logPath string
	var jsonConfigPath string

	flag.StringVar(&baseURL, "a", "", "Backend base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.IntVar(&pageSize, "page-size", 0, "Articles per feed page")
	flag.StringVar(&webBaseURL, "web", "", "Web front-end origin for article links")
	flag.StringVar(&stateDir, "state-dir", "", "Client state directory")
	flag.StringVar(&logPath, "log", "", "Log file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &Config{
		API: API{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		App: App{
			PageSize:   pageSize,
			WebBaseURL: webBaseURL,
			LogPath:    logPath,
		},
		Storage: Storage{
			StateDir: stateDir,
		},
		JSONFilePath: jsonConfigPath,
	}
}
