package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Pipeline configuration
	Specs      string `short:"s" long:"specs" env:"SPECS" description:"Path to the rule document (JSON or YAML)" required:"true"`
	Output     string `short:"o" long:"output" description:"Write the filtered playlist to a file instead of stdout"`
	Count      bool   `long:"count" description:"Print the number of entries in the filtered playlist"`
	ListValues string `long:"list-values" value-name:"ATTR" description:"Print the distinct values of an attribute across the filtered playlist"`
	FromFeed   bool   `long:"from-feed" env:"FROM_FEED" description:"Treat the source as an RSS/Atom feed instead of a playlist"`

	// Server configuration
	Serve    bool   `long:"serve" env:"SERVE" description:"Serve the filtered playlist over HTTP instead of running once"`
	Port     string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	DBPath   string `long:"db-path" env:"DB_PATH" description:"SQLite database path for the source cache (serve mode, optional)"`
	CacheTTL int    `long:"cache-ttl" env:"CACHE_TTL" default:"300" description:"Seconds a cached source stays fresh in serve mode"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"M3U Comb/1.0" description:"User agent string for HTTP requests"`
	Timeout   int    `long:"timeout" env:"TIMEOUT" default:"30" description:"HTTP fetch timeout in seconds"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`

	Args struct {
		Source string `positional-arg-name:"SOURCE" description:"Playlist file path or URL"`
	} `positional-args:"yes" required:"yes"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	mode, err := resolveMode(&raw)
	if err != nil {
		return nil, err
	}

	cfg := &Cfg{
		Source:        raw.Args.Source,
		Specs:         raw.Specs,
		Mode:          mode,
		Output:        raw.Output,
		ListAttribute: raw.ListValues,
		FromFeed:      raw.FromFeed,
		Port:          raw.Port,
		DBPath:        raw.DBPath,
		CacheTTL:      raw.CacheTTL,
		UserAgent:     raw.UserAgent,
		Timeout:       raw.Timeout,
		Debug:         raw.Debug,
		Version:       GetVersion(),
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

// resolveMode picks the single active output mode from the mode flags.
func resolveMode(raw *rawCfg) (Mode, error) {
	mode := ModeRender
	selected := 0

	if raw.Count {
		mode = ModeCount
		selected++
	}
	if raw.ListValues != "" {
		mode = ModeListValues
		selected++
	}
	if raw.Serve {
		mode = ModeServe
		selected++
	}

	if selected > 1 {
		return "", fmt.Errorf("--count, --list-values and --serve are mutually exclusive")
	}
	if raw.Output != "" && mode != ModeRender {
		return "", fmt.Errorf("--output can only be combined with playlist output")
	}

	return mode, nil
}
