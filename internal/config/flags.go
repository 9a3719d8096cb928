package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagFormat  = flag.String("format", "", "Source format (ply, stl, vrml); default from extension")
	flagCharset = flag.String("charset", "", "Charset of the source file")
	flagSTLRaw  = flag.Bool("stl-raw", false, "Group STL triangles into raw_triangle blocks")
	flagLogFile = flag.String("log-file", "", "Write logs to this file as well")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the positional arguments left after flag parsing.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagFormat != "" {
		cfg.Convert.Format = *flagFormat
	}
	if *flagCharset != "" {
		cfg.Convert.Charset = *flagCharset
	}
	if *flagSTLRaw {
		cfg.Convert.STLRawBlocks = true
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
