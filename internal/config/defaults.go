package config

const (
	defaultLibraryDir     = "~/.local/share/op3d/library"
	defaultOutputDir      = "~/.local/share/op3d/out"
	defaultCacheDir       = "~/.cache/op3d"
	defaultLogDir         = "~/.local/share/op3d/logs"
	defaultAPIBind        = "127.0.0.1:7606"
	defaultConvertFormat  = "orca"
	defaultMaintainerType = "individual"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LibraryDir: defaultLibraryDir,
			OutputDir:  defaultOutputDir,
			CacheDir:   defaultCacheDir,
			LogDir:     defaultLogDir,
			APIBind:    defaultAPIBind,
		},
		Convert: Convert{
			DefaultFormat: defaultConvertFormat,
		},
		Import: Import{
			MaintainerType: defaultMaintainerType,
		},
		API: API{
			CORSOrigins: []string{"*"},
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
