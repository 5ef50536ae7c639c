package config

// Defaults
const (
	DefaultItemsPerCategory = 200
	DefaultOutputPath       = "assets/data/items.json"
	DefaultSeed             = 424242
	DefaultTexturesRoot     = "res://assets/textures"
	DefaultPreviewPort      = 8080
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
)

// Environment variable names
const (
	EnvCount        = "ITEMGEN_COUNT"
	EnvOutputPath   = "ITEMGEN_OUT"
	EnvSeed         = "ITEMGEN_SEED"
	EnvTexturesRoot = "ITEMGEN_TEXTURES_ROOT"
	EnvPreviewPort  = "ITEMGEN_PREVIEW_PORT"
	EnvLogLevel     = "LOG_LEVEL"
	EnvLogFormat    = "LOG_FORMAT"
)
