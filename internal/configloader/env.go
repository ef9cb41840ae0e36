package configloader

import (
	"strings"

	"github.com/knadh/koanf/providers/env"
)

// EnvPrefix is the prefix for all gocsslint environment variables.
const EnvPrefix = "GOCSSLINT_"

// envKeys maps environment variable suffixes to config keys.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envKeys = map[string]string{
	"SYNTAX":      "syntax",
	"FORMAT":      "format",
	"COLOR":       "color",
	"EXTENSIONS":  "extensions",
	"IGNORE":      "ignore",
	"OUTPUT":      "output",
	"NO_PROGRESS": "no_progress",
}

// envProvider reads GOCSSLINT_* variables. List values are comma separated.
// Unknown variables are skipped.
func envProvider() *env.Env {
	return env.Provider(EnvPrefix, ".", envKey)
}

func envKey(name string) string {
	return envKeys[strings.TrimPrefix(name, EnvPrefix)]
}
