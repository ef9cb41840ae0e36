package configloader

import (
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// flagKeys maps CLI flag names to config keys. Flags not listed here
// (--config, --rule, --debug, ...) are handled by the CLI itself.
//
//nolint:gochecknoglobals // Read-only lookup table.
var flagKeys = map[string]string{
	"syntax":      "syntax",
	"format":      "format",
	"color":       "color",
	"ext":         "extensions",
	"ignore":      "ignore",
	"output":      "output",
	"no-progress": "no_progress",
}

// flagProvider loads flags that were explicitly set on the command line.
func flagProvider(flags *pflag.FlagSet, k *koanf.Koanf) *posflag.Posflag {
	return posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
		key, ok := flagKeys[f.Name]
		if !ok || !f.Changed {
			return "", nil
		}
		return key, posflag.FlagVal(flags, f)
	})
}
