package cli

import (
	"strings"

	"github.com/Fepozopo/pictool/pkg/plugins"
)

// ExtractOptions splits command line tokens into coerced --key=value
// options and the remaining positional tokens. Option tokens may appear
// anywhere; a token is only treated as an option when it starts with "--"
// and contains "=". The value is coerced immediately (see
// plugins.ParseValue), so the dispatcher only ever sees tagged values.
func ExtractOptions(args []string) (map[string]plugins.Value, []string) {
	options := make(map[string]plugins.Value)
	positional := make([]string, 0, len(args))
	for _, item := range args {
		if strings.HasPrefix(item, "--") {
			if idx := strings.Index(item, "="); idx >= 0 {
				options[item[2:idx]] = plugins.ParseValue(item[idx+1:])
				continue
			}
		}
		positional = append(positional, item)
	}
	return options, positional
}
