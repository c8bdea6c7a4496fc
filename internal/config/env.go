package config

import (
	"strconv"
	"strings"
)

// EnvPrefix marks environment variables that override user defaults.
// GENELOADER_LOVD_PATH overrides the lovd_path default.
const EnvPrefix = "GENELOADER_"

// OverlayEnv returns a copy of user with every GENELOADER_* variable found in
// environ applied on top. environ has the form returned by os.Environ.
// Values written in canonical integer form become integer values.
func OverlayEnv(user map[string]Value, environ []string) map[string]Value {
	out := make(map[string]Value, len(user))
	for k, v := range user {
		out[k] = v
	}

	for _, e := range environ {
		pair := strings.SplitN(e, "=", 2)
		if len(pair) != 2 || !strings.HasPrefix(pair[0], EnvPrefix) {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(pair[0], EnvPrefix))
		if key == "" {
			continue
		}
		// Only canonical integers convert, so "0755" or "+12" keep their text.
		if n, err := strconv.Atoi(pair[1]); err == nil && strconv.Itoa(n) == pair[1] {
			out[key] = IntValue(n)
			continue
		}
		out[key] = StringValue(pair[1])
	}
	return out
}
