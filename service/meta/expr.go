package meta

import (
	"os"
	"regexp"
)

var envExpr = regexp.MustCompile(`\$\{env\.([A-Za-z0-9_]*)}`)

// ExpandEnv replaces every ${env.KEY} occurrence in value with the
// environment variable KEY, or the empty string when unset. Malformed
// expressions are left untouched.
func ExpandEnv(value string) string {
	return envExpr.ReplaceAllStringFunc(value, func(match string) string {
		key := envExpr.FindStringSubmatch(match)[1]
		return os.Getenv(key)
	})
}
