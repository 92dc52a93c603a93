package strings

import (
	"strings"

	"github.com/iancoleman/strcase"
)

func ToSnakeCase(s string) string {
	return strcase.ToSnake(s)
}

// ToMetricName builds a prometheus-compatible name from a dotted or mixed-case key.
func ToMetricName(s string) string {
	return strcase.ToSnake(strings.NewReplacer(".", "_", "-", "_", "/", "_").Replace(s))
}
