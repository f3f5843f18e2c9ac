package loader

import "strings"

func trim(s string) string { return strings.TrimSpace(s) }

func isBlank(s string) bool { return trim(s) == "" }
