package utils

import "strings"

func StringInSlice(a string, list []string) bool {
	for _, b := range list {
		if b == a {
			return true
		}
	}
	return false
}

// StringToNilable returns nil for empty strings so optional text
// columns are persisted as NULL rather than ''
func StringToNilable(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
