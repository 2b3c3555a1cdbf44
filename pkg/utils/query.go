package utils

import "strconv"

// ParseInt converts a query value to a positive int, falling back to defaultValue.
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil || result < 1 {
		return defaultValue
	}

	return result
}
