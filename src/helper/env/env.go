package env

import (
	"fmt"
	"os"
	"strconv"
)

// GetString reads a string from the given environment variable,
// falling back to defaultValue when unset.
func GetString(name string, defaultValue ...string) string {
	value := os.Getenv(name)
	if value == "" && len(defaultValue) > 0 {
		value = defaultValue[0]
	}
	return value
}

// MustGetString reads a string from the given environment variable.
// It panics if the variable is not present.
func MustGetString(name string) string {
	value := os.Getenv(name)
	if value == "" {
		panic(fmt.Sprintf("%s can't be empty", name))
	}
	return value
}

// GetInt reads an int from the given environment variable, falling
// back to defaultValue when unset or unparsable.
func GetInt(name string, defaultValue ...int) int {
	value, err := strconv.Atoi(os.Getenv(name))
	if err != nil && len(defaultValue) > 0 {
		value = defaultValue[0]
	}
	return value
}
