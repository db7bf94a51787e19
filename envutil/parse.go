package envutil

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
)

var (
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrInvalidChoice   = errors.New("invalid choice")
)

func trimString(s string) (string, error) {
	return strings.TrimSpace(s), nil
}

func toLower(s string) (string, error) {
	return strings.ToLower(s), nil
}

func parseBool(value string) (bool, error) {
	return strconv.ParseBool(value)
}

func parseInt(value string) (int, error) {
	return strconv.Atoi(value)
}

func parseSlogLevel(value string) (slog.Level, error) {
	switch value {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, value)
	}
}

func oneOf[A comparable](choices ...A) func(A) (A, error) {
	return func(value A) (A, error) {
		if slices.Contains(choices, value) {
			return value, nil
		}

		return value, fmt.Errorf("%w: %v (expected one of %v)", ErrInvalidChoice, value, choices)
	}
}
