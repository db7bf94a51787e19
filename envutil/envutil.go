// Package envutil reads typed configuration values from environment variables.
//
// Each reader function returns a [Reader], which records whether the variable
// was set and whether it parsed, and lets the caller decide how to handle a
// missing or malformed value:
//
//	jsonLogs := envutil.Bool("LOG_JSON", envutil.Default(false)).ValueOrElse(false)
//	level, err := envutil.SlogLevel("LOG_LEVEL").Value()
package envutil

import (
	"log/slog"
	"os"
)

// get returns a Reader for the given environment variable key.
func get(key string) Reader[string] {
	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

// NewReader returns a Reader for the given raw data, for callers which
// source their configuration somewhere other than the process environment.
func NewReader[T any](key string, present bool, err error, value T) Reader[T] {
	return Reader[T]{
		key:     key,
		present: present,
		value:   value,
		err:     err,
	}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// String returns a Reader for the given environment variable key.
func String(key string, opts ...Option[string]) Reader[string] {
	return apply(get(key), opts)
}

// Bool returns a Reader which parses the variable with strconv.ParseBool.
func Bool(key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(Map(get(key), trimString), parseBool), opts)
}

// Int returns a Reader which parses the variable as a base-10 int.
func Int(key string, opts ...Option[int]) Reader[int] {
	return apply(Map(Map(get(key), trimString), parseInt), opts)
}

// SlogLevel returns a Reader which parses debug, info, warn or error
// (case-insensitive) into a slog.Level.
func SlogLevel(key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(Map(Map(get(key), trimString), toLower), parseSlogLevel), opts)
}
