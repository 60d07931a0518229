// Package config loads, normalizes, and validates workoutgen configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts and paths relative to the working directory), and reads TOML
// files from ~/.config/workoutgen/config.toml or ./workoutgen.toml. When no
// file exists the defaults reproduce the classic behaviour: six weeks written
// to workouts.json in the current directory.
//
// Always obtain settings through this package so downstream code receives
// absolute paths, canonical formats, and clear validation errors.
package config
