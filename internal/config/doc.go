// Package config loads application settings through viper.
//
// Values come from built-in defaults, an optional config.yaml and
// FITCIRCLE_-prefixed environment variables, in increasing precedence.
// The result is checked with validator/v10 struct tags before it is returned.
package config
