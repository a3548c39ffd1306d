package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Log     LogConfig     `mapstructure:"log"     validate:"required"`
	Auth    AuthConfig    `mapstructure:"auth"    validate:"required"`
	Display DisplayConfig `mapstructure:"display" validate:"required"`
	Plan    PlanConfig    `mapstructure:"plan"    validate:"required"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// AuthConfig contains settings for the account credential store.
type AuthConfig struct {
	// BcryptCost is passed to bcrypt when hashing account passwords.
	BcryptCost int `mapstructure:"bcrypt_cost" validate:"required,gte=4,lte=31"`
}

// DisplayConfig controls how timestamps are rendered in post details
// and reminder listings.
type DisplayConfig struct {
	TimeLayout string `mapstructure:"time_layout" validate:"required"`
}

// PlanConfig contains settings for personalized plan generation.
type PlanConfig struct {
	// Prompt is the question shown when asking a user for their goal.
	Prompt string `mapstructure:"prompt" validate:"required"`
}
