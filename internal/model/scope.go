package model

// Scope identifies the caller of a request. It is produced by the identity
// provider (JWT middleware, Telegram user, CLI flag) and passed explicitly to
// every use case.
type Scope struct {
	UserID   string
	Username string
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
