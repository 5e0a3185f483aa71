package model

// Environment represents the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the authenticated user context through a request.
type Scope struct {
	UserID   string
	Username string
}
