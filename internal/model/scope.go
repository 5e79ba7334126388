package model

// Scope carries the per-request caller identity and preferences through
// the usecase layer.
type Scope struct {
	UserID   string
	Timezone string // IANA name or ±HH:MM offset; empty falls back to the service default
}

// Environment names the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)
