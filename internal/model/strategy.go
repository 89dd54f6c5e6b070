package model

// Targeting strategy constants
const (
	TargetingStrategyRandom = "random"
)

// TargetingStrategyDisplayName returns a human-readable label for a strategy
func TargetingStrategyDisplayName(strategy string) string {
	switch strategy {
	case TargetingStrategyRandom:
		return "Uniform random"
	default:
		return strategy
	}
}

// ValidTargetingStrategies returns all valid targeting strategy names
func ValidTargetingStrategies() []string {
	return []string{TargetingStrategyRandom}
}
