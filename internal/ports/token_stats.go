package ports

// TokenEstimator estimates how many model tokens a text would take
type TokenEstimator interface {
	Estimate(text string) int
}
