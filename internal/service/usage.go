package service

// AccrueUsage adds the milliseconds of one occupancy window to a user's
// accumulated time of use. Callers pass a non-negative elapsed.
func AccrueUsage(prior, elapsed int64) int64 {
	return prior + elapsed
}
