package domain

// GarageSummary aggregates a user's garage: how many vehicles they own and the
// total maintenance spend across all of them.
type GarageSummary struct {
	VehicleCount int     `json:"vehicle_count"`
	TotalCost    float64 `json:"total_cost"`
}
