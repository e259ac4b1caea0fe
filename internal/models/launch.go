package models

// AllSites is the site filter value that selects every launch site.
const AllSites = "ALL"

// Outcome labels used by the proportion chart for a single site.
const (
	OutcomeSuccess = "Success"
	OutcomeFailure = "Failure"
)

// LaunchRecord is one row of the launch dataset.
type LaunchRecord struct {
	FlightNumber    int     `json:"flight_number,omitempty"`
	Site            string  `json:"site"`
	PayloadMassKg   float64 `json:"payload_mass_kg"`
	Success         bool    `json:"success"`
	BoosterVersion  string  `json:"booster_version,omitempty"`
	BoosterCategory string  `json:"booster_category"`
}

// Class returns the launch outcome as the 0/1 value stored in the dataset.
func (r LaunchRecord) Class() int {
	if r.Success {
		return 1
	}
	return 0
}
