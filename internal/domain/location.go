package domain

// LocationAll aggregates every practice location in report queries.
const LocationAll = "all"

type Location struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Active  bool   `json:"active"`
}
