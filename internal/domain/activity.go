package domain

type Activity struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	CostCents       int64  `json:"cost_cents"`
	Capacity        int    `json:"capacity"`
	DestinationName string `json:"destination_name"`
}
