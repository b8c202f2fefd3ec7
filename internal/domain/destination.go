package domain

type Destination struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	TravelPackageID string     `json:"travel_package_id"`
	Activities      []Activity `json:"activities"`
}

// AddActivity appends the activity to the destination. Activity names are
// unique within a destination.
func (d *Destination) AddActivity(activity Activity) error {
	for _, a := range d.Activities {
		if a.Name == activity.Name {
			return &DuplicateError{Kind: "Activity", Key: activity.Name}
		}
	}
	d.Activities = append(d.Activities, activity)
	return nil
}
