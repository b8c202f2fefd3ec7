package domain

type PassengerType string

const (
	PassengerTypeStandard PassengerType = "STANDARD"
	PassengerTypeGold     PassengerType = "GOLD"
	PassengerTypePremium  PassengerType = "PREMIUM"
)

func ParsePassengerType(s string) (PassengerType, error) {
	switch t := PassengerType(s); t {
	case PassengerTypeStandard, PassengerTypeGold, PassengerTypePremium:
		return t, nil
	default:
		return "", ErrInvalidPassengerType
	}
}

type Passenger struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	PassengerNumber    string        `json:"passenger_number"`
	Type               PassengerType `json:"type"`
	BalanceCents       int64         `json:"balance_cents"`
	SignedUpActivities []Activity    `json:"signed_up_activities"`
}

// PriceFor returns the amount the passenger pays for the activity. Gold
// passengers get a 10% discount, premium passengers pay nothing.
func (p *Passenger) PriceFor(activity Activity) (int64, error) {
	switch p.Type {
	case PassengerTypeStandard:
		return activity.CostCents, nil
	case PassengerTypeGold:
		return activity.CostCents - activity.CostCents/10, nil
	case PassengerTypePremium:
		return 0, nil
	default:
		return 0, ErrInvalidPassengerType
	}
}

// SignUpFor charges the passenger for the activity and records the sign-up.
// The balance check and both mutations happen together: on error nothing
// changes.
func (p *Passenger) SignUpFor(activity Activity) error {
	price, err := p.PriceFor(activity)
	if err != nil {
		return err
	}
	if p.BalanceCents < price {
		return ErrInsufficientBalance
	}
	p.BalanceCents -= price
	p.SignedUpActivities = append(p.SignedUpActivities, activity)
	return nil
}
