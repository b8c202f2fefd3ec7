package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/travelbooking/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.SignupEvent) error {
	fmt.Printf("notify passenger %s: %s for activity %q in package %q (%d cents, %d spaces left)\n",
		event.PassengerName, event.Type, event.ActivityName, event.PackageName, event.AmountCents, event.SpacesLeft)
	return nil
}
