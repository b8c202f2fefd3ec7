package kafka

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSignupEvent(t *testing.T) {
	payload := []byte(`{
		"type": "activity_signup",
		"package_id": "t1",
		"package_name": "Coastal Escape",
		"passenger_id": "p1",
		"passenger_name": "Ann Ivanova",
		"activity_id": "a1",
		"activity_name": "Snorkeling",
		"amount_cents": 9000,
		"spaces_left": 2,
		"occurred_at": "2026-08-30T12:00:00Z"
	}`)

	event, err := decodeSignupEvent(payload)

	require.NoError(t, err)
	assert.Equal(t, "activity_signup", event.Type)
	assert.Equal(t, "t1", event.PackageID)
	assert.Equal(t, "Coastal Escape", event.PackageName)
	assert.Equal(t, "p1", event.PassengerID)
	assert.Equal(t, "a1", event.ActivityID)
	assert.Equal(t, "Snorkeling", event.ActivityName)
	assert.Equal(t, int64(9000), event.AmountCents)
	assert.Equal(t, 2, event.SpacesLeft)
	assert.Equal(t, time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC), event.OccurredAt)
}

func TestDecodeSignupEvent_Malformed(t *testing.T) {
	_, err := decodeSignupEvent([]byte("not json"))

	assert.Error(t, err)
}
