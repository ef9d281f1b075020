package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingCodeIsValidNoExpiry(t *testing.T) {
	bc := BookingCode{Code: "abc1234"}
	assert.True(t, bc.IsValid())
}

func TestBookingCodeIsValidBoundary(t *testing.T) {
	future := time.Now().Add(time.Second)
	bc := BookingCode{Code: "abc1234", ExpiresAt: &future}
	assert.True(t, bc.IsValid(), "one second before expiry should be valid")

	past := time.Now().Add(-time.Second)
	bc.ExpiresAt = &past
	assert.False(t, bc.IsValid(), "one second after expiry should be invalid")
}

func TestBookingCodePublicURL(t *testing.T) {
	bc := BookingCode{Code: "AbC123x"}
	assert.Equal(t, "/b/AbC123x/", bc.PublicURL())
}
