package alerts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Supremetechy/go-ham/internal/booking"
)

func TestInZone(t *testing.T) {
	tests := []struct {
		name    string
		address string
		zone    booking.Zone
		want    bool
	}{
		{"keyword match", "123 North Highland Ave", booking.ZoneNorth, true},
		{"case insensitive", "456 SUMMIT DRIVE", booking.ZoneNorth, true},
		{"wrong zone", "123 North Highland Ave", booking.ZoneSouth, false},
		{"central covers everything", "999 Nowhere Lane", booking.ZoneCentral, true},
		{"zone without keywords", "123 East Side St", booking.ZoneEast, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InZone(tt.address, tt.zone))
		})
	}
}

func TestZoneForAddress(t *testing.T) {
	assert.Equal(t, booking.ZoneNorth, ZoneForAddress("78 Uptown Blvd"))
	assert.Equal(t, booking.ZoneSouth, ZoneForAddress("12 Riverside Dr"))
	assert.Equal(t, booking.ZoneCentral, ZoneForAddress("5 Main Street"))
	assert.Equal(t, booking.ZoneCentral, ZoneForAddress("unmatchable address"))
}
