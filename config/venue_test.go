package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"roomgrid/models"
)

const venueYAML = `
club_id: 7
rooms:
  - id: 101
    title: "Loft"
    type: elite
  - id: 201
    title: "Comfort 1"
    type: comfort
    group: standard
services:
  elite:
    weekday: {day: 3101, night: 3102}
    weekend: {day: 3103, night: 3104}
  comfort:
    standard:
      weekday: {day: 3201, night: 3202}
      weekend: {day: 3203, night: 3204}
`

func writeVenueFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "venue.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write venue file: %v", err)
	}
	return path
}

func TestLoadVenue(t *testing.T) {
	venue, err := LoadVenue(writeVenueFile(t, venueYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if venue.ClubID != 7 || len(venue.Rooms) != 2 {
		t.Fatalf("unexpected venue: %+v", venue)
	}
	if _, ok := venue.EliteRoom(); !ok {
		t.Fatal("expected an elite room")
	}
	if got := venue.Services.Comfort["standard"]["weekend"]["night"]; got != 3204 {
		t.Fatalf("expected comfort.standard.weekend.night = 3204, got %d", got)
	}
}

func TestLoadVenue_MissingFile(t *testing.T) {
	_, err := LoadVenue(filepath.Join(t.TempDir(), "absent.yaml"))
	var configErr *models.ConfigError
	if !errors.As(err, &configErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestValidateVenue_MissingLeafFailsAtLoad(t *testing.T) {
	venue, err := LoadVenue(writeVenueFile(t, venueYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	delete(venue.Services.Comfort["standard"]["weekend"], "night")

	verr := ValidateVenue(venue)
	var mappingErr *models.MissingServiceMappingError
	if !errors.As(verr, &mappingErr) {
		t.Fatalf("expected MissingServiceMappingError, got %v", verr)
	}
	if mappingErr.Path != "comfort.standard.weekend.night" {
		t.Fatalf("expected the missing path named, got %q", mappingErr.Path)
	}
}

func TestValidateVenue_RejectsBadRooms(t *testing.T) {
	cases := []struct {
		name string
		edit func(v *models.Venue)
	}{
		{"no rooms", func(v *models.Venue) { v.Rooms = nil }},
		{"unknown type", func(v *models.Venue) { v.Rooms[0].Type = "penthouse" }},
		{"comfort without group", func(v *models.Venue) { v.Rooms[1].Group = "" }},
		{"room without id", func(v *models.Venue) { v.Rooms[1].ID = 0 }},
	}
	for _, tc := range cases {
		venue, err := LoadVenue(writeVenueFile(t, venueYAML))
		if err != nil {
			t.Fatalf("%s: unexpected load error: %v", tc.name, err)
		}
		tc.edit(venue)
		verr := ValidateVenue(venue)
		var configErr *models.ConfigError
		if !errors.As(verr, &configErr) {
			t.Fatalf("%s: expected ConfigError, got %v", tc.name, verr)
		}
	}
}
