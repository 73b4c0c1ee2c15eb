package config

import (
	"fmt"

	"github.com/spf13/viper"

	"roomgrid/models"
)

// LoadVenue reads the venue reference data (room list and service-resolution
// table) from the given YAML file and validates it. Every leaf the room list
// can ever resolve to must be present; a hole here would otherwise only
// surface on the first request that hits that day-type/band combination.
//
// The snapshot is read-only after load. Callers load fresh per request, so
// concurrent requests never share mutable state.
func LoadVenue(path string) (*models.Venue, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, &models.ConfigError{Detail: fmt.Sprintf("read %s: %v", path, err)}
	}

	var venue models.Venue
	if err := v.Unmarshal(&venue); err != nil {
		return nil, &models.ConfigError{Detail: fmt.Sprintf("unmarshal %s: %v", path, err)}
	}

	if err := ValidateVenue(&venue); err != nil {
		return nil, err
	}
	return &venue, nil
}

var dayTypes = []models.DayType{models.DayTypeWeekday, models.DayTypeWeekend}
var dayBands = []models.DayBand{models.DayBandDay, models.DayBandNight}

// ValidateVenue checks the room list and service table for completeness.
func ValidateVenue(venue *models.Venue) error {
	if len(venue.Rooms) == 0 {
		return &models.ConfigError{Detail: "no rooms configured"}
	}

	eliteCount := 0
	for _, r := range venue.Rooms {
		switch r.Type {
		case models.RoomTypeElite:
			eliteCount++
		case models.RoomTypeComfort:
			if r.Group == "" {
				return &models.ConfigError{Detail: fmt.Sprintf("comfort room %d (%s) has no pricing group", r.ID, r.Title)}
			}
		default:
			return &models.ConfigError{Detail: fmt.Sprintf("room %d (%s) has unknown type %q", r.ID, r.Title, r.Type)}
		}
		if r.ID == 0 {
			return &models.ConfigError{Detail: fmt.Sprintf("room %q has no id", r.Title)}
		}
	}
	if eliteCount > 1 {
		return &models.ConfigError{Detail: fmt.Sprintf("expected at most one elite room, got %d", eliteCount)}
	}

	// Elite leaves: every day-type/band combination must resolve.
	if eliteCount == 1 {
		for _, dt := range dayTypes {
			for _, band := range dayBands {
				if venue.Services.Elite[string(dt)][string(band)] == 0 {
					return &models.MissingServiceMappingError{Path: fmt.Sprintf("elite.%s.%s", dt, band)}
				}
			}
		}
	}

	// Comfort leaves: one full table per pricing group in use.
	for _, r := range venue.ComfortRooms() {
		for _, dt := range dayTypes {
			for _, band := range dayBands {
				if venue.Services.Comfort[r.Group][string(dt)][string(band)] == 0 {
					return &models.MissingServiceMappingError{Path: fmt.Sprintf("comfort.%s.%s.%s", r.Group, dt, band)}
				}
			}
		}
	}

	return nil
}
