package services

import (
	"fmt"
	"time"

	"roomgrid/models"
)

// resolveServiceID maps a room, the real lookup date and the slot's day band
// to the upstream service_id for that combination. A missing leaf is a
// configuration bug and fails the whole request; defaulting here would
// silently show another service's schedule.
func resolveServiceID(venue *models.Venue, room models.Room, realDate time.Time, band models.DayBand) (int, error) {
	dt := string(models.DayTypeOf(realDate))

	switch room.Type {
	case models.RoomTypeElite:
		if id := venue.Services.Elite[dt][string(band)]; id != 0 {
			return id, nil
		}
		return 0, &models.MissingServiceMappingError{Path: fmt.Sprintf("elite.%s.%s", dt, band)}

	case models.RoomTypeComfort:
		if id := venue.Services.Comfort[room.Group][dt][string(band)]; id != 0 {
			return id, nil
		}
		return 0, &models.MissingServiceMappingError{Path: fmt.Sprintf("comfort.%s.%s.%s", room.Group, dt, band)}

	default:
		return 0, &models.ConfigError{Detail: fmt.Sprintf("room %d has unknown type %q", room.ID, room.Type)}
	}
}
