package models

// Room category identifiers. The elite category has exactly one physical
// room; comfort is a pool of interchangeable rooms priced by group.
const (
	RoomTypeElite   = "elite"
	RoomTypeComfort = "comfort"
)

// Room is static reference data describing one physical room.
type Room struct {
	ID    int    `mapstructure:"id" json:"id"`
	Title string `mapstructure:"title" json:"title"`
	Type  string `mapstructure:"type" json:"type"`            // "elite" or "comfort"
	Group string `mapstructure:"group" json:"group,omitempty"` // pricing group, comfort only
}

// ServiceTable maps a room's category (and group for comfort), day type and
// day band to the upstream service_id used to query occupancy.
//
// Elite:   [dayType][band] -> service_id
// Comfort: [group][dayType][band] -> service_id
type ServiceTable struct {
	Elite   map[string]map[string]int            `mapstructure:"elite"`
	Comfort map[string]map[string]map[string]int `mapstructure:"comfort"`
}

// Venue is the full reference-data snapshot a request resolves against.
// It is read-only once loaded; concurrent requests may share a snapshot.
type Venue struct {
	ClubID   int          `mapstructure:"club_id"`
	Rooms    []Room       `mapstructure:"rooms"`
	Services ServiceTable `mapstructure:"services"`
}

// EliteRoom returns the single elite room.
func (v *Venue) EliteRoom() (Room, bool) {
	for _, r := range v.Rooms {
		if r.Type == RoomTypeElite {
			return r, true
		}
	}
	return Room{}, false
}

// ComfortRooms returns the comfort pool in configuration order.
func (v *Venue) ComfortRooms() []Room {
	var out []Room
	for _, r := range v.Rooms {
		if r.Type == RoomTypeComfort {
			out = append(out, r)
		}
	}
	return out
}
