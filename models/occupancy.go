package models

// OccupancyRecord is one normalized 1-hour occupancy fact from the upstream
// scheduling system. RentalID is empty when the hour is free; upstream sends
// null, "" and 0 interchangeably for that case and the client normalizes all
// three to "".
type OccupancyRecord struct {
	Date     string   // YYYY-MM-DD
	Time     string   // HH:MM
	RentalID string   // empty = free
	Price    *float64 // nil when upstream omits or sends a non-numeric price
}

// Free reports whether the hour carries no rental.
func (r OccupancyRecord) Free() bool {
	return r.RentalID == ""
}

// OccupancyIndex is a per-(service_id, room_id) lookup of records keyed by
// date and time. Built once after a fetch, read-only afterwards.
type OccupancyIndex map[string]OccupancyRecord

// IndexKey builds the lookup key for a date and HH:MM time.
func IndexKey(date, hhmm string) string {
	return date + " " + hhmm
}

// BuildIndex keys a fetch response by (date, time). Later records for the
// same key win, matching upstream's own de-duplication behavior.
func BuildIndex(records []OccupancyRecord) OccupancyIndex {
	idx := make(OccupancyIndex, len(records))
	for _, rec := range records {
		idx[IndexKey(rec.Date, rec.Time)] = rec
	}
	return idx
}

// Lookup returns the record for a date and time, if any.
func (idx OccupancyIndex) Lookup(date, hhmm string) (OccupancyRecord, bool) {
	rec, ok := idx[IndexKey(date, hhmm)]
	return rec, ok
}
