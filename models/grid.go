package models

// Verdict is the tri-state availability outcome of one 2-hour slot for one
// room. Missing means upstream returned no record at all for an expected
// probe time; it is deliberately distinct from busy.
type Verdict string

const (
	VerdictFree    Verdict = "free"
	VerdictBusy    Verdict = "busy"
	VerdictMissing Verdict = "missing"
)

// Cell reasons surfaced to the UI.
const (
	ReasonOccupied    = "occupied"
	ReasonSlotMissing = "slot_missing"
)

// EliteCell is one slot of the exclusive-category grid.
type EliteCell struct {
	Time       string   `json:"time"`
	Free       int      `json:"free"` // 0 or 1
	Price      *float64 `json:"price"`
	ServiceID  int      `json:"serviceId"`
	RoomID     int      `json:"roomId"`
	TotalCount int      `json:"totalCount"`
	Reason     string   `json:"reason,omitempty"`
}

// ComfortCell is one slot of the pooled-category grid. Rooms with missing
// upstream data count toward TotalCount only.
type ComfortCell struct {
	Time       string   `json:"time"`
	FreeCount  int      `json:"freeCount"`
	BusyCount  int      `json:"busyCount"`
	TotalCount int      `json:"totalCount"`
	MinPrice   *float64 `json:"minPrice"`
}

// EliteGrid is the per-date availability grid for the exclusive category,
// one cell per slot in grid order.
type EliteGrid struct {
	Date  string      `json:"date"`
	Slots []EliteCell `json:"slots"`
}

// ComfortGrid is the per-date availability grid for the pooled category.
type ComfortGrid struct {
	Date  string        `json:"date"`
	Slots []ComfortCell `json:"slots"`
}
