package models

import "fmt"

// InvalidDateError reports a malformed display date. Caught by local
// validation before any upstream traffic.
type InvalidDateError struct {
	Input string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", e.Input)
}

// ConfigError reports malformed or incomplete venue reference data. Always
// request-fatal: a wrong room list would silently show wrong availability.
type ConfigError struct {
	Detail string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("venue configuration error: %s", e.Detail)
}

// MissingServiceMappingError reports a service-table leaf with no configured
// service_id for a required category/group/day-type/band combination. Never
// defaulted: serving a wrong service_id would show another room's schedule.
type MissingServiceMappingError struct {
	Path string // e.g. "comfort.standard.weekend.night"
}

func (e *MissingServiceMappingError) Error() string {
	return fmt.Sprintf("no service_id configured for %s", e.Path)
}

// UpstreamError reports a transport or in-band failure from the vendor
// system for one (service_id, room_id) pair. Any single failing pair aborts
// the whole grid; no partial grid is returned.
type UpstreamError struct {
	ServiceID int
	RoomID    int
	Status    int    // HTTP status when applicable, 0 for transport errors
	Message   string
	Err       error
}

func (e *UpstreamError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("upstream unavailable for service_id=%d room_id=%d (status=%d): %s",
		e.ServiceID, e.RoomID, e.Status, msg)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
