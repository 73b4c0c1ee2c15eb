// services/availability.go
package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"roomgrid/models"
	"roomgrid/utils"
)

// AvailabilityService resolves per-date availability grids for the two room
// categories. It is a read-side engine: it never writes to the upstream
// system and holds no state across requests.
type AvailabilityService interface {
	GetEliteGrid(ctx context.Context, clubID int, date string) (*models.EliteGrid, error)
	GetComfortGrid(ctx context.Context, clubID int, date string) (*models.ComfortGrid, error)
}

// DefaultAvailabilityService is a concrete implementation.
type DefaultAvailabilityService struct {
	Fetcher OccupancyFetcher
	// LoadVenue returns a fresh read-only reference-data snapshot. Called
	// once per request so configuration edits apply without a restart.
	LoadVenue func() (*models.Venue, error)
	// OffsetMinutes is the global probe-time skew compensating a known
	// upstream timestamp shift. Zero in a healthy deployment.
	OffsetMinutes int
}

// slotPlan pins down everything date-dependent about one grid slot before
// any upstream traffic happens.
type slotPlan struct {
	Start    string
	Real     time.Time // calendar day upstream records this slot under
	RealDate string
	Band     models.DayBand
}

func planSlots(displayDate time.Time) []slotPlan {
	plans := make([]slotPlan, 0, len(models.SlotTimes))
	for _, start := range models.SlotTimes {
		rd := models.RealDate(displayDate, start)
		plans = append(plans, slotPlan{
			Start:    start,
			Real:     rd,
			RealDate: models.FormatDate(rd),
			Band:     models.DayBandOf(start),
		})
	}
	return plans
}

// fetchWindow widens the query to one day either side of the display date so
// reattributed night slots are always covered.
func fetchWindow(displayDate time.Time) (string, string) {
	return models.FormatDate(displayDate.AddDate(0, 0, -1)),
		models.FormatDate(displayDate.AddDate(0, 0, 1))
}

// GetEliteGrid builds the exclusive-category grid: one cell per slot for the
// venue's single elite room.
func (s *DefaultAvailabilityService) GetEliteGrid(ctx context.Context, clubID int, date string) (*models.EliteGrid, error) {
	logger := utils.GetLogger()

	day, err := models.ParseDate(date)
	if err != nil {
		return nil, err
	}
	venue, err := s.LoadVenue()
	if err != nil {
		return nil, err
	}
	if clubID == 0 {
		clubID = venue.ClubID
	}

	room, ok := venue.EliteRoom()
	if !ok {
		return nil, &models.ConfigError{Detail: "no elite room configured"}
	}

	plans := planSlots(day)
	serviceIDs := make([]int, len(plans))
	pairs := make([]servicePair, 0, len(plans))
	for i, plan := range plans {
		sid, err := resolveServiceID(venue, room, plan.Real, plan.Band)
		if err != nil {
			return nil, err
		}
		serviceIDs[i] = sid
		pairs = append(pairs, servicePair{ServiceID: sid, RoomID: room.ID})
	}

	startDate, endDate := fetchWindow(day)
	indexes, err := s.fetchIndexes(ctx, clubID, pairs, startDate, endDate)
	if err != nil {
		return nil, err
	}
	logger.Debug("elite grid fetched",
		zap.String("date", date),
		zap.Int("pairs", len(indexes)))

	grid := &models.EliteGrid{Date: date, Slots: make([]models.EliteCell, 0, len(plans))}
	for i, plan := range plans {
		idx := indexes[servicePair{ServiceID: serviceIDs[i], RoomID: room.ID}]
		sv := evaluateSlot(idx, plan.RealDate, plan.Start, s.OffsetMinutes)

		cell := models.EliteCell{
			Time:       plan.Start,
			Price:      sv.Price,
			ServiceID:  serviceIDs[i],
			RoomID:     room.ID,
			TotalCount: 1,
			Reason:     sv.Reason,
		}
		if sv.Verdict == models.VerdictFree {
			cell.Free = 1
		}
		grid.Slots = append(grid.Slots, cell)
	}
	return grid, nil
}

// GetComfortGrid builds the pooled-category grid: per slot, verdicts across
// every comfort room folded into counts and a minimum price.
func (s *DefaultAvailabilityService) GetComfortGrid(ctx context.Context, clubID int, date string) (*models.ComfortGrid, error) {
	logger := utils.GetLogger()

	day, err := models.ParseDate(date)
	if err != nil {
		return nil, err
	}
	venue, err := s.LoadVenue()
	if err != nil {
		return nil, err
	}
	if clubID == 0 {
		clubID = venue.ClubID
	}

	rooms := venue.ComfortRooms()
	if len(rooms) == 0 {
		return nil, &models.ConfigError{Detail: "no comfort rooms configured"}
	}

	plans := planSlots(day)

	// serviceIDs[slot][room]; rooms in different groups resolve to different
	// service_ids, rooms in the same group share one and the dedupe below
	// collapses them to a single upstream query.
	serviceIDs := make([][]int, len(plans))
	var pairs []servicePair
	for i, plan := range plans {
		serviceIDs[i] = make([]int, len(rooms))
		for j, room := range rooms {
			sid, err := resolveServiceID(venue, room, plan.Real, plan.Band)
			if err != nil {
				return nil, err
			}
			serviceIDs[i][j] = sid
			pairs = append(pairs, servicePair{ServiceID: sid, RoomID: room.ID})
		}
	}

	startDate, endDate := fetchWindow(day)
	indexes, err := s.fetchIndexes(ctx, clubID, pairs, startDate, endDate)
	if err != nil {
		return nil, err
	}
	logger.Debug("comfort grid fetched",
		zap.String("date", date),
		zap.Int("rooms", len(rooms)),
		zap.Int("pairs", len(indexes)))

	grid := &models.ComfortGrid{Date: date, Slots: make([]models.ComfortCell, 0, len(plans))}
	for i, plan := range plans {
		cell := models.ComfortCell{Time: plan.Start, TotalCount: len(rooms)}
		for j, room := range rooms {
			idx := indexes[servicePair{ServiceID: serviceIDs[i][j], RoomID: room.ID}]
			sv := evaluateSlot(idx, plan.RealDate, plan.Start, s.OffsetMinutes)

			switch sv.Verdict {
			case models.VerdictFree:
				cell.FreeCount++
				if sv.Price != nil && (cell.MinPrice == nil || *sv.Price < *cell.MinPrice) {
					cell.MinPrice = sv.Price
				}
			case models.VerdictBusy:
				cell.BusyCount++
			}
			// Missing rooms stay out of both counters; they still show in
			// TotalCount so the UI can tell a thin pool from a full one.
		}
		grid.Slots = append(grid.Slots, cell)
	}
	return grid, nil
}
