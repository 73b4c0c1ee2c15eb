package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"roomgrid/models"
)

// OccupancyFetcher is the boundary with the upstream scheduling system.
// Implemented by upstream.Client; tests substitute fakes.
type OccupancyFetcher interface {
	FetchOccupancy(ctx context.Context, clubID, serviceID, roomID int, startDate, endDate string) ([]models.OccupancyRecord, error)
}

// servicePair identifies one distinct upstream query. Several slots (and in
// the comfort pool, several rooms) can resolve to the same pair; exactly one
// query is issued per pair.
type servicePair struct {
	ServiceID int
	RoomID    int
}

// dedupePairs keeps first occurrences in order.
func dedupePairs(pairs []servicePair) []servicePair {
	seen := make(map[servicePair]struct{}, len(pairs))
	out := make([]servicePair, 0, len(pairs))
	for _, p := range pairs {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// fetchIndexes runs one upstream query per distinct pair concurrently and
// joins them into per-pair indexes. Each goroutine writes only its own slot
// of the result slice; the merge happens after the join barrier, so no map
// is shared while fetches are in flight. Any single failure cancels the
// remaining fetches and aborts the grid.
func (s *DefaultAvailabilityService) fetchIndexes(ctx context.Context, clubID int, pairs []servicePair, startDate, endDate string) (map[servicePair]models.OccupancyIndex, error) {
	pairs = dedupePairs(pairs)
	results := make([]models.OccupancyIndex, len(pairs))

	g, gctx := errgroup.WithContext(ctx)
	for i, pair := range pairs {
		i, pair := i, pair
		g.Go(func() error {
			records, err := s.Fetcher.FetchOccupancy(gctx, clubID, pair.ServiceID, pair.RoomID, startDate, endDate)
			if err != nil {
				return err
			}
			results[i] = models.BuildIndex(records)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	indexes := make(map[servicePair]models.OccupancyIndex, len(pairs))
	for i, pair := range pairs {
		indexes[pair] = results[i]
	}
	return indexes, nil
}
