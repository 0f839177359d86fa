package app

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heynenm/snowreport/internal/domain"
)

// Source names the provider in every payload so the consuming page can tell
// modeled data from resort-reported numbers.
const Source = "Open-Meteo (modeled snowfall)"

// ReportService assembles the snow report: it filters the registry, fans out
// one provider call per resort, and merges the results into the payload the
// web page consumes.
type ReportService struct {
	resorts  []domain.Resort
	snow     domain.SnowProvider
	cache    domain.Cache
	cacheTTL time.Duration
}

// NewReportService builds a service over an immutable registry. cache may be
// nil to disable payload caching.
func NewReportService(resorts []domain.Resort, snow domain.SnowProvider, cache domain.Cache, ttl time.Duration) *ReportService {
	return &ReportService{resorts: resorts, snow: snow, cache: cache, cacheTTL: ttl}
}

// BuildReport produces the full payload, optionally filtered by a two-letter
// state code (case-insensitive; unknown codes yield an empty resort list).
// Provider calls run concurrently, one per resort; if any of them fails the
// whole report fails, so the consumer either gets a complete payload or its
// static fallback. Output order always equals registry order.
func (s *ReportService) BuildReport(ctx context.Context, state string) (domain.ReportPayload, error) {
	state = strings.ToUpper(strings.TrimSpace(state))

	key := "report:all"
	if state != "" {
		key = "report:" + state
	}
	var cached domain.ReportPayload
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &cached); ok {
			return cached, nil
		}
	}

	selected := make([]domain.Resort, 0, len(s.resorts))
	for _, r := range s.resorts {
		if state != "" && !strings.EqualFold(r.State, state) {
			continue
		}
		selected = append(selected, r)
	}

	// Fan out one fetch per resort; results land in their input slot so
	// completion order never reorders the payload. errgroup cancels the
	// remaining fetches and returns the first error.
	totals := make([]domain.SnowTotals, len(selected))
	g, gctx := errgroup.WithContext(ctx)
	for i, r := range selected {
		i, r := i, r
		g.Go(func() error {
			t, err := s.snow.FetchSnow(gctx, r.Lat, r.Lon)
			if err != nil {
				return err
			}
			totals[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.ReportPayload{}, err
	}

	reports := make([]domain.ResortReport, len(selected))
	for i, r := range selected {
		reports[i] = domain.ResortReport{
			Name:        r.Name,
			Region:      r.Region,
			State:       r.State,
			ElevationFt: r.ElevationFt,
			Snow24hIn:   totals[i].Snow24hIn,
			Snow72hIn:   totals[i].Snow72hIn,
			ReportURL:   r.ReportURL,
			WebcamURL:   r.WebcamURL,
			// ops metrics stay null: the provider models weather, not lift status
		}
	}

	filters := map[string]string{}
	if state != "" {
		filters["state"] = state
	}
	payload := domain.ReportPayload{
		UpdatedAt: time.Now().UTC(),
		Source:    Source,
		Resorts:   reports,
		Filters:   filters,
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, key, payload, int(s.cacheTTL.Seconds()))
	}
	return payload, nil
}
