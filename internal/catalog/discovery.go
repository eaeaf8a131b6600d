package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/sonarrplus/pkg/tmdb"
)

// Discover lists the shows of one discovery rail.
func (s *Service) Discover(ctx context.Context, c Category) ([]Show, error) {
	var (
		raw []tmdb.TVShow
		err error
	)
	switch c {
	case CategoryTrending:
		raw, err = s.discovery.OnTheAir(ctx)
	case CategoryPopular:
		raw, err = s.discovery.Popular(ctx)
	case CategoryTopRated:
		raw, err = s.discovery.TopRated(ctx)
	default:
		id, ok := c.GenreID()
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
		}
		raw, err = s.discovery.DiscoverByGenre(ctx, id)
	}
	if err != nil {
		return nil, err
	}
	return s.fromDiscovery(raw), nil
}

// DiscoverAll fetches every rail concurrently. Rails that fail are left
// out of the result and reported together in the returned error.
func (s *Service) DiscoverAll(ctx context.Context) (map[Category][]Show, error) {
	cats := Categories()

	var (
		mu   sync.Mutex
		out  = make(map[Category][]Show, len(cats))
		errs []error
	)

	var g errgroup.Group
	g.SetLimit(s.railLimit)
	for _, c := range cats {
		g.Go(func() error {
			shows, err := s.Discover(ctx, c)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				s.log.Warn("rail failed", "category", string(c), "error", err)
				errs = append(errs, fmt.Errorf("%s: %w", c.Label(), err))
				return nil
			}
			out[c] = shows
			return nil
		})
	}
	_ = g.Wait()

	return out, errors.Join(errs...)
}

// SearchDiscovery searches the discovery service by title.
func (s *Service) SearchDiscovery(ctx context.Context, query string) ([]Show, error) {
	raw, err := s.discovery.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return s.fromDiscovery(raw), nil
}

func (s *Service) fromDiscovery(records []tmdb.TVShow) []Show {
	shows := make([]Show, 0, len(records))
	for _, r := range records {
		show, err := FromDiscovery(r)
		if err != nil {
			s.log.Debug("skipping discovery record", "error", err)
			continue
		}
		shows = append(shows, show)
	}
	return shows
}
