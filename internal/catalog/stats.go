package catalog

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/sonarrplus/pkg/sonarr"
)

const bytesPerGiB = 1 << 30

// Stats summarizes the library and the disks the server can see.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	var (
		series []sonarr.Series
		disks  []sonarr.DiskSpace
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		series, err = s.library.AllSeries(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		disks, err = s.library.DiskSpace(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	st := &Stats{DiskCount: len(disks)}
	var sizeOnDisk int64
	for _, show := range s.fromLibrary(series) {
		st.Series++
		if show.Monitored != nil && *show.Monitored {
			st.Monitored++
		}
		if show.Status == "ended" {
			st.Ended++
		}
		for _, season := range show.Seasons {
			if season.Statistics == nil {
				continue
			}
			st.EpisodeFiles += season.Statistics.EpisodeFileCount
			sizeOnDisk += season.Statistics.SizeOnDisk
		}
	}
	st.SizeOnDiskGiB = float64(sizeOnDisk) / bytesPerGiB

	var total, free float64
	for _, d := range disks {
		total += d.TotalSpace
		free += d.FreeSpace
	}
	st.DiskTotalGiB = total / bytesPerGiB
	st.DiskFreeGiB = free / bytesPerGiB
	st.DiskUsedGiB = (total - free) / bytesPerGiB
	return st, nil
}
