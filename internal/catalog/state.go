package catalog

import (
	"slices"
	"sync"
)

// State is the locally observable view of the library. Getters return
// copies; the service is the only writer.
type State struct {
	mu         sync.RWMutex
	shows      []Show
	episodes   map[int64][]Episode
	queue      []DownloadItem
	rootFolder string
	hasIndexer *bool
}

func newState() *State {
	return &State{episodes: make(map[int64][]Episode)}
}

// Shows returns the library shows.
func (s *State) Shows() []Show {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.shows)
}

// Show returns the library show with the given id.
func (s *State) Show(id int64) (Show, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return Show{}, false
	}
	return s.shows[i], true
}

// Episodes returns the cached episodes of a show.
func (s *State) Episodes(showID int64) []Episode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.episodes[showID])
}

// Queue returns the download queue.
func (s *State) Queue() []DownloadItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.queue)
}

// RootFolder returns the default root folder, or "" when unknown.
func (s *State) RootFolder() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rootFolder
}

// HasIndexer returns the cached indexer check; known is false before the
// first check.
func (s *State) HasIndexer() (has, known bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.hasIndexer == nil {
		return false, false
	}
	return *s.hasIndexer, true
}

func (s *State) indexOf(id int64) int {
	return slices.IndexFunc(s.shows, func(sh Show) bool { return sh.ID == id })
}

func (s *State) setShows(shows []Show) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shows = slices.Clone(shows)
}

func (s *State) upsertShow(show Show) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(show.ID); i >= 0 {
		s.shows[i] = show
		return
	}
	s.shows = append(s.shows, show)
}

func (s *State) setSeasonMonitored(showID int64, season int, monitored bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(showID)
	if i < 0 {
		return
	}
	// Copy on write so earlier snapshots keep their seasons.
	seasons := slices.Clone(s.shows[i].Seasons)
	for j := range seasons {
		if seasons[j].Number == season {
			seasons[j].Monitored = monitored
		}
	}
	s.shows[i].Seasons = seasons
}

// mergeEpisodes caches eps for a show. With a season filter only that
// season's entries are replaced.
func (s *State) mergeEpisodes(showID int64, season *int, eps []Episode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if season == nil {
		s.episodes[showID] = slices.Clone(eps)
		return
	}
	merged := make([]Episode, 0, len(s.episodes[showID])+len(eps))
	for _, e := range s.episodes[showID] {
		if e.SeasonNumber != *season {
			merged = append(merged, e)
		}
	}
	merged = append(merged, eps...)
	sortEpisodes(merged)
	s.episodes[showID] = merged
}

// episode returns a cached episode.
func (s *State) episode(episodeID int64) (Episode, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, eps := range s.episodes {
		for _, e := range eps {
			if e.ID == episodeID {
				return e, true
			}
		}
	}
	return Episode{}, false
}

func (s *State) setEpisodeMonitored(episodeID int64, monitored bool) {
	s.updateEpisode(episodeID, func(e *Episode) { e.Monitored = monitored })
}

func (s *State) clearEpisodeFile(episodeID int64) {
	s.updateEpisode(episodeID, func(e *Episode) {
		e.HasFile = false
		e.EpisodeFileID = 0
	})
}

func (s *State) updateEpisode(episodeID int64, fn func(*Episode)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for showID, eps := range s.episodes {
		for j := range eps {
			if eps[j].ID == episodeID {
				eps = slices.Clone(eps)
				fn(&eps[j])
				s.episodes[showID] = eps
				return
			}
		}
	}
}

func (s *State) setQueue(items []DownloadItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = slices.Clone(items)
}

// removeQueueItem drops the item and reports where it was.
func (s *State) removeQueueItem(id int64) (DownloadItem, int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.queue, func(d DownloadItem) bool { return d.ID == id })
	if i < 0 {
		return DownloadItem{}, -1, false
	}
	item := s.queue[i]
	s.queue = slices.Delete(slices.Clone(s.queue), i, i+1)
	return item, i, true
}

// restoreQueueItem puts item back at index, or at the end if the queue has
// shrunk since.
func (s *State) restoreQueueItem(item DownloadItem, index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if slices.ContainsFunc(s.queue, func(d DownloadItem) bool { return d.ID == item.ID }) {
		return
	}
	index = min(max(index, 0), len(s.queue))
	s.queue = slices.Insert(slices.Clone(s.queue), index, item)
}

func (s *State) setRootFolder(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rootFolder = path
}

func (s *State) setIndexer(has bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hasIndexer = &has
}

func (s *State) setNotifications(showID int64, enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(showID); i >= 0 {
		s.shows[i].NotificationsEnabled = enabled
	}
}

func (s *State) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shows = nil
	s.episodes = make(map[int64][]Episode)
	s.queue = nil
	s.rootFolder = ""
	s.hasIndexer = nil
}
