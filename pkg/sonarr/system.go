package sonarr

import (
	"context"
	"fmt"
)

// RootFolders returns the configured library roots.
func (c *Client) RootFolders(ctx context.Context) ([]RootFolder, error) {
	var folders []RootFolder
	if err := c.getJSON(ctx, "/rootfolder", nil, &folders); err != nil {
		return nil, fmt.Errorf("list root folders: %w", err)
	}
	return folders, nil
}

// QualityProfiles returns the configured quality profiles.
func (c *Client) QualityProfiles(ctx context.Context) ([]QualityProfile, error) {
	var profiles []QualityProfile
	if err := c.getJSON(ctx, "/qualityprofile", nil, &profiles); err != nil {
		return nil, fmt.Errorf("list quality profiles: %w", err)
	}
	return profiles, nil
}

// Indexers returns the configured search indexers.
func (c *Client) Indexers(ctx context.Context) ([]Indexer, error) {
	var indexers []Indexer
	if err := c.getJSON(ctx, "/indexer", nil, &indexers); err != nil {
		return nil, fmt.Errorf("list indexers: %w", err)
	}
	return indexers, nil
}

// DiskSpace returns the disks visible to Sonarr.
func (c *Client) DiskSpace(ctx context.Context) ([]DiskSpace, error) {
	var disks []DiskSpace
	if err := c.getJSON(ctx, "/diskspace", nil, &disks); err != nil {
		return nil, fmt.Errorf("get disk space: %w", err)
	}
	return disks, nil
}
