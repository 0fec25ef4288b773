package mediaapi

import (
	"context"
)

// API defines the interface for media catalog operations
type API interface {
	// ListMedia retrieves the media collection
	ListMedia(ctx context.Context, query *QueryOptions) (any, error)

	// GetMediaByID retrieves a single media item
	GetMediaByID(ctx context.Context, id string) (any, error)

	// CreateMedia adds a media item
	CreateMedia(ctx context.Context, payload any) (any, error)

	// UpdateMedia applies a partial update to a media item
	UpdateMedia(ctx context.Context, id string, payload any) (any, error)

	// DeleteMedia removes a media item
	DeleteMedia(ctx context.Context, id string) (any, error)

	// GenerateRandomMedia generates n random media items on the backend
	GenerateRandomMedia(ctx context.Context, n int) (any, error)

	// Health queries the backend health endpoint
	Health(ctx context.Context) (any, error)
}
