package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache key layout and TTLs for the API's hot reads. The post list backs the
// customer board and is read on every page load; performer profiles are read
// on every profile view.
const (
	postListKey     = "talento:posts:all"
	performerKeyFmt = "talento:performer:%d"

	PostListTTL  = 30 * time.Second
	PerformerTTL = 2 * time.Minute
)

// PostListKey returns the cache key for the full post listing.
func PostListKey() string {
	return postListKey
}

// PerformerKey returns the cache key for a performer profile by user ID.
func PerformerKey(userID uint) string {
	return fmt.Sprintf(performerKeyFmt, userID)
}

// InvalidatePostList drops the cached post listing. Called after any post or
// comment mutation since the board embeds comment threads.
func InvalidatePostList(ctx context.Context, client *redis.Client) {
	Delete(ctx, client, postListKey)
}

// InvalidatePerformer drops a cached performer profile after a portfolio save
// or profile image change.
func InvalidatePerformer(ctx context.Context, client *redis.Client, userID uint) {
	Delete(ctx, client, PerformerKey(userID))
}
