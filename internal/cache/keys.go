package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	userKeyPrefix = "user:%d"
	postKeyPrefix = "post:%d"
)

const (
	UserTTL = 5 * time.Minute
	PostTTL = 30 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(userKeyPrefix, userID)
}

func PostKey(postID uint) string {
	return fmt.Sprintf(postKeyPrefix, postID)
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}
