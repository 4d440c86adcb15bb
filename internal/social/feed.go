package social

import (
	"github.com/google/uuid"

	"github.com/jinwoo-p/sociogram/internal/models"
)

// FeedAggregator assembles the ordered set of posts shown to a user.
type FeedAggregator struct {
	store Store
}

func NewFeedAggregator(store Store) *FeedAggregator {
	return &FeedAggregator{store: store}
}

// BuildFeed returns every friend's posts in friend-list order followed by
// the user's own posts, each block in stored creation order. There is no
// chronological re-sort, dedup or pagination; the structural order is the
// contract. A user with nothing to show gets an empty slice, not an error.
func (a *FeedAggregator) BuildFeed(userID uuid.UUID) ([]models.Post, error) {
	user, err := a.store.GetUser(userID)
	if err != nil {
		return nil, err
	}

	feed := make([]models.Post, 0)

	for _, friend := range user.Friends {
		posts, err := a.store.ListPostsByCreator(friend.FriendID)
		if err != nil {
			return nil, err
		}
		feed = append(feed, posts...)
	}

	own, err := a.store.ListPostsByCreator(user.ID)
	if err != nil {
		return nil, err
	}
	feed = append(feed, own...)

	return feed, nil
}
