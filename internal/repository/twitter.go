package repository

import (
	"context"

	"github.com/postcraft/social-post-api/internal/twitter"
)

// TwitterRepository abstracts the publishing collaborator.
type TwitterRepository interface {
	PostTweet(ctx context.Context, text string) (string, error)
}

type twitterRepository struct {
	client *twitter.Client
}

func NewTwitterRepository(client *twitter.Client) TwitterRepository {
	return &twitterRepository{
		client: client,
	}
}

func (t *twitterRepository) PostTweet(ctx context.Context, text string) (string, error) {
	return t.client.PostTweet(ctx, text)
}
