package twitter

import (
	"context"
	"fmt"

	"github.com/michimani/gotwi"
	"github.com/michimani/gotwi/tweet/managetweet"
	"github.com/michimani/gotwi/tweet/managetweet/types"
)

// Credentials holds the OAuth1 user-context keys for the posting account.
type Credentials struct {
	APIKey            string
	APIKeySecret      string
	AccessToken       string
	AccessTokenSecret string
}

// Client handles tweet creation against the X API v2
type Client struct {
	gotwiClient *gotwi.Client
}

// NewClient creates a new X (Twitter) client authenticated as the given user
func NewClient(creds Credentials) (*Client, error) {
	in := &gotwi.NewClientInput{
		AuthenticationMethod: gotwi.AuthenMethodOAuth1UserContext,
		OAuthToken:           creds.AccessToken,
		OAuthTokenSecret:     creds.AccessTokenSecret,
		APIKey:               creds.APIKey,
		APIKeySecret:         creds.APIKeySecret,
	}

	c, err := gotwi.NewClient(in)
	if err != nil {
		return nil, fmt.Errorf("creating twitter client: %w", err)
	}

	return &Client{gotwiClient: c}, nil
}

// PostTweet publishes text as a new tweet and returns its assigned ID.
func (c *Client) PostTweet(ctx context.Context, text string) (string, error) {
	p := &types.CreateInput{
		Text: gotwi.String(text),
	}

	res, err := managetweet.Create(ctx, c.gotwiClient, p)
	if err != nil {
		return "", fmt.Errorf("creating tweet: %w", err)
	}

	return gotwi.StringValue(res.Data.ID), nil
}
