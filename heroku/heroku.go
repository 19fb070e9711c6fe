package heroku

import (
	"fmt"
	"net/http"
	"os"

	"github.com/convox/logger"
	"github.com/convox/stdsdk"
)

const (
	DefaultEndpoint = "https://api.heroku.com"

	accept = "application/vnd.heroku+json; version=3"
)

type Client struct {
	*stdsdk.Client

	log   *logger.Logger
	token string
}

// ensure interface parity
var _ Interface = &Client{}

func New(endpoint, token string) (*Client, error) {
	s, err := stdsdk.New(endpoint)
	if err != nil {
		return nil, err
	}

	c := &Client{
		Client: s,
		log:    logger.New("ns=heroku"),
		token:  token,
	}

	c.Client.Headers = c.headers

	return c, nil
}

// NewFromEnv creates a client for the public platform API using the token
// in MIGRATE_API_SECRET_HEROKU. An empty token is not an error here; the
// first request fails authentication remotely instead.
func NewFromEnv() (*Client, error) {
	return New(DefaultEndpoint, os.Getenv("MIGRATE_API_SECRET_HEROKU"))
}

func (c *Client) headers() http.Header {
	h := http.Header{}

	h.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	h.Set("Accept", accept)
	h.Set("Content-Type", "application/json")

	return h
}
