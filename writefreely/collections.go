package writefreely

import (
	"context"
	"net/http"

	"github.com/olgasafonova/writefreely-mcp-server/metrics"
)

// CreateCollection creates a blog. At least one of alias and title is
// required; the instance derives a missing alias from the title.
func (c *Client) CreateCollection(ctx context.Context, alias, title string) (*Collection, error) {
	if alias == "" && title == "" {
		return nil, NewValidationError("alias", "", "alias or title must be supplied")
	}

	payload := map[string]string{}
	if alias != "" {
		payload["alias"] = alias
	}
	if title != "" {
		payload["title"] = title
	}

	const path = "/api/collections"
	data, err := c.call(ctx, OpCreateCollection, http.MethodPost, path, payload)
	metrics.RecordEdit(string(OpCreateCollection), 0, err == nil)
	if err != nil {
		return nil, err
	}
	var coll Collection
	if err := decodeData(path, data, &coll); err != nil {
		return nil, err
	}
	return &coll, nil
}

// GetCollection fetches a collection by alias.
func (c *Client) GetCollection(ctx context.Context, alias string) (*Collection, error) {
	path := collectionPath(alias)
	data, err := c.call(ctx, OpGetCollection, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var coll Collection
	if err := decodeData(path, data, &coll); err != nil {
		return nil, err
	}
	return &coll, nil
}

// GetCollections lists the authenticated user's collections.
func (c *Client) GetCollections(ctx context.Context) ([]Collection, error) {
	const path = "/api/me/collections"
	data, err := c.call(ctx, OpGetCollections, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var colls []Collection
	if err := decodeData(path, data, &colls); err != nil {
		return nil, err
	}
	return colls, nil
}

// UpdateCollection changes the fields set in params and leaves the rest as they are.
func (c *Client) UpdateCollection(ctx context.Context, alias string, params *CollectionParams) (*Collection, error) {
	path := collectionPath(alias)
	data, err := c.call(ctx, OpUpdateCollection, http.MethodPost, path, params.payload())
	metrics.RecordEdit(string(OpUpdateCollection), 0, err == nil)
	if err != nil {
		return nil, err
	}
	var coll Collection
	if err := decodeData(path, data, &coll); err != nil {
		return nil, err
	}
	return &coll, nil
}

// DeleteCollection permanently deletes a collection. Its posts become
// anonymous drafts.
func (c *Client) DeleteCollection(ctx context.Context, alias string) error {
	_, err := c.call(ctx, OpDeleteCollection, http.MethodDelete, collectionPath(alias), nil)
	metrics.RecordEdit(string(OpDeleteCollection), 0, err == nil)
	return err
}

// GetChannels lists the external publishing integrations linked to the
// account. Self-hosted services such as Mastodon include the instance URL.
func (c *Client) GetChannels(ctx context.Context) ([]Channel, error) {
	const path = "/api/me/channels"
	data, err := c.call(ctx, OpGetChannels, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var channels []Channel
	if err := decodeData(path, data, &channels); err != nil {
		return nil, err
	}
	return channels, nil
}
