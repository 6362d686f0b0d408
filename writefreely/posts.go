package writefreely

import (
	"bytes"
	"context"
	"net/http"
	"net/url"

	"github.com/olgasafonova/writefreely-mcp-server/metrics"
)

func postPath(id string) string {
	return "/api/posts/" + url.PathEscape(id)
}

func collectionPath(alias string) string {
	return "/api/collections/" + url.PathEscape(alias)
}

// CreatePost publishes a post. With a collection alias the post goes straight
// into that collection and the call needs credentials; without one it is
// created as a draft of the account, or anonymously when the client has no
// token.
func (c *Client) CreatePost(ctx context.Context, body, collection string, params *PostParams) (*Post, error) {
	op, path := OpCreatePost, "/api/posts"
	if collection != "" {
		op, path = OpCreateCollectionPost, collectionPath(collection)+"/posts"
	}

	data, err := c.call(ctx, op, http.MethodPost, path, params.payload(body))
	metrics.RecordEdit(string(op), len(body), err == nil)
	if err != nil {
		return nil, err
	}

	var post Post
	if err := decodeData(path, data, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPost fetches a post by ID, or by slug within collection when one is given.
func (c *Client) GetPost(ctx context.Context, idOrSlug, collection string) (*Post, error) {
	op, path := OpGetPost, postPath(idOrSlug)
	if collection != "" {
		op, path = OpGetCollectionPost, collectionPath(collection)+"/posts/"+url.PathEscape(idOrSlug)
	}

	data, err := c.call(ctx, op, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var post Post
	if err := decodeData(path, data, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPosts lists the account's posts, or the published posts of collection
// when one is given.
func (c *Client) GetPosts(ctx context.Context, collection string) ([]Post, error) {
	op, path := OpGetDrafts, "/api/me/posts"
	if collection != "" {
		op, path = OpGetCollectionPosts, collectionPath(collection)+"/posts"
	}

	data, err := c.call(ctx, op, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	// The collection endpoint wraps its posts in the collection object.
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		var coll Collection
		if err := decodeData(path, data, &coll); err != nil {
			return nil, err
		}
		return coll.Posts, nil
	}

	var posts []Post
	if err := decodeData(path, data, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdatePost replaces the body of a post and any fields set in params. With
// params.Token set the request proves ownership of an anonymous post instead
// of relying on the client's credentials.
func (c *Client) UpdatePost(ctx context.Context, id, body string, params *PostParams) (*Post, error) {
	op := OpUpdatePost
	if params.ownerToken() != "" {
		op = OpUpdateAnonymousPost
	}
	path := postPath(id)

	data, err := c.call(ctx, op, http.MethodPost, path, params.payload(body))
	metrics.RecordEdit(string(op), len(body), err == nil)
	if err != nil {
		return nil, err
	}

	var post Post
	if err := decodeData(path, data, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost deletes a post. A non-empty token proves ownership of an
// anonymous post in place of the client's credentials.
func (c *Client) DeletePost(ctx context.Context, id, token string) error {
	op, path := OpDeletePost, postPath(id)
	if token != "" {
		op = OpDeleteAnonymousPost
		path += "?" + url.Values{"token": {token}}.Encode()
	}

	_, err := c.call(ctx, op, http.MethodDelete, path, nil)
	metrics.RecordEdit(string(op), 0, err == nil)
	return err
}

// ClaimPosts attaches ownerless posts to the authenticated account. When
// collection is set they are also moved into it.
func (c *Client) ClaimPosts(ctx context.Context, posts []PostRef, collection string) ([]ClaimResult, error) {
	if collection != "" {
		return c.MovePosts(ctx, collection, posts)
	}
	return c.batchClaim(ctx, OpClaimPosts, "/api/posts/claim", posts)
}

// ClaimPost claims a single post. It is one ClaimPosts call with a batch of one.
func (c *Client) ClaimPost(ctx context.Context, id, token, collection string) (*ClaimResult, error) {
	results, err := c.ClaimPosts(ctx, []PostRef{{ID: id, Token: token}}, collection)
	if err != nil {
		return nil, err
	}
	return first("/api/posts/claim", results)
}

// MovePosts publishes posts into collection.
func (c *Client) MovePosts(ctx context.Context, collection string, posts []PostRef) ([]ClaimResult, error) {
	return c.batchClaim(ctx, OpMovePosts, collectionPath(collection)+"/collect", posts)
}

// MovePost moves a single post. It is one MovePosts call with a batch of one.
func (c *Client) MovePost(ctx context.Context, id, token, collection string) (*ClaimResult, error) {
	results, err := c.MovePosts(ctx, collection, []PostRef{{ID: id, Token: token}})
	if err != nil {
		return nil, err
	}
	return first(collectionPath(collection)+"/collect", results)
}

func (c *Client) batchClaim(ctx context.Context, op Operation, path string, posts []PostRef) ([]ClaimResult, error) {
	if posts == nil {
		posts = []PostRef{}
	}
	data, err := c.call(ctx, op, http.MethodPost, path, posts)
	metrics.RecordEdit(string(op), 0, err == nil)
	if err != nil {
		return nil, err
	}
	var results []ClaimResult
	if err := decodeData(path, data, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// PinPosts pins posts to collection. Pinned posts show up as navigation items
// in the collection's header instead of in its post stream.
func (c *Client) PinPosts(ctx context.Context, collection string, posts []PinRef) ([]PinResult, error) {
	return c.batchPin(ctx, OpPinPosts, collectionPath(collection)+"/pin", posts)
}

// PinPost pins a single post at position (zero lets the instance choose).
func (c *Client) PinPost(ctx context.Context, collection, id string, position int) (*PinResult, error) {
	results, err := c.PinPosts(ctx, collection, []PinRef{{ID: id, Position: position}})
	if err != nil {
		return nil, err
	}
	return first(collectionPath(collection)+"/pin", results)
}

// UnpinPosts removes posts from collection's navigation.
func (c *Client) UnpinPosts(ctx context.Context, collection string, ids []string) ([]PinResult, error) {
	refs := make([]PinRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, PinRef{ID: id})
	}
	return c.batchPin(ctx, OpUnpinPosts, collectionPath(collection)+"/unpin", refs)
}

// UnpinPost unpins a single post.
func (c *Client) UnpinPost(ctx context.Context, collection, id string) (*PinResult, error) {
	results, err := c.UnpinPosts(ctx, collection, []string{id})
	if err != nil {
		return nil, err
	}
	return first(collectionPath(collection)+"/unpin", results)
}

func (c *Client) batchPin(ctx context.Context, op Operation, path string, posts []PinRef) ([]PinResult, error) {
	if posts == nil {
		posts = []PinRef{}
	}
	data, err := c.call(ctx, op, http.MethodPost, path, posts)
	metrics.RecordEdit(string(op), 0, err == nil)
	if err != nil {
		return nil, err
	}
	var results []PinResult
	if err := decodeData(path, data, &results); err != nil {
		return nil, err
	}
	return results, nil
}
