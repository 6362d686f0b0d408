package writefreely

import "context"

// MCP Tool wrapper methods
// These methods wrap the client methods with Args/Result types for MCP integration.

// AuthStatusMCP reports the client state. It makes no request.
func (c *Client) AuthStatusMCP(ctx context.Context, args AuthStatusArgs) (AuthStatusResult, error) {
	return AuthStatusResult{
		Host:          c.Host(),
		Authenticated: c.IsAuthenticated(),
		CircuitState:  c.CircuitBreakerStats().State,
	}, nil
}

// MeMCP is the MCP wrapper for Me
func (c *Client) MeMCP(ctx context.Context, args MeArgs) (MeResult, error) {
	user, err := c.Me(ctx)
	if err != nil {
		return MeResult{}, err
	}
	result := MeResult{
		Username: user.Username,
		Email:    user.Email,
		Created:  user.Created,
	}
	for _, coll := range user.Collections {
		result.Collections = append(result.Collections, coll.Alias)
	}
	return result, nil
}

// CreatePostMCP is the MCP wrapper for CreatePost
func (c *Client) CreatePostMCP(ctx context.Context, args CreatePostArgs) (PostResult, error) {
	if args.Body == "" {
		return PostResult{}, NewValidationError("body", "", "post body must not be empty")
	}
	post, err := c.CreatePost(ctx, args.Body, args.Collection, &PostParams{
		Title:     args.Title,
		Font:      args.Font,
		Lang:      args.Lang,
		RTL:       args.RTL,
		Created:   args.Created,
		Crosspost: args.Crosspost,
	})
	if err != nil {
		return PostResult{}, err
	}
	return PostResult{Post: summarizePost(post)}, nil
}

// GetPostMCP is the MCP wrapper for GetPost
func (c *Client) GetPostMCP(ctx context.Context, args GetPostArgs) (PostResult, error) {
	if args.ID == "" {
		return PostResult{}, NewValidationError("id", "", "post id must not be empty")
	}
	post, err := c.GetPost(ctx, args.ID, args.Collection)
	if err != nil {
		return PostResult{}, err
	}
	return PostResult{Post: summarizePost(post)}, nil
}

// ListPostsMCP is the MCP wrapper for GetPosts
func (c *Client) ListPostsMCP(ctx context.Context, args ListPostsArgs) (ListPostsResult, error) {
	posts, err := c.GetPosts(ctx, args.Collection)
	if err != nil {
		return ListPostsResult{}, err
	}
	summaries := make([]PostSummary, 0, len(posts))
	for i := range posts {
		summaries = append(summaries, summarizePost(&posts[i]))
	}
	return ListPostsResult{Posts: summaries, Count: len(summaries)}, nil
}

// UpdatePostMCP is the MCP wrapper for UpdatePost
func (c *Client) UpdatePostMCP(ctx context.Context, args UpdatePostArgs) (PostResult, error) {
	if args.ID == "" {
		return PostResult{}, NewValidationError("id", "", "post id must not be empty")
	}
	post, err := c.UpdatePost(ctx, args.ID, args.Body, &PostParams{
		Title: args.Title,
		Font:  args.Font,
		Lang:  args.Lang,
		RTL:   args.RTL,
		Token: args.Token,
	})
	if err != nil {
		return PostResult{}, err
	}
	return PostResult{Post: summarizePost(post)}, nil
}

// DeletePostMCP is the MCP wrapper for DeletePost
func (c *Client) DeletePostMCP(ctx context.Context, args DeletePostArgs) (DeleteResult, error) {
	if args.ID == "" {
		return DeleteResult{}, NewValidationError("id", "", "post id must not be empty")
	}
	if err := c.DeletePost(ctx, args.ID, args.Token); err != nil {
		return DeleteResult{}, err
	}
	return DeleteResult{Deleted: true, ID: args.ID}, nil
}

// ClaimPostsMCP is the MCP wrapper for ClaimPosts
func (c *Client) ClaimPostsMCP(ctx context.Context, args ClaimPostsArgs) (ClaimPostsResult, error) {
	if len(args.Posts) == 0 {
		return ClaimPostsResult{}, NewValidationError("posts", "", "at least one post is required")
	}
	results, err := c.ClaimPosts(ctx, args.Posts, args.Collection)
	if err != nil {
		return ClaimPostsResult{}, err
	}
	return summarizeClaims(results), nil
}

// MovePostsMCP is the MCP wrapper for MovePosts
func (c *Client) MovePostsMCP(ctx context.Context, args MovePostsArgs) (ClaimPostsResult, error) {
	if args.Collection == "" {
		return ClaimPostsResult{}, NewValidationError("collection", "", "collection alias must not be empty")
	}
	if len(args.Posts) == 0 {
		return ClaimPostsResult{}, NewValidationError("posts", "", "at least one post is required")
	}
	results, err := c.MovePosts(ctx, args.Collection, args.Posts)
	if err != nil {
		return ClaimPostsResult{}, err
	}
	return summarizeClaims(results), nil
}

// PinPostsMCP is the MCP wrapper for PinPosts
func (c *Client) PinPostsMCP(ctx context.Context, args PinPostsArgs) (PinPostsResult, error) {
	if args.Collection == "" {
		return PinPostsResult{}, NewValidationError("collection", "", "collection alias must not be empty")
	}
	if len(args.Posts) == 0 {
		return PinPostsResult{}, NewValidationError("posts", "", "at least one post is required")
	}
	results, err := c.PinPosts(ctx, args.Collection, args.Posts)
	if err != nil {
		return PinPostsResult{}, err
	}
	return summarizePins(results), nil
}

// UnpinPostsMCP is the MCP wrapper for UnpinPosts
func (c *Client) UnpinPostsMCP(ctx context.Context, args UnpinPostsArgs) (PinPostsResult, error) {
	if args.Collection == "" {
		return PinPostsResult{}, NewValidationError("collection", "", "collection alias must not be empty")
	}
	if len(args.IDs) == 0 {
		return PinPostsResult{}, NewValidationError("ids", "", "at least one post id is required")
	}
	results, err := c.UnpinPosts(ctx, args.Collection, args.IDs)
	if err != nil {
		return PinPostsResult{}, err
	}
	return summarizePins(results), nil
}

// CreateCollectionMCP is the MCP wrapper for CreateCollection
func (c *Client) CreateCollectionMCP(ctx context.Context, args CreateCollectionArgs) (CollectionResult, error) {
	coll, err := c.CreateCollection(ctx, args.Alias, args.Title)
	if err != nil {
		return CollectionResult{}, err
	}
	return CollectionResult{Collection: summarizeCollection(coll)}, nil
}

// GetCollectionMCP is the MCP wrapper for GetCollection
func (c *Client) GetCollectionMCP(ctx context.Context, args GetCollectionArgs) (CollectionResult, error) {
	if args.Alias == "" {
		return CollectionResult{}, NewValidationError("alias", "", "collection alias must not be empty")
	}
	coll, err := c.GetCollection(ctx, args.Alias)
	if err != nil {
		return CollectionResult{}, err
	}
	return CollectionResult{Collection: summarizeCollection(coll)}, nil
}

// ListCollectionsMCP is the MCP wrapper for GetCollections
func (c *Client) ListCollectionsMCP(ctx context.Context, args ListCollectionsArgs) (ListCollectionsResult, error) {
	colls, err := c.GetCollections(ctx)
	if err != nil {
		return ListCollectionsResult{}, err
	}
	summaries := make([]CollectionSummary, 0, len(colls))
	for i := range colls {
		summaries = append(summaries, summarizeCollection(&colls[i]))
	}
	return ListCollectionsResult{Collections: summaries, Count: len(summaries)}, nil
}

// UpdateCollectionMCP is the MCP wrapper for UpdateCollection
func (c *Client) UpdateCollectionMCP(ctx context.Context, args UpdateCollectionArgs) (CollectionResult, error) {
	if args.Alias == "" {
		return CollectionResult{}, NewValidationError("alias", "", "collection alias must not be empty")
	}
	coll, err := c.UpdateCollection(ctx, args.Alias, &CollectionParams{
		Title:       args.Title,
		Description: args.Description,
		StyleSheet:  args.StyleSheet,
		Script:      args.Script,
		Visibility:  args.Visibility,
		Pass:        args.Pass,
		Mathjax:     args.Mathjax,
	})
	if err != nil {
		return CollectionResult{}, err
	}
	return CollectionResult{Collection: summarizeCollection(coll)}, nil
}

// DeleteCollectionMCP is the MCP wrapper for DeleteCollection
func (c *Client) DeleteCollectionMCP(ctx context.Context, args DeleteCollectionArgs) (DeleteResult, error) {
	if args.Alias == "" {
		return DeleteResult{}, NewValidationError("alias", "", "collection alias must not be empty")
	}
	if err := c.DeleteCollection(ctx, args.Alias); err != nil {
		return DeleteResult{}, err
	}
	return DeleteResult{Deleted: true, ID: args.Alias}, nil
}

// ListChannelsMCP is the MCP wrapper for GetChannels
func (c *Client) ListChannelsMCP(ctx context.Context, args ListChannelsArgs) (ListChannelsResult, error) {
	channels, err := c.GetChannels(ctx)
	if err != nil {
		return ListChannelsResult{}, err
	}
	if channels == nil {
		channels = []Channel{}
	}
	return ListChannelsResult{Channels: channels, Count: len(channels)}, nil
}

// LogoutMCP is the MCP wrapper for Logout
func (c *Client) LogoutMCP(ctx context.Context, args LogoutArgs) (LogoutResult, error) {
	if err := c.Logout(ctx); err != nil {
		return LogoutResult{}, err
	}
	return LogoutResult{LoggedOut: true}, nil
}

func summarizePost(p *Post) PostSummary {
	s := PostSummary{
		ID:       p.ID,
		Slug:     p.Slug,
		Token:    p.Token,
		Title:    p.Title,
		Body:     p.Body,
		Font:     p.Appearance,
		Language: p.Language,
		RTL:      p.RTL,
		Created:  p.Created,
		Updated:  p.Updated,
		Tags:     p.Tags,
		Views:    p.Views,
	}
	if p.Collection != nil {
		s.Collection = p.Collection.Alias
	}
	return s
}

func summarizeCollection(c *Collection) CollectionSummary {
	s := CollectionSummary{
		Alias:       c.Alias,
		Title:       c.Title,
		Description: c.Description,
		Public:      c.Public,
		Visibility:  c.Visibility,
		Views:       c.Views,
		URL:         c.URL,
		TotalPosts:  c.TotalPosts,
	}
	for i := range c.Posts {
		s.Posts = append(s.Posts, summarizePost(&c.Posts[i]))
	}
	return s
}

func summarizeClaims(results []ClaimResult) ClaimPostsResult {
	out := ClaimPostsResult{Results: make([]ClaimItem, 0, len(results))}
	for _, r := range results {
		item := ClaimItem{Code: r.Code, Error: r.ErrorMessage}
		if r.Post != nil {
			p := summarizePost(r.Post)
			item.Post = &p
		}
		if r.OK() {
			out.Succeeded++
		} else {
			out.Failed++
		}
		out.Results = append(out.Results, item)
	}
	return out
}

func summarizePins(results []PinResult) PinPostsResult {
	out := PinPostsResult{Results: make([]PinItem, 0, len(results))}
	for _, r := range results {
		if r.OK() {
			out.Succeeded++
		} else {
			out.Failed++
		}
		out.Results = append(out.Results, PinItem{Code: r.Code, ID: r.ID, Error: r.ErrorMessage})
	}
	return out
}
