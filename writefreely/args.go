package writefreely

// AuthStatusArgs takes no parameters
type AuthStatusArgs struct{}

// AuthStatusResult describes the client's connection without contacting the instance
type AuthStatusResult struct {
	Host          string `json:"host"`
	Authenticated bool   `json:"authenticated"`
	CircuitState  string `json:"circuit_state"`
}

// MeArgs takes no parameters
type MeArgs struct{}

// MeResult is the authenticated user
type MeResult struct {
	Username    string   `json:"username"`
	Email       string   `json:"email,omitempty"`
	Created     string   `json:"created,omitempty"`
	Collections []string `json:"collections,omitempty"` // aliases
}

// PostSummary is a post as returned to MCP clients
type PostSummary struct {
	ID         string   `json:"id"`
	Slug       string   `json:"slug,omitempty"`
	Token      string   `json:"token,omitempty"` // only for anonymous posts; needed to edit or claim them
	Title      string   `json:"title,omitempty"`
	Body       string   `json:"body"`
	Font       string   `json:"font,omitempty"`
	Language   string   `json:"language,omitempty"`
	RTL        bool     `json:"rtl,omitempty"`
	Created    string   `json:"created,omitempty"`
	Updated    string   `json:"updated,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Views      int64    `json:"views,omitempty"`
	Collection string   `json:"collection,omitempty"`
}

// CollectionSummary is a collection as returned to MCP clients
type CollectionSummary struct {
	Alias       string        `json:"alias"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Public      bool          `json:"public,omitempty"`
	Visibility  int           `json:"visibility,omitempty"`
	Views       int64         `json:"views,omitempty"`
	URL         string        `json:"url,omitempty"`
	TotalPosts  int           `json:"total_posts,omitempty"`
	Posts       []PostSummary `json:"posts,omitempty"`
}

// CreatePostArgs contains parameters for publishing a post
type CreatePostArgs struct {
	Body       string `json:"body" jsonschema:"Post content in Markdown"`
	Title      string `json:"title,omitempty" jsonschema:"Post title"`
	Collection string `json:"collection,omitempty" jsonschema:"Alias of the collection to publish into. Omit for a draft (or an anonymous post when not logged in)"`
	Font       string `json:"font,omitempty" jsonschema:"Appearance: sans, serif, wrap, mono or code"`
	Lang       string `json:"lang,omitempty" jsonschema:"ISO 639-1 language code"`
	RTL        *bool  `json:"rtl,omitempty" jsonschema:"Right-to-left text"`
	Created    string `json:"created,omitempty" jsonschema:"Creation time in RFC 3339 format"`

	Crosspost []map[string]string `json:"crosspost,omitempty" jsonschema:"Channels to share the post to once published, each a map of channel ID to account handle"`
}

// PostResult wraps a single post
type PostResult struct {
	Post PostSummary `json:"post"`
}

// GetPostArgs contains parameters for fetching a post
type GetPostArgs struct {
	ID         string `json:"id" jsonschema:"Post ID, or post slug when collection is given"`
	Collection string `json:"collection,omitempty" jsonschema:"Collection alias to look the slug up in"`
}

// ListPostsArgs contains parameters for listing posts
type ListPostsArgs struct {
	Collection string `json:"collection,omitempty" jsonschema:"Collection alias. Omit to list the account's own posts"`
}

// ListPostsResult is a list of posts
type ListPostsResult struct {
	Posts []PostSummary `json:"posts"`
	Count int           `json:"count"`
}

// UpdatePostArgs contains parameters for updating a post
type UpdatePostArgs struct {
	ID    string `json:"id" jsonschema:"Post ID"`
	Body  string `json:"body" jsonschema:"New post content in Markdown"`
	Title string `json:"title,omitempty" jsonschema:"New title"`
	Font  string `json:"font,omitempty" jsonschema:"Appearance: sans, serif, wrap, mono or code"`
	Lang  string `json:"lang,omitempty" jsonschema:"ISO 639-1 language code"`
	RTL   *bool  `json:"rtl,omitempty" jsonschema:"Right-to-left text"`
	Token string `json:"token,omitempty" jsonschema:"Ownership token of an anonymous post"`
}

// DeletePostArgs contains parameters for deleting a post
type DeletePostArgs struct {
	ID    string `json:"id" jsonschema:"Post ID"`
	Token string `json:"token,omitempty" jsonschema:"Ownership token of an anonymous post"`
}

// DeleteResult reports a completed deletion
type DeleteResult struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}

// ClaimPostsArgs contains parameters for claiming anonymous posts
type ClaimPostsArgs struct {
	Posts      []PostRef `json:"posts" jsonschema:"Posts to claim, each with id and (for anonymous posts) token"`
	Collection string    `json:"collection,omitempty" jsonschema:"Also move the claimed posts into this collection"`
}

// MovePostsArgs contains parameters for moving posts into a collection
type MovePostsArgs struct {
	Collection string    `json:"collection" jsonschema:"Target collection alias"`
	Posts      []PostRef `json:"posts" jsonschema:"Posts to move, each with id and optional token"`
}

// ClaimItem is the outcome for one post of a claim or move batch
type ClaimItem struct {
	Code  int          `json:"code"`
	Post  *PostSummary `json:"post,omitempty"`
	Error string       `json:"error,omitempty"`
}

// ClaimPostsResult lists per-post outcomes
type ClaimPostsResult struct {
	Results   []ClaimItem `json:"results"`
	Succeeded int         `json:"succeeded"`
	Failed    int         `json:"failed"`
}

// PinPostsArgs contains parameters for pinning posts
type PinPostsArgs struct {
	Collection string   `json:"collection" jsonschema:"Collection alias"`
	Posts      []PinRef `json:"posts" jsonschema:"Posts to pin, each with id and optional position"`
}

// UnpinPostsArgs contains parameters for unpinning posts
type UnpinPostsArgs struct {
	Collection string   `json:"collection" jsonschema:"Collection alias"`
	IDs        []string `json:"ids" jsonschema:"IDs of the posts to unpin"`
}

// PinItem is the outcome for one post of a pin or unpin batch
type PinItem struct {
	Code  int    `json:"code"`
	ID    string `json:"id"`
	Error string `json:"error,omitempty"`
}

// PinPostsResult lists per-post outcomes
type PinPostsResult struct {
	Results   []PinItem `json:"results"`
	Succeeded int       `json:"succeeded"`
	Failed    int       `json:"failed"`
}

// CreateCollectionArgs contains parameters for creating a collection
type CreateCollectionArgs struct {
	Alias string `json:"alias,omitempty" jsonschema:"URL handle of the blog. Derived from title when omitted"`
	Title string `json:"title,omitempty" jsonschema:"Blog title"`
}

// CollectionResult wraps a single collection
type CollectionResult struct {
	Collection CollectionSummary `json:"collection"`
}

// GetCollectionArgs contains parameters for fetching a collection
type GetCollectionArgs struct {
	Alias string `json:"alias" jsonschema:"Collection alias"`
}

// ListCollectionsArgs takes no parameters
type ListCollectionsArgs struct{}

// ListCollectionsResult is the account's collections
type ListCollectionsResult struct {
	Collections []CollectionSummary `json:"collections"`
	Count       int                 `json:"count"`
}

// UpdateCollectionArgs contains parameters for updating a collection
type UpdateCollectionArgs struct {
	Alias       string `json:"alias" jsonschema:"Collection alias"`
	Title       string `json:"title,omitempty" jsonschema:"New title"`
	Description string `json:"description,omitempty" jsonschema:"New description"`
	StyleSheet  string `json:"style_sheet,omitempty" jsonschema:"Custom CSS"`
	Script      string `json:"script,omitempty" jsonschema:"Custom JavaScript"`
	Visibility  *int   `json:"visibility,omitempty" jsonschema:"0 unlisted, 1 public, 2 private, 4 password-protected"`
	Pass        string `json:"pass,omitempty" jsonschema:"Password when visibility is 4"`
	Mathjax     *bool  `json:"mathjax,omitempty" jsonschema:"Enable MathJax rendering"`
}

// DeleteCollectionArgs contains parameters for deleting a collection
type DeleteCollectionArgs struct {
	Alias string `json:"alias" jsonschema:"Collection alias"`
}

// ListChannelsArgs takes no parameters
type ListChannelsArgs struct{}

// ListChannelsResult is the account's linked channels
type ListChannelsResult struct {
	Channels []Channel `json:"channels"`
	Count    int       `json:"count"`
}

// LogoutArgs takes no parameters
type LogoutArgs struct{}

// LogoutResult reports a completed logout
type LogoutResult struct {
	LoggedOut bool `json:"logged_out"`
}
