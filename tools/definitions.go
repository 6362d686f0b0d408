package tools

// AllTools contains all tool specifications for the WriteFreely MCP server.
// Tools are organized by category for easier maintenance.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	// ==========================================================================
	// ACCOUNT TOOLS
	// ==========================================================================
	{
		Name:     "writefreely_auth_status",
		Method:   "AuthStatus",
		Title:    "Connection Status",
		Category: "account",
		Description: `Show which WriteFreely instance the server talks to and whether it is logged in.

USE WHEN: User asks "am I logged in", "which blog server is this", or a write tool failed with an authentication error.

PARAMETERS: none

RETURNS: Instance URL, authenticated flag, and circuit breaker state. Makes no request to the instance.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "writefreely_me",
		Method:   "Me",
		Title:    "Current User",
		Category: "account",
		Description: `Get the account behind the configured access token.

USE WHEN: User asks "who am I on write.as", "what is my username", "which blogs do I have".

PARAMETERS: none

RETURNS: Username, email (if set), creation date, and collection aliases.

NOTE: Requires authentication.`,
		RequiresAuth: true,
		ReadOnly:     true,
		Idempotent:   true,
		OpenWorld:    true,
	},
	{
		Name:     "writefreely_logout",
		Method:   "Logout",
		Title:    "Log Out",
		Category: "account",
		Description: `Invalidate the current access token on the instance.

USE WHEN: User says "log out", "revoke my token", "end the session".

PARAMETERS: none

RETURNS: Confirmation. After success every tool that needs authentication fails until the server is restarted with new credentials.

NOTE: Requires authentication. On failure the token is kept.`,
		RequiresAuth: true,
		Destructive:  true,
		OpenWorld:    true,
	},
	{
		Name:     "writefreely_list_channels",
		Method:   "ListChannels",
		Title:    "List Channels",
		Category: "account",
		Description: `List external publishing integrations linked to the account (e.g. Mastodon, Twitter).

USE WHEN: User asks "where can I cross-post", "which accounts are connected".

PARAMETERS: none

RETURNS: Channel id, name, username, and instance URL for self-hosted services.

NOTE: Requires authentication.`,
		RequiresAuth: true,
		ReadOnly:     true,
		Idempotent:   true,
		OpenWorld:    true,
	},

	// ==========================================================================
	// POST TOOLS
	// ==========================================================================
	{
		Name:     "writefreely_create_post",
		Method:   "CreatePost",
		Title:    "Create Post",
		Category: "posts",
		Description: `Publish a new post, either into a blog or as a standalone draft.

USE WHEN: User says "write a post", "publish this", "post to my blog", "create a draft".

NOT FOR: Changing an existing post (use writefreely_update_post).

PARAMETERS:
- body: Markdown content (required)
- title: Post title (optional)
- collection: Blog alias to publish into (optional; requires authentication)
- font, lang, rtl, created: Presentation and metadata (optional)

RETURNS: The created post. Anonymous posts include a token; keep it to edit, delete or claim the post later.`,
		OpenWorld: true,
	},
	{
		Name:     "writefreely_get_post",
		Method:   "GetPost",
		Title:    "Get Post",
		Category: "posts",
		Description: `Fetch a single post.

USE WHEN: User asks "show me post X", "what does my post about Y say".

NOT FOR: Listing many posts (use writefreely_list_posts).

PARAMETERS:
- id: Post ID, or the slug when collection is given (required)
- collection: Blog alias for slug lookup (optional)

RETURNS: Post content and metadata.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "writefreely_list_posts",
		Method:   "ListPosts",
		Title:    "List Posts",
		Category: "posts",
		Description: `List posts of the account, or the published posts of a blog.

USE WHEN: User asks "what have I written", "list my drafts", "show posts on blog X".

PARAMETERS:
- collection: Blog alias (optional). Without it, lists the account's own posts and requires authentication.

RETURNS: Posts with content and metadata, plus a count.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "writefreely_update_post",
		Method:   "UpdatePost",
		Title:    "Update Post",
		Category: "posts",
		Description: `Replace the content of an existing post.

USE WHEN: User says "edit my post", "fix the typo in post X", "change the title".

NOT FOR: Creating new posts (use writefreely_create_post).

PARAMETERS:
- id: Post ID (required)
- body: New Markdown content (required; replaces the old body)
- title, font, lang, rtl: Optional changes
- token: Ownership token of an anonymous post (optional; replaces authentication)

RETURNS: The updated post.`,
		RequiresAuth: true,
		Idempotent:   true,
		OpenWorld:    true,
	},
	{
		Name:     "writefreely_delete_post",
		Method:   "DeletePost",
		Title:    "Delete Post",
		Category: "posts",
		Description: `Permanently delete a post.

USE WHEN: User says "delete post X", "remove that draft".

PARAMETERS:
- id: Post ID (required)
- token: Ownership token of an anonymous post (optional; replaces authentication)

RETURNS: Confirmation.

WARNING: Cannot be undone.`,
		RequiresAuth: true,
		Destructive:  true,
		Idempotent:   true,
		OpenWorld:    true,
	},
	{
		Name:     "writefreely_claim_posts",
		Method:   "ClaimPosts",
		Title:    "Claim Posts",
		Category: "posts",
		Description: `Attach anonymous posts to the logged-in account.

USE WHEN: User says "add my anonymous posts to my account", "claim these posts".

PARAMETERS:
- posts: List of {id, token} (required)
- collection: Also move the posts into this blog (optional)

RETURNS: Per-post outcome codes with success and failure counts.

NOTE: Requires authentication.`,
		RequiresAuth: true,
		OpenWorld:    true,
	},
	{
		Name:     "writefreely_move_posts",
		Method:   "MovePosts",
		Title:    "Move Posts",
		Category: "posts",
		Description: `Publish existing posts into a blog.

USE WHEN: User says "move these drafts to my blog", "publish post X on blog Y".

PARAMETERS:
- collection: Target blog alias (required)
- posts: List of {id, token}; token only for posts not yet owned (required)

RETURNS: Per-post outcome codes with success and failure counts.

NOTE: Requires authentication.`,
		RequiresAuth: true,
		OpenWorld:    true,
	},
	{
		Name:     "writefreely_pin_posts",
		Method:   "PinPosts",
		Title:    "Pin Posts",
		Category: "posts",
		Description: `Pin posts to a blog's navigation.

USE WHEN: User says "pin my about page", "add post X to the blog menu".

NOT FOR: Removing pins (use writefreely_unpin_posts).

PARAMETERS:
- collection: Blog alias (required)
- posts: List of {id, position}; position is optional (required)

RETURNS: Per-post outcome codes.

NOTE: Requires authentication.`,
		RequiresAuth: true,
		Idempotent:   true,
		OpenWorld:    true,
	},
	{
		Name:     "writefreely_unpin_posts",
		Method:   "UnpinPosts",
		Title:    "Unpin Posts",
		Category: "posts",
		Description: `Remove pinned posts from a blog's navigation. The posts themselves stay.

USE WHEN: User says "unpin post X", "take that page out of the menu".

PARAMETERS:
- collection: Blog alias (required)
- ids: Post IDs (required)

RETURNS: Per-post outcome codes.

NOTE: Requires authentication.`,
		RequiresAuth: true,
		Idempotent:   true,
		OpenWorld:    true,
	},

	// ==========================================================================
	// COLLECTION TOOLS
	// ==========================================================================
	{
		Name:     "writefreely_create_collection",
		Method:   "CreateCollection",
		Title:    "Create Blog",
		Category: "collections",
		Description: `Create a new blog (collection).

USE WHEN: User says "start a new blog", "create a collection called X".

PARAMETERS:
- alias: URL handle (optional if title is given)
- title: Blog title (optional if alias is given)

RETURNS: The created collection.

NOTE: Requires authentication. Some instances limit the number of blogs per account.`,
		RequiresAuth: true,
		OpenWorld:    true,
	},
	{
		Name:     "writefreely_get_collection",
		Method:   "GetCollection",
		Title:    "Get Blog",
		Category: "collections",
		Description: `Fetch a blog's settings and statistics.

USE WHEN: User asks "how many posts are on blog X", "what is blog X about".

NOT FOR: Listing a blog's posts (use writefreely_list_posts with collection).

PARAMETERS:
- alias: Blog alias (required)

RETURNS: Title, description, visibility, views, URL, and post count.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "writefreely_list_collections",
		Method:   "ListCollections",
		Title:    "List Blogs",
		Category: "collections",
		Description: `List the account's blogs.

USE WHEN: User asks "what blogs do I have", "list my collections".

PARAMETERS: none

RETURNS: Collections with title, alias, and visibility.

NOTE: Requires authentication.`,
		RequiresAuth: true,
		ReadOnly:     true,
		Idempotent:   true,
		OpenWorld:    true,
	},
	{
		Name:     "writefreely_update_collection",
		Method:   "UpdateCollection",
		Title:    "Update Blog",
		Category: "collections",
		Description: `Change a blog's settings. Only the fields given are changed.

USE WHEN: User says "rename my blog", "make blog X private", "change the description".

PARAMETERS:
- alias: Blog alias (required)
- title, description, style_sheet, script: Optional text changes
- visibility: 0 unlisted, 1 public, 2 private, 4 password-protected (optional)
- pass: Password for visibility 4 (optional)
- mathjax: Enable MathJax (optional)

RETURNS: The updated collection.

NOTE: Requires authentication.`,
		RequiresAuth: true,
		Idempotent:   true,
		OpenWorld:    true,
	},
	{
		Name:     "writefreely_delete_collection",
		Method:   "DeleteCollection",
		Title:    "Delete Blog",
		Category: "collections",
		Description: `Permanently delete a blog. Its posts become drafts of the account.

USE WHEN: User says "delete blog X", "remove that collection".

PARAMETERS:
- alias: Blog alias (required)

RETURNS: Confirmation.

WARNING: Cannot be undone. Requires authentication.`,
		RequiresAuth: true,
		Destructive:  true,
		Idempotent:   true,
		OpenWorld:    true,
	},
}
