package writefreely

// AuthPolicy says whether a request carries the client's access token.
type AuthPolicy int

const (
	// AuthNone never sends the Authorization header.
	AuthNone AuthPolicy = iota
	// AuthOptional sends the header only when the client holds a token;
	// the instance decides what an anonymous caller may see or do.
	AuthOptional
	// AuthRequired fails locally with AuthenticationRequiredError when the
	// client holds no token.
	AuthRequired
)

func (p AuthPolicy) String() string {
	switch p {
	case AuthNone:
		return "none"
	case AuthOptional:
		return "optional"
	case AuthRequired:
		return "required"
	default:
		return "unknown"
	}
}

// Operation names one row of the auth policy table.
type Operation string

const (
	OpLogin                Operation = "login"
	OpLogout               Operation = "logout"
	OpMe                   Operation = "me"
	OpCreatePost           Operation = "create_post"
	OpCreateCollectionPost Operation = "create_collection_post"
	OpGetPost              Operation = "get_post"
	OpGetCollectionPost    Operation = "get_collection_post"
	OpGetDrafts            Operation = "get_posts"
	OpGetCollectionPosts   Operation = "get_collection_posts"
	OpUpdatePost           Operation = "update_post"
	OpUpdateAnonymousPost  Operation = "update_anonymous_post"
	OpDeletePost           Operation = "delete_post"
	OpDeleteAnonymousPost  Operation = "delete_anonymous_post"
	OpClaimPosts           Operation = "claim_posts"
	OpMovePosts            Operation = "move_posts"
	OpPinPosts             Operation = "pin_posts"
	OpUnpinPosts           Operation = "unpin_posts"
	OpCreateCollection     Operation = "create_collection"
	OpGetCollection        Operation = "get_collection"
	OpGetCollections       Operation = "get_collections"
	OpUpdateCollection     Operation = "update_collection"
	OpDeleteCollection     Operation = "delete_collection"
	OpGetChannels          Operation = "get_channels"
)

// defaultPolicies is the single source of truth for which operations need
// credentials. Per-client overrides go through WithAuthPolicy.
var defaultPolicies = map[Operation]AuthPolicy{
	OpLogin: AuthNone,

	OpLogout: AuthRequired,
	OpMe:     AuthRequired,

	OpCreatePost:           AuthOptional,
	OpCreateCollectionPost: AuthRequired,
	OpGetPost:              AuthOptional,
	OpGetCollectionPost:    AuthOptional,
	OpGetDrafts:            AuthRequired,
	OpGetCollectionPosts:   AuthOptional,
	OpUpdatePost:           AuthRequired,
	OpUpdateAnonymousPost:  AuthOptional,
	OpDeletePost:           AuthRequired,
	OpDeleteAnonymousPost:  AuthOptional,
	OpClaimPosts:           AuthRequired,
	OpMovePosts:            AuthRequired,
	OpPinPosts:             AuthRequired,
	OpUnpinPosts:           AuthRequired,

	OpCreateCollection: AuthRequired,
	OpGetCollection:    AuthOptional,
	OpGetCollections:   AuthRequired,
	OpUpdateCollection: AuthRequired,
	OpDeleteCollection: AuthRequired,

	OpGetChannels: AuthRequired,
}

// DefaultPolicy returns the built-in policy for op. Unknown operations are
// treated as AuthRequired.
func DefaultPolicy(op Operation) AuthPolicy {
	if p, ok := defaultPolicies[op]; ok {
		return p
	}
	return AuthRequired
}
