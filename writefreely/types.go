// Package writefreely provides a client for the WriteFreely / Write.as HTTP API.
// It covers authentication, posts, collections (blogs) and channels.
package writefreely

// Post is a single piece of writing. Slug and Collection are set once the post
// is published into a collection; Token only for posts created anonymously.
type Post struct {
	ID         string      `json:"id"`
	Slug       string      `json:"slug,omitempty"`
	Token      string      `json:"token,omitempty"`
	Appearance string      `json:"appearance,omitempty"` // font: norm, sans, mono, wrap, code
	Language   string      `json:"language,omitempty"`
	RTL        bool        `json:"rtl,omitempty"`
	Created    string      `json:"created,omitempty"`
	Updated    string      `json:"updated,omitempty"`
	Title      string      `json:"title,omitempty"`
	Body       string      `json:"body"`
	Tags       []string    `json:"tags,omitempty"`
	Views      int64       `json:"views,omitempty"`
	Collection *Collection `json:"collection,omitempty"`
}

// Collection is a blog. Alias is its unique handle.
type Collection struct {
	Alias       string `json:"alias"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	StyleSheet  string `json:"style_sheet,omitempty"`
	Public      bool   `json:"public,omitempty"`
	Visibility  int    `json:"visibility,omitempty"`
	Views       int64  `json:"views,omitempty"`
	Email       string `json:"email,omitempty"`
	URL         string `json:"url,omitempty"`
	TotalPosts  int    `json:"total_posts,omitempty"`
	Posts       []Post `json:"posts,omitempty"`
}

// User is the authenticated account.
type User struct {
	Username    string       `json:"username"`
	Email       string       `json:"email,omitempty"`
	Created     string       `json:"created,omitempty"`
	Collections []Collection `json:"collections,omitempty"`
}

// AuthResult is the full payload returned by a successful login.
type AuthResult struct {
	AccessToken string `json:"access_token"`
	User        *User  `json:"user,omitempty"`
}

// Channel is an external publishing integration linked to the account.
type Channel struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url,omitempty"`
	Username string `json:"username,omitempty"`
}

// ClaimResult is one item of a claim or move batch response.
type ClaimResult struct {
	Code         int    `json:"code"`
	Post         *Post  `json:"post,omitempty"`
	ErrorMessage string `json:"error_msg,omitempty"`
}

// PinResult is one item of a pin or unpin batch response.
type PinResult struct {
	Code         int    `json:"code"`
	ID           string `json:"id"`
	ErrorMessage string `json:"error_msg,omitempty"`
}

// OK reports whether the item succeeded.
func (r ClaimResult) OK() bool { return r.Code >= 200 && r.Code < 300 }

// OK reports whether the item succeeded.
func (r PinResult) OK() bool { return r.Code >= 200 && r.Code < 300 }
