package writefreely

// PostParams holds the optional fields of a create or update post request.
// Zero values are left out of the payload. Extra carries fields this package
// does not know about yet; a known field wins over an Extra key of the same name.
type PostParams struct {
	Title     string              // "title"
	Font      string              // "font": sans, serif, wrap, mono, code
	Lang      string              // "lang": ISO 639-1 code
	RTL       *bool               // "rtl"
	Created   string              // "created": RFC 3339 timestamp
	Crosspost []map[string]string // "crosspost": e.g. [{"twitter": "handle"}]

	// Token proves ownership of an anonymous post on update. It switches the
	// request to the anonymous-owner auth policy.
	Token string

	Extra map[string]any
}

func (p *PostParams) payload(body string) map[string]any {
	out := map[string]any{}
	if p != nil {
		for k, v := range p.Extra {
			out[k] = v
		}
		if p.Title != "" {
			out["title"] = p.Title
		}
		if p.Font != "" {
			out["font"] = p.Font
		}
		if p.Lang != "" {
			out["lang"] = p.Lang
		}
		if p.RTL != nil {
			out["rtl"] = *p.RTL
		}
		if p.Created != "" {
			out["created"] = p.Created
		}
		if len(p.Crosspost) > 0 {
			out["crosspost"] = p.Crosspost
		}
		if p.Token != "" {
			out["token"] = p.Token
		}
	}
	out["body"] = body
	return out
}

// ownerToken is the token the payload will carry, so Extra["token"] counts
// when Token is unset.
func (p *PostParams) ownerToken() string {
	if p == nil {
		return ""
	}
	if p.Token != "" {
		return p.Token
	}
	token, _ := p.Extra["token"].(string)
	return token
}

// CollectionParams holds the fields of a collection update. Only set fields are
// sent, so anything left zero stays unchanged on the instance.
type CollectionParams struct {
	Title       string // "title"
	Description string // "description"
	StyleSheet  string // "style_sheet"
	Script      string // "script"
	Visibility  *int   // "visibility": 0 unlisted, 1 public, 2 private, 4 password-protected
	Pass        string // "pass": password for visibility 4
	Mathjax     *bool  // "mathjax"

	Extra map[string]any
}

func (p *CollectionParams) payload() map[string]any {
	out := map[string]any{}
	if p == nil {
		return out
	}
	for k, v := range p.Extra {
		out[k] = v
	}
	if p.Title != "" {
		out["title"] = p.Title
	}
	if p.Description != "" {
		out["description"] = p.Description
	}
	if p.StyleSheet != "" {
		out["style_sheet"] = p.StyleSheet
	}
	if p.Script != "" {
		out["script"] = p.Script
	}
	if p.Visibility != nil {
		out["visibility"] = *p.Visibility
	}
	if p.Pass != "" {
		out["pass"] = p.Pass
	}
	if p.Mathjax != nil {
		out["mathjax"] = *p.Mathjax
	}
	return out
}

// PostRef identifies a post in a claim or move batch. Token is needed for
// posts that are not yet owned by the account.
type PostRef struct {
	ID    string `json:"id"`
	Token string `json:"token,omitempty"`
}

// PinRef identifies a post in a pin or unpin batch. Position orders pinned
// posts in the collection's navigation; zero leaves it to the instance.
type PinRef struct {
	ID       string `json:"id"`
	Position int    `json:"position,omitempty"`
}
