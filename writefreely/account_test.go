package writefreely

import (
	"context"
	"net/http"
	"testing"
)

func TestLogin(t *testing.T) {
	client, fake := newTestClient(t, func(w http.ResponseWriter, r *http.Request, _ []byte) {
		writeData(w, http.StatusOK, map[string]any{
			"access_token": "00000000-0000-0000-0000-000000000000",
			"user":         map[string]any{"username": "matt", "email": "matt@example.com"},
		})
	})

	result, err := client.Login(context.Background(), "matt", "12345")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	req := fake.last(t)
	if req.Method != http.MethodPost || req.Path != "/api/auth/login" {
		t.Errorf("request = %s %s", req.Method, req.Path)
	}
	if req.Auth != "" {
		t.Errorf("login must not send Authorization, got %q", req.Auth)
	}
	var body map[string]string
	decodeBody(t, req.Body, &body)
	if body["alias"] != "matt" || body["pass"] != "12345" {
		t.Errorf("login body = %v", body)
	}

	if result.AccessToken != "00000000-0000-0000-0000-000000000000" {
		t.Errorf("AccessToken = %q", result.AccessToken)
	}
	if result.User == nil || result.User.Username != "matt" {
		t.Errorf("User = %+v", result.User)
	}
	if client.Token() != result.AccessToken {
		t.Error("client token should be the login token")
	}
}

func TestLoginSendsNoTokenEvenWhenAuthenticated(t *testing.T) {
	client, fake := newTestClient(t, func(w http.ResponseWriter, r *http.Request, _ []byte) {
		writeData(w, http.StatusOK, map[string]any{"access_token": "new"})
	}, WithToken("old"))

	if _, err := client.Login(context.Background(), "u", "p"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if fake.last(t).Auth != "" {
		t.Error("login must never carry a token")
	}
	if client.Token() != "new" {
		t.Errorf("Token() = %q, want new", client.Token())
	}
}

func TestLoginRejected(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request, _ []byte) {
		writeError(w, http.StatusUnauthorized, "Incorrect password.")
	})

	_, err := client.Login(context.Background(), "matt", "wrong")
	if !IsHTTPStatus(err, http.StatusUnauthorized) {
		t.Fatalf("expected HTTP 401, got %v", err)
	}
	if client.IsAuthenticated() {
		t.Error("failed login must not set a token")
	}
}

func TestLoginMissingToken(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request, _ []byte) {
		writeData(w, http.StatusOK, map[string]any{"user": map[string]any{"username": "matt"}})
	})

	_, err := client.Login(context.Background(), "matt", "12345")
	if !IsMalformed(err) {
		t.Fatalf("expected MalformedResponseError, got %v", err)
	}
	if client.IsAuthenticated() {
		t.Error("client should stay anonymous")
	}
}

func TestLogout(t *testing.T) {
	client, fake := newTestClient(t, nil, WithToken("t1"))

	if err := client.Logout(context.Background()); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}

	req := fake.last(t)
	if req.Method != http.MethodDelete || req.Path != "/api/auth/me" {
		t.Errorf("request = %s %s", req.Method, req.Path)
	}
	if req.Auth != "Token t1" {
		t.Errorf("Authorization = %q", req.Auth)
	}
	if client.IsAuthenticated() {
		t.Error("token should be cleared after logout")
	}
}

func TestLogoutFailureKeepsToken(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request, _ []byte) {
		writeError(w, http.StatusInternalServerError, "boom")
	}, WithToken("t1"))

	err := client.Logout(context.Background())
	if !IsHTTPStatus(err, http.StatusInternalServerError) {
		t.Fatalf("expected HTTP 500, got %v", err)
	}
	if client.Token() != "t1" {
		t.Errorf("token should be kept on failure, got %q", client.Token())
	}
}

func TestLogoutAnonymous(t *testing.T) {
	client, fake := newTestClient(t, nil)

	if err := client.Logout(context.Background()); !IsAuthRequired(err) {
		t.Fatalf("expected AuthenticationRequiredError, got %v", err)
	}
	if fake.count() != 0 {
		t.Error("no request should be sent")
	}
}

func TestMe(t *testing.T) {
	client, fake := newTestClient(t, func(w http.ResponseWriter, r *http.Request, _ []byte) {
		writeData(w, http.StatusOK, map[string]any{
			"username": "matt",
			"created":  "2015-02-03T02:41:19Z",
		})
	}, WithToken("t1"))

	user, err := client.Me(context.Background())
	if err != nil {
		t.Fatalf("Me() error = %v", err)
	}
	if user.Username != "matt" {
		t.Errorf("Username = %q", user.Username)
	}
	if fake.last(t).Path != "/api/me" {
		t.Errorf("path = %q", fake.last(t).Path)
	}
}

func TestMeEmptyBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request, _ []byte) {
		w.WriteHeader(http.StatusOK)
	}, WithToken("t1"))

	if _, err := client.Me(context.Background()); !IsMalformed(err) {
		t.Errorf("expected MalformedResponseError for an empty body, got %v", err)
	}
}

func TestNullDataIsMalformed(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request, _ []byte) {
		writeData(w, http.StatusOK, nil)
	}, WithToken("t1"))
	ctx := context.Background()

	calls := map[string]func() error{
		"Me": func() error {
			_, err := client.Me(ctx)
			return err
		},
		"GetPost": func() error {
			_, err := client.GetPost(ctx, "abc", "")
			return err
		},
		"CreatePost": func() error {
			_, err := client.CreatePost(ctx, "hello", "", nil)
			return err
		},
		"UpdatePost": func() error {
			_, err := client.UpdatePost(ctx, "abc", "hello", nil)
			return err
		},
		"GetCollection": func() error {
			_, err := client.GetCollection(ctx, "blog")
			return err
		},
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			if err := call(); !IsMalformed(err) {
				t.Errorf("expected MalformedResponseError for null data, got %v", err)
			}
		})
	}
}

func TestNullListIsEmpty(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request, _ []byte) {
		writeData(w, http.StatusOK, nil)
	}, WithToken("t1"))

	colls, err := client.GetCollections(context.Background())
	if err != nil {
		t.Fatalf("GetCollections() error = %v", err)
	}
	if len(colls) != 0 {
		t.Errorf("expected no collections, got %d", len(colls))
	}
}
