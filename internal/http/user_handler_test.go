package http

import (
	"net/http"
	"testing"
)

func TestUserRegister(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPost, "/api/users", `{
		"username": "ana",
		"password": "supersecret",
		"email": "ana@example.com"
	}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var user struct {
		ID           string `json:"id"`
		Username     string `json:"username"`
		Email        string `json:"email"`
		PasswordHash string `json:"password_hash"`
	}
	decodeBody(t, w, &user)
	if user.ID == "" || user.Username != "ana" {
		t.Fatalf("unexpected user: %+v", user)
	}
	// El hash nunca sale en la respuesta.
	if user.PasswordHash != "" {
		t.Fatalf("password hash leaked in response")
	}
}

func TestUserRegisterDuplicate(t *testing.T) {
	env := newTestEnv()

	body := `{"username": "ana", "password": "supersecret", "email": "ana@example.com"}`
	if w := env.do(t, http.MethodPost, "/api/users", body); w.Code != http.StatusCreated {
		t.Fatalf("first register: expected 201, got %d", w.Code)
	}
	if w := env.do(t, http.MethodPost, "/api/users", body); w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUserRegisterValidation(t *testing.T) {
	env := newTestEnv()

	cases := []string{
		`{"password": "supersecret", "email": "a@b.com"}`,
		`{"username": "ana", "email": "a@b.com"}`,
		`{"username": "ana", "password": "short", "email": "a@b.com"}`,
		`{"username": "ana", "password": "supersecret", "email": "not-an-email"}`,
	}
	for i, body := range cases {
		if w := env.do(t, http.MethodPost, "/api/users", body); w.Code != http.StatusBadRequest {
			t.Fatalf("case %d: expected 400, got %d: %s", i, w.Code, w.Body.String())
		}
	}
}

func TestUserLogin(t *testing.T) {
	env := newTestEnv()

	if w := env.do(t, http.MethodPost, "/api/users", `{"username": "ana", "password": "supersecret", "email": "ana@example.com"}`); w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", w.Code)
	}

	w := env.do(t, http.MethodPost, "/api/users/login", `{"username": "ana", "password": "supersecret"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		User struct {
			Username string `json:"username"`
		} `json:"user"`
		Token string `json:"token"`
	}
	decodeBody(t, w, &resp)
	if resp.User.Username != "ana" || resp.Token == "" {
		t.Fatalf("unexpected login response: %+v", resp)
	}

	// El token emitido es valido para el middleware.
	claims, err := env.jwtSvc.ParseToken(resp.Token)
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.Username != "ana" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestUserLoginInvalidCredentials(t *testing.T) {
	env := newTestEnv()

	if w := env.do(t, http.MethodPost, "/api/users", `{"username": "ana", "password": "supersecret", "email": "ana@example.com"}`); w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", w.Code)
	}

	if w := env.do(t, http.MethodPost, "/api/users/login", `{"username": "ana", "password": "wrongpass"}`); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d: %s", w.Code, w.Body.String())
	}
	if w := env.do(t, http.MethodPost, "/api/users/login", `{"username": "nobody", "password": "supersecret"}`); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown user, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAuthenticatedChatOwnership(t *testing.T) {
	env := newTestEnv()

	if w := env.do(t, http.MethodPost, "/api/users", `{"username": "ana", "password": "supersecret", "email": "ana@example.com"}`); w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", w.Code)
	}
	w := env.do(t, http.MethodPost, "/api/users/login", `{"username": "ana", "password": "supersecret"}`)
	var login struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
		Token string `json:"token"`
	}
	decodeBody(t, w, &login)

	w = env.doAuth(t, http.MethodPost, "/api/chat", `{"title": "My trip"}`, login.Token)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var chat chatBody
	decodeBody(t, w, &chat)
	if chat.UserID == nil || *chat.UserID != login.User.ID {
		t.Fatalf("expected chat owned by %s, got %+v", login.User.ID, chat.UserID)
	}

	// Un token invalido no bloquea la peticion: el auth es opcional.
	w = env.doAuth(t, http.MethodPost, "/api/chat", `{"title": "Anon trip"}`, "garbage-token")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 with bad token, got %d: %s", w.Code, w.Body.String())
	}
	chat = chatBody{}
	decodeBody(t, w, &chat)
	if chat.UserID != nil {
		t.Fatalf("expected anonymous chat, got owner %v", *chat.UserID)
	}
}
