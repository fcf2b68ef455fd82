// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

const (
	usersBody  = `[{"id":1,"name":"Leanne Graham","username":"Bret"},{"id":2,"name":"Ervin Howell","username":"Antonette"}]`
	leanneBody = `{"id":1,"name":"Leanne Graham","username":"Bret"}`
	ervinBody  = `{"id":2,"name":"Ervin Howell","username":"Antonette"}`

	leanneTodosBody = `[{"userId":1,"id":1,"title":"A","completed":true},{"userId":1,"id":2,"title":"B","completed":false}]`
	ervinTodosBody  = `[{"userId":2,"id":21,"title":"C","completed":false}]`
	allTodosBody    = `[{"userId":1,"id":1,"title":"A","completed":true},{"userId":2,"id":21,"title":"C","completed":false},{"userId":1,"id":2,"title":"B","completed":false}]`
)

// testServer starts a remote API serving two employees and points the source
// environment at it. Tests using it cannot run in parallel.
func testServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /users", jsonHandler(usersBody))
	mux.HandleFunc("GET /users/1", jsonHandler(leanneBody))
	mux.HandleFunc("GET /users/2", jsonHandler(ervinBody))
	mux.HandleFunc("GET /todos", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("userId") {
		case "":
			jsonHandler(allTodosBody)(w, r)
		case "1":
			jsonHandler(leanneTodosBody)(w, r)
		case "2":
			jsonHandler(ervinTodosBody)(w, r)
		default:
			jsonHandler(`[]`)(w, r)
		}
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	t.Setenv("TODO_API_ENDPOINT", server.URL)

	return server
}

func jsonHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}
