package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"checkers/internal/core"

	"github.com/google/go-cmp/cmp"
)

func TestSubmitAction(t *testing.T) {
	var gotBody core.ActionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/games/g1/actions" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(core.ActionResponse{
			Result: core.ActionInfo{Kind: "selected", Position: 9},
			Game:   core.GameResponse{GameID: "g1", Selected: 9, SelectionValid: true},
		})
	}))
	defer srv.Close()

	var trace strings.Builder
	c := New(srv.URL + "/")
	c.Trace = &trace

	resp, err := c.SubmitAction("g1", 9)
	if err != nil {
		t.Fatalf("SubmitAction: %v", err)
	}
	if gotBody.Position != 9 {
		t.Fatalf("server saw position %d", gotBody.Position)
	}
	want := core.ActionInfo{Kind: "selected", Position: 9}
	if diff := cmp.Diff(want, resp.Result); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
	if trace.String() != "[API] POST /api/v1/games/g1/actions\n" {
		t.Fatalf("trace = %q", trace.String())
	}
}

func TestRejectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(core.ErrorResponse{
			Error: "a skip is available, you must skip",
			Code:  core.ErrMustUseCapturingPiece,
		})
	}))
	defer srv.Close()

	_, err := New(srv.URL).SubmitAction("g1", 30)

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *Error", err)
	}
	if apiErr.Status != http.StatusUnprocessableEntity || !apiErr.IsRejection() {
		t.Fatalf("unexpected error %+v", apiErr)
	}
	if err.Error() != "a skip is available, you must skip" {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestNonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "upstream down")
	}))
	defer srv.Close()

	err := New(srv.URL).DeleteGame("g1")

	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Code != core.ErrInternalError || apiErr.IsRejection() {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestWaitGameQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("wait") != "true" || r.URL.Query().Get("version") != "4" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		_ = json.NewEncoder(w).Encode(core.GameResponse{GameID: "g1", Version: 5})
	}))
	defer srv.Close()

	g, err := New(srv.URL).WaitGame("g1", 4)
	if err != nil {
		t.Fatalf("WaitGame: %v", err)
	}
	if g.Version != 5 {
		t.Fatalf("version = %d", g.Version)
	}
}
