// Package diarytest provides an in-process stand-in for the remote mydiary
// service, with the same routes, wire fields, and token shape. Tests point
// the API client at Server.URL and can inspect every request that arrived.
package diarytest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/jbsipayung/mydiary-cli/internal/models"
)

type User struct {
	ID       int
	Name     string
	Email    string
	Password string
}

type forcedResponse struct {
	status  int
	message string
}

// Server is a fake mydiary service backed by in-memory state.
type Server struct {
	*httptest.Server

	Secret []byte

	mu       sync.Mutex
	requests []string
	users    map[string]User
	diaries  []models.Diary
	nextUser int
	nextID   int
	forced   []forcedResponse
}

// NewServer starts the fake service and shuts it down with the test.
func NewServer(t *testing.T) *Server {
	t.Helper()

	s := &Server{
		Secret:   []byte("diarytest-secret"),
		users:    make(map[string]User),
		nextUser: 1,
		nextID:   1,
	}

	r := chi.NewRouter()
	r.Use(s.record)

	r.Post("/users", s.handleRegister)
	r.Post("/users/login", s.handleLogin)
	r.Get("/diary/{userID}", s.handleList)
	r.Post("/diary/create", s.handleCreate)
	r.Get("/diary/detail/{diaryID}", s.handleDetail)
	r.Put("/diary/update/{diaryID}", s.handleUpdate)
	r.Delete("/diary/delete/{diaryID}", s.handleDelete)

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// record logs "METHOD /path" and serves any forced failure queued by FailNext.
func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, r.Method+" "+r.URL.Path)
		var forced *forcedResponse
		if len(s.forced) > 0 {
			forced = &s.forced[0]
			s.forced = s.forced[1:]
		}
		s.mu.Unlock()

		if forced != nil {
			writeJSON(w, forced.status, map[string]string{"error": forced.message})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Requests returns every "METHOD /path" seen so far, in order.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

// ResetRequests clears the recorded request log.
func (s *Server) ResetRequests() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
}

// FailNext makes the next request fail with the given status and error body.
// Queue it repeatedly to fail several requests in a row.
func (s *Server) FailNext(status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forced = append(s.forced, forcedResponse{status: status, message: message})
}

// AddUser registers an account directly, bypassing the HTTP surface.
func (s *Server) AddUser(name, email, password string) User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := User{ID: s.nextUser, Name: name, Email: email, Password: password}
	s.nextUser++
	s.users[email] = u
	return u
}

// SeedDiary inserts an entry directly, bypassing the HTTP surface.
func (s *Server) SeedDiary(userID int, title, body string) models.Diary {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := models.Timestamp{Time: time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)}
	d := models.Diary{
		ID:        s.nextID,
		UserID:    userID,
		Title:     title,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.nextID++
	s.diaries = append(s.diaries, d)
	return d
}

// Diaries returns a copy of the current entries.
func (s *Server) Diaries() []models.Diary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Diary(nil), s.diaries...)
}

// Token signs a session token for the user, with the claims the real
// service embeds.
func (s *Server) Token(u User) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id_user": u.ID,
		"name":    u.Name,
		"email":   u.Email,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}).SignedString(s.Secret)
	if err != nil {
		panic(fmt.Sprintf("diarytest: signing token: %v", err))
	}
	return token
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	s.mu.Lock()
	if _, exists := s.users[req.Email]; exists {
		s.mu.Unlock()
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "email already registered"})
		return
	}
	u := User{ID: s.nextUser, Name: req.Name, Email: req.Email, Password: req.Password}
	s.nextUser++
	s.users[req.Email] = u
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]string{"message": "User created successfully!"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	s.mu.Lock()
	u, ok := s.users[req.Email]
	s.mu.Unlock()
	if !ok || u.Password != req.Password {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Login failed: invalid credentials"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": s.Token(u)})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid user_id parameter"})
		return
	}

	s.mu.Lock()
	entries := make([]models.Diary, 0)
	for _, d := range s.diaries {
		if d.UserID == userID {
			entries = append(entries, d)
		}
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID int    `json:"user_id"`
		Title  string `json:"title"`
		Body   string `json:"diary_user"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	s.mu.Lock()
	now := models.Timestamp{Time: time.Now().Truncate(time.Second)}
	s.diaries = append(s.diaries, models.Diary{
		ID:        s.nextID,
		UserID:    req.UserID,
		Title:     req.Title,
		Body:      req.Body,
		CreatedAt: now,
		UpdatedAt: now,
	})
	s.nextID++
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]string{"message": "Diary created successfully!"})
}

// handleDetail answers with a one-element array, or an empty array when the
// id is unknown, exactly like the real service.
func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "diaryID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid id_diary parameter"})
		return
	}

	s.mu.Lock()
	entries := make([]models.Diary, 0, 1)
	for _, d := range s.diaries {
		if d.ID == id {
			entries = append(entries, d)
		}
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "diaryID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid id_diary parameter"})
		return
	}

	var req struct {
		ID     int    `json:"id_diary"`
		UserID int    `json:"user_id"`
		Title  string `json:"title"`
		Body   string `json:"diary_user"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid data"})
		return
	}

	s.mu.Lock()
	for i := range s.diaries {
		if s.diaries[i].ID == id && s.diaries[i].UserID == req.UserID {
			s.diaries[i].Title = req.Title
			s.diaries[i].Body = req.Body
			s.diaries[i].UpdatedAt = models.Timestamp{Time: time.Now().Truncate(time.Second)}
		}
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]string{"message": "Diary updated successfully"})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "diaryID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid id_diary parameter"})
		return
	}

	s.mu.Lock()
	kept := s.diaries[:0]
	for _, d := range s.diaries {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	s.diaries = kept
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, []models.Diary{})
}
