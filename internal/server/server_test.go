package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/example/engpractice/internal/database"
	"github.com/example/engpractice/internal/exercise"
)

func setupServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("PRACTICE_DB_DRIVER", "sqlite3")
	t.Setenv("PRACTICE_DB_DSN", ":memory:")
	if err := database.Connect(); err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	registry := exercise.DefaultRegistry(database.NewWordListRepository())
	return New(registry, database.NewStatsRepository())
}

func doJSON(t *testing.T, s *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func TestListExercises(t *testing.T) {
	s := setupServer(t)

	w := doJSON(t, s, http.MethodGet, "/api/exercises", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var views []exerciseView
	if err := json.Unmarshal(w.Body.Bytes(), &views); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(views) != 8 {
		t.Errorf("got %d exercises, want 8", len(views))
	}
	if views[0].ID != "avsan" {
		t.Errorf("first exercise = %s, want avsan", views[0].ID)
	}
	for _, v := range views {
		if v.Explanation == "" {
			t.Errorf("%s has no explanation", v.ID)
		}
	}
}

func TestQuizSetLifecycle(t *testing.T) {
	s := setupServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/sets", createSetRequest{Exercise: "idioms", Count: 5})
	if w.Code != http.StatusOK {
		t.Fatalf("create set: status = %d, body = %s", w.Code, w.Body.String())
	}

	var set setView
	if err := json.Unmarshal(w.Body.Bytes(), &set); err != nil {
		t.Fatalf("unmarshal set: %v", err)
	}
	if set.ID == "" || len(set.Items) != 5 {
		t.Fatalf("set = %+v", set)
	}
	for _, item := range set.Items {
		if len(item.Options) != 4 {
			t.Errorf("item %d has %d options, want 4", item.Number, len(item.Options))
		}
	}

	// The answer key reveals the correct option texts.
	w = doJSON(t, s, http.MethodGet, "/api/sets/"+set.ID+"/answers", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("answers: status = %d", w.Code)
	}
	var key struct {
		Answers []string `json:"answers"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &key); err != nil {
		t.Fatalf("unmarshal answers: %v", err)
	}
	if len(key.Answers) != 5 {
		t.Fatalf("answer key has %d entries, want 5", len(key.Answers))
	}

	// Submitting the answer key itself scores full marks.
	w = doJSON(t, s, http.MethodPost, "/api/sets/"+set.ID+"/check", checkRequest{Answers: key.Answers})
	if w.Code != http.StatusOK {
		t.Fatalf("check: status = %d, body = %s", w.Code, w.Body.String())
	}
	var score struct {
		Attempted  int `json:"attempted"`
		Correct    int `json:"correct"`
		CorrectNow int `json:"correctNow"`
		Total      int `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &score); err != nil {
		t.Fatalf("unmarshal score: %v", err)
	}
	if score.Correct != 5 || score.Total != 5 {
		t.Errorf("score = %+v, want 5/5", score)
	}

	// A second identical check must not award new credit.
	w = doJSON(t, s, http.MethodPost, "/api/sets/"+set.ID+"/check", checkRequest{Answers: key.Answers})
	if err := json.Unmarshal(w.Body.Bytes(), &score); err != nil {
		t.Fatalf("unmarshal score: %v", err)
	}
	if score.Correct != 0 || score.CorrectNow != 5 {
		t.Errorf("repeat score = %+v, want correct 0, correctNow 5", score)
	}

	// Both checks landed in the statistics.
	w = doJSON(t, s, http.MethodGet, "/api/stats", nil)
	var stats map[string]struct {
		TotalAttempts int `json:"totalAttempts"`
		TotalCorrect  int `json:"totalCorrect"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("unmarshal stats: %v", err)
	}
	if stats["idioms"].TotalAttempts != 10 || stats["idioms"].TotalCorrect != 5 {
		t.Errorf("stats = %+v", stats["idioms"])
	}
}

func TestFeedbackCollectsMistakes(t *testing.T) {
	s := setupServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/sets", createSetRequest{Exercise: "timeprep", Count: 1})
	var set setView
	if err := json.Unmarshal(w.Body.Bytes(), &set); err != nil {
		t.Fatalf("unmarshal set: %v", err)
	}

	// "nowhere" matches no preposition, so the item is wrong for sure.
	w = doJSON(t, s, http.MethodPost, "/api/sets/"+set.ID+"/check", checkRequest{Answers: []string{"nowhere"}})
	if w.Code != http.StatusOK {
		t.Fatalf("check: status = %d", w.Code)
	}

	w = doJSON(t, s, http.MethodGet, "/api/feedback", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("feedback: status = %d", w.Code)
	}
	var summary exercise.FeedbackSummary
	if err := json.Unmarshal(w.Body.Bytes(), &summary); err != nil {
		t.Fatalf("unmarshal feedback: %v", err)
	}
	if summary.Checked != 1 || summary.WrongByExercise["timeprep"] != 1 {
		t.Errorf("summary = %+v", summary)
	}
	if len(summary.Recent) != 1 || summary.Recent[0].Given != "nowhere" {
		t.Errorf("recent = %+v", summary.Recent)
	}
}

func TestSessionEviction(t *testing.T) {
	s := setupServer(t)

	var firstID string
	for i := 0; i < maxSessions+20; i++ {
		w := doJSON(t, s, http.MethodPost, "/api/sets", createSetRequest{Exercise: "timeprep", Count: 1})
		if w.Code != http.StatusOK {
			t.Fatalf("create %d: status = %d", i, w.Code)
		}
		if i == 0 {
			var set setView
			if err := json.Unmarshal(w.Body.Bytes(), &set); err != nil {
				t.Fatalf("unmarshal set: %v", err)
			}
			firstID = set.ID
		}
	}

	s.mu.Lock()
	count := len(s.sessions)
	_, firstAlive := s.sessions[firstID]
	s.mu.Unlock()

	if count != maxSessions {
		t.Errorf("sessions held = %d, want %d", count, maxSessions)
	}
	if firstAlive {
		t.Error("oldest session was not evicted")
	}
}

func TestCreateSetUnknownExercise(t *testing.T) {
	s := setupServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/sets", createSetRequest{Exercise: "nope"})
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestWordEndpoints(t *testing.T) {
	s := setupServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/words", gin.H{"words": []string{"necessary", "Receive", "necessary"}})
	if w.Code != http.StatusOK {
		t.Fatalf("add words: status = %d, body = %s", w.Code, w.Body.String())
	}
	var added struct {
		Added int `json:"added"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &added); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if added.Added != 2 {
		t.Errorf("added = %d, want 2", added.Added)
	}

	w = doJSON(t, s, http.MethodDelete, "/api/words/receive", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete word: status = %d", w.Code)
	}

	w = doJSON(t, s, http.MethodGet, "/api/words", nil)
	var words []struct {
		Word string `json:"word"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &words); err != nil {
		t.Fatalf("unmarshal words: %v", err)
	}
	if len(words) != 1 || words[0].Word != "necessary" {
		t.Errorf("words = %+v", words)
	}
}
