package server

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/example/engpractice/internal/exercise"
	"github.com/example/engpractice/pkg/models"
)

type exerciseView struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Instructions string `json:"instructions"`
	Explanation  string `json:"explanation"`
}

type itemView struct {
	Number  int      `json:"number"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options,omitempty"`
	Hint    string   `json:"hint,omitempty"`
}

type setView struct {
	ID           string     `json:"id"`
	Exercise     string     `json:"exercise"`
	Title        string     `json:"title"`
	Instructions string     `json:"instructions"`
	Items        []itemView `json:"items"`
}

type createSetRequest struct {
	Exercise string `json:"exercise" binding:"required"`
	Count    int    `json:"count"`
}

type checkRequest struct {
	Answers []string `json:"answers" binding:"required"`
}

// GET /api/exercises
func (s *Server) listExercises(c *gin.Context) {
	modules := s.registry.All()
	views := make([]exerciseView, 0, len(modules))
	for _, m := range modules {
		views = append(views, exerciseView{
			ID:           m.ID(),
			Title:        m.Title(),
			Instructions: m.Instructions(),
			Explanation:  m.Explanation(),
		})
	}
	c.JSON(http.StatusOK, views)
}

// POST /api/sets
func (s *Server) createSet(c *gin.Context) {
	var req createSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	module, ok := s.registry.Get(req.Exercise)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown exercise: " + req.Exercise})
		return
	}

	s.mu.Lock()
	session := exercise.NewSession(module, s.rng, req.Count)
	if len(s.sessions) >= maxSessions {
		s.evictOldestLocked()
	}
	s.sessions[session.Set.ID] = &activeSession{session: session, started: time.Now()}
	s.mu.Unlock()

	c.JSON(http.StatusOK, newSetView(session, module))
}

func newSetView(session *exercise.Session, module exercise.Module) setView {
	view := setView{
		ID:           session.Set.ID,
		Exercise:     session.Set.Exercise,
		Title:        module.Title(),
		Instructions: module.Instructions(),
		Items:        make([]itemView, 0, len(session.Set.Items)),
	}
	for i, item := range session.Set.Items {
		view.Items = append(view.Items, itemView{
			Number:  i + 1,
			Prompt:  item.Prompt,
			Options: item.Options,
			Hint:    item.Hint,
		})
	}
	return view
}

// POST /api/sets/:id/check
func (s *Server) checkSet(c *gin.Context) {
	var req checkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	active, ok := s.sessions[c.Param("id")]
	s.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown set"})
		return
	}

	result := active.session.Check(req.Answers)
	s.mistakes.Record(result.Attempted, active.session.Mistakes(req.Answers, result))
	s.recordResult(active, result)

	c.JSON(http.StatusOK, gin.H{
		"perItemCorrect": result.PerItemCorrect,
		"attempted":      result.Attempted,
		"correct":        result.Correct,
		"correctNow":     result.CorrectNow,
		"total":          result.Total,
	})
}

func (s *Server) recordResult(active *activeSession, result models.ScoreResult) {
	// A check with nothing attempted leaves no trace
	if result.Attempted == 0 {
		return
	}
	exerciseID := active.session.Set.Exercise
	if err := s.stats.Record(exerciseID, result.Attempted, result.Correct); err != nil {
		log.Printf("Error recording statistics for %s: %v", exerciseID, err)
	}

	record := &models.ResultRecord{
		ExerciseID: exerciseID,
		TotalItems: result.Total,
		Attempted:  result.Attempted,
		Correct:    result.CorrectNow,
		Duration:   int(time.Since(active.started).Seconds()),
	}
	if err := s.results.Create(record); err != nil {
		log.Printf("Error recording result for %s: %v", exerciseID, err)
	}
}

// GET /api/sets/:id/answers
func (s *Server) setAnswers(c *gin.Context) {
	s.mu.Lock()
	active, ok := s.sessions[c.Param("id")]
	s.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown set"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      active.session.Set.ID,
		"answers": active.session.Answers(),
	})
}

// evictOldestLocked drops the longest-lived session. Callers hold s.mu.
func (s *Server) evictOldestLocked() {
	var oldestID string
	var oldestStart time.Time
	for id, a := range s.sessions {
		if oldestID == "" || a.started.Before(oldestStart) {
			oldestID = id
			oldestStart = a.started
		}
	}
	if oldestID != "" {
		delete(s.sessions, oldestID)
	}
}

// GET /api/feedback
func (s *Server) getFeedback(c *gin.Context) {
	c.JSON(http.StatusOK, s.mistakes.Summary())
}

// GET /api/stats
func (s *Server) getStats(c *gin.Context) {
	all, err := s.stats.All()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, all)
}

// DELETE /api/stats
func (s *Server) resetAllStats(c *gin.Context) {
	if err := s.stats.ResetAll(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "statistics reset"})
}

// DELETE /api/stats/:exercise
func (s *Server) resetStats(c *gin.Context) {
	exerciseID := c.Param("exercise")
	if _, ok := s.registry.Get(exerciseID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown exercise: " + exerciseID})
		return
	}
	if err := s.stats.Reset(exerciseID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "statistics reset for " + exerciseID})
}

// GET /api/history
func (s *Server) getHistory(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	var (
		records []models.ResultRecord
		err     error
	)
	if exerciseID := c.Query("exercise"); exerciseID != "" {
		records, err = s.results.GetByExercise(exerciseID, limit)
	} else {
		records, err = s.results.GetRecent(limit)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

// GET /api/words
func (s *Server) listWords(c *gin.Context) {
	words, err := s.words.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, words)
}

// POST /api/words
func (s *Server) addWords(c *gin.Context) {
	var req struct {
		Words []string `json:"words" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	added, err := s.words.Add(req.Words)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"added": added})
}

// DELETE /api/words
func (s *Server) clearWords(c *gin.Context) {
	if err := s.words.Clear(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "word list cleared"})
}

// DELETE /api/words/:word
func (s *Server) deleteWord(c *gin.Context) {
	if err := s.words.Delete(c.Param("word")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "word deleted"})
}

// GET /api/tts
func (s *Server) speak(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text parameter is required"})
		return
	}

	audio, contentType, err := s.speech.GetAudio(text, c.Query("lang"))
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, contentType, audio)
}
