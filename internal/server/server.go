package server

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/example/engpractice/internal/database"
	"github.com/example/engpractice/internal/exercise"
	"github.com/example/engpractice/internal/stats"
	"github.com/example/engpractice/internal/tts"
)

// Server exposes the practice exercises over an HTTP API.
type Server struct {
	router   *gin.Engine
	registry *exercise.Registry
	stats    stats.Store
	results  *database.ResultRepository
	words    *database.WordListRepository
	speech   *tts.Client

	mu       sync.Mutex
	rng      *rand.Rand
	sessions map[string]*activeSession
	mistakes *exercise.MistakeLog

	srv *http.Server
}

// maxSessions caps the live quiz sets held in memory; the oldest set is
// evicted when a new one would exceed the cap.
const maxSessions = 256

// activeSession is a generated quiz set waiting to be checked.
type activeSession struct {
	session *exercise.Session
	started time.Time
}

// New wires the registry and repositories into a router.
func New(registry *exercise.Registry, store stats.Store) *Server {
	s := &Server{
		router:   gin.Default(),
		registry: registry,
		stats:    store,
		results:  database.NewResultRepository(),
		words:    database.NewWordListRepository(),
		speech:   tts.NewClient(filepath.Join(database.DataDir(), "tts-cache")),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		sessions: make(map[string]*activeSession),
		mistakes: exercise.NewMistakeLog(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/exercises", s.listExercises)

		api.POST("/sets", s.createSet)
		api.POST("/sets/:id/check", s.checkSet)
		api.GET("/sets/:id/answers", s.setAnswers)

		api.GET("/feedback", s.getFeedback)

		api.GET("/stats", s.getStats)
		api.DELETE("/stats", s.resetAllStats)
		api.DELETE("/stats/:exercise", s.resetStats)

		api.GET("/history", s.getHistory)

		api.GET("/words", s.listWords)
		api.POST("/words", s.addWords)
		api.DELETE("/words", s.clearWords)
		api.DELETE("/words/:word", s.deleteWord)

		api.GET("/tts", s.speak)
	}
}

// Run starts the HTTP server in a goroutine.
func (s *Server) Run(addr string) {
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("practice API listening on %s", addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv != nil {
		return s.srv.Shutdown(ctx)
	}
	return nil
}
