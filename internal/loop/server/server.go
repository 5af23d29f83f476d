// Package server is the lobby shared by all sessions of one process: it
// tracks connected players, keeps the leaderboard and announces shutdown.
// Each session simulates its own game; nothing here runs per tick.
package server

import (
	"sync"
	"time"

	"github.com/tomz197/snake/internal/loop/config"
)

// GameServer is the interface clients use to communicate with the lobby.
// Decouples the Client from the concrete Server implementation.
type GameServer interface {
	RegisterClient(username string) *ClientHandle
	UnregisterClient(clientID int)
	SubmitScore(clientID int, score int) bool
	TopScores() []TopScoreEntry
	Players() int
}

// Server tracks connected clients and the shared leaderboard.
type Server struct {
	clients      map[int]*ClientHandle
	nextClientID int
	board        *Board
	mu           sync.RWMutex
}

// Compile-time check that Server implements GameServer.
var _ GameServer = (*Server)(nil)

// ClientHandle represents a client's connection to the server.
type ClientHandle struct {
	ID       int
	Username string           // Display name for this client
	EventsCh chan ClientEvent // Events sent to client
}

// ClientEvent represents an event sent from server to client.
type ClientEvent struct {
	Type     ClientEventType
	Username string // Record holder, for EventNewRecord
	Score    int    // Record score, for EventNewRecord
}

// ClientEventType identifies the type of client event.
type ClientEventType int

const (
	EventServerShutdown ClientEventType = iota
	EventNewRecord                      // Someone took first place on the board
)

// NewServer creates a new lobby.
func NewServer() *Server {
	return &Server{
		clients:      make(map[int]*ClientHandle),
		nextClientID: 1,
		board:        NewBoard(config.TopScoresCount),
	}
}

// RegisterClient registers a new client with the given username and returns its handle.
func (s *Server) RegisterClient(username string) *ClientHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle := &ClientHandle{
		ID:       s.nextClientID,
		Username: normalizeUsername(username),
		EventsCh: make(chan ClientEvent, 16),
	}
	s.nextClientID++
	s.clients[handle.ID] = handle
	return handle
}

// UnregisterClient removes a client from the server.
func (s *Server) UnregisterClient(clientID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.clients, clientID)
}

// Players returns the number of connected clients.
func (s *Server) Players() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// SubmitScore records a finished game for a client. A new first place is
// announced to every connected client.
func (s *Server) SubmitScore(clientID int, score int) bool {
	s.mu.RLock()
	handle, ok := s.clients[clientID]
	s.mu.RUnlock()
	if !ok {
		return false
	}

	prevBest := s.board.Best()
	if !s.board.Submit(handle.Username, score) {
		return false
	}
	if score > prevBest {
		s.broadcast(ClientEvent{Type: EventNewRecord, Username: handle.Username, Score: score})
	}
	return true
}

// TopScores returns the leaderboard, best first.
func (s *Server) TopScores() []TopScoreEntry {
	return s.board.Top(config.TopScoresCount)
}

// broadcast sends an event to all clients, dropping it for clients whose
// queue is full.
func (s *Server) broadcast(event ClientEvent) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, handle := range s.clients {
		select {
		case handle.EventsCh <- event:
		default:
		}
	}
}

// Shutdown notifies all connected clients about the shutdown and waits for
// them to disconnect (up to the given timeout).
func (s *Server) Shutdown(timeout time.Duration) {
	s.broadcast(ClientEvent{Type: EventServerShutdown})

	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		if s.Players() == 0 {
			return
		}
		select {
		case <-deadline:
			return
		case <-ticker.C:
		}
	}
}
