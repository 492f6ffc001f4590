package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"yahtzee/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type CreateResponse struct {
	ID          string           `json:"id"`
	Observation game.Observation `json:"observation"`
}

type ResetResponse struct {
	Observation game.Observation `json:"observation"`
}

type StepRequest struct {
	Action game.Action `json:"action"`
	// Keep selects dice to hold on a reroll; only valid with the reroll action
	Keep *[game.NumDice]bool `json:"keep,omitempty"`
}

type StepResponse struct {
	Observation game.Observation `json:"observation"`
	Reward      int              `json:"reward"`
	Done        bool             `json:"done"`
	Info        map[string]any   `json:"info"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type Option func(s *Server)

// WithRoller makes every new session draw dice from newRoller.
func WithRoller(newRoller func() game.Roller) Option {
	return func(s *Server) {
		if newRoller != nil {
			s.newRoller = newRoller
		}
	}
}

func WithRules(rules game.Rules) Option {
	return func(s *Server) {
		if rules != nil {
			s.rules = rules
		}
	}
}

// Server exposes game sessions over JSON HTTP so an external trainer can
// drive episodes. Sessions are independent and each is used by one client.
type Server struct {
	mu        sync.RWMutex
	sessions  map[string]*session
	seeds     *rand.Rand
	newRoller func() game.Roller
	rules     game.Rules
}

type session struct {
	sync.Mutex
	state *game.GameState
	done  bool
}

func NewServer(options ...Option) *Server {
	s := &Server{
		sessions: make(map[string]*session),
		seeds:    rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		rules:    game.NewStandardRules(),
	}
	s.newRoller = func() game.Roller {
		return game.NewRoller(s.seeds.Uint64())
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /envs", s.handleCreate)
	mux.HandleFunc("POST /envs/{id}/reset", s.handleReset)
	mux.HandleFunc("POST /envs/{id}/step", s.handleStep)
	mux.HandleFunc("GET /envs/{id}/render", s.handleRender)
	mux.HandleFunc("DELETE /envs/{id}", s.handleDelete)
	return mux
}

func (s *Server) ListenAndServe(addr string) error {
	log.Info().Msgf("serving game environments on %s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()

	s.mu.Lock()
	state := game.NewGameState(s.rules, s.newRoller())
	sess := &session{state: state}
	s.sessions[id] = sess
	s.mu.Unlock()

	sess.Lock()
	obs := sess.state.Reset()
	sess.Unlock()

	log.Debug().Msgf("created session %s", id)
	writeJSON(w, http.StatusCreated, CreateResponse{ID: id, Observation: obs})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	sess.done = false
	writeJSON(w, http.StatusOK, ResetResponse{Observation: sess.state.Reset()})
}

func (s *Server) handleStep(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}

	var req StepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request: "+err.Error())
		return
	}
	if req.Keep != nil && req.Action != game.RerollAction {
		writeError(w, http.StatusBadRequest, "keep is only valid with the reroll action")
		return
	}

	sess.Lock()
	defer sess.Unlock()

	if sess.done {
		writeError(w, http.StatusConflict, "game is over - reset the session")
		return
	}

	var resp StepResponse
	if req.Keep != nil {
		reward := sess.state.RerollKeeping(*req.Keep)
		resp = StepResponse{
			Observation: sess.state.Observation(),
			Reward:      reward,
			Done:        sess.state.Terminal(),
			Info:        map[string]any{},
		}
	} else {
		obs, reward, done, info, err := sess.state.Step(req.Action)
		if errors.Is(err, game.ErrInvalidCategory) {
			log.Warn().Msgf("session %s sent invalid action %d", r.PathValue("id"), req.Action)
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		resp = StepResponse{Observation: obs, Reward: reward, Done: done, Info: info}
	}

	sess.done = resp.Done
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	sess.Lock()
	out := sess.state.Render()
	sess.Unlock()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(out + "\n"))
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	s.mu.Lock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "unknown session "+id)
		return
	}
	log.Debug().Msgf("deleted session %s", id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*session, bool) {
	id := r.PathValue("id")

	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		writeError(w, http.StatusNotFound, "unknown session "+id)
	}
	return sess, ok
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
