package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/theoremus-urban-solutions/detour-board/board"
	"github.com/theoremus-urban-solutions/detour-board/config"
	"github.com/theoremus-urban-solutions/detour-board/detours"
	"github.com/theoremus-urban-solutions/detour-board/formatter"
)

// query parses the request, dropping source overrides unless allowed.
func (s *Server) query(r *http.Request) config.BoardQuery {
	values := r.URL.Query()
	if !s.cfg.Board.AllowSourceOverride {
		for _, p := range config.SourceParams {
			values.Del(p)
		}
	}
	return config.ParseBoardQuery(values, s.defaults)
}

// validFor is how long a board for q stays fresh: the alert refresh interval.
func (s *Server) validFor(q config.BoardQuery) time.Duration {
	if q.Sources.Alerts != nil {
		return s.cfg.GTFSRT.ReadInterval()
	}
	return s.cfg.InfoPoint.MessagesInterval()
}

func (s *Server) messages(w http.ResponseWriter, r *http.Request) (board.Result[[]board.Message], config.BoardQuery, bool) {
	q := s.query(r)
	b, err := s.boards.Get(q.Sources)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, detours.ErrTooManyBoards) || errors.Is(err, detours.ErrRegistryClosed) {
			status = http.StatusServiceUnavailable
		}
		s.logger.Warn().Err(err).Str("board", q.Sources.Key()).Msg("Board unavailable")
		http.Error(w, err.Error(), status)
		return board.Result[[]board.Message]{}, q, false
	}
	return b.Messages(q.Routes), q, true
}

func (s *Server) handleBoardHTML(w http.ResponseWriter, r *http.Request) {
	res, q, ok := s.messages(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	opts := formatter.HTMLOptions{RefreshSeconds: int(s.validFor(q) / time.Second)}
	if err := formatter.RenderHTML(&buf, res, opts); err != nil {
		s.logger.Error().Err(err).Msg("Failed to render board")
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleMessagesJSON(w http.ResponseWriter, r *http.Request) {
	res, q, ok := s.messages(w, r)
	if !ok {
		return
	}
	data, err := formatter.BuildJSON(res, s.now(), s.validFor(q))
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode board")
		http.Error(w, "encode failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

type healthResponse struct {
	Status string           `json:"status"`
	Boards []detours.Status `json:"boards"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", Boards: []detours.Status{}}
	for _, b := range s.boards.Boards() {
		resp.Boards = append(resp.Boards, b.Status())
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
