package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/dgallion1/aoc2023/internal/parse"
	"github.com/dgallion1/aoc2023/internal/puzzle"
	"github.com/go-chi/chi/v5"
)

type puzzleInfo struct {
	Day   int    `json:"day"`
	Title string `json:"title"`
	Parts []int  `json:"parts"`
}

func (s *Server) handleListPuzzles(w http.ResponseWriter, r *http.Request) {
	var out []puzzleInfo
	for _, p := range s.registry.All() {
		info := puzzleInfo{Day: p.Day(), Title: p.Title(), Parts: []int{}}
		for _, part := range puzzle.Parts {
			if p.HasPart(part) {
				info.Parts = append(info.Parts, int(part))
			}
		}
		out = append(out, info)
	}
	writeJSON(w, http.StatusOK, map[string]any{"puzzles": out})
}

type solveResponse struct {
	RunID      string `json:"run_id"`
	Day        int    `json:"day"`
	Part       int    `json:"part"`
	Answer     string `json:"answer"`
	DurationMs int64  `json:"duration_ms"`
}

type parseErrorResponse struct {
	Error    string `json:"error"`
	Kind     string `json:"kind"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Expected string `json:"expected,omitempty"`
	Near     string `json:"near"`
}

// handleSolve solves one part of a puzzle against the request body.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	day, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil {
		jsonError(w, "day must be a number", http.StatusBadRequest)
		return
	}
	solver, ok := s.registry.Get(day)
	if !ok {
		jsonError(w, fmt.Sprintf("no puzzle for day %d", day), http.StatusNotFound)
		return
	}

	part := puzzle.Part1
	if v := r.URL.Query().Get("part"); v != "" {
		if part, err = puzzle.ParsePart(v); err != nil {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	if !solver.HasPart(part) {
		jsonError(w, fmt.Sprintf("day %d has no %s", day, part), http.StatusNotFound)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxInputBytes)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, fmt.Sprintf("input exceeds max size (%d bytes)", s.cfg.MaxInputBytes), http.StatusRequestEntityTooLarge)
			return
		}
		jsonError(w, "failed to read input", http.StatusBadRequest)
		return
	}

	res := s.runner.Solve(r.Context(), solver, string(data), part)
	if res.Err != nil {
		var pe *parse.Error
		if errors.As(res.Err, &pe) {
			writeJSON(w, http.StatusUnprocessableEntity, parseErrorResponse{
				Error:    res.Err.Error(),
				Kind:     pe.Kind.String(),
				Line:     pe.Line,
				Column:   pe.Column,
				Expected: pe.Expected,
				Near:     pe.Near,
			})
			return
		}
		jsonError(w, res.Err.Error(), http.StatusUnprocessableEntity)
		return
	}

	writeJSON(w, http.StatusOK, solveResponse{
		RunID:      res.RunID,
		Day:        res.Day,
		Part:       int(res.Part),
		Answer:     res.Answer,
		DurationMs: res.Duration.Milliseconds(),
	})
}
