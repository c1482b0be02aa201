package main

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/intio/aoc-grid/puzzle"
)

// maxInputBytes bounds a posted puzzle input.
const maxInputBytes = 1 << 20

type APIServer struct {
	server     *http.Server
	log        *zap.Logger
	frameLimit int
}

func (as *APIServer) jsonResponse(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	as.log.Info("request",
		zap.Int("status", status),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path))
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	e := json.NewEncoder(w)
	e.Encode(data)
}

// puzzleFromRequest resolves the {year}/{day} route variables.
func puzzleFromRequest(r *http.Request) (puzzle.ID, puzzle.Puzzle, error) {
	vars := mux.Vars(r)
	id, err := puzzle.ParseID(vars["year"] + "/" + vars["day"])
	if err != nil {
		return puzzle.ID{}, nil, puzzle.ErrUnknownPuzzle
	}
	p, err := puzzle.Lookup(id)
	return id, p, err
}

func NewAPIServer(log *zap.Logger, cfg Config) (as *APIServer) {
	router := mux.NewRouter()
	server := &http.Server{
		Addr:              cfg.Listen,
		Handler:           router,
		ReadHeaderTimeout: 1 * time.Second,
		ReadTimeout:       5 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}
	as = &APIServer{
		server:     server,
		log:        log,
		frameLimit: cfg.FrameLimit,
	}

	router.HandleFunc("/puzzles/", func(w http.ResponseWriter, r *http.Request) {
		items := []string{}
		for _, id := range puzzle.IDs() {
			items = append(items, id.String())
		}
		as.jsonResponse(w, r, http.StatusOK,
			map[string]interface{}{
				"items": items,
			},
		)
	}).Methods("GET")

	router.HandleFunc("/puzzles/{year:[0-9]+}/{day:[0-9]+}", func(w http.ResponseWriter, r *http.Request) {
		id, p, err := puzzleFromRequest(r)
		if err != nil {
			as.jsonResponse(w, r, http.StatusNotFound, nil)
			return
		}
		switch r.Method {
		case "GET":
			_, animated := p.(puzzle.Animator)
			as.jsonResponse(w, r, http.StatusOK,
				map[string]interface{}{
					"item": map[string]interface{}{
						"id":       id.String(),
						"animated": animated,
					},
				},
			)
		case "POST":
			input, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxInputBytes))
			if err != nil {
				as.jsonResponse(w, r, http.StatusRequestEntityTooLarge, nil)
				return
			}
			start := time.Now()
			answer, err := p.Solve(input)
			solveDuration.WithLabelValues(id.String()).Observe(time.Since(start).Seconds())
			if err != nil {
				solveTotal.WithLabelValues(id.String(), "error").Inc()
				status := http.StatusInternalServerError
				if errors.Is(err, puzzle.ErrMalformedInput) {
					status = http.StatusUnprocessableEntity
				}
				as.log.Warn("solve failed", zap.Stringer("puzzle", id), zap.Error(err))
				as.jsonResponse(w, r, status,
					map[string]interface{}{
						"error": err.Error(),
					},
				)
				return
			}
			solveTotal.WithLabelValues(id.String(), "ok").Inc()
			as.jsonResponse(w, r, http.StatusOK,
				map[string]interface{}{
					"item": answer,
				},
			)
		default:
			panic("unreachable")
		}
	}).Methods("GET", "POST")

	router.HandleFunc("/puzzles/{year:[0-9]+}/{day:[0-9]+}/frames", as.makeWSHandler(as.streamFrames))
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	router.PathPrefix("/").Handler(http.NotFoundHandler())
	return as
}

// Handler exposes the router, mostly for tests.
func (as *APIServer) Handler() http.Handler {
	return as.server.Handler
}

func (as *APIServer) Start() error {
	as.log.Info("listening", zap.String("url", "http://"+as.server.Addr))
	return as.server.ListenAndServe()
}
