package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	solveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aoc_solve_total",
		Help: "Puzzle solves served by the API, by puzzle and outcome.",
	}, []string{"puzzle", "outcome"})

	solveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "aoc_solve_duration_seconds",
		Help:    "Time spent solving a puzzle for the API.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
	}, []string{"puzzle"})

	framesStreamed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aoc_frames_streamed_total",
		Help: "Simulation frames written to websocket clients.",
	}, []string{"puzzle"})
)
