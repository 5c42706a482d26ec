// Package api exposes rule evaluation over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/rs/zerolog"

	"github.com/rulekit/jsonlogic"
	"github.com/rulekit/jsonlogic/internal/telemetry"
)

// Server evaluates rules posted to /v1/apply. It holds no per-request
// state beyond the compiled-rule cache, so one instance serves all traffic.
type Server struct {
	logic        *jsonlogic.Logic
	cache        *ruleCache
	log          zerolog.Logger
	ratePerIP    int
	maxBodyBytes int64
}

// Options configures a Server.
type Options struct {
	Strict       bool
	RatePerIP    int
	MaxBodyBytes int64
	Logger       zerolog.Logger
}

func NewServer(opts Options) *Server {
	var logicOpts []jsonlogic.Option
	if opts.Strict {
		logicOpts = append(logicOpts, jsonlogic.WithStrictParsing())
	}
	if opts.RatePerIP <= 0 {
		opts.RatePerIP = 300
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 1 << 20
	}
	l := jsonlogic.New(logicOpts...)
	return &Server{
		logic:        l,
		cache:        newRuleCache(l),
		log:          opts.Logger,
		ratePerIP:    opts.RatePerIP,
		maxBodyBytes: opts.MaxBodyBytes,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP, middleware.Recoverer)
	r.Use(requestID)
	r.Use(telemetry.Middleware)

	// CORS for browser clients (adjust origins as needed)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(5 * time.Second))
		r.Use(httprate.LimitByIP(s.ratePerIP, time.Minute))

		r.Get("/healthz", s.handleHealth)
		r.Post("/v1/apply", s.handleApply)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

type applyRequest struct {
	Rule json.RawMessage `json:"rule"`
	Data json.RawMessage `json:"data"`
}

type applyResponse struct {
	Result any `json:"result"`
}

func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
	var req applyRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, string(jsonlogic.ParseError), "request body: "+err.Error())
		return
	}
	if len(req.Rule) == 0 {
		writeError(w, r, http.StatusBadRequest, string(jsonlogic.ParseError), "missing rule")
		return
	}

	rule, err := s.cache.get(req.Rule)
	if err != nil {
		var evalErr *jsonlogic.Error
		if errors.As(err, &evalErr) {
			s.writeEvalError(w, r, evalErr)
			return
		}
		writeError(w, r, http.StatusBadRequest, string(jsonlogic.ParseError), err.Error())
		return
	}

	var data any
	if len(req.Data) > 0 {
		if err := json.Unmarshal(req.Data, &data); err != nil {
			writeError(w, r, http.StatusBadRequest, string(jsonlogic.ParseError), "data: "+err.Error())
			return
		}
	}

	start := time.Now()
	result, err := rule.Apply(data)
	if err != nil {
		telemetry.ObserveEvaluation(string(jsonlogic.KindOf(err)), time.Since(start))
		s.writeEvalError(w, r, err)
		return
	}
	telemetry.ObserveEvaluation("ok", time.Since(start))

	writeJSON(w, r, http.StatusOK, applyResponse{Result: result})
}

// writeEvalError maps parse and unknown-operator errors onto 400, every other
// evaluation error kind onto 422, and anything that is not a *jsonlogic.Error
// onto 500, keeping the error kind visible to the client.
func (s *Server) writeEvalError(w http.ResponseWriter, r *http.Request, err error) {
	var evalErr *jsonlogic.Error
	if errors.As(err, &evalErr) {
		status := http.StatusUnprocessableEntity
		if evalErr.Kind == jsonlogic.ParseError || evalErr.Kind == jsonlogic.UnknownOperator {
			status = http.StatusBadRequest
		}
		s.log.Debug().
			Str("request_id", requestIDFrom(r)).
			Str("kind", string(evalErr.Kind)).
			Str("op", evalErr.Op).
			Msg("evaluation failed")
		writeError(w, r, status, string(evalErr.Kind), evalErr.Error())
		return
	}
	s.log.Error().Err(err).Str("request_id", requestIDFrom(r)).Msg("unexpected evaluation failure")
	writeError(w, r, http.StatusInternalServerError, "internal", "internal error")
}
