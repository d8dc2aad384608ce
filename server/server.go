// Package server exposes the cash book over HTTP. Reads are open; writes go
// through an access.Policy keyed on the X-Principal header.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/giya/cashbook"
	"github.com/giya/cashbook/access"
)

// Server is the HTTP layer over a file-backed cash book.
type Server struct {
	mux    *http.ServeMux
	store  cashbook.Store
	policy access.Policy
	log    zerolog.Logger
}

// New builds the server and its routes.
func New(store cashbook.Store, policy access.Policy, log zerolog.Logger) *Server {
	s := &Server{
		mux:    http.NewServeMux(),
		store:  store,
		policy: policy,
		log:    log,
	}

	s.mux.HandleFunc("GET /v1/balance", s.handleBalance)
	s.mux.HandleFunc("GET /v1/summary", s.handleSummary)
	s.mux.HandleFunc("GET /v1/ledger", s.handleLedger)
	s.mux.HandleFunc("GET /v1/categories", s.handleCategories)
	s.mux.HandleFunc("POST /v1/transactions", s.handleRecord)
	s.mux.HandleFunc("GET /healthz", s.handleHealthz)
	s.mux.Handle("GET /metrics", metricsHandler())

	return s
}

// Handler returns the full middleware chain.
func (s *Server) Handler() http.Handler {
	return recovery(s.log)(logging(s.log)(instrument(s.mux)))
}

// load reads the current state from disk. The files are small enough that the
// server stays stateless and rereads per request.
func (s *Server) load() (*cashbook.Ledger, cashbook.BalanceSettings, error) {
	ledger, err := s.store.LoadLedger()
	if err != nil {
		return nil, cashbook.BalanceSettings{}, err
	}
	settings, err := s.store.LoadSettings()
	if err != nil {
		return nil, cashbook.BalanceSettings{}, err
	}
	return ledger, settings.Balances(), nil
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "cashbook",
	})
}

type balanceResponse struct {
	USD string `json:"usd"`
	CDF string `json:"cdf"`
}

func toBalanceResponse(b cashbook.Balance) balanceResponse {
	return balanceResponse{USD: b.USD.String(), CDF: b.CDF.String()}
}

func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	ledger, settings, err := s.load()
	if err != nil {
		s.fail(w, err)
		return
	}
	b := cashbook.CurrentBalance(settings, ledger.Select())
	writeJSON(w, http.StatusOK, toBalanceResponse(b))
}

type summaryResponse struct {
	Label       string          `json:"label"`
	From        string          `json:"from"`
	To          string          `json:"to"`
	Opening     balanceResponse `json:"opening"`
	Income      balanceResponse `json:"income"`
	Expense     balanceResponse `json:"expense"`
	TransferOut balanceResponse `json:"transferOut"`
	TransferIn  balanceResponse `json:"transferIn"`
	Closing     balanceResponse `json:"closing"`
}

// handleSummary serves a day summary (?date=) or a range summary (?from=&to=).
// With no parameter it summarizes today.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	ledger, settings, err := s.load()
	if err != nil {
		s.fail(w, err)
		return
	}

	q := r.URL.Query()
	var summary cashbook.Summary
	switch {
	case q.Get("from") != "" || q.Get("to") != "":
		from, err := cashbook.ParseDate(q.Get("from"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		to, err := cashbook.ParseDate(q.Get("to"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		summary = cashbook.NewRangeSummary(settings, ledger.Select(), from, to)
	case q.Get("date") != "":
		day, err := cashbook.ParseDate(q.Get("date"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		summary = cashbook.NewSummary(settings, ledger.Select(), day)
	default:
		summary = cashbook.NewSummary(settings, ledger.Select(), cashbook.Today())
	}

	writeJSON(w, http.StatusOK, summaryResponse{
		Label:       summary.Label,
		From:        summary.Range.From.String(),
		To:          summary.Range.To.String(),
		Opening:     toBalanceResponse(summary.Opening),
		Income:      toBalanceResponse(summary.Income),
		Expense:     toBalanceResponse(summary.Expense),
		TransferOut: toBalanceResponse(summary.TransferOut),
		TransferIn:  toBalanceResponse(summary.TransferIn),
		Closing:     toBalanceResponse(summary.Closing),
	})
}

type entryResponse struct {
	Transaction json.RawMessage `json:"transaction"`
	RunningUSD  string          `json:"runningUSD"`
	RunningCDF  string          `json:"runningCDF"`
}

// handleLedger serves the running-balance view, newest first.
func (s *Server) handleLedger(w http.ResponseWriter, r *http.Request) {
	ledger, settings, err := s.load()
	if err != nil {
		s.fail(w, err)
		return
	}

	entries := ledger.Entries(settings)
	out := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		raw, err := json.Marshal(e.Tx)
		if err != nil {
			s.fail(w, err)
			return
		}
		out = append(out, entryResponse{
			Transaction: raw,
			RunningUSD:  e.Running.USD.String(),
			RunningCDF:  e.Running.CDF.String(),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// handleCategories serves per-category totals, optionally restricted to one
// transaction kind via ?type=.
func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	ledger, _, err := s.load()
	if err != nil {
		s.fail(w, err)
		return
	}

	var filters []func(cashbook.Transaction) bool
	if t := r.URL.Query().Get("type"); t != "" {
		kind, err := cashbook.ParseKind(t)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		filters = append(filters, cashbook.ByKind(kind))
	}

	totals := cashbook.CategoryTotals(ledger.Select(filters...))
	out := make(map[string]balanceResponse, len(totals))
	for category, b := range totals {
		out[category] = toBalanceResponse(b)
	}
	writeJSON(w, http.StatusOK, out)
}

// handleRecord appends one transaction. The body is one JSON record in the
// same shape as a cash book file line.
func (s *Server) handleRecord(w http.ResponseWriter, r *http.Request) {
	principal, _ := principalFrom(r)
	if err := access.Check(s.policy, principal); err != nil {
		writeError(w, http.StatusForbidden, err.Error())
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read body")
		return
	}

	ledger, err := cashbook.DecodeCashBook(bytes.NewReader(body))
	if err != nil || ledger.Len() != 1 {
		msg := "body must be exactly one transaction record"
		if err != nil {
			msg = err.Error()
		}
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	record, err := cashbook.Validate(ledger.Select()[0])
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	tx, err := s.store.AppendTransaction(record)
	if err != nil {
		s.fail(w, err)
		return
	}

	s.log.Info().
		Str("kind", string(tx.What())).
		Str("principal", principal.Email).
		Msg("transaction recorded")

	raw, err := json.Marshal(tx)
	if err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusCreated)
	w.Write(append(raw, '\n'))
}

// principalFrom reads the acting principal from the X-Principal header.
func principalFrom(r *http.Request) (access.Principal, bool) {
	email := r.Header.Get("X-Principal")
	if email == "" {
		return access.Principal{}, false
	}
	return access.Principal{Email: email}, true
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytesErr):
		writeError(w, http.StatusRequestEntityTooLarge, "body too large")
	default:
		s.log.Error().Err(err).Msg("request failed")
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
