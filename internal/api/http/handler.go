package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"gigledger-backend/internal/domain"
	"gigledger-backend/internal/service"

	"github.com/gorilla/mux"
)

// Handler exposes the ledger operations over REST.
type Handler struct {
	contracts service.ContractService
	jobs      service.JobService
	balances  service.BalanceService
	payments  service.PaymentService
	reports   service.ReportingService
}

func NewHandler(
	contracts service.ContractService,
	jobs service.JobService,
	balances service.BalanceService,
	payments service.PaymentService,
	reports service.ReportingService,
) *Handler {
	return &Handler{
		contracts: contracts,
		jobs:      jobs,
		balances:  balances,
		payments:  payments,
		reports:   reports,
	}
}

// GetContract handles GET /contracts/{id}
func (h *Handler) GetContract(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, false, "Missing profile")
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	contract, err := h.contracts.GetContract(r.Context(), actor, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contract)
}

// ListContracts handles GET /contracts
func (h *Handler) ListContracts(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, false, "Missing profile")
		return
	}
	contracts, err := h.contracts.ListContracts(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contracts)
}

// ListUnpaidJobs handles GET /jobs/unpaid
func (h *Handler) ListUnpaidJobs(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, false, "Missing profile")
		return
	}
	jobs, err := h.jobs.ListUnpaidJobs(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, jobs)
}

// PayJob handles POST /jobs/{job_id}/pay
func (h *Handler) PayJob(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, false, "Missing profile")
		return
	}
	jobID, err := pathID(r, "job_id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.payments.PayJob(r.Context(), actor, jobID); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, true, "Payment applied")
}

type depositRequest struct {
	AmountCents int64 `json:"amount"`
}

// Deposit handles POST /balances/deposit/{userId}
func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, false, "Missing profile")
		return
	}
	targetID, err := pathID(r, "userId")
	if err != nil {
		writeError(w, err)
		return
	}
	var req depositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: malformed request body", domain.ErrValidation))
		return
	}
	if err := h.balances.Deposit(r.Context(), actor, targetID, req.AmountCents); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, true, "Balance added")
}

// BestProfession handles GET /admin/best-profession
func (h *Handler) BestProfession(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseWindow(r)
	if err != nil {
		writeError(w, err)
		return
	}
	profession, err := h.reports.BestProfession(r.Context(), start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profession)
}

// BestClients handles GET /admin/best-clients
func (h *Handler) BestClients(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseWindow(r)
	if err != nil {
		writeError(w, err)
		return
	}
	limit := service.DefaultBestClientsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			writeError(w, fmt.Errorf("%w: limit must be an integer", domain.ErrValidation))
			return
		}
	}
	clients, err := h.reports.BestClients(r.Context(), start, end, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, clients)
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrValidation, name)
	}
	return id, nil
}

// parseWindow reads the optional start/end query parameters. Both RFC 3339
// timestamps and bare dates are accepted.
func parseWindow(r *http.Request) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error
	if raw := r.URL.Query().Get("start"); raw != "" {
		start, err = parseDate(raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if raw := r.URL.Query().Get("end"); raw != "" {
		end, err = parseDate(raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	return start, end, nil
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: invalid date %q", domain.ErrValidation, raw)
}
