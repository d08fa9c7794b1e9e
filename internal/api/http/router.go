package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires the ledger routes behind the actor resolver.
func NewRouter(h *Handler, resolver *ActorResolver) *mux.Router {
	r := mux.NewRouter()
	r.Use(resolver.Middleware)

	r.HandleFunc("/contracts/{id}", h.GetContract).Methods(http.MethodGet)
	r.HandleFunc("/contracts", h.ListContracts).Methods(http.MethodGet)

	r.HandleFunc("/jobs/unpaid", h.ListUnpaidJobs).Methods(http.MethodGet)
	r.HandleFunc("/jobs/{job_id}/pay", h.PayJob).Methods(http.MethodPost)

	r.HandleFunc("/balances/deposit/{userId}", h.Deposit).Methods(http.MethodPost)

	r.HandleFunc("/admin/best-profession", h.BestProfession).Methods(http.MethodGet)
	r.HandleFunc("/admin/best-clients", h.BestClients).Methods(http.MethodGet)

	return r
}
