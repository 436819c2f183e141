package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"prlinks/internal/domain"
	"prlinks/internal/logging"
	"prlinks/internal/services"
)

// Handlers serves pull request listings over HTTP
type Handlers struct {
	service *services.PullRequestService
}

// NewHandlers creates handlers backed by service
func NewHandlers(service *services.PullRequestService) *Handlers {
	return &Handlers{service: service}
}

// PullsResponse is the JSON body of a list view response
type PullsResponse struct {
	Count   int              `json:"count"`
	Request string           `json:"request"`
	View    domain.ViewModel `json:"view"`
}

type errorBody struct {
	Code           string `json:"code"`
	Message        string `json:"message"`
	UpstreamStatus int    `json:"upstream_status,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Logger.Warn("Failed to write response", "error", err)
	}
}

func errorResp(w http.ResponseWriter, status int, body errorBody) {
	writeJSON(w, status, map[string]errorBody{"error": body})
}

// Health reports liveness
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

// ListPulls runs one query and renders it in the requested view
func (h *Handlers) ListPulls(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	q := r.URL.Query()

	params := domain.QueryParameters{
		BaseBranch: q.Get("base"),
		Owner:      vars["owner"],
		RepoType:   domain.RepoType(q.Get("type")),
		Repository: vars["repo"],
		State:      domain.PRState(q.Get("state")),
	}.WithDefaults()

	mode := domain.ViewModeList
	if v := q.Get("view"); v != "" {
		parsed, err := domain.ParseViewMode(v)
		if err != nil {
			errorResp(w, http.StatusBadRequest, errorBody{Code: "VALIDATION", Message: err.Error()})
			return
		}
		mode = parsed
	}

	req, err := domain.BuildRequest(params)
	if err != nil {
		errorResp(w, http.StatusBadRequest, errorBody{Code: "VALIDATION", Message: err.Error()})
		return
	}

	results, err := h.service.Fetch(r.Context(), req)
	if err != nil {
		body := errorBody{Code: "UPSTREAM", Message: err.Error()}
		var fetchErr *domain.FetchError
		if errors.As(err, &fetchErr) {
			body.UpstreamStatus = fetchErr.StatusCode
		}
		if services.IsTimeout(err) {
			body.Code = "TIMEOUT"
		}
		errorResp(w, http.StatusBadGateway, body)
		return
	}

	vm := domain.Present(results, mode)

	if mode == domain.ViewModeLinks {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if vm.Clipboard != "" {
			_, _ = w.Write([]byte(vm.Clipboard + "\n"))
		}
		return
	}

	writeJSON(w, http.StatusOK, PullsResponse{
		Count:   vm.Len(),
		Request: req.String(),
		View:    vm,
	})
}
