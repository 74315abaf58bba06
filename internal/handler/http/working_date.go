package http

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/cmlabs-hris/working-date-go/internal/domain/workingdate"
	"github.com/cmlabs-hris/working-date-go/internal/handler/http/response"
)

type WorkingDateHandler interface {
	Info(w http.ResponseWriter, r *http.Request)
	Compute(w http.ResponseWriter, r *http.Request)
}

type WorkingDateHandlerImpl struct {
	workingDateService workingdate.Service
}

func NewWorkingDateHandler(workingDateService workingdate.Service) WorkingDateHandler {
	return &WorkingDateHandlerImpl{workingDateService: workingDateService}
}

// Info implements WorkingDateHandler.
func (h *WorkingDateHandlerImpl) Info(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.workingDateService.Info())
}

// Compute implements WorkingDateHandler.
func (h *WorkingDateHandlerImpl) Compute(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := workingdate.WorkingDateRequest{
		Days:  queryParam(query, "days"),
		Hours: queryParam(query, "hours"),
		Date:  queryParam(query, "date"),
	}

	resp, err := h.workingDateService.Compute(r.Context(), req)
	if err != nil {
		slog.Warn("Compute working date failed", "error", err, "query", r.URL.RawQuery)
		response.HandleAPIError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, resp)
}

// queryParam returns the first value of key, or nil when the key is absent.
func queryParam(query url.Values, key string) *string {
	values, ok := query[key]
	if !ok || len(values) == 0 {
		return nil
	}
	v := values[0]
	return &v
}
