package status

import (
	"context"
	"net/http"
	"time"

	"github.com/carson-networks/finance-tracker/internal/logging"
)

const pingTimeout = 2 * time.Second

// pinger is satisfied by *sql.DB. It is nil for the in-memory backend.
type pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	DB pinger
}

func NewHandler(db pinger) Handler {
	return Handler{DB: db}
}

func (h Handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	logData := logging.GetLogData(req.Context())
	if req.Method != http.MethodGet {
		logData.AddData("error", "status: method not GET")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if h.DB != nil {
		ctx, cancel := context.WithTimeout(req.Context(), pingTimeout)
		defer cancel()

		stopTimer := logData.AddTiming("pingMs")
		err := h.DB.PingContext(ctx)
		stopTimer()
		if err != nil {
			logData.AddData("error", err.Error())
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
}
