package logging

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// Middleware gives every request its own LogData and writes one line when the
// request finishes. 5xx responses are logged at error level.
func Middleware(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			logData := NewLogData(log)
			ctx := WithLogData(req.Context(), logData)
			ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)

			start := time.Now()
			next.ServeHTTP(ww, req.WithContext(ctx))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			loggingName := routeName(req)
			logData.AddData("method", req.Method)
			logData.AddData("path", req.URL.Path)
			logData.AddData("status", status)
			logData.AddData("duration", time.Since(start).Milliseconds())
			if reqID := middleware.GetReqID(ctx); reqID != "" {
				logData.AddData("requestId", reqID)
			}

			if status >= http.StatusInternalServerError {
				logData.Log().Errorf("Handler.%v.Error", loggingName)
				return
			}
			logData.Log().Infof("Handler.%v.Complete", loggingName)
		})
	}
}

func routeName(req *http.Request) string {
	pattern := req.URL.Path
	if rctx := chi.RouteContext(req.Context()); rctx != nil && rctx.RoutePattern() != "" {
		pattern = rctx.RoutePattern()
	}
	return fmt.Sprintf("%s %s", req.Method, pattern)
}
