package http

import (
	"net/http"

	"github.com/klwxsrx/go-session-gate/pkg/log"
)

func WithLogging(logger log.Logger, infoLevel, clientErrorLevel, serverErrorLevel log.Level, excludedPaths ...string) ServerOption {
	excluded := make(map[string]struct{}, len(excludedPaths)+1)
	excluded[HealthPath] = struct{}{}
	for _, path := range excludedPaths {
		excluded[path] = struct{}{}
	}

	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handler.ServeHTTP(w, r)
			if _, ok := excluded[r.URL.Path]; ok {
				return
			}

			meta := getHandlerMetadata(r.Context())
			fields := log.Fields{
				"routeName":    getRouteName(r.Method, getRoutePath(r)),
				"method":       r.Method,
				"path":         r.URL.Path,
				"responseCode": meta.Code,
			}
			if meta.PrincipalID != nil {
				fields["principalID"] = *meta.PrincipalID
			}

			entry := logger.With(fields)
			if meta.Error != nil {
				entry = entry.WithError(meta.Error)
			}

			switch {
			case meta.Panic != nil:
				entry.
					WithField("panic", log.Fields{
						"message": meta.Panic.Message,
						"stack":   string(meta.Panic.Stacktrace),
					}).
					Log(r.Context(), serverErrorLevel, "request handled with panic")
			case meta.Code >= http.StatusInternalServerError:
				entry.Log(r.Context(), serverErrorLevel, "request handled with internal error")
			case meta.Code >= http.StatusBadRequest:
				entry.Log(r.Context(), clientErrorLevel, "request handled with client error")
			default:
				entry.Log(r.Context(), infoLevel, "request handled")
			}
		})
	})
}
