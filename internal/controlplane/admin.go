package controlplane

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	"github.com/kenelite/go-singleton/internal/config"
	"github.com/kenelite/go-singleton/internal/observability"
	"github.com/kenelite/go-singleton/internal/registry"
)

func RegisterAdminHandlers(mux *http.ServeMux, reg *registry.Registry, cfg *config.Config, logger *observability.Logger) {
	mux.Handle("GET /healthz", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}))
	mux.Handle("GET /metrics", reg.Metrics().Handler())
	mux.Handle("GET /config", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, cfg)
	}))
	mux.Handle("GET /instances", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, reg.Snapshot())
	}))
	// resolving through the admin API constructs the instance on first use
	mux.Handle("GET /instances/{key}", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := registry.Key(r.PathValue("key"))
		if _, err := reg.Get(key); err != nil {
			status := http.StatusInternalServerError
			if errors.Cause(err) == registry.ErrUnknownVariant {
				status = http.StatusNotFound
			} else {
				logger.Errorw("resolve instance", "variant", key, "err", err)
			}
			writeJSON(w, status, map[string]string{"error": err.Error()})
			return
		}
		st, err := reg.Status(key)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, st)
	}))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
