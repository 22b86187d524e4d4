// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/billable-hours/internal/logger"
	"github.com/MKhiriev/billable-hours/internal/utils"
)

const healthzTimeout = 2 * time.Second

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

// healthz reports the version and current billing cycle, or 503 while the
// database cannot be reached.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthzTimeout)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.healthz").Msg("database ping failed")
		utils.WriteJSONError(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, h.services.AppInfoService.GetAppStatus(ctx), http.StatusOK)
}
