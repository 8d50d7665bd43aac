// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/cadence/internal/logging"
)

// ListenerParam is the URL parameter holding the listener id.
const ListenerParam = "listenerID"

// ListenerContext adds the {listenerID} URL parameter to the logging context.
func ListenerContext(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if id := chi.URLParam(r, ListenerParam); id != "" {
			r = r.WithContext(logging.ContextWithListenerID(r.Context(), id))
		}
		next(w, r)
	}
}
