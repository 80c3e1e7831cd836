/* Copyright 2026 Freerware
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package httpapi

import (
	"context"
	"net/http"

	"github.com/freerware/voucher"
	"github.com/gorilla/mux"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// BulkDeleter represents the bulk delete operation served over HTTP.
type BulkDeleter interface {
	Delete(ctx context.Context, registry voucher.EventRegistry, ids ...string) (voucher.Result, error)
}

type bulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// Server represents the HTTP surface of the bulk delete operation.
type Server struct {
	Router   *mux.Router
	deleter  BulkDeleter
	registry voucher.EventRegistry
	logger   *zap.Logger
}

// NewServer constructs a server that deletes voucher codes with the
// provided deleter and submits events to the provided registry.
func NewServer(deleter BulkDeleter, registry voucher.EventRegistry, logger *zap.Logger) *Server {
	s := &Server{
		Router:   mux.NewRouter(),
		deleter:  deleter,
		registry: registry,
		logger:   logger,
	}
	s.Router.HandleFunc("/voucher-codes/bulk-delete", s.handleBulkDelete).Methods(http.MethodPost)
	return s
}

// ServeHTTP dispatches the request to the matching route.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) handleBulkDelete(w http.ResponseWriter, r *http.Request) {
	var req bulkDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.write(w, http.StatusBadRequest, errorResponse{Message: "malformed request body"})
		return
	}
	if req.IDs == nil {
		s.write(w, http.StatusBadRequest, errorResponse{Message: "ids is required"})
		return
	}

	result, err := s.deleter.Delete(r.Context(), s.registry, req.IDs...)
	if err != nil {
		s.logger.Error("bulk delete failed", zap.Int("idCount", len(req.IDs)), zap.Error(err))
		s.write(w, http.StatusInternalServerError, errorResponse{Message: "unable to delete voucher codes"})
		return
	}
	s.write(w, http.StatusOK, result)
}

func (s *Server) write(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Warn("unable to write response", zap.Error(err))
	}
}
