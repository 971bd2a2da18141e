// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package api provides the REST API handlers for the portfolio content tables.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/portfolio-go/internal/model"
	"github.com/olegiv/portfolio-go/internal/service"
)

// MaxBodyBytes limits the size of a create request body.
const MaxBodyBytes = 1 << 20

// Handler holds shared dependencies for all API handlers.
type Handler struct {
	content *service.ContentService
}

// NewHandler creates a new API handler.
func NewHandler(content *service.ContentService) *Handler {
	return &Handler{content: content}
}

// Routes registers the content endpoints on r. r is expected to be mounted
// at /api/v1.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.Status)

	r.Route("/headers", func(r chi.Router) {
		r.Get("/", h.ListHeaders)
		r.Post("/", h.CreateHeader)
		r.Get("/{id}", h.GetHeader)
	})
	r.Route("/introductions", func(r chi.Router) {
		r.Get("/", h.ListIntroductions)
		r.Post("/", h.CreateIntroduction)
		r.Get("/{id}", h.GetIntroduction)
	})
	r.Route("/projects", func(r chi.Router) {
		r.Get("/", h.ListProjects)
		r.Post("/", h.CreateProject)
		r.Get("/{id}", h.GetProject)
	})
	r.Route("/project-details", func(r chi.Router) {
		r.Get("/", h.ListProjectDetails)
		r.Post("/", h.CreateProjectDetail)
		r.Get("/{id}", h.GetProjectDetail)
	})
	r.Route("/work-experiences", func(r chi.Router) {
		r.Get("/", h.ListWorkExperiences)
		r.Post("/", h.CreateWorkExperience)
		r.Get("/{id}", h.GetWorkExperience)
	})
}

// Response is the standard API response wrapper.
type Response struct {
	Data any   `json:"data,omitempty"`
	Meta *Meta `json:"meta,omitempty"`
}

// Meta contains list metadata.
type Meta struct {
	Total int `json:"total"`
}

// ErrorResponse is the standard API error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// CreatedResponse is the body of a successful create.
type CreatedResponse struct {
	ID string `json:"id"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteSuccess writes a successful JSON response.
func WriteSuccess(w http.ResponseWriter, data any, meta *Meta) {
	WriteJSON(w, http.StatusOK, Response{
		Data: data,
		Meta: meta,
	})
}

// WriteCreated writes a 201 Created JSON response.
func WriteCreated(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusCreated, Response{Data: data})
}

// WriteError writes an error JSON response.
func WriteError(w http.ResponseWriter, statusCode int, code, message string, details map[string]string) {
	WriteJSON(w, statusCode, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// WriteBadRequest writes a 400 Bad Request response.
func WriteBadRequest(w http.ResponseWriter, message string, details map[string]string) {
	WriteError(w, http.StatusBadRequest, "bad_request", message, details)
}

// WriteNotFound writes a 404 Not Found response.
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, "not_found", message, nil)
}

// WriteInternalError writes a 500 Internal Server Error response.
func WriteInternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, "internal_error", message, nil)
}

// WriteNotCreated writes the 500 response for an insert the store rejected.
func WriteNotCreated(w http.ResponseWriter, entityName string) {
	WriteError(w, http.StatusInternalServerError, "not_created", capitalizeFirst(entityName)+" was not created", nil)
}

// WriteValidationError writes a 422 Unprocessable Entity response with field errors.
func WriteValidationError(w http.ResponseWriter, fieldErrors map[string]string) {
	WriteError(w, http.StatusUnprocessableEntity, "validation_error", "Validation failed", fieldErrors)
}

// StatusResponse contains API status information.
type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Status returns the API status.
func (h *Handler) Status(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, StatusResponse{
		Status:  "ok",
		Version: "v1",
	}, nil)
}

// validatable is implemented by every create input of the model package.
type validatable interface {
	Validate() error
}

// decodeJSON reads a single JSON object from the request body into dst.
// Unknown fields, trailing data and bodies over MaxBodyBytes are rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("body must contain a single JSON object")
	}
	return nil
}

// createRecord decodes and validates the body, then runs the create access
// function. The response is written in every case.
func createRecord[I validatable](w http.ResponseWriter, r *http.Request, entityName string, create func(context.Context, I) (string, bool)) {
	var in I
	if err := decodeJSON(w, r, &in); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			WriteError(w, http.StatusRequestEntityTooLarge, "body_too_large",
				fmt.Sprintf("Request body must not exceed %d bytes", MaxBodyBytes), nil)
			return
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			WriteValidationError(w, map[string]string{typeErr.Field: "must be a " + jsonTypeName(typeErr.Type)})
			return
		}
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}

	if err := in.Validate(); err != nil {
		var vErr *model.ValidationError
		if errors.As(err, &vErr) {
			WriteValidationError(w, vErr.Fields)
			return
		}
		WriteBadRequest(w, err.Error(), nil)
		return
	}

	id, ok := create(r.Context(), in)
	if !ok {
		WriteNotCreated(w, entityName)
		return
	}
	WriteCreated(w, CreatedResponse{ID: id})
}

// jsonTypeName names the JSON shape expected for a Go type.
func jsonTypeName(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch {
	case t == reflect.TypeOf(time.Time{}):
		return "timestamp"
	case t.Kind() == reflect.String:
		return "string"
	case t.Kind() == reflect.Bool:
		return "boolean"
	default:
		return t.String()
	}
}

// listRecords runs a list access function and writes the records newest first.
func listRecords[T any](w http.ResponseWriter, r *http.Request, entityName string, list func(context.Context) ([]T, bool)) {
	records, ok := list(r.Context())
	if !ok {
		WriteInternalError(w, "Failed to list "+entityName+"s")
		return
	}
	WriteSuccess(w, records, &Meta{Total: len(records)})
}

// getRecord looks up the record named by the {id} URL parameter.
func getRecord[T any](w http.ResponseWriter, r *http.Request, entityName string, get func(context.Context, string) (T, bool)) {
	record, ok := get(r.Context(), chi.URLParam(r, "id"))
	if !ok {
		WriteNotFound(w, capitalizeFirst(entityName)+" not found")
		return
	}
	WriteSuccess(w, record, nil)
}

// capitalizeFirst returns s with the first letter capitalized.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
