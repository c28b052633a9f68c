package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/validkit/pkg/logger"
	"github.com/dmitrymomot/validkit/pkg/registry"
	"github.com/dmitrymomot/validkit/pkg/validation"
)

// Error messages rendered by the API.
const (
	msgValidatorNotFound = "Validator not found"
	msgValueRequired     = "Value is required"
	msgValuesNotList     = "values must be a list"
	msgJSONLDUnavailable = "JSON-LD not available"
	msgInternalError     = "Internal Server Error"
)

// Summary is the public description of one validator.
type Summary struct {
	Symbol         string   `json:"symbol"`
	SchemaType     string   `json:"schema_type"`
	SchemaProperty string   `json:"schema_property"`
	Description    string   `json:"description"`
	Regex          *string  `json:"regex"`
	Valid          []string `json:"valid"`
	Invalid        []string `json:"invalid"`
}

// Handler serves the validators API. Discovery endpoints read the registry
// directly; validation endpoints go through the service so caching and loop
// protection apply.
type Handler struct {
	registry *registry.Registry
	service  *validation.Service
	log      *slog.Logger
}

// NewHandler creates an API handler. A nil log discards handler diagnostics.
func NewHandler(reg *registry.Registry, svc *validation.Service, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Handler{
		registry: reg,
		service:  svc,
		log:      log,
	}
}

// resolve maps registry errors onto API responses. A nil unit return means
// the response has been written.
func (h *Handler) resolve(w http.ResponseWriter, r *http.Request) *registry.Unit {
	symbol := chi.URLParam(r, "id")
	unit, err := h.registry.Resolve(symbol)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			respondError(w, http.StatusNotFound, msgValidatorNotFound)
			return nil
		}
		h.log.ErrorContext(r.Context(), "validator resolution failed",
			logger.Symbol(symbol), logger.Error(err))
		respondError(w, http.StatusInternalServerError, msgInternalError)
		return nil
	}
	return unit
}

func summarize(unit *registry.Unit) Summary {
	spec := unit.Spec()
	var re *string
	if src := unit.Regex(); src != "" {
		re = &src
	}
	return Summary{
		Symbol:         spec.Symbol,
		SchemaType:     spec.SchemaType,
		SchemaProperty: spec.SchemaProperty,
		Description:    spec.Description,
		Regex:          re,
		Valid:          spec.ValidExamples,
		Invalid:        spec.InvalidExamples,
	}
}

// listValidators renders summaries for the whole rule table in table order.
func (h *Handler) listValidators(w http.ResponseWriter, r *http.Request) {
	symbols := h.registry.Symbols()
	summaries := make([]Summary, 0, len(symbols))
	for _, symbol := range symbols {
		unit, err := h.registry.Resolve(symbol)
		if err != nil {
			h.log.ErrorContext(r.Context(), "validator resolution failed",
				logger.Symbol(symbol), logger.Error(err))
			respondError(w, http.StatusInternalServerError, msgInternalError)
			return
		}
		summaries = append(summaries, summarize(unit))
	}
	respondJSON(w, http.StatusOK, summaries)
}

func (h *Handler) listFields(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string][]string{"fields": h.registry.Symbols()})
}

func (h *Handler) getValidator(w http.ResponseWriter, r *http.Request) {
	unit := h.resolve(w, r)
	if unit == nil {
		return
	}
	respondJSON(w, http.StatusOK, summarize(unit))
}

func (h *Handler) getExamples(w http.ResponseWriter, r *http.Request) {
	unit := h.resolve(w, r)
	if unit == nil {
		return
	}
	spec := unit.Spec()
	respondJSON(w, http.StatusOK, map[string][]string{
		"valid":   spec.ValidExamples,
		"invalid": spec.InvalidExamples,
	})
}

func (h *Handler) getRegex(w http.ResponseWriter, r *http.Request) {
	unit := h.resolve(w, r)
	if unit == nil {
		return
	}
	var re *string
	if src := unit.Regex(); src != "" {
		re = &src
	}
	respondJSON(w, http.StatusOK, map[string]*string{"regex": re})
}

// getJSONLD validates the query value and renders its schema.org object.
// Values that fail validation, and rules without a schema mapping, have no
// JSON-LD representation.
func (h *Handler) getJSONLD(w http.ResponseWriter, r *http.Request) {
	unit := h.resolve(w, r)
	if unit == nil {
		return
	}

	if !r.URL.Query().Has("value") {
		respondError(w, http.StatusBadRequest, msgValueRequired)
		return
	}
	value := r.URL.Query().Get("value")

	res := h.service.Validate(r.Context(), unit.Spec().Symbol, value)
	if res.LoopDetected() {
		respondError(w, http.StatusTooManyRequests, validation.MsgLoopDetected)
		return
	}
	if !res.Valid || res.JSONLD == nil {
		respondError(w, http.StatusNotFound, msgJSONLDUnavailable)
		return
	}
	respondJSON(w, http.StatusOK, res.JSONLD)
}

type validateRequest struct {
	Value *string `json:"value"`
}

func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	unit := h.resolve(w, r)
	if unit == nil {
		return
	}

	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Value == nil {
		respondError(w, http.StatusBadRequest, msgValueRequired)
		return
	}

	res := h.service.Validate(r.Context(), unit.Spec().Symbol, *req.Value)
	if res.LoopDetected() {
		respondJSON(w, http.StatusTooManyRequests, res)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

type batchValidateRequest struct {
	// RawMessage so a scalar or object payload is reported as a shape
	// error, not silently coerced.
	Values json.RawMessage `json:"values"`
}

func (h *Handler) batchValidate(w http.ResponseWriter, r *http.Request) {
	unit := h.resolve(w, r)
	if unit == nil {
		return
	}

	var req batchValidateRequest
	var values []string
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
		req.Values == nil || json.Unmarshal(req.Values, &values) != nil {
		respondJSON(w, http.StatusBadRequest, map[string]any{
			"valid":  false,
			"errors": []string{msgValuesNotList},
		})
		return
	}

	batch := h.service.BatchValidate(r.Context(), unit.Spec().Symbol, values)
	respondJSON(w, http.StatusOK, batch.Results)
}
