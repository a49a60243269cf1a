package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/career-match/internal/pipeline"
	"github.com/jonathan/career-match/internal/skills"
	"github.com/jonathan/career-match/internal/types"
)

// MatchRequest represents the request body for /match. Skills accepts
// either a JSON array of strings or a single comma-separated string.
// Careers, when present, override the server's configured catalog for
// this request only.
type MatchRequest struct {
	Skills    skills.Input   `json:"skills"`
	Careers   []types.Career `json:"careers,omitempty"`
	MinScore  *int           `json:"min_score,omitempty" validate:"omitempty,gte=0,lte=100"`
	Threshold *int           `json:"threshold,omitempty" validate:"omitempty,gte=0,lte=100"`
	Limit     int            `json:"limit,omitempty" validate:"gte=0"`
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			fieldErr := validationErrors[0]
			return &ErrValidation{Field: fieldErr.Field(), Message: fieldErr.Tag()}
		}
		return err
	}
	return nil
}

// handleMatch scores the candidate's skills against the catalog and
// returns the ranked careers with their summary. The whole computation is
// recomputed per request; nothing is persisted.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	careers := req.Careers
	if careers == nil {
		loaded, err := s.careers(r.Context())
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		careers = loaded
	}

	opts := pipeline.RunOptions{
		MinScore:  s.minScore,
		Threshold: &s.threshold,
		Limit:     req.Limit,
	}
	if req.MinScore != nil {
		opts.MinScore = *req.MinScore
	}
	if req.Threshold != nil {
		opts.Threshold = req.Threshold
	}

	result := pipeline.Run(req.Skills, careers, opts)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleListCareers returns the active catalog.
func (s *Server) handleListCareers(w http.ResponseWriter, r *http.Request) {
	careers, err := s.careers(r.Context())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if careers == nil {
		careers = []types.Career{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"careers": careers})
}

// handleGetCareer returns one catalog record by id.
func (s *Server) handleGetCareer(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		s.errorResponse(w, http.StatusBadRequest, "Career ID is required")
		return
	}

	if s.store != nil {
		career, err := s.store.GetCareer(r.Context(), id)
		if err != nil {
			s.errorResponse(w, HTTPStatus(&ErrCatalogUnavailable{Cause: err}), err.Error())
			return
		}
		if career == nil {
			notFound := &ErrCareerNotFound{ID: id}
			s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
			return
		}
		s.jsonResponse(w, http.StatusOK, career)
		return
	}

	for _, career := range s.fileCatalog {
		if career.ID == id {
			s.jsonResponse(w, http.StatusOK, career)
			return
		}
	}
	notFound := &ErrCareerNotFound{ID: id}
	s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
}
