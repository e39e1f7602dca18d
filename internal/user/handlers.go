package user

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"userapi-go/internal/validation"

	"github.com/rs/zerolog/log"
)

const (
	maxBodyBytes = 1 << 20

	msgInvalidBody   = "Invalid request body"
	msgMissingFields = "Missing required fields: name, email, or password"
	msgCreated       = "User created successfully"
	msgValidation    = "Validation error"
	msgInternal      = "Internal server error"
)

var errTrailingData = errors.New("unexpected data after JSON body")

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{
		store: store,
	}
}

// HandleCreate handles POST /api/users. Requests missing a name, email or
// password never reach the store.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := decodeBody(http.MaxBytesReader(w, r.Body, maxBodyBytes), &req); err != nil {
		log.Debug().Err(err).Msg("Could not decode create user request")
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: msgInvalidBody})
		return
	}

	if err := req.validate(); err != nil {
		log.Debug().Err(err).Msg("Rejected create user request")
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: msgMissingFields})
		return
	}

	user, err := h.store.Create(r.Context(), req.record())
	if err != nil {
		var validationErr *ValidationError
		switch {
		case errors.As(err, &validationErr):
			log.Info().
				Interface("errors", validationErr.Errors).
				Msg("User rejected by store validation")
			writeJSON(w, http.StatusBadRequest, validationErrorResponse{
				Message: msgValidation,
				Errors:  validationErr.Errors,
			})
		default:
			log.Error().
				Err(err).
				Str("email", req.Email).
				Msg("Failed to create user")
			writeJSON(w, http.StatusInternalServerError, internalErrorResponse{
				Message: msgInternal,
				Error:   err.Error(),
			})
		}
		return
	}

	log.Info().
		Str("user_id", user.ID.String()).
		Str("email", user.Email).
		Msg("User created")
	writeJSON(w, http.StatusCreated, createdResponse{
		Message: msgCreated,
		User:    user,
	})
}

func (r *CreateUserRequest) validate() error {
	if err := validation.Validate(r); err != nil {
		return fmt.Errorf("%w: %v", ErrMissingFields, validation.FormatError(err))
	}
	return nil
}

// decodeBody reads exactly one JSON value from r. An empty body is treated
// like {} and fails the presence check.
func decodeBody(r io.Reader, v interface{}) error {
	dec := json.NewDecoder(r)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().
			Err(err).
			Int("status", status).
			Msg("Failed to encode JSON response")
	}
}
