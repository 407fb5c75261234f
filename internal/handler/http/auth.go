package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"unicode/utf8"

	"github.com/gatekit/gatekit/internal/logger"
	"github.com/gatekit/gatekit/internal/middleware"
	"github.com/gatekit/gatekit/internal/utils"
	"github.com/gatekit/gatekit/models"
)

const (
	minUserNameLen = 3
	maxUserNameLen = 24
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ValidateFailed("invalid JSON body"), http.StatusUnprocessableEntity)
		return
	}

	if err := validateUser(user); err != nil {
		log.Err(err).Msg("invalid user data provided")
		utils.WriteJSON(w, models.ValidateFailed(err.Error()), http.StatusUnprocessableEntity)
		return
	}

	log.Debug().Any("received user info", user).Send()

	claims := models.NewUserClaims(user, h.codec.Expiration())
	signed, err := h.codec.Encode(&claims)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, models.InternalError(""), http.StatusInternalServerError)
		return
	}

	log.Debug().Uint64("uid", user.UID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.Success("login success", signed), http.StatusOK)
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	claims, ok := middleware.ClaimsFromContext[*models.UserClaims](r.Context())
	if !ok {
		log.Error().Msg("no claims found in request context")
		utils.WriteJSON(w, models.AuthFailed(""), http.StatusUnauthorized)
		return
	}

	log.Debug().Uint64("uid", claims.User.UID).Msg("serving index")

	utils.WriteJSON(w, models.Ok(fmt.Sprintf("hello, %s", claims.User.Name)), http.StatusOK)
}

// validateUser checks the login payload before a token is issued.
func validateUser(user models.User) error {
	nameLen := utf8.RuneCountInString(user.Name)
	if nameLen < minUserNameLen || nameLen > maxUserNameLen {
		return ErrInvalidUserName
	}

	return nil
}
