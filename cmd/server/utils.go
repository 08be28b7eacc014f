package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrsobakin/armada/internal/game/field"
	"github.com/mrsobakin/armada/internal/session"
)

const (
	ErrBadFormat  string = "bad_format"
	ErrNotFound   string = "not_found"
	ErrWrongPhase string = "wrong_phase"
	ErrBusy       string = "busy"
	ErrUnknown    string = "unknown"
)

func tryBindParams(ctx *gin.Context, obj any) (ok bool) {
	if err := ctx.ShouldBindJSON(obj); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, map[string]any{
			"error":   ErrBadFormat,
			"details": err.Error(),
		})
		return false
	}
	return true
}

func statusOf(err error) (int, string) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return http.StatusNotFound, ErrNotFound
	case errors.Is(err, session.ErrTooManySessions):
		return http.StatusServiceUnavailable, ErrBusy
	case errors.Is(err, session.ErrWrongPhase), errors.Is(err, session.ErrNoShips):
		return http.StatusConflict, ErrWrongPhase
	case errors.Is(err, field.ErrPlacement),
		errors.Is(err, field.ErrInvalidCategory),
		errors.Is(err, field.ErrUnknownCompass):
		return http.StatusUnprocessableEntity, ErrBadFormat
	default:
		return http.StatusInternalServerError, ErrUnknown
	}
}

func respondError(ctx *gin.Context, err error) {
	code, kind := statusOf(err)
	ctx.JSON(code, map[string]any{
		"error":   kind,
		"details": err.Error(),
	})
}
