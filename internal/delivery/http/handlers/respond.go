package handlers

import (
    "errors"
    "net/http"

    "github.com/gin-gonic/gin"
    "github.com/peertrade/escrow-service/internal/domain"
)

// respondError maps the domain error taxonomy onto HTTP. State conflicts
// carry the escrow's current state so clients can resync without a second
// round trip.
func respondError(c *gin.Context, err error) {
    var domainErr *domain.Error
    if !errors.As(err, &domainErr) {
        c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
        return
    }

    body := gin.H{
        "error": domainErr.Message,
        "code":  domainErr.Code,
    }

    switch domainErr.Kind {
    case domain.KindValidation:
        c.JSON(http.StatusBadRequest, body)
    case domain.KindStateConflict:
        if domainErr.CurrentState != "" {
            body["current_state"] = string(domainErr.CurrentState)
        }
        c.JSON(http.StatusConflict, body)
    case domain.KindAuthorization:
        c.JSON(http.StatusForbidden, body)
    case domain.KindNotFound:
        c.JSON(http.StatusNotFound, body)
    case domain.KindDependency:
        if errors.Is(domainErr, domain.ErrGatewayUnavailable) {
            c.JSON(http.StatusServiceUnavailable, body)
            return
        }
        c.JSON(http.StatusBadGateway, body)
    default:
        c.JSON(http.StatusInternalServerError, body)
    }
}
