package handlers

import (
    "encoding/json"
    "errors"
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/gin-gonic/gin"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/peertrade/escrow-service/internal/domain"
)

func recordError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
    t.Helper()
    gin.SetMode(gin.TestMode)
    recorder := httptest.NewRecorder()
    c, _ := gin.CreateTestContext(recorder)

    respondError(c, err)

    var body map[string]any
    require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
    return recorder, body
}

func TestRespondError_StatusMapping(t *testing.T) {
    cases := []struct {
        err    error
        status int
        code   string
    }{
        {domain.ErrInvalidAmount, http.StatusBadRequest, "INVALID_AMOUNT"},
        {domain.ErrInvalidRating, http.StatusBadRequest, "INVALID_RATING"},
        {domain.ErrDuplicateReview, http.StatusConflict, "DUPLICATE_REVIEW"},
        {domain.ErrUnauthorized, http.StatusForbidden, "UNAUTHORIZED"},
        {domain.ErrEscrowNotFound, http.StatusNotFound, "ESCROW_NOT_FOUND"},
        {domain.ErrOrderNotFound, http.StatusNotFound, "ORDER_NOT_FOUND"},
        {domain.ErrGatewayUnavailable, http.StatusServiceUnavailable, "GATEWAY_UNAVAILABLE"},
    }

    for _, tc := range cases {
        recorder, body := recordError(t, tc.err)
        assert.Equal(t, tc.status, recorder.Code, tc.code)
        assert.Equal(t, tc.code, body["code"])
    }
}

func TestRespondError_StateConflictCarriesCurrentState(t *testing.T) {
    err := domain.StateConflict(domain.ErrInvalidTransition, domain.EscrowReleased)

    recorder, body := recordError(t, err)
    assert.Equal(t, http.StatusConflict, recorder.Code)
    assert.Equal(t, "INVALID_TRANSITION", body["code"])
    assert.Equal(t, "RELEASED", body["current_state"])
}

func TestRespondError_UnknownErrorIsInternal(t *testing.T) {
    recorder, body := recordError(t, errors.New("boom"))
    assert.Equal(t, http.StatusInternalServerError, recorder.Code)
    assert.Equal(t, "internal error", body["error"])
}
