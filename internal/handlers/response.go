package handlers

import (
  "github.com/gin-gonic/gin"

  "github.com/feiracoletiva/feira-backend/internal/apierr"
)

type APIError struct {
  Code    string `json:"code"`
  Message string `json:"message"`
}

type ErrorEnvelope struct {
  Error APIError `json:"error"`
}

func RespondOK(c *gin.Context, status int, payload any) {
  c.JSON(status, payload)
}

// RespondError translates a service error into the wire envelope. Unknown
// errors are collapsed into a 500 so internals never leak to clients.
func RespondError(c *gin.Context, err error) {
  ae := apierr.From(err)
  msg := ae.Error()
  if ae.Code == apierr.CodeInternal {
    msg = "internal server error"
  }
  c.JSON(ae.Status, ErrorEnvelope{Error: APIError{Code: ae.Code, Message: msg}})
}
