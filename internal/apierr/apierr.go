package apierr

import (
  "errors"
  "fmt"
  "net/http"
)

// Codes for the domain rule violations surfaced to callers.
const (
  CodeNotFound               = "not_found"
  CodeProductNotInOffer      = "product_not_in_offer"
  CodeInsufficientStock      = "insufficient_stock"
  CodeDuplicateParticipation = "duplicate_participation"
  CodeOfferUnavailable       = "offer_unavailable"
  CodeInvalidInput           = "invalid_input"
  CodeUnauthorized           = "unauthorized"
  CodeInternal               = "internal"
)

type Error struct {
  Status int
  Code   string
  Err    error
}

func (e *Error) Error() string {
  if e == nil {
    return ""
  }
  if e.Err != nil {
    return e.Err.Error()
  }
  if e.Code != "" {
    return e.Code
  }
  if e.Status != 0 {
    return fmt.Sprintf("api error (%d)", e.Status)
  }
  return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
  return &Error{Status: status, Code: code, Err: err}
}

func NotFound(entity string, id any) *Error {
  return New(http.StatusNotFound, CodeNotFound, fmt.Errorf("%s %v not found", entity, id))
}

func ProductNotInOffer(productID any) *Error {
  return New(http.StatusBadRequest, CodeProductNotInOffer,
    fmt.Errorf("product %v is not part of the publication's offer", productID))
}

func InsufficientStock(productName string, available int) *Error {
  return New(http.StatusBadRequest, CodeInsufficientStock,
    fmt.Errorf("requested quantity for product %q exceeds available stock (%d)", productName, available))
}

func DuplicateParticipation(clientID, publicationID any) *Error {
  return New(http.StatusConflict, CodeDuplicateParticipation,
    fmt.Errorf("client %v already has a participation in publication %v", clientID, publicationID))
}

func OfferUnavailable(offerID any) *Error {
  return New(http.StatusBadRequest, CodeOfferUnavailable,
    fmt.Errorf("offer %v is not available for a new publication", offerID))
}

func InvalidInput(err error) *Error {
  return New(http.StatusBadRequest, CodeInvalidInput, err)
}

func Unauthorized(err error) *Error {
  return New(http.StatusUnauthorized, CodeUnauthorized, err)
}

func Internal(err error) *Error {
  return New(http.StatusInternalServerError, CodeInternal, err)
}

// From extracts an *Error from err's chain. Anything else is reported as an
// internal error so persistence details never leak to the caller.
func From(err error) *Error {
  var apiErr *Error
  if errors.As(err, &apiErr) {
    return apiErr
  }
  return Internal(err)
}

// Is reports whether err carries the given code.
func Is(err error, code string) bool {
  var apiErr *Error
  return errors.As(err, &apiErr) && apiErr.Code == code
}
