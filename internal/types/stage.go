package types

// Stage is the lifecycle phase of a publication. Only StageExposure is
// assigned today (at creation); the remaining stages are declared as the
// extension point for the payment-window and closing flows.
type Stage string

const (
  StageExposure Stage = "EXPOSURE"
  StagePayment  Stage = "PAYMENT"
  StageClosed   Stage = "CLOSED"
)
