package types

// Measure is the unit of measure a product is sold in.
type Measure string

const (
  MeasureKG    Measure = "KG"
  MeasureUnit  Measure = "UNIT"
  MeasureLiter Measure = "LITER"
)

func (m Measure) Valid() bool {
  switch m {
  case MeasureKG, MeasureUnit, MeasureLiter:
    return true
  }
  return false
}
