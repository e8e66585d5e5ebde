package convert

import "fmt"

// ValidationError is a fatal defect in the source table. The run aborts
// before any output is written; warnings are logged instead and never
// reach this type.
type ValidationError struct {
	// Row and Column are 1-based positions in the source table, zero when
	// not applicable.
	Row    int
	Column int
	Msg    string
}

func (e *ValidationError) Error() string {
	switch {
	case e.Row > 0 && e.Column > 0:
		return fmt.Sprintf("row %d, column %d: %s", e.Row, e.Column, e.Msg)
	case e.Row > 0:
		return fmt.Sprintf("row %d: %s", e.Row, e.Msg)
	case e.Column > 0:
		return fmt.Sprintf("column %d: %s", e.Column, e.Msg)
	default:
		return e.Msg
	}
}
