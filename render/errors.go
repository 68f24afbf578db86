package render

import "fmt"

// shapeErr is a panic raised while evaluating a shape, recovered and
// returned as an error.
type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("render: %v", s.panicObj)
}

// Stack returns the goroutine stack at the time of the panic.
func (s *shapeErr) Stack() string { return s.stack }
