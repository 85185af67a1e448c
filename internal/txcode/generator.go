// Package txcode generates the human-readable codes that label transactions,
// in the form TRX-YYYYMMDD-XXXXXXXX.
package txcode

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Generator produces unique transaction codes.
//
//go:generate mockgen -destination=mocks/mock_generator.go -source=generator.go Generator
type Generator interface {
	Next() string
}

type generator struct {
	now func() time.Time
}

// NewGenerator returns a Generator that stamps codes with the current date.
func NewGenerator() Generator {
	return &generator{now: time.Now}
}

// NewGeneratorWithClock allows tests to pin the date portion of the code.
func NewGeneratorWithClock(now func() time.Time) Generator {
	return &generator{now: now}
}

func (g *generator) Next() string {
	// First UUID segment: 8 hex chars, enough entropy to treat collisions
	// within a process lifetime as effectively impossible.
	suffix := strings.ToUpper(strings.SplitN(uuid.NewString(), "-", 2)[0])
	return fmt.Sprintf("TRX-%s-%s", g.now().Format("20060102"), suffix)
}
