// Package pipeline implements the event family generation pipeline: title
// selection, LLM map and reduce stages, the pure merge engine, and the
// orchestrator that drives one run through its phases.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/design4music/sni-platform-sub000/pkg/llm"
	"github.com/design4music/sni-platform-sub000/pkg/models"
)

// ErrStoreUnavailable marks failures of the backing store. Fatal to the
// run; services wrap their transport errors with it.
var ErrStoreUnavailable = errors.New("store unavailable")

// ConflictingAssignmentError reports a title found bound to a different
// EF at commit time. The orchestrator re-reads and re-merges the survivor
// once; a second conflict escalates to an invariant violation.
type ConflictingAssignmentError struct {
	TitleID    string
	AssignedTo string
	WantEF     string
}

func (e *ConflictingAssignmentError) Error() string {
	return fmt.Sprintf("title %s already assigned to EF %s, wanted EF %s", e.TitleID, e.AssignedTo, e.WantEF)
}

// InvariantViolationError reports a detected breach of a pipeline
// invariant. Fatal to the run.
type InvariantViolationError struct {
	Invariant string
	Detail    string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("invariant violation (%s): %s", e.Invariant, e.Detail)
}

// Invariant names used in violation reports.
const (
	InvariantSingleAssignment = "single-assignment"
	InvariantActiveKeyUnique  = "active-key-unique"
	InvariantLineageSingleHop = "lineage-single-hop"
)

// Categorize maps a run-fatal error onto the recorded error category.
// Per-item LLM failures never reach this point; an llm category here
// means the endpoint itself rejected us.
func Categorize(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.Canceled) {
		return models.ErrorCategoryCanceled
	}

	var invariant *InvariantViolationError
	if errors.As(err, &invariant) {
		return models.ErrorCategoryInvariant
	}

	// A conflict that bubbles out survived its one re-merge attempt.
	var conflict *ConflictingAssignmentError
	if errors.As(err, &conflict) {
		return models.ErrorCategoryInvariant
	}

	var llmErr *llm.Error
	if errors.As(err, &llmErr) || errors.Is(err, llm.ErrMalformed) {
		return models.ErrorCategoryLLM
	}

	// Everything else that can kill a run is a store operation.
	return models.ErrorCategoryStore
}
