package configurator

import (
	"fmt"
	"strings"
)

// DefinitionError reports a malformed product definition. It is fatal
// for loading that product and is logged for the admin side; it is
// never rendered to a shopper.
type DefinitionError struct {
	ProductID string
	Problems  []string
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("invalid configuration for product %s: %s", e.ProductID, strings.Join(e.Problems, "; "))
}

// NotFoundError means no configuration exists for the requested product
// id (neither internal nor shop catalog id).
type NotFoundError struct {
	ProductID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product configuration not found: %s", e.ProductID)
}

// UpstreamError wraps a failure of an external collaborator (item
// creation, cart, persistence). The session is kept so the shopper can
// retry the submission.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// PriceUnavailableError means the price calculation itself failed (not
// the soft "no matrix match" case). The UI shows a placeholder and
// blocks submission until a calculation succeeds.
type PriceUnavailableError struct {
	Err error
}

func (e *PriceUnavailableError) Error() string {
	return fmt.Sprintf("price unavailable: %v", e.Err)
}

func (e *PriceUnavailableError) Unwrap() error { return e.Err }
