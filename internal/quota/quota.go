// Package quota defines the boundary to the external economy collaborator
// that approves or blocks document processing based on plan tier and
// estimated cost. The ingestion core only consumes this interface; the real
// implementation lives with the account/billing system.
package quota

import "context"

// Request describes a prospective piece of processing work.
type Request struct {
	// SourceContent is the content the request concerns, when available.
	// Page-limit checks run before extraction and leave it empty.
	SourceContent string
	// SourceCharCount is the estimated character volume of the work.
	SourceCharCount int
	// PDFPageCount is the page count for PDF sources, zero otherwise.
	PDFPageCount int
}

// Decision is the collaborator's verdict on a Request.
type Decision struct {
	CanProceed  bool
	BlockReason string
}

// UserEconomy carries the plan-specific limits for the current user.
type UserEconomy struct {
	// PDFPageLimit is the maximum page count the plan allows per document.
	PDFPageLimit int
}

// Service is the economy collaborator. Implementations must be safe for
// concurrent use; the core may query it from multiple extraction calls.
type Service interface {
	// CanGenerateContent asks whether processing may proceed.
	CanGenerateContent(ctx context.Context, req Request) (Decision, error)
	// UserEconomy returns the current plan limits. A nil economy means no
	// limit is enforced locally and CanGenerateContent alone gates.
	UserEconomy(ctx context.Context) (*UserEconomy, error)
}

// Unlimited approves everything and enforces no local limits. It is the
// default collaborator for standalone CLI runs.
type Unlimited struct{}

func (Unlimited) CanGenerateContent(context.Context, Request) (Decision, error) {
	return Decision{CanProceed: true}, nil
}

func (Unlimited) UserEconomy(context.Context) (*UserEconomy, error) {
	return nil, nil
}
