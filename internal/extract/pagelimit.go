package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/notewise/docingest/internal/quota"
)

// estimatedCharsPerPage approximates the character volume the economy
// collaborator prices a PDF page at.
const estimatedCharsPerPage = 500

// ValidatePDFPageLimit reads the document's page count and defers the
// accept/reject decision to the economy collaborator. A denial, or a page
// count above the plan's limit, fails with PageLimitExceeded; every other
// failure is rewrapped as a validation failure unless its message already
// concerns pages, in which case it propagates unchanged.
func ValidatePDFPageLimit(ctx context.Context, data []byte, economy quota.Service) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = wrapf(KindExtractionFailed, fmt.Errorf("%v", r), "Failed to validate PDF: %v", r)
		}
		if err != nil && KindOf(err) == KindUnknown {
			if strings.Contains(err.Error(), "pages") {
				return
			}
			err = wrapf(KindExtractionFailed, err, "Failed to validate PDF: %v", err)
		}
	}()

	pageCount, err := pdfPageCount(data)
	if err != nil {
		return err
	}

	decision, err := economy.CanGenerateContent(ctx, quota.Request{
		SourceCharCount: pageCount * estimatedCharsPerPage,
		PDFPageCount:    pageCount,
	})
	if err != nil {
		return err
	}
	if !decision.CanProceed {
		reason := decision.BlockReason
		if strings.TrimSpace(reason) == "" {
			reason = "PDF page limit exceeded"
		}
		return failf(KindPageLimitExceeded, "%s", reason)
	}

	eco, err := economy.UserEconomy(ctx)
	if err != nil {
		return err
	}
	// Absent economy state means no limit is enforced locally.
	if eco != nil && eco.PDFPageLimit > 0 && pageCount > eco.PDFPageLimit {
		return failf(KindPageLimitExceeded,
			"PDF has %d pages, but your plan allows a maximum of %d pages", pageCount, eco.PDFPageLimit)
	}
	return nil
}
