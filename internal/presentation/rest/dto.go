package rest

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/crediya/loan-service/internal/domain/errs"
	"github.com/crediya/loan-service/internal/domain/model"
)

const termDateLayout = "2006-01-02"

// applicationSaveDTO is the request body for submitting a loan application.
type applicationSaveDTO struct {
	Amount           decimal.Decimal `json:"amount"`
	Term             string          `json:"term"`
	Email            string          `json:"email"`
	IdentityDocument string          `json:"identityDocument"`
	LoanTypeID       int64           `json:"loanTypeId"`
}

// toModel applies the request-shape checks the domain validator does not
// own (document charset and length, term date format) and maps the DTO to
// the domain model.
func (d applicationSaveDTO) toModel() (*model.Application, error) {
	doc := strings.TrimSpace(d.IdentityDocument)
	if doc != "" {
		for _, r := range doc {
			if !unicode.IsDigit(r) {
				return nil, errs.NewValidation("identityDocument", errs.MsgDocumentNumeric)
			}
		}
		if len(doc) < 6 || len(doc) > 20 {
			return nil, errs.NewValidation("identityDocument", errs.MsgDocumentLength)
		}
	}

	var term time.Time
	if d.Term != "" {
		t, err := time.Parse(termDateLayout, d.Term)
		if err != nil {
			t, err = time.Parse(time.RFC3339, d.Term)
		}
		if err != nil {
			return nil, errs.NewValidation("term", fmt.Sprintf("term must be a date in %s format", termDateLayout))
		}
		term = t
	}

	return &model.Application{
		Amount:           d.Amount,
		Term:             term,
		Email:            d.Email,
		IdentityDocument: doc,
		LoanTypeID:       d.LoanTypeID,
	}, nil
}

// applicationResponse is the body returned for a persisted application.
type applicationResponse struct {
	ID               int64           `json:"id"`
	Amount           decimal.Decimal `json:"amount"`
	Term             string          `json:"term"`
	Email            string          `json:"email"`
	IdentityDocument string          `json:"identityDocument"`
	StateID          int64           `json:"stateId"`
	LoanTypeID       int64           `json:"loanTypeId"`
}

func toApplicationResponse(a *model.Application) applicationResponse {
	return applicationResponse{
		ID:               a.ID,
		Amount:           a.Amount,
		Term:             a.Term.Format(termDateLayout),
		Email:            a.Email,
		IdentityDocument: a.IdentityDocument,
		StateID:          a.StateID,
		LoanTypeID:       a.LoanTypeID,
	}
}

// pendingRowResponse is one row of the review queue listing.
type pendingRowResponse struct {
	ID               int64            `json:"id"`
	Amount           decimal.Decimal  `json:"amount"`
	Term             string           `json:"term"`
	Email            string           `json:"email"`
	IdentityDocument string           `json:"identityDocument"`
	StateName        string           `json:"stateName"`
	LoanTypeName     string           `json:"loanTypeName"`
	FullName         string           `json:"fullName,omitempty"`
	BaseSalary       *decimal.Decimal `json:"baseSalary,omitempty"`
}

// pageResponse is the paged envelope for listings.
type pageResponse struct {
	Content       []pendingRowResponse `json:"content"`
	Page          int                  `json:"page"`
	Size          int                  `json:"size"`
	TotalElements int64                `json:"totalElements"`
	TotalPages    int                  `json:"totalPages"`
}

func toPageResponse(page model.Page[model.PendingRow]) pageResponse {
	content := make([]pendingRowResponse, 0, len(page.Items))
	for _, row := range page.Items {
		content = append(content, pendingRowResponse{
			ID:               row.ID,
			Amount:           row.Amount,
			Term:             row.Term.Format(termDateLayout),
			Email:            row.Email,
			IdentityDocument: row.IdentityDocument,
			StateName:        row.StateName,
			LoanTypeName:     row.LoanTypeName,
			FullName:         row.FullName,
			BaseSalary:       row.BaseSalary,
		})
	}
	return pageResponse{
		Content:       content,
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
	}
}

// errorResponse is the error body. Field is empty for non-field errors.
type errorResponse struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}
