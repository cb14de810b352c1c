package handlers

import (
	"errors"
	"net/http"

	"orcasys/internal/domain/pricing"
	"orcasys/internal/infrastructure/logging"
	"orcasys/internal/usecase"
	"orcasys/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_INPUT", "Invalid request payload", http.StatusBadRequest)
	errMissingFile    = pkg.NewDomainErrorSimple("INVALID_INPUT", "A file must be sent in the \"file\" field", http.StatusBadRequest)
)

type fieldDetails struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// notFoundErrors maps each not-found sentinel to its API code.
var notFoundErrors = []struct {
	err     error
	code    string
	message string
}{
	{usecase.ErrClientNotFound, "CLIENT_NOT_FOUND", "Client not found"},
	{usecase.ErrSellerNotFound, "SELLER_NOT_FOUND", "Seller not found"},
	{usecase.ErrPriceItemNotFound, "PRICE_ITEM_NOT_FOUND", "Price table item not found"},
	{usecase.ErrCanvasColorNotFound, "CANVAS_COLOR_NOT_FOUND", "Canvas color not found"},
	{usecase.ErrBudgetNotFound, "BUDGET_NOT_FOUND", "Budget not found"},
	{usecase.ErrCommissionNotFound, "COMMISSION_NOT_FOUND", "Commission not found"},
}

var duplicateErrors = []struct {
	err     error
	code    string
	message string
}{
	{usecase.ErrClientDuplicateName, "CLIENT_NAME_EXISTS", "A client with this name already exists"},
	{usecase.ErrClientDuplicatePhone, "CLIENT_PHONE_EXISTS", "A client with this phone already exists"},
	{usecase.ErrPriceItemDuplicate, "PRICE_ITEM_CODE_EXISTS", "A price table item with this code already exists"},
	{usecase.ErrCanvasColorDuplicate, "CANVAS_COLOR_EXISTS", "A canvas color with this name already exists"},
}

func mapError(err error) *pkg.AppError {
	var ve *usecase.ValidationError
	if errors.As(err, &ve) {
		return pkg.NewDomainError("VALIDATION_ERROR", ve.Error(), err, http.StatusBadRequest).
			WithDetails(fieldDetails{Field: ve.Field, Reason: ve.Reason})
	}
	var fe *pricing.FieldError
	if errors.As(err, &fe) {
		return pkg.NewDomainError("VALIDATION_ERROR", fe.Error(), err, http.StatusBadRequest).
			WithDetails(fieldDetails{Field: fe.Field, Reason: fe.Reason})
	}
	var blocked *usecase.DependencyBlockedError
	if errors.As(err, &blocked) {
		return pkg.NewDomainError("CLIENT_HAS_DEPENDENCIES", "Client has dependent budgets; use force to delete them too", err, http.StatusConflict).
			WithDetails(blocked.Report)
	}

	switch {
	case errors.Is(err, usecase.ErrNotFound):
		for _, nf := range notFoundErrors {
			if errors.Is(err, nf.err) {
				return pkg.NewDomainError(nf.code, nf.message, err, http.StatusNotFound)
			}
		}
		return pkg.NewDomainError("NOT_FOUND", "Resource not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrDuplicate):
		for _, d := range duplicateErrors {
			if errors.Is(err, d.err) {
				return pkg.NewDomainError(d.code, d.message, err, http.StatusConflict)
			}
		}
		return pkg.NewDomainError("ALREADY_EXISTS", "Resource already exists", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// respondError writes the mapped error. Server errors are logged under event.
func respondError(c *gin.Context, event string, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).Error(event, zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondInvalidPayload(c *gin.Context) {
	c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
}
