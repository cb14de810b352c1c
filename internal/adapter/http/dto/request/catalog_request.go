package request

import "orcasys/internal/usecase"

type CreateSellerRequest struct {
	Name                 string  `json:"name" binding:"required"`
	Email                string  `json:"email"`
	Phone                string  `json:"phone"`
	CommissionPercentage float64 `json:"commission_percentage"`
	RegistrationNumber   string  `json:"registration_number"`
}

func (r CreateSellerRequest) ToInput() usecase.SellerInput {
	return usecase.SellerInput{
		Name:                 r.Name,
		Email:                r.Email,
		Phone:                r.Phone,
		CommissionPercentage: r.CommissionPercentage,
		RegistrationNumber:   r.RegistrationNumber,
	}
}

type UpdateSellerRequest struct {
	Name                 *string  `json:"name"`
	Email                *string  `json:"email"`
	Phone                *string  `json:"phone"`
	CommissionPercentage *float64 `json:"commission_percentage"`
	RegistrationNumber   *string  `json:"registration_number"`
	Active               *bool    `json:"active"`
}

func (r UpdateSellerRequest) ToPatch() usecase.SellerPatch {
	return usecase.SellerPatch{
		Name:                 r.Name,
		Email:                r.Email,
		Phone:                r.Phone,
		CommissionPercentage: r.CommissionPercentage,
		RegistrationNumber:   r.RegistrationNumber,
		Active:               r.Active,
	}
}

type CreatePriceItemRequest struct {
	Code      string  `json:"code" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Unit      string  `json:"unit" binding:"required"`
	UnitPrice float64 `json:"unit_price"`
	Category  string  `json:"category" binding:"required"`
}

func (r CreatePriceItemRequest) ToInput() usecase.PriceItemInput {
	return usecase.PriceItemInput{
		Code:      r.Code,
		Name:      r.Name,
		Unit:      r.Unit,
		UnitPrice: r.UnitPrice,
		Category:  r.Category,
	}
}

type UpdatePriceItemRequest struct {
	Code      *string  `json:"code"`
	Name      *string  `json:"name"`
	Unit      *string  `json:"unit"`
	UnitPrice *float64 `json:"unit_price"`
	Category  *string  `json:"category"`
}

func (r UpdatePriceItemRequest) ToPatch() usecase.PriceItemPatch {
	return usecase.PriceItemPatch{
		Code:      r.Code,
		Name:      r.Name,
		Unit:      r.Unit,
		UnitPrice: r.UnitPrice,
		Category:  r.Category,
	}
}

type CreateCanvasColorRequest struct {
	Name    string `json:"name" binding:"required"`
	HexCode string `json:"hex_code" binding:"required"`
}

func (r CreateCanvasColorRequest) ToInput() usecase.CanvasColorInput {
	return usecase.CanvasColorInput{Name: r.Name, HexCode: r.HexCode}
}

type UpdateCanvasColorRequest struct {
	Name    *string `json:"name"`
	HexCode *string `json:"hex_code"`
}

func (r UpdateCanvasColorRequest) ToPatch() usecase.CanvasColorPatch {
	return usecase.CanvasColorPatch{Name: r.Name, HexCode: r.HexCode}
}
