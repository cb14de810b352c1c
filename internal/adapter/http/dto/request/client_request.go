package request

import "orcasys/internal/usecase"

type CreateClientRequest struct {
	Name         string `json:"name" binding:"required"`
	ContactName  string `json:"contact_name"`
	Phone        string `json:"phone" binding:"required"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
	Observations string `json:"observations"`
}

func (r CreateClientRequest) ToInput() usecase.ClientInput {
	return usecase.ClientInput{
		Name:         r.Name,
		ContactName:  r.ContactName,
		Phone:        r.Phone,
		Email:        r.Email,
		Address:      r.Address,
		City:         r.City,
		State:        r.State,
		ZipCode:      r.ZipCode,
		Observations: r.Observations,
	}
}

// UpdateClientRequest is a partial update; absent fields keep their value.
type UpdateClientRequest struct {
	Name         *string `json:"name"`
	ContactName  *string `json:"contact_name"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	ZipCode      *string `json:"zip_code"`
	Observations *string `json:"observations"`
}

func (r UpdateClientRequest) ToPatch() usecase.ClientPatch {
	return usecase.ClientPatch{
		Name:         r.Name,
		ContactName:  r.ContactName,
		Phone:        r.Phone,
		Email:        r.Email,
		Address:      r.Address,
		City:         r.City,
		State:        r.State,
		ZipCode:      r.ZipCode,
		Observations: r.Observations,
	}
}

// ClientIDsRequest carries the ids of a bulk client operation.
type ClientIDsRequest struct {
	ClientIDs []string `json:"client_ids" binding:"required"`
	Force     bool     `json:"force"`
}

type ExportClientsRequest struct {
	Fields       []string `json:"fields"`
	IncludeDates bool     `json:"include_dates"`
	DateFormat   string   `json:"date_format"`
	Format       string   `json:"format"`
}

func (r ExportClientsRequest) ToOptions() usecase.ExportOptions {
	return usecase.ExportOptions{
		Fields:       r.Fields,
		IncludeDates: r.IncludeDates,
		DateFormat:   r.DateFormat,
		Format:       r.Format,
	}
}
