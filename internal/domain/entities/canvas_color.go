package entities

import "time"

type CanvasColor struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	HexCode   string    `json:"hex_code"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultCanvasColors is the palette seeded by the initialize operation.
var DefaultCanvasColors = []CanvasColor{
	{Name: "BRANCA", HexCode: "#FFFFFF"},
	{Name: "PRETA", HexCode: "#000000"},
	{Name: "AZUL", HexCode: "#0000FF"},
	{Name: "VERDE", HexCode: "#008000"},
	{Name: "AMARELA", HexCode: "#FFFF00"},
	{Name: "VERMELHA", HexCode: "#FF0000"},
}
