package entity

import "time"

// Material representa una materia prima del taller (lana, algodón, tintes...).
// ID y CreatedAt los asigna el store al crear; el resto de campos es mutable.
// Supplier, Origin, CostCents y Currency son opcionales.
type Material struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Unit      string    `json:"unit"` // unidad de presentación: "kg", "m", "unidad"
	Supplier  string    `json:"supplier,omitempty"`
	Origin    string    `json:"origin,omitempty"`
	Certified bool      `json:"certified"`
	CostCents *int64    `json:"costCents,omitempty"` // costo en centavos, nunca negativo
	Currency  string    `json:"currency,omitempty"`  // código de 3 letras (COP, EUR...)
	CreatedAt time.Time `json:"createdAt"`
}
