package domain

import "time"

type Specialty string

const (
	SpecialtyCabinets    Specialty = "cabinets"
	SpecialtyCountertops Specialty = "countertops"
	SpecialtyFlooring    Specialty = "flooring"
	SpecialtyGeneral     Specialty = "general"
)

type Team struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Specialty Specialty `json:"specialty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int32     `json:"-"`
}
