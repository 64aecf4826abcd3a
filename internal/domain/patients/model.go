package patients

import "time"

// Species define las especies atendidas por la clínica.
// @Enum dog, cat, bird, rabbit, other
type Species string

const (
	SpeciesDog    Species = "dog"
	SpeciesCat    Species = "cat"
	SpeciesBird   Species = "bird"
	SpeciesRabbit Species = "rabbit"
	SpeciesOther  Species = "other"
)

// Sex define el sexo del paciente.
// @Enum male, female, unknown
type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexUnknown Sex = "unknown"
)

// Patient representa a la mascota como paciente de la clínica.
// ClientID referencia al dueño (módulo clients).
type Patient struct {
	ID       string
	ClientID string

	Name    string
	Species Species
	Breed   string
	Sex     Sex
	AgeYears int

	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}
