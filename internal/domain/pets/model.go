package pets

// Pet es el registro persistido. El shape JSON es el del snapshot guardado
// bajo la key "pets": {id, name, species, age}.
type Pet struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Species string `json:"species"`
	Age     int    `json:"age"`
}

// Draft son los campos editables de una mascota.
// Punteros para merge real: nil = no tocar.
type Draft struct {
	Name    *string
	Species *string
	Age     *int
}

// NewDraft arma un Draft con todos los campos presentes.
func NewDraft(name, species string, age int) Draft {
	return Draft{Name: &name, Species: &species, Age: &age}
}

// apply mezcla d sobre p (shallow merge). El ID nunca cambia.
func (d Draft) apply(p Pet) Pet {
	if d.Name != nil {
		p.Name = *d.Name
	}
	if d.Species != nil {
		p.Species = *d.Species
	}
	if d.Age != nil {
		p.Age = *d.Age
	}
	return p
}
