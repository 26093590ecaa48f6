package locations

// Location representa el negocio de grooming de un groomer.
// groomerId es el id del profile dueño (id opaco del identity provider).
// La lógica de negocio espera a lo sumo un set de filas por groomerId,
// pero el schema no lo fuerza con unique: es una soltura heredada del
// diseño original que se preserva a propósito.
type Location struct {
	ID           string  `json:"id"`
	GroomerID    string  `json:"groomerId"`
	BusinessName string  `json:"businessName"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	Zip          string  `json:"zip"`
	Email        string  `json:"email"`
	PhoneNumber  string  `json:"phoneNumber"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
}
