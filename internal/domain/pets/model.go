package pets

// Pet representa una mascota registrada por un profile.
// El id es un entero autoincremental que asigna el store; ownerId es el id
// opaco del profile dueño (el sub del token del identity provider).
type Pet struct {
	ID      int64  `json:"id"`
	OwnerID string `json:"ownerId"`
	Name    string `json:"name"`
	Shots   bool   `json:"shots"`
	Type    string `json:"type"`
	Img     string `json:"img"`
}
