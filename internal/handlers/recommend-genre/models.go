// internal/handlers/recommend-genre/models.go
package recommendgenre

type Output struct {
	Genre  string   `json:"genre"`
	Movies []string `json:"movies"`
}
