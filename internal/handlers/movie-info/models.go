// internal/handlers/movie-info/models.go
package movieinfo

// Field values for the resolved sub-question.
const (
	FieldDuration = "duration"
	FieldPlot     = "plot"
	FieldGeneral  = "general"
)

type Output struct {
	Title       string  `json:"title"`
	ReleaseYear string  `json:"releaseYear"`
	Duration    string  `json:"duration"`
	Description string  `json:"description"`
	Field       string  `json:"field"`
	Confidence  float64 `json:"confidence"`
}
