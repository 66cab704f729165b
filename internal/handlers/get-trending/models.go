// internal/handlers/get-trending/models.go
package gettrending

import "moviebot-fulfillment/internal/models"

type Output struct {
	Movies []models.TrendingMovie `json:"movies"`
}
