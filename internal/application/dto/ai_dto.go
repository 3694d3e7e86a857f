package dto

// AIDescriptionRequest petición de descripción de producto generada por IA.
type AIDescriptionRequest struct {
	ProductName string `json:"product_name"`
}

// AIDescriptionResponse descripción sugerida.
type AIDescriptionResponse struct {
	Description string `json:"description"`
}

// AIInsightsResponse análisis de ventas generado por IA.
type AIInsightsResponse struct {
	Insights string `json:"insights"`
}
