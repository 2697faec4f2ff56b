package handlers

// Set groups the handlers mounted by the HTTP server
type Set struct {
	Health    *HealthCheckHandler
	KPI       *KPIHandler
	Assistant *AssistantHandler
}
