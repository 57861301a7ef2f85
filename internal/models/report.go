package models

import "time"

// DashboardSummary — сводка для дашборда и генератора отчетов.
// Слой отчетов (PDF/графики) потребляет ее как read-only источник данных.
type DashboardSummary struct {
	IncidentsByStatus   map[string]int64 `json:"incidents_by_status"`
	IncidentsBySeverity map[string]int64 `json:"incidents_by_severity"`
	IncidentsByType     map[string]int64 `json:"incidents_by_type"`
	ResourcesByStatus   map[string]int64 `json:"resources_by_status"`
	ResourcesByType     map[string]int64 `json:"resources_by_type"`
	ActiveIncidents     int64            `json:"active_incidents"`
	AvailableResources  int64            `json:"available_resources"`
	GeneratedAt         time.Time        `json:"generated_at"`
}
