package dto

import "canteirocircular_backend/internals/features/home/dashboard/service"

// MetricsResponse é o payload de GET /dashboard/metrics.
type MetricsResponse = service.Metrics
