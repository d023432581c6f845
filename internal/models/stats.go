package models

// DashboardStats are derived counters; ConversionRate is a whole percentage
// of accepted quotations among those that ever left draft.
type DashboardStats struct {
	TotalQuotations int `json:"totalQuotations"`
	TotalClients    int `json:"totalClients"`
	TotalProducts   int `json:"totalProducts"`
	ConversionRate  int `json:"conversionRate"`
}
