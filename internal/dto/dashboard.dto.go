package dto

type DashboardDTO struct {
	TotalClients      int `json:"total_clients"`
	ActiveClients     int `json:"active_clients"`
	TotalProcedures   int `json:"total_procedures"`
	TodayAppointments int `json:"today_appointments"`
}
