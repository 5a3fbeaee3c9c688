package dto

type AppointmentListDTO struct {
	ID          uint   `json:"id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	EndTime     string `json:"end_time"`
	Status      string `json:"status"`
	QueueNumber int    `json:"queue_number"`
	BarberName  string `json:"barber_name"`
	ServiceName string `json:"service_name"`
}

// CalendarEventDTO matches what the calendar frontend consumes: ISO
// start/end plus a per-status color.
type CalendarEventDTO struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Color    string `json:"color"`
	Status   string `json:"status"`
	Barber   string `json:"barber"`
	Customer string `json:"customer,omitempty"`
}
