package mail

import "time"

// DeliveryFailureAlert é o que o operador recebe quando uma entrega falha no gateway.
type DeliveryFailureAlert struct {
	DeliveryID string
	Instance   string
	Kind       string
	Number     string
	Code       int
	Message    string
	FailedAt   time.Time
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string

	dialer Dialer
}
