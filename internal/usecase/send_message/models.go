package send_message

// Каналы доставки
const (
	ChannelSMS   = "sms"
	ChannelEmail = "email"
)

// Request модель запроса на отправку произвольного сообщения
type Request struct {
	Channel string
	To      string
	Message string
	Subject string // Только для email, опционально
}
