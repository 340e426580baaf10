package create_reservation

import (
	"time"

	"github.com/m04kA/TennisCourtBooking/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	User      *domain.User // Аутентифицированный пользователь
	CourtID   int64        // ID корта
	StartTime time.Time    // Начало (включительно)
	EndTime   time.Time    // Окончание (не включительно)
	Attendees int          // Количество участников
}

// Response модель ответа с созданным бронированием
type Response struct {
	ReservationID string    // ID бронирования
	ClientSecret  string    // Секрет для оплаты на клиенте
	PaymentRef    string    // Ссылка на платеж
	CourtID       int64     // ID корта
	StartTime     time.Time // Начало
	EndTime       time.Time // Окончание
	Attendees     int       // Количество участников
	TotalCost     float64   // Стоимость
	Pricing       string    // discounted или standard
	Status        string    // Статус бронирования
	CreatedAt     time.Time // Время создания
}
