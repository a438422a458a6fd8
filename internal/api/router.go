package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bookingReportHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/booking_report"
	decideBookingHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/decide_booking"
	equipmentStatsHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/equipment_stats"
	getAvailabilityHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/get_booking"
	getEquipmentHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/get_equipment"
	listBookingsHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/list_bookings"
	listEquipmentHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/list_equipment"
	listSupervisorsHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/list_supervisors"
	manageSettingsHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/manage_settings"
	requestBookingHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/request_booking"
	updateEquipmentStatusHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/update_equipment_status"
	"github.com/m04kA/SMC-LabBookingService/internal/api/middleware"
)

// Handlers набор HTTP обработчиков сервиса
type Handlers struct {
	RequestBooking        *requestBookingHandler.Handler
	DecideBooking         *decideBookingHandler.Handler
	GetBooking            *getBookingHandler.Handler
	ListBookings          *listBookingsHandler.Handler
	GetAvailability       *getAvailabilityHandler.Handler
	ListEquipment         *listEquipmentHandler.Handler
	EquipmentStats        *equipmentStatsHandler.Handler
	GetEquipment          *getEquipmentHandler.Handler
	UpdateEquipmentStatus *updateEquipmentStatusHandler.Handler
	Settings              *manageSettingsHandler.Handler
	BookingReport         *bookingReportHandler.Handler
	ListSupervisors       *listSupervisorsHandler.Handler
}

// MetricsOptions настройки экспорта метрик; nil Collector отключает метрики
type MetricsOptions struct {
	Collector middleware.HTTPMetrics
	Path      string
	Handler   http.Handler // По умолчанию promhttp.Handler()
}

// NewRouter собирает маршруты /api/v1
func NewRouter(h Handlers, opts MetricsOptions) *mux.Router {
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if opts.Collector != nil {
		r.Use(middleware.MetricsMiddleware(opts.Collector))

		// Metrics endpoint (публичный, без аутентификации)
		handler := opts.Handler
		if handler == nil {
			handler = promhttp.Handler()
		}
		r.Handle(opts.Path, handler).Methods(http.MethodGet)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог оборудования
	api.HandleFunc("/equipment", h.ListEquipment.Handle).Methods(http.MethodGet)
	// stats регистрируется до {equipmentId}, иначе перехватывается как ID
	api.HandleFunc("/equipment/stats", h.EquipmentStats.Handle).Methods(http.MethodGet)
	api.HandleFunc("/equipment/{equipmentId}", h.GetEquipment.Handle).Methods(http.MethodGet)

	// Доступность слотов на дату
	api.HandleFunc("/equipment/{equipmentId}/availability", h.GetAvailability.Handle).Methods(http.MethodGet)

	// Просмотр настроек
	api.HandleFunc("/settings/holidays", h.Settings.ListHolidays).Methods(http.MethodGet)
	api.HandleFunc("/settings/rules", h.Settings.ListRules).Methods(http.MethodGet)
	api.HandleFunc("/settings/breaks", h.Settings.ListBreaks).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID и X-User-Role)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", h.RequestBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", h.ListBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", h.GetBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/decision", h.DecideBooking.Handle).Methods(http.MethodPatch)

	// --- Оборудование (администратор) ---
	protected.HandleFunc("/equipment/{equipmentId}/status", h.UpdateEquipmentStatus.Handle).Methods(http.MethodPatch)

	// --- Настройки (администратор) ---
	protected.HandleFunc("/settings/holidays", h.Settings.AddHoliday).Methods(http.MethodPost)
	protected.HandleFunc("/settings/holidays/{id}", h.Settings.RemoveHoliday).Methods(http.MethodDelete)
	protected.HandleFunc("/settings/rules", h.Settings.AddRule).Methods(http.MethodPost)
	protected.HandleFunc("/settings/rules/{id}", h.Settings.RemoveRule).Methods(http.MethodDelete)
	protected.HandleFunc("/settings/rules/{id}/toggle", h.Settings.ToggleRule).Methods(http.MethodPatch)
	protected.HandleFunc("/settings/breaks", h.Settings.AddBreak).Methods(http.MethodPost)
	protected.HandleFunc("/settings/breaks/{id}", h.Settings.RemoveBreak).Methods(http.MethodDelete)
	protected.HandleFunc("/settings/breaks/{id}/toggle", h.Settings.ToggleBreak).Methods(http.MethodPatch)

	// --- Отчеты ---
	protected.HandleFunc("/reports/bookings", h.BookingReport.Handle).Methods(http.MethodGet)

	// --- Справочник руководителей (администратор) ---
	protected.HandleFunc("/supervisors", h.ListSupervisors.Handle).Methods(http.MethodGet)

	return r
}
