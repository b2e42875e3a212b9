package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	assistantapp "github.com/worksy/worksy-api/application/assistant"
	bookingapp "github.com/worksy/worksy-api/application/booking"
	catalogapp "github.com/worksy/worksy-api/application/catalog"
	messageapp "github.com/worksy/worksy-api/application/message"
	userapp "github.com/worksy/worksy-api/application/user"
	cerr "github.com/worksy/worksy-api/utils/errors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp      userapp.UserApp
	CatalogApp   catalogapp.CatalogApp
	BookingApp   bookingapp.BookingApp
	MessageApp   messageapp.MessageApp
	AssistantApp assistantapp.AssistantApp
}

func NewTransport(
	UserApp userapp.UserApp,
	CatalogApp catalogapp.CatalogApp,
	BookingApp bookingapp.BookingApp,
	MessageApp messageapp.MessageApp,
	AssistantApp assistantapp.AssistantApp,
) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		UserApp:      UserApp,
		CatalogApp:   CatalogApp,
		BookingApp:   BookingApp,
		MessageApp:   MessageApp,
		AssistantApp: AssistantApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	mux.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	mux.HandleFunc("/health", rh.Health).Methods(http.MethodGet)

	mux.HandleFunc("/users", rh.GetUsers).Methods(http.MethodGet)
	mux.HandleFunc("/users", rh.CreateUser).Methods(http.MethodPost)
	mux.HandleFunc("/users", rh.UpdateUser).Methods(http.MethodPut)
	mux.HandleFunc("/users", rh.DeleteUser).Methods(http.MethodDelete)

	mux.HandleFunc("/services", rh.GetServices).Methods(http.MethodGet)
	mux.HandleFunc("/services", rh.CreateService).Methods(http.MethodPost)
	mux.HandleFunc("/services", rh.UpdateService).Methods(http.MethodPut)
	mux.HandleFunc("/services", rh.DeleteService).Methods(http.MethodDelete)

	mux.HandleFunc("/bookings", rh.GetBookings).Methods(http.MethodGet)
	mux.HandleFunc("/bookings", rh.CreateBooking).Methods(http.MethodPost)
	mux.HandleFunc("/bookings", rh.UpdateBooking).Methods(http.MethodPut)
	mux.HandleFunc("/bookings", rh.DeleteBooking).Methods(http.MethodDelete)

	mux.HandleFunc("/messages", rh.GetMessages).Methods(http.MethodGet)
	mux.HandleFunc("/messages", rh.SendMessage).Methods(http.MethodPost)

	mux.HandleFunc("/ai", rh.Chat).Methods(http.MethodPost)
	mux.HandleFunc("/ai/suggest", rh.SuggestServices).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(MetricsMiddleware())

	return mux
}

// Health handler
// @Summary Health check
// @Tags Ops
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError converts an application error into the contract's
// {"error": message} body. Anything that is not a CustomError is an internal
// failure.
func writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	message := "error internal"

	if ce, ok := err.(cerr.CustomError); ok {
		code = ce.ErrorHTTPCode()
		message = ce.Error()
	}

	writeJSON(w, code, map[string]string{"error": message})
}
