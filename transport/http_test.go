package transport_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	assistantapp "github.com/worksy/worksy-api/application/assistant"
	bookingapp "github.com/worksy/worksy-api/application/booking"
	catalogapp "github.com/worksy/worksy-api/application/catalog"
	messageapp "github.com/worksy/worksy-api/application/message"
	userapp "github.com/worksy/worksy-api/application/user"
	"github.com/worksy/worksy-api/cmd/config"
	assistantmocks "github.com/worksy/worksy-api/mocks/application/assistant"
	bookingmocks "github.com/worksy/worksy-api/mocks/repository/booking"
	messagemocks "github.com/worksy/worksy-api/mocks/repository/message"
	servicemocks "github.com/worksy/worksy-api/mocks/repository/service"
	usermocks "github.com/worksy/worksy-api/mocks/repository/user"
	"github.com/worksy/worksy-api/model"
	userrepo "github.com/worksy/worksy-api/repository/user"
	"github.com/worksy/worksy-api/transport"
	"github.com/stretchr/testify/mock"
)

type testDeps struct {
	userRepo    *usermocks.UserRepository
	serviceRepo *servicemocks.ServiceRepository
	bookingRepo *bookingmocks.BookingRepository
	messageRepo *messagemocks.MessageRepository
	client      *assistantmocks.CompletionClient
}

func newTestServer(t *testing.T) (http.Handler, *testDeps) {
	t.Helper()
	deps := &testDeps{
		userRepo:    usermocks.NewUserRepository(t),
		serviceRepo: servicemocks.NewServiceRepository(t),
		bookingRepo: bookingmocks.NewBookingRepository(t),
		messageRepo: messagemocks.NewMessageRepository(t),
		client:      assistantmocks.NewCompletionClient(t),
	}
	cfg := &config.Config{OpenAI: config.OpenAIConfig{APIKey: "test-key"}}

	handler := transport.NewTransport(
		userapp.NewUserApp(deps.userRepo),
		catalogapp.NewCatalogApp(cfg, deps.serviceRepo),
		bookingapp.NewBookingApp(deps.bookingRepo),
		messageapp.NewMessageApp(deps.messageRepo),
		assistantapp.NewAssistantApp(cfg, deps.client),
	)
	return handler, deps
}

func doRequest(t *testing.T, handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON body %q: %v", rec.Body.String(), err)
	}
	return got
}

func TestHealth(t *testing.T) {
	handler, _ := newTestServer(t)

	rec := doRequest(t, handler, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := decodeBody(t, rec); got["status"] != "ok" {
		t.Fatalf("body = %v", got)
	}
}

func TestCreateUser(t *testing.T) {
	t.Run("missing required fields returns 400", func(t *testing.T) {
		handler, _ := newTestServer(t)

		rec := doRequest(t, handler, http.MethodPost, "/users", `{"email":"a@example.com"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
		if got := decodeBody(t, rec); got["error"] != "Missing required fields" {
			t.Fatalf("body = %v", got)
		}
	})

	t.Run("invalid userType returns 400", func(t *testing.T) {
		handler, _ := newTestServer(t)

		rec := doRequest(t, handler, http.MethodPost, "/users",
			`{"email":"a@example.com","name":"Ann","userType":"admin"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("duplicate email returns 409", func(t *testing.T) {
		handler, deps := newTestServer(t)
		deps.userRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.UserEntity")).
			Return(nil, userrepo.ErrDuplicateEmail).Once()

		rec := doRequest(t, handler, http.MethodPost, "/users",
			`{"email":"a@example.com","name":"Ann","userType":"consumer"}`)
		if rec.Code != http.StatusConflict {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
		if got := decodeBody(t, rec); got["error"] != "User already exists" {
			t.Fatalf("body = %v", got)
		}
	})

	t.Run("success returns 201 with camelCase fields", func(t *testing.T) {
		handler, deps := newTestServer(t)
		deps.userRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.UserEntity")).
			Return(&model.UserEntity{
				ID:        "u-1",
				Email:     "a@example.com",
				Name:      "Ann",
				UserType:  "consumer",
				CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
			}, nil).Once()

		rec := doRequest(t, handler, http.MethodPost, "/users",
			`{"email":"a@example.com","name":"Ann","userType":"consumer"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
		got := decodeBody(t, rec)
		if got["id"] != "u-1" || got["userType"] != "consumer" {
			t.Fatalf("body = %v", got)
		}
	})
}

func TestGetUser(t *testing.T) {
	t.Run("unknown id returns 404", func(t *testing.T) {
		handler, deps := newTestServer(t)
		deps.userRepo.On("Get", mock.Anything, "missing").Return(nil, nil).Once()

		rec := doRequest(t, handler, http.MethodGet, "/users?id=missing", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
		if got := decodeBody(t, rec); got["error"] != "User not found" {
			t.Fatalf("body = %v", got)
		}
	})

	t.Run("delete without id returns 400", func(t *testing.T) {
		handler, _ := newTestServer(t)

		rec := doRequest(t, handler, http.MethodDelete, "/users", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", rec.Code)
		}
		if got := decodeBody(t, rec); got["error"] != "User ID is required" {
			t.Fatalf("body = %v", got)
		}
	})
}

func TestCreateService(t *testing.T) {
	t.Run("string price is accepted and defaults stamped", func(t *testing.T) {
		handler, deps := newTestServer(t)
		deps.serviceRepo.On("Create", mock.Anything, mock.MatchedBy(func(data *model.ServiceEntity) bool {
			return data.Price == 75.5 && data.Availability == "available" &&
				data.Rating == 0 && data.ReviewCount == 0
		})).Return(&model.ServiceEntity{
			ID:           "svc-1",
			Title:        "Fix sink",
			Description:  "Kitchen sink repair",
			Category:     "plumbing",
			Price:        75.5,
			ProviderID:   "p1",
			Images:       model.StringList{},
			Availability: "available",
		}, nil).Once()

		rec := doRequest(t, handler, http.MethodPost, "/services",
			`{"title":"Fix sink","description":"Kitchen sink repair","category":"plumbing","price":"75.5","providerId":"p1"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
		got := decodeBody(t, rec)
		if got["price"] != 75.5 {
			t.Fatalf("price = %v", got["price"])
		}
		if got["availability"] != "available" {
			t.Fatalf("availability = %v", got["availability"])
		}
		if got["rating"] != float64(0) || got["reviewCount"] != float64(0) {
			t.Fatalf("rating = %v, reviewCount = %v", got["rating"], got["reviewCount"])
		}
	})

	t.Run("unparseable price returns 400", func(t *testing.T) {
		handler, _ := newTestServer(t)

		rec := doRequest(t, handler, http.MethodPost, "/services",
			`{"title":"Fix sink","description":"d","category":"plumbing","price":"abc","providerId":"p1"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("missing price returns 400", func(t *testing.T) {
		handler, _ := newTestServer(t)

		rec := doRequest(t, handler, http.MethodPost, "/services",
			`{"title":"Fix sink","description":"d","category":"plumbing","providerId":"p1"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
		if got := decodeBody(t, rec); got["error"] != "Missing required fields" {
			t.Fatalf("body = %v", got)
		}
	})
}

func TestGetBookings(t *testing.T) {
	t.Run("neither userId nor providerId returns 400", func(t *testing.T) {
		handler, _ := newTestServer(t)

		rec := doRequest(t, handler, http.MethodGet, "/bookings", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
		if got := decodeBody(t, rec); got["error"] != "userId or providerId is required" {
			t.Fatalf("body = %v", got)
		}
	})

	t.Run("userId filter reaches the repository", func(t *testing.T) {
		handler, deps := newTestServer(t)
		deps.bookingRepo.On("List", mock.Anything, mock.MatchedBy(func(f *model.BookingFilter) bool {
			return f.CustomerID == "u1" && f.Status == "pending"
		})).Return([]model.BookingEntity{{ID: "b-1", CustomerID: "u1", Status: "pending"}}, nil).Once()

		rec := doRequest(t, handler, http.MethodGet, "/bookings?userId=u1&status=pending", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
		var got []model.BookingEntity
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if len(got) != 1 || got[0].ID != "b-1" {
			t.Fatalf("bookings = %+v", got)
		}
	})
}

func TestMessagesRoundTrip(t *testing.T) {
	handler, deps := newTestServer(t)
	sent := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	deps.messageRepo.On("Create", mock.Anything, mock.MatchedBy(func(ent *model.MessageEntity) bool {
		return ent.ChatID == "c1" && ent.Content == "hello" && ent.Type == "text"
	})).Return(&model.MessageEntity{
		ID:        "m-1",
		ChatID:    "c1",
		SenderID:  "u1",
		Content:   "hello",
		Type:      "text",
		Timestamp: sent,
	}, nil).Once()
	deps.messageRepo.On("ListByChat", mock.Anything, "c1", 50).Return([]model.MessageEntity{
		{ID: "m-1", ChatID: "c1", SenderID: "u1", Content: "hello", Type: "text", Timestamp: sent},
	}, nil).Once()

	rec := doRequest(t, handler, http.MethodPost, "/messages",
		`{"chatId":"c1","senderId":"u1","content":"hello"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	created := decodeBody(t, rec)
	if created["chatId"] != "c1" || created["isAI"] != false || created["read"] != false {
		t.Fatalf("created = %v", created)
	}

	rec = doRequest(t, handler, http.MethodGet, "/messages?chatId=c1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var listed []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(listed) != 1 || listed[0]["id"] != "m-1" || listed[0]["content"] != "hello" {
		t.Fatalf("listed = %v", listed)
	}
}

func TestGetMessagesRequiresChatID(t *testing.T) {
	handler, _ := newTestServer(t)

	rec := doRequest(t, handler, http.MethodGet, "/messages", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := decodeBody(t, rec); got["error"] != "chatId is required" {
		t.Fatalf("body = %v", got)
	}
}

func TestChatEndpoint(t *testing.T) {
	t.Run("empty message returns 400", func(t *testing.T) {
		handler, _ := newTestServer(t)

		rec := doRequest(t, handler, http.MethodPost, "/ai", `{"message":""}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
		if got := decodeBody(t, rec); got["error"] != "Message is required" {
			t.Fatalf("body = %v", got)
		}
	})

	t.Run("upstream failure returns 500", func(t *testing.T) {
		handler, deps := newTestServer(t)
		deps.client.On("Complete", mock.Anything, mock.Anything, "hi", 500, float32(0.7)).
			Return("", errors.New("timeout")).Once()

		rec := doRequest(t, handler, http.MethodPost, "/ai", `{"message":"hi"}`)
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
		if got := decodeBody(t, rec); got["error"] != "Failed to process AI request" {
			t.Fatalf("body = %v", got)
		}
	})

	t.Run("success returns response and timestamp", func(t *testing.T) {
		handler, deps := newTestServer(t)
		deps.client.On("Complete", mock.Anything, mock.Anything, "hi", 500, float32(0.7)).
			Return("hello there", nil).Once()

		rec := doRequest(t, handler, http.MethodPost, "/ai", `{"message":"hi"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
		got := decodeBody(t, rec)
		if got["response"] != "hello there" || got["timestamp"] == nil {
			t.Fatalf("body = %v", got)
		}
	})
}

func TestSuggestEndpoint(t *testing.T) {
	t.Run("empty description returns 400", func(t *testing.T) {
		handler, _ := newTestServer(t)

		rec := doRequest(t, handler, http.MethodPost, "/ai/suggest", `{}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
		if got := decodeBody(t, rec); got["error"] != "Description is required" {
			t.Fatalf("body = %v", got)
		}
	})

	t.Run("success returns suggestions", func(t *testing.T) {
		handler, deps := newTestServer(t)
		deps.client.On("Complete", mock.Anything, mock.Anything, mock.Anything, 400, float32(0.7)).
			Return("1. Plumbing", nil).Once()

		rec := doRequest(t, handler, http.MethodPost, "/ai/suggest", `{"description":"leaky pipe"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
		if got := decodeBody(t, rec); got["suggestions"] != "1. Plumbing" {
			t.Fatalf("body = %v", got)
		}
	})
}
