package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"workboard/internal/apperr"
	"workboard/internal/handler"
	"workboard/internal/model"
)

// fakeStore is an in-memory Store used to exercise the full routing stack
// without a database.
type fakeStore[T handler.Entity] struct {
	name   string
	nextID int
	items  map[int]T
}

func newFakeStore[T handler.Entity](name string) *fakeStore[T] {
	return &fakeStore[T]{name: name, items: map[int]T{}}
}

func (s *fakeStore[T]) List(ctx context.Context) ([]T, error) {
	ids := make([]int, 0, len(s.items))
	for id := range s.items {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.items[id])
	}
	return out, nil
}

func (s *fakeStore[T]) GetByID(ctx context.Context, id int) (T, error) {
	e, ok := s.items[id]
	if !ok {
		var zero T
		return zero, apperr.NotFound(s.name + " not found")
	}
	return e, nil
}

func (s *fakeStore[T]) Create(ctx context.Context, e T) (T, error) {
	id := e.PrimaryKey()
	if id == 0 {
		s.nextID++
		id = s.nextID
		if err := e.Apply(map[string]any{"id": float64(id)}); err != nil {
			var zero T
			return zero, err
		}
	} else if id > s.nextID {
		s.nextID = id
	}
	s.items[id] = e
	return e, nil
}

func (s *fakeStore[T]) Update(ctx context.Context, e T) (T, error) {
	if _, ok := s.items[e.PrimaryKey()]; !ok {
		var zero T
		return zero, apperr.NotFound(s.name + " not found")
	}
	s.items[e.PrimaryKey()] = e
	return e, nil
}

func (s *fakeStore[T]) Delete(ctx context.Context, id int) error {
	if _, ok := s.items[id]; !ok {
		return apperr.NotFound(s.name + " not found")
	}
	delete(s.items, id)
	return nil
}

func newTestRouter() (*Router, *fakeStore[*model.User], *fakeStore[*model.Order], *fakeStore[*model.Offer]) {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	userStore := newFakeStore[*model.User]("user")
	orderStore := newFakeStore[*model.Order]("order")
	offerStore := newFakeStore[*model.Offer]("offer")

	users := handler.NewResource[*model.User]("user", userStore, func() *model.User { return &model.User{} }, logger)
	orders := handler.NewResource[*model.Order]("order", orderStore, func() *model.Order { return &model.Order{} }, logger)
	offers := handler.NewResource[*model.Offer]("offer", offerStore, func() *model.Offer { return &model.Offer{} }, logger)

	return NewRouter(users, orders, offers, nil, logger), userStore, orderStore, offerStore
}

func serve(r *Router, method, endpoint string, payload any) *httptest.ResponseRecorder {
	var req *http.Request
	if payload == nil {
		req = httptest.NewRequest(method, endpoint, nil)
	} else {
		jsonBytes, _ := json.Marshal(payload)
		req = httptest.NewRequest(method, endpoint, bytes.NewBuffer(jsonBytes))
	}
	w := httptest.NewRecorder()
	r.Engine.ServeHTTP(w, req)
	return w
}

func TestWelcome(t *testing.T) {
	r, _, _, _ := newTestRouter()

	w := serve(r, http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "welcome")
}

func TestHealthz(t *testing.T) {
	r, _, _, _ := newTestRouter()

	w := serve(r, http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}

func TestMethodNotAllowed(t *testing.T) {
	r, _, _, _ := newTestRouter()

	w := serve(r, http.MethodPatch, "/users", nil)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.JSONEq(t, `{"error": "method not allowed"}`, w.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	r, _, _, _ := newTestRouter()

	w := serve(r, http.MethodGet, "/customers", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRequestIDHeader(t *testing.T) {
	r, _, _, _ := newTestRouter()

	w := serve(r, http.MethodGet, "/", nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	w = httptest.NewRecorder()
	r.Engine.ServeHTTP(w, req)
	assert.Equal(t, "fixed-id", w.Header().Get("X-Request-ID"))
}

func TestCreateThenGetUser(t *testing.T) {
	r, _, _, _ := newTestRouter()

	w := serve(r, http.MethodPost, "/users", map[string]any{
		"first_name": "Anna",
		"role":       "customer",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data model.User `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.Data.ID)

	w = serve(r, http.MethodGet, "/users/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var fetched map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, "Anna", fetched["first_name"])
	assert.Equal(t, "customer", fetched["role"])
	assert.Nil(t, fetched["last_name"])
	assert.Nil(t, fetched["age"])
	assert.Nil(t, fetched["email"])
	assert.Nil(t, fetched["phone"])
}

func TestListGrowsAfterCreates(t *testing.T) {
	r, _, _, _ := newTestRouter()

	listLen := func() int {
		w := serve(r, http.MethodGet, "/users", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		var body []map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		return len(body)
	}

	before := listLen()
	for _, name := range []string{"Anna", "Boris", "Clara"} {
		w := serve(r, http.MethodPost, "/users", map[string]any{"first_name": name})
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	assert.Equal(t, before+3, listLen())
}

func TestUpdateOrderThenGet(t *testing.T) {
	r, _, orderStore, _ := newTestRouter()
	price := 300
	_, err := orderStore.Create(context.Background(), &model.Order{
		ID:        1,
		Name:      "Assemble wardrobe",
		StartDate: "04/08/2021",
		EndDate:   "05/08/2021",
		Price:     &price,
	})
	assert.NoError(t, err)

	w := serve(r, http.MethodPut, "/orders/1", map[string]any{"price": 500})
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, http.MethodGet, "/orders/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var fetched map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, float64(500), fetched["price"])
	assert.Equal(t, "Assemble wardrobe", fetched["name"])
	assert.Equal(t, "04/08/2021", fetched["start_date"])
}

func TestDeleteOfferThenGet(t *testing.T) {
	r, _, _, offerStore := newTestRouter()
	orderID, executorID := 1, 2
	_, err := offerStore.Create(context.Background(), &model.Offer{ID: 3, OrderID: &orderID, ExecutorID: &executorID})
	assert.NoError(t, err)

	w := serve(r, http.MethodDelete, "/offers/3", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "offer deleted"}`, w.Body.String())

	w = serve(r, http.MethodGet, "/offers/3", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "offer not found"}`, w.Body.String())

	w = serve(r, http.MethodDelete, "/offers/3", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
