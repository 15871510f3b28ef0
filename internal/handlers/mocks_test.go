package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/arzan03/musicland/internal/middleware"
	"github.com/arzan03/musicland/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type mockUsers struct{ mock.Mock }

func (m *mockUsers) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *mockUsers) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	args := m.Called(ctx, role)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *mockUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUsers) Create(ctx context.Context, user *models.User) (models.InsertResult, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(models.InsertResult), args.Error(1)
}

func (m *mockUsers) SetRole(ctx context.Context, id primitive.ObjectID, role string) (models.UpdateResult, error) {
	args := m.Called(ctx, id, role)
	return args.Get(0).(models.UpdateResult), args.Error(1)
}

func (m *mockUsers) Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.DeleteResult), args.Error(1)
}

type mockClasses struct{ mock.Mock }

func (m *mockClasses) List(ctx context.Context, filter models.ClassFilter) ([]models.Class, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Class), args.Error(1)
}

func (m *mockClasses) Get(ctx context.Context, id primitive.ObjectID) (*models.Class, error) {
	args := m.Called(ctx, id)
	class, _ := args.Get(0).(*models.Class)
	return class, args.Error(1)
}

func (m *mockClasses) Create(ctx context.Context, class *models.Class) (models.InsertResult, error) {
	args := m.Called(ctx, class)
	return args.Get(0).(models.InsertResult), args.Error(1)
}

func (m *mockClasses) SetFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (models.UpdateResult, error) {
	args := m.Called(ctx, id, feedback)
	return args.Get(0).(models.UpdateResult), args.Error(1)
}

func (m *mockClasses) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (models.UpdateResult, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(models.UpdateResult), args.Error(1)
}

func (m *mockClasses) SetImage(ctx context.Context, id primitive.ObjectID, url string) (models.UpdateResult, error) {
	args := m.Called(ctx, id, url)
	return args.Get(0).(models.UpdateResult), args.Error(1)
}

func (m *mockClasses) Update(ctx context.Context, id primitive.ObjectID, u models.ClassUpdate) (models.UpdateResult, error) {
	args := m.Called(ctx, id, u)
	return args.Get(0).(models.UpdateResult), args.Error(1)
}

func (m *mockClasses) Upsert(ctx context.Context, id primitive.ObjectID, u models.ClassUpdate) (models.UpdateResult, error) {
	args := m.Called(ctx, id, u)
	return args.Get(0).(models.UpdateResult), args.Error(1)
}

type mockCarts struct{ mock.Mock }

func (m *mockCarts) ListByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]models.CartItem), args.Error(1)
}

func (m *mockCarts) ListPaid(ctx context.Context, email string) ([]models.CartItem, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]models.CartItem), args.Error(1)
}

func (m *mockCarts) Get(ctx context.Context, id primitive.ObjectID) (*models.CartItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*models.CartItem)
	return item, args.Error(1)
}

func (m *mockCarts) Add(ctx context.Context, item *models.CartItem) (models.InsertResult, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(models.InsertResult), args.Error(1)
}

func (m *mockCarts) Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.DeleteResult), args.Error(1)
}

func (m *mockCarts) RecordPayment(ctx context.Context, id primitive.ObjectID, payment models.Payment) (models.UpdateResult, error) {
	args := m.Called(ctx, id, payment)
	return args.Get(0).(models.UpdateResult), args.Error(1)
}

type mockImages struct{ mock.Mock }

func (m *mockImages) UploadClassImage(ctx context.Context, classID primitive.ObjectID, filename, contentType string, r io.Reader, size int64) (string, error) {
	args := m.Called(ctx, classID, filename, contentType, r, size)
	return args.String(0), args.Error(1)
}

type mockIntents struct{ mock.Mock }

func (m *mockIntents) CreateIntent(ctx context.Context, price float64, idempotencyKey string) (string, error) {
	args := m.Called(ctx, price, idempotencyKey)
	return args.String(0), args.Error(1)
}

type testEnv struct {
	users   *mockUsers
	classes *mockClasses
	carts   *mockCarts
	deps    Deps
}

func newTestEnv() *testEnv {
	env := &testEnv{users: new(mockUsers), classes: new(mockClasses), carts: new(mockCarts)}
	env.deps = Deps{Users: env.users, Classes: env.classes, Carts: env.carts}
	return env
}

func (e *testEnv) app() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler(zap.NewNop())})
	Register(app, e.deps)
	return app
}

func (e *testEnv) assertExpectations(t *testing.T) {
	e.users.AssertExpectations(t)
	e.classes.AssertExpectations(t)
	e.carts.AssertExpectations(t)
}

// call sends a request with an optional JSON body and returns the status and
// raw response body.
func call(t *testing.T, app *fiber.App, method, path string, body interface{}, headers ...string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func decode(t *testing.T, raw []byte, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(raw, v), string(raw))
}
