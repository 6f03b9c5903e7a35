package router_test

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/mock"

	authservices "notehub/internal/auth/adapters/services"
	authapp "notehub/internal/auth/app"
	authentities "notehub/internal/auth/domain/entities"
	"notehub/internal/httpapi"
	notesapp "notehub/internal/notes/app"
	notesentities "notehub/internal/notes/domain/entities"
)

//nolint:gosec
const (
	testJWTSecret = "router-test-secret-key"
	testTokenTTL  = 10 * time.Minute
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *authentities.User) (*authentities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authentities.User), args.Error(1)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*authentities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authentities.User), args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*authentities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authentities.User), args.Error(1)
}

type mockNoteRepository struct {
	mock.Mock
}

func (m *mockNoteRepository) Create(ctx context.Context, note *notesentities.Note) (*notesentities.Note, error) {
	args := m.Called(ctx, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notesentities.Note), args.Error(1)
}

func (m *mockNoteRepository) GetByID(ctx context.Context, noteID, userID string) (*notesentities.Note, error) {
	args := m.Called(ctx, noteID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notesentities.Note), args.Error(1)
}

func (m *mockNoteRepository) ListByUserID(ctx context.Context, userID string) ([]*notesentities.Note, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notesentities.Note), args.Error(1)
}

func (m *mockNoteRepository) Update(ctx context.Context, noteID, userID string, patch notesentities.NotePatch) (*notesentities.Note, error) {
	args := m.Called(ctx, noteID, userID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notesentities.Note), args.Error(1)
}

func (m *mockNoteRepository) Delete(ctx context.Context, noteID, userID string) (string, error) {
	args := m.Called(ctx, noteID, userID)
	return args.String(0), args.Error(1)
}

// newTestApp собирает приложение с реальными use case'ами и сервисами
// поверх моков хранилища.
func newTestApp(userRepo *mockUserRepository, noteRepo *mockNoteRepository) *fiber.App {
	factory := authservices.NewServiceFactory(testJWTSecret, testTokenTTL)

	authUseCase := authapp.NewAuthUseCase(userRepo, factory.PasswordService(), factory.TokenService())
	userUseCase := authapp.NewUserUseCase(userRepo)
	noteUseCase := notesapp.NewNoteUseCase(noteRepo)

	app := fiber.New()
	httpapi.SetupRouter(app, authUseCase, userUseCase, noteUseCase, factory.TokenService())
	return app
}

// issueToken выдает валидный access токен для защищенных маршрутов.
func issueToken(userID string) string {
	factory := authservices.NewServiceFactory(testJWTSecret, testTokenTTL)
	token, _, err := factory.TokenService().GenerateAccessToken(context.Background(), userID, "user@example.com")
	if err != nil {
		panic(err)
	}
	return token
}
