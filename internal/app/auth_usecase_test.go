package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/PRV99/online-notes-app/internal/app"
	"github.com/PRV99/online-notes-app/internal/domain/entities"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) FindByID(ctx context.Context, userID string) (*entities.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

type mockPasswordService struct {
	mock.Mock
}

func (m *mockPasswordService) Hash(ctx context.Context, password string) (string, error) {
	args := m.Called(ctx, password)
	return args.String(0), args.Error(1)
}

func (m *mockPasswordService) Verify(ctx context.Context, password, hash string) (bool, error) {
	args := m.Called(ctx, password, hash)
	return args.Bool(0), args.Error(1)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(ctx context.Context, userID string) (string, time.Time, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *mockTokenService) Verify(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

func TestAuthUseCase_Register(t *testing.T) {
	ctx := context.Background()
	expiresAt := time.Now().Add(30 * time.Minute)

	t.Run("Успешная регистрация пользователя", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		passwordSvc := new(mockPasswordService)
		tokenSvc := new(mockTokenService)

		created := &entities.User{
			ID:           "user-1",
			Name:         "Test User",
			Email:        "test@example.com",
			PasswordHash: "hashed",
		}

		userRepo.On("FindByEmail", ctx, "test@example.com").Return(nil, entities.ErrUserNotFound)
		passwordSvc.On("Hash", ctx, "secret123").Return("hashed", nil)
		userRepo.On("Create", ctx, mock.MatchedBy(func(u *entities.User) bool {
			return u.Name == "Test User" && u.Email == "test@example.com" && u.PasswordHash == "hashed"
		})).Return(created, nil)
		tokenSvc.On("Issue", ctx, "user-1").Return("signed-token", expiresAt, nil)

		uc := app.NewAuthUseCase(userRepo, passwordSvc, tokenSvc)

		session, err := uc.Register(ctx, "Test User", "test@example.com", "secret123")

		require.NoError(t, err)
		assert.Equal(t, "user-1", session.User.ID)
		assert.Equal(t, "signed-token", session.Token)

		userRepo.AssertExpectations(t)
		passwordSvc.AssertExpectations(t)
		tokenSvc.AssertExpectations(t)
	})

	t.Run("Пустое имя отклоняется", func(t *testing.T) {
		uc := app.NewAuthUseCase(new(mockUserRepository), new(mockPasswordService), new(mockTokenService))

		session, err := uc.Register(ctx, "", "test@example.com", "secret123")

		assert.Nil(t, session)
		assert.ErrorIs(t, err, entities.ErrEmptyName)
	})

	t.Run("Некорректный email отклоняется", func(t *testing.T) {
		uc := app.NewAuthUseCase(new(mockUserRepository), new(mockPasswordService), new(mockTokenService))

		for _, email := range []string{"", "not-an-email", "missing@tld", "@example.com"} {
			session, err := uc.Register(ctx, "Test User", email, "secret123")

			assert.Nil(t, session)
			assert.ErrorIs(t, err, entities.ErrInvalidEmail)
		}
	})

	t.Run("Слишком короткий пароль отклоняется", func(t *testing.T) {
		uc := app.NewAuthUseCase(new(mockUserRepository), new(mockPasswordService), new(mockTokenService))

		session, err := uc.Register(ctx, "Test User", "test@example.com", "1234")

		assert.Nil(t, session)
		assert.ErrorIs(t, err, entities.ErrPasswordTooShort)
	})

	t.Run("Повторная регистрация email отклоняется", func(t *testing.T) {
		userRepo := new(mockUserRepository)

		userRepo.On("FindByEmail", ctx, "taken@example.com").
			Return(&entities.User{ID: "existing", Email: "taken@example.com"}, nil)

		uc := app.NewAuthUseCase(userRepo, new(mockPasswordService), new(mockTokenService))

		session, err := uc.Register(ctx, "Test User", "taken@example.com", "secret123")

		assert.Nil(t, session)
		assert.ErrorIs(t, err, entities.ErrEmailTaken)

		userRepo.AssertExpectations(t)
	})

	t.Run("Гонка при вставке дает ErrEmailTaken", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		passwordSvc := new(mockPasswordService)

		userRepo.On("FindByEmail", ctx, "racy@example.com").Return(nil, entities.ErrUserNotFound)
		passwordSvc.On("Hash", ctx, "secret123").Return("hashed", nil)
		userRepo.On("Create", ctx, mock.Anything).Return(nil, entities.ErrEmailTaken)

		uc := app.NewAuthUseCase(userRepo, passwordSvc, new(mockTokenService))

		session, err := uc.Register(ctx, "Test User", "racy@example.com", "secret123")

		assert.Nil(t, session)
		assert.ErrorIs(t, err, entities.ErrEmailTaken)

		userRepo.AssertExpectations(t)
	})

	t.Run("Ошибка выпуска токена пробрасывается", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		passwordSvc := new(mockPasswordService)
		tokenSvc := new(mockTokenService)

		created := &entities.User{ID: "user-1", Email: "test@example.com"}

		userRepo.On("FindByEmail", ctx, "test@example.com").Return(nil, entities.ErrUserNotFound)
		passwordSvc.On("Hash", ctx, "secret123").Return("hashed", nil)
		userRepo.On("Create", ctx, mock.Anything).Return(created, nil)
		tokenSvc.On("Issue", ctx, "user-1").Return("", time.Time{}, errors.New("signing failed"))

		uc := app.NewAuthUseCase(userRepo, passwordSvc, tokenSvc)

		session, err := uc.Register(ctx, "Test User", "test@example.com", "secret123")

		assert.Nil(t, session)
		assert.Error(t, err)
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	ctx := context.Background()
	expiresAt := time.Now().Add(30 * time.Minute)

	user := &entities.User{
		ID:           "user-1",
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: "hashed",
	}

	t.Run("Успешный вход", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		passwordSvc := new(mockPasswordService)
		tokenSvc := new(mockTokenService)

		userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
		passwordSvc.On("Verify", ctx, "secret123", "hashed").Return(true, nil)
		tokenSvc.On("Issue", ctx, "user-1").Return("signed-token", expiresAt, nil)

		uc := app.NewAuthUseCase(userRepo, passwordSvc, tokenSvc)

		session, err := uc.Login(ctx, user.Email, "secret123")

		require.NoError(t, err)
		assert.Equal(t, "user-1", session.User.ID)
		assert.Equal(t, "signed-token", session.Token)

		userRepo.AssertExpectations(t)
		passwordSvc.AssertExpectations(t)
		tokenSvc.AssertExpectations(t)
	})

	t.Run("Несуществующий email дает ErrInvalidCredentials", func(t *testing.T) {
		userRepo := new(mockUserRepository)

		userRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, entities.ErrUserNotFound)

		uc := app.NewAuthUseCase(userRepo, new(mockPasswordService), new(mockTokenService))

		session, err := uc.Login(ctx, "ghost@example.com", "secret123")

		assert.Nil(t, session)
		assert.ErrorIs(t, err, entities.ErrInvalidCredentials)
	})

	t.Run("Неверный пароль дает ту же ошибку что и несуществующий email", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		passwordSvc := new(mockPasswordService)

		userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
		passwordSvc.On("Verify", ctx, "wrong-password", "hashed").Return(false, nil)

		uc := app.NewAuthUseCase(userRepo, passwordSvc, new(mockTokenService))

		session, err := uc.Login(ctx, user.Email, "wrong-password")

		assert.Nil(t, session)
		assert.ErrorIs(t, err, entities.ErrInvalidCredentials)
	})

	t.Run("Ошибка репозитория не маскируется под неверные учетные данные", func(t *testing.T) {
		userRepo := new(mockUserRepository)

		userRepo.On("FindByEmail", ctx, user.Email).Return(nil, errors.New("database connection failed"))

		uc := app.NewAuthUseCase(userRepo, new(mockPasswordService), new(mockTokenService))

		session, err := uc.Login(ctx, user.Email, "secret123")

		assert.Nil(t, session)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, entities.ErrInvalidCredentials)
	})
}
