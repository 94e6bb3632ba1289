package authenticating

import (
	"context"
	"testing"

	"github.com/futurewise/futurewise-api/infrastructure/repository/mocks"
	"github.com/futurewise/futurewise-api/internal/config"
	"github.com/futurewise/futurewise-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) (*Service, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	svc := &Service{
		userRepo: mockUserRepo,
		cfg:      &config.Config{SecretKey: "segredo-de-teste"},
	}

	return svc, mockUserRepo
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestRegisterUser_FirstUserBecomesAdmin(t *testing.T) {
	svc, mockUserRepo := newAuthService(t)

	mockUserRepo.EXPECT().GetUserByEmail(gomock.Any(), "ana@empresa.com").Return(nil, nil)
	mockUserRepo.EXPECT().CountUsers(gomock.Any()).Return(0, nil)
	mockUserRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
			user.ID = 1
			return user, nil
		})

	user, err := svc.RegisterUser(context.Background(), &domain.User{
		Email:       " Ana@Empresa.com ",
		DisplayName: "Ana",
	}, "senha-forte")

	require.NoError(t, err)
	assert.Equal(t, "ana@empresa.com", user.Email)
	assert.Equal(t, RoleAdmin, user.RoleID)
	assert.True(t, user.Active)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "senha-forte", user.PasswordHash)
}

func TestRegisterUser_SubsequentUsersStartInactive(t *testing.T) {
	svc, mockUserRepo := newAuthService(t)

	mockUserRepo.EXPECT().GetUserByEmail(gomock.Any(), "beto@empresa.com").Return(nil, nil)
	mockUserRepo.EXPECT().CountUsers(gomock.Any()).Return(3, nil)
	mockUserRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
			return user, nil
		})

	user, err := svc.RegisterUser(context.Background(), &domain.User{
		Email:       "beto@empresa.com",
		DisplayName: "Beto",
	}, "senha-forte")

	require.NoError(t, err)
	assert.Equal(t, RoleViewer, user.RoleID)
	assert.False(t, user.Active)
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	svc, mockUserRepo := newAuthService(t)

	mockUserRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "ana@empresa.com").
		Return(&domain.User{ID: 1, Email: "ana@empresa.com"}, nil)

	user, err := svc.RegisterUser(context.Background(), &domain.User{
		Email:       "ana@empresa.com",
		DisplayName: "Ana",
	}, "senha-forte")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestRegisterUser_MissingRequiredData(t *testing.T) {
	svc, _ := newAuthService(t)

	user, err := svc.RegisterUser(context.Background(), &domain.User{Email: "ana@empresa.com"}, "")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrMissingRequiredData)
}

func TestLoginUser(t *testing.T) {
	svc, mockUserRepo := newAuthService(t)

	mockUserRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "ana@empresa.com").
		Return(&domain.User{
			ID:           1,
			Email:        "ana@empresa.com",
			DisplayName:  "Ana",
			PasswordHash: hashPassword(t, "senha-forte"),
			Active:       true,
			RoleID:       RoleAdmin,
		}, nil)

	token, err := svc.LoginUser(context.Background(), "Ana@Empresa.com", "senha-forte")

	require.NoError(t, err)
	require.NotEmpty(t, token)

	// O token emitido precisa validar com a mesma chave e carregar as claims.
	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, "ana@empresa.com", claims.UserEmail)
	assert.Equal(t, RoleAdmin, claims.UserRole)
}

func TestLoginUser_Failures(t *testing.T) {
	tests := []struct {
		name        string
		email       string
		password    string
		setup       func(mockUserRepo *mocks.MockUserRepository)
		expectedErr error
	}{
		{
			name:        "Credenciais ausentes",
			email:       "",
			password:    "",
			setup:       func(*mocks.MockUserRepository) {},
			expectedErr: ErrMissingRequiredData,
		},
		{
			name:     "Usuário inexistente",
			email:    "ninguem@empresa.com",
			password: "senha",
			setup: func(mockUserRepo *mocks.MockUserRepository) {
				mockUserRepo.EXPECT().GetUserByEmail(gomock.Any(), "ninguem@empresa.com").Return(nil, nil)
			},
			expectedErr: ErrUserNotFound,
		},
		{
			name:     "Conta desativada",
			email:    "beto@empresa.com",
			password: "senha",
			setup: func(mockUserRepo *mocks.MockUserRepository) {
				mockUserRepo.EXPECT().
					GetUserByEmail(gomock.Any(), "beto@empresa.com").
					Return(&domain.User{ID: 2, Active: false}, nil)
			},
			expectedErr: ErrUserDisabled,
		},
		{
			name:     "Senha incorreta",
			email:    "ana@empresa.com",
			password: "senha-errada",
			setup: func(mockUserRepo *mocks.MockUserRepository) {
				hash, _ := bcrypt.GenerateFromPassword([]byte("senha-certa"), bcrypt.MinCost)
				mockUserRepo.EXPECT().
					GetUserByEmail(gomock.Any(), "ana@empresa.com").
					Return(&domain.User{ID: 1, Active: true, PasswordHash: string(hash)}, nil)
			},
			expectedErr: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockUserRepo := newAuthService(t)
			tt.setup(mockUserRepo)

			token, err := svc.LoginUser(context.Background(), tt.email, tt.password)

			assert.Empty(t, token)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestValidateToken_InvalidToken(t *testing.T) {
	svc, _ := newAuthService(t)

	claims, err := svc.ValidateToken("não-é-um-jwt")

	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_WrongKey(t *testing.T) {
	svc, mockUserRepo := newAuthService(t)

	mockUserRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "ana@empresa.com").
		Return(&domain.User{
			ID:           1,
			Email:        "ana@empresa.com",
			PasswordHash: hashPassword(t, "senha"),
			Active:       true,
		}, nil)

	token, err := svc.LoginUser(context.Background(), "ana@empresa.com", "senha")
	require.NoError(t, err)

	other := &Service{cfg: &config.Config{SecretKey: "outra-chave"}}
	claims, err := other.ValidateToken(token)

	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGetUserProfile_ClearsPasswordHash(t *testing.T) {
	svc, mockUserRepo := newAuthService(t)

	mockUserRepo.EXPECT().
		GetUserByID(gomock.Any(), 1).
		Return(&domain.User{ID: 1, Email: "ana@empresa.com", PasswordHash: "hash"}, nil)

	user, err := svc.GetUserProfile(context.Background(), 1)

	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
}
