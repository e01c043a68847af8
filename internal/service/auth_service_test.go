package service_test

import (
	"context"
	"testing"

	"github.com/gilson1254/catalogo-de-filmes/internal/domain"
	"github.com/gilson1254/catalogo-de-filmes/internal/repository"
	"github.com/gilson1254/catalogo-de-filmes/internal/service"
	"github.com/gilson1254/catalogo-de-filmes/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register(t *testing.T) {
	cfg := testutil.TestConfig()
	ctx := context.Background()

	tests := []struct {
		name      string
		input     service.RegisterInput
		setup     func(t *testing.T, repos *repository.Repositories)
		wantErr   error
		checkUser bool
	}{
		{
			name: "successful registration",
			input: service.RegisterInput{
				Username: "newuser",
				Password: "password123",
			},
			checkUser: true,
		},
		{
			name: "duplicate username",
			input: service.RegisterInput{
				Username: "existinguser",
				Password: "password123",
			},
			setup: func(t *testing.T, repos *repository.Repositories) {
				testutil.NewUserBuilder().
					WithUsername("existinguser").
					Build(t, repos)
			},
			wantErr: domain.ErrUsernameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos := testutil.NewTestRepositories(t)
			authService := service.NewAuthService(repos.User, repos.Session, cfg)

			if tt.setup != nil {
				tt.setup(t, repos)
			}

			result, err := authService.Register(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			if tt.checkUser {
				assert.NotNil(t, result.User)
				assert.Equal(t, tt.input.Username, result.User.Username)
				assert.NotEmpty(t, result.AccessToken)
				assert.NotEmpty(t, result.RefreshToken)
				assert.NotEqual(t, tt.input.Password, result.User.PasswordHash)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	cfg := testutil.TestConfig()
	ctx := context.Background()
	repos := testutil.NewTestRepositories(t)
	authService := service.NewAuthService(repos.User, repos.Session, cfg)

	_, password := testutil.NewUserBuilder().
		WithUsername("loginuser").
		WithPassword("correct-password").
		Build(t, repos)

	tests := []struct {
		name    string
		input   service.LoginInput
		wantErr error
	}{
		{
			name: "successful login",
			input: service.LoginInput{
				Username: "loginuser",
				Password: password,
			},
		},
		{
			name: "wrong password",
			input: service.LoginInput{
				Username: "loginuser",
				Password: "wrong-password",
			},
			wantErr: domain.ErrInvalidCredentials,
		},
		{
			name: "unknown user",
			input: service.LoginInput{
				Username: "nosuchuser",
				Password: password,
			},
			wantErr: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := authService.Login(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.input.Username, result.User.Username)
			assert.NotEmpty(t, result.AccessToken)
		})
	}
}

func TestAuthService_ValidateToken(t *testing.T) {
	cfg := testutil.TestConfig()
	ctx := context.Background()
	repos := testutil.NewTestRepositories(t)
	authService := service.NewAuthService(repos.User, repos.Session, cfg)

	result, err := authService.Register(ctx, service.RegisterInput{
		Username: "tokenuser",
		Password: "password123",
	})
	require.NoError(t, err)

	claims, err := authService.ValidateToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID.String(), (*claims)["sub"])
	assert.Equal(t, "tokenuser", (*claims)["name"])

	_, err = authService.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestAuthService_Logout(t *testing.T) {
	cfg := testutil.TestConfig()
	ctx := context.Background()
	repos := testutil.NewTestRepositories(t)
	authService := service.NewAuthService(repos.User, repos.Session, cfg)

	result, err := authService.Register(ctx, service.RegisterInput{
		Username: "logoutuser",
		Password: "password123",
	})
	require.NoError(t, err)

	require.NoError(t, authService.Logout(ctx, result.User.ID))
	// Logging out twice is harmless
	require.NoError(t, authService.Logout(ctx, result.User.ID))
}
