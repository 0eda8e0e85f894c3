package auth

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hotelier/internal/domain"
	"hotelier/internal/media"
)

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) UpdateAvatar(ctx context.Context, id int64, avatarURL string) error {
	args := m.Called(ctx, id, avatarURL)
	return args.Error(0)
}

func (m *MockUserStore) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

type MockResetStore struct {
	mock.Mock
}

func (m *MockResetStore) Replace(ctx context.Context, email, tokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, email, tokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockResetStore) FindActive(ctx context.Context, email string) (*domain.PasswordReset, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PasswordReset), args.Error(1)
}

func (m *MockResetStore) MarkUsed(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendWelcome(email, name string) error {
	args := m.Called(email, name)
	return args.Error(0)
}

func (m *MockMailer) SendPasswordReset(email, resetURL string) error {
	args := m.Called(email, resetURL)
	return args.Error(0)
}

type stubIssuer struct{}

func (stubIssuer) GenerateToken(userID int64) (string, error) { return "test-token", nil }

func newTestService(users *MockUserStore, resets *MockResetStore, mailer *MockMailer) *Service {
	return NewService(users, resets, stubIssuer{}, mailer, media.Disabled{}, "http://localhost:3000", time.Hour)
}

func TestService_Register_HashesPassword(t *testing.T) {
	users := new(MockUserStore)
	mailer := new(MockMailer)
	svc := newTestService(users, new(MockResetStore), mailer)

	var created *domain.User
	users.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*domain.User)
			created.ID = 1
		}).
		Return(nil)
	mailer.On("SendWelcome", "jane@example.com", "Jane").Return(nil)

	result, err := svc.Register(context.Background(), RegisterRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "  Jane@Example.COM ",
		Password:  "secret-pass",
	}, "")
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "jane@example.com", created.Email)
	assert.NotEqual(t, "secret-pass", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret-pass")))
	assert.Equal(t, "test-token", result.AccessToken)
	mailer.AssertExpectations(t)
}

func TestService_Register_SurvivesMailFailure(t *testing.T) {
	users := new(MockUserStore)
	mailer := new(MockMailer)
	svc := newTestService(users, new(MockResetStore), mailer)

	users.On("Create", mock.Anything, mock.Anything).Return(nil)
	mailer.On("SendWelcome", mock.Anything, mock.Anything).Return(assert.AnError)

	result, err := svc.Register(context.Background(), RegisterRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "secret-pass",
	}, "")
	require.NoError(t, err)
	assert.Equal(t, "test-token", result.AccessToken)
}

func TestService_Login_WrongPassword(t *testing.T) {
	users := new(MockUserStore)
	svc := newTestService(users, new(MockResetStore), new(MockMailer))

	hash, err := bcrypt.GenerateFromPassword([]byte("right-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	users.On("GetByEmail", mock.Anything, "jane@example.com").
		Return(&domain.User{ID: 1, Email: "jane@example.com", PasswordHash: string(hash)}, nil)

	_, err = svc.Login(context.Background(), LoginRequest{Email: "jane@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	users := new(MockUserStore)
	svc := newTestService(users, new(MockResetStore), new(MockMailer))

	users.On("GetByEmail", mock.Anything, "nobody@example.com").
		Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_Success(t *testing.T) {
	users := new(MockUserStore)
	svc := newTestService(users, new(MockResetStore), new(MockMailer))

	hash, err := bcrypt.GenerateFromPassword([]byte("right-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	users.On("GetByEmail", mock.Anything, "jane@example.com").
		Return(&domain.User{ID: 1, Email: "jane@example.com", PasswordHash: string(hash)}, nil)

	result, err := svc.Login(context.Background(), LoginRequest{Email: "Jane@Example.com", Password: "right-pass"})
	require.NoError(t, err)
	assert.Equal(t, "test-token", result.AccessToken)
	assert.Equal(t, int64(1), result.User.ID)
}

func TestService_ForgotPassword_UnknownEmailIsSilent(t *testing.T) {
	users := new(MockUserStore)
	resets := new(MockResetStore)
	mailer := new(MockMailer)
	svc := newTestService(users, resets, mailer)

	users.On("GetByEmail", mock.Anything, "nobody@example.com").
		Return(nil, gorm.ErrRecordNotFound)

	err := svc.ForgotPassword(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	resets.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mailer.AssertNotCalled(t, "SendPasswordReset", mock.Anything, mock.Anything)
}

func TestService_ForgotPassword_StoresHashNotToken(t *testing.T) {
	users := new(MockUserStore)
	resets := new(MockResetStore)
	mailer := new(MockMailer)
	svc := newTestService(users, resets, mailer)

	users.On("GetByEmail", mock.Anything, "jane@example.com").
		Return(&domain.User{ID: 1, Email: "jane@example.com"}, nil)

	var storedHash string
	resets.On("Replace", mock.Anything, "jane@example.com", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { storedHash = args.String(2) }).
		Return(nil)

	var resetURL string
	mailer.On("SendPasswordReset", "jane@example.com", mock.Anything).
		Run(func(args mock.Arguments) { resetURL = args.String(1) }).
		Return(nil)

	err := svc.ForgotPassword(context.Background(), "jane@example.com")
	require.NoError(t, err)

	require.NotEmpty(t, storedHash)
	require.Contains(t, resetURL, "token=")

	// mailed token never equals what is stored at rest
	parts := strings.SplitN(resetURL, "token=", 2)
	token := strings.SplitN(parts[1], "&", 2)[0]
	assert.NotEqual(t, token, storedHash)
	assert.Equal(t, hashResetToken(token), storedHash)
	assert.Contains(t, resetURL, "http://localhost:3000/reset-password?")
	assert.Contains(t, resetURL, "email=jane%40example.com")
}

func TestService_ResetPassword_InvalidToken(t *testing.T) {
	users := new(MockUserStore)
	resets := new(MockResetStore)
	svc := newTestService(users, resets, new(MockMailer))

	resets.On("FindActive", mock.Anything, "jane@example.com").
		Return(&domain.PasswordReset{ID: 1, Email: "jane@example.com", TokenHash: hashResetToken("real-token")}, nil)

	err := svc.ResetPassword(context.Background(), ResetPasswordRequest{
		Email:    "jane@example.com",
		Token:    "forged-token",
		Password: "new-password",
	})
	assert.ErrorIs(t, err, ErrInvalidResetToken)
	users.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_ResetPassword_NoActiveToken(t *testing.T) {
	resets := new(MockResetStore)
	svc := newTestService(new(MockUserStore), resets, new(MockMailer))

	resets.On("FindActive", mock.Anything, "jane@example.com").
		Return(nil, gorm.ErrRecordNotFound)

	err := svc.ResetPassword(context.Background(), ResetPasswordRequest{
		Email:    "jane@example.com",
		Token:    "anything",
		Password: "new-password",
	})
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestService_ResetPassword_Success(t *testing.T) {
	users := new(MockUserStore)
	resets := new(MockResetStore)
	svc := newTestService(users, resets, new(MockMailer))

	resets.On("FindActive", mock.Anything, "jane@example.com").
		Return(&domain.PasswordReset{ID: 9, Email: "jane@example.com", TokenHash: hashResetToken("real-token")}, nil)
	users.On("GetByEmail", mock.Anything, "jane@example.com").
		Return(&domain.User{ID: 1, Email: "jane@example.com"}, nil)

	var newHash string
	users.On("UpdatePassword", mock.Anything, int64(1), mock.Anything).
		Run(func(args mock.Arguments) { newHash = args.String(2) }).
		Return(nil)
	resets.On("MarkUsed", mock.Anything, int64(9)).Return(nil)

	err := svc.ResetPassword(context.Background(), ResetPasswordRequest{
		Email:    "Jane@Example.com",
		Token:    "real-token",
		Password: "new-password",
	})
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte("new-password")))
	resets.AssertExpectations(t)
}

type stubUploader struct{ url string }

func (s stubUploader) UploadAvatar(context.Context, io.Reader, string) (string, error) {
	return s.url, nil
}

func (s stubUploader) UploadHotelPhoto(context.Context, io.Reader, string) (string, error) {
	return s.url, nil
}

func (stubUploader) Delete(context.Context, string) bool { return true }

func TestService_UploadAvatar(t *testing.T) {
	svc := NewService(new(MockUserStore), new(MockResetStore), stubIssuer{},
		new(MockMailer), stubUploader{url: "https://cdn.example.com/avatar.jpg"}, "http://localhost:3000", time.Hour)

	url, err := svc.UploadAvatar(context.Background(), nil, "avatar.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/avatar.jpg", url)
}

func TestService_UploadAvatar_Failure(t *testing.T) {
	svc := newTestService(new(MockUserStore), new(MockResetStore), new(MockMailer))

	_, err := svc.UploadAvatar(context.Background(), nil, "avatar.jpg")
	assert.ErrorIs(t, err, ErrUploadFailed)
}

func TestNewResetToken_Shape(t *testing.T) {
	token := newResetToken()

	assert.Len(t, token, 64)
	assert.NotContains(t, token, "-")
	assert.NotEqual(t, token, newResetToken())
}
