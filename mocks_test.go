package nina_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	nina "github.com/ninaapp/nina-api"
)

// MockRepository implements nina.Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetPage(ctx context.Context, page, pageSize int) (*nina.PagedList[*nina.User], error) {
	args := m.Called(ctx, page, pageSize)
	var list *nina.PagedList[*nina.User]
	if v := args.Get(0); v != nil {
		list = v.(*nina.PagedList[*nina.User])
	}
	return list, args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*nina.User, error) {
	args := m.Called(ctx, id)
	var user *nina.User
	if v := args.Get(0); v != nil {
		user = v.(*nina.User)
	}
	return user, args.Error(1)
}

func (m *MockRepository) GetByEmail(ctx context.Context, email string) (*nina.User, error) {
	args := m.Called(ctx, email)
	var user *nina.User
	if v := args.Get(0); v != nil {
		user = v.(*nina.User)
	}
	return user, args.Error(1)
}

func (m *MockRepository) EmailInUse(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, user *nina.User) (*nina.User, error) {
	args := m.Called(ctx, user)
	var created *nina.User
	if v := args.Get(0); v != nil {
		created = v.(*nina.User)
	}
	return created, args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, user *nina.User) (bool, error) {
	args := m.Called(ctx, user)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockHasher implements nina.Hasher
type MockHasher struct {
	mock.Mock
}

func (m *MockHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockHasher) Verify(password, hash string) bool {
	args := m.Called(password, hash)
	return args.Bool(0)
}

// MockTokenIssuer implements nina.TokenIssuer
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Generate(user *nina.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func (m *MockTokenIssuer) TTL() time.Duration {
	args := m.Called()
	return args.Get(0).(time.Duration)
}

// testConfig implements nina.Config for token service tests.
type testConfig struct {
	secret   string
	issuer   string
	audience []string
	minutes  int
}

func (c testConfig) GetSigningKey() string   { return c.secret }
func (c testConfig) GetTokenExpiration() int { return c.minutes }
func (c testConfig) GetIssuer() string       { return c.issuer }
func (c testConfig) GetAudience() []string   { return c.audience }
