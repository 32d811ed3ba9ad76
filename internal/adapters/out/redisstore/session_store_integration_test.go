package redisstore_test

import (
	"context"
	"testing"
	"time"

	"bookstore/internal/adapters/out/redisstore"
	"bookstore/internal/core/domain/model/identity"
	"bookstore/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type SessionStoreIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	client    *redis.Client
	store     *redisstore.SessionStore
}

func (suite *SessionStoreIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	addr, err := container.Endpoint(ctx, "")
	suite.Require().NoError(err)

	suite.client = redis.NewClient(&redis.Options{Addr: addr})
	suite.Require().NoError(suite.client.Ping(ctx).Err())
	suite.store = redisstore.NewSessionStore(suite.client)
}

func (suite *SessionStoreIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.client.FlushDB(context.Background()).Err())
}

func (suite *SessionStoreIntegrationTestSuite) TearDownSuite() {
	if suite.client != nil {
		_ = suite.client.Close()
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *SessionStoreIntegrationTestSuite) session(issuedAt time.Time, ttl time.Duration) *identity.Session {
	s, err := identity.NewSession("clerk", issuedAt, ttl)
	suite.Require().NoError(err)
	return s
}

func (suite *SessionStoreIntegrationTestSuite) TestSaveAndGet() {
	ctx := suite.T().Context()
	issuedAt := time.Now().UTC().Truncate(time.Millisecond)
	s := suite.session(issuedAt, time.Hour)

	suite.Require().NoError(suite.store.Save(ctx, s))

	loaded, err := suite.store.Get(ctx, s.Token())
	suite.Require().NoError(err)
	suite.Equal("clerk", loaded.Username())
	suite.True(issuedAt.Equal(loaded.IssuedAt()))
	suite.True(s.ExpiresAt().Equal(loaded.ExpiresAt()))

	ttl, err := suite.client.TTL(ctx, "session:"+s.Token().String()).Result()
	suite.Require().NoError(err)
	suite.Greater(ttl, 59*time.Minute)
}

func (suite *SessionStoreIntegrationTestSuite) TestGet_UnknownToken() {
	_, err := suite.store.Get(suite.T().Context(), identity.NewToken())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *SessionStoreIntegrationTestSuite) TestDelete() {
	ctx := suite.T().Context()
	s := suite.session(time.Now().UTC(), time.Hour)
	suite.Require().NoError(suite.store.Save(ctx, s))

	suite.Require().NoError(suite.store.Delete(ctx, s.Token()))

	_, err := suite.store.Get(ctx, s.Token())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Require().ErrorIs(suite.store.Delete(ctx, s.Token()), errs.ErrObjectNotFound)
}

func (suite *SessionStoreIntegrationTestSuite) TestDeleteExpired_UsesRecordedExpiry() {
	ctx := suite.T().Context()
	now := time.Now().UTC()
	short := suite.session(now, time.Minute)
	long := suite.session(now, 2*time.Hour)
	suite.Require().NoError(suite.store.Save(ctx, short))
	suite.Require().NoError(suite.store.Save(ctx, long))

	removed, err := suite.store.DeleteExpired(ctx, now.Add(time.Hour))
	suite.Require().NoError(err)
	suite.Equal(int64(1), removed)

	_, err = suite.store.Get(ctx, short.Token())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = suite.store.Get(ctx, long.Token())
	suite.Require().NoError(err)
}

func TestSessionStoreIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(SessionStoreIntegrationTestSuite))
}
