package identityrepo_test

import (
	"context"
	"testing"
	"time"

	"bookstore/internal/adapters/out/postgres"
	"bookstore/internal/adapters/out/postgres/identityrepo"
	"bookstore/internal/core/domain/model/identity"
	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/testdb"

	"github.com/stretchr/testify/suite"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type IdentityRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	operators *identityrepo.GormOperatorRepository
	sessions  *identityrepo.GormSessionStore
}

var issuedAt = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

func (suite *IdentityRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := testdb.StartPostgres(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db

	suite.Require().NoError(postgres.Migrate(db))
}

func (suite *IdentityRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(testdb.Truncate(suite.db))
	suite.operators = identityrepo.NewGormOperatorRepository(suite.db)
	suite.sessions = identityrepo.NewGormSessionStore(suite.db)
}

func (suite *IdentityRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *IdentityRepositoryIntegrationTestSuite) session(ttl time.Duration) *identity.Session {
	s, err := identity.NewSession("clerk", issuedAt, ttl)
	suite.Require().NoError(err)
	return s
}

func (suite *IdentityRepositoryIntegrationTestSuite) TestOperator_AddAndAuthenticate() {
	ctx := suite.T().Context()
	op, err := identity.NewOperator("clerk", "correct horse")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.operators.Add(ctx, op))

	loaded, err := suite.operators.Get(ctx, "clerk")
	suite.Require().NoError(err)
	suite.Equal("clerk", loaded.Username())
	suite.Require().NoError(loaded.Authenticate("correct horse"))
	suite.Require().ErrorIs(loaded.Authenticate("wrong horse"), errs.ErrUnauthorized)
}

func (suite *IdentityRepositoryIntegrationTestSuite) TestOperator_DuplicateUsername() {
	ctx := suite.T().Context()
	first, _ := identity.NewOperator("clerk", "correct horse")
	second, _ := identity.NewOperator("clerk", "another secret")
	suite.Require().NoError(suite.operators.Add(ctx, first))

	err := suite.operators.Add(ctx, second)

	suite.Require().ErrorIs(err, errs.ErrUniqueConstraintViolation)
}

func (suite *IdentityRepositoryIntegrationTestSuite) TestOperator_UnknownUsername() {
	_, err := suite.operators.Get(suite.T().Context(), "nobody")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *IdentityRepositoryIntegrationTestSuite) TestSession_SaveGetDelete() {
	ctx := suite.T().Context()
	s := suite.session(time.Hour)

	suite.Require().NoError(suite.sessions.Save(ctx, s))

	loaded, err := suite.sessions.Get(ctx, s.Token())
	suite.Require().NoError(err)
	suite.True(s.Token().IsEqual(loaded.Token()))
	suite.Equal("clerk", loaded.Username())
	suite.True(s.ExpiresAt().Equal(loaded.ExpiresAt()))

	suite.Require().NoError(suite.sessions.Delete(ctx, s.Token()))
	_, err = suite.sessions.Get(ctx, s.Token())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Require().ErrorIs(suite.sessions.Delete(ctx, s.Token()), errs.ErrObjectNotFound)
}

func (suite *IdentityRepositoryIntegrationTestSuite) TestSession_DeleteExpired() {
	ctx := suite.T().Context()
	short := suite.session(time.Minute)
	long := suite.session(24 * time.Hour)
	suite.Require().NoError(suite.sessions.Save(ctx, short))
	suite.Require().NoError(suite.sessions.Save(ctx, long))

	removed, err := suite.sessions.DeleteExpired(ctx, issuedAt.Add(time.Hour))
	suite.Require().NoError(err)
	suite.Equal(int64(1), removed)

	_, err = suite.sessions.Get(ctx, short.Token())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = suite.sessions.Get(ctx, long.Token())
	suite.Require().NoError(err)
}

func TestIdentityRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(IdentityRepositoryIntegrationTestSuite))
}
