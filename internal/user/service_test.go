package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	pkgerrors "hiu/pkg/domain-errors"
)

type ServiceSuite struct {
	suite.Suite

	now     time.Time
	store   *MemoryStore
	tokens  *TokenIssuer
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.now = time.Date(2025, 3, 14, 10, 30, 45, 0, time.UTC)
	s.store = NewMemoryStore()
	s.tokens = NewTokenIssuer("test-signing-key", WithTokenClock(func() time.Time { return s.now }))
	s.service = NewService(s.store, s.tokens, nil)
}

func (s *ServiceSuite) TestAuthenticateIssuesToken() {
	ctx := context.Background()
	s.Require().NoError(s.service.Create(ctx, "lakshmi", "s3cret", RoleDoctor))

	token, err := s.service.Authenticate(ctx, "lakshmi", "s3cret")
	s.Require().NoError(err)
	s.Require().NotEmpty(token)

	claims, err := s.tokens.Validate(token)
	s.Require().NoError(err)
	s.Equal("lakshmi", claims.Username)
	s.Equal(RoleDoctor, claims.Role)
	s.True(claims.IsVerified)
	s.Equal(s.now.Add(time.Hour), claims.ExpiresAt.Time)
}

func (s *ServiceSuite) TestAuthenticateUnknownUser() {
	_, err := s.service.Authenticate(context.Background(), "nobody", "s3cret")
	s.Require().Error(err)
	s.True(pkgerrors.HasCode(err, pkgerrors.CodeAuthenticationFailed))
}

func (s *ServiceSuite) TestAuthenticateWrongPassword() {
	ctx := context.Background()
	s.Require().NoError(s.service.Create(ctx, "lakshmi", "s3cret", RoleDoctor))

	_, err := s.service.Authenticate(ctx, "lakshmi", "wrong")
	s.Require().Error(err)
	s.True(pkgerrors.HasCode(err, pkgerrors.CodeAuthenticationFailed))
}

func (s *ServiceSuite) TestCreateDuplicateUsername() {
	ctx := context.Background()
	s.Require().NoError(s.service.Create(ctx, "lakshmi", "s3cret", RoleDoctor))

	err := s.service.Create(ctx, "lakshmi", "other", RoleAdmin)
	s.Require().Error(err)
	s.True(pkgerrors.HasCode(err, pkgerrors.CodeConflict))
}

func (s *ServiceSuite) TestChangePassword() {
	ctx := context.Background()
	s.Require().NoError(s.service.Create(ctx, "lakshmi", "s3cret", RoleDoctor))

	s.Require().NoError(s.service.ChangePassword(ctx, "lakshmi", "s3cret", "n3w-secret"))

	_, err := s.service.Authenticate(ctx, "lakshmi", "s3cret")
	s.True(pkgerrors.HasCode(err, pkgerrors.CodeAuthenticationFailed))

	_, err = s.service.Authenticate(ctx, "lakshmi", "n3w-secret")
	s.NoError(err)
}

func (s *ServiceSuite) TestChangePasswordRequiresCurrentPassword() {
	ctx := context.Background()
	s.Require().NoError(s.service.Create(ctx, "lakshmi", "s3cret", RoleDoctor))

	err := s.service.ChangePassword(ctx, "lakshmi", "wrong", "n3w-secret")
	s.Require().Error(err)
	s.True(pkgerrors.HasCode(err, pkgerrors.CodeAuthenticationFailed))
}

func (s *ServiceSuite) TestValidateExpiredToken() {
	ctx := context.Background()
	s.Require().NoError(s.service.Create(ctx, "lakshmi", "s3cret", RoleDoctor))

	token, err := s.service.Authenticate(ctx, "lakshmi", "s3cret")
	s.Require().NoError(err)

	s.now = s.now.Add(time.Hour + time.Minute)
	_, err = s.tokens.Validate(token)
	s.Require().Error(err)
	s.True(pkgerrors.HasCode(err, pkgerrors.CodeUnauthorized))
}

func (s *ServiceSuite) TestValidateAcceptsBearerPrefix() {
	ctx := context.Background()
	s.Require().NoError(s.service.Create(ctx, "lakshmi", "s3cret", RoleDoctor))

	token, err := s.service.Authenticate(ctx, "lakshmi", "s3cret")
	s.Require().NoError(err)

	claims, err := s.tokens.Validate("Bearer " + token)
	s.Require().NoError(err)
	s.Equal("lakshmi", claims.Username)
}

func (s *ServiceSuite) TestParseRoleDefaultsToDoctor() {
	s.Equal(RoleAdmin, ParseRole("admin"))
	s.Equal(RoleDoctor, ParseRole("DOCTOR"))
	s.Equal(RoleDoctor, ParseRole(""))
	s.Equal(RoleDoctor, ParseRole("somebody"))
}
