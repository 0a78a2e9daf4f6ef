package domainerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

// DomainErrorsSuite tests the domain error primitives.
//
// Justification: These are core error primitives used at every trust boundary.
// Unit tests ensure invariants like "wrapped domain errors preserve original code"
// and "errors.Is matches by code" are maintained.
type DomainErrorsSuite struct {
	suite.Suite
}

func TestDomainErrorsSuite(t *testing.T) {
	suite.Run(t, new(DomainErrorsSuite))
}

func (s *DomainErrorsSuite) TestErrorInterface() {
	s.Run("returns message when present", func() {
		err := &Error{Code: CodeConsentRequestNotFound, Message: "consent request not found"}
		s.Equal("consent request not found", err.Error())
	})

	s.Run("returns code when message is empty", func() {
		err := &Error{Code: CodeConsentRequestNotFound}
		s.Equal("consent_request_not_found", err.Error())
	})
}

func (s *DomainErrorsSuite) TestIsMatching() {
	s.Run("matches by code only", func() {
		err1 := &Error{Code: CodeConsentArtefactNotFound, Message: "artefact A1"}
		err2 := &Error{Code: CodeConsentArtefactNotFound, Message: "artefact A2"}
		s.True(err1.Is(err2))
	})

	s.Run("does not match different codes", func() {
		err1 := &Error{Code: CodeQueueNotFound}
		err2 := &Error{Code: CodeInternal}
		s.False(err1.Is(err2))
	})

	s.Run("works with errors.Is through chain", func() {
		inner := &Error{Code: CodeInvalidPurposeOfUse, Message: "original"}
		wrapped := &Error{Code: CodeInternal, Message: "wrapped", Err: inner}
		target := &Error{Code: CodeInvalidPurposeOfUse}

		s.True(errors.Is(wrapped, target))
	})
}

func (s *DomainErrorsSuite) TestWrap() {
	s.Run("preserves original domain code when wrapping domain error", func() {
		original := New(CodeConsentArtefactNotFound, "artefact not found")
		wrapped := Wrap(original, CodeInternal, "task failed")

		var domainErr *Error
		s.Require().True(errors.As(wrapped, &domainErr))
		s.Equal(CodeConsentArtefactNotFound, domainErr.Code)
		s.Equal("task failed", domainErr.Message)
	})

	s.Run("uses provided code when wrapping non-domain error", func() {
		original := errors.New("database timeout")
		wrapped := Wrap(original, CodeInternal, "store error")

		var domainErr *Error
		s.Require().True(errors.As(wrapped, &domainErr))
		s.Equal(CodeInternal, domainErr.Code)
	})

	s.Run("wrapped error is accessible via errors.Is", func() {
		original := errors.New("root cause")
		wrapped := Wrap(original, CodeInternal, "store error")

		s.True(errors.Is(wrapped, original))
	})
}

func (s *DomainErrorsSuite) TestHasCode() {
	s.Run("returns true for matching code", func() {
		err := New(CodeInvalidDataFromGateway, "no error and no consent request")
		s.True(HasCode(err, CodeInvalidDataFromGateway))
	})

	s.Run("returns false for non-matching code", func() {
		err := New(CodeValidation, "no task for status")
		s.False(HasCode(err, CodeInternal))
	})

	s.Run("finds code through error chain", func() {
		inner := New(CodeQueueNotFound, "data-flow delete topic not configured")
		wrapped := Wrap(inner, CodeInternal, "broadcast failed")
		s.True(HasCode(wrapped, CodeQueueNotFound))
	})

	s.Run("returns false for nil error", func() {
		s.False(HasCode(nil, CodeNotFound))
	})
}
