package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MischieS/agenta-sub001/internal/auth"
	"github.com/MischieS/agenta-sub001/internal/domain"
	"github.com/MischieS/agenta-sub001/internal/dto"
)

func mustHash(t *testing.T, plaintext string) string {
	t.Helper()
	hash, err := auth.HashPassword(plaintext, bcrypt.MinCost)
	require.NoError(t, err)
	return hash
}

func newAuthFixture(t *testing.T) (*mockUserRepo, *mockStudentRepo, *auth.TokenManager, AuthService) {
	t.Helper()
	users := newMockUserRepo()
	students := newMockStudentRepo()
	tokens := auth.NewTokenManager("test-secret", "agenta", time.Hour)
	svc := NewAuthService(users, students, tokens, nil)
	return users, students, tokens, svc
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("staff login round trip", func(t *testing.T) {
		users, _, tokens, svc := newAuthFixture(t)
		users.seed(&domain.User{
			ID:           "u-1",
			Email:        "advisor@agenta.io",
			PasswordHash: mustHash(t, "s3cret-pw"),
			Role:         domain.RoleStaff,
		})

		resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "advisor@agenta.io", Password: "s3cret-pw"})
		require.NoError(t, err)
		assert.False(t, resp.User.IsStudent)
		assert.Equal(t, "u-1", resp.User.ID)
		require.NotNil(t, resp.User.User)
		assert.Empty(t, resp.User.User.PasswordHash)
		assert.Nil(t, resp.User.Student)

		claims, err := tokens.Verify(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "u-1", claims.Subject)
		assert.False(t, claims.IsStudent)
	})

	t.Run("student login round trip", func(t *testing.T) {
		_, students, tokens, svc := newAuthFixture(t)
		students.seed(&domain.Student{
			ID:           "s-1",
			Email:        "applicant@agenta.io",
			PasswordHash: mustHash(t, "s3cret-pw"),
			Status:       domain.StudentStatusPending,
		})

		resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "applicant@agenta.io", Password: "s3cret-pw"})
		require.NoError(t, err)
		assert.True(t, resp.User.IsStudent)
		require.NotNil(t, resp.User.Student)
		assert.Empty(t, resp.User.Student.PasswordHash)
		assert.Nil(t, resp.User.User)

		claims, err := tokens.Verify(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "s-1", claims.Subject)
		assert.True(t, claims.IsStudent)
	})

	t.Run("staff wins a cross store email collision", func(t *testing.T) {
		users, students, _, svc := newAuthFixture(t)
		users.seed(&domain.User{
			ID:           "u-1",
			Email:        "shared@agenta.io",
			PasswordHash: mustHash(t, "staff-pw"),
			Role:         domain.RoleStaff,
		})
		students.seed(&domain.Student{
			ID:           "s-1",
			Email:        "shared@agenta.io",
			PasswordHash: mustHash(t, "student-pw"),
		})

		resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "shared@agenta.io", Password: "staff-pw"})
		require.NoError(t, err)
		assert.False(t, resp.User.IsStudent)
		assert.Equal(t, "u-1", resp.User.ID)

		// The colliding student's password does not open the staff account
		_, err = svc.Login(ctx, &dto.LoginRequest{Email: "shared@agenta.io", Password: "student-pw"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		users, _, _, svc := newAuthFixture(t)
		users.seed(&domain.User{
			ID:           "u-1",
			Email:        "advisor@agenta.io",
			PasswordHash: mustHash(t, "s3cret-pw"),
			Role:         domain.RoleStaff,
		})

		_, errWrongPw := svc.Login(ctx, &dto.LoginRequest{Email: "advisor@agenta.io", Password: "nope"})
		_, errNoAccount := svc.Login(ctx, &dto.LoginRequest{Email: "ghost@agenta.io", Password: "nope"})

		assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
		assert.ErrorIs(t, errNoAccount, ErrInvalidCredentials)
		assert.Equal(t, errWrongPw.Error(), errNoAccount.Error())
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves staff principal from token", func(t *testing.T) {
		users, _, tokens, svc := newAuthFixture(t)
		users.seed(&domain.User{ID: "u-1", Email: "advisor@agenta.io", Role: domain.RoleAdmin})

		token, err := tokens.Issue("u-1", "advisor@agenta.io", false)
		require.NoError(t, err)

		principal, err := svc.Authenticate(ctx, token)
		require.NoError(t, err)
		assert.False(t, principal.IsStudent)
		assert.Equal(t, "u-1", principal.ID())
		assert.Equal(t, domain.RoleAdmin, principal.Role())
	})

	t.Run("resolves student principal from token", func(t *testing.T) {
		_, students, tokens, svc := newAuthFixture(t)
		students.seed(&domain.Student{ID: "s-1", Email: "applicant@agenta.io"})

		token, err := tokens.Issue("s-1", "applicant@agenta.io", true)
		require.NoError(t, err)

		principal, err := svc.Authenticate(ctx, token)
		require.NoError(t, err)
		assert.True(t, principal.IsStudent)
		assert.Equal(t, "s-1", principal.ID())
		assert.Empty(t, principal.Role())
	})

	t.Run("reserved subject resolves without touching the stores", func(t *testing.T) {
		users, students, tokens, svc := newAuthFixture(t)

		token, err := tokens.Issue(auth.SmokeTestSubject, "test@example.com", false)
		require.NoError(t, err)

		principal, err := svc.Authenticate(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, auth.SmokeTestSubject, principal.ID())
		assert.Equal(t, "test@example.com", principal.Email())
		assert.Equal(t, domain.RoleUser, principal.Role())
		assert.False(t, principal.IsStudent)

		assert.Zero(t, users.getCalls)
		assert.Zero(t, students.getCalls)
	})

	t.Run("deleted account fails closed", func(t *testing.T) {
		users, _, tokens, svc := newAuthFixture(t)
		users.seed(&domain.User{ID: "u-1", Email: "advisor@agenta.io", Role: domain.RoleStaff})

		token, err := tokens.Issue("u-1", "advisor@agenta.io", false)
		require.NoError(t, err)
		require.NoError(t, users.Delete(ctx, "u-1"))

		_, err = svc.Authenticate(ctx, token)
		assert.ErrorIs(t, err, ErrPrincipalNotFound)
	})

	t.Run("claim flag selects the store", func(t *testing.T) {
		users, _, tokens, svc := newAuthFixture(t)
		// An id present only in the staff table does not resolve when
		// the token claims a student.
		users.seed(&domain.User{ID: "x-1", Email: "advisor@agenta.io", Role: domain.RoleStaff})

		token, err := tokens.Issue("x-1", "advisor@agenta.io", true)
		require.NoError(t, err)

		_, err = svc.Authenticate(ctx, token)
		assert.ErrorIs(t, err, ErrPrincipalNotFound)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, _, _, svc := newAuthFixture(t)
		_, err := svc.Authenticate(ctx, "not-a-token")
		assert.ErrorIs(t, err, auth.ErrTokenMalformed)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		_, _, _, svc := newAuthFixture(t)
		other := auth.NewTokenManager("other-secret", "agenta", time.Hour)
		token, err := other.Issue("u-1", "advisor@agenta.io", false)
		require.NoError(t, err)

		_, err = svc.Authenticate(ctx, token)
		assert.ErrorIs(t, err, auth.ErrTokenSignature)
	})
}

func TestAuthService_UpdateUserProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("merges provided fields", func(t *testing.T) {
		users, _, _, svc := newAuthFixture(t)
		users.seed(&domain.User{ID: "u-1", Name: "Old", Email: "advisor@agenta.io", Role: domain.RoleStaff})

		name := "New"
		updated, err := svc.UpdateUserProfile(ctx, "u-1", &dto.UpdateProfileRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "New", updated.Name)
		assert.Equal(t, "advisor@agenta.io", updated.Email)
	})

	t.Run("rejects an email held by a student", func(t *testing.T) {
		users, students, _, svc := newAuthFixture(t)
		users.seed(&domain.User{ID: "u-1", Email: "advisor@agenta.io", Role: domain.RoleStaff})
		students.seed(&domain.Student{ID: "s-1", Email: "applicant@agenta.io"})

		email := "applicant@agenta.io"
		_, err := svc.UpdateUserProfile(ctx, "u-1", &dto.UpdateProfileRequest{Email: &email})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, _, _, svc := newAuthFixture(t)
		name := "New"
		_, err := svc.UpdateUserProfile(ctx, "ghost", &dto.UpdateProfileRequest{Name: &name})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAuthService_UpdateStudentProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("merges the self service field set", func(t *testing.T) {
		_, students, _, svc := newAuthFixture(t)
		students.seed(&domain.Student{ID: "s-1", Email: "applicant@agenta.io", Country: "FR"})

		country := "DE"
		phone := "+49 30 1234"
		updated, err := svc.UpdateStudentProfile(ctx, "s-1", &dto.UpdateStudentSelfRequest{
			Country: &country,
			Phone:   &phone,
		})
		require.NoError(t, err)
		assert.Equal(t, "DE", updated.Country)
		assert.Equal(t, "+49 30 1234", updated.Phone)
		assert.Equal(t, "applicant@agenta.io", updated.Email)
	})

	t.Run("unknown student", func(t *testing.T) {
		_, _, _, svc := newAuthFixture(t)
		country := "DE"
		_, err := svc.UpdateStudentProfile(ctx, "ghost", &dto.UpdateStudentSelfRequest{Country: &country})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
