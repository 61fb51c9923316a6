package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MischieS/agenta-sub001/internal/domain"
)

func TestNotificationService_MarkRead(t *testing.T) {
	ctx := context.Background()
	repo := newMockNotificationRepo()
	svc := NewNotificationService(repo, nil)

	require.NoError(t, svc.Notify(ctx, "s-1", true, domain.NotificationMessageReceived, "hi"))
	notices, err := repo.ListByRecipient(ctx, "s-1", true, 10, 0)
	require.NoError(t, err)
	require.Len(t, notices, 1)
	id := notices[0].ID

	owner := domain.StudentPrincipal(&domain.Student{ID: "s-1", Email: "ada@agenta.io"})
	otherStudent := domain.StudentPrincipal(&domain.Student{ID: "s-2", Email: "eve@agenta.io"})
	// Same id, wrong account kind
	staffSameID := domain.StaffPrincipal(&domain.User{ID: "s-1", Email: "boss@agenta.io", Role: domain.RoleAdmin})

	assert.ErrorIs(t, svc.MarkRead(ctx, otherStudent, id), ErrForbidden)
	assert.ErrorIs(t, svc.MarkRead(ctx, staffSameID, id), ErrForbidden)
	assert.ErrorIs(t, svc.MarkRead(ctx, owner, "ghost"), ErrNotFound)

	require.NoError(t, svc.MarkRead(ctx, owner, id))
	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, got.Read)
}

func TestNotificationService_ListScopesByRecipient(t *testing.T) {
	ctx := context.Background()
	repo := newMockNotificationRepo()
	svc := NewNotificationService(repo, nil)

	require.NoError(t, svc.Notify(ctx, "same-id", true, domain.NotificationMessageReceived, "for the student"))
	require.NoError(t, svc.Notify(ctx, "same-id", false, domain.NotificationStudentAssigned, "for the staff member"))

	student := domain.StudentPrincipal(&domain.Student{ID: "same-id", Email: "ada@agenta.io"})
	staff := domain.StaffPrincipal(&domain.User{ID: "same-id", Email: "boss@agenta.io", Role: domain.RoleAdmin})

	studentNotices, err := svc.List(ctx, student, 10, 0)
	require.NoError(t, err)
	require.Len(t, studentNotices, 1)
	assert.Equal(t, domain.NotificationMessageReceived, studentNotices[0].Kind)

	staffNotices, err := svc.List(ctx, staff, 10, 0)
	require.NoError(t, err)
	require.Len(t, staffNotices, 1)
	assert.Equal(t, domain.NotificationStudentAssigned, staffNotices[0].Kind)
}
