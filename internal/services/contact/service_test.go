package contact

import (
	"context"
	"testing"

	errs "bankee/internal/errors"
	"bankee/internal/models"
	"bankee/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupContacts(t *testing.T) (*gorm.DB, Service) {
	t.Helper()
	db := repositories.SetupTestDB(t)
	svc := NewService(repositories.NewUserRepository(db), repositories.NewContactRepository(db))
	return db, svc
}

func TestAddContact_Success(t *testing.T) {
	db, svc := setupContacts(t)
	owner := repositories.CreateTestUser(t, db, "Ali Khan", "ali@example.com", "1111222233334444", decimal.Zero)
	target := repositories.CreateTestUser(t, db, "Sara Ahmed", "sara@example.com", "5555666677778888", decimal.Zero)

	contact, err := svc.AddContact(context.Background(), owner.ID, "Sara", "5555666677778888")
	require.NoError(t, err)

	assert.Equal(t, owner.ID, contact.OwnerID)
	assert.Equal(t, target.ID, contact.UserID)
	assert.Equal(t, "Sara", contact.Name)
	assert.Equal(t, "5555666677778888", contact.AccountNumber)
	assert.False(t, contact.AddedAt.IsZero())
}

func TestAddContact_UnknownAccountNumber(t *testing.T) {
	db, svc := setupContacts(t)
	owner := repositories.CreateTestUser(t, db, "Ali Khan", "ali@example.com", "1111222233334444", decimal.Zero)

	_, err := svc.AddContact(context.Background(), owner.ID, "Nobody", "0000000000000000")
	assert.ErrorIs(t, err, errs.ErrAccountNotFound)
}

func TestAddContact_SelfRejected(t *testing.T) {
	db, svc := setupContacts(t)
	owner := repositories.CreateTestUser(t, db, "Ali Khan", "ali@example.com", "1111222233334444", decimal.Zero)

	_, err := svc.AddContact(context.Background(), owner.ID, "Me", "1111222233334444")
	assert.ErrorIs(t, err, errs.ErrSelfReference)
}

func TestAddContact_DuplicateRejected(t *testing.T) {
	db, svc := setupContacts(t)
	owner := repositories.CreateTestUser(t, db, "Ali Khan", "ali@example.com", "1111222233334444", decimal.Zero)
	repositories.CreateTestUser(t, db, "Sara Ahmed", "sara@example.com", "5555666677778888", decimal.Zero)

	_, err := svc.AddContact(context.Background(), owner.ID, "Sara", "5555666677778888")
	require.NoError(t, err)

	_, err = svc.AddContact(context.Background(), owner.ID, "Sara again", "5555666677778888")
	assert.ErrorIs(t, err, errs.ErrDuplicateContact)

	var count int64
	require.NoError(t, db.Model(&models.Contact{}).Where("owner_id = ?", owner.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAddContact_SameTargetDifferentOwners(t *testing.T) {
	db, svc := setupContacts(t)
	ownerA := repositories.CreateTestUser(t, db, "Ali Khan", "ali@example.com", "1111222233334444", decimal.Zero)
	ownerB := repositories.CreateTestUser(t, db, "Bilal Aslam", "bilal@example.com", "2222333344445555", decimal.Zero)
	repositories.CreateTestUser(t, db, "Sara Ahmed", "sara@example.com", "5555666677778888", decimal.Zero)

	_, err := svc.AddContact(context.Background(), ownerA.ID, "Sara", "5555666677778888")
	require.NoError(t, err)
	_, err = svc.AddContact(context.Background(), ownerB.ID, "Sara", "5555666677778888")
	require.NoError(t, err)
}

func TestListAndRemove(t *testing.T) {
	db, svc := setupContacts(t)
	owner := repositories.CreateTestUser(t, db, "Ali Khan", "ali@example.com", "1111222233334444", decimal.Zero)
	repositories.CreateTestUser(t, db, "Sara Ahmed", "sara@example.com", "5555666677778888", decimal.Zero)

	contact, err := svc.AddContact(context.Background(), owner.ID, "Sara", "5555666677778888")
	require.NoError(t, err)

	list, err := svc.List(context.Background(), owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.Remove(context.Background(), owner.ID, contact.ID))

	list, err = svc.List(context.Background(), owner.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
