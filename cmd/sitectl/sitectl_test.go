package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/harvest-export/website/internal/domain"
	"github.com/harvest-export/website/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func testEnv(t *testing.T, stdin string) (*env, *gorm.DB, *bytes.Buffer) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	out := &bytes.Buffer{}
	return &env{
		openDB: func(context.Context) (*gorm.DB, *zap.Logger, error) { return db, zap.NewNop(), nil },
		in:     strings.NewReader(stdin),
		out:    out,
	}, db, out
}

func execute(e *env, args ...string) error {
	cmd := newRootCmd(e)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestAdminCreateAndPassword(t *testing.T) {
	e, db, out := testEnv(t, "first-password\n")

	require.NoError(t, execute(e, "admin", "create", "Owner@Example.com", "--name", "Owner", "--password-stdin"))
	assert.Contains(t, out.String(), "created admin owner@example.com")

	var user domain.AdminUser
	require.NoError(t, db.Where("email = ?", "owner@example.com").First(&user).Error)
	assert.Equal(t, "Owner", user.Name)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("first-password")))

	t.Setenv("SITECTL_PASSWORD", "second-password")
	require.NoError(t, execute(e, "admin", "password", "owner@example.com"))

	require.NoError(t, db.First(&user, "id = ?", user.ID).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("second-password")))
}

func TestAdminCreate_RequiresPassword(t *testing.T) {
	e, _, _ := testEnv(t, "")
	t.Setenv("SITECTL_PASSWORD", "")

	assert.Error(t, execute(e, "admin", "create", "owner@example.com"))
	assert.Error(t, execute(e, "admin", "create", "owner@example.com", "--password-stdin"))
}

func TestAdminCreate_Duplicate(t *testing.T) {
	e, _, _ := testEnv(t, "")
	t.Setenv("SITECTL_PASSWORD", "long-enough")

	require.NoError(t, execute(e, "admin", "create", "owner@example.com"))
	assert.Error(t, execute(e, "admin", "create", "OWNER@example.com"))
}

func TestSeed(t *testing.T) {
	e, db, out := testEnv(t, "")
	fixture := "../../internal/seed/testdata/catalog.yaml"

	require.NoError(t, execute(e, "seed", fixture, "--dry-run"))
	assert.Contains(t, out.String(), "2 categories, 2 products, 2 countries, 1 posts")

	var count int64
	require.NoError(t, db.Model(&domain.Product{}).Count(&count).Error)
	assert.Zero(t, count)

	require.NoError(t, execute(e, "seed", fixture))
	assert.Contains(t, out.String(), "10 created, 0 skipped")
	require.NoError(t, db.Model(&domain.Product{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestVersion(t *testing.T) {
	e, _, out := testEnv(t, "")
	require.NoError(t, execute(e, "version"))
	assert.Equal(t, "sitectl dev\n", out.String())
}
