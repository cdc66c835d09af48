package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/aedb-backend/internal/data/db"
	"github.com/yungbote/aedb-backend/internal/data/repos"
	"github.com/yungbote/aedb-backend/internal/data/repos/testutil"
	types "github.com/yungbote/aedb-backend/internal/domain"
	"github.com/yungbote/aedb-backend/internal/platform/apierr"
)

func newTestCatalog(t *testing.T) CatalogService {
	t.Helper()
	gdb := testutil.DB(t)
	log := testutil.Logger(t)
	return NewCatalogService(gdb, log, repos.NewCategoryRepo(gdb, log), repos.NewGroupRepo(gdb, log), repos.NewManualRepo(gdb, log))
}

func TestManualPlacement(t *testing.T) {
	cs := newTestCatalog(t)
	ctx := context.Background()

	pumps, err := cs.CreateCategory(ctx, &types.Category{Name: "Pumps"})
	require.NoError(t, err)
	valves, err := cs.CreateCategory(ctx, &types.Category{Name: "Valves"})
	require.NoError(t, err)
	hydraulic, err := cs.CreateGroup(ctx, &types.Group{Name: "Hydraulic", CategoryID: pumps.ID})
	require.NoError(t, err)

	m, err := cs.CreateManual(ctx, &types.Manual{Title: "Manual A", FileURL: "/a.pdf", GroupID: hydraulic.ID})
	require.NoError(t, err)
	assert.Equal(t, pumps.ID, m.CategoryID)

	_, err = cs.CreateManual(ctx, &types.Manual{Title: "B", FileURL: "/b.pdf", GroupID: hydraulic.ID, CategoryID: valves.ID})
	ae, ok := apierr.As(err)
	require.True(t, ok, "got %v", err)
	assert.Equal(t, http.StatusUnprocessableEntity, ae.Status)

	_, err = cs.CreateManual(ctx, &types.Manual{Title: "C", FileURL: "/c.pdf", GroupID: 404})
	assert.ErrorIs(t, err, db.ErrForeignKeyViolation)

	groups, err := cs.ListCategoryGroups(ctx, pumps.ID)
	require.NoError(t, err)
	assert.Len(t, groups, 1)

	_, err = cs.ListCategoryGroups(ctx, 999)
	assert.ErrorIs(t, err, db.ErrNotFound)

	require.NoError(t, cs.DeleteCategory(ctx, pumps.ID))
	_, err = cs.GetManual(ctx, m.ID)
	assert.ErrorIs(t, err, db.ErrNotFound)
}

type fakeBucket struct {
	uploaded map[string][]byte
	deleted  []string
}

func (fb *fakeBucket) UploadFile(_ context.Context, key string, file io.Reader, _ int64) error {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		return err
	}
	if fb.uploaded == nil {
		fb.uploaded = map[string][]byte{}
	}
	fb.uploaded[key] = buf.Bytes()
	return nil
}

func (fb *fakeBucket) DeleteFile(_ context.Context, key string) error {
	fb.deleted = append(fb.deleted, key)
	return nil
}

func (fb *fakeBucket) GetPublicURL(key string) string { return "https://cdn.example.com/aedb/" + key }

func TestUploadManual(t *testing.T) {
	cs := newTestCatalog(t)
	ctx := context.Background()
	bucket := &fakeBucket{}
	fs := NewFileService(testutil.Logger(t), bucket, cs)

	cat, err := cs.CreateCategory(ctx, &types.Category{Name: "Pumps"})
	require.NoError(t, err)
	group, err := cs.CreateGroup(ctx, &types.Group{Name: "Hydraulic", CategoryID: cat.ID})
	require.NoError(t, err)

	m, err := fs.UploadManual(ctx, ManualUpload{Title: "Manual A", Filename: "a.PDF", GroupID: group.ID}, strings.NewReader("%PDF"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(m.FileURL, "https://cdn.example.com/aedb/manuals/"))
	assert.True(t, strings.HasSuffix(m.FileURL, ".pdf"))
	assert.Len(t, bucket.uploaded, 1)
	assert.Empty(t, bucket.deleted)

	_, err = fs.UploadManual(ctx, ManualUpload{Title: "orphan", Filename: "b.pdf", GroupID: 999}, strings.NewReader("x"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, db.ErrForeignKeyViolation))
	assert.Len(t, bucket.deleted, 1)
}

type failingBucket struct{ fakeBucket }

func (*failingBucket) UploadFile(context.Context, string, io.Reader, int64) error {
	return errors.New("bucket unreachable")
}

func TestUploadManualSurfacesStorageErrors(t *testing.T) {
	fs := NewFileService(testutil.Logger(t), &failingBucket{}, newTestCatalog(t))

	_, err := fs.UploadManual(context.Background(), ManualUpload{Title: "M", Filename: "m.pdf", GroupID: 1}, strings.NewReader("m"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket unreachable")
}

func TestMovingGroupCarriesManualsToNewCategory(t *testing.T) {
	cs := newTestCatalog(t)
	ctx := context.Background()

	pumps, err := cs.CreateCategory(ctx, &types.Category{Name: "Pumps"})
	require.NoError(t, err)
	valves, err := cs.CreateCategory(ctx, &types.Category{Name: "Valves"})
	require.NoError(t, err)
	hydraulic, err := cs.CreateGroup(ctx, &types.Group{Name: "Hydraulic", CategoryID: pumps.ID})
	require.NoError(t, err)
	m, err := cs.CreateManual(ctx, &types.Manual{Title: "Manual A", FileURL: "/a.pdf", GroupID: hydraulic.ID})
	require.NoError(t, err)

	_, err = cs.UpdateGroup(ctx, hydraulic.ID, &types.Group{Name: "Hydraulic", CategoryID: valves.ID})
	require.NoError(t, err)

	moved, err := cs.GetManual(ctx, m.ID)
	require.NoError(t, err)
	if moved.CategoryID != valves.ID {
		t.Fatalf("manual category: want=%d got=%d", valves.ID, moved.CategoryID)
	}

	require.NoError(t, cs.DeleteCategory(ctx, pumps.ID))
	_, err = cs.GetGroup(ctx, hydraulic.ID)
	require.NoError(t, err)
	_, err = cs.GetManual(ctx, m.ID)
	require.NoError(t, err)

	_, err = cs.UpdateGroup(ctx, hydraulic.ID, &types.Group{Name: "Hydraulic", CategoryID: 404})
	assert.ErrorIs(t, err, db.ErrForeignKeyViolation)
	kept, err := cs.GetManual(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, valves.ID, kept.CategoryID)

	_, err = cs.UpdateGroup(ctx, 999, &types.Group{Name: "Ghost", CategoryID: valves.ID})
	assert.ErrorIs(t, err, db.ErrNotFound)
}
