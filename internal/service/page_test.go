package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pagebuilder/internal/codec"
	"pagebuilder/internal/editor"
	"pagebuilder/internal/model"
	"pagebuilder/internal/repository/memory"
	repoMocks "pagebuilder/internal/repository/mocks"
	"pagebuilder/internal/storage"
	storeMocks "pagebuilder/internal/storage/mocks"
)

var epoch = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func testOptions() []Option {
	ticks, ids := 0, 0
	return []Option{
		WithClock(func() time.Time {
			ticks++
			return epoch.Add(time.Duration(ticks) * time.Second)
		}),
		WithIDGenerator(func() string {
			ids++
			return fmt.Sprintf("id-%d", ids)
		}),
	}
}

func newTestService(t *testing.T, extra ...Option) (PageService, *memory.PageMemory) {
	t.Helper()
	repo := memory.NewPageMemory()
	return NewPageService(repo, append(testOptions(), extra...)...), repo
}

func blockIDs(doc *model.Document) []string {
	out := make([]string, len(doc.Blocks))
	for i, b := range doc.Blocks {
		out[i] = b.ID
	}
	return out
}

func TestPageService_Create(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	v, err := svc.Create(ctx)

	require.NoError(t, err)
	assert.Equal(t, "id-1", v.Document.ID)
	assert.Len(t, v.Document.Blocks, 11)
	assert.False(t, v.Dirty)
	assert.False(t, v.EditMode)

	stored, err := repo.Load(ctx, "id-1")
	require.NoError(t, err)
	assert.Contains(t, string(stored), `"intro-heading"`)
}

func TestPageService_Create_StoreError(t *testing.T) {
	ctx := context.Background()
	repo := new(repoMocks.MockPageRepository)
	repo.On("Save", mock.Anything, "id-1", mock.Anything).Return(errors.New("disk full"))
	svc := NewPageService(repo, testOptions()...)

	v, err := svc.Create(ctx)

	assert.Nil(t, v)
	assert.EqualError(t, err, "save page: disk full")
	repo.AssertExpectations(t)
}

func TestPageService_Open(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	doc := &model.Document{ID: "stored", Title: "Stored", LastModified: epoch, Blocks: []*model.Block{
		{ID: "b", Size: model.SizeFull, Payload: &model.TextPayload{Content: "x"}},
	}}
	data, err := codec.New().Export(doc)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, "stored", data))

	v, err := svc.Open(ctx, "stored")
	require.NoError(t, err)
	assert.Equal(t, doc, v.Document)
	assert.False(t, v.Dirty)

	_, err = svc.Open(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Open(ctx, "")
	assert.ErrorIs(t, err, ErrIDRequired)
}

func TestPageService_Open_CorruptBlob(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)
	require.NoError(t, repo.Save(ctx, "bad", []byte("garbage")))

	_, err := svc.Open(ctx, "bad")

	assert.ErrorIs(t, err, ErrCorruptPage)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.False(t, codec.IsImportError(err))
}

func TestPageService_EditSaveClose(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)
	created, err := svc.Create(ctx)
	require.NoError(t, err)
	id := created.Document.ID

	title := "Renamed"
	v, err := svc.UpdateMeta(ctx, id, model.PageMetaPatch{Title: &title})
	require.NoError(t, err)
	assert.True(t, v.Changed)
	assert.True(t, v.Dirty)

	stored, _ := repo.Load(ctx, id)
	assert.NotContains(t, string(stored), "Renamed")

	v, err = svc.Save(ctx, id)
	require.NoError(t, err)
	assert.False(t, v.Dirty)
	stored, _ = repo.Load(ctx, id)
	assert.Contains(t, string(stored), "Renamed")

	other := "Discarded"
	_, err = svc.UpdateMeta(ctx, id, model.PageMetaPatch{Title: &other})
	require.NoError(t, err)
	require.NoError(t, svc.Close(ctx, id))
	assert.ErrorIs(t, svc.Close(ctx, id), ErrNotFound)

	v, err = svc.Open(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", v.Document.Title)
}

func TestPageService_AddBlock(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	created, _ := svc.Create(ctx)
	id := created.Document.ID

	v, b, err := svc.AddBlock(ctx, id, model.BlockCode, "intro-heading")

	require.NoError(t, err)
	require.NotNil(t, b)
	assert.True(t, v.Changed)
	assert.Equal(t, "id-2", b.ID)
	assert.Equal(t, []string{"intro-heading", "id-2", "intro-text"}, blockIDs(v.Document)[:3])

	_, _, err = svc.AddBlock(ctx, id, model.BlockType("table"), "")
	assert.ErrorIs(t, err, ErrInvalidBlockType)

	_, _, err = svc.AddBlock(ctx, "missing", model.BlockText, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPageService_MoveBlock(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	created, _ := svc.Create(ctx)
	id := created.Document.ID

	v, err := svc.MoveBlock(ctx, id, "intro-text", editor.Up)
	require.NoError(t, err)
	assert.True(t, v.Changed)
	assert.Equal(t, []string{"intro-text", "intro-heading"}, blockIDs(v.Document)[:2])

	v, err = svc.MoveBlock(ctx, id, "intro-text", editor.Up)
	require.NoError(t, err)
	assert.False(t, v.Changed)

	_, err = svc.MoveBlock(ctx, id, "intro-text", editor.Direction("left"))
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

func TestPageService_LayoutLockSuppressesEdits(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	created, _ := svc.Create(ctx)
	id := created.Document.ID

	_, err := svc.SetEditMode(ctx, id, true)
	require.NoError(t, err)
	v, err := svc.Select(ctx, id, "demo-video")
	require.NoError(t, err)
	assert.Equal(t, "demo-video", v.SelectedBlockID)

	v, err = svc.ToggleLayoutLock(ctx, id)
	require.NoError(t, err)
	assert.True(t, v.Document.LayoutLocked)
	assert.Empty(t, v.SelectedBlockID)

	for name, edit := range map[string]func() (*PageView, error){
		"delete": func() (*PageView, error) { return svc.DeleteBlock(ctx, id, "divider-1") },
		"resize": func() (*PageView, error) { return svc.ResizeBlock(ctx, id, "demo-video", 4) },
		"drop":   func() (*PageView, error) { return svc.DropBlock(ctx, id, "demo-video", 3, 2) },
		"move":   func() (*PageView, error) { return svc.MoveBlock(ctx, id, "divider-1", editor.Down) },
		"select": func() (*PageView, error) { return svc.Select(ctx, id, "demo-video") },
	} {
		v, err := edit()
		require.NoError(t, err, name)
		assert.False(t, v.Changed, name)
	}

	v, err = svc.ToggleLayoutLock(ctx, id)
	require.NoError(t, err)
	assert.False(t, v.Document.LayoutLocked)
}

func TestPageService_ResizeAndDrop(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	created, _ := svc.Create(ctx)
	id := created.Document.ID

	v, err := svc.ResizeBlock(ctx, id, "demo-video", 6)
	require.NoError(t, err)
	assert.Equal(t, &model.GridPosition{Column: 1, ColumnSpan: 6, Row: 6}, v.Document.Block("demo-video").GridPosition)

	v, err = svc.DropBlockAt(ctx, id, "demo-video", 650, 130, 1200)
	require.NoError(t, err)
	assert.True(t, v.Changed)
	assert.Equal(t, &model.GridPosition{Column: 7, ColumnSpan: 6, Row: 2}, v.Document.Block("demo-video").GridPosition)
}

func TestPageService_Layout(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	created, _ := svc.Create(ctx)
	id := created.Document.ID

	_, err := svc.DropBlock(ctx, id, "reference-image", 9, 1)
	require.NoError(t, err)

	placed, err := svc.Layout(ctx, id)
	require.NoError(t, err)
	require.Len(t, placed, 11)
	assert.Equal(t, "intro-heading", placed[0].Block.ID)
	assert.Equal(t, "intro-text", placed[1].Block.ID)
	assert.Equal(t, "reference-image", placed[2].Block.ID)
	assert.Equal(t, model.GridPosition{Column: 7, ColumnSpan: 6, Row: 1}, placed[2].Position)
	assert.Equal(t, "divider-1", placed[3].Block.ID)
}

func TestPageService_ImportExportDuplicate(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)
	created, _ := svc.Create(ctx)
	id := created.Document.ID

	text, err := svc.Export(ctx, id)
	require.NoError(t, err)

	imported, err := svc.Import(ctx, text)
	require.NoError(t, err)
	assert.NotEqual(t, id, imported.Document.ID)
	assert.Equal(t, blockIDs(created.Document), blockIDs(imported.Document))

	dup, err := svc.Duplicate(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, created.Document.Title+codec.CopySuffix, dup.Document.Title)
	_, err = repo.Load(ctx, dup.Document.ID)
	assert.NoError(t, err)

	working := "Working copy"
	_, err = svc.UpdateMeta(ctx, id, model.PageMetaPatch{Title: &working})
	require.NoError(t, err)
	before, err := svc.Export(ctx, id)
	require.NoError(t, err)
	listed, err := svc.List(ctx, 100, 0)
	require.NoError(t, err)

	for _, bad := range []string{"not json", "{not json", `{"blocks":[{"type":"table"}]}`} {
		_, err = svc.Import(ctx, []byte(bad))
		assert.True(t, codec.IsImportError(err), bad)
	}

	after, err := svc.Export(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	again, err := svc.List(ctx, 100, 0)
	require.NoError(t, err)
	assert.Equal(t, listed.Total, again.Total)
}

func TestPageService_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	a, _ := svc.Create(ctx)
	b, _ := svc.Create(ctx)

	title := "Unsaved title"
	_, err := svc.UpdateMeta(ctx, b.Document.ID, model.PageMetaPatch{Title: &title})
	require.NoError(t, err)

	res, err := svc.List(ctx, 0, -1)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
	require.Len(t, res.Items, 2)
	assert.Equal(t, a.Document.ID, res.Items[0].ID)
	assert.Equal(t, 11, res.Items[0].BlockCount)
	assert.Equal(t, "Unsaved title", res.Items[1].Title)

	require.NoError(t, svc.Delete(ctx, a.Document.ID))
	assert.ErrorIs(t, svc.Delete(ctx, a.Document.ID), ErrNotFound)
	_, err = svc.Open(ctx, a.Document.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	res, err = svc.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
}

func TestPageService_Archive(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		setupMocks func(mStore *storeMocks.MockStorage)
		wantErrMsg string
	}{
		{
			name: "happy path",
			setupMocks: func(mStore *storeMocks.MockStorage) {
				mStore.On("Put", ctx, mock.MatchedBy(storage.IsArchiveKey), mock.Anything, mock.MatchedBy(func(o storage.UploadOptions) bool {
					return o.ContentType == "application/json" && o.Size > 0 && o.PageTitle == "Technology Overview"
				})).Return(storage.Archive{}, nil)
				mStore.On("PresignGet", ctx, mock.Anything, 10*time.Minute).Return("https://minio/exports/x", nil)
			},
		},
		{
			name: "upload fails",
			setupMocks: func(mStore *storeMocks.MockStorage) {
				mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).Return(storage.Archive{}, errors.New("bucket gone"))
			},
			wantErrMsg: "upload archive: bucket gone",
		},
		{
			name: "presign fails and upload is removed",
			setupMocks: func(mStore *storeMocks.MockStorage) {
				mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).Return(storage.Archive{}, nil)
				mStore.On("PresignGet", ctx, mock.Anything, mock.Anything).Return("", errors.New("clock skew"))
				mStore.On("Delete", ctx, mock.Anything).Return(nil)
			},
			wantErrMsg: "presign archive: clock skew",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockStorage)
			tt.setupMocks(mStore)
			svc, _ := newTestService(t, WithArchive(mStore, 10*time.Minute))
			created, err := svc.Create(ctx)
			require.NoError(t, err)

			res, err := svc.Archive(ctx, created.Document.ID)

			if tt.wantErrMsg != "" {
				assert.EqualError(t, err, tt.wantErrMsg)
				assert.Nil(t, res)
			} else {
				require.NoError(t, err)
				assert.True(t, strings.HasPrefix(res.Key, "exports/"+created.Document.ID+"/"))
				assert.Equal(t, "https://minio/exports/x", res.URL)
				assert.True(t, res.ExpiresAt.After(epoch))
			}
			mStore.AssertExpectations(t)
		})
	}
}

func TestPageService_ArchiveDisabled(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	created, _ := svc.Create(ctx)

	_, err := svc.Archive(ctx, created.Document.ID)
	assert.ErrorIs(t, err, ErrArchiveDisabled)

	_, err = svc.ImportArchive(ctx, "exports/p/x.json")
	assert.ErrorIs(t, err, ErrArchiveDisabled)
}

func TestPageService_ImportArchive(t *testing.T) {
	ctx := context.Background()
	mStore := new(storeMocks.MockStorage)
	body := `{"title":"Archived","blocks":[{"id":"d","type":"divider","size":"full","order":0}]}`
	mStore.On("Get", ctx, "exports/p/1.json").Return(io.NopCloser(strings.NewReader(body)), nil)
	mStore.On("Get", ctx, "exports/p/2.json").Return(nil, storage.ErrObjectNotFound)
	svc, _ := newTestService(t, WithArchive(mStore, time.Minute))

	v, err := svc.ImportArchive(ctx, "exports/p/1.json")
	require.NoError(t, err)
	assert.Equal(t, "Archived", v.Document.Title)
	assert.Equal(t, []string{"d"}, blockIDs(v.Document))

	_, err = svc.ImportArchive(ctx, "exports/p/2.json")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.ImportArchive(ctx, "../etc/passwd")
	assert.ErrorIs(t, err, ErrInvalidArchiveKey)
}

func TestPageService_ListArchives(t *testing.T) {
	ctx := context.Background()
	mStore := new(storeMocks.MockStorage)
	stored := []storage.Archive{{Key: "exports/p/2.json", PageID: "p"}, {Key: "exports/p/1.json", PageID: "p"}}
	mStore.On("List", ctx, "p").Return(stored, nil)
	mStore.On("List", ctx, "none").Return(nil, nil)
	mStore.On("List", ctx, "broken").Return(nil, errors.New("timeout"))
	svc, _ := newTestService(t, WithArchive(mStore, time.Minute))

	as, err := svc.ListArchives(ctx, "p")
	require.NoError(t, err)
	assert.Equal(t, stored, as)

	as, err = svc.ListArchives(ctx, "none")
	require.NoError(t, err)
	assert.NotNil(t, as)
	assert.Empty(t, as)

	_, err = svc.ListArchives(ctx, "broken")
	assert.EqualError(t, err, "list archives: timeout")

	_, err = svc.ListArchives(ctx, "")
	assert.ErrorIs(t, err, ErrIDRequired)

	disabled, _ := newTestService(t)
	_, err = disabled.ListArchives(ctx, "p")
	assert.ErrorIs(t, err, ErrArchiveDisabled)
}

func TestPageService_Metrics(t *testing.T) {
	ctx := context.Background()
	m, err := NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)
	svc, _ := newTestService(t, WithMetrics(m))
	created, _ := svc.Create(ctx)
	id := created.Document.ID

	_, _ = svc.MoveBlock(ctx, id, "intro-heading", editor.Up)
	_, _ = svc.MoveBlock(ctx, id, "intro-heading", editor.Down)
	_, _ = svc.DeleteBlock(ctx, id, "missing")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.edits.WithLabelValues("move", "ignored")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.edits.WithLabelValues("move", "applied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.edits.WithLabelValues("delete", "ignored")))
}
