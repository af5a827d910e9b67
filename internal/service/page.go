package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"pagebuilder/internal/codec"
	"pagebuilder/internal/editor"
	"pagebuilder/internal/layout"
	"pagebuilder/internal/logging"
	"pagebuilder/internal/model"
	"pagebuilder/internal/repository"
	"pagebuilder/internal/storage"
)

var (
	ErrIDRequired        = errors.New("id is required")
	ErrNotFound          = errors.New("page not found")
	ErrInvalidBlockType  = errors.New("invalid block type")
	ErrInvalidDirection  = errors.New("invalid direction")
	ErrInvalidArchiveKey = errors.New("invalid archive key")
	ErrArchiveDisabled   = errors.New("archive storage is not configured")
	ErrCorruptPage       = errors.New("stored page is corrupt")
)

// PageView is the editing state of an open page.
type PageView struct {
	Document        *model.Document `json:"document"`
	EditMode        bool            `json:"editMode"`
	SelectedBlockID string          `json:"selectedBlockId,omitempty"`
	Dirty           bool            `json:"dirty"`
	Changed         bool            `json:"changed"`
}

// PageSummary describes a stored page in listings.
type PageSummary struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Category     string    `json:"category,omitempty"`
	LastModified time.Time `json:"lastModified"`
	BlockCount   int       `json:"blockCount"`
}

// PageListResult is the service-level DTO for paginated pages.
type PageListResult struct {
	Items []PageSummary `json:"data"`
	Total int           `json:"total"`
}

// PlacedBlock is a block with its resolved grid cell, listed in render order.
type PlacedBlock struct {
	Block    *model.Block       `json:"block"`
	Position model.GridPosition `json:"position"`
}

// ArchiveResult points at an exported page in object storage.
type ArchiveResult struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// PageService defines the page editing use cases. Pages are opened into an
// in-memory workspace; edits stay there until Save writes them to the store.
type PageService interface {
	// Create starts a page from the default template and stores it.
	Create(ctx context.Context) (*PageView, error)
	// Open returns the page, loading it from the store when it is not in the workspace.
	Open(ctx context.Context, id string) (*PageView, error)
	// Save writes the page to the store.
	Save(ctx context.Context, id string) (*PageView, error)
	// Close drops the page from the workspace, discarding unsaved edits.
	Close(ctx context.Context, id string) error
	// List returns stored pages using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*PageListResult, error)
	// Delete removes the page from the store and the workspace.
	Delete(ctx context.Context, id string) error

	// Import creates and stores a page from exported JSON.
	Import(ctx context.Context, text []byte) (*PageView, error)
	// ImportArchive imports a page from an archive object.
	ImportArchive(ctx context.Context, key string) (*PageView, error)
	// Export renders the page as JSON.
	Export(ctx context.Context, id string) ([]byte, error)
	// Archive uploads the export to object storage and returns a download link.
	Archive(ctx context.Context, id string) (*ArchiveResult, error)
	// ListArchives returns the archives taken of a page, newest first.
	ListArchives(ctx context.Context, id string) ([]storage.Archive, error)
	// Duplicate copies the page under a fresh id and stores the copy.
	Duplicate(ctx context.Context, id string) (*PageView, error)

	AddBlock(ctx context.Context, id string, kind model.BlockType, afterID string) (*PageView, *model.Block, error)
	UpdateBlock(ctx context.Context, id, blockID string, patch model.BlockPatch) (*PageView, error)
	DeleteBlock(ctx context.Context, id, blockID string) (*PageView, error)
	MoveBlock(ctx context.Context, id, blockID string, dir editor.Direction) (*PageView, error)
	ResizeBlock(ctx context.Context, id, blockID string, span int) (*PageView, error)
	// DropBlock places the block at a grid cell.
	DropBlock(ctx context.Context, id, blockID string, column, row int) (*PageView, error)
	// DropBlockAt places the block at the cell under a pointer position.
	DropBlockAt(ctx context.Context, id, blockID string, x, y, width float64) (*PageView, error)
	UpdateMeta(ctx context.Context, id string, patch model.PageMetaPatch) (*PageView, error)
	ToggleLayoutLock(ctx context.Context, id string) (*PageView, error)
	SetEditMode(ctx context.Context, id string, on bool) (*PageView, error)
	Select(ctx context.Context, id, blockID string) (*PageView, error)

	// Layout returns the blocks in render order with their grid cells.
	Layout(ctx context.Context, id string) ([]PlacedBlock, error)
}

type entry struct {
	mu      sync.Mutex
	session *editor.Session
	saved   time.Time
}

func (e *entry) view(changed bool) *PageView {
	doc := e.session.Document()
	return &PageView{
		Document:        doc,
		EditMode:        e.session.EditMode(),
		SelectedBlockID: e.session.Selected(),
		Dirty:           !doc.LastModified.Equal(e.saved),
		Changed:         changed,
	}
}

// Option customises the page service.
type Option func(*pageService)

// WithClock sets the time source for timestamps and archive expiry.
func WithClock(now func() time.Time) Option {
	return func(s *pageService) { s.now = now }
}

// WithIDGenerator sets the generator for page and block ids.
func WithIDGenerator(newID func() string) Option {
	return func(s *pageService) { s.newID = newID }
}

// WithArchive enables Archive, ImportArchive and ListArchives on store.
func WithArchive(store storage.Storage, ttl time.Duration) Option {
	return func(s *pageService) {
		s.store = store
		s.archiveTTL = ttl
	}
}

// WithMetrics records mutation outcomes on m.
func WithMetrics(m *Metrics) Option {
	return func(s *pageService) { s.metrics = m }
}

// pageService is a concrete implementation of PageService.
type pageService struct {
	repo       repository.PageRepository
	store      storage.Storage
	archiveTTL time.Duration
	metrics    *Metrics
	tracer     trace.Tracer

	now   func() time.Time
	newID func() string
	codec *codec.Codec

	mu    sync.Mutex
	pages map[string]*entry
}

// NewPageService constructs a new PageService backed by repo.
func NewPageService(repo repository.PageRepository, opts ...Option) PageService {
	s := &pageService{
		repo:       repo,
		archiveTTL: 15 * time.Minute,
		tracer:     otel.Tracer("pagebuilder/service"),
		now:        func() time.Time { return time.Now().UTC() },
		newID:      model.NewID,
		pages:      make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.codec = &codec.Codec{Now: s.now, NewID: s.newID}
	return s
}

func (s *pageService) newSession(doc *model.Document) *editor.Session {
	return editor.NewSession(doc, editor.WithClock(s.now), editor.WithIDGenerator(s.newID))
}

// entry returns the workspace entry for id, loading it from the store on a miss.
func (s *pageService) entry(ctx context.Context, id string) (*entry, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	s.mu.Lock()
	e, ok := s.pages[id]
	s.mu.Unlock()
	if ok {
		return e, nil
	}

	doc, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.pages[id]; ok {
		return e, nil
	}
	e = &entry{session: s.newSession(doc), saved: doc.LastModified}
	s.pages[id] = e
	return e, nil
}

func (s *pageService) load(ctx context.Context, id string) (*model.Document, error) {
	ctx, span := s.tracer.Start(ctx, "page.load", trace.WithAttributes(attribute.String("page.id", id)))
	defer span.End()

	data, err := s.repo.Load(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		span.RecordError(err)
		return nil, fmt.Errorf("load page: %w", err)
	}
	doc, err := s.codec.Decode(data)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("%w: page %s: %v", ErrCorruptPage, id, err)
	}
	return doc, nil
}

func (s *pageService) persist(ctx context.Context, doc *model.Document) error {
	ctx, span := s.tracer.Start(ctx, "page.save", trace.WithAttributes(
		attribute.String("page.id", doc.ID),
		attribute.Int("page.blocks", len(doc.Blocks)),
	))
	defer span.End()

	data, err := s.codec.Export(doc)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if err := s.repo.Save(ctx, doc.ID, data); err != nil {
		span.RecordError(err)
		return fmt.Errorf("save page: %w", err)
	}
	return nil
}

// adopt stores doc and opens it in the workspace.
func (s *pageService) adopt(ctx context.Context, doc *model.Document) (*PageView, error) {
	if err := s.persist(ctx, doc); err != nil {
		return nil, err
	}
	e := &entry{session: s.newSession(doc), saved: doc.LastModified}
	s.mu.Lock()
	s.pages[doc.ID] = e
	s.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.view(false), nil
}

func (s *pageService) Create(ctx context.Context) (*PageView, error) {
	doc := model.DefaultTemplate(s.now())
	doc.ID = s.newID()
	v, err := s.adopt(ctx, doc)
	if err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info("page created", "page_id", doc.ID)
	return v, nil
}

func (s *pageService) Open(ctx context.Context, id string) (*PageView, error) {
	e, err := s.entry(ctx, id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.view(false), nil
}

func (s *pageService) Save(ctx context.Context, id string) (*PageView, error) {
	e, err := s.entry(ctx, id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	doc := e.session.Document()
	if err := s.persist(ctx, doc); err != nil {
		return nil, err
	}
	e.saved = doc.LastModified
	logging.FromContext(ctx).Info("page saved", "page_id", id, "blocks", len(doc.Blocks))
	return e.view(false), nil
}

func (s *pageService) Close(_ context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pages[id]; !ok {
		return ErrNotFound
	}
	delete(s.pages, id)
	return nil
}

// List returns paginated pages. Summaries reflect unsaved workspace edits.
func (s *pageService) List(ctx context.Context, limit, offset int) (*PageListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	items := make([]PageSummary, 0, len(res.Items))
	for _, id := range res.Items {
		doc, err := s.snapshot(ctx, id)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		items = append(items, PageSummary{
			ID:           doc.ID,
			Title:        doc.Title,
			Category:     doc.Category,
			LastModified: doc.LastModified,
			BlockCount:   len(doc.Blocks),
		})
	}
	return &PageListResult{Items: items, Total: res.Total}, nil
}

// snapshot reads a page without adding it to the workspace.
func (s *pageService) snapshot(ctx context.Context, id string) (*model.Document, error) {
	s.mu.Lock()
	e, ok := s.pages[id]
	s.mu.Unlock()
	if ok {
		e.mu.Lock()
		defer e.mu.Unlock()
		return e.session.Document(), nil
	}
	return s.load(ctx, id)
}

func (s *pageService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	s.mu.Lock()
	_, open := s.pages[id]
	s.mu.Unlock()

	if !open {
		if _, err := s.repo.Load(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete page: %w", err)
	}

	s.mu.Lock()
	delete(s.pages, id)
	s.mu.Unlock()
	logging.FromContext(ctx).Info("page deleted", "page_id", id)
	return nil
}

func (s *pageService) Import(ctx context.Context, text []byte) (*PageView, error) {
	doc, err := s.codec.Import(text)
	if err != nil {
		logging.FromContext(ctx).Warn("import rejected", "err", err)
		return nil, err
	}
	return s.adopt(ctx, doc)
}

func (s *pageService) ImportArchive(ctx context.Context, key string) (*PageView, error) {
	if s.store == nil {
		return nil, ErrArchiveDisabled
	}
	if !storage.IsArchiveKey(key) {
		return nil, ErrInvalidArchiveKey
	}
	rc, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read archive: %w", err)
	}
	defer rc.Close()

	text, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read archive: %w", err)
	}
	return s.Import(ctx, text)
}

func (s *pageService) Export(ctx context.Context, id string) ([]byte, error) {
	doc, err := s.document(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.codec.Export(doc)
}

// Archive uploads the export, then presigns it; the upload is removed if
// presigning fails.
func (s *pageService) Archive(ctx context.Context, id string) (*ArchiveResult, error) {
	if s.store == nil {
		return nil, ErrArchiveDisabled
	}
	doc, err := s.document(ctx, id)
	if err != nil {
		return nil, err
	}
	data, err := s.codec.Export(doc)
	if err != nil {
		return nil, err
	}

	now := s.now()
	key := storage.ArchiveKey(id, now)
	if _, err := s.store.Put(ctx, key, bytes.NewReader(data), storage.UploadOptions{
		Size:        int64(len(data)),
		ContentType: "application/json",
		PageTitle:   doc.Title,
	}); err != nil {
		return nil, fmt.Errorf("upload archive: %w", err)
	}

	url, err := s.store.PresignGet(ctx, key, s.archiveTTL)
	if err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("presign failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("presign archive: %w", err)
	}
	logging.FromContext(ctx).Info("page archived", "page_id", id, "key", key)
	return &ArchiveResult{Key: key, URL: url, ExpiresAt: now.Add(s.archiveTTL)}, nil
}

// ListArchives does not require the page to still exist; archives outlive it.
func (s *pageService) ListArchives(ctx context.Context, id string) ([]storage.Archive, error) {
	if s.store == nil {
		return nil, ErrArchiveDisabled
	}
	if id == "" {
		return nil, ErrIDRequired
	}
	as, err := s.store.List(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list archives: %w", err)
	}
	if as == nil {
		as = []storage.Archive{}
	}
	return as, nil
}

func (s *pageService) Duplicate(ctx context.Context, id string) (*PageView, error) {
	doc, err := s.document(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.adopt(ctx, s.codec.Duplicate(doc))
}

func (s *pageService) document(ctx context.Context, id string) (*model.Document, error) {
	e, err := s.entry(ctx, id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.Document(), nil
}

// edit runs fn against the page's session and records the outcome.
func (s *pageService) edit(ctx context.Context, id, op string, fn func(*editor.Session) bool) (*PageView, error) {
	e, err := s.entry(ctx, id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	changed := fn(e.session)
	s.metrics.observe(op, changed)
	if !changed {
		logging.FromContext(ctx).Debug("edit ignored", "page_id", id, "op", op)
	}
	return e.view(changed), nil
}

func (s *pageService) AddBlock(ctx context.Context, id string, kind model.BlockType, afterID string) (*PageView, *model.Block, error) {
	if !kind.Valid() {
		return nil, nil, ErrInvalidBlockType
	}
	var added *model.Block
	v, err := s.edit(ctx, id, "add", func(sess *editor.Session) bool {
		b, ok := sess.AddBlock(kind, afterID)
		added = b
		return ok
	})
	if err != nil {
		return nil, nil, err
	}
	return v, added, nil
}

func (s *pageService) UpdateBlock(ctx context.Context, id, blockID string, patch model.BlockPatch) (*PageView, error) {
	return s.edit(ctx, id, "update", func(sess *editor.Session) bool {
		return sess.UpdateBlock(blockID, patch)
	})
}

func (s *pageService) DeleteBlock(ctx context.Context, id, blockID string) (*PageView, error) {
	return s.edit(ctx, id, "delete", func(sess *editor.Session) bool {
		return sess.DeleteBlock(blockID)
	})
}

func (s *pageService) MoveBlock(ctx context.Context, id, blockID string, dir editor.Direction) (*PageView, error) {
	if !dir.Valid() {
		return nil, ErrInvalidDirection
	}
	return s.edit(ctx, id, "move", func(sess *editor.Session) bool {
		return sess.MoveBlock(blockID, dir)
	})
}

func (s *pageService) ResizeBlock(ctx context.Context, id, blockID string, span int) (*PageView, error) {
	return s.edit(ctx, id, "resize", func(sess *editor.Session) bool {
		return sess.ResizeGrid(blockID, span)
	})
}

func (s *pageService) DropBlock(ctx context.Context, id, blockID string, column, row int) (*PageView, error) {
	return s.edit(ctx, id, "drop", func(sess *editor.Session) bool {
		return sess.DropAt(blockID, column, row)
	})
}

func (s *pageService) DropBlockAt(ctx context.Context, id, blockID string, x, y, width float64) (*PageView, error) {
	column, row := layout.PointerCell(x, y, width)
	return s.DropBlock(ctx, id, blockID, column, row)
}

func (s *pageService) UpdateMeta(ctx context.Context, id string, patch model.PageMetaPatch) (*PageView, error) {
	return s.edit(ctx, id, "meta", func(sess *editor.Session) bool {
		return sess.UpdatePageMeta(patch)
	})
}

func (s *pageService) ToggleLayoutLock(ctx context.Context, id string) (*PageView, error) {
	return s.edit(ctx, id, "lock", func(sess *editor.Session) bool {
		sess.ToggleLayoutLock()
		return true
	})
}

func (s *pageService) SetEditMode(ctx context.Context, id string, on bool) (*PageView, error) {
	e, err := s.entry(ctx, id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	changed := e.session.EditMode() != on
	e.session.SetEditMode(on)
	return e.view(changed), nil
}

func (s *pageService) Select(ctx context.Context, id, blockID string) (*PageView, error) {
	e, err := s.entry(ctx, id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	before := e.session.Selected()
	ok := e.session.Select(blockID)
	return e.view(ok && before != e.session.Selected()), nil
}

func (s *pageService) Layout(ctx context.Context, id string) ([]PlacedBlock, error) {
	e, err := s.entry(ctx, id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	blocks := e.session.SortedBlocks()
	positions := layout.Calculate(blocks)
	ordered := layout.RenderOrder(blocks, positions)
	out := make([]PlacedBlock, len(ordered))
	for i, b := range ordered {
		out[i] = PlacedBlock{Block: b, Position: positions[b.ID]}
	}
	return out, nil
}
