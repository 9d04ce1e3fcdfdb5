// Package downloads manages the registry of content saved for offline use.
package downloads

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/educhain-backend/internal/clock"
	"github.com/goodnatureofminers/educhain-backend/internal/model"
	"github.com/goodnatureofminers/educhain-backend/internal/storage"
)

var (
	// ErrInvalidItem is returned for items missing an id or title, or with an unknown type.
	ErrInvalidItem = errors.New("invalid downloaded item")
	// ErrNotFound is returned when no item has the requested id.
	ErrNotFound = errors.New("downloaded item not found")
)

// Registry reads and writes the downloaded-items key. Writes are serialized
// so concurrent read-modify-write cycles do not lose entries.
type Registry struct {
	logger  *zap.Logger
	store   storage.Store
	journal Journal
	now     clock.NowFunc

	mu sync.Mutex
}

// NewRegistry builds a Registry on top of store.
func NewRegistry(store storage.Store, journal Journal, logger *zap.Logger) *Registry {
	if journal == nil {
		journal = nopJournal{}
	}
	return &Registry{
		logger:  logger.Named("downloads"),
		store:   store,
		journal: journal,
		now:     clock.NowUTC,
	}
}

// List returns the items in stored order. Unreadable data reads as empty.
func (r *Registry) List(ctx context.Context) ([]model.DownloadedItem, error) {
	items, err := r.load(ctx)
	if errors.Is(err, storage.ErrCorruptValue) {
		r.logger.Warn("downloaded items unreadable, reporting none", zap.Error(err))
		return []model.DownloadedItem{}, nil
	}
	return items, err
}

// Get returns the item with id.
func (r *Registry) Get(ctx context.Context, id string) (model.DownloadedItem, error) {
	items, err := r.List(ctx)
	if err != nil {
		return model.DownloadedItem{}, err
	}
	for _, item := range items {
		if item.ID == id {
			return item, nil
		}
	}
	return model.DownloadedItem{}, ErrNotFound
}

// Add stores item, replacing any entry with the same id. DownloadedAt
// defaults to now. Unreadable existing data is left untouched and reported.
func (r *Registry) Add(ctx context.Context, item model.DownloadedItem) (model.DownloadedItem, error) {
	item.ID = strings.TrimSpace(item.ID)
	item.Title = strings.TrimSpace(item.Title)
	if item.ID == "" || item.Title == "" || !item.Type.Valid() {
		return model.DownloadedItem{}, ErrInvalidItem
	}
	if item.DownloadedAt.IsZero() {
		item.DownloadedAt = r.now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load(ctx)
	if err != nil {
		return model.DownloadedItem{}, err
	}

	replaced := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}

	if err := storage.DownloadedItemsKey.Set(ctx, r.store, items); err != nil {
		return model.DownloadedItem{}, err
	}

	r.journal.Record(model.Event{
		Kind:       model.EventDownloadAdd,
		Subject:    item.ID,
		OccurredAt: r.now(),
		Status:     model.EventSuccess,
		Detail:     string(item.Type),
	})
	return item, nil
}

// Remove deletes the item with id.
func (r *Registry) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load(ctx)
	if err != nil {
		return err
	}

	kept := items[:0]
	found := false
	for _, item := range items {
		if item.ID == id {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return ErrNotFound
	}

	if err := storage.DownloadedItemsKey.Set(ctx, r.store, kept); err != nil {
		return err
	}

	r.journal.Record(model.Event{
		Kind:       model.EventDownloadRemove,
		Subject:    id,
		OccurredAt: r.now(),
		Status:     model.EventSuccess,
	})
	return nil
}

// Seed stores the sample catalogue when the registry holds nothing.
func (r *Registry) Seed(ctx context.Context) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	if len(items) > 0 {
		return false, nil
	}

	now := r.now()
	samples := sampleItems()
	for i := range samples {
		samples[i].DownloadedAt = now
	}
	if err := storage.DownloadedItemsKey.Set(ctx, r.store, samples); err != nil {
		return false, fmt.Errorf("seed downloads: %w", err)
	}
	r.logger.Info("seeded sample downloads", zap.Int("items", len(samples)))
	return true, nil
}

// SortByRecent orders items newest first.
func SortByRecent(items []model.DownloadedItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DownloadedAt.After(items[j].DownloadedAt)
	})
}

func (r *Registry) load(ctx context.Context) ([]model.DownloadedItem, error) {
	items, _, err := storage.DownloadedItemsKey.Get(ctx, r.store)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.DownloadedItem{}
	}
	return items, nil
}

func sampleItems() []model.DownloadedItem {
	return []model.DownloadedItem{
		{ID: "course-1", Title: "Introduction to Blockchain", Type: model.ContentCourse, Size: "4.2 MB"},
		{ID: "article-1", Title: "Understanding Smart Contracts", Type: model.ContentArticle, Size: "1.5 MB"},
		{ID: "guide-1", Title: "Setting Up a StarkNet Wallet", Type: model.ContentGuide, Size: "2.8 MB"},
	}
}

type nopJournal struct{}

func (nopJournal) Record(model.Event) {}
