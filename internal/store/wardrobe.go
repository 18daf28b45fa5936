package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/actuallystonmai/stylesense-service/internal/domain"
)

type Wardrobe struct {
	ns *Namespace
}

func (n *Namespace) Wardrobe() *Wardrobe {
	return &Wardrobe{ns: n}
}

func (w *Wardrobe) List(ctx context.Context) ([]domain.WardrobeItem, error) {
	items := []domain.WardrobeItem{}
	if _, err := w.ns.getJSON(ctx, keyWardrobe, &items); err != nil {
		return nil, fmt.Errorf("load wardrobe: %w", err)
	}
	return items, nil
}

func (w *Wardrobe) ByCategory(ctx context.Context, category string) ([]domain.WardrobeItem, error) {
	items, err := w.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.WardrobeItem, 0, len(items))
	for _, i := range items {
		if i.Category == category {
			out = append(out, i)
		}
	}
	return out, nil
}

// Add stores item under a fresh id. Name and color are required; an empty
// category defaults to Tops.
func (w *Wardrobe) Add(ctx context.Context, item domain.WardrobeItem) (domain.WardrobeItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	item.Color = strings.TrimSpace(item.Color)
	if item.Name == "" || item.Color == "" {
		return domain.WardrobeItem{}, domain.NewValidationError("Item name and color are required")
	}
	if item.Category == "" {
		item.Category = domain.Categories[0]
	}
	if !domain.ValidCategory(item.Category) {
		return domain.WardrobeItem{}, domain.NewValidationError("Unknown category " + item.Category)
	}

	items, err := w.List(ctx)
	if err != nil {
		return domain.WardrobeItem{}, err
	}
	item.ID = uuid.NewString()
	items = append(items, item)
	if err := w.ns.putJSON(ctx, keyWardrobe, items); err != nil {
		return domain.WardrobeItem{}, fmt.Errorf("save wardrobe: %w", err)
	}
	return item, nil
}

func (w *Wardrobe) Remove(ctx context.Context, id string) error {
	items, err := w.List(ctx)
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, i := range items {
		if i.ID != id {
			kept = append(kept, i)
		}
	}
	if len(kept) == len(items) {
		return domain.ErrNotFound
	}
	if err := w.ns.putJSON(ctx, keyWardrobe, kept); err != nil {
		return fmt.Errorf("save wardrobe: %w", err)
	}
	return nil
}
