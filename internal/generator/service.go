package generator

import (
	"context"
	"fmt"

	"github.com/osse101/ItemForge_Go/internal/config"
	"github.com/osse101/ItemForge_Go/internal/domain"
	"github.com/osse101/ItemForge_Go/internal/logger"
	"github.com/osse101/ItemForge_Go/internal/metrics"
)

// Options control one generation run.
type Options struct {
	// PerCategory is the number of items generated for each category.
	PerCategory int
	// Seed seeds the session's random stream exactly once.
	Seed int64
	// TexturesRoot is the prefix of every generated image path.
	TexturesRoot string
	// Tuning carries the per-category gold value bands.
	Tuning config.Tuning
}

// Service generates complete, validated item catalogs.
type Service interface {
	Generate(ctx context.Context, opts Options) (*domain.Document, error)
}

type service struct{}

// NewService creates a new generator service
func NewService() Service {
	return &service{}
}

// Generate builds the full catalog: a fresh session, each category builder
// invoked PerCategory times in fixed order, then the published rarity tables
// and a document-wide id uniqueness check. Identical seed and count produce
// a byte-identical serialized document. Any builder error aborts the run;
// no partial document is returned.
func (g *service) Generate(ctx context.Context, opts Options) (*domain.Document, error) {
	log := logger.FromContext(ctx)
	session := NewSession(opts.Seed)

	doc := &domain.Document{Version: domain.DocumentVersion}
	cats := &doc.Categories

	cats.Weapons = make([]domain.WeaponItem, 0, opts.PerCategory)
	for i := 0; i < opts.PerCategory; i++ {
		item, err := session.buildWeapon(opts)
		if err != nil {
			return nil, fmt.Errorf("weapon %d: %w", i, err)
		}
		cats.Weapons = append(cats.Weapons, item)
	}
	metrics.ItemsGenerated.WithLabelValues(domain.CategoryWeapons).Add(float64(opts.PerCategory))

	cats.Armor = make([]domain.ArmorItem, 0, opts.PerCategory)
	for i := 0; i < opts.PerCategory; i++ {
		item, err := session.buildArmor(opts)
		if err != nil {
			return nil, fmt.Errorf("armor %d: %w", i, err)
		}
		cats.Armor = append(cats.Armor, item)
	}
	metrics.ItemsGenerated.WithLabelValues(domain.CategoryArmor).Add(float64(opts.PerCategory))

	cats.Accessories = make([]domain.AccessoryItem, 0, opts.PerCategory)
	for i := 0; i < opts.PerCategory; i++ {
		item, err := session.buildAccessory(opts)
		if err != nil {
			return nil, fmt.Errorf("accessory %d: %w", i, err)
		}
		cats.Accessories = append(cats.Accessories, item)
	}
	metrics.ItemsGenerated.WithLabelValues(domain.CategoryAccessories).Add(float64(opts.PerCategory))

	cats.Consumables = make([]domain.ConsumableItem, 0, opts.PerCategory)
	for i := 0; i < opts.PerCategory; i++ {
		item, err := session.buildConsumable(opts)
		if err != nil {
			return nil, fmt.Errorf("consumable %d: %w", i, err)
		}
		cats.Consumables = append(cats.Consumables, item)
	}
	metrics.ItemsGenerated.WithLabelValues(domain.CategoryConsumables).Add(float64(opts.PerCategory))

	cats.Materials = make([]domain.MaterialItem, 0, opts.PerCategory)
	for i := 0; i < opts.PerCategory; i++ {
		item, err := session.buildMaterial(opts)
		if err != nil {
			return nil, fmt.Errorf("material %d: %w", i, err)
		}
		cats.Materials = append(cats.Materials, item)
	}
	metrics.ItemsGenerated.WithLabelValues(domain.CategoryMaterials).Add(float64(opts.PerCategory))

	cats.RarityMultipliers = domain.RarityMultipliers()
	cats.RarityColors = domain.RarityColors()

	if err := checkUniqueIDs(doc); err != nil {
		return nil, err
	}

	log.Info("catalog generated",
		"per_category", opts.PerCategory,
		"total", opts.PerCategory*domain.CategoryCount,
		"seed", opts.Seed)

	return doc, nil
}

// checkUniqueIDs asserts the document-wide id uniqueness invariant. The
// name dedup already resolves collisions before id derivation, so a hit
// here means two distinct names slugified identically.
func checkUniqueIDs(doc *domain.Document) error {
	seen := make(map[string]struct{})
	record := func(id string) error {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateID, id)
		}
		seen[id] = struct{}{}
		return nil
	}

	for _, item := range doc.Categories.Weapons {
		if err := record(item.ID); err != nil {
			return err
		}
	}
	for _, item := range doc.Categories.Armor {
		if err := record(item.ID); err != nil {
			return err
		}
	}
	for _, item := range doc.Categories.Accessories {
		if err := record(item.ID); err != nil {
			return err
		}
	}
	for _, item := range doc.Categories.Consumables {
		if err := record(item.ID); err != nil {
			return err
		}
	}
	for _, item := range doc.Categories.Materials {
		if err := record(item.ID); err != nil {
			return err
		}
	}
	return nil
}
