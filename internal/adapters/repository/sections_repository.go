package repository

import (
	"github.com/excelenergy/cms/internal/domain/entities"
	"github.com/excelenergy/cms/internal/infrastructure/storage"
)

// SectionsRepository handles the list-replace collections: the admin UI
// edits the whole ordered array client-side and saves it outright.
// Order values are not validated; duplicates and gaps are stored as
// sent.
type SectionsRepository struct {
	store *storage.Store
}

// NewSectionsRepository creates a new sections repository
func NewSectionsRepository(store *storage.Store) *SectionsRepository {
	return &SectionsRepository{store: store}
}

func (r *SectionsRepository) GetStats() []entities.Stat {
	return storage.Read(r.store, "stats.json", entities.DefaultStats())
}

func (r *SectionsRepository) SaveStats(stats []entities.Stat) error {
	return storage.Write(r.store, "stats.json", stats)
}

func (r *SectionsRepository) GetWhyChooseUs() []entities.WhyChooseUs {
	return storage.Read(r.store, "whyChooseUs.json", entities.DefaultWhyChooseUs())
}

func (r *SectionsRepository) SaveWhyChooseUs(items []entities.WhyChooseUs) error {
	return storage.Write(r.store, "whyChooseUs.json", items)
}

func (r *SectionsRepository) GetSolutions() []entities.Solution {
	return storage.Read(r.store, "solutions.json", entities.DefaultSolutions())
}

func (r *SectionsRepository) SaveSolutions(solutions []entities.Solution) error {
	return storage.Write(r.store, "solutions.json", solutions)
}
