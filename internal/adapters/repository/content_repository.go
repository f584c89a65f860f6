package repository

import (
	"github.com/excelenergy/cms/internal/domain/entities"
	"github.com/excelenergy/cms/internal/infrastructure/storage"
)

// ContentRepository handles the singleton page/setting documents. Each
// is read with a hard-coded default and overwritten wholesale on save.
type ContentRepository struct {
	store *storage.Store
}

// NewContentRepository creates a new content repository
func NewContentRepository(store *storage.Store) *ContentRepository {
	return &ContentRepository{store: store}
}

func (r *ContentRepository) GetHome() entities.HomeContent {
	return storage.Read(r.store, "home.json", entities.DefaultHomeContent())
}

func (r *ContentRepository) SaveHome(content entities.HomeContent) error {
	return storage.Write(r.store, "home.json", content)
}

func (r *ContentRepository) GetAbout() entities.AboutContent {
	return storage.Read(r.store, "about.json", entities.DefaultAboutContent())
}

func (r *ContentRepository) SaveAbout(content entities.AboutContent) error {
	return storage.Write(r.store, "about.json", content)
}

func (r *ContentRepository) GetSocialMedia() entities.SocialMedia {
	return storage.Read(r.store, "socialMedia.json", entities.DefaultSocialMedia())
}

func (r *ContentRepository) SaveSocialMedia(social entities.SocialMedia) error {
	return storage.Write(r.store, "socialMedia.json", social)
}

func (r *ContentRepository) GetSEOSettings() entities.SEOSettings {
	return storage.Read(r.store, "seo.json", entities.DefaultSEOSettings())
}

func (r *ContentRepository) SaveSEOSettings(seo entities.SEOSettings) error {
	return storage.Write(r.store, "seo.json", seo)
}

// GetSiteSettings defaults the nested social and SEO blocks from their
// own documents, so an unsaved siteSettings.json tracks edits made on
// those screens.
func (r *ContentRepository) GetSiteSettings() entities.SiteSettings {
	def := entities.DefaultSiteSettings(r.GetSocialMedia(), r.GetSEOSettings())
	return storage.Read(r.store, "siteSettings.json", def)
}

func (r *ContentRepository) SaveSiteSettings(settings entities.SiteSettings) error {
	return storage.Write(r.store, "siteSettings.json", settings)
}
