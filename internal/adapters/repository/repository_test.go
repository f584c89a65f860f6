package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/excelenergy/cms/internal/domain/entities"
	"github.com/excelenergy/cms/internal/infrastructure/logger"
	"github.com/excelenergy/cms/internal/infrastructure/storage"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	return storage.New(t.TempDir(), logger.NewNop())
}

func TestDefaultsOnFreshDataDir(t *testing.T) {
	store := newTestStore(t)
	content := NewContentRepository(store)
	sections := NewSectionsRepository(store)
	catalog := NewCatalogRepository(store)
	leads := NewLeadsRepository(store)

	assert.Equal(t, entities.DefaultHomeContent(), content.GetHome())
	assert.Equal(t, entities.DefaultAboutContent(), content.GetAbout())
	assert.Equal(t, entities.DefaultSEOSettings(), content.GetSEOSettings())
	assert.Equal(t, entities.DefaultStats(), sections.GetStats())
	assert.Equal(t, entities.DefaultWhyChooseUs(), sections.GetWhyChooseUs())
	assert.Equal(t, entities.DefaultSolutions(), sections.GetSolutions())
	assert.Empty(t, catalog.GetServices())
	assert.Empty(t, catalog.GetTeamMembers())
	assert.Empty(t, leads.GetMessages())
	assert.Empty(t, leads.GetClients())

	// Reads must not create any file.
	entries, err := os.ReadDir(store.Dir())
	if err == nil {
		assert.Empty(t, entries)
	} else {
		assert.True(t, os.IsNotExist(err))
	}
}

func TestSingletonRoundTrip(t *testing.T) {
	content := NewContentRepository(newTestStore(t))

	home := entities.DefaultHomeContent()
	home.Hero.Title = "New headline"
	require.NoError(t, content.SaveHome(home))
	assert.Equal(t, home, content.GetHome())

	about := entities.DefaultAboutContent()
	about.Mission = "Updated mission"
	require.NoError(t, content.SaveAbout(about))
	assert.Equal(t, about, content.GetAbout())
}

func TestSiteSettingsDefaultTracksSocialAndSEO(t *testing.T) {
	content := NewContentRepository(newTestStore(t))

	social := entities.SocialMedia{Facebook: "https://fb.example/excel"}
	require.NoError(t, content.SaveSocialMedia(social))

	settings := content.GetSiteSettings()
	assert.Equal(t, social, settings.SocialMedia)
	assert.Equal(t, entities.DefaultSEOSettings(), settings.SEO)
}

func TestAddServiceAssignsIDAndPersists(t *testing.T) {
	catalog := NewCatalogRepository(newTestStore(t))

	created, err := catalog.AddService(entities.Service{Title: "O&M"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	services := catalog.GetServices()
	require.Len(t, services, 1)
	assert.Equal(t, created, services[0])
}

func TestAddServiceKeepsCallerSuppliedID(t *testing.T) {
	catalog := NewCatalogRepository(newTestStore(t))

	created, err := catalog.AddService(entities.Service{ID: "commercial", Title: "Commercial"})
	require.NoError(t, err)
	assert.Equal(t, "commercial", created.ID)
}

func TestUpdateMergesTopLevelAndReplacesNested(t *testing.T) {
	catalog := NewCatalogRepository(newTestStore(t))

	created, err := catalog.AddService(entities.Service{
		Title:     "Commercial",
		ShortDesc: "original short",
		Features:  []string{"a", "b"},
		Stats: []entities.ServiceStat{
			{Label: "ROI", Value: "5-7 years"},
			{Label: "Savings", Value: "90%"},
		},
	})
	require.NoError(t, err)

	ok, err := catalog.UpdateService(created.ID, map[string]interface{}{
		"title": "Commercial Solar",
		"stats": []map[string]interface{}{{"label": "ROI", "value": "4 years"}},
	})
	require.NoError(t, err)
	require.True(t, ok)

	got, found := catalog.GetService(created.ID)
	require.True(t, found)
	// Named fields change; siblings stay.
	assert.Equal(t, "Commercial Solar", got.Title)
	assert.Equal(t, "original short", got.ShortDesc)
	assert.Equal(t, []string{"a", "b"}, got.Features)
	// The nested collection is replaced wholesale, not merged.
	assert.Equal(t, []entities.ServiceStat{{Label: "ROI", Value: "4 years"}}, got.Stats)
}

func TestUpdateMissingIDReturnsFalse(t *testing.T) {
	catalog := NewCatalogRepository(newTestStore(t))

	ok, err := catalog.UpdateService("nope", map[string]interface{}{"title": "x"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	catalog := NewCatalogRepository(store)

	created, err := catalog.AddTeamMember(entities.TeamMember{Name: "Asha", Designation: "CTO", Department: "Engineering", Level: "director", Email: "asha@excelenergy.in", Bio: "b", Experience: "12y"})
	require.NoError(t, err)

	removed, err := catalog.DeleteTeamMember(created.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	before := catalog.GetTeamMembers()
	removed, err = catalog.DeleteTeamMember(created.ID)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, before, catalog.GetTeamMembers())
}

func TestListReplaceStoresArrayExactly(t *testing.T) {
	sections := NewSectionsRepository(newTestStore(t))

	// Duplicate and out-of-order order values are kept verbatim.
	stats := []entities.Stat{
		{ID: "9", Icon: "Zap", Value: "1", Label: "last", Order: 3},
		{ID: "7", Icon: "Sun", Value: "2", Label: "first", Order: 3},
		{ID: "8", Icon: "Award", Value: "3", Label: "middle", Order: 1},
	}
	require.NoError(t, sections.SaveStats(stats))
	assert.Equal(t, stats, sections.GetStats())
}

func TestMessagesPrependAndMarkRead(t *testing.T) {
	leads := NewLeadsRepository(newTestStore(t))

	first, err := leads.AddMessage(entities.Message{Name: "A", Email: "a@x.in", Subject: "s1", Message: "m1", Type: "message"})
	require.NoError(t, err)
	second, err := leads.AddMessage(entities.Message{Name: "B", Email: "b@x.in", Subject: "s2", Message: "m2", Type: "consultation"})
	require.NoError(t, err)

	messages := leads.GetMessages()
	require.Len(t, messages, 2)
	assert.Equal(t, second.ID, messages[0].ID)
	assert.False(t, messages[0].Read)

	ok, err := leads.MarkMessageRead(first.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	messages = leads.GetMessages()
	assert.True(t, messages[1].Read)
	assert.False(t, messages[0].Read)
}

func TestClientLifecycle(t *testing.T) {
	leads := NewLeadsRepository(newTestStore(t))

	rating := 5
	created, err := leads.AddClient(entities.Client{Name: "Acme", Email: "a@acme.com", Rating: &rating})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.Timestamp)

	clients := leads.GetClients()
	require.Len(t, clients, 1)
	assert.Equal(t, "Acme", clients[0].Name)

	ok, err := leads.UpdateClient(created.ID, map[string]interface{}{"feedback": "great"})
	require.NoError(t, err)
	assert.True(t, ok)
	clients = leads.GetClients()
	assert.Equal(t, "great", clients[0].Feedback)
	require.NotNil(t, clients[0].Rating)
	assert.Equal(t, 5, *clients[0].Rating)

	removed, err := leads.DeleteClient(created.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = leads.DeleteClient(created.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestBlogPostAssignsPublishedAt(t *testing.T) {
	blog := NewBlogRepository(newTestStore(t))

	created, err := blog.AddBlogPost(entities.BlogPost{Title: "Solar 101", Content: "c", Excerpt: "e", Author: "admin", Published: true, Tags: []string{"solar"}})
	require.NoError(t, err)
	assert.NotEmpty(t, created.PublishedAt)

	ok, err := blog.UpdateBlogPost(created.ID, map[string]interface{}{"published": false})
	require.NoError(t, err)
	assert.True(t, ok)

	got, found := blog.GetBlogPost(created.ID)
	require.True(t, found)
	assert.False(t, got.Published)
	assert.Equal(t, "Solar 101", got.Title)
}

func TestIncrementVisitor(t *testing.T) {
	analytics := NewAnalyticsRepository(newTestStore(t))

	require.NoError(t, analytics.IncrementVisitor())
	require.NoError(t, analytics.IncrementVisitor())

	got := analytics.Get()
	assert.Equal(t, 2, got.TotalVisitors)
	require.Len(t, got.DailyVisitors, 1)
	assert.Equal(t, Today(), got.DailyVisitors[0].Date)
	assert.Equal(t, 2, got.DailyVisitors[0].Count)
}

func TestTrackPageView(t *testing.T) {
	analytics := NewAnalyticsRepository(newTestStore(t))

	require.NoError(t, analytics.TrackPageView("home"))
	require.NoError(t, analytics.TrackPageView("home"))
	require.NoError(t, analytics.TrackPageView("services"))

	got := analytics.Get()
	require.Len(t, got.PageViews, 2)
	assert.Equal(t, entities.PageView{Page: "home", Views: 2}, got.PageViews[0])
	assert.Equal(t, entities.PageView{Page: "services", Views: 1}, got.PageViews[1])
	// Visitor counter is untouched by page views.
	assert.Zero(t, got.TotalVisitors)
}

func TestAnalyticsSurvivesCorruptFile(t *testing.T) {
	store := newTestStore(t)
	analytics := NewAnalyticsRepository(store)

	require.NoError(t, os.MkdirAll(store.Dir(), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(store.Dir(), "analytics.json"), []byte("{broken"), 0o644))

	// Corruption degrades to the default, silently.
	got := analytics.Get()
	assert.Zero(t, got.TotalVisitors)

	require.NoError(t, analytics.IncrementVisitor())
	assert.Equal(t, 1, analytics.Get().TotalVisitors)
}
