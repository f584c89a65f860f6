package repository

import (
	"github.com/excelenergy/cms/internal/domain/entities"
	"github.com/excelenergy/cms/internal/infrastructure/storage"
)

// BlogRepository handles blog posts and testimonials.
type BlogRepository struct {
	store *storage.Store
}

// NewBlogRepository creates a new blog repository
func NewBlogRepository(store *storage.Store) *BlogRepository {
	return &BlogRepository{store: store}
}

// Blog posts

func (r *BlogRepository) GetBlogPosts() []entities.BlogPost {
	return storage.Read(r.store, "blog.json", []entities.BlogPost{})
}

func (r *BlogRepository) GetBlogPost(id string) (entities.BlogPost, bool) {
	posts := r.GetBlogPosts()
	if i := indexOf(posts, id); i >= 0 {
		return posts[i], true
	}
	return entities.BlogPost{}, false
}

// AddBlogPost assigns id and publishedAt and prepends the post.
func (r *BlogRepository) AddBlogPost(post entities.BlogPost) (entities.BlogPost, error) {
	post.ID = NewID()
	post.PublishedAt = NowISO()
	posts := append([]entities.BlogPost{post}, r.GetBlogPosts()...)
	return post, storage.Write(r.store, "blog.json", posts)
}

func (r *BlogRepository) UpdateBlogPost(id string, patch map[string]interface{}) (bool, error) {
	posts := r.GetBlogPosts()
	i := indexOf(posts, id)
	if i < 0 {
		return false, nil
	}
	merged, err := mergeRecord(posts[i], patch)
	if err != nil {
		return false, err
	}
	posts[i] = merged
	return true, storage.Write(r.store, "blog.json", posts)
}

func (r *BlogRepository) DeleteBlogPost(id string) (bool, error) {
	posts, removed := removeByID(r.GetBlogPosts(), id)
	if !removed {
		return false, nil
	}
	return true, storage.Write(r.store, "blog.json", posts)
}

// Testimonials

func (r *BlogRepository) GetTestimonials() []entities.Testimonial {
	return storage.Read(r.store, "testimonials.json", []entities.Testimonial{})
}

func (r *BlogRepository) AddTestimonial(tm entities.Testimonial) (entities.Testimonial, error) {
	tm.ID = NewID()
	tm.Timestamp = NowISO()
	testimonials := append(r.GetTestimonials(), tm)
	return tm, storage.Write(r.store, "testimonials.json", testimonials)
}

func (r *BlogRepository) UpdateTestimonial(id string, patch map[string]interface{}) (bool, error) {
	testimonials := r.GetTestimonials()
	i := indexOf(testimonials, id)
	if i < 0 {
		return false, nil
	}
	merged, err := mergeRecord(testimonials[i], patch)
	if err != nil {
		return false, err
	}
	testimonials[i] = merged
	return true, storage.Write(r.store, "testimonials.json", testimonials)
}

func (r *BlogRepository) DeleteTestimonial(id string) (bool, error) {
	testimonials, removed := removeByID(r.GetTestimonials(), id)
	if !removed {
		return false, nil
	}
	return true, storage.Write(r.store, "testimonials.json", testimonials)
}
