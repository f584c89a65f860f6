package repository

import (
	"github.com/excelenergy/cms/internal/domain/entities"
	"github.com/excelenergy/cms/internal/infrastructure/storage"
)

// CatalogRepository handles the per-id content collections shown on the
// public site: services, projects and team members. Adds append, and
// every mutation rewrites the whole array.
type CatalogRepository struct {
	store *storage.Store
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(store *storage.Store) *CatalogRepository {
	return &CatalogRepository{store: store}
}

// Services

func (r *CatalogRepository) GetServices() []entities.Service {
	return storage.Read(r.store, "services.json", []entities.Service{})
}

func (r *CatalogRepository) GetService(id string) (entities.Service, bool) {
	services := r.GetServices()
	if i := indexOf(services, id); i >= 0 {
		return services[i], true
	}
	return entities.Service{}, false
}

func (r *CatalogRepository) AddService(service entities.Service) (entities.Service, error) {
	if service.ID == "" {
		service.ID = NewID()
	}
	services := append(r.GetServices(), service)
	return service, storage.Write(r.store, "services.json", services)
}

func (r *CatalogRepository) UpdateService(id string, patch map[string]interface{}) (bool, error) {
	services := r.GetServices()
	i := indexOf(services, id)
	if i < 0 {
		return false, nil
	}
	merged, err := mergeRecord(services[i], patch)
	if err != nil {
		return false, err
	}
	services[i] = merged
	return true, storage.Write(r.store, "services.json", services)
}

func (r *CatalogRepository) DeleteService(id string) (bool, error) {
	services, removed := removeByID(r.GetServices(), id)
	if !removed {
		return false, nil
	}
	return true, storage.Write(r.store, "services.json", services)
}

// Projects

func (r *CatalogRepository) GetProjects() []entities.Project {
	return storage.Read(r.store, "projects.json", []entities.Project{})
}

func (r *CatalogRepository) GetProject(id string) (entities.Project, bool) {
	projects := r.GetProjects()
	if i := indexOf(projects, id); i >= 0 {
		return projects[i], true
	}
	return entities.Project{}, false
}

func (r *CatalogRepository) AddProject(project entities.Project) (entities.Project, error) {
	if project.ID == "" {
		project.ID = NewID()
	}
	projects := append(r.GetProjects(), project)
	return project, storage.Write(r.store, "projects.json", projects)
}

func (r *CatalogRepository) UpdateProject(id string, patch map[string]interface{}) (bool, error) {
	projects := r.GetProjects()
	i := indexOf(projects, id)
	if i < 0 {
		return false, nil
	}
	merged, err := mergeRecord(projects[i], patch)
	if err != nil {
		return false, err
	}
	projects[i] = merged
	return true, storage.Write(r.store, "projects.json", projects)
}

func (r *CatalogRepository) DeleteProject(id string) (bool, error) {
	projects, removed := removeByID(r.GetProjects(), id)
	if !removed {
		return false, nil
	}
	return true, storage.Write(r.store, "projects.json", projects)
}

// Team members

func (r *CatalogRepository) GetTeamMembers() []entities.TeamMember {
	return storage.Read(r.store, "team.json", []entities.TeamMember{})
}

func (r *CatalogRepository) GetTeamMember(id string) (entities.TeamMember, bool) {
	members := r.GetTeamMembers()
	if i := indexOf(members, id); i >= 0 {
		return members[i], true
	}
	return entities.TeamMember{}, false
}

func (r *CatalogRepository) AddTeamMember(member entities.TeamMember) (entities.TeamMember, error) {
	if member.ID == "" {
		member.ID = NewID()
	}
	members := append(r.GetTeamMembers(), member)
	return member, storage.Write(r.store, "team.json", members)
}

func (r *CatalogRepository) UpdateTeamMember(id string, patch map[string]interface{}) (bool, error) {
	members := r.GetTeamMembers()
	i := indexOf(members, id)
	if i < 0 {
		return false, nil
	}
	merged, err := mergeRecord(members[i], patch)
	if err != nil {
		return false, err
	}
	members[i] = merged
	return true, storage.Write(r.store, "team.json", members)
}

func (r *CatalogRepository) DeleteTeamMember(id string) (bool, error) {
	members, removed := removeByID(r.GetTeamMembers(), id)
	if !removed {
		return false, nil
	}
	return true, storage.Write(r.store, "team.json", members)
}
