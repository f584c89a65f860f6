package services

import (
	"fmt"

	"github.com/excelenergy/cms/internal/adapters/repository"
	"github.com/excelenergy/cms/internal/domain/entities"
	"github.com/excelenergy/cms/internal/infrastructure/logger"
)

// SeedService populates starter content. Collections are only seeded
// when empty; singletons only when their key fields are blank, so
// re-running never clobbers edited content.
type SeedService struct {
	content *repository.ContentRepository
	catalog *repository.CatalogRepository
	logger  *logger.Logger
}

// NewSeedService creates a new seed service
func NewSeedService(content *repository.ContentRepository, catalog *repository.CatalogRepository, logger *logger.Logger) *SeedService {
	return &SeedService{
		content: content,
		catalog: catalog,
		logger:  logger,
	}
}

// Seed writes the starter services, projects, team and page content.
func (s *SeedService) Seed() error {
	if len(s.catalog.GetServices()) == 0 {
		if err := s.saveServices(seedServices()); err != nil {
			return fmt.Errorf("seed services: %w", err)
		}
	}

	if len(s.catalog.GetProjects()) == 0 {
		if err := s.saveProjects(seedProjects()); err != nil {
			return fmt.Errorf("seed projects: %w", err)
		}
	}

	if len(s.catalog.GetTeamMembers()) == 0 {
		if err := s.saveTeam(seedTeam()); err != nil {
			return fmt.Errorf("seed team: %w", err)
		}
	}

	if home := s.content.GetHome(); home.Hero.Title == "" {
		if err := s.content.SaveHome(entities.DefaultHomeContent()); err != nil {
			return fmt.Errorf("seed home content: %w", err)
		}
	}

	if about := s.content.GetAbout(); about.Mission == "" {
		if err := s.content.SaveAbout(entities.DefaultAboutContent()); err != nil {
			return fmt.Errorf("seed about content: %w", err)
		}
	}

	s.logger.Info("Default content initialized")
	return nil
}

func (s *SeedService) saveServices(services []entities.Service) error {
	for _, svc := range services {
		if _, err := s.catalog.AddService(svc); err != nil {
			return err
		}
	}
	return nil
}

func (s *SeedService) saveProjects(projects []entities.Project) error {
	for _, p := range projects {
		if _, err := s.catalog.AddProject(p); err != nil {
			return err
		}
	}
	return nil
}

func (s *SeedService) saveTeam(members []entities.TeamMember) error {
	for _, m := range members {
		if _, err := s.catalog.AddTeamMember(m); err != nil {
			return err
		}
	}
	return nil
}

func seedServices() []entities.Service {
	return []entities.Service{
		{
			ID:          "commercial",
			Title:       "Commercial Solar Plants",
			ShortDesc:   "End-to-end solar installations for large businesses.",
			Description: "Transform your business operations with our comprehensive commercial solar solutions. We design, install, and maintain large-scale solar power systems that significantly reduce your electricity costs while contributing to your sustainability goals.",
			Features: []string{
				"Custom-designed systems for your facility",
				"Grid-tied and off-grid solutions available",
				"Advanced monitoring and analytics",
				"Scalable installations from 100kW to 10MW+",
			},
			Benefits: []string{
				"Reduce electricity bills by up to 90%",
				"Protect against rising energy costs",
				"Improve your company's sustainability profile",
				"Eligible for tax incentives and rebates",
			},
			Stats: []entities.ServiceStat{
				{Label: "Average ROI", Value: "5-7 years"},
				{Label: "Energy Savings", Value: "Up to 90%"},
				{Label: "CO2 Reduction", Value: "1000+ tons/year"},
				{Label: "Warranty", Value: "25 years"},
			},
			Process: []entities.ProcessStep{
				{Step: 1, Title: "Site Assessment & Consultation", Description: "Our expert team conducts a thorough site evaluation."},
				{Step: 2, Title: "Custom System Design", Description: "We create a detailed engineering design tailored to your needs."},
			},
		},
		{
			ID:          "residential",
			Title:       "Residential Rooftop Solutions",
			ShortDesc:   "Affordable rooftop systems for sustainable homes.",
			Description: "Make your home energy-independent with our residential solar rooftop solutions.",
			Features: []string{
				"Tailored system sizing for your home",
				"Premium solar panels with 25-year warranty",
				"Smart inverter technology",
				"Mobile app for real-time monitoring",
			},
			Benefits: []string{
				"Save thousands on electricity bills",
				"Increase home value by 3-4%",
				"Protect against energy price hikes",
				"Reduce carbon footprint significantly",
			},
			Stats: []entities.ServiceStat{
				{Label: "Payback Period", Value: "4-6 years"},
				{Label: "Monthly Savings", Value: "₹3,000-15,000"},
				{Label: "System Lifespan", Value: "25+ years"},
				{Label: "Warranty Coverage", Value: "25 years"},
			},
			Process: []entities.ProcessStep{
				{Step: 1, Title: "Free Home Assessment", Description: "We schedule a convenient time to visit your home."},
				{Step: 2, Title: "Customized Proposal", Description: "We provide a detailed proposal with system recommendations."},
			},
		},
	}
}

func seedProjects() []entities.Project {
	progress1, progress2 := 65, 45
	return []entities.Project{
		{
			ID:          "proj-1",
			Title:       "Tata Steel Solar Power Plant",
			Client:      "Tata Steel Limited",
			Type:        "Industrial",
			Location:    "Jamshedpur, Jharkhand",
			Capacity:    "5 MW",
			Status:      "working",
			Description: "A large-scale industrial solar power plant designed to meet 40% of the facility's energy requirements.",
			Features: []string{
				"Advanced monitoring dashboard",
				"Battery storage system",
				"Grid-tied configuration",
				"Automated cleaning system",
			},
			StartDate: "January 2024",
			Image:     "/image/Image1.jpg",
			Progress:  &progress1,
		},
		{
			ID:          "proj-2",
			Title:       "GreenTech Corporate Campus",
			Client:      "GreenTech Solutions Pvt. Ltd.",
			Type:        "Commercial",
			Location:    "Gurgaon, Haryana",
			Capacity:    "2.5 MW",
			Status:      "working",
			Description: "Comprehensive solar solution for a modern corporate campus.",
			Features: []string{
				"Rooftop + ground mount",
				"Smart energy management",
				"Net metering enabled",
				"Real-time analytics",
			},
			StartDate: "March 2024",
			Image:     "/image/Image2.jpg",
			Progress:  &progress2,
		},
	}
}

func seedTeam() []entities.TeamMember {
	return []entities.TeamMember{
		{
			ID:          "ceo-1",
			Name:        "Rajesh Kumar",
			Designation: "Chief Executive Officer",
			Department:  "Executive",
			Level:       "ceo",
			Photo:       "/image/Image1.jpg",
			Email:       "rajesh.kumar@excelenergy.in",
			Phone:       "+91 9876543210",
			Bio:         "Visionary leader with 20+ years of experience in renewable energy sector.",
			Experience:  "20+ Years",
			Achievements: []string{
				"Industry Leader of the Year 2023",
				"Led 500+ successful projects",
				"Renewable Energy Expert",
			},
		},
		{
			ID:          "dir-1",
			Name:        "Priya Sharma",
			Designation: "Director of Operations",
			Department:  "Operations",
			Level:       "director",
			Photo:       "/image/Image2.jpg",
			Email:       "priya.sharma@excelenergy.in",
			Phone:       "+91 9876543211",
			Bio:         "Operations expert ensuring seamless project execution.",
			Experience:  "15+ Years",
		},
	}
}
