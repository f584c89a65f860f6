package entities

// Hard-coded defaults returned by the repositories when a data file is
// missing or empty. Reads never persist these; the file appears on the
// first explicit write.

// DefaultHomeContent returns the stock home page.
func DefaultHomeContent() HomeContent {
	return HomeContent{
		Hero: Hero{
			Badge:        "Aqua Solar",
			Title:        "Dive into the Future of Clean Solar Energy",
			Description:  "Fluid design. Powerful technology. Excel Energy delivers seamless solar ecosystems that ripple out cleaner, smarter power for communities across India.",
			CTAPrimary:   CTA{Text: "Explore Liquid Services", Link: "/services"},
			CTASecondary: CTA{Text: "Start a Flow Consultation", Link: "/contact"},
		},
		Stats: []HomeStat{
			{Icon: "Zap", Value: "30+ MW", Label: "Total Capacity Installed"},
			{Icon: "Users", Value: "200+", Label: "Happy Clients"},
			{Icon: "Award", Value: "10+", Label: "Years Experience"},
			{Icon: "TrendingUp", Value: "95%", Label: "Customer Satisfaction"},
		},
		Features: []HomeFeature{
			{Icon: "Sun", Title: "Solar Expertise", Desc: "Years of experience in solar energy solutions"},
			{Icon: "CheckCircle", Title: "Quality Assured", Desc: "ISO certified installations and maintenance"},
			{Icon: "Award", Title: "Award Winning", Desc: "Recognized for excellence in renewable energy"},
			{Icon: "TrendingUp", Title: "Growing Fast", Desc: "Expanding across India with innovative solutions"},
		},
	}
}

// DefaultAboutContent returns the stock about page.
func DefaultAboutContent() AboutContent {
	return AboutContent{
		Mission:    "Flowing toward a decarbonized future by deploying hyper-efficient solar systems that empower communities, elevate businesses, and preserve the planet's delicate balance.",
		Vision:     "To be India's leading solar energy solutions provider, transforming how businesses and communities harness clean energy.",
		Goal:       "Deliver 100 MW+ of liquid solar capacity by 2030 while delivering premium experiences, sustainable outcomes, and constant innovation for every client we serve.",
		Milestones: []string{
			"200+ solar orchestrations completed nationwide",
			"Ranked Top 10 Green Energy Innovators (2023)",
			"ISO-certified excellence & audit-ready operations",
			"Strategic alliances with major industrial & government leaders",
		},
		ContactInfo: ContactInfo{
			Address: "Solar Heights, Sector 62, Noida, UP, India",
			Phone:   "+91 9876543210",
			Email:   "info@excelenergy.in",
		},
		Locations: []Location{
			{ID: "1", Name: "Delhi", Address: "Delhi, India", Latitude: 28.6139, Longitude: 77.2090},
			{ID: "2", Name: "Mumbai", Address: "Mumbai, Maharashtra, India", Latitude: 19.0760, Longitude: 72.8777},
			{ID: "3", Name: "Jaipur", Address: "Jaipur, Rajasthan, India", Latitude: 26.9124, Longitude: 75.7873},
			{ID: "4", Name: "Bengaluru", Address: "Bengaluru, Karnataka, India", Latitude: 12.9716, Longitude: 77.5946},
		},
	}
}

// DefaultStats returns the stock stats strip.
func DefaultStats() []Stat {
	return []Stat{
		{ID: "1", Icon: "Zap", Value: "30+", Suffix: "MW", Label: "Total Capacity Installed", Order: 1},
		{ID: "2", Icon: "Users", Value: "200+", Label: "Happy Clients", Order: 2},
		{ID: "3", Icon: "Award", Value: "10+", Suffix: "Years", Label: "Experience", Order: 3},
		{ID: "4", Icon: "TrendingUp", Value: "95%", Label: "Customer Satisfaction", Order: 4},
		{ID: "5", Icon: "Sun", Value: "500+", Label: "Projects Completed", Order: 5},
		{ID: "6", Icon: "CheckCircle", Value: "24/7", Label: "Support Available", Order: 6},
	}
}

// DefaultWhyChooseUs returns the stock "why choose us" grid.
func DefaultWhyChooseUs() []WhyChooseUs {
	return []WhyChooseUs{
		{ID: "1", Icon: "Award", Title: "Award-Winning Quality", Description: "Recognized for excellence in solar installations and customer service", Color: "from-yellow-400 to-yellow-600", Order: 1},
		{ID: "2", Icon: "Shield", Title: "25-Year Warranty", Description: "Comprehensive warranty coverage on all our solar installations", Color: "from-green-400 to-green-600", Order: 2},
		{ID: "3", Icon: "Clock", Title: "Quick Installation", Description: "Fast and efficient installation with minimal disruption to your operations", Color: "from-blue-400 to-blue-600", Order: 3},
		{ID: "4", Icon: "Headphones", Title: "24/7 Support", Description: "Round-the-clock monitoring and support for all your solar needs", Color: "from-purple-400 to-purple-600", Order: 4},
		{ID: "5", Icon: "Zap", Title: "Energy Savings", Description: "Reduce your electricity bills by up to 90% with our efficient systems", Color: "from-orange-400 to-orange-600", Order: 5},
		{ID: "6", Icon: "Leaf", Title: "Eco-Friendly", Description: "Contribute to a greener planet with clean, renewable solar energy", Color: "from-emerald-400 to-emerald-600", Order: 6},
	}
}

// DefaultSolutions returns the stock solutions strip.
func DefaultSolutions() []Solution {
	return []Solution{
		{ID: "1", Title: "Commercial Solar Plants", Desc: "End-to-end solar installations for large businesses.", Order: 1},
		{ID: "2", Title: "Residential Rooftop Solutions", Desc: "Affordable rooftop systems for sustainable homes.", Order: 2},
		{ID: "3", Title: "Maintenance & Monitoring", Desc: "24x7 performance monitoring and fault detection.", Order: 3},
	}
}

// DefaultSocialMedia returns empty social links.
func DefaultSocialMedia() SocialMedia {
	return SocialMedia{}
}

// DefaultSEOSettings returns the stock SEO metadata.
func DefaultSEOSettings() SEOSettings {
	return SEOSettings{
		SiteTitle:       "Excel Energy | Solar Solutions",
		SiteDescription: "Powering a greener future with sustainable solar energy systems.",
		Keywords:        []string{"solar energy", "renewable energy", "solar panels", "solar installation"},
	}
}

// DefaultSiteSettings returns the stock site configuration. The nested
// social and SEO blocks default independently; a saved siteSettings.json
// snapshots whatever they held at save time.
func DefaultSiteSettings(social SocialMedia, seo SEOSettings) SiteSettings {
	return SiteSettings{
		SiteName:     "Excel Energy",
		ContactEmail: "info@excelenergy.in",
		ContactPhone: "+91 9876543210",
		Address:      "Solar Heights, Sector 62, Noida, UP, India",
		WorkingHours: "Monday - Friday: 9:00 AM - 6:00 PM",
		FooterText:   "© 2024 Excel Energy. All rights reserved.",
		SocialMedia:  social,
		SEO:          seo,
	}
}
