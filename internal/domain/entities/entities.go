package entities

import "errors"

// Common errors
var (
	ErrNotFound     = errors.New("record not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidInput = errors.New("invalid input")
)

// CTA is a call-to-action link on the home hero.
type CTA struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

// Hero is the banner block of the home page.
type Hero struct {
	Badge        string `json:"badge"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	CTAPrimary   CTA    `json:"ctaPrimary"`
	CTASecondary CTA    `json:"ctaSecondary"`
}

// HomeStat is an inline counter on the home page (distinct from the
// standalone Stat collection edited on the stats screen).
type HomeStat struct {
	Icon  string `json:"icon"`
	Value string `json:"value"`
	Label string `json:"label"`
}

// HomeFeature is a highlight card on the home page.
type HomeFeature struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

// HomeContent is the home page singleton, saved wholesale.
type HomeContent struct {
	Hero     Hero          `json:"hero"`
	Stats    []HomeStat    `json:"stats"`
	Features []HomeFeature `json:"features"`
}

// ContactInfo holds the company contact block on the about page.
type ContactInfo struct {
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// Location is an office pin shown on the contact map.
type Location struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// AboutContent is the about page singleton, saved wholesale.
type AboutContent struct {
	Mission     string      `json:"mission"`
	Vision      string      `json:"vision"`
	Goal        string      `json:"goal"`
	Milestones  []string    `json:"milestones"`
	ContactInfo ContactInfo `json:"contactInfo"`
	Locations   []Location  `json:"locations"`
}

// ServiceStat is a headline figure on a service detail page.
type ServiceStat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ProcessStep is one step of a service delivery process.
type ProcessStep struct {
	Step        int    `json:"step"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Service is an offering shown on the services page.
type Service struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	ShortDesc   string        `json:"shortDesc"`
	Description string        `json:"description"`
	Image       string        `json:"image,omitempty"`
	Features    []string      `json:"features"`
	Benefits    []string      `json:"benefits"`
	Stats       []ServiceStat `json:"stats"`
	Process     []ProcessStep `json:"process"`
}

// Project is an installation reference on the projects page.
type Project struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Client         string   `json:"client"`
	Type           string   `json:"type"` // Commercial, Residential, Industrial
	Location       string   `json:"location"`
	Capacity       string   `json:"capacity"`
	Status         string   `json:"status"` // working, completed
	Description    string   `json:"description"`
	Features       []string `json:"features"`
	StartDate      string   `json:"startDate"`
	CompletionDate string   `json:"completionDate,omitempty"`
	Image          string   `json:"image"`
	Achievements   []string `json:"achievements,omitempty"`
	Progress       *int     `json:"progress,omitempty"`
}

// TeamMember is a person on the team page.
type TeamMember struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Designation  string   `json:"designation"`
	Department   string   `json:"department"`
	Level        string   `json:"level"` // ceo, director, manager, employee
	Photo        string   `json:"photo"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone,omitempty"`
	LinkedIn     string   `json:"linkedin,omitempty"`
	Bio          string   `json:"bio"`
	Experience   string   `json:"experience"`
	Achievements []string `json:"achievements,omitempty"`
}

// Message is a contact-form submission.
type Message struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Read      bool   `json:"read"`
	Type      string `json:"type"` // message, consultation
}

// Quote is a quote request, created alongside PDF generation.
type Quote struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Company      string `json:"company,omitempty"`
	Requirements string `json:"requirements"`
	Timestamp    string `json:"timestamp"`
	PDFPath      string `json:"pdfPath"`
}

// Client is a customer record. ProjectID is free text, never validated
// against Projects.
type Client struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Company   string `json:"company,omitempty"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Feedback  string `json:"feedback,omitempty"`
	Rating    *int   `json:"rating,omitempty"`
	ProjectID string `json:"projectId,omitempty"`
	Timestamp string `json:"timestamp"`
}

// BlogPost is an article on the blog.
type BlogPost struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Excerpt     string   `json:"excerpt"`
	Image       string   `json:"image,omitempty"`
	Author      string   `json:"author"`
	PublishedAt string   `json:"publishedAt"`
	Published   bool     `json:"published"`
	Tags        []string `json:"tags"`
}

// Testimonial is a customer quote shown on the home page.
type Testimonial struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Company     string `json:"company"`
	Designation string `json:"designation,omitempty"`
	Photo       string `json:"photo,omitempty"`
	Rating      int    `json:"rating"`
	Testimonial string `json:"testimonial"`
	Project     string `json:"project,omitempty"`
	Timestamp   string `json:"timestamp"`
	Featured    bool   `json:"featured"`
}

// DailyCount is one day's visitor tally, keyed by date string.
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// WeeklyCount is a per-week visitor tally.
type WeeklyCount struct {
	Week  string `json:"week"`
	Count int    `json:"count"`
}

// MonthlyCount is a per-month visitor tally.
type MonthlyCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// PageView is a per-page view counter.
type PageView struct {
	Page  string `json:"page"`
	Views int    `json:"views"`
}

// Analytics is the visit-counter singleton, incremented in place and
// never reset.
type Analytics struct {
	TotalVisitors   int            `json:"totalVisitors"`
	DailyVisitors   []DailyCount   `json:"dailyVisitors"`
	WeeklyVisitors  []WeeklyCount  `json:"weeklyVisitors"`
	MonthlyVisitors []MonthlyCount `json:"monthlyVisitors"`
	PageViews       []PageView     `json:"pageViews"`
	LastUpdated     string         `json:"lastUpdated"`
}

// Stat is a counter on the stats strip; the whole collection is
// replaced on save.
type Stat struct {
	ID     string `json:"id"`
	Icon   string `json:"icon"`
	Value  string `json:"value"`
	Suffix string `json:"suffix,omitempty"`
	Label  string `json:"label"`
	Order  int    `json:"order"`
}

// WhyChooseUs is a card in the "why choose us" grid; list-replace.
type WhyChooseUs struct {
	ID          string `json:"id"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Order       int    `json:"order"`
}

// Solution is an entry in the solutions strip; list-replace.
type Solution struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
	Order int    `json:"order"`
}

// SocialMedia holds the footer social links.
type SocialMedia struct {
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	LinkedIn  string `json:"linkedin"`
	Instagram string `json:"instagram"`
	YouTube   string `json:"youtube"`
	WhatsApp  string `json:"whatsapp"`
}

// SEOSettings holds site-wide SEO metadata.
type SEOSettings struct {
	SiteTitle         string   `json:"siteTitle"`
	SiteDescription   string   `json:"siteDescription"`
	Keywords          []string `json:"keywords"`
	OGImage           string   `json:"ogImage,omitempty"`
	TwitterHandle     string   `json:"twitterHandle,omitempty"`
	GoogleAnalyticsID string   `json:"googleAnalyticsId,omitempty"`
	FacebookPixelID   string   `json:"facebookPixelId,omitempty"`
}

// SiteSettings is the general site configuration singleton.
type SiteSettings struct {
	SiteName     string      `json:"siteName"`
	Logo         string      `json:"logo,omitempty"`
	Favicon      string      `json:"favicon,omitempty"`
	ContactEmail string      `json:"contactEmail"`
	ContactPhone string      `json:"contactPhone"`
	Address      string      `json:"address"`
	WorkingHours string      `json:"workingHours"`
	FooterText   string      `json:"footerText"`
	SocialMedia  SocialMedia `json:"socialMedia"`
	SEO          SEOSettings `json:"seo"`
}

// EntityID implementations let the repository helpers scan collections
// generically.

func (s Service) EntityID() string     { return s.ID }
func (p Project) EntityID() string     { return p.ID }
func (m TeamMember) EntityID() string  { return m.ID }
func (m Message) EntityID() string     { return m.ID }
func (q Quote) EntityID() string       { return q.ID }
func (c Client) EntityID() string      { return c.ID }
func (b BlogPost) EntityID() string    { return b.ID }
func (t Testimonial) EntityID() string { return t.ID }
