package seed

import "github.com/brightweb/agency-api/internal/core/domain"

// catalogFixtures returns the seven launch services with their intake
// schemas.
func catalogFixtures() []domain.Service {
	return []domain.Service{
		{
			Name:        "SEO Optimization",
			Description: "Improve your website's search engine rankings",
			Fields: []domain.FormField{
				{Name: "website_url", Label: "Website URL", Type: domain.FieldURL, Required: true},
				{Name: "target_keywords", Label: "Target Keywords", Type: domain.FieldText, Required: true},
				{Name: "budget", Label: "Monthly Budget ($)", Type: domain.FieldNumber, Required: true},
			},
		},
		{
			Name:        "Social Media Marketing",
			Description: "Grow your brand presence on social platforms",
			Fields: []domain.FormField{
				{Name: "platforms", Label: "Platforms", Type: domain.FieldSelect, Required: true,
					Options: []string{"Instagram", "Facebook", "Twitter", "LinkedIn", "TikTok"}},
				{Name: "content_type", Label: "Content Type", Type: domain.FieldSelect, Required: true,
					Options: []string{"Posts", "Stories", "Reels", "Video"}},
				{Name: "budget", Label: "Monthly Budget ($)", Type: domain.FieldNumber, Required: true},
			},
		},
		{
			Name:        "PPC / Google Ads",
			Description: "Run high-performing paid advertising campaigns",
			Fields: []domain.FormField{
				{Name: "campaign_type", Label: "Campaign Type", Type: domain.FieldSelect, Required: true,
					Options: []string{"Search Ads", "Display Ads", "Shopping Ads", "YouTube Video Ads"}},
				{Name: "daily_budget", Label: "Daily Budget ($)", Type: domain.FieldNumber, Required: true},
				{Name: "target_audience", Label: "Target Audience", Type: domain.FieldText, Required: true},
			},
		},
		{
			Name:        "Content Marketing",
			Description: "Create valuable and engaging content to attract customers",
			Fields: []domain.FormField{
				{Name: "content_type", Label: "Content Type", Type: domain.FieldSelect, Required: true,
					Options: []string{"Blog Writing & SEO Content", "Video Marketing", "Infographics", "Full Content Strategy"}},
				{Name: "niche", Label: "Niche / Industry", Type: domain.FieldText, Required: true},
				{Name: "budget", Label: "Monthly Budget ($)", Type: domain.FieldNumber, Required: true},
			},
		},
		{
			Name:        "Web Design & Development",
			Description: "Build a professional and responsive website",
			Fields: []domain.FormField{
				{Name: "project_type", Label: "Project Type", Type: domain.FieldSelect, Required: true,
					Options: []string{"Landing Page Design", "Full Website Development", "E-commerce Website", "Website Redesign"}},
				{Name: "website_purpose", Label: "Purpose of Website", Type: domain.FieldText, Required: true},
				{Name: "budget", Label: "Total Budget ($)", Type: domain.FieldNumber, Required: true},
			},
		},
		{
			Name:        "Branding & Graphic Design",
			Description: "Create a strong brand identity with creative designs",
			Fields: []domain.FormField{
				{Name: "branding_type", Label: "Branding Service Type", Type: domain.FieldSelect, Required: true,
					Options: []string{"Logo Design", "Brand Kit", "Social Media Graphics", "Complete Brand Identity"}},
				{Name: "brand_name", Label: "Brand Name", Type: domain.FieldText, Required: true},
				{Name: "color_preferences", Label: "Color Preferences", Type: domain.FieldText, Required: false},
			},
		},
		{
			Name:        "Email Marketing",
			Description: "Engage customers with targeted email campaigns",
			Fields: []domain.FormField{
				{Name: "email_service_type", Label: "Email Service Type", Type: domain.FieldSelect, Required: true,
					Options: []string{"One-time Campaign Setup", "Drip Campaign Automation", "Newsletter Design", "Full Email Strategy"}},
				{Name: "audience_size", Label: "Audience Size", Type: domain.FieldNumber, Required: true},
				{Name: "budget", Label: "Monthly Budget ($)", Type: domain.FieldNumber, Required: true},
			},
		},
	}
}

// portfolioFixtures returns the sample case studies shown on the site.
func portfolioFixtures() []domain.PortfolioItem {
	return []domain.PortfolioItem{
		{
			Title:       "E-commerce SEO Success",
			Description: "Increased organic traffic by 300% for online retailer",
			ImageURL:    "https://images.pexels.com/photos/265087/pexels-photo-265087.jpeg",
			Category:    "SEO",
			Client:      "TechStore Inc",
			Challenge:   "TechStore Inc struggled with declining organic search visibility.",
			Strategy:    "Performed SEO audit, optimized site, created content, built backlinks.",
			Results:     "300% traffic increase and +40% monthly revenue.",
		},
		{
			Title:       "Social Media Campaign",
			Description: "Built engaged community of 50K+ followers",
			ImageURL:    "https://images.pexels.com/photos/607812/pexels-photo-607812.jpeg",
			Category:    "Social Media",
			Client:      "Fashion Brand",
			Challenge:   "Needed brand awareness in competitive market.",
			Strategy:    "6-month campaign with influencers & interactive content.",
			Results:     "50K followers, +220% engagement, +30% sales uplift.",
		},
		{
			Title:       "Google Ads Performance",
			Description: "Achieved 400% ROAS for SaaS startup",
			ImageURL:    "https://images.pexels.com/photos/590016/pexels-photo-590016.jpeg",
			Category:    "Paid Ads",
			Client:      "CloudTech Solutions",
			Challenge:   "The SaaS startup was struggling with low-quality leads and high acquisition costs through traditional campaigns.",
			Strategy:    "We rebuilt the Google Ads funnel, implemented advanced keyword targeting, and set up conversion tracking with A/B testing.",
			Results:     "ROAS improved to 400%, customer acquisition cost dropped by 45%, and lead quality improved significantly.",
		},
		{
			Title:       "Content Strategy Win",
			Description: "Generated 1M+ content views and 500 leads",
			ImageURL:    "https://images.pexels.com/photos/196644/pexels-photo-196644.jpeg",
			Category:    "Content Marketing",
			Client:      "Wellness Company",
			Challenge:   "The client's content lacked engagement and wasn't ranking well on search engines.",
			Strategy:    "We developed a targeted content calendar, optimized articles for SEO, and promoted them through social media collaborations.",
			Results:     "Content reached over 1M+ views, drove 500 qualified leads, and boosted organic search traffic by 60%.",
		},
	}
}
