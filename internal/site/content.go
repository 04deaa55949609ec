package site

// Tool is one entry of the tool catalogue shown on the marketing site.
type Tool struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Href        string `json:"href"`
	IconName    string `json:"iconName"`
	Endpoint    string `json:"endpoint"` // API route that backs the tool
	Disabled    bool   `json:"disabled,omitempty"`
}

type ValueProp struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ToolPreview struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Href        string `json:"href"`
}

type Testimonial struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Testimonial string `json:"testimonial"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Landing is the content of the landing page.
type Landing struct {
	ValueProps   []ValueProp   `json:"valueProps"`
	ToolPreviews []ToolPreview `json:"toolPreviews"`
	Testimonials []Testimonial `json:"testimonials"`
	FAQs         []FAQ         `json:"faqs"`
}

var tools = []Tool{
	{
		Name:        "AI Blog Writer",
		Description: "Transform your ideas into complete, well-structured articles. Provide a simple brief and optional keywords to generate engaging content ready for publication.",
		Href:        "/tools/blog-writer",
		IconName:    "PenSquare",
		Endpoint:    "/api/flows/blog-article",
	},
	{
		Name:        "SEO Optimizer",
		Description: "Boost your search engine rankings. Paste your content to receive an in-depth SEO analysis, actionable suggestions, and an AI-rewritten version.",
		Href:        "/tools/seo-optimizer",
		IconName:    "SearchCheck",
		Endpoint:    "/api/flows/seo-optimize",
	},
	{
		Name:        "Video Script Generator",
		Description: "Create engaging video scripts for platforms like YouTube, TikTok, or Instagram. Just provide a topic, and get a script with scenes and dialogue.",
		Href:        "/tools/video-script-generator",
		IconName:    "Film",
		Endpoint:    "/api/flows/video-script",
	},
	{
		Name:        "Name Generator",
		Description: "Find the perfect name for your brand. Describe your business and get a curated list of creative, catchy, and available name ideas instantly.",
		Href:        "/tools/business-name-generator",
		IconName:    "Briefcase",
		Endpoint:    "/api/flows/business-names",
	},
	{
		Name:        "AI Persona Creator",
		Description: "Understand your audience on a deeper level. Generate detailed user personas, including demographics, goals, and pain points, to guide your strategy.",
		Href:        "/tools/ai-persona-creator",
		IconName:    "Bot",
		Endpoint:    "/api/flows/persona",
	},
	{
		Name:        "Description Generator",
		Description: "Turn features into benefits with persuasive copy. Create compelling, SEO-friendly product descriptions that attract customers and drive sales.",
		Href:        "/tools/product-description-generator",
		IconName:    "ShoppingBasket",
		Endpoint:    "/api/flows/product-description",
	},
	{
		Name:        "Image Generator",
		Description: "Create unique images from text descriptions with Imagen 4.",
		Href:        "/tools/image-generator",
		IconName:    "ImageIcon",
		Endpoint:    "/api/flows/image",
	},
}

var landing = Landing{
	ValueProps: []ValueProp{
		{Title: "AI Powered Automation", Description: "Leverage cutting edge AI to automate content creation and optimization, saving you time and resources."},
		{Title: "Instant Results", Description: "Generate high quality articles, SEO insights, and stunning visuals in seconds, not hours."},
		{Title: "Creative Enhancement", Description: "Go beyond simple generation. Our tools are designed to be your creative partner, enhancing your ideas."},
	},
	ToolPreviews: []ToolPreview{
		{Name: "AI Blog Writer", Description: "Generate full articles from simple briefs.", Href: "/tools/blog-writer"},
		{Name: "SEO Optimizer", Description: "Analyze and improve your content's SEO score.", Href: "/tools/seo-optimizer"},
		{Name: "Video Script Generator", Description: "Create engaging scripts for your videos.", Href: "/tools/video-script-generator"},
	},
	Testimonials: []Testimonial{
		{Name: "Alex Johnson", Title: "Content Strategist", Testimonial: "Aetherium AI revolutionized our content workflow, producing high quality drafts in minutes. It is like having a team of writers on standby 24/7, a true game changer for our content strategy."},
		{Name: "Samantha Lee", Title: "Digital Marketer", Testimonial: "The SEO Optimizer is pure magic. We have seen tangible improvements in our search rankings. The suggestions are insightful, easy to implement, and have been invaluable for our marketing efforts."},
		{Name: "David Chen", Title: "Startup Founder", Testimonial: "As a lean startup, efficiency is key. Aetherium AI is our secret weapon for content. The Image Generator creates beautiful, on brand visuals, saving us a fortune on stock photography fees."},
	},
	FAQs: []FAQ{
		{Question: "Do I need technical skills to use Aetherium AI?", Answer: "Not at all! Our platform is designed for everyone. Its intuitive interface allows you to start creating high quality content immediately, no matter your skill level."},
		{Question: "Can I use the content I create for my business?", Answer: "Absolutely. You have full commercial rights to all content and images generated. Use them for your marketing, website, social media, and any other business needs."},
		{Question: "How does the AI create unique content?", Answer: "Our advanced AI models are trained to generate original content from scratch based on your inputs. For added assurance, you can always use a plagiarism checker."},
		{Question: "What if I'm not happy with the first result?", Answer: "No problem. Our tools are built for iteration. You can easily refine your prompts, adjust settings, or ask the AI to generate new versions until you get the perfect outcome."},
		{Question: "What kind of content can I create?", Answer: "Aetherium AI offers a versatile suite of tools. You can write blog posts, optimize articles for SEO, generate stunning images, and much more. We are constantly adding new tools to expand your creative possibilities."},
	},
}

// Tools returns a copy of the tool catalogue.
func Tools() []Tool {
	return append([]Tool(nil), tools...)
}

// LandingContent returns the landing page content. Callers must not modify the
// returned slices.
func LandingContent() Landing {
	return landing
}
