package types

// Input records carry `validate` tags checked before any model call, and
// `form` tags so the same struct binds from JSON bodies and HTML forms.
// Output records carry `description` tags that end up in the JSON schema sent
// to the model, and `validate` tags checked on the decoded reply.

// ArticleBriefInput is the blog writer input.
type ArticleBriefInput struct {
	Brief       string `json:"brief" form:"brief" validate:"min=10"`
	SEOKeywords string `json:"seoKeywords,omitempty" form:"seoKeywords"`
}

// ArticleSection is one body section of a generated article.
type ArticleSection struct {
	Subheading string `json:"subheading" description:"A descriptive subheading for this section of the article." validate:"required"`
	Content    string `json:"content" description:"The paragraph(s) of content for this section." validate:"required"`
}

// ArticleOutput is a full article generated from a brief.
type ArticleOutput struct {
	Title        string           `json:"title" description:"A catchy and relevant title for the article." validate:"required"`
	Introduction string           `json:"introduction" description:"An engaging introduction that hooks the reader." validate:"required"`
	Sections     []ArticleSection `json:"sections" description:"An array of body sections, each with a subheading and content." validate:"min=1,dive"`
	Conclusion   string           `json:"conclusion" description:"A concluding paragraph that summarizes the key points." validate:"required"`
}

// SEOInput is the SEO optimizer input.
type SEOInput struct {
	Content       string `json:"content" form:"content" validate:"min=50"`
	TargetKeyword string `json:"targetKeyword" form:"targetKeyword" validate:"min=2"`
}

// SEOOutput is the SEO analysis of a piece of content.
type SEOOutput struct {
	SEOScore         float64  `json:"seoScore" description:"The overall SEO score (0-100) of the content, based on keyword usage, readability, and structure." validate:"gte=0,lte=100"`
	Suggestions      []string `json:"suggestions" description:"A list of specific, actionable suggestions for improving the content's SEO." validate:"min=1,dive,required"`
	RewrittenContent string   `json:"rewrittenContent" description:"The rewritten content with SEO improvements, including better keyword placement and improved headings." validate:"required"`
}

// VideoScriptInput is the video script generator input.
type VideoScriptInput struct {
	Topic    string `json:"topic" form:"topic" validate:"min=10"`
	Platform string `json:"platform" form:"platform" validate:"min=1"`
	Duration string `json:"duration" form:"duration" validate:"min=3"`
}

// Scene is one numbered scene of a video script.
type Scene struct {
	Scene    int    `json:"scene" description:"The scene number, starting at 1." validate:"gte=1"`
	Visuals  string `json:"visuals" description:"Description of the visuals, camera shots, and on-screen text for this scene." validate:"required"`
	Dialogue string `json:"dialogue" description:"The dialogue or voiceover for this scene, timed appropriately." validate:"required"`
}

// VideoScriptOutput is a scene-by-scene video script.
type VideoScriptOutput struct {
	Title  string  `json:"title" description:"A catchy, SEO-friendly title for the video." validate:"required"`
	Hook   string  `json:"hook" description:"An engaging hook to grab the viewer's attention in the first 3-5 seconds." validate:"required"`
	Script []Scene `json:"script" description:"The script, broken down into scenes with detailed visuals and dialogue." validate:"min=1,dive"`
	CTA    string  `json:"cta" description:"A clear and compelling call-to-action for the end of the video." validate:"required"`
}

// BusinessNameInput is the name generator input.
type BusinessNameInput struct {
	Description string `json:"description" form:"description" validate:"min=10"`
	Keywords    string `json:"keywords,omitempty" form:"keywords"`
}

// BusinessNameOutput lists candidate business names.
type BusinessNameOutput struct {
	Names []string `json:"names" description:"A list of at least 10 creative business names, covering different styles (e.g., modern, classic, playful)." validate:"min=10,dive,required"`
}

// PersonaInput is the persona creator input.
type PersonaInput struct {
	ProductInfo    string `json:"productInfo" form:"productInfo" validate:"min=10"`
	TargetAudience string `json:"targetAudience" form:"targetAudience" validate:"min=10"`
}

// Persona is a marketing persona.
type Persona struct {
	Name             string   `json:"name" description:"The full name of the persona." validate:"required"`
	Age              int      `json:"age" description:"The age of the persona." validate:"gt=0"`
	Occupation       string   `json:"occupation" description:"The occupation or job title of the persona." validate:"required"`
	Background       string   `json:"background" description:"A compelling background story for the persona, written in 2-3 sentences." validate:"required"`
	Goals            []string `json:"goals" description:"A list of 3-5 of the persona's primary goals related to the product." validate:"min=1,dive,required"`
	PainPoints       []string `json:"painPoints" description:"A list of 3-5 of the persona's main challenges or pain points that the product can solve." validate:"min=1,dive,required"`
	MarketingMessage string   `json:"marketingMessage" description:"A tailored, concise, and impactful marketing message that would resonate with this persona." validate:"required"`
}

// PersonaOutput wraps the generated persona.
type PersonaOutput struct {
	Persona Persona `json:"persona"`
}

// ProductDescriptionInput is the product description generator input.
type ProductDescriptionInput struct {
	ProductName string `json:"productName" form:"productName" validate:"min=3"`
	Features    string `json:"features" form:"features" validate:"min=10"`
	Tone        string `json:"tone" form:"tone" validate:"min=1"`
}

// ProductDescriptionOutput is e-commerce copy for a product.
type ProductDescriptionOutput struct {
	Headline  string   `json:"headline" description:"A catchy, attention-grabbing headline for the product." validate:"required"`
	Paragraph string   `json:"paragraph" description:"A persuasive paragraph (2-3 sentences) focusing on the benefits of the features, not just the features themselves." validate:"required"`
	Features  []string `json:"features" description:"A list of the key features." validate:"min=1,dive,required"`
}

// ImageInput is the image generator input. Only Prompt reaches the model.
type ImageInput struct {
	Prompt string `json:"prompt" form:"prompt" validate:"min=3"`
}

// ImageOutput holds the generated image as a data URI.
type ImageOutput struct {
	ImageURL string `json:"imageUrl" validate:"required,datauri"`
}
