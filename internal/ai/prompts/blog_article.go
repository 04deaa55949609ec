package prompts

import "fmt"

// GetArticleFromBriefPrompt renders the blog writer prompt. seoKeywords may be empty.
func GetArticleFromBriefPrompt(brief, seoKeywords string) (string, string) {
	prompt := `You are an expert blog writer known for creating clear, engaging, and well-structured content. Generate a full article based on the following brief.

The article must be structured as follows:
1. A catchy and relevant title.
2. A short introduction that hooks the reader.
3. At least 3-4 body sections, each with a descriptive subheading and a well-written paragraph of content.
4. A concluding paragraph that summarizes the key points.
5. Natural incorporation of the provided SEO keywords, if any. %s

Brief: %s

SEO Keywords: %s`

	return fmt.Sprintf(prompt, noHyphensOrDashes, brief, seoKeywords), jsonOnlySystemPrompt
}
