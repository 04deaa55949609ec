package prompts

import "fmt"

// GetSEOOptimizationPrompt renders the SEO analysis prompt.
func GetSEOOptimizationPrompt(content, targetKeyword string) (string, string) {
	prompt := `You are an SEO expert. Analyze the following content for the target keyword. %s

Content: %s
Target Keyword: %s

Provide the following:
1.  **SEO Score (0-100):** A numerical score based on the content's on-page SEO effectiveness for the target keyword.
2.  **Suggestions:** A list of specific, actionable suggestions to improve the content's SEO. Focus on keyword density, placement in headings and meta descriptions, readability, and internal/external linking opportunities.
3.  **Rewritten Content:** Provide the full rewritten content incorporating your SEO improvements and naturally targeting the keyword. Ensure the rewritten content maintains the original meaning and tone but is optimized for search engines.`

	return fmt.Sprintf(prompt, noHyphensOrDashes, content, targetKeyword), jsonOnlySystemPrompt
}
