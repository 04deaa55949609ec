package prompts

import "fmt"

// GetAIPersonaPrompt renders the persona creator prompt.
func GetAIPersonaPrompt(productInfo, targetAudience string) (string, string) {
	prompt := `You are a marketing expert specializing in creating detailed user personas. Based on the provided product information and target audience, generate a comprehensive persona. Make the persona realistic and relatable. %s

Product/Business Information:
%s

Target Audience:
%s

Create a persona that includes:
- A realistic name, age, and occupation.
- A compelling background story (2-3 sentences).
- A list of 3-5 primary goals and motivations.
- A list of 3-5 key pain points and challenges.
- A concise and effective marketing message tailored to them.`

	return fmt.Sprintf(prompt, noHyphens, productInfo, targetAudience), jsonOnlySystemPrompt
}
