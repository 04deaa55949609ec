package prompts

import "fmt"

// GetBusinessNamePrompt renders the name generator prompt. keywords may be empty.
func GetBusinessNamePrompt(description, keywords string) (string, string) {
	prompt := `You are a branding expert specializing in creating catchy and memorable business names. Generate a list of at least 10 business names based on the following description and keywords. %s

Business Description:
%s

Keywords:
%s

The names should be creative, unique, and easy to pronounce. Provide a diverse list with different styles (e.g., modern, classic, playful, descriptive).`

	return fmt.Sprintf(prompt, noHyphens, description, keywords), jsonOnlySystemPrompt
}
