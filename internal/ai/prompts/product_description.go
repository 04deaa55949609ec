package prompts

import "fmt"

// GetProductDescriptionPrompt renders the product description prompt.
func GetProductDescriptionPrompt(productName, features, tone string) (string, string) {
	prompt := `You are an expert copywriter specializing in e-commerce. Write a compelling product description for the following product. %s

Product Name: %s

Key Features:
%s

Tone of Voice: %s

The description should be persuasive and engaging for the target customer. Structure your response into these three distinct parts:
1.  **Headline:** A catchy, attention grabbing headline for the product.
2.  **Paragraph:** A short paragraph (2-3 sentences) that focuses on the *benefits* of the features, explaining how they solve a problem or improve the customer's life.
3.  **Features:** A list of the key features.`

	return fmt.Sprintf(prompt, noHyphens, productName, features, tone), jsonOnlySystemPrompt
}
