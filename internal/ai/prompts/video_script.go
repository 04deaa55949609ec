package prompts

import "fmt"

// GetVideoScriptPrompt renders the video script prompt.
func GetVideoScriptPrompt(topic, platform, duration string) (string, string) {
	prompt := `You are an expert scriptwriter for digital content. Create a compelling video script based on the following details. The tone should be appropriate for the target platform. %s

Video Topic: %s
Target Platform: %s
Desired Duration: %s

The script must have:
- A catchy, SEO friendly title.
- An engaging hook for the first 3-5 seconds.
- A clear structure with scenes numbered from 1, describing detailed visuals (camera shots, on screen text) and dialogue/voiceover.
- A strong call to action (CTA) at the end.`

	return fmt.Sprintf(prompt, noHyphens, topic, platform, duration), jsonOnlySystemPrompt
}
