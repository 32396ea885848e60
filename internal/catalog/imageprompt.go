package catalog

import "fmt"

// imagePromptSuffix pins the visual style and insists on legible labels in
// the teacher's chosen language.
const imagePromptSuffix = `educational diagram, simple line art, with a white background and a simple chalk drawing effect.

**CRITICAL INSTRUCTION:** All text and labels MUST be written perfectly and clearly in **%s**.
- Spelling and grammar in **%s** must be 100%% accurate.
- Use a large, bold, simple, block-letter font.
- The text must be extremely legible and easy for a child to read. This is the most important part of the image.`

// ImagePrompt builds the prompt sent to the image-generation service for a
// template's visual aid. Each image-capable template gets a tailored base
// prompt; anything else falls back to a generic diagram.
func ImagePrompt(templateID int, userInput, language string) string {
	var base string

	switch templateID {
	case 1:
		base = fmt.Sprintf(`A simple 3-panel storyboard for a children's moral story about "%s". Use stick figures and basic shapes.`, userInput)
	case 2:
		base = fmt.Sprintf(`A visual matching exercise for a children's worksheet based on a story about "%s". Column A has simple drawings of 3-4 key elements. Column B has their names.`, userInput)
	case 3:
		base = fmt.Sprintf(`A very simple, labeled diagram of the concept "%s", suitable for a children's classroom. Use simple icons and clear arrows to explain the process.`, userInput)
	case 4:
		base = fmt.Sprintf(`A simple diagram of "%s" for a classroom. Use clear labels and arrows if needed.`, userInput)
	default:
		base = fmt.Sprintf(`A simple educational diagram about "%s".`, userInput)
	}

	return base + " " + fmt.Sprintf(imagePromptSuffix, language, language)
}
