package reply

import (
	"fmt"
	"strings"
)

// Tone guidance per platform. Lookup is case-insensitive; anything unlisted
// gets the generic profile, so adding a platform is a data change here.
var platformGuidance = map[string]string{
	"twitter":   "Keep it concise, possibly witty or conversational. Hashtags are common.",
	"x":         "Keep it concise, possibly witty or conversational. Hashtags are common.",
	"linkedin":  "Maintain a professional but engaging tone. Focus on insights, encouragement, or relevant questions.",
	"instagram": "Be visually oriented (even if text-only reply), friendly, and often use emojis. Keep it relatively short and positive.",
}

const genericGuidance = "Be authentic, engaging, and relevant to the post."

// GuidanceFor returns the tone profile for a platform, falling back to the
// generic profile for unknown names.
func GuidanceFor(platform string) string {
	if g, ok := platformGuidance[strings.ToLower(strings.TrimSpace(platform))]; ok {
		return g
	}
	return genericGuidance
}

const promptTemplate = `You are an expert social media user tasked with writing replies.
Your goal is to generate a reply that is indistinguishable from one written by a real, thoughtful human.

**Context:**
- **Platform:** %s
- **Original Post:** "%s"

**Instructions:**
1. **Analyze:** Understand the tone, style, intent (e.g., sharing news, asking question, expressing opinion), and context of the original post.
2. **Platform Nuance:** Consider the typical communication style for %s. %s
3. **Generate Reply:** Write a reply that:
   - Is authentic and sounds like a real person genuinely engaging with the post.
   - Directly relates to the content of the original post.
   - Matches the likely tone and context (unless a contrasting tone is clearly appropriate and human-like, e.g., gentle disagreement).
   - Is concise and easy to read.
   - **Crucially, avoids AI giveaways:** Do NOT use overly formal language, generic phrases ("That's interesting!", "Great post!"), repetitive sentence structures, or language that feels unnaturally objective or detached. Do not sound like a chatbot or assistant.
   - If appropriate for the platform and context, consider adding relevant emojis or hashtags, but don't overdo it.
4. **Output ONLY the reply text.** Do not include any preamble, explanation, or quotation marks around the reply itself.

**Generate the human-like reply now based on the provided Platform and Original Post:**`

// BuildPrompt assembles the generation instruction for one post.
func BuildPrompt(platform, postText string) string {
	return fmt.Sprintf(promptTemplate, platform, postText, platform, GuidanceFor(platform))
}
