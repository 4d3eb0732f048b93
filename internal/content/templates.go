// ABOUTME: Template families for each engagement type
// ABOUTME: Fixed title/body tables parameterized by keyword, topic, company

package content

import (
	"fmt"
	"strings"

	"github.com/harper/mastermind/internal/models"
)

func questionTemplates(keyword string) []template {
	return []template{
		{
			title: fmt.Sprintf("Best %s?", keyword),
			body:  fmt.Sprintf("Just like it says in the title, what is the best %s? I'm looking for something that works well and saves time. Any recommendations appreciated.", keyword),
		},
		{
			title: fmt.Sprintf("What's your go-to for %s?", keyword),
			body:  fmt.Sprintf("Been searching for a good solution for %s. What do you all use? Ideally something that's not too complicated to get started with.", keyword),
		},
		{
			title: fmt.Sprintf("%s - what actually works?", capitalizeFirst(keyword)),
			body:  fmt.Sprintf("Tried a few options for %s but nothing's clicked yet. What are people here actually using day-to-day?", keyword),
		},
		{
			title: fmt.Sprintf("Recommendations for %s?", keyword),
			body:  fmt.Sprintf("Looking for suggestions on %s. I've heard a few names thrown around but wanted to get real opinions before committing to anything.", keyword),
		},
	}
}

func recommendationTemplates(keyword, shortTopic string) []template {
	return []template{
		{
			title: fmt.Sprintf("Need help with %s", shortTopic),
			body:  fmt.Sprintf("My team is struggling with %s. We spend way too much time on this and it's becoming a bottleneck. What tools or approaches have worked for you?", keyword),
		},
		{
			title: fmt.Sprintf("Looking for %s solutions", shortTopic),
			body:  fmt.Sprintf("Currently evaluating options for %s. We need something reliable that won't require a ton of setup. Open to both free and paid options.", keyword),
		},
		{
			title: fmt.Sprintf("How do you handle %s?", shortTopic),
			body:  fmt.Sprintf("Curious how others approach %s. Our current workflow is inefficient and I'm looking for better alternatives.", keyword),
		},
	}
}

func comparisonTemplates(rawKeyword, community string, company models.CompanyInfo) []template {
	lower := strings.ToLower(rawKeyword)
	if strings.Contains(lower, " vs ") || strings.Contains(lower, " versus ") {
		// The keyword already names both sides; no competitor substitution.
		return []template{
			{
				title: fmt.Sprintf("%s?", capitalizeFirst(rawKeyword)),
				body:  "Trying to figure out what's the best one for making presentations. Has anyone tried both?",
			},
			{
				title: fmt.Sprintf("%s - which is better?", capitalizeFirst(rawKeyword)),
				body:  "Trying to decide between these two. What are people's experiences?",
			},
			{
				title: fmt.Sprintf("Anyone compared %s?", rawKeyword),
				body:  "Looking for real experiences comparing these options. Which one worked better for you?",
			},
		}
	}

	shortTopic := extractCoreTopic(cleanKeyword(rawKeyword))
	competitors := competitorNames(community, company.Name)
	if len(competitors) == 0 {
		return []template{
			{
				title: fmt.Sprintf("Comparing options for %s", shortTopic),
				body:  fmt.Sprintf("Need to pick between a few tools for %s. Anyone have experience comparing different solutions?", shortTopic),
			},
			{
				title: fmt.Sprintf("Best %s solution?", shortTopic),
				body:  fmt.Sprintf("Looking for the best option for %s. What are people using? Open to recommendations.", shortTopic),
			},
			{
				title: fmt.Sprintf("%s - what's working for you?", shortTopic),
				body:  fmt.Sprintf("Trying to find a good solution for %s. What tools or approaches have you found effective?", shortTopic),
			},
		}
	}

	competitor := competitors[0]
	return []template{
		{
			title: fmt.Sprintf("%s vs %s for %s?", company.Name, competitor, shortTopic),
			body:  fmt.Sprintf("Trying to figure out what's the best option for %s. Has anyone used both? Looking for real experiences.", shortTopic),
		},
		{
			title: fmt.Sprintf("%s alternative for %s?", competitor, shortTopic),
			body:  fmt.Sprintf("I've been using %s but wondering if there's something better for %s. Heard about a few alternatives but not sure what's worth trying.", competitor, shortTopic),
		},
		{
			title: fmt.Sprintf("Comparing options for %s", shortTopic),
			body:  fmt.Sprintf("Need to pick between a few tools for %s. Anyone have experience comparing different solutions?", shortTopic),
		},
	}
}

func discussionTemplates(shortTopic string) []template {
	return []template{
		{
			title: fmt.Sprintf("How has %s changed your workflow?", shortTopic),
			body:  fmt.Sprintf("Been thinking about how %s fits into daily work. Curious to hear how others have integrated it and what impact it's had.", shortTopic),
		},
		{
			title: fmt.Sprintf("%s - worth the investment?", capitalizeFirst(shortTopic)),
			body:  fmt.Sprintf("Debating whether to invest time/money into %s. For those who've made the switch, was it worth it?", shortTopic),
		},
		{
			title: fmt.Sprintf("What I've learned about %s", shortTopic),
			body:  fmt.Sprintf("After spending some time exploring %s, I'm curious what others have discovered. What's working? What's overrated?", shortTopic),
		},
	}
}

// competitorTable maps communities to products their members actually talk
// about. The company's own name is excluded case-insensitively.
var competitorTable = map[string][]string{
	"r/PowerPoint":   {"PowerPoint", "Google Slides", "Keynote", "Prezi"},
	"r/GoogleSlides": {"Google Slides", "PowerPoint", "Canva", "Keynote"},
	"r/Canva":        {"Canva", "Adobe Express", "Figma", "PowerPoint"},
	"r/ChatGPT":      {"ChatGPT", "Claude", "Gemini", "Copilot"},
	"r/ClaudeAI":     {"Claude", "ChatGPT", "Gemini", "Perplexity"},
}

func competitorNames(community, exclude string) []string {
	var filtered []string
	for _, c := range competitorTable[community] {
		if !strings.EqualFold(c, exclude) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
