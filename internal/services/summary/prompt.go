package summary

import (
	"fmt"
	"strconv"

	"github.com/killallgit/secondlife-api/internal/models"
)

const promptTemplate = `Provide a concise, engaging summary (2-3 sentences) about this thrift store:

Name: %s
Address: %s
Category: %s
Rating: %s
Website: %s
Phone: %s

Focus on what makes this store unique, its vibe, and why someone should visit. Be friendly and encouraging about thrifting.`

// BuildPrompt renders the summary prompt, substituting placeholders for absent fields
func BuildPrompt(req models.SummaryRequest) string {
	return fmt.Sprintf(promptTemplate,
		req.Name,
		orDefault(req.Address, "Not provided"),
		orDefault(req.Category, models.LabelThriftStore),
		formatRating(req.Rating),
		orDefault(req.Website, "Not available"),
		orDefault(req.Phone, "Not available"),
	)
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// formatRating renders "4.3/5"; zero counts as unrated
func formatRating(rating *float64) string {
	if rating == nil || *rating == 0 {
		return "No rating"
	}
	return strconv.FormatFloat(*rating, 'f', -1, 64) + "/5"
}
