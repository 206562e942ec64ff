package api

import "github.com/dmy/realworld-tui/models"

func testDraft() models.ArticleDraft {
	return models.ArticleDraft{
		Title:       "How to instruct a Delta",
		Description: "Conditioning notes",
		Body:        "body",
		TagList:     []string{"hypnopaedia"},
	}
}
