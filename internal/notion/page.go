// Package notion registers lookup results as pages of a Notion database.
// https://developers.notion.com/reference/post-page
package notion

import (
	"encoding/json"

	"github.com/at-ishikawa/ogura-an/internal/meaning"
)

// Property names of the target database.
const (
	PropertyWord      = "Word"
	PropertyMeaning   = "Meaning"
	PropertyUsage     = "Usage"
	PropertyTags      = "Tags"
	PropertyCreatedAt = "CreatedAt"
)

type CreatePageRequest struct {
	Parent     Parent         `json:"parent"`
	Properties PageProperties `json:"properties"`
}

type Parent struct {
	DatabaseID string `json:"database_id"`
}

type PageProperties struct {
	Word      TitleProperty       `json:"Word"`
	Meaning   RichTextProperty    `json:"Meaning"`
	Usage     RichTextProperty    `json:"Usage"`
	Tags      MultiSelectProperty `json:"Tags"`
	CreatedAt DateProperty        `json:"CreatedAt"`
}

type TitleProperty struct {
	Title []RichText `json:"title"`
}

type RichTextProperty struct {
	RichText []RichText `json:"rich_text"`
}

type RichText struct {
	Text Text `json:"text"`
}

type Text struct {
	Content string `json:"content"`
}

type MultiSelectProperty struct {
	MultiSelect []SelectOption `json:"multi_select"`
}

type SelectOption struct {
	Name string `json:"name"`
}

type DateProperty struct {
	Date Date `json:"date"`
}

type Date struct {
	Start string `json:"start"`
}

// Page is the created page as returned by Notion.
type Page struct {
	Object      string `json:"object"`
	ID          string `json:"id"`
	URL         string `json:"url"`
	CreatedTime string `json:"created_time"`
	// Raw is the whole response body.
	Raw json.RawMessage `json:"-"`
}

// APIError is the error body Notion returns with a 4xx or 5xx status.
type APIError struct {
	Object  string `json:"object"`
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func richText(content string) []RichText {
	return []RichText{{Text: Text{Content: content}}}
}

// BuildCreatePageRequest maps a lookup result to the page creation payload.
// Empty tag names are left out because Notion rejects options without a name.
func BuildCreatePageRequest(databaseID string, result meaning.Result, createdAt string) CreatePageRequest {
	tags := result.Tags()
	options := make([]SelectOption, 0, len(tags))
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		options = append(options, SelectOption{Name: tag})
	}

	return CreatePageRequest{
		Parent: Parent{DatabaseID: databaseID},
		Properties: PageProperties{
			Word:      TitleProperty{Title: richText(result.Word)},
			Meaning:   RichTextProperty{RichText: richText(result.Meaning)},
			Usage:     RichTextProperty{RichText: richText(result.Usage)},
			Tags:      MultiSelectProperty{MultiSelect: options},
			CreatedAt: DateProperty{Date: Date{Start: createdAt}},
		},
	}
}
