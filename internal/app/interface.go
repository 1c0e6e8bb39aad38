package app

import (
	"context"

	"github.com/at-ishikawa/ogura-an/internal/meaning"
	"github.com/at-ishikawa/ogura-an/internal/notion"
)

//go:generate mockgen -source=interface.go -destination=../mocks/app/mock_interface.go -package=mock_app

// PageCreator persists a lookup result.
type PageCreator interface {
	CreatePage(ctx context.Context, result meaning.Result) (notion.Page, error)
}

// ErrorLogger is the durable error log.
type ErrorLogger interface {
	LogError(kind, message string)
}
