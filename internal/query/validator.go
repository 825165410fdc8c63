// Package query owns every piece of SQL text whose shape depends on
// request input. Sort columns and directions are interpolated into
// statements only after passing the allow-lists here; literal values are
// always bound parameters. Nothing outside this package assembles dynamic
// SQL.
package query

import (
	"strings"

	"github.com/news-board-api/internal/apierr"
)

// Rejection messages for the three list parameters
const (
	MsgInvalidSortBy = "Bad Request: Invalid Sort_By Query"
	MsgInvalidOrder  = "Bad Request: Invalid Order Query"
	MsgInvalidTopic  = "Bad Request: Invalid Topic Query"
)

// sortColumns is the fixed set of columns the listing may be sorted by.
// comment_count is a derived alias, not a table column.
var sortColumns = map[string]bool{
	"title":           true,
	"topic":           true,
	"author":          true,
	"created_at":      true,
	"votes":           true,
	"article_img_url": true,
	"comment_count":   true,
}

// Validator checks listing parameters against fixed allow-lists. It is
// pure: construction captures the known topic slugs and Validate never
// touches storage.
type Validator struct {
	topics map[string]bool
}

// NewValidator creates a Validator accepting the given topic slugs
func NewValidator(topicSlugs []string) *Validator {
	topics := make(map[string]bool, len(topicSlugs))
	for _, slug := range topicSlugs {
		topics[slug] = true
	}
	return &Validator{topics: topics}
}

// Validate checks sort_by, order, and topic. Empty parameters are always
// valid; defaults are applied downstream in the builder.
func (v *Validator) Validate(sortBy, order, topic string) error {
	if sortBy != "" && !sortColumns[sortBy] {
		return apierr.BadRequest(MsgInvalidSortBy)
	}
	if order != "" && !isValidOrder(order) {
		return apierr.BadRequest(MsgInvalidOrder)
	}
	if topic != "" && !v.topics[topic] {
		return apierr.BadRequest(MsgInvalidTopic)
	}
	return nil
}

func isValidOrder(order string) bool {
	switch strings.ToLower(order) {
	case "asc", "desc":
		return true
	}
	return false
}
