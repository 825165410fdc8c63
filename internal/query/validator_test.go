package query_test

import (
	"errors"
	"testing"

	"github.com/news-board-api/internal/apierr"
	"github.com/news-board-api/internal/query"
)

func newTestValidator() *query.Validator {
	return query.NewValidator([]string{"mitch", "cats", "paper"})
}

func TestValidate_AllowedValues(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name   string
		sortBy string
		order  string
		topic  string
	}{
		{"all empty", "", "", ""},
		{"every sort column: title", "title", "", ""},
		{"every sort column: topic", "topic", "", ""},
		{"every sort column: author", "author", "", ""},
		{"every sort column: created_at", "created_at", "", ""},
		{"every sort column: votes", "votes", "", ""},
		{"every sort column: article_img_url", "article_img_url", "", ""},
		{"derived sort column", "comment_count", "", ""},
		{"lowercase order", "votes", "asc", ""},
		{"uppercase order", "votes", "DESC", ""},
		{"mixed case order", "votes", "Asc", ""},
		{"known topic", "", "", "cats"},
		{"everything at once", "comment_count", "ASC", "mitch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := v.Validate(tt.sortBy, tt.order, tt.topic); err != nil {
				t.Errorf("Validate(%q, %q, %q) = %v, want nil", tt.sortBy, tt.order, tt.topic, err)
			}
		})
	}
}

func TestValidate_Rejections(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name    string
		sortBy  string
		order   string
		topic   string
		wantMsg string
	}{
		{"unknown sort column", "bananas", "", "", query.MsgInvalidSortBy},
		{"plausible but disallowed column", "body", "", "", query.MsgInvalidSortBy},
		{"injection in sort column", "votes; DROP TABLE articles", "", "", query.MsgInvalidSortBy},
		{"unknown order", "", "sideways", "", query.MsgInvalidOrder},
		{"injection in order", "", "asc; --", "", query.MsgInvalidOrder},
		{"unknown topic", "", "", "dogs", query.MsgInvalidTopic},
		{"sort checked before order", "bananas", "sideways", "dogs", query.MsgInvalidSortBy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.sortBy, tt.order, tt.topic)
			if err == nil {
				t.Fatalf("Validate(%q, %q, %q) = nil, want rejection", tt.sortBy, tt.order, tt.topic)
			}

			var apiErr *apierr.Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("Expected *apierr.Error, got %T", err)
			}
			if apiErr.Status != 400 {
				t.Errorf("Expected status 400, got %d", apiErr.Status)
			}
			if apiErr.Msg != tt.wantMsg {
				t.Errorf("Expected msg %q, got %q", tt.wantMsg, apiErr.Msg)
			}
		})
	}
}

func TestValidate_EmptyTopicAllowList(t *testing.T) {
	v := query.NewValidator(nil)

	if err := v.Validate("", "", ""); err != nil {
		t.Errorf("Empty parameters should pass even with no topics: %v", err)
	}
	if err := v.Validate("", "", "mitch"); err == nil {
		t.Error("Any topic should be rejected when the allow-list is empty")
	}
}
