package service

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"blog-api/internal/domain"
	"blog-api/internal/dto"
)

const (
	isoDateLayout = "2006-01-02T15:04:05.000Z07:00"
	dayLayout     = "2006-01-02"
)

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// formatISODate renders a timestamp the way browsers print Date.toISOString
func formatISODate(t time.Time) string {
	return t.UTC().Format(isoDateLayout)
}

func formatDay(t time.Time) string {
	return t.UTC().Format(dayLayout)
}

// truncateRunes cuts s to max runes and appends suffix only when something was cut
func truncateRunes(s string, max int, suffix string) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + suffix
}

// defaultExcerpt derives an excerpt from post content with markup removed
func defaultExcerpt(content string) string {
	plain := strings.TrimSpace(htmlTagPattern.ReplaceAllString(content, ""))
	runes := []rune(plain)
	if len(runes) > excerptLength {
		runes = runes[:excerptLength]
	}
	return string(runes) + "..."
}

// uniqueUUIDs removes duplicates while keeping first-seen order
func uniqueUUIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	result := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}

// toAuthorResponse yields null name and avatar for a missing user
func toAuthorResponse(user *domain.User) dto.AuthorResponse {
	if user == nil {
		return dto.AuthorResponse{}
	}
	name := user.Name
	return dto.AuthorResponse{Name: &name, Avatar: user.Avatar}
}

func authorName(user *domain.User) *string {
	if user == nil {
		return nil
	}
	name := user.Name
	return &name
}
