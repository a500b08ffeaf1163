package impl

import (
	"context"
	"fmt"

	"vitrina/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// maxSlugAttempts bounds the numbered-suffix probing before falling back to
// a random suffix.
const maxSlugAttempts = 20

// uniqueSlug derives a URL-safe slug from a business name, probing numbered
// suffixes until a free one is found.
func uniqueSlug(ctx context.Context, businessRepo repository.BusinessRepository, name string) (string, error) {
	base := slug.Make(name)
	candidate := base

	for attempt := 2; attempt <= maxSlugAttempts+1; attempt++ {
		exists, err := businessRepo.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, attempt)
	}

	// Heavily contested name. A random suffix always terminates.
	return fmt.Sprintf("%s-%s", base, uuid.NewString()[:8]), nil
}
