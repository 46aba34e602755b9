package catalog

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"gorm.io/gorm"

	"github.com/castellano-app/castellano-backend/internal/data/repos/practice"
	"github.com/castellano-app/castellano-backend/internal/platform/logger"
)

var (
	// ErrInvalidClass reports a class name that matches no known pattern.
	ErrInvalidClass = errors.New("invalid verb class")
	// ErrNoRankedVerbs reports an empty frequency ranking.
	ErrNoRankedVerbs = errors.New("no ranked verbs in catalog")
)

var topClassPattern = regexp.MustCompile(`(?i)^top([1-9][0-9]*)$`)

// Catalog resolves named verb classes to ordered lemma lists. The only
// built-in class shape is top<N>: the N most frequent verbs by corpus rank.
// New curated classes slot in here without changing the calling contract.
type Catalog struct {
	verbs practice.VerbRepo
	log   *logger.Logger
}

func NewCatalog(verbs practice.VerbRepo, baseLog *logger.Logger) *Catalog {
	return &Catalog{verbs: verbs, log: baseLog.With("service", "VerbCatalog")}
}

// VerbsForClass resolves className to lemmas ordered by ascending frequency
// rank.
func (c *Catalog) VerbsForClass(ctx context.Context, tx *gorm.DB, className string) ([]string, error) {
	m := topClassPattern.FindStringSubmatch(className)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidClass, className)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidClass, className)
	}

	rows, err := c.verbs.ListRanked(ctx, tx, n)
	if err != nil {
		c.log.Warn("VerbsForClass: list ranked failed", "error", err, "class", className)
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoRankedVerbs
	}

	lemmas := make([]string, 0, len(rows))
	for _, v := range rows {
		lemmas = append(lemmas, v.Infinitive)
	}
	return lemmas, nil
}
