package corpus

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/castellano-app/castellano-backend/internal/data/repos/practice"
	types "github.com/castellano-app/castellano-backend/internal/domain"
	"github.com/castellano-app/castellano-backend/internal/platform/logger"
)

// Entry is one verb from a frequency list: lemma plus its corpus count, with
// Rank assigned from file position. The list is expected to already be sorted
// by descending frequency.
type Entry struct {
	Infinitive string
	Rank       int
	Count      int
}

// Stats summarizes a Populate run.
type Stats struct {
	Added   int
	Updated int
	Skipped int
}

// ParseVerbsFile reads a TubeLex-style TSV: one verb per line, lemma in the
// first column and frequency count in the last. Header lines and lines whose
// count does not parse are skipped rather than failing the whole import.
func ParseVerbsFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open verbs file: %w", err)
	}
	defer f.Close()

	var entries []Entry
	rank := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			continue
		}
		lemma := strings.ToLower(strings.TrimSpace(fields[0]))
		count, err := strconv.Atoi(strings.TrimSpace(fields[len(fields)-1]))
		if err != nil || lemma == "" {
			continue
		}
		rank++
		entries = append(entries, Entry{Infinitive: lemma, Rank: rank, Count: count})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read verbs file: %w", err)
	}
	return entries, nil
}

// Populate upserts the parsed entries into the verb table. Existing verbs get
// their rank and count refreshed; unknown lemmas are created.
func Populate(ctx context.Context, db *gorm.DB, verbs practice.VerbRepo, entries []Entry, log *logger.Logger) (Stats, error) {
	var stats Stats
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, e := range entries {
			existing, err := verbs.GetByInfinitive(ctx, tx, e.Infinitive)
			if err != nil {
				return fmt.Errorf("lookup %q: %w", e.Infinitive, err)
			}
			if existing == nil {
				_, err := verbs.Create(ctx, tx, []*types.Verb{{
					ID:           uuid.New(),
					Infinitive:   e.Infinitive,
					TubelexRank:  &e.Rank,
					TubelexCount: &e.Count,
				}})
				if err != nil {
					return fmt.Errorf("create %q: %w", e.Infinitive, err)
				}
				stats.Added++
				continue
			}

			if existing.TubelexRank != nil && *existing.TubelexRank == e.Rank &&
				existing.TubelexCount != nil && *existing.TubelexCount == e.Count {
				stats.Skipped++
				continue
			}
			existing.TubelexRank = &e.Rank
			existing.TubelexCount = &e.Count
			if err := verbs.Update(ctx, tx, existing); err != nil {
				return fmt.Errorf("update %q: %w", e.Infinitive, err)
			}
			stats.Updated++
		}
		return nil
	})
	if err != nil {
		return Stats{}, err
	}
	if log != nil {
		log.Info("Verb corpus populated",
			"added", stats.Added, "updated", stats.Updated, "skipped", stats.Skipped)
	}
	return stats, nil
}
