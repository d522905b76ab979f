package roster

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
	"lineupwatch-backend/lib/htmlutil"
	"lineupwatch-backend/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/roster")

// Parser walks a roster page and produces availability verdicts, either
// for one requested athlete or for every roster entry in bulk. Bulk
// results are persisted into the verdict cache it holds.
type Parser struct {
	Names      NameMapper
	Classifier Classifier
	Verdicts   *VerdictCache
	// NameSelector selects roster-name nodes.
	NameSelector string
	// ReducedHTML strips script/style/comment blocks before the
	// structural parse. A performance path only, classification results
	// are identical to the full parse.
	ReducedHTML bool
}

func NewParser(names NameMapper, classifier Classifier, verdicts *VerdictCache) Parser {
	return Parser{
		Names:        names,
		Classifier:   classifier,
		Verdicts:     verdicts,
		NameSelector: DefaultNameSelector,
	}
}

// Key builds the verdict cache key for a caller-supplied spelling. The
// name component is always the canonicalized, normalized form.
func (p Parser) Key(url, name string, kind FilterKind) VerdictKey {
	return VerdictKey{
		URL:    url,
		Name:   textutil.Normalize(p.Names.Canonicalize(name)),
		Filter: kind,
	}
}

var (
	scriptBlockRegex = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	styleBlockRegex  = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style>`)
	htmlCommentRegex = regexp.MustCompile(`(?s)<!--.*?-->`)
)

// ReduceHTML removes script, style and comment blocks. None of them can
// contain roster nodes, so parsing the reduced page classifies
// identically while building a much smaller tree.
func ReduceHTML(html string) string {
	html = scriptBlockRegex.ReplaceAllString(html, "")
	html = styleBlockRegex.ReplaceAllString(html, "")
	return htmlCommentRegex.ReplaceAllString(html, "")
}

func (p Parser) document(html string) (*goquery.Document, error) {
	if p.ReducedHTML {
		html = ReduceHTML(html)
	}
	return goquery.NewDocumentFromReader(strings.NewReader(html))
}

// ParseOne classifies a single requested athlete on one page snapshot.
// A name that appears nowhere in the raw page text short-circuits to
// not-in-squad without a structural parse.
func (p Parser) ParseOne(ctx context.Context, html, name string, filter Filter) Verdict {
	ctx, span := tracer.Start(ctx, "ParseOne")
	defer span.End()
	span.SetAttributes(
		attribute.String("name", name),
		attribute.String("filter", string(filter.Kind)),
	)

	now := time.Now()
	name = strings.TrimSpace(name)
	canonical := p.Names.Canonicalize(name)

	if !textutil.ContainsFold(html, name) && !textutil.ContainsFold(html, canonical) {
		span.AddEvent("name absent from raw page text")
		return Unavailable(ReasonNotInSquad, now)
	}

	doc, err := p.document(html)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse roster page")
		return Unavailable(fmt.Sprintf("roster page could not be parsed: %v", err), now)
	}

	var matched *goquery.Selection
	doc.Find(p.NameSelector).EachWithBreak(func(i int, entry *goquery.Selection) bool {
		if !p.Classifier.InContainer(entry) {
			return true
		}
		if !filter.Matches(entry) {
			return true
		}
		text := htmlutil.SelectionText(entry)
		if textutil.EitherContains(text, canonical) || textutil.EitherContains(text, name) {
			matched = entry
			// first match in document order wins
			return false
		}
		return true
	})

	if matched == nil {
		return Unavailable(ReasonNotInSquad, now)
	}
	return p.Classifier.Classify(matched, now)
}

// ParseAll classifies every in-container roster entry under every filter
// variant in filters plus the implicit "none", upserting each verdict
// into the verdict cache. All entries written by one pass share the
// timestamp captured at its start. Returns the number of entries
// written.
func (p Parser) ParseAll(ctx context.Context, url, html string, filters []Filter) int {
	ctx, span := tracer.Start(ctx, "ParseAll")
	defer span.End()
	span.SetAttributes(attribute.String("url", url))

	start := time.Now()

	doc, err := p.document(html)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse roster page")
		return 0
	}

	variants := make([]Filter, 0, len(filters)+1)
	hasNone := false
	for _, f := range filters {
		if f.Kind == FilterNone {
			hasNone = true
		}
		variants = append(variants, f)
	}
	if !hasNone {
		variants = append(variants, NoFilter)
	}

	count := 0
	doc.Find(p.NameSelector).Each(func(i int, entry *goquery.Selection) {
		if !p.Classifier.InContainer(entry) {
			return
		}
		name := htmlutil.SelectionText(entry)
		if name == "" {
			return
		}
		canonical := textutil.Normalize(p.Names.Canonicalize(name))

		for _, f := range variants {
			if !f.Matches(entry) {
				continue
			}
			verdict := p.Classifier.Classify(entry, start)
			p.Verdicts.Put(VerdictKey{
				URL:    url,
				Name:   canonical,
				Filter: f.Kind,
			}, verdict, start)
			count++
		}
	})

	span.SetAttributes(attribute.Int("entries_written", count))
	return count
}

// RosterNames returns the cleaned text of every in-container roster
// node, deduplicated, in document order.
func (p Parser) RosterNames(html string) []string {
	doc, err := p.document(html)
	if err != nil {
		return nil
	}

	seen := map[string]struct{}{}
	var names []string
	doc.Find(p.NameSelector).Each(func(i int, entry *goquery.Selection) {
		if !p.Classifier.InContainer(entry) {
			return
		}
		name := htmlutil.SelectionText(entry)
		if name == "" {
			return
		}
		if _, ok := seen[textutil.Normalize(name)]; ok {
			return
		}
		seen[textutil.Normalize(name)] = struct{}{}
		names = append(names, name)
	})
	return names
}
