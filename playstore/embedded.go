package playstore

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/buger/jsonparser"
	"github.com/samber/mo"
)

// The details page embeds its data model in script elements of the form
// AF_initDataCallback({key: 'ds:5', hash: '…', data: […], sideChannel: {}});
// which is JavaScript, not JSON: keys are bare and strings are single-quoted.
const (
	dsMarker = "key: 'ds:5'"

	// AF_initDataCallback( is 20 characters; the trailing ); is 2.
	wrapperPrefixLen = 20
	wrapperSuffixLen = 2
)

// Index paths into the repaired payload. These are coupled to an undocumented
// structure Google revises without notice; keeping them here means a shape
// drift is a two-line patch.
var (
	versionPath = []string{"data", "[1]", "[2]", "[140]", "[0]", "[0]", "[0]"}
	notesPath   = []string{"data", "[1]", "[2]", "[144]", "[1]", "[1]"}
)

// payloadRepairer rewrites the script payload into parseable JSON: bare keys
// get quoted, contraction apostrophes become typographic so the remaining
// single quotes can safely turn into double quotes. Argument order matters:
// the bare ' rewrite must come last.
var payloadRepairer = strings.NewReplacer(
	"key:", `"key":`,
	"hash:", `"hash":`,
	"data:", `"data":`,
	"sideChannel:", `"sideChannel":`,
	"d'", "d’",
	"s'", "s’",
	"l'", "l’",
	"#39;", "",
	"'", `"`,
)

// notesRepairer undoes the HTML-entity encoding the page applies to the
// release notes leaf.
var notesRepairer = strings.NewReplacer(
	"d&", "d’",
	"s&", "s’",
	"l&", "l’",
	"<br>", "\n",
	"& ", "&",
	"&amp;", "&",
)

// parseEmbedded reads the listing from the ds:5 script payload. A missing
// marker script, an unparseable payload, or an index-path mismatch all mean
// "no data": the upstream structure drifted, which is expected, not fatal.
func parseEmbedded(doc *goquery.Document) mo.Option[App] {
	script := findMarkerScript(doc)
	if script == "" {
		return mo.None[App]()
	}

	if len(script) <= wrapperPrefixLen+wrapperSuffixLen {
		return mo.None[App]()
	}
	payload := []byte(payloadRepairer.Replace(script[wrapperPrefixLen : len(script)-wrapperSuffixLen]))

	rawVersion, err := jsonparser.GetString(payload, versionPath...)
	if err != nil {
		return mo.None[App]()
	}

	return mo.Some(App{
		Version:      rawVersion,
		ReleaseNotes: extractNotes(payload),
	})
}

// findMarkerScript returns the text of the first script element carrying the
// ds:5 marker, or the empty string.
func findMarkerScript(doc *goquery.Document) string {
	var text string
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !strings.Contains(s.Text(), dsMarker) {
			return true
		}
		text = s.Text()
		return false
	})
	return text
}

// extractNotes walks the release-notes leaf; absence is fine.
func extractNotes(payload []byte) mo.Option[string] {
	raw, err := jsonparser.GetString(payload, notesPath...)
	if err != nil {
		return mo.None[string]()
	}

	notes := strings.TrimSpace(notesRepairer.Replace(raw))
	if notes == "" {
		return mo.None[string]()
	}
	return mo.Some(notes)
}
