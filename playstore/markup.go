package playstore

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/mo"
)

// Class names of the "additional information" and "section" blocks on older
// page revisions. Google rotates these sporadically; when they stop matching,
// Parse falls through to the embedded-data strategy.
const (
	classInfoBlock    = ".hAyfc"
	classInfoLabel    = ".BgcNfc"
	classInfoValue    = ".htlgb"
	classSection      = ".W4P4ne"
	classSectionTitle = ".wSaTQd"
	classSectionBody  = ".PHBdkd"
	classSectionText  = ".DWPxHb"

	labelCurrentVersion = "Current Version"
	labelWhatsNew       = "What's New"
)

// parseMarkup reads the listing from the structured markup. The version is
// mandatory for the strategy to succeed; release notes are best-effort.
func parseMarkup(doc *goquery.Document) mo.Option[App] {
	rawVersion := findLabeledValue(doc)
	if rawVersion == "" {
		return mo.None[App]()
	}

	return mo.Some(App{
		Version:      rawVersion,
		ReleaseNotes: findWhatsNew(doc),
	})
}

// findLabeledValue locates the additional-info block labeled "Current Version"
// and returns its adjacent value text.
func findLabeledValue(doc *goquery.Document) string {
	var value string
	doc.Find(classInfoBlock).EachWithBreak(func(_ int, block *goquery.Selection) bool {
		if strings.TrimSpace(block.Find(classInfoLabel).Text()) != labelCurrentVersion {
			return true
		}
		value = strings.TrimSpace(block.Find(classInfoValue).Text())
		return false
	})
	return value
}

// findWhatsNew locates the "What's New" section and descends to its body text.
func findWhatsNew(doc *goquery.Document) mo.Option[string] {
	notes := mo.None[string]()
	doc.Find(classSection).EachWithBreak(func(_ int, section *goquery.Selection) bool {
		if strings.TrimSpace(section.Find(classSectionTitle).Text()) != labelWhatsNew {
			return true
		}

		text := section.Find(classSectionBody).Find(classSectionText).Text()
		if text = strings.TrimSpace(text); text != "" {
			notes = mo.Some(text)
		}
		return false
	})
	return notes
}
