package goquery

import (
	"strings"

	"github.com/fwojciec/escposdoc"
)

const versionSelector = "h2.Head-C"

// ParseVersion extracts the reference revision from the version page.
//
// The heading is a sentence ending in the revision number:
//
//	<h2 class="Head-C" id="QAccess0">ESC/POS<sup>®</sup> Command Reference Revision 3.40
//	</h2>
func ParseVersion(html string) (string, error) {
	doc, err := newDocument(html)
	if err != nil {
		return "", err
	}

	h2 := doc.Find(versionSelector).First()
	if h2.Length() == 0 {
		return "", escposdoc.Errorf(escposdoc.ESTRUCTURE, "unable to find the version heading %q", versionSelector)
	}
	text := cellText(h2)
	if text == "" {
		return "", escposdoc.Errorf(escposdoc.ESTRUCTURE, "version heading is empty")
	}

	fields := strings.Fields(text)
	version := fields[len(fields)-1]
	if version == "" {
		return "", escposdoc.Errorf(escposdoc.ESTRUCTURE, "version is empty in heading %q", text)
	}
	return version, nil
}
