package mdcode

import "regexp"

const fence = "```"

func fencePattern(lang string) *regexp.Regexp {
	return regexp.MustCompile(`(?ms)^` + fence + regexp.QuoteMeta(lang) + `\r?\n(.*?)(?:\r?\n)?^[[:blank:]]*` +
		fence + `[[:blank:]]*\r?$`)
}

// Unfence scans a Markdown document and returns the bodies of all fenced code
// blocks tagged with lang, in the order they appear.
//
// The opening fence must start a line and carry exactly lang before its line
// break. The body runs up to the nearest closing fence on its own line, which
// may be indented; the line break ending the last body line is not part of
// the code.
func Unfence(source []byte, lang string) Blocks {
	locs := fencePattern(lang).FindAllSubmatchIndex(source, -1)
	if len(locs) == 0 {
		return nil
	}

	blocks := make(Blocks, 0, len(locs))

	for _, loc := range locs {
		blocks = append(blocks, &Block{Lang: lang, Code: source[loc[2]:loc[3]]})
	}

	return blocks
}
