package lexicon

import "embed"

// dataFS embeds the dictionary data at build time.
//
//go:embed *.json
var dataFS embed.FS
