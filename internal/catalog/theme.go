package catalog

import (
	"github.com/alecthomas/chroma/v2"
)

// base16OceanDark is the built-in default theme, assembled from the base16
// ocean palette. The engine's bundled styles do not include it, but it is the
// palette users of the original tool expect by default.
var base16OceanDark = chroma.MustNewStyle("base16-ocean.dark", chroma.StyleEntries{
	chroma.Background:          "#c0c5ce bg:#2b303b",
	chroma.Text:                "#c0c5ce",
	chroma.Error:               "#bf616a",
	chroma.Comment:             "#65737e",
	chroma.CommentPreproc:      "#b48ead",
	chroma.Keyword:             "#b48ead",
	chroma.KeywordType:         "#ebcb8b",
	chroma.Operator:            "#c0c5ce",
	chroma.Punctuation:         "#c0c5ce",
	chroma.Name:                "#c0c5ce",
	chroma.NameAttribute:       "#bf616a",
	chroma.NameBuiltin:         "#96b5b4",
	chroma.NameClass:           "#ebcb8b",
	chroma.NameConstant:        "#d08770",
	chroma.NameDecorator:       "#96b5b4",
	chroma.NameException:       "#bf616a",
	chroma.NameFunction:        "#8fa1b3",
	chroma.NameTag:             "#bf616a",
	chroma.NameVariable:        "#bf616a",
	chroma.Literal:             "#d08770",
	chroma.LiteralNumber:       "#d08770",
	chroma.LiteralString:       "#a3be8c",
	chroma.LiteralStringEscape: "#96b5b4",
	chroma.GenericDeleted:      "#bf616a",
	chroma.GenericInserted:     "#a3be8c",
	chroma.GenericHeading:      "#8fa1b3 bold",
	chroma.GenericSubheading:   "#8fa1b3",
	chroma.GenericEmph:         "italic",
	chroma.GenericStrong:       "bold",
})
