package prismgraph

import (
	"fmt"

	"github.com/google/uuid"
)

// Palette is the fixed series color cycle.
var Palette = [8]string{
	"#2563eb",
	"#dc2626",
	"#16a34a",
	"#9333ea",
	"#ea580c",
	"#0891b2",
	"#db2777",
	"#65a30d",
}

// ColorFor returns the palette color for series index i.
// Negative indices wrap around from the end.
func ColorFor(i int) string {
	n := len(Palette)
	return Palette[(i%n+n)%n]
}

// seriesNamespace scopes the name-based series ids.
var seriesNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/ukaji3/prismgraph-go/series"))

// seriesID derives a stable id from the series position and expression, so
// repeated computations of the same input produce identical ids.
func seriesID(index int, expression string) string {
	return uuid.NewSHA1(seriesNamespace, []byte(fmt.Sprintf("%d:%s", index, expression))).String()
}
