// Package output serializes graph results to JSON, CSV, XLSX and SVG.
package output

import (
	"encoding/json"

	"github.com/ukaji3/prismgraph-go/pkg/prismgraph/models"
)

// ToJSON serializes a 2D result to JSON.
func ToJSON(r *models.GraphResult, pretty bool) ([]byte, error) {
	return marshal(r, pretty)
}

// SurfaceToJSON serializes a 3D result to JSON.
func SurfaceToJSON(r *models.SurfaceResult, pretty bool) ([]byte, error) {
	return marshal(r, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
