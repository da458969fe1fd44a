// Package schemas maps engine reference documents to their JSON Schemas
// and owns schema compilation, caching and validation.
package schemas

import (
	"path/filepath"
	"regexp"

	"github.com/refdocs/refcheck/pkg/logger"
)

var apiTypeLog = logger.New("schemas:apitype")

// ApiType is an engine API surface category, derived from a file path
// segment. The known set is fixed; see Registry for the schema mapping.
type ApiType string

const (
	ApiTypeClasses   ApiType = "classes"
	ApiTypeDataTypes ApiType = "datatypes"
	ApiTypeEnums     ApiType = "enums"
	ApiTypeGlobals   ApiType = "globals"
	ApiTypeLibraries ApiType = "libraries"
)

// apiTypePattern captures the segment after reference/engine/ for any file
// directly inside that directory. Native separators are normalized to
// forward slashes before matching.
var apiTypePattern = regexp.MustCompile(`(?:^|/)reference/engine/([^/]+)/[^/]+\.[^./]+$`)

// ApiTypeFromPath extracts the ApiType from a file path matching the
// reference/engine/<type>/<name>.<ext> convention. The second return value
// is false when the path does not match; that is a skip condition, not an
// error. The captured segment is returned as-is: whether it names a known
// type is the registry's concern.
func ApiTypeFromPath(path string) (ApiType, bool) {
	m := apiTypePattern.FindStringSubmatch(filepath.ToSlash(path))
	if m == nil {
		apiTypeLog.Printf("No API type in path: %s", path)
		return "", false
	}
	return ApiType(m[1]), true
}
