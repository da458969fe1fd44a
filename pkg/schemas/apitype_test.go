//go:build !integration

package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApiTypeFromPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		wantType ApiType
		wantOK   bool
	}{
		{"classes", "content/en-us/reference/engine/classes/Instance.yaml", ApiTypeClasses, true},
		{"datatypes", "content/en-us/reference/engine/datatypes/CFrame.yaml", ApiTypeDataTypes, true},
		{"enums", "reference/engine/enums/Material.yaml", ApiTypeEnums, true},
		{"globals", "reference/engine/globals/LuaGlobals.yaml", ApiTypeGlobals, true},
		{"libraries", "reference/engine/libraries/string.yaml", ApiTypeLibraries, true},
		{"unknown segment still captured", "reference/engine/widgets/Thing.yaml", ApiType("widgets"), true},
		{"yml extension", "reference/engine/enums/Material.yml", ApiTypeEnums, true},
		{"outside reference tree", "content/tutorials/enums/Material.yaml", "", false},
		{"nested one level too deep", "reference/engine/classes/sub/Instance.yaml", "", false},
		{"directly in engine dir", "reference/engine/Instance.yaml", "", false},
		{"no extension", "reference/engine/classes/Instance", "", false},
		{"empty path", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotType, gotOK := ApiTypeFromPath(tt.path)
			assert.Equal(t, tt.wantOK, gotOK)
			assert.Equal(t, tt.wantType, gotType)
		})
	}
}
