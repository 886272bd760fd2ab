package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalogDefault(t *testing.T) {
	tables, err := LoadCatalog("")
	require.NoError(t, err)
	assert.Len(t, tables, 4)
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widgets.cue")
	require.NoError(t, os.WriteFile(path, []byte(widgetsCatalog), 0644))

	tables, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, "Widgets", tables[0].Name)
	assert.True(t, tables[0].AutoIdentity())
}

func TestLoadCatalogDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "widgets.cue"),
		[]byte("package catalog\n"+widgetsCatalog), 0644))

	tables, err := LoadCatalog(dir)
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, []string{"WidgetId", "Label"}, tables[0].ColumnNames())
}

func TestLoadCatalogErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantCode string
		wantMsg  string
	}{
		{
			name:     "unknown type",
			src:      `tables: [{name: "T", columns: [{name: "A", type: "blob"}]}]`,
			wantCode: ErrCodeCatalog,
			wantMsg:  "unknown column type",
		},
		{
			name:     "missing tables",
			src:      `other: 1`,
			wantCode: ErrCodeCatalog,
			wantMsg:  "tables list is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.cue")
			require.NoError(t, os.WriteFile(path, []byte(tt.src), 0644))

			_, err := LoadCatalog(path)
			require.Error(t, err)

			var le *LoadError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, tt.wantCode, le.Code)
			assert.Contains(t, le.Error(), tt.wantMsg)
		})
	}
}

func TestLoadCatalogNotFound(t *testing.T) {
	_, err := LoadCatalog("/nonexistent/catalog.cue")
	require.Error(t, err)

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, ErrCodeNotFound, le.Code)
}
