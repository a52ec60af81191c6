package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shapecheck/shape"
)

func loadCatalog(t *testing.T) *ShapeSet {
	t.Helper()

	analyzer := NewAnalyzer()
	set, err := analyzer.LoadPackages("shapecheck/catalog")
	require.NoError(t, err)
	require.NotNil(t, set)

	return set
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	set := loadCatalog(t)

	assert.Contains(t, set.Packages, "shapecheck/catalog")

	account := ShapeID{PkgPath: "shapecheck/catalog", Name: "Account"}
	assert.Contains(t, set.Shapes, account)

	ledger := ShapeID{PkgPath: "shapecheck/catalog", Name: "Ledger"}
	assert.Contains(t, set.Shapes, ledger)
}

func TestAnalyzer_AccountFlags(t *testing.T) {
	set := loadCatalog(t)

	s, err := set.GetShape("shapecheck/catalog", "Account")
	require.NoError(t, err)

	// Keys come from json tags; the unexported field is absent.
	assert.Equal(t, []string{"balance", "id", "nickname", "notify", "refresh"}, s.Keys())

	ro, err := shape.IsReadonly(s, "id")
	require.NoError(t, err)
	assert.True(t, ro, "shape:\"readonly\" tag must mark id read-only")

	opt, err := shape.IsOptional(s, "nickname")
	require.NoError(t, err)
	assert.True(t, opt, "pointer + omitempty must mark nickname optional")

	req, err := shape.IsRequired(s, "balance")
	require.NoError(t, err)
	assert.True(t, req)

	assert.Equal(t, []string{"notify", "refresh"}, shape.FuncKeys(s))
	assert.Equal(t, []string{"balance", "id", "refresh"}, shape.RequiredKeys(s))
}

func TestAnalyzer_LedgerAllRequiredWritable(t *testing.T) {
	set := loadCatalog(t)

	s, err := set.GetShape("shapecheck/catalog", "Ledger")
	require.NoError(t, err)

	assert.Empty(t, shape.ReadonlyKeys(s))
	assert.Empty(t, shape.OptionalKeys(s))
	assert.Equal(t, s.Keys(), shape.WritableKeys(s))
	assert.Equal(t, s.Keys(), shape.RequiredKeys(s))
}

func TestAnalyzer_Consts(t *testing.T) {
	set := loadCatalog(t)

	byName := make(map[string]ConstInfo)
	for _, c := range set.Consts {
		byName[c.ID.Name] = c
	}

	require.Contains(t, byName, "MaxRetries")
	assert.Equal(t, "5", byName["MaxRetries"].Number.String())
	assert.True(t, byName["MaxRetries"].Number.IsPositiveInteger())

	require.Contains(t, byName, "FloorAdjust")
	assert.Equal(t, "-1.5", byName["FloorAdjust"].Number.String())
	assert.True(t, byName["FloorAdjust"].Number.IsNegative())
	assert.False(t, byName["FloorAdjust"].Number.IsInteger())

	require.Contains(t, byName, "Offset")
	assert.True(t, byName["Offset"].Number.IsNegativeInteger())

	require.Contains(t, byName, "ZeroPoint")
	assert.True(t, byName["ZeroPoint"].Number.IsPositiveInteger())
}

func TestAnalyzer_ConstOutsideLiteralGrammar(t *testing.T) {
	analyzer := NewAnalyzer()
	set, err := analyzer.LoadPackages("shapecheck/catalog")
	require.NoError(t, err)

	// A hex spelling is outside the literal grammar: skipped, not failed.
	for _, c := range set.Consts {
		assert.NotEqual(t, "Mask", c.ID.Name, "hex const must not be collected")
	}

	diags := analyzer.Diagnostics()
	assert.False(t, diags.HasErrors())

	var noted bool
	for _, d := range diags.Infos {
		if d.Code == "const-spelling" && d.Shape == "shapecheck/catalog.Mask" {
			noted = true
		}
	}

	assert.True(t, noted, "skipping a hex const must leave an info diagnostic")
}

func TestShapeSet_FindShape(t *testing.T) {
	set := loadCatalog(t)

	s, err := set.FindShape("Account")
	require.NoError(t, err)
	assert.Equal(t, "shapecheck/catalog.Account", s.Name())

	_, err = set.FindShape("Nope")
	assert.Error(t, err)
}

func TestShapeSet_GetShapeUnknown(t *testing.T) {
	set := loadCatalog(t)

	_, err := set.GetShape("shapecheck/catalog", "Nope")
	assert.Error(t, err)
}
