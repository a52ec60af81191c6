package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shapecheck/shape"
)

const accountYAML = `
shapes:
  - name: Account
    members:
      - key: id
        type: string
        readonly: true
      - key: nickname
        type: "*string"
        optional: true
      - key: balance
        type: float64
      - key: refresh
        type: func()
        readonly: true
`

func TestParse(t *testing.T) {
	mf, err := Parse([]byte(accountYAML))
	require.NoError(t, err)

	assert.Equal(t, "1", mf.Version, "version must default to 1")
	require.Len(t, mf.Shapes, 1)
	assert.Equal(t, "Account", mf.Shapes[0].Name)
	assert.Len(t, mf.Shapes[0].Members, 4)
}

func TestBuild(t *testing.T) {
	mf, err := Parse([]byte(accountYAML))
	require.NoError(t, err)

	set, diags := Build(mf)
	require.True(t, diags.IsValid(), "diagnostics: %v", diags.Error())

	s, err := set.Get("Account")
	require.NoError(t, err)

	assert.Equal(t, []string{"balance", "id", "nickname", "refresh"}, s.Keys())
	assert.Equal(t, []string{"id", "refresh"}, shape.ReadonlyKeys(s))
	assert.Equal(t, []string{"nickname"}, shape.OptionalKeys(s))
	assert.Equal(t, []string{"refresh"}, shape.FuncKeys(s))
}

func TestBuild_UnknownTypeSpelling(t *testing.T) {
	mf, err := Parse([]byte(`
shapes:
  - name: Broken
    members:
      - key: when
        type: time.Time
`))
	require.NoError(t, err)

	set, diags := Build(mf)
	assert.True(t, diags.HasErrors())
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, "bad-type", diags.Errors[0].Code)
	assert.Equal(t, "Broken", diags.Errors[0].Shape)
	assert.Equal(t, "when", diags.Errors[0].Member)

	// No partial shape is registered.
	_, err = set.Get("Broken")
	assert.Error(t, err)
}

func TestBuild_DuplicateMember(t *testing.T) {
	mf, err := Parse([]byte(`
shapes:
  - name: Dup
    members:
      - key: a
        type: int
      - key: a
        type: string
`))
	require.NoError(t, err)

	set, diags := Build(mf)
	assert.True(t, diags.HasErrors())
	assert.Equal(t, "dup-member", diags.Errors[0].Code)
	assert.Zero(t, set.Len())
}

func TestBuild_DuplicateShape(t *testing.T) {
	mf, err := Parse([]byte(`
shapes:
  - name: A
    members: []
  - name: A
    members: []
`))
	require.NoError(t, err)

	_, diags := Build(mf)
	assert.True(t, diags.HasErrors())
	assert.Equal(t, "dup-shape", diags.Errors[0].Code)
}

func TestParse_BadYAML(t *testing.T) {
	_, err := Parse([]byte(":\n  - ["))
	assert.Error(t, err)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(t.TempDir() + "/nope.yaml")
	assert.Error(t, err)
}

func TestResolveType_Pointers(t *testing.T) {
	tt, err := resolveType("**int")
	require.NoError(t, err)
	assert.Equal(t, "**int", tt.String())

	_, err = resolveType("chan int")
	assert.Error(t, err)
}
