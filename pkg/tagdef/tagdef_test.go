package tagdef

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basictag/basictag-go/pkg/tag"
	"github.com/basictag/basictag-go/pkg/value"
)

const sampleDefinitions = `
version: 1
tags:
  - name: motor.speed
    alias: 1
    type: int32
    local_writable: true
    initial: 1500
  - name: motor.temp
    alias: 2
    type: double
    initial: 21.5
  - name: motor.running
    alias: 3
    type: boolean
    initial: true
  - name: device.label
    alias: 4
    type: string
    local_writable: true
    max_len: 16
    initial: pump-7
  - name: device.id
    alias: 5
    type: uuid
    local_writable: true
    validate: uuid
  - name: device.blob
    alias: 6
    type: bytes
    max_len: 8
    initial: abc
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sampleDefinitions))
	require.NoError(t, err)

	assert.Equal(t, 1, f.Version)
	require.Len(t, f.Tags, 6)

	speed := f.Tags[0]
	assert.Equal(t, "motor.speed", speed.Name)
	assert.Equal(t, 1, speed.Alias)
	assert.Equal(t, "int32", speed.Type)
	assert.True(t, speed.LocalWritable)
	assert.False(t, speed.RemoteWritable)
	assert.Equal(t, 1500, speed.Initial)

	label := f.Tags[3]
	assert.Equal(t, 16, label.MaxLen)
	assert.Equal(t, "pump-7", label.Initial)

	id := f.Tags[4]
	assert.Equal(t, "uuid", id.Validate)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{
			name: "MissingName",
			yaml: "tags:\n  - type: int32\n",
			want: ErrMissingName,
		},
		{
			name: "DuplicateName",
			yaml: "tags:\n  - name: a\n    type: int32\n  - name: a\n    type: int32\n",
			want: ErrDuplicateName,
		},
		{
			name: "UnknownType",
			yaml: "tags:\n  - name: a\n    type: complex128\n",
			want: ErrUnknownType,
		},
		{
			name: "UnknownValidate",
			yaml: "tags:\n  - name: a\n    type: string\n    validate: regex\n",
			want: ErrUnknownValidate,
		},
		{
			name: "NegativeMaxLen",
			yaml: "tags:\n  - name: a\n    type: string\n    max_len: -1\n",
			want: ErrNegativeMaxLen,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	t.Run("LineNumber", func(t *testing.T) {
		_, err := Parse([]byte("tags:\n  - name: a\n    type: int32\n  - name: b\n    type: nope\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 4")
	})

	t.Run("BadYAML", func(t *testing.T) {
		_, err := Parse([]byte("tags: ["))
		assert.Error(t, err)
	})
}

func TestParseDataType(t *testing.T) {
	dt, err := ParseDataType("datetime")
	require.NoError(t, err)
	assert.Equal(t, value.DataTypeDateTime, dt)

	_, err = ParseDataType("Int32")
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestInstantiate(t *testing.T) {
	f, err := Parse([]byte(sampleDefinitions))
	require.NoError(t, err)

	reg := tag.NewRegistry()
	require.NoError(t, reg.SetTimestampFunc(func() uint64 { return 100 }))

	bank, err := f.Instantiate(reg)
	require.NoError(t, err)
	assert.Equal(t, 6, reg.Count())
	assert.Len(t, bank.Names(), 6)

	// Initial values land in the cells before the first read.
	speedCell, ok := bank.Cell("motor.speed").(*int32)
	require.True(t, ok)
	assert.Equal(t, int32(1500), *speedCell)

	tempCell, ok := bank.Cell("motor.temp").(*float64)
	require.True(t, ok)
	assert.Equal(t, 21.5, *tempCell)

	labelCell, ok := bank.Cell("device.label").(*string)
	require.True(t, ok)
	assert.Equal(t, "pump-7", *labelCell)

	blobCell, ok := bank.Cell("device.blob").(*value.Buffer)
	require.True(t, ok)
	assert.Equal(t, []byte("abc"), blobCell.Bytes())

	changed, err := reg.ReadAll()
	require.NoError(t, err)
	assert.True(t, changed)

	speed := bank.Tag("motor.speed")
	require.NotNil(t, speed)
	assert.Equal(t, int32(1500), speed.CurrentValue().Int32())

	assert.Nil(t, bank.Tag("missing"))
	assert.Nil(t, bank.Cell("missing"))
}

func TestInstantiateAliasRemap(t *testing.T) {
	f, err := Parse([]byte("tags:\n  - name: a\n    alias: 5\n    type: int32\n  - name: b\n    alias: 5\n    type: int32\n"))
	require.NoError(t, err)

	reg := tag.NewRegistry()
	bank, err := f.Instantiate(reg)
	require.NoError(t, err)

	assert.Equal(t, 5, bank.Tag("a").Alias())
	assert.Equal(t, 6, bank.Tag("b").Alias())
}

func TestInstantiateUUIDValidator(t *testing.T) {
	f, err := Parse([]byte("tags:\n  - name: id\n    type: uuid\n    local_writable: true\n    validate: uuid\n"))
	require.NoError(t, err)

	reg := tag.NewRegistry()
	bank, err := f.Instantiate(reg)
	require.NoError(t, err)

	id := bank.Tag("id")
	bad := value.NewString(0, value.DataTypeUUID, "not-a-uuid")
	assert.ErrorIs(t, id.Write(&bad), tag.ErrWriteRejected)

	good := value.NewString(0, value.DataTypeUUID, "6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	require.NoError(t, id.Write(&good))

	cell, ok := bank.Cell("id").(*string)
	require.True(t, ok)
	assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", *cell)
}

func TestInstantiateRollback(t *testing.T) {
	f, err := Parse([]byte("tags:\n  - name: a\n    type: int32\n  - name: b\n    type: boolean\n    initial: 7\n"))
	require.NoError(t, err)

	reg := tag.NewRegistry()
	_, err = f.Instantiate(reg)
	assert.ErrorIs(t, err, ErrBadInitial)
	assert.Contains(t, err.Error(), `tag "b"`)
	assert.Equal(t, 0, reg.Count())
}

func TestInstantiateNilRegistry(t *testing.T) {
	f := &File{}
	_, err := f.Instantiate(nil)
	assert.ErrorIs(t, err, ErrNilRegistry)
}
