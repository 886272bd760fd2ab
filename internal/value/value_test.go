package value

import (
	"testing"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfConvertsNatives(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		want Value
	}{
		{"nil", nil, Null{}},
		{"int", 7, Int(7)},
		{"int32", int32(8), Int(8)},
		{"int64", int64(9), Int(9)},
		{"string", "John", Text("John")},
		{"bool", true, Bool(true)},
		{"time", now, Timestamp(now)},
		{"value passthrough", Text("x"), Text("x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Of(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOfFloatBecomesDecimal(t *testing.T) {
	got, err := Of(12.99)
	require.NoError(t, err)

	d, ok := got.(Decimal)
	require.True(t, ok, "expected Decimal, got %T", got)
	assert.Equal(t, "12.99", d.String())
}

func TestOfApdDecimalIsCopied(t *testing.T) {
	src := apd.New(1599, -2)
	got, err := Of(src)
	require.NoError(t, err)

	src.SetInt64(0)
	assert.Equal(t, "15.99", String(got))
}

func TestOfUnsupported(t *testing.T) {
	_, err := Of(struct{}{})
	assert.Error(t, err)
}

func TestEqual(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	assert.True(t, Equal(Int(1), Int(1)))
	assert.False(t, Equal(Int(1), Int(2)))
	assert.True(t, Equal(Int(12), MustDecimal("12.0")))
	assert.True(t, Equal(MustDecimal("8.99"), MustDecimal("8.990")))
	assert.True(t, Equal(Text("a"), Text("a")))
	assert.False(t, Equal(Text("1"), Int(1)))
	assert.True(t, Equal(Bool(true), Bool(true)))
	assert.True(t, Equal(Timestamp(ts), Timestamp(ts.In(time.FixedZone("x", 3600)))))
	assert.False(t, Equal(Null{}, Null{}), "null never equals null")
	assert.False(t, Equal(nil, Int(1)))
}

func TestAccessorsReturnTypeError(t *testing.T) {
	_, err := AsInt(Null{})
	require.Error(t, err)
	assert.True(t, IsTypeError(err))

	var te *TypeError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, TypeInteger, te.Want)
	assert.Equal(t, TypeNull, te.Got)

	_, err = AsText(Int(3))
	assert.True(t, IsTypeError(err))

	_, err = AsBool(Text("true"))
	assert.True(t, IsTypeError(err))

	_, err = AsTime(Null{})
	assert.True(t, IsTypeError(err))

	_, err = AsDecimal(Text("1.5"))
	assert.True(t, IsTypeError(err))
}

func TestAccessorsWiden(t *testing.T) {
	d, err := AsDecimal(Int(4))
	require.NoError(t, err)
	assert.Equal(t, "4", d.String())

	n, err := AsInt(MustDecimal("42"))
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	_, err = AsInt(MustDecimal("4.5"))
	assert.True(t, IsTypeError(err))
}

func TestCoerce(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		to   Type
		want string
	}{
		{"null stays null", Null{}, TypeInteger, "NULL"},
		{"text to int", Text(" 12 "), TypeInteger, "12"},
		{"bool to int", Bool(true), TypeInteger, "1"},
		{"int to decimal", Int(3), TypeDecimal, "3"},
		{"text to decimal", Text("12.99"), TypeDecimal, "12.99"},
		{"int to bool", Int(0), TypeBoolean, "false"},
		{"text to bool", Text("true"), TypeBoolean, "true"},
		{"int to text", Int(5), TypeText, "5"},
		{"text to date", Text("2024-05-01"), TypeTimestamp, "2024-05-01T00:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Coerce(tt.in, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.want, String(got))
		})
	}
}

func TestCoerceFailures(t *testing.T) {
	_, err := Coerce(Text("abc"), TypeInteger)
	assert.Error(t, err)

	_, err = Coerce(Timestamp(time.Now()), TypeBoolean)
	assert.True(t, IsTypeError(err))

	_, err = Coerce(Text("not a date"), TypeTimestamp)
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	assert.Equal(t, Int(1), Parse("1"))
	assert.Equal(t, Null{}, Parse("NULL"))
	assert.Equal(t, Bool(true), Parse("true"))
	assert.Equal(t, Bool(false), Parse("False"))
	assert.Equal(t, "8.99", String(Parse("8.99")))
	assert.Equal(t, TypeTimestamp, Parse("2024-01-02").Type())
	assert.Equal(t, Text("Smith"), Parse("Smith"))
	assert.Equal(t, Text("t"), Parse("t"))
}

func TestParseType(t *testing.T) {
	for name, want := range map[string]Type{
		"integer":   TypeInteger,
		"INT":       TypeInteger,
		"text":      TypeText,
		"string":    TypeText,
		"decimal":   TypeDecimal,
		"bool":      TypeBoolean,
		"timestamp": TypeTimestamp,
		"datetime":  TypeTimestamp,
	} {
		got, err := ParseType(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseType("blob")
	assert.Error(t, err)
}

func TestStringRendering(t *testing.T) {
	assert.Equal(t, "NULL", String(Null{}))
	assert.Equal(t, "NULL", String(nil))
	assert.Equal(t, "-3", String(Int(-3)))
	assert.Equal(t, "true", String(Bool(true)))
	assert.Equal(t, "2024-01-02T00:00:00Z", String(Timestamp(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))))
}
