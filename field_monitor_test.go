package protopoet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newFieldMonitor() *fieldMonitor {
	var m fieldMonitor
	m.reset()
	return &m
}

func TestFieldMonitorAcceptsDistinctFields(t *testing.T) {
	t.Parallel()
	m := newFieldMonitor()
	require.NoError(t, m.addField(NewField(TypeBool, "a", 1).Build()))
	require.NoError(t, m.addField(NewField(TypeString, "b", 2).Build()))
}

func TestFieldMonitorNameConflicts(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		first    usedField
		second   usedField
		expected string
		code     string
	}{
		{
			name:     "both numbered",
			first:    NewField(TypeBool, "foo", 1).Build(),
			second:   NewField(TypeBool, "foo", 2).Build(),
			expected: "field name 'foo' (number=2) not unique, used by field number 1",
			code:     CodeFieldNameConflict,
		},
		{
			name:     "numberless candidate",
			first:    NewField(TypeBool, "foo", 1).Build(),
			second:   NewRpc("foo").SetRequest("A", false).SetResponse("B", false).Build(),
			expected: "field name 'foo' not unique, used by field number 1",
			code:     CodeFieldNameConflict,
		},
		{
			name:     "numberless prior",
			first:    NewRpc("foo").SetRequest("A", false).SetResponse("B", false).Build(),
			second:   NewField(TypeBool, "foo", 1).Build(),
			expected: "field name 'foo' is not unique",
			code:     CodeFieldNameConflict,
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			m := newFieldMonitor()
			require.NoError(t, m.addField(testCase.first))
			err := m.addField(testCase.second)
			require.Error(t, err)
			require.EqualError(t, err, testCase.expected)
			var usage *UsageError
			require.ErrorAs(t, err, &usage)
			require.Equal(t, testCase.code, usage.Code())
		})
	}
}

func TestFieldMonitorNumberConflict(t *testing.T) {
	t.Parallel()
	m := newFieldMonitor()
	require.NoError(t, m.addField(NewField(TypeBool, "foo", 1).Build()))
	err := m.addField(NewField(TypeBool, "bar", 1).Build())
	require.EqualError(t, err, "field number 1 already used by field named 'foo'")
	var usage *UsageError
	require.ErrorAs(t, err, &usage)
	require.Equal(t, CodeFieldNumberConflict, usage.Code())
}

func TestFieldMonitorReservedNumber(t *testing.T) {
	t.Parallel()
	m := newFieldMonitor()
	require.NoError(t, m.addReservation(ReserveNumbers(3).Build()))
	err := m.addField(NewField(TypeBool, "foo", 3).Build())
	require.EqualError(t, err, "field number 3 is reserved and cannot be used")
	var usage *UsageError
	require.ErrorAs(t, err, &usage)
	require.Equal(t, CodeFieldNumberReserved, usage.Code())
}

func TestFieldMonitorReservedRange(t *testing.T) {
	t.Parallel()
	m := newFieldMonitor()
	require.NoError(t, m.addReservation(ReserveNumbers(1).AddRanges(Range(10, 12)).Build()))
	require.NoError(t, m.addField(NewField(TypeBool, "ok", 9).Build()))
	err := m.addField(NewField(TypeBool, "foo", 11).Build())
	require.EqualError(t, err, "field number 11 is reserved and cannot be used")
}

func TestFieldMonitorReservedName(t *testing.T) {
	t.Parallel()
	m := newFieldMonitor()
	require.NoError(t, m.addReservation(ReserveNames("bar").Build()))
	err := m.addField(NewField(TypeBool, "bar", 1).Build())
	require.EqualError(t, err, "field name 'bar' is reserved and cannot be used")
	var usage *UsageError
	require.ErrorAs(t, err, &usage)
	require.Equal(t, CodeFieldNameReserved, usage.Code())
}

func TestFieldMonitorGroupMembersShareScope(t *testing.T) {
	t.Parallel()
	m := newFieldMonitor()
	require.NoError(t, m.addField(NewField(TypeBool, "foo", 1).Build()))
	group := NewOneof("choice").
		AddFields(NewField(TypeString, "bar", 1)).
		Build()
	err := m.addGroup(group)
	require.EqualError(t, err, "field number 1 already used by field named 'foo'")
}

func TestFieldMonitorGroupNameIsAFieldName(t *testing.T) {
	t.Parallel()
	m := newFieldMonitor()
	group := NewOneof("choice").
		AddFields(NewField(TypeString, "bar", 1)).
		Build()
	require.NoError(t, m.addGroup(group))
	err := m.addField(NewField(TypeBool, "choice", 2).Build())
	require.EqualError(t, err, "field name 'choice' is not unique")
}

func TestFieldMonitorResetClearsState(t *testing.T) {
	t.Parallel()
	m := newFieldMonitor()
	require.NoError(t, m.addField(NewField(TypeBool, "foo", 1).Build()))
	m.reset()
	require.NoError(t, m.addField(NewField(TypeBool, "foo", 1).Build()))
}
