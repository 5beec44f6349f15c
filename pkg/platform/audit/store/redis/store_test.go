package redis

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMembersSortByInsertionSequence(t *testing.T) {
	later := encodeMember(10, []byte(`{"name":"a"}`))
	earlier := encodeMember(9, []byte(`{"name":"z"}`))

	members := []string{later, earlier}
	sort.Strings(members)
	assert.Equal(t, []string{earlier, later}, members)

	m, err := decodeMember(later)
	require.NoError(t, err)
	assert.Equal(t, "a", m.Name)
}

func TestDecodeMemberRejectsMissingSequence(t *testing.T) {
	_, err := decodeMember(`{"name":"a"}`)
	require.Error(t, err)
}
