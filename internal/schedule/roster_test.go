package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRosterAddMember(t *testing.T) {
	t.Run("keeps insertion order", func(t *testing.T) {
		r := NewRoster(nil)
		for _, name := range []string{"نايف", "عبيد", "عوض"} {
			require.NoError(t, r.AddMember(name))
		}
		assert.Equal(t, []string{"نايف", "عبيد", "عوض"}, r.SelectedNames())
	})

	t.Run("rejects duplicate name", func(t *testing.T) {
		r := NewRoster(nil)
		require.NoError(t, r.AddMember("نايف"))
		err := r.AddMember("نايف")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDuplicateName)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		r := NewRoster(nil)
		err := r.AddMember("")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("new members start eligible", func(t *testing.T) {
		r := NewRoster(nil)
		require.NoError(t, r.AddMember("نايف"))
		members := r.Members()
		require.Len(t, members, 1)
		assert.True(t, members[0].Eligible)
	})
}

func TestRosterRenameMember(t *testing.T) {
	newRoster := func(t *testing.T) *Roster {
		r := NewRoster(nil)
		require.NoError(t, r.AddMember("نايف"))
		require.NoError(t, r.AddMember("عبيد"))
		return r
	}

	t.Run("renames in place", func(t *testing.T) {
		r := newRoster(t)
		require.NoError(t, r.RenameMember("نايف", "سند"))
		assert.Equal(t, []string{"سند", "عبيد"}, r.SelectedNames())
	})

	t.Run("unknown member", func(t *testing.T) {
		r := newRoster(t)
		err := r.RenameMember("ماجد", "سند")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("collision with another member", func(t *testing.T) {
		r := newRoster(t)
		err := r.RenameMember("نايف", "عبيد")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDuplicateName)
	})

	t.Run("rename to same name is allowed", func(t *testing.T) {
		r := newRoster(t)
		assert.NoError(t, r.RenameMember("نايف", "نايف"))
	})
}

func TestRosterRemoveMember(t *testing.T) {
	r := NewRoster(nil)
	require.NoError(t, r.AddMember("نايف"))
	require.NoError(t, r.AddMember("عبيد"))
	require.NoError(t, r.AddMember("عوض"))

	require.NoError(t, r.RemoveMember("عبيد"))
	assert.Equal(t, []string{"نايف", "عوض"}, r.SelectedNames())

	err := r.RemoveMember("عبيد")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRosterToggleEligibility(t *testing.T) {
	t.Run("excluded from selection until toggled back", func(t *testing.T) {
		r := NewRoster(nil)
		require.NoError(t, r.AddMember("نايف"))
		require.NoError(t, r.AddMember("عبيد"))

		require.NoError(t, r.ToggleEligibility("نايف"))
		assert.Equal(t, []string{"عبيد"}, r.SelectedNames())

		require.NoError(t, r.ToggleEligibility("نايف"))
		assert.Equal(t, []string{"نايف", "عبيد"}, r.SelectedNames())
	})

	t.Run("unknown member", func(t *testing.T) {
		r := NewRoster(nil)
		err := r.ToggleEligibility("نايف")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestNewRosterDeduplicates(t *testing.T) {
	r := NewRoster([]StaffMember{
		{Name: "نايف", Eligible: true},
		{Name: "عبيد", Eligible: false},
		{Name: "نايف", Eligible: false},
	})

	members := r.Members()
	require.Len(t, members, 2)
	assert.Equal(t, "نايف", members[0].Name)
	assert.True(t, members[0].Eligible)
	assert.Equal(t, []string{"نايف"}, r.SelectedNames())
}

func TestRosterMembersReturnsCopy(t *testing.T) {
	r := NewRoster(nil)
	require.NoError(t, r.AddMember("نايف"))

	members := r.Members()
	members[0].Name = "غيره"

	assert.Equal(t, []string{"نايف"}, r.SelectedNames())
}
