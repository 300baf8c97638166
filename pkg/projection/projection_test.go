package projection

import (
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type member struct {
	ID    string
	Name  string
	Email string
	Batch string
	Admin bool
}

func memberSpec(perPage int) Spec[member] {
	return Spec[member]{
		SearchFields: []func(member) string{
			func(m member) string { return m.Name },
			func(m member) string { return m.Email },
			func(m member) string { return m.ID },
		},
		Exclude: func(m member) bool { return m.Admin },
		SortKeys: map[string]func(member) (string, bool){
			"name":  func(m member) (string, bool) { return m.Name, m.Name != "" },
			"email": func(m member) (string, bool) { return m.Email, m.Email != "" },
			"batch": func(m member) (string, bool) { return m.Batch, m.Batch != "" },
		},
		PerPage: perPage,
	}
}

func TestProject_FilterSortPaginate(t *testing.T) {
	members := make([]member, 0, 12)
	for i := 0; i < 12; i++ {
		members = append(members, member{
			ID:    fmt.Sprintf("STU%03d", i),
			Name:  fmt.Sprintf("%c-member", 'a'+i),
			Email: fmt.Sprintf("m%02d@example.com", i),
		})
	}

	spec := memberSpec(5)
	res := spec.Project(members, State{Sort: "name", Order: SortAsc, Page: 1})

	require.Len(t, res.Items, 5)
	assert.Equal(t, 12, res.Total)
	assert.Equal(t, 3, res.TotalPages)
	assert.Equal(t, "a-member", res.Items[0].Name)
	assert.Equal(t, "e-member", res.Items[4].Name)

	last := spec.Project(members, State{Sort: "name", Order: SortAsc, Page: 3})
	require.Len(t, last.Items, 2)
	assert.Equal(t, "k-member", last.Items[0].Name)
	assert.Equal(t, "l-member", last.Items[1].Name)
}

func TestProject_PageClamping(t *testing.T) {
	members := []member{
		{ID: "1", Name: "alpha"},
		{ID: "2", Name: "beta"},
		{ID: "3", Name: "gamma"},
	}
	spec := memberSpec(2)

	over := spec.Project(members, State{Sort: "name", Page: 99})
	assert.Equal(t, 2, over.Page)
	require.Len(t, over.Items, 1)
	assert.Equal(t, "gamma", over.Items[0].Name)

	under := spec.Project(members, State{Sort: "name", Page: -4})
	assert.Equal(t, 1, under.Page)
	require.Len(t, under.Items, 2)
}

func TestProject_EmptyCollection(t *testing.T) {
	spec := memberSpec(5)
	res := spec.Project(nil, State{Sort: "name", Page: 3})
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, 0, res.Total)
	assert.Equal(t, 0, res.TotalPages)
	assert.Empty(t, res.Items)
}

func TestProject_SearchIsCaseInsensitive(t *testing.T) {
	members := []member{
		{ID: "STU001", Name: "Alice Smith", Email: "alice@example.com"},
		{ID: "STU002", Name: "Bob Jones", Email: "bob@example.com"},
	}
	spec := memberSpec(5)

	res := spec.Project(members, State{Query: "ALICE", Sort: "name"})
	require.Len(t, res.Items, 1)
	assert.Equal(t, "STU001", res.Items[0].ID)

	res = spec.Project(members, State{Query: "  bob@ ", Sort: "name"})
	require.Len(t, res.Items, 1)
	assert.Equal(t, "STU002", res.Items[0].ID)
}

func TestProject_ExcludePredicate(t *testing.T) {
	members := []member{
		{ID: "STU001", Name: "alice"},
		{ID: "ADMIN001", Name: "root", Admin: true},
	}
	spec := memberSpec(5)

	hidden := spec.Project(members, State{Sort: "name"})
	require.Len(t, hidden.Items, 1)
	assert.Equal(t, "STU001", hidden.Items[0].ID)

	shown := spec.Project(members, State{Sort: "name", IncludeExcluded: true})
	assert.Len(t, shown.Items, 2)
}

func TestProject_MissingValuesSortLast(t *testing.T) {
	members := []member{
		{ID: "1", Name: "c", Batch: ""},
		{ID: "2", Name: "a", Batch: "B2"},
		{ID: "3", Name: "b", Batch: "B1"},
	}
	spec := memberSpec(5)

	asc := spec.Project(members, State{Sort: "batch", Order: SortAsc})
	require.Len(t, asc.Items, 3)
	assert.Equal(t, "B1", asc.Items[0].Batch)
	assert.Equal(t, "B2", asc.Items[1].Batch)
	assert.Equal(t, "", asc.Items[2].Batch)

	desc := spec.Project(members, State{Sort: "batch", Order: SortDesc})
	require.Len(t, desc.Items, 3)
	assert.Equal(t, "B2", desc.Items[0].Batch)
	assert.Equal(t, "B1", desc.Items[1].Batch)
	assert.Equal(t, "", desc.Items[2].Batch, "missing values stay last in descending order too")
}

func TestProject_SortIsStable(t *testing.T) {
	members := []member{
		{ID: "1", Name: "same"},
		{ID: "2", Name: "same"},
		{ID: "3", Name: "same"},
	}
	spec := memberSpec(5)
	res := spec.Project(members, State{Sort: "name", Order: SortDesc})
	require.Len(t, res.Items, 3)
	assert.Equal(t, "1", res.Items[0].ID)
	assert.Equal(t, "2", res.Items[1].ID)
	assert.Equal(t, "3", res.Items[2].ID)
}

func TestToggle(t *testing.T) {
	st := State{Sort: "name", Order: SortAsc, Page: 4}

	flipped := st.Toggle("name")
	assert.Equal(t, "name", flipped.Sort)
	assert.Equal(t, SortDesc, flipped.Order)
	assert.Equal(t, 1, flipped.Page)

	back := flipped.Toggle("name")
	assert.Equal(t, SortAsc, back.Order)

	other := st.Toggle("email")
	assert.Equal(t, "email", other.Sort)
	assert.Equal(t, SortAsc, other.Order)
	assert.Equal(t, 1, other.Page)
}

func TestStateFromQuery_RoundTrip(t *testing.T) {
	q := url.Values{}
	q.Set("q", "alice")
	q.Set("sort", "email")
	q.Set("order", "desc")
	q.Set("page", "3")
	q.Set("admins", "1")

	st := StateFromQuery(q.Get, "name")
	assert.Equal(t, "alice", st.Query)
	assert.Equal(t, "email", st.Sort)
	assert.Equal(t, SortDesc, st.Order)
	assert.Equal(t, 3, st.Page)
	assert.True(t, st.IncludeExcluded)

	encoded := url.Values{}
	st.Encode(encoded.Set)
	assert.Equal(t, q, encoded)
}

func TestStateFromQuery_Defaults(t *testing.T) {
	q := url.Values{}
	st := StateFromQuery(q.Get, "name")
	assert.Equal(t, "name", st.Sort)
	assert.Equal(t, SortAsc, st.Order)
	assert.Equal(t, 1, st.Page)
	assert.False(t, st.IncludeExcluded)

	q.Set("page", "junk")
	assert.Equal(t, 1, StateFromQuery(q.Get, "name").Page)
}
