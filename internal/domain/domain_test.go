package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSplitGenres(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: []string{}},
		{name: "comma joined", in: "Jazz,Folk", want: []string{"Jazz", "Folk"}},
		{name: "postgres array literal", in: "{Jazz,Folk}", want: []string{"Jazz", "Folk"}},
		{name: "quoted array literal", in: `{"Hip-Hop","R&B"}`, want: []string{"Hip-Hop", "R&B"}},
		{name: "blank entries", in: "Jazz,, ,Folk", want: []string{"Jazz", "Folk"}},
		{name: "empty literal", in: "{}", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitGenres(tt.in))
		})
	}
}

func TestJoinGenres(t *testing.T) {
	assert.Equal(t, "Jazz,Folk", JoinGenres([]string{" Jazz", "", "Folk "}))
	assert.Equal(t, "", JoinGenres(nil))
}

func TestSplitShows(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	shows := []ShowListing{
		{Show: Show{ID: 1, StartTime: now.Add(-time.Hour)}},
		{Show: Show{ID: 2, StartTime: now.Add(time.Hour)}},
		{Show: Show{ID: 3, StartTime: now}},
	}

	past, upcoming := SplitShows(shows, now)

	assert.Len(t, past, 2)
	assert.Equal(t, uint(1), past[0].ID)
	assert.Equal(t, uint(3), past[1].ID)
	assert.Len(t, upcoming, 1)
	assert.Equal(t, uint(2), upcoming[0].ID)
}

func TestDrinkShort(t *testing.T) {
	d := Drink{
		ID:    4,
		Title: "Latte",
		Recipe: []Ingredient{
			{Name: "espresso", Color: "brown", Parts: 1},
			{Name: "milk", Color: "white", Parts: 3},
		},
	}

	short := d.Short()

	assert.Equal(t, uint(4), short.ID)
	assert.Equal(t, []ShortIngredient{{Color: "brown", Parts: 1}, {Color: "white", Parts: 3}}, short.Recipe)
}

func TestPermissionsForRole(t *testing.T) {
	assert.Equal(t, []string{PermGetDrinksDetail}, PermissionsForRole(RoleBarista))
	assert.Contains(t, PermissionsForRole(RoleManager), PermPostMenu)
	assert.Empty(t, PermissionsForRole("guest"))
	assert.True(t, IsValidRole(RoleManager))
	assert.False(t, IsValidRole("guest"))

	perms := User{Role: RoleBarista}.Permissions()
	perms[0] = "mutated"
	assert.Equal(t, PermGetDrinksDetail, PermissionsForRole(RoleBarista)[0])
}

func TestCategoryMap(t *testing.T) {
	m := CategoryMap([]Category{{ID: 1, Type: "Science"}, {ID: 2, Type: "Art"}})
	assert.Equal(t, map[uint]string{1: "Science", 2: "Art"}, m)
}
