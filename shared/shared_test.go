package shared_test

import (
	"strings"
	"testing"

	"dost/shared"
	"dost/shared/constant"
	"dost/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "exact division", total: 20, limit: 10, want: 2},
		{name: "rounds up", total: 21, limit: 10, want: 3},
		{name: "zero total", total: 0, limit: 10, want: 1},
		{name: "zero limit", total: 20, limit: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.CalculateTotalPage(tt.total, tt.limit); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestContainsFold(t *testing.T) {
	tests := []struct {
		s      string
		substr string
		want   bool
	}{
		{"Luxury Suite 202", "suite", true},
		{"Luxury Suite 202", "SUITE", true},
		{"Luxury Suite 202", "202", true},
		{"Luxury Suite 202", "deluxe", false},
		{"anything", "", true},
	}

	for _, tt := range tests {
		if got := shared.ContainsFold(tt.s, tt.substr); got != tt.want {
			t.Errorf("ContainsFold(%q, %q) = %v, expected %v", tt.s, tt.substr, got, tt.want)
		}
	}
}

func TestMatchesCategory(t *testing.T) {
	if !shared.MatchesCategory("Pending", "") {
		t.Error("empty filter should match everything")
	}

	if !shared.MatchesCategory("Pending", constant.FilterAll) {
		t.Error("the All sentinel should match everything")
	}

	if !shared.MatchesCategory("Pending", "Pending") {
		t.Error("exact value should match")
	}

	if shared.MatchesCategory("Pending", "Approved") {
		t.Error("different value should not match")
	}
}

func TestTransformFields(t *testing.T) {
	type update struct {
		Name  string `db:"roomname"`
		Price int64  `db:"price"`
		Extra string
	}

	fields := shared.TransformFields(update{Name: "Suite", Extra: "ignored"}, "admin1")

	if fields["roomname"] != "Suite" {
		t.Errorf("expected roomname to be set, got %v", fields["roomname"])
	}

	if _, ok := fields["price"]; ok {
		t.Error("zero-valued fields must be skipped")
	}

	if _, ok := fields["Extra"]; ok {
		t.Error("fields without a db tag must be skipped")
	}

	if fields[constant.FieldModifiedBy] != "admin1" {
		t.Errorf("expected modified_by to be admin1, got %v", fields[constant.FieldModifiedBy])
	}

	if _, ok := fields[constant.FieldModifiedAt]; !ok {
		t.Error("expected modified_at to be set")
	}
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("r1", "id", "rooms")

	where, args := group.GetWhereClause()

	if !strings.Contains(where, "rooms.id = :id") {
		t.Errorf("unexpected where clause: %s", where)
	}

	if args["id"] != "r1" {
		t.Errorf("expected args to carry the id, got %v", args)
	}
}

func TestBuildCacheKey(t *testing.T) {
	if got := shared.BuildCacheKey("room", "get", "r1"); got != "room:get:r1" {
		t.Errorf("expected room:get:r1, got %s", got)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10, SortBy: "created_at", SortDir: "DESC"}
	filter := dto.SearchFilter("suite", dto.SearchColumn{Field: "roomname", Table: "rooms"})
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd, Filters: []any{filter}}

	first := shared.BuildCacheKeyWithQuery("room:gets", params, group)
	second := shared.BuildCacheKeyWithQuery("room:gets", params, group)

	if first != second {
		t.Errorf("cache key must be stable: %s != %s", first, second)
	}

	if !strings.HasPrefix(first, "room:gets:") {
		t.Errorf("expected prefix room:gets:, got %s", first)
	}

	otherFilter := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}
	other := shared.BuildCacheKeyWithQuery("room:gets", params, otherFilter)

	if first == other {
		t.Error("different filters must produce different cache keys")
	}
}
