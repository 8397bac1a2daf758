package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"user-api/internal/models"
)

func strptr(s string) *string { return &s }

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		limit int
		want  int
	}{
		{"empty collection", 0, 10, 0},
		{"exact multiple", 20, 10, 2},
		{"partial last page", 12, 5, 3},
		{"single record", 1, 10, 1},
		{"limit one", 7, 1, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, totalPages(tt.total, tt.limit))
		})
	}
}

func TestSortDirection(t *testing.T) {
	assert.Equal(t, -1, sortDirection("desc"))
	assert.Equal(t, 1, sortDirection("asc"))
	// Anything that is not "desc" sorts ascending.
	assert.Equal(t, 1, sortDirection(""))
	assert.Equal(t, 1, sortDirection("DESC"))
}

func TestPatchDocumentKeepsOnlySuppliedFields(t *testing.T) {
	set := patchDocument(models.UserPatch{Name: strptr("X")})

	assert.Len(t, set, 1)
	assert.Equal(t, strptr("X"), set["name"])
	assert.NotContains(t, set, "email")
	assert.NotContains(t, set, "password")
}

func TestPatchDocumentEmpty(t *testing.T) {
	assert.Empty(t, patchDocument(models.UserPatch{}))
}

func TestReplaceDocumentNullFillsOmittedFields(t *testing.T) {
	set := replaceDocument(models.UserPatch{Name: strptr("X")})

	// Every mutable field is written; omitted ones as explicit nulls.
	assert.Equal(t, bson.M{
		"name":     strptr("X"),
		"email":    (*string)(nil),
		"password": (*string)(nil),
	}, set)

	// Identity and creation timestamp are never part of the update.
	assert.NotContains(t, set, "_id")
	assert.NotContains(t, set, "createdAt")
}
