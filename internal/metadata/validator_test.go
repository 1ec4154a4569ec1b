package metadata

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tvalden/schemaguard/pkg/schemaguard"
)

func validSet() *Set {
	return &Set{Entities: []Entity{
		{
			Name: "Account",
			ID:   "0b0e372e-6327-4c13-82d9-10d21bfebc32",
			Columns: []Column{
				{Name: "id", Type: "bigint", PrimaryKey: true},
				{Name: "email", Type: "varchar(255)", NotNull: true, Unique: true},
			},
			Indexes: []Index{{Columns: []string{"email"}, Unique: true}},
		},
		{
			Name: "PurchaseOrder",
			Columns: []Column{
				{Name: "id", Type: "bigint", PrimaryKey: true},
				{Name: "account_id", Type: "bigint", NotNull: true},
			},
			ForeignKeys: []ForeignKey{
				{Columns: []string{"account_id"}, RefTable: "account", RefColumns: []string{"id"}},
			},
		},
	}}
}

func TestValidateSet_Valid(t *testing.T) {
	result := ValidateSet(validSet())
	assert.True(t, result.Valid, "errors: %s", result.ErrorString())
	assert.Empty(t, result.Errors)
}

func TestValidateSet_DuplicateEntityName(t *testing.T) {
	set := validSet()
	dup := set.Entities[0]
	dup.Table = "account2"
	dup.ID = ""
	set.Entities = append(set.Entities, dup)

	result := ValidateSet(set)
	assert.False(t, result.Valid)
	assert.Contains(t, result.ErrorString(), "duplicate entity name")
}

func TestValidateSet_DuplicateTable(t *testing.T) {
	set := validSet()
	set.Entities[1].Table = "account"

	result := ValidateSet(set)
	assert.False(t, result.Valid)
	assert.Contains(t, result.ErrorString(), `duplicate table name "account"`)
}

func TestValidateSet_MissingColumnFields(t *testing.T) {
	set := &Set{Entities: []Entity{
		{Name: "Broken", Columns: []Column{{Name: "id"}, {Type: "text"}}},
	}}

	result := ValidateSet(set)
	assert.False(t, result.Valid)
	assert.Contains(t, result.ErrorString(), `column "id" has no type`)
	assert.Contains(t, result.ErrorString(), "has no name")
}

func TestValidateSet_NoColumns(t *testing.T) {
	set := &Set{Entities: []Entity{{Name: "Empty"}}}

	result := ValidateSet(set)
	assert.False(t, result.Valid)
	assert.Contains(t, result.ErrorString(), "has no columns")
}

func TestValidateSet_InvalidUUID(t *testing.T) {
	set := validSet()
	set.Entities[0].ID = "not-a-uuid"

	result := ValidateSet(set)
	assert.False(t, result.Valid)
	assert.Contains(t, result.ErrorString(), "invalid id")
}

func TestValidateSet_DuplicateUUID(t *testing.T) {
	set := validSet()
	set.Entities[1].ID = set.Entities[0].ID

	result := ValidateSet(set)
	assert.False(t, result.Valid)
	assert.Contains(t, result.ErrorString(), "already used")
}

func TestValidateSet_IndexUnknownColumn(t *testing.T) {
	set := validSet()
	set.Entities[0].Indexes = append(set.Entities[0].Indexes, Index{Columns: []string{"missing"}})

	result := ValidateSet(set)
	assert.False(t, result.Valid)
	assert.Contains(t, result.ErrorString(), `references unknown column "missing"`)
}

func TestValidateSet_ForeignKeyChecks(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Set)
		message string
	}{
		{
			"unknown ref table",
			func(s *Set) { s.Entities[1].ForeignKeys[0].RefTable = "ghost" },
			`references unknown table "ghost"`,
		},
		{
			"unknown ref column",
			func(s *Set) { s.Entities[1].ForeignKeys[0].RefColumns = []string{"ghost"} },
			"references unknown column account.ghost",
		},
		{
			"unknown local column",
			func(s *Set) { s.Entities[1].ForeignKeys[0].Columns = []string{"ghost"} },
			`references unknown column "ghost"`,
		},
		{
			"column count mismatch",
			func(s *Set) { s.Entities[1].ForeignKeys[0].RefColumns = []string{"id", "email"} },
			"columns but 2 refColumns",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := validSet()
			tt.mutate(set)
			result := ValidateSet(set)
			require.False(t, result.Valid)
			assert.True(t, strings.Contains(result.ErrorString(), tt.message),
				"errors %q should contain %q", result.ErrorString(), tt.message)
		})
	}
}

func TestValidate_WrapsInvalidConfig(t *testing.T) {
	set := &Set{Entities: []Entity{{Name: "Empty"}}}
	err := Validate(set)
	require.Error(t, err)
	assert.True(t, errors.Is(err, schemaguard.ErrInvalidConfig))

	require.NoError(t, Validate(validSet()))
}
