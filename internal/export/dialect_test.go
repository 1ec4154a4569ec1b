package export

import (
	"errors"
	"testing"

	"github.com/tvalden/schemaguard/pkg/schemaguard"
)

func TestGetDialect_Builtin(t *testing.T) {
	for _, name := range []string{"postgres", "mysql", "sqlite", "POSTGRES"} {
		d, err := GetDialect(name)
		if err != nil {
			t.Errorf("GetDialect(%q) error: %v", name, err)
			continue
		}
		if d == nil {
			t.Errorf("GetDialect(%q) returned nil dialect", name)
		}
	}
}

func TestGetDialect_Unknown(t *testing.T) {
	_, err := GetDialect("oracle")
	if err == nil {
		t.Fatal("expected error for unknown dialect")
	}
	if !errors.Is(err, schemaguard.ErrInvalidConfig) {
		t.Errorf("error %v is not ErrInvalidConfig", err)
	}
}

func TestListDialects_Sorted(t *testing.T) {
	names := ListDialects()
	if len(names) < 3 {
		t.Fatalf("ListDialects = %v, want at least the builtins", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("ListDialects not sorted: %v", names)
		}
	}
}

func TestDialect_Quote(t *testing.T) {
	pg, _ := GetDialect("postgres")
	my, _ := GetDialect("mysql")

	tests := []struct {
		dialect *Dialect
		ident   string
		want    string
	}{
		{pg, "account", "account"},
		{pg, "order", `"order"`},
		{pg, "weird name", `"weird name"`},
		{pg, "MixedCase", `"MixedCase"`},
		{my, "user", "`user`"},
		{my, "account_id", "account_id"},
	}

	for _, tt := range tests {
		if got := tt.dialect.Quote(tt.ident); got != tt.want {
			t.Errorf("%s.Quote(%q) = %q, want %q", tt.dialect.Name, tt.ident, got, tt.want)
		}
	}
}

func TestDialect_TypeFor(t *testing.T) {
	pg, _ := GetDialect("postgres")

	tests := []struct {
		spec string
		want string
	}{
		{"datetime", "timestamp"},
		{"DATETIME", "timestamp"},
		{"blob", "bytea"},
		{"varchar(255)", "varchar(255)"},
		{"bigint", "bigint"},
	}

	for _, tt := range tests {
		if got := pg.TypeFor(tt.spec); got != tt.want {
			t.Errorf("TypeFor(%q) = %q, want %q", tt.spec, got, tt.want)
		}
	}

	my, _ := GetDialect("mysql")
	if got := my.TypeFor("text"); got != "longtext" {
		t.Errorf("mysql TypeFor(text) = %q", got)
	}
}
