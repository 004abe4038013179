package registry

import (
	"io"
	"strings"
	"testing"

	"github.com/vovakirdan/namedcolors/internal/colors"
)

type stubFormatter struct{ id string }

func (s stubFormatter) ID() string    { return s.id }
func (s stubFormatter) Title() string { return strings.ToUpper(s.id) }
func (s stubFormatter) Format(w io.Writer, cs []colors.Color, _ Options) error {
	for _, c := range cs {
		if _, err := io.WriteString(w, c.Name()+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Formatter { return stubFormatter{"stub-b"} })
	Register("stub-a", func() Formatter { return stubFormatter{"stub-a"} })

	if !Exists("stub-a") || !Exists("stub-b") {
		t.Fatal("registered formatters not found")
	}
	if Exists("stub-c") {
		t.Error("unexpected formatter stub-c")
	}

	list := List()
	var ids []string
	for _, info := range list {
		if strings.HasPrefix(info.ID, "stub-") {
			ids = append(ids, info.ID)
			if info.Title != strings.ToUpper(info.ID) {
				t.Errorf("title for %s = %q", info.ID, info.Title)
			}
		}
	}
	if strings.Join(ids, ",") != "stub-a,stub-b" {
		t.Errorf("List() not sorted by ID: %v", ids)
	}

	f, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	var b strings.Builder
	coral, _ := colors.Lookup("Coral")
	if err := f.Format(&b, []colors.Color{coral}, Options{}); err != nil {
		t.Fatalf("Format error: %v", err)
	}
	if b.String() != "Coral\n" {
		t.Errorf("Format output = %q", b.String())
	}

	if _, err := Create("stub-c"); err == nil {
		t.Error("expected error for unknown formatter")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Formatter { return stubFormatter{"stub-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("stub-dup", func() Formatter { return stubFormatter{"stub-dup"} })
}
