package registry

import (
	"testing"

	"github.com/vovakirdan/wordrpg/internal/core"
)

type stubScreen struct{ id string }

func (s stubScreen) ID() string    { return s.id }
func (s stubScreen) Title() string { return "Stub " + s.id }
func (s stubScreen) Build(cfg core.RuntimeConfig) (*core.Screen, error) {
	return core.NewScreen(cfg.ScreenW, cfg.ScreenH), nil
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub", func() Screen { return stubScreen{id: "zz-stub"} })
	Register("aa-stub", func() Screen { return stubScreen{id: "aa-stub"} })

	if !Exists("zz-stub") || Exists("missing") {
		t.Fatal("Exists() reports wrong registrations")
	}

	list := List()
	if len(list) < 2 || list[0].ID != "aa-stub" {
		t.Errorf("List() should be sorted by ID, got %v", list)
	}
	if list[0].Title != "Stub aa-stub" {
		t.Errorf("Title = %q", list[0].Title)
	}

	s, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	buf, err := s.Build(core.RuntimeConfig{ScreenW: 4, ScreenH: 2})
	if err != nil || buf.Width() != 4 || buf.Height() != 2 {
		t.Errorf("Build() = %v, %v", buf, err)
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create() of unknown screen should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-stub", func() Screen { return stubScreen{id: "dup-stub"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register("dup-stub", func() Screen { return stubScreen{id: "dup-stub"} })
}
