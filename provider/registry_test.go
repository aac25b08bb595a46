package provider

import (
	"context"
	"testing"

	"github.com/notedly/minutes/errors"
)

type stubProvider struct {
	name string
}

func (s *stubProvider) Name() string                       { return s.name }
func (s *stubProvider) IsAvailable(_ context.Context) bool { return true }

func TestRegistryCreate(t *testing.T) {
	reg := NewRegistry[*stubProvider]()
	reg.RegisterFactory("stub", func(cfg map[string]any) (*stubProvider, error) {
		name, _ := cfg["name"].(string)
		return &stubProvider{name: name}, nil
	})

	p, err := reg.Create("stub", map[string]any{"name": "a"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if p.Name() != "a" {
		t.Errorf("Name = %q", p.Name())
	}
}

func TestRegistryCreateCaches(t *testing.T) {
	reg := NewRegistry[*stubProvider]()
	calls := 0
	reg.RegisterFactory("stub", func(cfg map[string]any) (*stubProvider, error) {
		calls++
		return &stubProvider{name: "stub"}, nil
	})

	first, err := reg.Create("stub", nil)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	second, err := reg.Create("stub", nil)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if first != second {
		t.Error("second Create returned a different instance")
	}
	if calls != 1 {
		t.Errorf("factory called %d times, want 1", calls)
	}
}

func TestRegistryCreateUnknown(t *testing.T) {
	reg := NewRegistry[*stubProvider]()
	_, err := reg.Create("missing", nil)
	if err == nil {
		t.Fatal("expected error for unregistered factory")
	}
	if errors.CodeOf(err) != errors.ErrCodeNotFound {
		t.Errorf("code = %v, want %v", errors.CodeOf(err), errors.ErrCodeNotFound)
	}
}

func TestRegistryList(t *testing.T) {
	reg := NewRegistry[*stubProvider]()
	reg.RegisterFactory("b", func(map[string]any) (*stubProvider, error) { return nil, nil })
	reg.RegisterFactory("a", func(map[string]any) (*stubProvider, error) { return nil, nil })

	names := reg.List()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("List = %v, want sorted [a b]", names)
	}
}
