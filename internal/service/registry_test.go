package service

import (
	"sort"
	"strings"
	"testing"
)

func TestListStableAndNonEmpty(t *testing.T) {
	defs, err := List()
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(defs) == 0 {
		t.Fatal("registry is empty")
	}

	names := make([]string, 0, len(defs))
	for _, def := range defs {
		names = append(names, def.Name)
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("List() not sorted: %v", names)
	}

	for _, want := range []string{"google-oauth", "rabbitmq", "redis", "vercel"} {
		found := false
		for _, name := range names {
			if name == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("registry missing service %q, got %v", want, names)
		}
	}
}

func TestListDefinitionsComplete(t *testing.T) {
	defs, err := List()
	if err != nil {
		t.Fatal(err)
	}

	for _, def := range defs {
		if def.Description == "" {
			t.Errorf("service %s has no description", def.Name)
		}
		// Every service with an env block needs a sentinel for idempotence.
		if def.Env != "" && def.EnvSentinel == "" {
			t.Errorf("service %s has an env block but no sentinel", def.Name)
		}
	}
}

func TestLookup(t *testing.T) {
	def, err := Lookup("redis")
	if err != nil {
		t.Fatalf("Lookup(redis) error: %v", err)
	}
	if def.Name != "redis" {
		t.Errorf("Name = %q, want redis", def.Name)
	}
	if len(def.Requirements) == 0 {
		t.Error("redis should declare requirements")
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("kafka")
	if err == nil {
		t.Fatal("expected error for unknown service")
	}
	if !strings.Contains(err.Error(), "kafka") {
		t.Errorf("error should name the unknown service, got: %v", err)
	}
}

func TestTemplatesReadable(t *testing.T) {
	defs, err := List()
	if err != nil {
		t.Fatal(err)
	}

	for _, def := range defs {
		for _, f := range def.Files {
			data, err := readTemplate(def.Name, f.Source)
			if err != nil {
				t.Errorf("service %s: %v", def.Name, err)
				continue
			}
			if len(data) == 0 {
				t.Errorf("service %s template %s is empty", def.Name, f.Source)
			}
		}
	}
}
