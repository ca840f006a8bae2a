package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestApplyDefaults_ModelOrderIsFixed(t *testing.T) {
	var cfg Config
	ApplyDefaults(&cfg)
	want := []string{"phi3:mini", "llama3.2", "llama3.1", "llama3", "llama2"}
	if !reflect.DeepEqual(cfg.LLM.Models, want) {
		t.Fatalf("models = %v, want %v", cfg.LLM.Models, want)
	}
	if cfg.LLM.Backend != BackendGenerate {
		t.Fatalf("backend = %q", cfg.LLM.Backend)
	}
	if cfg.StorePath != "jobs.json" {
		t.Fatalf("store path = %q", cfg.StorePath)
	}
}

func TestLoadFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobsift.yaml")
	data := `storePath: /tmp/jobs.json
llm:
  backend: openai
  base: http://localhost:8080/v1
  models: [mistral, llama3]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	var cfg Config
	if err := LoadFile(path, &cfg); err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.StorePath != "/tmp/jobs.json" || cfg.LLM.Backend != "openai" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.LLM.Models, []string{"mistral", "llama3"}) {
		t.Fatalf("models = %v", cfg.LLM.Models)
	}
}

func TestApplyEnv_FillsOnlyUnsetFields(t *testing.T) {
	t.Setenv("JOBSIFT_LLM_BASE", "http://env:1234")
	t.Setenv("JOBSIFT_STORE", "/env/jobs.json")

	var cfg Config
	cfg.StorePath = "/explicit/jobs.json"
	ApplyEnv(&cfg)

	if cfg.LLM.BaseURL != "http://env:1234" {
		t.Fatalf("base = %q", cfg.LLM.BaseURL)
	}
	if cfg.StorePath != "/explicit/jobs.json" {
		t.Fatalf("explicit value overridden: %q", cfg.StorePath)
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList(" phi3:mini, llama3.2 ,,llama2 ")
	want := []string{"phi3:mini", "llama3.2", "llama2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
