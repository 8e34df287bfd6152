package loader

import (
	"errors"
	"testing"
	"testing/fstest"
)

type target struct {
	Editor struct {
		Name  string `toml:"name" yaml:"name"`
		Width int    `toml:"width" yaml:"width"`
	} `toml:"editor" yaml:"editor"`
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"config.toml", FormatTOML, false},
		{"CONFIG.TOML", FormatTOML, false},
		{"config.yaml", FormatYAML, false},
		{"dir/config.yml", FormatYAML, false},
		{"config.json", 0, true},
		{"config", 0, true},
	}

	for _, tt := range tests {
		got, err := FormatFor(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("FormatFor(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("FormatFor(%q) error = %v, want ErrUnsupportedFormat", tt.path, err)
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("FormatFor(%q) = %s, want %s", tt.path, got, tt.want)
		}
	}
}

func TestFileLoader_TOML(t *testing.T) {
	fsys := fstest.MapFS{
		"config.toml": {Data: []byte("[editor]\nname = \"kestrel\"\n")},
	}

	var v target
	v.Editor.Width = 80
	found, err := NewFileLoaderWithFS(fsys, "config.toml").Load(&v)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !found {
		t.Fatal("expected file to be found")
	}
	if v.Editor.Name != "kestrel" {
		t.Errorf("name = %q, want kestrel", v.Editor.Name)
	}
	if v.Editor.Width != 80 {
		t.Errorf("width = %d, want untouched 80", v.Editor.Width)
	}
}

func TestFileLoader_YAML(t *testing.T) {
	fsys := fstest.MapFS{
		"config.yml": {Data: []byte("editor:\n  width: 120\n")},
	}

	var v target
	found, err := NewFileLoaderWithFS(fsys, "config.yml").Load(&v)
	if err != nil || !found {
		t.Fatalf("Load = %v, %v", found, err)
	}
	if v.Editor.Width != 120 {
		t.Errorf("width = %d, want 120", v.Editor.Width)
	}
}

func TestFileLoader_EmptyYAML(t *testing.T) {
	fsys := fstest.MapFS{"config.yaml": {Data: []byte("")}}

	var v target
	found, err := NewFileLoaderWithFS(fsys, "config.yaml").Load(&v)
	if err != nil || !found {
		t.Errorf("Load = %v, %v; want found without error", found, err)
	}
}

func TestFileLoader_NotFound(t *testing.T) {
	var v target
	found, err := NewFileLoaderWithFS(fstest.MapFS{}, "missing.toml").Load(&v)
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if found {
		t.Error("expected found = false")
	}
}

func TestFileLoader_YAMLUnknownField(t *testing.T) {
	fsys := fstest.MapFS{
		"config.yaml": {Data: []byte("editor:\n  colour: red\n")},
	}

	var v target
	_, err := NewFileLoaderWithFS(fsys, "config.yaml").Load(&v)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if perr.Path != "config.yaml" {
		t.Errorf("path = %q", perr.Path)
	}
}

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		err  *ParseError
		want string
	}{
		{&ParseError{Path: "a.toml", Message: "bad"}, "parse error in a.toml: bad"},
		{&ParseError{Path: "a.toml", Line: 3, Message: "bad"}, "parse error in a.toml at line 3: bad"},
		{&ParseError{Path: "a.toml", Line: 3, Column: 7, Message: "bad"}, "parse error in a.toml at line 3, column 7: bad"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestEnvLoader(t *testing.T) {
	vars := map[string]string{
		"APP_LEVEL": "debug",
		"APP_FILE":  "",
		"OTHER":     "ignored",
	}
	lookup := func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}

	l := NewEnvLoaderWithLookup(map[string]string{
		"APP_LEVEL": "logging.level",
		"APP_FILE":  "logging.file",
		"APP_UNSET": "cursor.normal",
	}, lookup)

	got := l.Load()
	want := []Setting{
		{Env: "APP_FILE", Path: "logging.file", Value: ""},
		{Env: "APP_LEVEL", Path: "logging.level", Value: "debug"},
	}
	if len(got) != len(want) {
		t.Fatalf("Load() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("setting %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
