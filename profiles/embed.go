package profiles

import (
	"embed"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var profilesFS embed.FS

// read returns the raw bytes of a built-in profile ("dash",
// "platform", with or without the .yaml extension).
func read(name string) ([]byte, error) {
	return profilesFS.ReadFile(cleanProfilePath(name))
}

func cleanProfilePath(path string) string {
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "profiles/"); ok {
		s = after
	}
	if !strings.HasSuffix(s, ".yaml") && !strings.HasSuffix(s, ".yml") {
		s += ".yaml"
	}
	return s
}
