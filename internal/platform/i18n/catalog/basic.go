package catalog

import (
	"strconv"
	"strings"
)

const (
	basicKeyPrefix = "BasicLanguage["
	basicKeySuffix = "]"
)

// BasicKey returns the catalog key for a basic language string id,
// e.g. BasicKey(1000) == "BasicLanguage[1000]".
func BasicKey(id int) string {
	return basicKeyPrefix + strconv.Itoa(id) + basicKeySuffix
}

// IsBasicKey reports whether key has the BasicLanguage[<int>] form.
func IsBasicKey(key string) bool {
	if !strings.HasPrefix(key, basicKeyPrefix) || !strings.HasSuffix(key, basicKeySuffix) {
		return false
	}
	_, err := strconv.Atoi(key[len(basicKeyPrefix) : len(key)-len(basicKeySuffix)])
	return err == nil
}
