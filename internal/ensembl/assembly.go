package ensembl

import (
	"fmt"
	"regexp"
	"strings"
)

var reNumeric = regexp.MustCompile(`^\d+$`)

// Subdomain maps a reference assembly selector to the Ensembl REST
// request sub-domain: "current" selects the primary service (no prefix),
// a numeric value N selects "grchN.", and a value already starting with
// "grch" is lower-cased as-is. Anything else is a configuration error.
func Subdomain(assembly string) (string, error) {
	switch {
	case assembly == "current":
		return "", nil
	case reNumeric.MatchString(assembly):
		return "grch" + assembly + ".", nil
	case strings.HasPrefix(strings.ToLower(assembly), "grch"):
		return strings.ToLower(assembly) + ".", nil
	}
	return "", fmt.Errorf("reference assembly %q should be of the format XX or grchXX (e.g. \"grch37\")", assembly)
}

// BaseURL returns the Ensembl REST base URL for a reference assembly.
func BaseURL(assembly string) (string, error) {
	sub, err := Subdomain(assembly)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("https://%srest.ensembl.org", sub), nil
}
