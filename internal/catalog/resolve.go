package catalog

import "regexp"

// Providers publish both alias names ("latest") and dated snapshot names;
// callers may pass either. Resolution is exact alias match first, then a
// retry with any trailing date suffix stripped. No fuzzy matching.
var dateSuffixPattern = regexp.MustCompile(`-\d{4}-\d{2}-\d{2}$`)

func (pc *providerCatalog) resolve(rawName string) string {
	if target, ok := pc.aliases[rawName]; ok {
		return target
	}
	if _, ok := pc.models[rawName]; ok {
		return rawName
	}

	if !pc.stripDateSuffix {
		return rawName
	}

	stripped := dateSuffixPattern.ReplaceAllString(rawName, "")
	if stripped == rawName {
		return rawName
	}
	if target, ok := pc.aliases[stripped]; ok {
		return target
	}
	if _, ok := pc.models[stripped]; ok {
		return stripped
	}

	return rawName
}
