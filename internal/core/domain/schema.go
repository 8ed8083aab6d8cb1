package domain

// CurrentSchemaVersion is the schema version written by the current
// capture tooling.
const CurrentSchemaVersion = "0.1"

// DefaultCompilerName is the conventional compiler name in captures.
const DefaultCompilerName = "websketch-ir"

// SupportedSchemaVersions lists every schema version the validator
// accepts. Patch bumps are additive; minor bumps may add required
// fields with defaults; major bumps are breaking.
var SupportedSchemaVersions = []string{CurrentSchemaVersion}

// IsSupportedSchemaVersion returns true exactly when v is a member of
// the supported-versions set.
func IsSupportedSchemaVersion(v string) bool {
	for _, s := range SupportedSchemaVersions {
		if v == s {
			return true
		}
	}
	return false
}
