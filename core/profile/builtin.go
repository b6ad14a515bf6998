package profile

// cliaColumns is the CLIA laboratory registry schema: nine columns straight
// from the registry export followed by hand-maintained outreach tracking
// columns that only ever exist in the master.
var cliaColumns = []string{
	"CLIA",
	"FACILITY_TYPE",
	"CERTIFICATE_TYPE",
	"LAB_NAME",
	"STREET",
	"CITY",
	"STATE",
	"ZIP",
	"PHONE",
	"Contact",
	"Touch 1",
	"Touch 2",
	"Touch 3",
	"Touch 4",
	"Call Tag 1",
	"Call Tag 2",
}

// registryColumns is the subset of cliaColumns the upstream registry
// actually exports.
var registryColumns = cliaColumns[:9]

// Builtin returns the profiles that ship with the binary.
//
// clia-labs keys on every column, so any cell difference makes a row "new".
// clia-labs-tracked keys on the registry columns only: rows keep their
// identity when just the outreach tracking cells change, and the master-side
// tracking data survives into the next master.
func Builtin() []Profile {
	return []Profile{
		{
			Name:            "clia-labs",
			Slug:            "clia_labs",
			Columns:         cliaColumns,
			Key:             cliaColumns,
			MasterHasHeader: true,
		},
		{
			Name:            "clia-labs-tracked",
			Slug:            "clia_labs_tracked",
			Columns:         cliaColumns,
			Key:             registryColumns,
			MasterHasHeader: true,
		},
	}
}
