package fixtures

import "sort"

// Category groups scenarios by the class of DNS problem they stage.
type Category string

const (
	CategorySPF      Category = "spf"
	CategoryConflict Category = "conflict"
)

// Diagnosis is the conclusion a competent investigation of a scenario zone
// should reach.
type Diagnosis string

const (
	DiagnosisValid      Diagnosis = "valid"
	DiagnosisInvalid    Diagnosis = "invalid"
	DiagnosisInsecure   Diagnosis = "insecure"
	DiagnosisIncomplete Diagnosis = "incomplete"
	DiagnosisWarning    Diagnosis = "warning"
)

// Scenario ties a catalog zone to the outcome its investigation should reach.
type Scenario struct {
	Zone              string
	Category          Category
	ExpectedDiagnosis Diagnosis
	Description       string
}

var scenarios = map[string]Scenario{
	"spf-valid": {
		Zone:              Name("spf-valid"),
		Category:          CategorySPF,
		ExpectedDiagnosis: DiagnosisValid,
		Description:       "Valid SPF record with ip4 range and include",
	},
	"spf-multiple": {
		Zone:              Name("spf-multiple"),
		Category:          CategorySPF,
		ExpectedDiagnosis: DiagnosisInvalid,
		Description:       "Multiple SPF records causing permerror",
	},
	"spf-permissive": {
		Zone:              Name("spf-permissive"),
		Category:          CategorySPF,
		ExpectedDiagnosis: DiagnosisInsecure,
		Description:       "SPF with +all allows anyone to spoof",
	},
	"spf-incomplete": {
		Zone:              Name("spf-incomplete"),
		Category:          CategorySPF,
		ExpectedDiagnosis: DiagnosisIncomplete,
		Description:       "SPF missing -all or ~all mechanism",
	},
	"spf-deprecated": {
		Zone:              Name("spf-deprecated"),
		Category:          CategorySPF,
		ExpectedDiagnosis: DiagnosisWarning,
		Description:       "SPF using deprecated ptr mechanism",
	},
	"spf-too-many-lookups": {
		Zone:              Name("spf-too-many-lookups"),
		Category:          CategorySPF,
		ExpectedDiagnosis: DiagnosisInvalid,
		Description:       "SPF exceeds 10 DNS lookup limit",
	},
	"cname-conflict": {
		Zone:              Name("cname-conflict"),
		Category:          CategoryConflict,
		ExpectedDiagnosis: DiagnosisInvalid,
		Description:       "CNAME and A record at same name",
	},
	"multi-a": {
		Zone:              Name("multi-a"),
		Category:          CategoryConflict,
		ExpectedDiagnosis: DiagnosisValid,
		Description:       "Multiple A records for load balancing",
	},
	"duplicate-mx": {
		Zone:              Name("duplicate-mx"),
		Category:          CategoryConflict,
		ExpectedDiagnosis: DiagnosisWarning,
		Description:       "MX records with same priority",
	},
}

// Scenarios returns the scenario catalog keyed by scenario name. Each call
// returns a fresh copy.
func Scenarios() map[string]Scenario {
	out := make(map[string]Scenario, len(scenarios))
	for name, s := range scenarios {
		out[name] = s
	}
	return out
}

// ScenarioNames returns the scenario names in sorted order.
func ScenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
