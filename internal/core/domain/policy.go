package domain

// BilingualPolicy decides how the validator treats prose that violates the
// bilingual convention (missing separator, empty half).
type BilingualPolicy string

// Recognised bilingual policies.
const (
	// BilingualWarn reports violations as warnings. The observed corpus is
	// inconsistent, so this is the default.
	BilingualWarn BilingualPolicy = "warn"

	// BilingualReject turns violations into errors that reject the record.
	BilingualReject BilingualPolicy = "reject"
)

// IsValid returns true if the policy is recognised.
func (p BilingualPolicy) IsValid() bool {
	return p == BilingualWarn || p == BilingualReject
}

// String returns the string representation.
func (p BilingualPolicy) String() string {
	return string(p)
}

// IntegrityPolicy decides whether dangling cross-references fail a lint run
// or are merely reported. Forward references to not-yet-written content are
// legitimate during authoring, so the default is warn.
type IntegrityPolicy string

// Recognised integrity policies.
const (
	IntegrityWarn IntegrityPolicy = "warn"
	IntegrityFail IntegrityPolicy = "fail"
)

// IsValid returns true if the policy is recognised.
func (p IntegrityPolicy) IsValid() bool {
	return p == IntegrityWarn || p == IntegrityFail
}

// String returns the string representation.
func (p IntegrityPolicy) String() string {
	return string(p)
}

// ValidationPolicy configures the schema validator.
type ValidationPolicy struct {
	// RequireAllLevels demands that levels 1..5 are all present.
	RequireAllLevels bool

	// Bilingual decides how convention violations are graded.
	Bilingual BilingualPolicy
}

// DefaultValidationPolicy returns the policy matching the observed corpus:
// all five levels required, bilingual violations reported as warnings.
func DefaultValidationPolicy() ValidationPolicy {
	return ValidationPolicy{
		RequireAllLevels: true,
		Bilingual:        BilingualWarn,
	}
}
