package audit

// Report is a structured, truthful description of the engine's fixed
// parameters — useful for an operator who wants to confirm what a deployed
// build actually does without reading source. Unlike the teacher's
// compliance-report scoring (FIPS/NIST checkbox percentages), this reports
// only what is mechanically true of the build: fixed algorithm choices and
// the envelope layout, not a certification claim.
type Report struct {
	Version      uint32
	KDF          KDFParams
	Ciphers      []string
	MACs         []string
	HeaderBytes  int
	SaltBytes    int
	MacBytes     int
	IVBytesTotal int
}

// KDFParams mirrors the fixed Scrypt cost factors (spec §6) — reported, not
// configurable.
type KDFParams struct {
	Algorithm string
	N         int
	R         int
	P         int
	DKLen     int
}

// NewReport builds a Report describing the fixed TripleSec v3 parameters.
// The caller supplies the values it wants surfaced (passed in rather than
// imported from the triplesec package, so audit has no dependency on the
// core engine and stays a pure façade-level observer).
func NewReport(version uint32, headerBytes, saltBytes, macBytes, ivBytesTotal int) Report {
	return Report{
		Version: version,
		KDF: KDFParams{
			Algorithm: "scrypt",
			N:         1 << 15,
			R:         8,
			P:         1,
			DKLen:     264,
		},
		Ciphers:      []string{"AES-256-CTR", "Twofish-256-CTR", "XSalsa20"},
		MACs:         []string{"HMAC-SHA-512", "HMAC-SHA3-512"},
		HeaderBytes:  headerBytes,
		SaltBytes:    saltBytes,
		MacBytes:     macBytes,
		IVBytesTotal: ivBytesTotal,
	}
}
